package entities

import (
	"time"

	"github.com/google/uuid"
)

type FoodItem struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	FoodPartnerID uuid.UUID `json:"food_partner_id"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	VideoURL      string    `json:"video_url"`
	LikeCount     int64     `gorm:"default:0" json:"like_count"`
	SaveCount     int64     `gorm:"default:0" json:"save_count"`

	FoodPartner *FoodPartner `gorm:"foreignKey:FoodPartnerID"`
	Likes       []*FoodLike  `gorm:"foreignKey:FoodItemID"`
	Saves       []*FoodSave  `gorm:"foreignKey:FoodItemID"`
	Timestamp
}

// FoodLike is one user's like membership on a food item. The pair is
// unique so a toggle is a row insert or delete, never a duplicate.
type FoodLike struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID     uuid.UUID `gorm:"uniqueIndex:idx_food_like_member" json:"user_id"`
	FoodItemID uuid.UUID `gorm:"uniqueIndex:idx_food_like_member" json:"food_item_id"`
	CreatedAt  time.Time `gorm:"type:timestamp" json:"created_at"`

	User     *User     `gorm:"foreignKey:UserID"`
	FoodItem *FoodItem `gorm:"foreignKey:FoodItemID"`
}

type FoodSave struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID     uuid.UUID `gorm:"uniqueIndex:idx_food_save_member" json:"user_id"`
	FoodItemID uuid.UUID `gorm:"uniqueIndex:idx_food_save_member" json:"food_item_id"`
	CreatedAt  time.Time `gorm:"type:timestamp" json:"created_at"`

	User     *User     `gorm:"foreignKey:UserID"`
	FoodItem *FoodItem `gorm:"foreignKey:FoodItemID"`
}
