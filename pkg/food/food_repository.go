package food

import (
	"context"
	"errors"

	"Reel-Food-Backend/entities"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	FoodRepository interface {
		CreateFoodItem(ctx context.Context, foodItem *entities.FoodItem) error
		GetFoodItemByID(ctx context.Context, id string) (*entities.FoodItem, error)
		GetAllFoodItems(ctx context.Context) ([]*entities.FoodItem, error)
		GetFoodItemsByPartner(ctx context.Context, partnerID string) ([]*entities.FoodItem, error)
		GetSavedFoodItems(ctx context.Context, userID string) ([]*entities.FoodItem, error)
		GetLikedFoodIDs(ctx context.Context, userID string) (map[string]bool, error)
		GetSavedFoodIDs(ctx context.Context, userID string) (map[string]bool, error)
		ToggleLike(ctx context.Context, userID, foodID uuid.UUID) (bool, int64, error)
		ToggleSave(ctx context.Context, userID, foodID uuid.UUID) (bool, int64, error)
		DeleteFoodItem(ctx context.Context, id string) error
	}

	foodRepository struct {
		db *gorm.DB
	}
)

func NewFoodRepository(db *gorm.DB) FoodRepository {
	return &foodRepository{db: db}
}

func (r *foodRepository) CreateFoodItem(ctx context.Context, foodItem *entities.FoodItem) error {
	return r.db.WithContext(ctx).Create(foodItem).Error
}

func (r *foodRepository) GetFoodItemByID(ctx context.Context, id string) (*entities.FoodItem, error) {
	var foodItem entities.FoodItem
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&foodItem).Error; err != nil {
		return nil, err
	}
	return &foodItem, nil
}

func (r *foodRepository) GetAllFoodItems(ctx context.Context) ([]*entities.FoodItem, error) {
	var foodItems []*entities.FoodItem
	if err := r.db.WithContext(ctx).Order("created_at desc").Find(&foodItems).Error; err != nil {
		return nil, err
	}
	return foodItems, nil
}

func (r *foodRepository) GetFoodItemsByPartner(ctx context.Context, partnerID string) ([]*entities.FoodItem, error) {
	var foodItems []*entities.FoodItem
	if err := r.db.WithContext(ctx).
		Where("food_partner_id = ?", partnerID).
		Order("created_at desc").
		Find(&foodItems).Error; err != nil {
		return nil, err
	}
	return foodItems, nil
}

func (r *foodRepository) GetSavedFoodItems(ctx context.Context, userID string) ([]*entities.FoodItem, error) {
	var foodItems []*entities.FoodItem
	if err := r.db.WithContext(ctx).
		Joins("JOIN food_saves ON food_saves.food_item_id = food_items.id").
		Where("food_saves.user_id = ?", userID).
		Order("food_saves.created_at desc").
		Find(&foodItems).Error; err != nil {
		return nil, err
	}
	return foodItems, nil
}

func (r *foodRepository) GetLikedFoodIDs(ctx context.Context, userID string) (map[string]bool, error) {
	var likes []entities.FoodLike
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Find(&likes).Error; err != nil {
		return nil, err
	}

	ids := make(map[string]bool, len(likes))
	for _, like := range likes {
		ids[like.FoodItemID.String()] = true
	}
	return ids, nil
}

func (r *foodRepository) GetSavedFoodIDs(ctx context.Context, userID string) (map[string]bool, error) {
	var saves []entities.FoodSave
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Find(&saves).Error; err != nil {
		return nil, err
	}

	ids := make(map[string]bool, len(saves))
	for _, save := range saves {
		ids[save.FoodItemID.String()] = true
	}
	return ids, nil
}

// ToggleLike flips the caller's like membership inside one transaction so
// the counter can never drift from the membership rows. Returns the
// post-toggle state.
func (r *foodRepository) ToggleLike(ctx context.Context, userID, foodID uuid.UUID) (bool, int64, error) {
	var active bool
	var count int64

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("user_id = ? AND food_item_id = ?", userID, foodID).Delete(&entities.FoodLike{})
		if res.Error != nil {
			return res.Error
		}

		if res.RowsAffected > 0 {
			active = false
			if err := tx.Model(&entities.FoodItem{}).
				Where("id = ? AND like_count > 0", foodID).
				UpdateColumn("like_count", gorm.Expr("like_count - 1")).Error; err != nil {
				return err
			}
		} else {
			active = true
			if err := tx.Create(&entities.FoodLike{ID: uuid.New(), UserID: userID, FoodItemID: foodID}).Error; err != nil {
				return err
			}
			if err := tx.Model(&entities.FoodItem{}).
				Where("id = ?", foodID).
				UpdateColumn("like_count", gorm.Expr("like_count + 1")).Error; err != nil {
				return err
			}
		}

		var item entities.FoodItem
		if err := tx.Select("like_count").Where("id = ?", foodID).First(&item).Error; err != nil {
			return err
		}
		count = item.LikeCount
		return nil
	})
	if err != nil {
		return false, 0, err
	}
	return active, count, nil
}

func (r *foodRepository) ToggleSave(ctx context.Context, userID, foodID uuid.UUID) (bool, int64, error) {
	var active bool
	var count int64

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("user_id = ? AND food_item_id = ?", userID, foodID).Delete(&entities.FoodSave{})
		if res.Error != nil {
			return res.Error
		}

		if res.RowsAffected > 0 {
			active = false
			if err := tx.Model(&entities.FoodItem{}).
				Where("id = ? AND save_count > 0", foodID).
				UpdateColumn("save_count", gorm.Expr("save_count - 1")).Error; err != nil {
				return err
			}
		} else {
			active = true
			if err := tx.Create(&entities.FoodSave{ID: uuid.New(), UserID: userID, FoodItemID: foodID}).Error; err != nil {
				return err
			}
			if err := tx.Model(&entities.FoodItem{}).
				Where("id = ?", foodID).
				UpdateColumn("save_count", gorm.Expr("save_count + 1")).Error; err != nil {
				return err
			}
		}

		var item entities.FoodItem
		if err := tx.Select("save_count").Where("id = ?", foodID).First(&item).Error; err != nil {
			return err
		}
		count = item.SaveCount
		return nil
	})
	if err != nil {
		return false, 0, err
	}
	return active, count, nil
}

func (r *foodRepository) DeleteFoodItem(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("food_item_id = ?", id).Delete(&entities.FoodLike{}).Error; err != nil {
			return err
		}
		if err := tx.Where("food_item_id = ?", id).Delete(&entities.FoodSave{}).Error; err != nil {
			return err
		}
		res := tx.Where("id = ?", id).Delete(&entities.FoodItem{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return errors.New("no rows deleted")
		}
		return nil
	})
}
