package domain

import (
	"errors"
	"mime/multipart"
	"time"
)

var (
	MessageSuccessCreateFood    = "food created successfully"
	MessageSuccessGetFoodItems  = "food items retrieved successfully"
	MessageSuccessToggleLike    = "like toggled successfully"
	MessageSuccessToggleSave    = "save toggled successfully"
	MessageSuccessGetSavedFoods = "saved food items retrieved successfully"
	MessageSuccessGetMyFoods    = "partner food items retrieved successfully"
	MessageSuccessDeleteFood    = "food item deleted successfully"
	MessageSuccessUploadAuth    = "upload credentials issued successfully"

	MessageFailedCreateFood    = "failed to create food item"
	MessageFailedGetFoodItems  = "failed to retrieve food items"
	MessageFailedToggleLike    = "failed to toggle like"
	MessageFailedToggleSave    = "failed to toggle save"
	MessageFailedGetSavedFoods = "failed to retrieve saved food items"
	MessageFailedGetMyFoods    = "failed to retrieve partner food items"
	MessageFailedDeleteFood    = "failed to delete food item"
	MessageFailedUploadAuth    = "failed to issue upload credentials"

	ErrFoodItemNotFound = errors.New("food item not found")
	ErrNotFoodOwner     = errors.New("food item belongs to another partner")
	ErrMissingVideo     = errors.New("video file or video URL is required")
	ErrUnsupportedVideo = errors.New("unsupported video format")
)

type (
	CreateFoodRequest struct {
		Name        string                `json:"name" form:"name" validate:"required,min=2,max=120"`
		Description string                `json:"description" form:"description" validate:"required,max=500"`
		VideoURL    string                `json:"videoUrl" form:"videoUrl" validate:"omitempty,url"`
		Video       *multipart.FileHeader `json:"-" form:"-" validate:"-"`
	}

	ToggleRequest struct {
		FoodID string `json:"foodId" validate:"required,uuid"`
	}

	FoodItemResponse struct {
		ID            string    `json:"id"`
		Name          string    `json:"name"`
		Description   string    `json:"description"`
		VideoURL      string    `json:"video"`
		FoodPartnerID string    `json:"foodPartner"`
		LikeCount     int64     `json:"likeCount"`
		SaveCount     int64     `json:"saveCount"`
		IsLiked       bool      `json:"isLiked"`
		IsSaved       bool      `json:"isSaved"`
		CreatedAt     time.Time `json:"createdAt"`
	}

	// ToggleResponse reports the authoritative post-toggle state so
	// clients can derive membership and counts from the server instead
	// of from pre-toggle local state.
	ToggleResponse struct {
		FoodID    string `json:"foodId"`
		Active    bool   `json:"active"`
		LikeCount int64  `json:"likeCount"`
		SaveCount int64  `json:"saveCount"`
	}
)
