package food

import (
	"context"
	"errors"
	"fmt"

	"Reel-Food-Backend/domain"
	"Reel-Food-Backend/entities"
	"Reel-Food-Backend/internal/utils/storage"

	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	FoodService interface {
		CreateFood(ctx context.Context, req domain.CreateFoodRequest, partnerID string) (domain.FoodItemResponse, error)
		GetFoodItems(ctx context.Context, userID string) ([]domain.FoodItemResponse, error)
		GetSavedFoodItems(ctx context.Context, userID string) ([]domain.FoodItemResponse, error)
		GetMyFoodItems(ctx context.Context, partnerID string) ([]domain.FoodItemResponse, error)
		ToggleLike(ctx context.Context, userID, foodID string) (domain.ToggleResponse, error)
		ToggleSave(ctx context.Context, userID, foodID string) (domain.ToggleResponse, error)
		DeleteFood(ctx context.Context, foodID, partnerID string) error
		GetUploadCredentials(ctx context.Context) (domain.UploadCredentials, error)
	}

	foodService struct {
		foodRepository FoodRepository
		objectStorage  storage.ObjectStorage
		uploadAuth     storage.UploadAuthorizer
	}
)

func NewFoodService(foodRepository FoodRepository, objectStorage storage.ObjectStorage, uploadAuth storage.UploadAuthorizer) FoodService {
	return &foodService{
		foodRepository: foodRepository,
		objectStorage:  objectStorage,
		uploadAuth:     uploadAuth,
	}
}

func (s *foodService) CreateFood(ctx context.Context, req domain.CreateFoodRequest, partnerID string) (domain.FoodItemResponse, error) {
	partnerUUID, err := uuid.Parse(partnerID)
	if err != nil {
		return domain.FoodItemResponse{}, domain.ErrParseUUID
	}

	videoURL := req.VideoURL
	if req.Video != nil {
		fileName := fmt.Sprintf("reel-%s", uuid.New().String())
		objectKey, err := s.objectStorage.UploadFile(ctx, fileName, req.Video, "reels", storage.AllowVideo...)
		if err != nil {
			return domain.FoodItemResponse{}, err
		}
		videoURL = s.objectStorage.GetPublicLinkKey(objectKey)
	}

	if videoURL == "" {
		return domain.FoodItemResponse{}, domain.ErrMissingVideo
	}

	foodItem := &entities.FoodItem{
		ID:            uuid.New(),
		FoodPartnerID: partnerUUID,
		Name:          req.Name,
		Description:   req.Description,
		VideoURL:      videoURL,
	}

	if err := s.foodRepository.CreateFoodItem(ctx, foodItem); err != nil {
		return domain.FoodItemResponse{}, err
	}

	return ToFoodItemResponse(foodItem, false, false), nil
}

// GetFoodItems returns every item annotated with the caller's like/save
// membership. No pagination: the source system serves the full list and
// shuffles client-side.
func (s *foodService) GetFoodItems(ctx context.Context, userID string) ([]domain.FoodItemResponse, error) {
	foodItems, err := s.foodRepository.GetAllFoodItems(ctx)
	if err != nil {
		return nil, err
	}

	liked, err := s.foodRepository.GetLikedFoodIDs(ctx, userID)
	if err != nil {
		return nil, err
	}
	saved, err := s.foodRepository.GetSavedFoodIDs(ctx, userID)
	if err != nil {
		return nil, err
	}

	responses := make([]domain.FoodItemResponse, 0, len(foodItems))
	for _, item := range foodItems {
		id := item.ID.String()
		responses = append(responses, ToFoodItemResponse(item, liked[id], saved[id]))
	}
	return responses, nil
}

func (s *foodService) GetSavedFoodItems(ctx context.Context, userID string) ([]domain.FoodItemResponse, error) {
	foodItems, err := s.foodRepository.GetSavedFoodItems(ctx, userID)
	if err != nil {
		return nil, err
	}

	liked, err := s.foodRepository.GetLikedFoodIDs(ctx, userID)
	if err != nil {
		return nil, err
	}

	responses := make([]domain.FoodItemResponse, 0, len(foodItems))
	for _, item := range foodItems {
		responses = append(responses, ToFoodItemResponse(item, liked[item.ID.String()], true))
	}
	return responses, nil
}

func (s *foodService) GetMyFoodItems(ctx context.Context, partnerID string) ([]domain.FoodItemResponse, error) {
	foodItems, err := s.foodRepository.GetFoodItemsByPartner(ctx, partnerID)
	if err != nil {
		return nil, err
	}

	responses := make([]domain.FoodItemResponse, 0, len(foodItems))
	for _, item := range foodItems {
		responses = append(responses, ToFoodItemResponse(item, false, false))
	}
	return responses, nil
}

func (s *foodService) ToggleLike(ctx context.Context, userID, foodID string) (domain.ToggleResponse, error) {
	userUUID, foodUUID, err := s.parseTogglePair(ctx, userID, foodID)
	if err != nil {
		return domain.ToggleResponse{}, err
	}

	active, count, err := s.foodRepository.ToggleLike(ctx, userUUID, foodUUID)
	if err != nil {
		return domain.ToggleResponse{}, err
	}

	return domain.ToggleResponse{
		FoodID:    foodID,
		Active:    active,
		LikeCount: count,
	}, nil
}

func (s *foodService) ToggleSave(ctx context.Context, userID, foodID string) (domain.ToggleResponse, error) {
	userUUID, foodUUID, err := s.parseTogglePair(ctx, userID, foodID)
	if err != nil {
		return domain.ToggleResponse{}, err
	}

	active, count, err := s.foodRepository.ToggleSave(ctx, userUUID, foodUUID)
	if err != nil {
		return domain.ToggleResponse{}, err
	}

	return domain.ToggleResponse{
		FoodID:    foodID,
		Active:    active,
		SaveCount: count,
	}, nil
}

func (s *foodService) parseTogglePair(ctx context.Context, userID, foodID string) (uuid.UUID, uuid.UUID, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return uuid.Nil, uuid.Nil, domain.ErrParseUUID
	}
	foodUUID, err := uuid.Parse(foodID)
	if err != nil {
		return uuid.Nil, uuid.Nil, domain.ErrParseUUID
	}

	if _, err := s.foodRepository.GetFoodItemByID(ctx, foodID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return uuid.Nil, uuid.Nil, domain.ErrFoodItemNotFound
		}
		return uuid.Nil, uuid.Nil, err
	}
	return userUUID, foodUUID, nil
}

func (s *foodService) DeleteFood(ctx context.Context, foodID, partnerID string) error {
	if _, err := uuid.Parse(foodID); err != nil {
		return domain.ErrParseUUID
	}

	foodItem, err := s.foodRepository.GetFoodItemByID(ctx, foodID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrFoodItemNotFound
		}
		return err
	}

	if foodItem.FoodPartnerID.String() != partnerID {
		return domain.ErrNotFoodOwner
	}

	if foodItem.VideoURL != "" && s.objectStorage != nil {
		if objectKey := s.objectStorage.GetObjectKeyFromLink(foodItem.VideoURL); objectKey != "" {
			if err := s.objectStorage.DeleteFile(ctx, objectKey); err != nil {
				log.Errorf("error deleting video object %s: %v", objectKey, err)
			}
		}
	}

	return s.foodRepository.DeleteFoodItem(ctx, foodID)
}

func (s *foodService) GetUploadCredentials(ctx context.Context) (domain.UploadCredentials, error) {
	return s.uploadAuth.AuthorizeUpload(ctx)
}

func ToFoodItemResponse(item *entities.FoodItem, isLiked, isSaved bool) domain.FoodItemResponse {
	return domain.FoodItemResponse{
		ID:            item.ID.String(),
		Name:          item.Name,
		Description:   item.Description,
		VideoURL:      item.VideoURL,
		FoodPartnerID: item.FoodPartnerID.String(),
		LikeCount:     item.LikeCount,
		SaveCount:     item.SaveCount,
		IsLiked:       isLiked,
		IsSaved:       isSaved,
		CreatedAt:     item.CreatedAt,
	}
}
