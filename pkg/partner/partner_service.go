package partner

import (
	"context"
	"errors"
	"fmt"

	"Reel-Food-Backend/domain"
	"Reel-Food-Backend/entities"
	"Reel-Food-Backend/pkg/food"
	"Reel-Food-Backend/pkg/jwt"
	"Reel-Food-Backend/pkg/password"

	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	PartnerService interface {
		Register(ctx context.Context, req domain.RegisterPartnerRequest) (domain.PartnerAuthResponse, error)
		Login(ctx context.Context, req domain.LoginRequest) (domain.PartnerAuthResponse, error)
		Me(ctx context.Context, partnerID string) (domain.PartnerResponse, error)
		Profile(ctx context.Context, partnerID string) (domain.PartnerProfileResponse, error)
	}

	partnerService struct {
		partnerRepository PartnerRepository
		foodRepository    food.FoodRepository
		hasher            password.Hasher
		jwtService        jwt.JWTService
		sendMail          func(toEmail string, subject string, body string) error
	}
)

func NewPartnerService(
	partnerRepository PartnerRepository,
	foodRepository food.FoodRepository,
	hasher password.Hasher,
	jwtService jwt.JWTService,
	sendMail func(toEmail string, subject string, body string) error,
) PartnerService {
	return &partnerService{
		partnerRepository: partnerRepository,
		foodRepository:    foodRepository,
		hasher:            hasher,
		jwtService:        jwtService,
		sendMail:          sendMail,
	}
}

func (s *partnerService) Register(ctx context.Context, req domain.RegisterPartnerRequest) (domain.PartnerAuthResponse, error) {
	if _, err := s.partnerRepository.GetPartnerByEmail(ctx, req.Email); err == nil {
		return domain.PartnerAuthResponse{}, domain.ErrEmailAlreadyExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.PartnerAuthResponse{}, err
	}

	hashed, err := s.hasher.Hash(req.Password)
	if err != nil {
		return domain.PartnerAuthResponse{}, domain.ErrHashPassword
	}

	partner := &entities.FoodPartner{
		ID:          uuid.New(),
		Name:        req.Name,
		ContactName: req.ContactName,
		Email:       req.Email,
		Password:    hashed,
		Phone:       req.Phone,
		Address:     req.Address,
	}

	if err := s.partnerRepository.CreatePartner(ctx, partner); err != nil {
		return domain.PartnerAuthResponse{}, err
	}

	if s.sendMail != nil {
		// Welcome mail must never fail the registration.
		go func(toEmail, name string) {
			body := fmt.Sprintf(
				"<p>Hi %s,</p><p>Your partner account is ready. Upload your first reel and start reaching hungry viewers.</p>",
				name,
			)
			if err := s.sendMail(toEmail, "Welcome to Reel Food", body); err != nil {
				log.Errorf("error sending welcome mail: %v", err)
			}
		}(partner.Email, partner.ContactName)
	}

	token := s.jwtService.GenerateToken(partner.ID.String(), domain.RoleFoodPartner)

	return domain.PartnerAuthResponse{
		FoodPartner: toPartnerResponse(partner),
		AuthResult: domain.AuthResult{
			Token: token,
		},
	}, nil
}

func (s *partnerService) Login(ctx context.Context, req domain.LoginRequest) (domain.PartnerAuthResponse, error) {
	partner, err := s.partnerRepository.GetPartnerByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.PartnerAuthResponse{}, domain.ErrInvalidCredentials
		}
		return domain.PartnerAuthResponse{}, err
	}

	if !s.hasher.Compare(partner.Password, req.Password) {
		return domain.PartnerAuthResponse{}, domain.ErrInvalidCredentials
	}

	token := s.jwtService.GenerateToken(partner.ID.String(), domain.RoleFoodPartner)

	return domain.PartnerAuthResponse{
		FoodPartner: toPartnerResponse(partner),
		AuthResult: domain.AuthResult{
			Token: token,
		},
	}, nil
}

func (s *partnerService) Me(ctx context.Context, partnerID string) (domain.PartnerResponse, error) {
	partner, err := s.partnerRepository.GetPartnerByID(ctx, partnerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.PartnerResponse{}, domain.ErrPartnerNotFound
		}
		return domain.PartnerResponse{}, err
	}

	return toPartnerResponse(partner), nil
}

// Profile is the public partner page: the partner record plus the items
// they own. No caller identity is involved, so like/save annotations stay
// false.
func (s *partnerService) Profile(ctx context.Context, partnerID string) (domain.PartnerProfileResponse, error) {
	partner, err := s.partnerRepository.GetPartnerByID(ctx, partnerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.PartnerProfileResponse{}, domain.ErrPartnerNotFound
		}
		return domain.PartnerProfileResponse{}, err
	}

	items, err := s.foodRepository.GetFoodItemsByPartner(ctx, partnerID)
	if err != nil {
		return domain.PartnerProfileResponse{}, err
	}

	responses := make([]domain.FoodItemResponse, 0, len(items))
	for _, item := range items {
		responses = append(responses, food.ToFoodItemResponse(item, false, false))
	}

	return domain.PartnerProfileResponse{
		FoodPartner: toPartnerResponse(partner),
		FoodItems:   responses,
	}, nil
}

func toPartnerResponse(partner *entities.FoodPartner) domain.PartnerResponse {
	return domain.PartnerResponse{
		ID:          partner.ID.String(),
		Name:        partner.Name,
		ContactName: partner.ContactName,
		Email:       partner.Email,
		Phone:       partner.Phone,
		Address:     partner.Address,
	}
}
