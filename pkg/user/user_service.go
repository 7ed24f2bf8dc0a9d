package user

import (
	"context"
	"errors"

	"Reel-Food-Backend/domain"
	"Reel-Food-Backend/entities"
	"Reel-Food-Backend/pkg/jwt"
	"Reel-Food-Backend/pkg/password"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	UserService interface {
		Register(ctx context.Context, req domain.RegisterUserRequest) (domain.UserAuthResponse, error)
		Login(ctx context.Context, req domain.LoginRequest) (domain.UserAuthResponse, error)
		Me(ctx context.Context, userID string) (domain.UserResponse, error)
	}

	userService struct {
		userRepository UserRepository
		hasher         password.Hasher
		jwtService     jwt.JWTService
	}
)

func NewUserService(userRepository UserRepository, hasher password.Hasher, jwtService jwt.JWTService) UserService {
	return &userService{
		userRepository: userRepository,
		hasher:         hasher,
		jwtService:     jwtService,
	}
}

func (s *userService) Register(ctx context.Context, req domain.RegisterUserRequest) (domain.UserAuthResponse, error) {
	if _, err := s.userRepository.GetUserByEmail(ctx, req.Email); err == nil {
		return domain.UserAuthResponse{}, domain.ErrEmailAlreadyExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.UserAuthResponse{}, err
	}

	hashed, err := s.hasher.Hash(req.Password)
	if err != nil {
		return domain.UserAuthResponse{}, domain.ErrHashPassword
	}

	user := &entities.User{
		ID:       uuid.New(),
		FullName: req.FullName,
		Email:    req.Email,
		Password: hashed,
	}

	if err := s.userRepository.CreateUser(ctx, user); err != nil {
		return domain.UserAuthResponse{}, err
	}

	token := s.jwtService.GenerateToken(user.ID.String(), domain.RoleUser)

	return domain.UserAuthResponse{
		User: toUserResponse(user),
		AuthResult: domain.AuthResult{
			Token: token,
		},
	}, nil
}

func (s *userService) Login(ctx context.Context, req domain.LoginRequest) (domain.UserAuthResponse, error) {
	user, err := s.userRepository.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Same failure as a wrong password so callers can't probe
			// which emails are registered.
			return domain.UserAuthResponse{}, domain.ErrInvalidCredentials
		}
		return domain.UserAuthResponse{}, err
	}

	if !s.hasher.Compare(user.Password, req.Password) {
		return domain.UserAuthResponse{}, domain.ErrInvalidCredentials
	}

	token := s.jwtService.GenerateToken(user.ID.String(), domain.RoleUser)

	return domain.UserAuthResponse{
		User: toUserResponse(user),
		AuthResult: domain.AuthResult{
			Token: token,
		},
	}, nil
}

func (s *userService) Me(ctx context.Context, userID string) (domain.UserResponse, error) {
	user, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.UserResponse{}, domain.ErrUserNotFound
		}
		return domain.UserResponse{}, err
	}

	return toUserResponse(user), nil
}

func toUserResponse(user *entities.User) domain.UserResponse {
	return domain.UserResponse{
		ID:       user.ID.String(),
		FullName: user.FullName,
		Email:    user.Email,
	}
}
