package domain

import (
	"errors"
)

var (
	MessageSuccessRegisterUser    = "user registered successfully"
	MessageSuccessLoginUser       = "user logged in successfully"
	MessageSuccessLogoutUser      = "user logged out successfully"
	MessageSuccessGetCurrentUser  = "current user retrieved successfully"
	MessageSuccessRegisterPartner = "food partner registered successfully"
	MessageSuccessLoginPartner    = "food partner logged in successfully"
	MessageSuccessLogoutPartner   = "food partner logged out successfully"
	MessageSuccessGetPartner      = "food partner retrieved successfully"

	MessageFailedRegisterUser    = "failed to register user"
	MessageFailedLoginUser       = "failed to log in user"
	MessageFailedGetCurrentUser  = "failed to retrieve current user"
	MessageFailedRegisterPartner = "failed to register food partner"
	MessageFailedLoginPartner    = "failed to log in food partner"
	MessageFailedGetPartner      = "failed to retrieve food partner"

	ErrEmailAlreadyExists = errors.New("account with this email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserNotFound       = errors.New("user not found")
	ErrPartnerNotFound    = errors.New("food partner not found")
	ErrHashPassword       = errors.New("failed to hash password")
)

type (
	RegisterUserRequest struct {
		FullName string `json:"fullName" validate:"required,min=2,max=100"`
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required,min=6"`
	}

	LoginRequest struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}

	RegisterPartnerRequest struct {
		Name        string `json:"name" validate:"required,min=2,max=100"`
		ContactName string `json:"contactName" validate:"required,min=2,max=100"`
		Email       string `json:"email" validate:"required,email"`
		Password    string `json:"password" validate:"required,min=6"`
		Phone       string `json:"phone" validate:"required,min=6,max=20"`
		Address     string `json:"address" validate:"required"`
	}

	// UserResponse is the public-safe projection of a user record. The
	// password hash never leaves the service layer.
	UserResponse struct {
		ID       string `json:"id"`
		FullName string `json:"fullName"`
		Email    string `json:"email"`
	}

	PartnerResponse struct {
		ID          string `json:"id"`
		Name        string `json:"name"`
		ContactName string `json:"contactName"`
		Email       string `json:"email"`
		Phone       string `json:"phone"`
		Address     string `json:"address"`
	}

	AuthResult struct {
		Token string
	}

	UserAuthResponse struct {
		User UserResponse `json:"user"`
		AuthResult
	}

	PartnerAuthResponse struct {
		FoodPartner PartnerResponse `json:"foodPartner"`
		AuthResult
	}

	PartnerProfileResponse struct {
		FoodPartner PartnerResponse    `json:"foodPartner"`
		FoodItems   []FoodItemResponse `json:"foodItems"`
	}
)
