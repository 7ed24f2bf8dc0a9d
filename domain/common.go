package domain

import (
	"errors"
)

const (
	RoleUser        = "user"
	RoleFoodPartner = "food-partner"
)

var (
	MessageFailedBodyRequest  = "failed to process request body"
	MessageFailedGetToken     = "failed to get token"
	MessageFailedTokenInvalid = "token is invalid"
	MessageTooManyAttempts    = "Too many attempts. Try again in 15 minutes."

	ErrParseUUID     = errors.New("failed to parse UUID")
	ErrTokenNotFound = errors.New("token not found")
	ErrTokenExpired  = errors.New("token expired")
	ErrTokenInvalid  = errors.New("token invalid")
	ErrWrongIdentity = errors.New("token issued for a different identity kind")
)
