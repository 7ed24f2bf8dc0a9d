package jwt

import (
	"errors"
	"fmt"
	"time"

	"Reel-Food-Backend/domain"
	"Reel-Food-Backend/internal/utils"

	"github.com/gofiber/fiber/v2/log"
	"github.com/golang-jwt/jwt/v4"
)

type (
	JWTService interface {
		GenerateToken(identityID string, role string) string
		ValidateToken(token string) (*jwt.Token, error)
		GetIdentityByToken(token string) (string, string, error)
		TokenTTL() time.Duration
	}

	jwtIdentityClaim struct {
		IdentityID string `json:"id"`
		Role       string `json:"role"`
		jwt.RegisteredClaims
	}

	jwtService struct {
		secretKey string
		issuer    string
		ttl       time.Duration
	}
)

func getSecretKey() string {
	return utils.GetConfig("JWT_SECRET")
}

func NewJWTService() JWTService {
	return &jwtService{
		secretKey: getSecretKey(),
		issuer:    "REELFOOD",
		ttl:       24 * time.Hour,
	}
}

func (j *jwtService) TokenTTL() time.Duration {
	return j.ttl
}

func (j *jwtService) GenerateToken(identityID string, role string) string {
	claims := jwtIdentityClaim{
		identityID,
		role,
		jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(j.ttl)),
			Issuer:    j.issuer,
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tx, err := token.SignedString([]byte(j.secretKey))
	if err != nil {
		log.Errorf("error signing token: %v", err)
	}
	return tx
}

func (j *jwtService) parseToken(t_ *jwt.Token) (any, error) {
	if _, ok := t_.Method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("unexpected signing method %v", t_.Header["alg"])
	}
	return []byte(j.secretKey), nil
}

func (j *jwtService) ValidateToken(token string) (*jwt.Token, error) {
	return jwt.ParseWithClaims(token, &jwtIdentityClaim{}, j.parseToken)
}

// GetIdentityByToken returns the identity id and role carried by a valid
// token. Expired and malformed tokens map to the domain sentinels so
// callers don't leak parser internals.
func (j *jwtService) GetIdentityByToken(token string) (string, string, error) {
	t_Token, err := j.ValidateToken(token)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", "", domain.ErrTokenExpired
		}
		return "", "", domain.ErrTokenInvalid
	}
	if !t_Token.Valid {
		return "", "", domain.ErrTokenInvalid
	}

	claims := t_Token.Claims.(*jwtIdentityClaim)
	return claims.IdentityID, claims.Role, nil
}
