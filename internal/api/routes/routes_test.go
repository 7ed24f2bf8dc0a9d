package routes_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"Reel-Food-Backend/domain"
	"Reel-Food-Backend/internal/api/handlers"
	"Reel-Food-Backend/internal/api/routes"
	"Reel-Food-Backend/internal/middleware"
	"Reel-Food-Backend/pkg/jwt"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

var (
	knownFoodID   = uuid.NewString()
	foreignFoodID = uuid.NewString()
)

type fakeUserService struct{}

func (fakeUserService) Register(_ context.Context, req domain.RegisterUserRequest) (domain.UserAuthResponse, error) {
	if req.Email == "taken@example.com" {
		return domain.UserAuthResponse{}, domain.ErrEmailAlreadyExists
	}
	return domain.UserAuthResponse{
		User:       domain.UserResponse{ID: uuid.NewString(), FullName: req.FullName, Email: req.Email},
		AuthResult: domain.AuthResult{Token: "session-token"},
	}, nil
}

func (fakeUserService) Login(_ context.Context, req domain.LoginRequest) (domain.UserAuthResponse, error) {
	if req.Password != "hunter2hunter2" {
		return domain.UserAuthResponse{}, domain.ErrInvalidCredentials
	}
	return domain.UserAuthResponse{
		User:       domain.UserResponse{ID: uuid.NewString(), FullName: "Asha Rao", Email: req.Email},
		AuthResult: domain.AuthResult{Token: "session-token"},
	}, nil
}

func (fakeUserService) Me(_ context.Context, userID string) (domain.UserResponse, error) {
	return domain.UserResponse{ID: userID, FullName: "Asha Rao", Email: "asha@example.com"}, nil
}

type fakePartnerService struct{}

func (fakePartnerService) Register(_ context.Context, req domain.RegisterPartnerRequest) (domain.PartnerAuthResponse, error) {
	return domain.PartnerAuthResponse{
		FoodPartner: domain.PartnerResponse{ID: uuid.NewString(), Name: req.Name, Email: req.Email},
		AuthResult:  domain.AuthResult{Token: "session-token"},
	}, nil
}

func (fakePartnerService) Login(_ context.Context, req domain.LoginRequest) (domain.PartnerAuthResponse, error) {
	return domain.PartnerAuthResponse{
		FoodPartner: domain.PartnerResponse{ID: uuid.NewString(), Name: "Warung Pedas", Email: req.Email},
		AuthResult:  domain.AuthResult{Token: "session-token"},
	}, nil
}

func (fakePartnerService) Me(_ context.Context, partnerID string) (domain.PartnerResponse, error) {
	return domain.PartnerResponse{ID: partnerID, Name: "Warung Pedas"}, nil
}

func (fakePartnerService) Profile(_ context.Context, partnerID string) (domain.PartnerProfileResponse, error) {
	if partnerID == "missing" {
		return domain.PartnerProfileResponse{}, domain.ErrPartnerNotFound
	}
	return domain.PartnerProfileResponse{
		FoodPartner: domain.PartnerResponse{ID: partnerID, Name: "Warung Pedas"},
		FoodItems:   []domain.FoodItemResponse{{ID: knownFoodID, Name: "Sate Ayam"}},
	}, nil
}

type fakeFoodService struct{}

func (fakeFoodService) CreateFood(_ context.Context, req domain.CreateFoodRequest, partnerID string) (domain.FoodItemResponse, error) {
	if req.VideoURL == "" && req.Video == nil {
		return domain.FoodItemResponse{}, domain.ErrMissingVideo
	}
	return domain.FoodItemResponse{ID: uuid.NewString(), Name: req.Name, VideoURL: req.VideoURL, FoodPartnerID: partnerID}, nil
}

func (fakeFoodService) GetFoodItems(_ context.Context, _ string) ([]domain.FoodItemResponse, error) {
	return []domain.FoodItemResponse{{ID: knownFoodID, Name: "Sate Ayam", LikeCount: 2}}, nil
}

func (fakeFoodService) GetSavedFoodItems(_ context.Context, _ string) ([]domain.FoodItemResponse, error) {
	return []domain.FoodItemResponse{}, nil
}

func (fakeFoodService) GetMyFoodItems(_ context.Context, _ string) ([]domain.FoodItemResponse, error) {
	return []domain.FoodItemResponse{}, nil
}

func (fakeFoodService) ToggleLike(_ context.Context, _, foodID string) (domain.ToggleResponse, error) {
	if foodID != knownFoodID {
		return domain.ToggleResponse{}, domain.ErrFoodItemNotFound
	}
	return domain.ToggleResponse{FoodID: foodID, Active: true, LikeCount: 3}, nil
}

func (fakeFoodService) ToggleSave(_ context.Context, _, foodID string) (domain.ToggleResponse, error) {
	if foodID != knownFoodID {
		return domain.ToggleResponse{}, domain.ErrFoodItemNotFound
	}
	return domain.ToggleResponse{FoodID: foodID, Active: true, SaveCount: 1}, nil
}

func (fakeFoodService) DeleteFood(_ context.Context, foodID, _ string) error {
	switch foodID {
	case knownFoodID:
		return nil
	case foreignFoodID:
		return domain.ErrNotFoodOwner
	default:
		return domain.ErrFoodItemNotFound
	}
}

func (fakeFoodService) GetUploadCredentials(_ context.Context) (domain.UploadCredentials, error) {
	return domain.UploadCredentials{Signature: "sig", Token: "tok", Expire: 1700000000, PublicKey: "pk"}, nil
}

type fakeAIService struct{}

func (fakeAIService) GenerateReelMeta(_ context.Context, req domain.GenerateReelMetaRequest) (domain.GenerateReelMetaResponse, error) {
	return domain.GenerateReelMetaResponse{
		Content: "Title: Spicy Wings\nDescription: Crispy and bold.",
		Meta:    domain.ReelMeta{Title: "Spicy Wings", Description: "Crispy and bold."},
	}, nil
}

func newTestApp(t *testing.T) (*fiber.App, jwt.JWTService) {
	t.Helper()
	t.Setenv("JWT_SECRET", "route-test-secret")

	jwtService := jwt.NewJWTService()
	validate := validator.New()
	mw := middleware.NewMiddleware()

	app := fiber.New()
	cfg := routes.Config{
		App:         app,
		AuthHandler: handlers.NewAuthHandler(fakeUserService{}, fakePartnerService{}, jwtService, validate),
		FoodHandler: handlers.NewFoodHandler(fakeFoodService{}, validate),
		AIHandler:   handlers.NewAIHandler(fakeAIService{}, validate),
		Middleware:  mw,
		JWTService:  jwtService,
	}
	cfg.Setup()
	return app, jwtService
}

func jsonRequest(method, target string, body any) *http.Request {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	return req
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var out map[string]any
	require.NoError(t, json.Unmarshal(raw, &out))
	return out
}

func sessionCookie(t *testing.T, jwtService jwt.JWTService, role string) *http.Cookie {
	t.Helper()
	return &http.Cookie{
		Name:  middleware.TokenCookie,
		Value: jwtService.GenerateToken(uuid.NewString(), role),
	}
}

func TestRegisterUserSetsSessionCookie(t *testing.T) {
	app, _ := newTestApp(t)

	resp, err := app.Test(jsonRequest(http.MethodPost, "/api/auth/user/register", domain.RegisterUserRequest{
		FullName: "Asha Rao",
		Email:    "asha@example.com",
		Password: "hunter2hunter2",
	}))
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var token *http.Cookie
	for _, cookie := range resp.Cookies() {
		if cookie.Name == middleware.TokenCookie {
			token = cookie
		}
	}
	require.NotNil(t, token)
	require.NotEmpty(t, token.Value)
	require.True(t, token.HttpOnly)
	require.True(t, token.Secure)

	body := decodeBody(t, resp)
	require.Equal(t, domain.MessageSuccessRegisterUser, body["message"])
	user := body["user"].(map[string]any)
	require.Equal(t, "asha@example.com", user["email"])
}

func TestRegisterUserValidation(t *testing.T) {
	app, _ := newTestApp(t)

	resp, err := app.Test(jsonRequest(http.MethodPost, "/api/auth/user/register", domain.RegisterUserRequest{
		FullName: "A",
		Email:    "not-an-email",
		Password: "x",
	}))
	require.NoError(t, err)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestLogoutClearsCookie(t *testing.T) {
	app, _ := newTestApp(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/auth/user/logout", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var token *http.Cookie
	for _, cookie := range resp.Cookies() {
		if cookie.Name == middleware.TokenCookie {
			token = cookie
		}
	}
	require.NotNil(t, token)
	require.Empty(t, token.Value)
}

func TestProtectedRouteRequiresCookie(t *testing.T) {
	app, jwtService := newTestApp(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/food", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	req := httptest.NewRequest(http.MethodGet, "/api/food", nil)
	req.AddCookie(&http.Cookie{Name: middleware.TokenCookie, Value: "garbage"})
	resp, err = app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	req = httptest.NewRequest(http.MethodGet, "/api/food", nil)
	req.AddCookie(sessionCookie(t, jwtService, domain.RoleUser))
	resp, err = app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRoleMismatchRejected(t *testing.T) {
	app, jwtService := newTestApp(t)

	// A user token cannot reach partner-only surfaces.
	req := jsonRequest(http.MethodPost, "/api/food", domain.CreateFoodRequest{Name: "Sate"})
	req.AddCookie(sessionCookie(t, jwtService, domain.RoleUser))
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	// And a partner token cannot browse the user feed.
	feedReq := httptest.NewRequest(http.MethodGet, "/api/food", nil)
	feedReq.AddCookie(sessionCookie(t, jwtService, domain.RoleFoodPartner))
	resp, err = app.Test(feedReq)
	require.NoError(t, err)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestToggleLikeUnknownItemIs404(t *testing.T) {
	app, jwtService := newTestApp(t)

	req := jsonRequest(http.MethodPost, "/api/food/like", domain.ToggleRequest{FoodID: uuid.NewString()})
	req.AddCookie(sessionCookie(t, jwtService, domain.RoleUser))
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestToggleLikeReturnsServerState(t *testing.T) {
	app, jwtService := newTestApp(t)

	req := jsonRequest(http.MethodPost, "/api/food/like", domain.ToggleRequest{FoodID: knownFoodID})
	req.AddCookie(sessionCookie(t, jwtService, domain.RoleUser))
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	toggle := body["toggle"].(map[string]any)
	require.Equal(t, true, toggle["active"])
	require.EqualValues(t, 3, toggle["likeCount"])
}

func TestDeleteFoodOwnership(t *testing.T) {
	app, jwtService := newTestApp(t)
	cookie := sessionCookie(t, jwtService, domain.RoleFoodPartner)

	req := httptest.NewRequest(http.MethodDelete, "/api/food/"+foreignFoodID, nil)
	req.AddCookie(cookie)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusForbidden, resp.StatusCode)

	req = httptest.NewRequest(http.MethodDelete, "/api/food/"+knownFoodID, nil)
	req.AddCookie(cookie)
	resp, err = app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestUploadCredentialsShape(t *testing.T) {
	app, jwtService := newTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/api/food/imagekit-auth", nil)
	req.AddCookie(sessionCookie(t, jwtService, domain.RoleFoodPartner))
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	require.Equal(t, "sig", body["signature"])
	require.Equal(t, "tok", body["token"])
	require.Equal(t, "pk", body["publicKey"])
	require.EqualValues(t, 1700000000, body["expire"])
}

func TestGenerateReelMetaPartnerOnly(t *testing.T) {
	app, jwtService := newTestApp(t)

	req := jsonRequest(http.MethodPost, "/api/ai/generate-reel-meta", domain.GenerateReelMetaRequest{FoodType: "Spicy Wings"})
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	req = jsonRequest(http.MethodPost, "/api/ai/generate-reel-meta", domain.GenerateReelMetaRequest{FoodType: "Spicy Wings"})
	req.AddCookie(sessionCookie(t, jwtService, domain.RoleFoodPartner))
	resp, err = app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	meta := body["meta"].(map[string]any)
	require.Equal(t, "Spicy Wings", meta["title"])
	require.Equal(t, "Crispy and bold.", meta["description"])
}

func TestPartnerProfilePublic(t *testing.T) {
	app, _ := newTestApp(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/food-partner/"+uuid.NewString(), nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	require.Contains(t, body, "foodPartner")
	require.Contains(t, body, "foodItems")

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/api/food-partner/missing", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestLoginRateLimit(t *testing.T) {
	app, _ := newTestApp(t)

	body := domain.LoginRequest{Email: "asha@example.com", Password: "wrong-password"}
	for i := 0; i < 5; i++ {
		resp, err := app.Test(jsonRequest(http.MethodPost, "/api/auth/user/login", body))
		require.NoError(t, err)
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	}

	resp, err := app.Test(jsonRequest(http.MethodPost, "/api/auth/user/login", body))
	require.NoError(t, err)
	require.Equal(t, http.StatusTooManyRequests, resp.StatusCode)
	require.Equal(t, domain.MessageTooManyAttempts, decodeBody(t, resp)["message"])

	// Register has its own window and is still reachable.
	resp, err = app.Test(jsonRequest(http.MethodPost, "/api/auth/user/register", domain.RegisterUserRequest{
		FullName: "Asha Rao",
		Email:    "asha@example.com",
		Password: "hunter2hunter2",
	}))
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
}
