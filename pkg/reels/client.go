package reels

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"net/http/cookiejar"
	"time"

	"Reel-Food-Backend/domain"
	"Reel-Food-Backend/pkg/feed"
)

// ErrLockedOut is returned without touching the network while the local
// rate-limit lockout countdown is running.
var ErrLockedOut = fmt.Errorf("login temporarily locked out")

// Client is a Go consumer of the reel-food API. The session token lives
// in the cookie jar, so the raw token is never handled here.
type Client struct {
	baseURL    string
	httpClient *http.Client
	rng        *rand.Rand

	Feed     *FeedState
	Playback *Playback
	Lockout  *Lockout
}

type Option func(*Client)

// WithRand fixes the shuffle source, used by tests for deterministic
// feed order.
func WithRand(rng *rand.Rand) Option {
	return func(c *Client) { c.rng = rng }
}

func WithLockoutStore(store LockoutStore) Option {
	return func(c *Client) {
		c.Lockout = NewLockout(store, "login-lockout", 15*time.Minute)
	}
}

func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) { c.httpClient = httpClient }
}

func NewClient(baseURL string, opts ...Option) *Client {
	jar, _ := cookiejar.New(nil)
	c := &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Jar: jar, Timeout: 30 * time.Second},
		rng:        rand.New(rand.NewSource(time.Now().UnixNano())),
		Feed:       NewFeedState(),
		Playback:   NewPlayback(),
		Lockout:    NewLockout(NewMemoryLockoutStore(), "login-lockout", 15*time.Minute),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) postJSON(ctx context.Context, path string, body any, out any) (int, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return 0, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return 0, err
	}
	req.Header.Set("Content-Type", "application/json")

	return c.do(req, out)
}

func (c *Client) getJSON(ctx context.Context, path string, out any) (int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return 0, err
	}
	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out any) (int, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, err
	}

	if resp.StatusCode >= http.StatusBadRequest {
		var apiErr struct {
			Message string `json:"message"`
		}
		_ = json.Unmarshal(raw, &apiErr)
		if apiErr.Message == "" {
			apiErr.Message = resp.Status
		}
		return resp.StatusCode, fmt.Errorf("%s", apiErr.Message)
	}

	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			return resp.StatusCode, err
		}
	}
	return resp.StatusCode, nil
}

func (c *Client) LoginUser(ctx context.Context, email, password string) (domain.UserResponse, error) {
	if _, locked := c.Lockout.Remaining(); locked {
		return domain.UserResponse{}, ErrLockedOut
	}

	var out struct {
		User domain.UserResponse `json:"user"`
	}
	status, err := c.postJSON(ctx, "/api/auth/user/login", domain.LoginRequest{
		Email:    email,
		Password: password,
	}, &out)
	if err != nil {
		if status == http.StatusTooManyRequests {
			c.Lockout.Trip()
		}
		return domain.UserResponse{}, err
	}

	c.Lockout.Clear()
	return out.User, nil
}

func (c *Client) RegisterUser(ctx context.Context, req domain.RegisterUserRequest) (domain.UserResponse, error) {
	if _, locked := c.Lockout.Remaining(); locked {
		return domain.UserResponse{}, ErrLockedOut
	}

	var out struct {
		User domain.UserResponse `json:"user"`
	}
	status, err := c.postJSON(ctx, "/api/auth/user/register", req, &out)
	if err != nil {
		if status == http.StatusTooManyRequests {
			c.Lockout.Trip()
		}
		return domain.UserResponse{}, err
	}

	c.Lockout.Clear()
	return out.User, nil
}

func (c *Client) Logout(ctx context.Context) error {
	_, err := c.getJSON(ctx, "/api/auth/user/logout", nil)
	return err
}

// LoadFeed fetches the full item list, shuffles it, and promotes the
// target reel (if any) to the front. The resulting order and membership
// sets become the client's feed state.
func (c *Client) LoadFeed(ctx context.Context, targetID string) ([]domain.FoodItemResponse, error) {
	var out struct {
		FoodItems []domain.FoodItemResponse `json:"foodItems"`
	}
	if _, err := c.getJSON(ctx, "/api/food", &out); err != nil {
		return nil, err
	}

	items := out.FoodItems
	feed.Assemble(c.rng, items, targetID)
	c.Feed.Load(items)
	return c.Feed.Items(), nil
}

func (c *Client) SavedItems(ctx context.Context) ([]domain.FoodItemResponse, error) {
	var out struct {
		FoodItems []domain.FoodItemResponse `json:"foodItems"`
	}
	if _, err := c.getJSON(ctx, "/api/food/saved", &out); err != nil {
		return nil, err
	}
	return out.FoodItems, nil
}

// ToggleLike flips the like on one reel. While a toggle for the same id
// is in flight the call is dropped with ErrToggleInFlight, so rapid
// repeat clicks cannot fan out into duplicate requests. The post-toggle
// membership and count come from the server response, not from local
// pre-toggle state.
func (c *Client) ToggleLike(ctx context.Context, foodID string) (domain.ToggleResponse, error) {
	if _, err := c.Feed.beginToggle(foodID, c.Feed.liked); err != nil {
		return domain.ToggleResponse{}, err
	}

	var out struct {
		Toggle domain.ToggleResponse `json:"toggle"`
	}
	_, err := c.postJSON(ctx, "/api/food/like", domain.ToggleRequest{FoodID: foodID}, &out)
	if err != nil {
		c.Feed.endToggle(foodID, c.Feed.liked, false, false, -1, true)
		return domain.ToggleResponse{}, err
	}

	c.Feed.endToggle(foodID, c.Feed.liked, true, out.Toggle.Active, out.Toggle.LikeCount, true)
	return out.Toggle, nil
}

func (c *Client) ToggleSave(ctx context.Context, foodID string) (domain.ToggleResponse, error) {
	if _, err := c.Feed.beginToggle(foodID, c.Feed.saved); err != nil {
		return domain.ToggleResponse{}, err
	}

	var out struct {
		Toggle domain.ToggleResponse `json:"toggle"`
	}
	_, err := c.postJSON(ctx, "/api/food/save", domain.ToggleRequest{FoodID: foodID}, &out)
	if err != nil {
		c.Feed.endToggle(foodID, c.Feed.saved, false, false, -1, false)
		return domain.ToggleResponse{}, err
	}

	c.Feed.endToggle(foodID, c.Feed.saved, true, out.Toggle.Active, out.Toggle.SaveCount, false)
	return out.Toggle, nil
}
