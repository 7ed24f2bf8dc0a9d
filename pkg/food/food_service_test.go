package food_test

import (
	"context"
	"mime/multipart"
	"strings"
	"testing"

	"Reel-Food-Backend/domain"
	"Reel-Food-Backend/entities"
	"Reel-Food-Backend/pkg/food"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// memFoodRepo mirrors the relational toggle semantics in memory: a
// membership set per kind plus a counter that moves with it.
type memFoodRepo struct {
	items map[string]*entities.FoodItem
	order []string
	likes map[string]map[string]bool
	saves map[string]map[string]bool
}

func newMemFoodRepo() *memFoodRepo {
	return &memFoodRepo{
		items: map[string]*entities.FoodItem{},
		likes: map[string]map[string]bool{},
		saves: map[string]map[string]bool{},
	}
}

func (r *memFoodRepo) CreateFoodItem(_ context.Context, item *entities.FoodItem) error {
	id := item.ID.String()
	r.items[id] = item
	r.order = append(r.order, id)
	return nil
}

func (r *memFoodRepo) GetFoodItemByID(_ context.Context, id string) (*entities.FoodItem, error) {
	if item, ok := r.items[id]; ok {
		return item, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *memFoodRepo) GetAllFoodItems(_ context.Context) ([]*entities.FoodItem, error) {
	out := make([]*entities.FoodItem, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.items[id])
	}
	return out, nil
}

func (r *memFoodRepo) GetFoodItemsByPartner(_ context.Context, partnerID string) ([]*entities.FoodItem, error) {
	var out []*entities.FoodItem
	for _, id := range r.order {
		if r.items[id].FoodPartnerID.String() == partnerID {
			out = append(out, r.items[id])
		}
	}
	return out, nil
}

func (r *memFoodRepo) GetSavedFoodItems(_ context.Context, userID string) ([]*entities.FoodItem, error) {
	var out []*entities.FoodItem
	for _, id := range r.order {
		if r.saves[userID][id] {
			out = append(out, r.items[id])
		}
	}
	return out, nil
}

func (r *memFoodRepo) GetLikedFoodIDs(_ context.Context, userID string) (map[string]bool, error) {
	return copySet(r.likes[userID]), nil
}

func (r *memFoodRepo) GetSavedFoodIDs(_ context.Context, userID string) (map[string]bool, error) {
	return copySet(r.saves[userID]), nil
}

func (r *memFoodRepo) ToggleLike(_ context.Context, userID, foodID uuid.UUID) (bool, int64, error) {
	item := r.items[foodID.String()]
	active := toggleMembership(r.likes, userID.String(), foodID.String())
	if active {
		item.LikeCount++
	} else if item.LikeCount > 0 {
		item.LikeCount--
	}
	return active, item.LikeCount, nil
}

func (r *memFoodRepo) ToggleSave(_ context.Context, userID, foodID uuid.UUID) (bool, int64, error) {
	item := r.items[foodID.String()]
	active := toggleMembership(r.saves, userID.String(), foodID.String())
	if active {
		item.SaveCount++
	} else if item.SaveCount > 0 {
		item.SaveCount--
	}
	return active, item.SaveCount, nil
}

func (r *memFoodRepo) DeleteFoodItem(_ context.Context, id string) error {
	delete(r.items, id)
	for i, existing := range r.order {
		if existing == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

func toggleMembership(sets map[string]map[string]bool, userID, foodID string) bool {
	if sets[userID] == nil {
		sets[userID] = map[string]bool{}
	}
	if sets[userID][foodID] {
		delete(sets[userID], foodID)
		return false
	}
	sets[userID][foodID] = true
	return true
}

func copySet(in map[string]bool) map[string]bool {
	out := make(map[string]bool, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}

type fakeStorage struct {
	deleted []string
}

func (s *fakeStorage) UploadFile(_ context.Context, fileName string, _ *multipart.FileHeader, dir string, _ ...string) (string, error) {
	return dir + "/" + fileName, nil
}

func (s *fakeStorage) DeleteFile(_ context.Context, objectKey string) error {
	s.deleted = append(s.deleted, objectKey)
	return nil
}

func (s *fakeStorage) GetPublicLinkKey(objectKey string) string {
	return "https://cdn.example/" + objectKey
}

func (s *fakeStorage) GetObjectKeyFromLink(link string) string {
	return strings.TrimPrefix(link, "https://cdn.example/")
}

type fakeAuthorizer struct{}

func (fakeAuthorizer) AuthorizeUpload(_ context.Context) (domain.UploadCredentials, error) {
	return domain.UploadCredentials{
		Signature: "sig",
		Token:     "tok",
		Expire:    1700000000,
		PublicKey: "public_key",
	}, nil
}

func seedItem(t *testing.T, repo *memFoodRepo, partnerID uuid.UUID, name string) *entities.FoodItem {
	t.Helper()
	item := &entities.FoodItem{
		ID:            uuid.New(),
		FoodPartnerID: partnerID,
		Name:          name,
		VideoURL:      "https://cdn.example/reels/" + name + ".mp4",
	}
	require.NoError(t, repo.CreateFoodItem(context.Background(), item))
	return item
}

func TestCreateFoodRequiresVideo(t *testing.T) {
	service := food.NewFoodService(newMemFoodRepo(), &fakeStorage{}, fakeAuthorizer{})

	_, err := service.CreateFood(context.Background(), domain.CreateFoodRequest{
		Name: "Nasi Goreng",
	}, uuid.NewString())
	require.ErrorIs(t, err, domain.ErrMissingVideo)
}

func TestCreateFoodWithVideoURL(t *testing.T) {
	repo := newMemFoodRepo()
	service := food.NewFoodService(repo, &fakeStorage{}, fakeAuthorizer{})

	res, err := service.CreateFood(context.Background(), domain.CreateFoodRequest{
		Name:        "Nasi Goreng",
		Description: "Smoky wok-fried rice",
		VideoURL:    "https://cdn.example/reels/nasi.mp4",
	}, uuid.NewString())
	require.NoError(t, err)
	require.Equal(t, "https://cdn.example/reels/nasi.mp4", res.VideoURL)
	require.Zero(t, res.LikeCount)
	require.False(t, res.IsLiked)

	items, err := service.GetFoodItems(context.Background(), uuid.NewString())
	require.NoError(t, err)
	require.Len(t, items, 1)
}

func TestToggleLikeTwiceRestoresState(t *testing.T) {
	repo := newMemFoodRepo()
	service := food.NewFoodService(repo, &fakeStorage{}, fakeAuthorizer{})
	item := seedItem(t, repo, uuid.New(), "sate")
	userID := uuid.NewString()

	res, err := service.ToggleLike(context.Background(), userID, item.ID.String())
	require.NoError(t, err)
	require.True(t, res.Active)
	require.EqualValues(t, 1, res.LikeCount)

	res, err = service.ToggleLike(context.Background(), userID, item.ID.String())
	require.NoError(t, err)
	require.False(t, res.Active)
	require.EqualValues(t, 0, res.LikeCount)
}

func TestToggleSaveDrivesSavedList(t *testing.T) {
	repo := newMemFoodRepo()
	service := food.NewFoodService(repo, &fakeStorage{}, fakeAuthorizer{})
	item := seedItem(t, repo, uuid.New(), "bakso")
	userID := uuid.NewString()

	res, err := service.ToggleSave(context.Background(), userID, item.ID.String())
	require.NoError(t, err)
	require.True(t, res.Active)
	require.EqualValues(t, 1, res.SaveCount)

	saved, err := service.GetSavedFoodItems(context.Background(), userID)
	require.NoError(t, err)
	require.Len(t, saved, 1)
	require.True(t, saved[0].IsSaved)

	_, err = service.ToggleSave(context.Background(), userID, item.ID.String())
	require.NoError(t, err)

	saved, err = service.GetSavedFoodItems(context.Background(), userID)
	require.NoError(t, err)
	require.Empty(t, saved)
}

func TestToggleUnknownFoodItem(t *testing.T) {
	service := food.NewFoodService(newMemFoodRepo(), &fakeStorage{}, fakeAuthorizer{})

	_, err := service.ToggleLike(context.Background(), uuid.NewString(), uuid.NewString())
	require.ErrorIs(t, err, domain.ErrFoodItemNotFound)

	_, err = service.ToggleLike(context.Background(), uuid.NewString(), "not-a-uuid")
	require.ErrorIs(t, err, domain.ErrParseUUID)
}

func TestFeedAnnotationsArePerUser(t *testing.T) {
	repo := newMemFoodRepo()
	service := food.NewFoodService(repo, &fakeStorage{}, fakeAuthorizer{})
	item := seedItem(t, repo, uuid.New(), "rendang")
	alice := uuid.NewString()
	bob := uuid.NewString()

	_, err := service.ToggleLike(context.Background(), alice, item.ID.String())
	require.NoError(t, err)

	aliceFeed, err := service.GetFoodItems(context.Background(), alice)
	require.NoError(t, err)
	require.True(t, aliceFeed[0].IsLiked)

	bobFeed, err := service.GetFoodItems(context.Background(), bob)
	require.NoError(t, err)
	require.False(t, bobFeed[0].IsLiked)
	require.EqualValues(t, 1, bobFeed[0].LikeCount)
}

func TestDeleteFoodOwnerOnly(t *testing.T) {
	repo := newMemFoodRepo()
	store := &fakeStorage{}
	service := food.NewFoodService(repo, store, fakeAuthorizer{})
	owner := uuid.New()
	item := seedItem(t, repo, owner, "gudeg")

	err := service.DeleteFood(context.Background(), item.ID.String(), uuid.NewString())
	require.ErrorIs(t, err, domain.ErrNotFoodOwner)

	err = service.DeleteFood(context.Background(), item.ID.String(), owner.String())
	require.NoError(t, err)
	require.Len(t, store.deleted, 1)

	err = service.DeleteFood(context.Background(), item.ID.String(), owner.String())
	require.ErrorIs(t, err, domain.ErrFoodItemNotFound)
}

func TestDeleteFoodRejectsMalformedID(t *testing.T) {
	service := food.NewFoodService(newMemFoodRepo(), &fakeStorage{}, fakeAuthorizer{})

	err := service.DeleteFood(context.Background(), "not-a-uuid", uuid.NewString())
	require.ErrorIs(t, err, domain.ErrParseUUID)
}

func TestGetUploadCredentials(t *testing.T) {
	service := food.NewFoodService(newMemFoodRepo(), &fakeStorage{}, fakeAuthorizer{})

	creds, err := service.GetUploadCredentials(context.Background())
	require.NoError(t, err)
	require.Equal(t, "sig", creds.Signature)
	require.Equal(t, "public_key", creds.PublicKey)
}
