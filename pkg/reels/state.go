// Package reels holds the viewer-side session state machine: the feed
// order, like/save membership sets, per-item in-flight toggle locks, and
// the playback focus controller.
package reels

import (
	"errors"
	"sync"

	"Reel-Food-Backend/domain"
)

var (
	// ErrToggleInFlight reports that a toggle for the same item has not
	// resolved yet; the duplicate submission is dropped.
	ErrToggleInFlight = errors.New("toggle already in flight for this item")

	ErrUnknownItem = errors.New("item not present in the feed")
)

// FeedState tracks the loaded feed plus the caller's membership sets.
// All methods are safe for concurrent use.
type FeedState struct {
	mu       sync.Mutex
	items    []domain.FoodItemResponse
	liked    map[string]bool
	saved    map[string]bool
	inFlight map[string]bool
}

func NewFeedState() *FeedState {
	return &FeedState{
		liked:    map[string]bool{},
		saved:    map[string]bool{},
		inFlight: map[string]bool{},
	}
}

// Load replaces the feed and rebuilds the membership sets from the
// server's isLiked/isSaved annotations.
func (f *FeedState) Load(items []domain.FoodItemResponse) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.items = items
	f.liked = map[string]bool{}
	f.saved = map[string]bool{}
	f.inFlight = map[string]bool{}
	for _, item := range items {
		if item.IsLiked {
			f.liked[item.ID] = true
		}
		if item.IsSaved {
			f.saved[item.ID] = true
		}
	}
}

func (f *FeedState) Items() []domain.FoodItemResponse {
	f.mu.Lock()
	defer f.mu.Unlock()

	out := make([]domain.FoodItemResponse, len(f.items))
	copy(out, f.items)
	return out
}

func (f *FeedState) IsLiked(id string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.liked[id]
}

func (f *FeedState) IsSaved(id string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.saved[id]
}

func (f *FeedState) LikeCount(id string) int64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, item := range f.items {
		if item.ID == id {
			return item.LikeCount
		}
	}
	return 0
}

// beginToggle locks the item id for the duration of one toggle request
// and captures the pre-toggle membership atomically with the lock, so
// the optimistic delta is computed from the state the request was issued
// against rather than a later re-read.
func (f *FeedState) beginToggle(id string, set map[string]bool) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	found := false
	for _, item := range f.items {
		if item.ID == id {
			found = true
			break
		}
	}
	if !found {
		return false, ErrUnknownItem
	}

	if f.inFlight[id] {
		return false, ErrToggleInFlight
	}
	f.inFlight[id] = true
	return set[id], nil
}

// endToggle releases the lock and applies the server's authoritative
// post-toggle state. Called with active from the toggle response, never
// from local pre-toggle state.
func (f *FeedState) endToggle(id string, set map[string]bool, resolved bool, active bool, count int64, isLike bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	delete(f.inFlight, id)
	if !resolved {
		return
	}

	if active {
		set[id] = true
	} else {
		delete(set, id)
	}

	for i := range f.items {
		if f.items[i].ID != id {
			continue
		}
		if isLike {
			f.items[i].IsLiked = active
			if count >= 0 {
				f.items[i].LikeCount = count
			}
		} else {
			f.items[i].IsSaved = active
			if count >= 0 {
				f.items[i].SaveCount = count
			}
		}
		return
	}
}
