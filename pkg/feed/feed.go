// Package feed assembles the browsing order for reel lists: a uniform
// random permutation with an optional target item spliced to the front.
package feed

import (
	"math/rand"

	"Reel-Food-Backend/domain"
)

// Shuffle permutes items in place with Fisher-Yates. The rand source is
// injected so tests can fix the seed.
func Shuffle(r *rand.Rand, items []domain.FoodItemResponse) {
	for i := len(items) - 1; i > 0; i-- {
		j := r.Intn(i + 1)
		items[i], items[j] = items[j], items[i]
	}
}

// Promote moves the item with targetID to index 0 without disturbing the
// relative order of the rest. Unknown ids leave the slice untouched.
func Promote(items []domain.FoodItemResponse, targetID string) {
	if targetID == "" {
		return
	}
	for i, item := range items {
		if item.ID == targetID {
			target := items[i]
			copy(items[1:i+1], items[0:i])
			items[0] = target
			return
		}
	}
}

// Assemble shuffles items and then promotes the target, matching the
// navigation flow where the Saved view hands off a starting reel.
func Assemble(r *rand.Rand, items []domain.FoodItemResponse, targetID string) {
	Shuffle(r, items)
	Promote(items, targetID)
}
