package reels

import (
	"sync"
)

type PlayState int

const (
	Paused PlayState = iota
	Playing
)

// playThreshold is the visible fraction at which a reel takes playback
// focus, mirroring the viewport observer threshold.
const playThreshold = 0.6

// Playback enforces the single-focus playback rule: at most one reel
// plays at a time, and a reel restarts from the beginning whenever it
// gains focus.
type Playback struct {
	mu     sync.Mutex
	states map[string]PlayState
	focus  string
}

func NewPlayback() *Playback {
	return &Playback{states: map[string]PlayState{}}
}

// Observe feeds a visibility measurement for one reel. Crossing the
// threshold plays it from the start and pauses the previous focus;
// dropping below pauses it.
func (p *Playback) Observe(id string, visibleFraction float64) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if visibleFraction >= playThreshold {
		if p.focus != "" && p.focus != id {
			p.states[p.focus] = Paused
		}
		p.states[id] = Playing
		p.focus = id
		return
	}

	p.states[id] = Paused
	if p.focus == id {
		p.focus = ""
	}
}

func (p *Playback) State(id string) PlayState {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.states[id]
}

// Focused returns the id of the playing reel, or "" when nothing plays.
func (p *Playback) Focused() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.focus
}
