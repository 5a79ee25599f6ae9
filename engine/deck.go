// Package engine implements the profile-browsing interaction engine: the
// deck of candidates, the per-candidate image carousel, the gesture router
// and the session that ties them to the backend services. Everything here is
// plain state with pure transitions, deliberately free of any UI framework.
package engine

import "spark_server/models"

// Phase is the deck lifecycle state.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseLoading
	PhaseReady
	PhaseEmpty
	PhaseError
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseLoading:
		return "loading"
	case PhaseReady:
		return "ready"
	case PhaseEmpty:
		return "empty"
	case PhaseError:
		return "error"
	default:
		return "unknown"
	}
}

// Deck owns the ordered candidate sequence and the current position. It is
// the single source of truth the screen reads from. Invariant: when the deck
// is non-empty, 0 <= index < len(candidates). Navigation clamps at both
// ends; it never wraps.
type Deck struct {
	phase      Phase
	candidates []models.Candidate
	index      int
	lastError  string
}

func NewDeck() *Deck {
	return &Deck{phase: PhaseIdle}
}

func (d *Deck) Phase() Phase { return d.phase }

// LastError is the message captured by the most recent failed load. Only
// meaningful in PhaseError.
func (d *Deck) LastError() string { return d.lastError }

// StartLoad begins the initial load. Valid only from Idle; reloads go
// through Retry. Returns false when the transition does not apply.
func (d *Deck) StartLoad() bool {
	if d.phase != PhaseIdle {
		return false
	}
	d.phase = PhaseLoading
	return true
}

// Retry begins an explicit user-triggered reload (pull-to-refresh on Ready,
// "Try Again" on Empty or Error). Returns false when the transition does
// not apply, in particular while a load is already in flight.
func (d *Deck) Retry() bool {
	switch d.phase {
	case PhaseReady, PhaseEmpty, PhaseError:
		d.phase = PhaseLoading
		return true
	default:
		return false
	}
}

// Loaded completes an in-flight load. The previous deck contents are
// discarded; the new batch is consumed in exactly the order given.
func (d *Deck) Loaded(candidates []models.Candidate) {
	if d.phase != PhaseLoading {
		return
	}
	d.candidates = candidates
	d.index = 0
	d.lastError = ""
	if len(candidates) == 0 {
		d.phase = PhaseEmpty
		return
	}
	d.phase = PhaseReady
}

// LoadFailed completes an in-flight load with a fetch error. The deck holds
// the message for the retry UI; nothing is retried automatically.
func (d *Deck) LoadFailed(message string) {
	if d.phase != PhaseLoading {
		return
	}
	d.lastError = message
	d.phase = PhaseError
}

// Advance moves to the next candidate, clamped at the end. Returns whether
// the position changed; at the boundary it is a silent no-op.
func (d *Deck) Advance() bool {
	if d.phase != PhaseReady || d.index >= len(d.candidates)-1 {
		return false
	}
	d.index++
	return true
}

// Retreat moves to the previous candidate, clamped at the start.
func (d *Deck) Retreat() bool {
	if d.phase != PhaseReady || d.index <= 0 {
		return false
	}
	d.index--
	return true
}

// Current returns the candidate at the current position. ok is false when
// the deck has no candidates to show.
func (d *Deck) Current() (models.Candidate, bool) {
	if d.phase != PhaseReady {
		return models.Candidate{}, false
	}
	return d.candidates[d.index], true
}

// MarkLiked sets the likedByMe flag for the candidate with the given id,
// wherever it sits in the deck. Like completions land here keyed by the id
// captured at dispatch, not by whatever candidate is current. Returns false
// when the id is no longer in the deck (e.g. after a refresh).
func (d *Deck) MarkLiked(candidateID string, liked bool) bool {
	for i := range d.candidates {
		if d.candidates[i].ID == candidateID {
			d.candidates[i].LikedByMe = liked
			return true
		}
	}
	return false
}

func (d *Deck) Len() int   { return len(d.candidates) }
func (d *Deck) Index() int { return d.index }
