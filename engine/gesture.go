package engine

import "time"

// Action is one of the five logical actions a physical input can map to.
type Action int

const (
	ActionLike Action = iota
	ActionNextCandidate
	ActionPrevCandidate
	ActionNextImage
	ActionPrevImage
)

func (a Action) String() string {
	switch a {
	case ActionLike:
		return "like"
	case ActionNextCandidate:
		return "nextCandidate"
	case ActionPrevCandidate:
		return "prevCandidate"
	case ActionNextImage:
		return "nextImage"
	case ActionPrevImage:
		return "prevImage"
	default:
		return "unknown"
	}
}

// Zone is the horizontal region of the card a tap landed in. The left and
// right thirds navigate between candidates; the middle third has no
// navigation effect and exists for the double-tap detector.
type Zone int

const (
	ZoneLeft Zone = iota
	ZoneMiddle
	ZoneRight
)

// ZoneFor maps a tap x coordinate to its zone given the card width. The
// input adapter calls this so the router only sees logical zones.
// Coordinates outside the card, like a degenerate width, land in the
// neutral middle zone rather than triggering navigation.
func ZoneFor(x, width float64) Zone {
	if width <= 0 || x < 0 || x >= width {
		return ZoneMiddle
	}
	switch {
	case x < width/3:
		return ZoneLeft
	case x >= width*2/3:
		return ZoneRight
	default:
		return ZoneMiddle
	}
}

// FlingDirection is the direction of a fast horizontal swipe.
type FlingDirection int

const (
	FlingLeft FlingDirection = iota
	FlingRight
)

// DefaultDoubleTapWindow is the interval within which two taps count as a
// double-tap.
const DefaultDoubleTapWindow = 300 * time.Millisecond

// GestureRouter turns logical input events (tap with zone, fling) into
// actions. The double-tap recognizer has priority over the zone recognizer:
// a first tap is held back until the window lapses, and a second tap inside
// the window swallows both and emits a single like. Flings are an
// independent axis handled immediately.
//
// Not safe for concurrent use; the session serializes access.
type GestureRouter struct {
	window time.Duration
	now    func() time.Time

	pendingZone Zone
	pendingAt   time.Time
	hasPending  bool
}

func NewGestureRouter(window time.Duration) *GestureRouter {
	if window <= 0 {
		window = DefaultDoubleTapWindow
	}
	return &GestureRouter{window: window, now: time.Now}
}

// Tap feeds one tap on the current card. A tap completing a double-tap
// emits exactly ActionLike and nothing else. Otherwise the tap is held; if
// it makes a stale held tap older than the window, that one's zone action
// flushes first.
func (g *GestureRouter) Tap(zone Zone) []Action {
	now := g.now()
	var actions []Action

	if g.hasPending {
		if now.Sub(g.pendingAt) <= g.window {
			g.hasPending = false
			return []Action{ActionLike}
		}
		// Held tap expired without a timer tick; settle it before holding
		// the new one.
		if a, ok := zoneAction(g.pendingZone); ok {
			actions = append(actions, a)
		}
	}

	g.pendingZone = zone
	g.pendingAt = now
	g.hasPending = true
	return actions
}

// Expire settles a held tap whose double-tap window has lapsed, emitting
// its zone action. The UI drives this from a timer tick; calling it early
// or with nothing held is a no-op.
func (g *GestureRouter) Expire() []Action {
	if !g.hasPending || g.now().Sub(g.pendingAt) <= g.window {
		return nil
	}
	g.hasPending = false
	if a, ok := zoneAction(g.pendingZone); ok {
		return []Action{a}
	}
	return nil
}

// Fling feeds a horizontal fling on the current card. Candidates with one
// image or none ignore flings entirely.
func (g *GestureRouter) Fling(direction FlingDirection, imageCount int) []Action {
	if imageCount <= 1 {
		return nil
	}
	if direction == FlingLeft {
		return []Action{ActionNextImage}
	}
	return []Action{ActionPrevImage}
}

func zoneAction(zone Zone) (Action, bool) {
	switch zone {
	case ZoneLeft:
		return ActionPrevCandidate, true
	case ZoneRight:
		return ActionNextCandidate, true
	default:
		return 0, false
	}
}
