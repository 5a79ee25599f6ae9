package engine

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClock drives the router's notion of time in tests.
type fakeClock struct {
	mu sync.Mutex
	t  time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{t: time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(d)
}

func newTestRouter(clock *fakeClock) *GestureRouter {
	g := NewGestureRouter(300 * time.Millisecond)
	g.now = clock.Now
	return g
}

func TestZoneFor(t *testing.T) {
	assert.Equal(t, ZoneLeft, ZoneFor(0, 300))
	assert.Equal(t, ZoneLeft, ZoneFor(99, 300))
	assert.Equal(t, ZoneMiddle, ZoneFor(100, 300))
	assert.Equal(t, ZoneMiddle, ZoneFor(199, 300))
	assert.Equal(t, ZoneRight, ZoneFor(200, 300))
	assert.Equal(t, ZoneRight, ZoneFor(299, 300))
	// Degenerate width and out-of-card coordinates are neutral: they must
	// never navigate
	assert.Equal(t, ZoneMiddle, ZoneFor(10, 0))
	assert.Equal(t, ZoneMiddle, ZoneFor(-1, 300))
	assert.Equal(t, ZoneMiddle, ZoneFor(300, 300))
	assert.Equal(t, ZoneMiddle, ZoneFor(450, 300))
}

func TestDoubleTapEmitsSingleLike(t *testing.T) {
	clock := newFakeClock()
	g := newTestRouter(clock)

	// First tap is held back, no action yet
	assert.Empty(t, g.Tap(ZoneRight))

	clock.Advance(100 * time.Millisecond)
	actions := g.Tap(ZoneLeft)
	require.Equal(t, []Action{ActionLike}, actions)

	// Both taps were swallowed: nothing left to expire
	clock.Advance(time.Second)
	assert.Empty(t, g.Expire())
}

func TestSingleTapZonesEmitAfterWindow(t *testing.T) {
	tests := []struct {
		name string
		zone Zone
		want []Action
	}{
		{"left third navigates back", ZoneLeft, []Action{ActionPrevCandidate}},
		{"right third navigates forward", ZoneRight, []Action{ActionNextCandidate}},
		{"middle third is reserved", ZoneMiddle, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clock := newFakeClock()
			g := newTestRouter(clock)

			assert.Empty(t, g.Tap(tt.zone))
			// Inside the window nothing fires yet
			clock.Advance(200 * time.Millisecond)
			assert.Empty(t, g.Expire())

			clock.Advance(200 * time.Millisecond)
			assert.Equal(t, tt.want, g.Expire())

			// Settled: expiring again yields nothing
			assert.Empty(t, g.Expire())
		})
	}
}

func TestTwoSlowTapsAreTwoSingles(t *testing.T) {
	clock := newFakeClock()
	g := newTestRouter(clock)

	assert.Empty(t, g.Tap(ZoneRight))
	clock.Advance(500 * time.Millisecond)

	// The second tap lands after the window: the stale tap settles as its
	// zone action and the new tap is held, no like.
	actions := g.Tap(ZoneRight)
	assert.Equal(t, []Action{ActionNextCandidate}, actions)

	clock.Advance(500 * time.Millisecond)
	assert.Equal(t, []Action{ActionNextCandidate}, g.Expire())
}

func TestFlingMapsToImageNavigation(t *testing.T) {
	g := newTestRouter(newFakeClock())

	assert.Equal(t, []Action{ActionNextImage}, g.Fling(FlingLeft, 3))
	assert.Equal(t, []Action{ActionPrevImage}, g.Fling(FlingRight, 3))
}

func TestFlingIgnoredWithoutMultipleImages(t *testing.T) {
	g := newTestRouter(newFakeClock())

	assert.Empty(t, g.Fling(FlingLeft, 0))
	assert.Empty(t, g.Fling(FlingLeft, 1))
	assert.Empty(t, g.Fling(FlingRight, 1))
}

func TestFlingDoesNotDisturbHeldTap(t *testing.T) {
	clock := newFakeClock()
	g := newTestRouter(clock)

	g.Tap(ZoneMiddle)
	assert.Equal(t, []Action{ActionNextImage}, g.Fling(FlingLeft, 2))

	// The held tap still completes a double-tap on the other axis
	clock.Advance(100 * time.Millisecond)
	assert.Equal(t, []Action{ActionLike}, g.Tap(ZoneMiddle))
}

func TestRouterDefaultWindow(t *testing.T) {
	g := NewGestureRouter(0)
	assert.Equal(t, DefaultDoubleTapWindow, g.window)
}
