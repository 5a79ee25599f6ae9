package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCarouselClampsWithinBounds(t *testing.T) {
	c := NewCarousel()
	c.SetCandidate("u1", 3)

	assert.False(t, c.Prev())
	assert.Equal(t, 0, c.Index())

	assert.True(t, c.Next())
	assert.True(t, c.Next())
	assert.Equal(t, 2, c.Index())

	// Clamped at the last photo
	assert.False(t, c.Next())
	assert.Equal(t, 2, c.Index())

	assert.True(t, c.Prev())
	assert.Equal(t, 1, c.Index())
}

func TestCarouselSingleOrNoImageNeverMoves(t *testing.T) {
	c := NewCarousel()

	c.SetCandidate("u1", 0)
	assert.False(t, c.Next())
	assert.False(t, c.Prev())
	assert.Equal(t, 0, c.Index())

	c.SetCandidate("u2", 1)
	assert.False(t, c.Next())
	assert.False(t, c.Prev())
	assert.Equal(t, 0, c.Index())
}

func TestCarouselResetsOnCandidateChange(t *testing.T) {
	c := NewCarousel()
	c.SetCandidate("u1", 3)
	c.Next()
	c.Next()
	assert.Equal(t, 2, c.Index())

	// Any id change resets, direction of navigation is irrelevant
	c.SetCandidate("u2", 5)
	assert.Equal(t, 0, c.Index())

	c.Next()
	c.SetCandidate("u1", 3)
	assert.Equal(t, 0, c.Index())
}

func TestCarouselSameCandidateKeepsPosition(t *testing.T) {
	c := NewCarousel()
	c.SetCandidate("u1", 3)
	c.Next()

	c.SetCandidate("u1", 3)
	assert.Equal(t, 1, c.Index())

	// Image list shrank underneath; index falls back to the first slot
	c.SetCandidate("u1", 1)
	assert.Equal(t, 0, c.Index())
}
