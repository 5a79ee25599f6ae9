package engine

// Carousel tracks which photo of the current candidate is shown. It is
// scoped to the deck's current candidate: whenever the candidate id changes
// the index resets to 0, regardless of navigation direction. Purely local;
// never touches the network.
type Carousel struct {
	candidateID string
	imageIndex  int
	imageCount  int
}

func NewCarousel() *Carousel {
	return &Carousel{}
}

// SetCandidate points the carousel at a candidate. A changed id resets the
// index unconditionally; re-setting the same id keeps the position (the
// count is re-clamped in case the image list changed underneath).
func (c *Carousel) SetCandidate(candidateID string, imageCount int) {
	if candidateID != c.candidateID {
		c.candidateID = candidateID
		c.imageIndex = 0
	}
	c.imageCount = imageCount
	if c.imageIndex >= imageCount {
		c.imageIndex = 0
	}
}

// Next advances to the following photo, clamped at the last. A candidate
// with 0 or 1 images never changes index.
func (c *Carousel) Next() bool {
	if c.imageCount <= 1 || c.imageIndex >= c.imageCount-1 {
		return false
	}
	c.imageIndex++
	return true
}

// Prev retreats to the preceding photo, clamped at the first.
func (c *Carousel) Prev() bool {
	if c.imageCount <= 1 || c.imageIndex <= 0 {
		return false
	}
	c.imageIndex--
	return true
}

func (c *Carousel) CandidateID() string { return c.candidateID }
func (c *Carousel) Index() int          { return c.imageIndex }
func (c *Carousel) Count() int          { return c.imageCount }
