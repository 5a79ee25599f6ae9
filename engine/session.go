package engine

import (
	"context"
	"log"
	"sync"
	"time"

	"spark_server/models"
)

// FeedLoader fetches the candidate batch for a viewer.
type FeedLoader interface {
	Load(ctx context.Context, currentUserID string) ([]models.Candidate, error)
}

// LikeRecorder records a one-way like for a (liker, liked) pair.
// AlreadyLiked comes back as a normal outcome with a nil error.
type LikeRecorder interface {
	Record(ctx context.Context, likerUserID, likedUserID string) (models.LikeOutcome, error)
}

// Feedback is a user-visible signal the session asks the UI to show.
type Feedback int

const (
	// FeedbackHeart is the optimistic heart animation, emitted at like
	// dispatch time, independent of network completion.
	FeedbackHeart Feedback = iota
	// FeedbackAlreadyLiked indicates the pair had been recorded before.
	FeedbackAlreadyLiked
	// FeedbackLikeFailed is a transient, dismissible, retryable notice.
	// The optimistic effects already applied stay applied.
	FeedbackLikeFailed
)

// SessionConfig carries the tunables and hooks of a browse session.
type SessionConfig struct {
	// DoubleTapWindow for the gesture router; zero means the default.
	DoubleTapWindow time.Duration
	// Notify receives feedback signals with the candidate id they concern.
	// Nil disables feedback. Called with the session lock held, so it must
	// not call back into the session.
	Notify func(fb Feedback, candidateID string)
}

// BrowseSession is the composition root of the engine: it owns the deck,
// the carousel and the gesture router, and drives the feed loader and like
// recorder. All state mutations are serialized by its mutex; like
// recordings run on their own goroutines and report back against the pair
// captured at dispatch, no matter where the user has navigated since.
type BrowseSession struct {
	mu       sync.Mutex
	userID   string
	deck     *Deck
	carousel *Carousel
	gestures *GestureRouter
	loader   FeedLoader
	recorder LikeRecorder
	notify   func(fb Feedback, candidateID string)
	inflight sync.WaitGroup
}

func NewBrowseSession(userID string, loader FeedLoader, recorder LikeRecorder, cfg SessionConfig) *BrowseSession {
	return &BrowseSession{
		userID:   userID,
		deck:     NewDeck(),
		carousel: NewCarousel(),
		gestures: NewGestureRouter(cfg.DoubleTapWindow),
		loader:   loader,
		recorder: recorder,
		notify:   cfg.Notify,
	}
}

// Load runs a feed load: the initial one from Idle, or an explicit
// retry/refresh from Ready, Empty or Error. While a load is already in
// flight the call is a no-op. The lock is released for the duration of the
// network call so gestures stay responsive.
func (s *BrowseSession) Load(ctx context.Context) error {
	s.mu.Lock()
	started := s.deck.StartLoad() || s.deck.Retry()
	s.mu.Unlock()
	if !started {
		return nil
	}

	candidates, err := s.loader.Load(ctx, s.userID)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.deck.LoadFailed(err.Error())
		return err
	}
	s.deck.Loaded(candidates)
	s.syncCarousel()
	return nil
}

// HandleTap feeds a tap at x on a card of the given width.
func (s *BrowseSession) HandleTap(x, width float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.apply(s.gestures.Tap(ZoneFor(x, width)))
}

// HandleFling feeds a horizontal fling on the current card.
func (s *BrowseSession) HandleFling(direction FlingDirection) {
	s.mu.Lock()
	defer s.mu.Unlock()
	current, ok := s.deck.Current()
	if !ok {
		return
	}
	s.apply(s.gestures.Fling(direction, len(current.Images)))
}

// Tick settles gesture state that depends on time passing (a held single
// tap whose double-tap window lapsed). The UI calls this from its frame or
// timer loop.
func (s *BrowseSession) Tick() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.apply(s.gestures.Expire())
}

func (s *BrowseSession) apply(actions []Action) {
	for _, action := range actions {
		switch action {
		case ActionLike:
			s.like()
		case ActionNextCandidate:
			if s.deck.Advance() {
				s.syncCarousel()
			}
		case ActionPrevCandidate:
			if s.deck.Retreat() {
				s.syncCarousel()
			}
		case ActionNextImage:
			s.carousel.Next()
		case ActionPrevImage:
			s.carousel.Prev()
		}
	}
}

// like applies the optimistic effects immediately and records in the
// background. The (liker, liked) pair is captured here; the completion is
// attributed to it even if the user has long since navigated away. No
// cancellation: an in-flight record is allowed to land after the UI moved
// on, with idempotent outcomes.
func (s *BrowseSession) like() {
	current, ok := s.deck.Current()
	if !ok {
		return
	}
	likerID, likedID := s.userID, current.ID

	s.deck.MarkLiked(likedID, true)
	s.emit(FeedbackHeart, likedID)

	s.inflight.Add(1)
	go func() {
		defer s.inflight.Done()
		outcome, err := s.recorder.Record(context.Background(), likerID, likedID)

		s.mu.Lock()
		defer s.mu.Unlock()
		if err != nil {
			log.Printf("⚠️ Like %s -> %s failed: %v", likerID, likedID, err)
			s.emit(FeedbackLikeFailed, likedID)
			return
		}
		if outcome == models.OutcomeAlreadyLiked {
			s.emit(FeedbackAlreadyLiked, likedID)
		}
	}()
}

func (s *BrowseSession) emit(fb Feedback, candidateID string) {
	if s.notify != nil {
		s.notify(fb, candidateID)
	}
}

// syncCarousel points the carousel at the deck's current candidate,
// resetting the image index whenever the candidate id changed.
func (s *BrowseSession) syncCarousel() {
	current, ok := s.deck.Current()
	if !ok {
		s.carousel.SetCandidate("", 0)
		return
	}
	s.carousel.SetCandidate(current.ID, len(current.Images))
}

// Settle blocks until all in-flight like recordings have reported. The UI
// never needs this; tests do.
func (s *BrowseSession) Settle() {
	s.inflight.Wait()
}

// Phase returns the deck phase.
func (s *BrowseSession) Phase() Phase {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.deck.Phase()
}

// Current returns the currently displayed candidate.
func (s *BrowseSession) Current() (models.Candidate, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.deck.Current()
}

// ImageIndex returns the carousel position for the current candidate.
func (s *BrowseSession) ImageIndex() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.carousel.Index()
}

// LastError returns the message of the most recent failed load.
func (s *BrowseSession) LastError() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.deck.LastError()
}
