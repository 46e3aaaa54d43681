package listing

import (
	"context"
	"errors"
	"slices"
	"sync"

	"go.uber.org/zap"

	"github.com/matheus3301/estate/internal/bus"
	"github.com/matheus3301/estate/internal/collection"
	"github.com/matheus3301/estate/internal/review"
	"github.com/matheus3301/estate/internal/status"
)

// ErrNotReady is returned by operations that need a loaded listing.
var ErrNotReady = errors.New("listing is not loaded")

// Fetcher loads a single listing.
type Fetcher interface {
	GetListing(ctx context.Context, id string) (*Summary, error)
}

// View is a point-in-time copy of the controller state.
type View struct {
	State     State
	ListingID string
	Listing   *Summary
	Reviews   []review.Review
	Err       error
}

// ReviewsChanged is the payload of bus.ListingReviewsChanged.
type ReviewsChanged struct {
	ListingID string
	Count     int
}

// DetailController loads one listing at a time together with its locally
// stored reviews. Only the most recent Open may change state: results of
// earlier requests are dropped when they arrive.
type DetailController struct {
	fetcher     Fetcher
	store       *collection.Store
	machine     *status.Machine[State]
	bus         *bus.Bus
	logger      *zap.Logger
	placeholder string

	mu      sync.Mutex
	token   uint64
	cancel  context.CancelFunc
	id      string
	listing *Summary
	reviews []review.Review
	err     error
}

// NewDetailController creates a controller in the Idle state. placeholder
// is stored as the avatar of reviews whose author has none.
func NewDetailController(fetcher Fetcher, store *collection.Store, b *bus.Bus, logger *zap.Logger, placeholder string) *DetailController {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DetailController{
		fetcher:     fetcher,
		store:       store,
		machine:     status.NewMachine(Idle, transitions, b, bus.ListingStateChanged),
		bus:         b,
		logger:      logger.With(zap.String("component", "listing")),
		placeholder: placeholder,
	}
}

func (c *DetailController) reviewsOf(id string) *collection.Collection[review.Review] {
	return collection.Of(c.store, collection.Reviews(id), func(r review.Review) string { return r.User })
}

// Open starts loading the listing id. Stored reviews are read before Open
// returns; the listing is fetched in the background. The returned channel
// is closed once this request has resolved, whether its result was applied
// or dropped as stale.
func (c *DetailController) Open(ctx context.Context, id string) <-chan struct{} {
	c.mu.Lock()
	c.token++
	tok := c.token
	if c.cancel != nil {
		c.cancel()
	}
	fetchCtx, cancel := context.WithCancel(ctx)
	c.cancel = cancel
	c.id = id
	c.listing = nil
	c.err = nil
	c.reviews = c.reviewsOf(id).Load()
	c.transition(Loading)
	c.mu.Unlock()

	done := make(chan struct{})
	go func() {
		defer close(done)
		defer cancel()
		l, err := c.fetcher.GetListing(fetchCtx, id)
		c.resolve(tok, id, l, err)
	}()
	return done
}

func (c *DetailController) resolve(tok uint64, id string, l *Summary, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if tok != c.token {
		c.logger.Debug("dropping stale listing result",
			zap.String("listing_id", id), zap.Uint64("token", tok), zap.Uint64("latest", c.token))
		return
	}
	c.cancel = nil
	if err != nil {
		c.err = err
		c.logger.Warn("listing fetch failed", zap.String("listing_id", id), zap.Error(err))
		c.transition(Failed)
		return
	}
	c.listing = l
	c.transition(Ready)
}

// Close abandons the current listing. In-flight fetches are cancelled and
// their results ignored.
func (c *DetailController) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token++
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
	c.id = ""
	c.listing = nil
	c.reviews = nil
	c.err = nil
	if c.machine.Current() != Idle {
		c.transition(Idle)
	}
}

// SubmitReview validates and appends a review to the open listing. A
// rejected submission changes nothing and returns a *review.ValidationError.
func (c *DetailController) SubmitReview(text string, rating int, author review.Author) (review.Review, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.machine.Current() != Ready {
		return review.Review{}, ErrNotReady
	}
	n, err := review.Validate(text, rating)
	if err != nil {
		return review.Review{}, err
	}
	r := review.New(author, n, c.placeholder)
	records, err := c.reviewsOf(c.id).Append(r)
	if err != nil {
		return review.Review{}, err
	}
	c.reviews = records
	c.bus.Emit(bus.ListingReviewsChanged, ReviewsChanged{ListingID: c.id, Count: len(records)})
	return r, nil
}

// ClearReviews deletes every stored review of the open listing.
func (c *DetailController) ClearReviews() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.id == "" {
		return ErrNotReady
	}
	if err := c.reviewsOf(c.id).Clear(); err != nil {
		return err
	}
	c.reviews = []review.Review{}
	c.bus.Emit(bus.ListingReviewsChanged, ReviewsChanged{ListingID: c.id})
	return nil
}

// Snapshot returns a copy of the current state.
func (c *DetailController) Snapshot() View {
	c.mu.Lock()
	defer c.mu.Unlock()
	v := View{
		State:     c.machine.Current(),
		ListingID: c.id,
		Reviews:   slices.Clone(c.reviews),
		Err:       c.err,
	}
	if c.listing != nil {
		l := *c.listing
		l.ImageURLs = slices.Clone(l.ImageURLs)
		v.Listing = &l
	}
	return v
}

// transition must be called with c.mu held.
func (c *DetailController) transition(to State) {
	if err := c.machine.Transition(to); err != nil {
		c.logger.Error("listing state", zap.Error(err))
	}
}
