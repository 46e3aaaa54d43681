package contact

import (
	"context"
	"errors"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/matheus3301/estate/internal/bus"
	"github.com/matheus3301/estate/internal/listing"
	"github.com/matheus3301/estate/internal/remote"
	"github.com/matheus3301/estate/internal/status"
)

var (
	ErrNoLandlord      = errors.New("landlord contact unavailable")
	ErrMessageRequired = errors.New("type a message first")
	ErrNoProvider      = errors.New("no email provider selected")
)

// State is the composer's lifecycle state.
type State string

const (
	Hidden    State = "hidden"
	Revealing State = "revealing"
	Ready     State = "ready"
)

var transitions = status.Transitions[State]{
	Hidden:    {Revealing},
	Revealing: {Revealing, Ready, Hidden},
	Ready:     {Revealing, Hidden},
}

// UserFetcher looks up a listing owner.
type UserFetcher interface {
	GetUser(ctx context.Context, id string) (*remote.User, error)
}

// Landlord is the resolved owner of a listing.
type Landlord struct {
	ID       string
	Username string
	Email    string
}

// Session is a copy of the composer state.
type Session struct {
	State        State
	Listing      *listing.Summary
	Landlord     *Landlord
	Message      string
	MessageTyped bool
	Provider     Provider
}

// CanOfferLinks reports whether compose links can be produced: ready with a
// landlord email and a non-blank message.
func (s Session) CanOfferLinks() bool {
	return s.State == Ready && s.Landlord != nil && s.Landlord.Email != "" && s.MessageTyped
}

// CanContact reports whether the contact action applies: a signed-in user
// looking at somebody else's listing.
func CanContact(l listing.Summary, currentUserID string) bool {
	return currentUserID != "" && l.UserRef != currentUserID
}

// Composer drives the contact-the-landlord flow for one listing at a time.
type Composer struct {
	users   UserFetcher
	machine *status.Machine[State]
	logger  *zap.Logger

	mu       sync.Mutex
	token    uint64
	cancel   context.CancelFunc
	listing  *listing.Summary
	landlord *Landlord
	message  string
	provider Provider
}

// NewComposer creates a composer in the Hidden state.
func NewComposer(users UserFetcher, b *bus.Bus, logger *zap.Logger) *Composer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Composer{
		users:   users,
		machine: status.NewMachine(Hidden, transitions, b, bus.ContactStateChanged),
		logger:  logger.With(zap.String("component", "contact")),
	}
}

// Reveal starts resolving the owner of l. The session is reset. The returned
// channel is closed once this request has resolved or been superseded.
func (c *Composer) Reveal(ctx context.Context, l listing.Summary) <-chan struct{} {
	c.mu.Lock()
	c.token++
	tok := c.token
	if c.cancel != nil {
		c.cancel()
	}
	fetchCtx, cancel := context.WithCancel(ctx)
	c.cancel = cancel
	c.listing = &l
	c.landlord = nil
	c.message = ""
	c.provider = ""
	c.transition(Revealing)
	c.mu.Unlock()

	done := make(chan struct{})
	go func() {
		defer close(done)
		defer cancel()
		u, err := c.users.GetUser(fetchCtx, l.UserRef)
		c.resolve(tok, l.UserRef, u, err)
	}()
	return done
}

func (c *Composer) resolve(tok uint64, userID string, u *remote.User, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if tok != c.token {
		c.logger.Debug("dropping stale landlord lookup", zap.String("user_id", userID), zap.Uint64("token", tok))
		return
	}
	c.cancel = nil
	if err != nil {
		// Contacting is optional: degrade to ready without a landlord.
		c.logger.Warn("landlord lookup failed", zap.String("user_id", userID), zap.Error(err))
	} else {
		id := u.ID
		if id == "" {
			id = userID
		}
		c.landlord = &Landlord{ID: id, Username: u.Username, Email: u.Email}
	}
	c.transition(Ready)
}

// SetMessage replaces the message text.
func (c *Composer) SetMessage(text string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.message = text
}

// SelectProvider chooses the webmail provider. It requires a resolved
// landlord and a non-blank message.
func (c *Composer) SelectProvider(p Provider) error {
	parsed, err := ParseProvider(string(p))
	if err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.machine.Current() != Ready || c.landlord == nil || c.landlord.Email == "" {
		return ErrNoLandlord
	}
	if !typed(c.message) {
		return ErrMessageRequired
	}
	c.provider = parsed
	return nil
}

// Link builds the compose URL from the current provider and message.
func (c *Composer) Link() (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.landlord == nil || c.landlord.Email == "" || c.listing == nil {
		return "", ErrNoLandlord
	}
	if !typed(c.message) {
		return "", ErrMessageRequired
	}
	if c.provider == "" {
		return "", ErrNoProvider
	}
	return ComposeLink(c.provider, c.landlord.Email, c.listing.Name, c.message)
}

// Hide discards the session. A pending lookup becomes a no-op.
func (c *Composer) Hide() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token++
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
	c.listing = nil
	c.landlord = nil
	c.message = ""
	c.provider = ""
	if c.machine.Current() != Hidden {
		c.transition(Hidden)
	}
}

// Snapshot returns a copy of the session.
func (c *Composer) Snapshot() Session {
	c.mu.Lock()
	defer c.mu.Unlock()
	s := Session{
		State:        c.machine.Current(),
		Message:      c.message,
		MessageTyped: typed(c.message),
		Provider:     c.provider,
	}
	if c.listing != nil {
		l := *c.listing
		s.Listing = &l
	}
	if c.landlord != nil {
		ll := *c.landlord
		s.Landlord = &ll
	}
	return s
}

func typed(msg string) bool { return strings.TrimSpace(msg) != "" }

// transition must be called with c.mu held.
func (c *Composer) transition(to State) {
	if err := c.machine.Transition(to); err != nil {
		c.logger.Error("contact state", zap.Error(err))
	}
}
