package bus

import (
	"strings"
	"time"
)

// Kind names an event. Kinds are dotted: "<namespace>.<what>".
type Kind string

const (
	ListingStateChanged   Kind = "listing.state_changed"
	ListingReviewsChanged Kind = "listing.reviews_changed"
	WishlistChanged       Kind = "wishlist.changed"
	ContactStateChanged   Kind = "contact.state_changed"
)

// Namespace returns the part of k before the first dot.
func (k Kind) Namespace() string {
	ns, _, _ := strings.Cut(string(k), ".")
	return ns
}

// matches reports whether an event of kind k is selected by pattern. A
// pattern ending in "." selects its whole namespace.
func (k Kind) matches(pattern Kind) bool {
	if strings.HasSuffix(string(pattern), ".") {
		return strings.HasPrefix(string(k), string(pattern))
	}
	return k == pattern
}

// Event is published on the bus by the controllers.
type Event struct {
	Kind    Kind
	At      time.Time
	Payload any
}
