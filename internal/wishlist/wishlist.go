package wishlist

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/matheus3301/estate/internal/bus"
	"github.com/matheus3301/estate/internal/collection"
	"github.com/matheus3301/estate/internal/listing"
)

// Changed is the payload of bus.WishlistChanged.
type Changed struct {
	ListingID string
	Added     bool
	Count     int
}

// Controller manages the wishlist. It holds no state of its own: every
// query re-reads the store, so views sharing a store always agree.
type Controller struct {
	entries *collection.Collection[listing.Summary]
	bus     *bus.Bus
	logger  *zap.Logger
}

// New creates a wishlist controller over store.
func New(store *collection.Store, b *bus.Bus, logger *zap.Logger) *Controller {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Controller{
		entries: collection.Of(store, collection.Wishlist, listing.Key),
		bus:     b,
		logger:  logger.With(zap.String("component", "wishlist")),
	}
}

// IsMember reports whether the listing is in the wishlist.
func (c *Controller) IsMember(id string) bool {
	return c.entries.Contains(id)
}

// Toggle adds s if absent and removes it if present. It returns true when s
// was added.
func (c *Controller) Toggle(s listing.Summary) (bool, error) {
	res, err := c.entries.UpsertOrRemove(s.ID, s)
	if err != nil {
		return false, fmt.Errorf("toggle wishlist %s: %w", s.ID, err)
	}
	added := res.State == collection.Added
	c.logger.Debug("wishlist toggled",
		zap.String("listing_id", s.ID), zap.Bool("added", added), zap.Int("count", len(res.Records)))
	c.bus.Emit(bus.WishlistChanged, Changed{ListingID: s.ID, Added: added, Count: len(res.Records)})
	return added, nil
}

// List returns the wishlist in insertion order.
func (c *Controller) List() []listing.Summary {
	return c.entries.Load()
}

// Remove deletes the listing from the wishlist. Absent ids are not an error.
func (c *Controller) Remove(id string) error {
	records, err := c.entries.RemoveKey(id)
	if err != nil {
		return fmt.Errorf("remove from wishlist %s: %w", id, err)
	}
	c.bus.Emit(bus.WishlistChanged, Changed{ListingID: id, Count: len(records)})
	return nil
}
