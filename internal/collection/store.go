package collection

import (
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"go.uber.org/zap"
)

// Well-known collection names.
const (
	Wishlist      = "wishlist"
	reviewsPrefix = "reviews_"
)

// Reviews returns the collection name holding reviews for a listing.
func Reviews(listingID string) string {
	return reviewsPrefix + listingID
}

// ReviewsListingID reports the listing a reviews collection belongs to.
func ReviewsListingID(name string) (string, bool) {
	id, ok := strings.CutPrefix(name, reviewsPrefix)
	return id, ok && id != ""
}

// Outcome says which branch UpsertOrRemove took.
type Outcome string

const (
	Added   Outcome = "added"
	Removed Outcome = "removed"
)

// Store is the process-wide durable collection store. Every mutation is a
// read-modify-write of the whole collection performed under one mutex, so
// mutations within a process never interleave. Across processes the last
// writer wins.
type Store struct {
	mu      sync.Mutex
	backend Backend
	logger  *zap.Logger
}

// NewStore creates a store over the given backend.
func NewStore(backend Backend, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{
		backend: backend,
		logger:  logger.With(zap.String("component", "collection")),
	}
}

// Names lists the stored collections.
func (s *Store) Names() ([]string, error) {
	names, err := s.backend.Names()
	if err != nil {
		return nil, fmt.Errorf("list collections: %w", err)
	}
	return names, nil
}

// read decodes a collection. Corrupt payloads decode as empty; only backend
// failures are returned.
func read[T any](s *Store, name string) ([]T, error) {
	raw, err := s.backend.Read(name)
	if err != nil {
		return nil, fmt.Errorf("read collection %s: %w", name, err)
	}
	if len(raw) == 0 {
		return []T{}, nil
	}
	var records []T
	if err := json.Unmarshal(raw, &records); err != nil {
		s.logger.Warn("corrupt collection, treating as empty",
			zap.String("collection", name), zap.Error(err))
		return []T{}, nil
	}
	if records == nil {
		records = []T{}
	}
	return records, nil
}

func write[T any](s *Store, name string, records []T) error {
	if records == nil {
		records = []T{}
	}
	raw, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("encode collection %s: %w", name, err)
	}
	if err := s.backend.Write(name, raw); err != nil {
		return fmt.Errorf("write collection %s: %w", name, err)
	}
	return nil
}

// Collection is a typed view of one named collection whose records are keyed
// by the given function.
type Collection[T any] struct {
	store *Store
	name  string
	key   func(T) string
}

// Of returns a typed view of the named collection.
func Of[T any](s *Store, name string, key func(T) string) *Collection[T] {
	return &Collection[T]{store: s, name: name, key: key}
}

// Name returns the collection name.
func (c *Collection[T]) Name() string { return c.name }

// Load returns the stored records. Absent, unreadable or corrupt collections
// load as empty; the caller never sees an error.
func (c *Collection[T]) Load() []T {
	c.store.mu.Lock()
	defer c.store.mu.Unlock()
	records, err := read[T](c.store, c.name)
	if err != nil {
		c.store.logger.Warn("load collection failed, treating as empty",
			zap.String("collection", c.name), zap.Error(err))
		return []T{}
	}
	return records
}

// Save overwrites the collection.
func (c *Collection[T]) Save(records []T) error {
	c.store.mu.Lock()
	defer c.store.mu.Unlock()
	return write(c.store, c.name, records)
}

// Result is the outcome of UpsertOrRemove.
type Result[T any] struct {
	State   Outcome
	Records []T
}

// UpsertOrRemove removes every record whose key equals key if any exists,
// otherwise appends record. It returns the branch taken and the resulting
// sequence.
func (c *Collection[T]) UpsertOrRemove(key string, record T) (Result[T], error) {
	c.store.mu.Lock()
	defer c.store.mu.Unlock()

	records, err := read[T](c.store, c.name)
	if err != nil {
		return Result[T]{}, err
	}
	kept := c.without(records, key)
	res := Result[T]{State: Removed, Records: kept}
	if len(kept) == len(records) {
		res = Result[T]{State: Added, Records: append(records, record)}
	}
	if err := write(c.store, c.name, res.Records); err != nil {
		return Result[T]{}, err
	}
	return res, nil
}

// RemoveKey deletes every record with the given key. Missing keys are not an error.
func (c *Collection[T]) RemoveKey(key string) ([]T, error) {
	c.store.mu.Lock()
	defer c.store.mu.Unlock()

	records, err := read[T](c.store, c.name)
	if err != nil {
		return nil, err
	}
	kept := c.without(records, key)
	if len(kept) == len(records) {
		return records, nil
	}
	if err := write(c.store, c.name, kept); err != nil {
		return nil, err
	}
	return kept, nil
}

// Contains reports whether a record with the given key is stored.
func (c *Collection[T]) Contains(key string) bool {
	for _, r := range c.Load() {
		if c.key(r) == key {
			return true
		}
	}
	return false
}

// Append adds record at the end. Duplicates are allowed.
func (c *Collection[T]) Append(record T) ([]T, error) {
	c.store.mu.Lock()
	defer c.store.mu.Unlock()

	records, err := read[T](c.store, c.name)
	if err != nil {
		return nil, err
	}
	records = append(records, record)
	if err := write(c.store, c.name, records); err != nil {
		return nil, err
	}
	return records, nil
}

// Clear removes the whole collection.
func (c *Collection[T]) Clear() error {
	c.store.mu.Lock()
	defer c.store.mu.Unlock()
	if err := c.store.backend.Remove(c.name); err != nil {
		return fmt.Errorf("clear collection %s: %w", c.name, err)
	}
	return nil
}

func (c *Collection[T]) without(records []T, key string) []T {
	kept := make([]T, 0, len(records))
	for _, r := range records {
		if c.key(r) != key {
			kept = append(kept, r)
		}
	}
	return kept
}
