package model

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/matheus3301/estate/internal/listing"
	"github.com/matheus3301/estate/internal/remote"
)

// SectionSize is how many listings each home section asks for.
const SectionSize = 4

// Searcher runs listing searches.
type Searcher interface {
	SearchListings(ctx context.Context, q remote.Query) ([]listing.Summary, error)
}

// Section is one titled group of listings on the home page.
type Section struct {
	Title    string
	Query    remote.Query
	Listings []listing.Summary
	Err      error
}

// DefaultSections returns the home layout: recent offers, places for rent
// and places for sale.
func DefaultSections() []Section {
	return []Section{
		{Title: "Recent offers", Query: remote.Query{Offer: true, Limit: SectionSize}},
		{Title: "Recent places for rent", Query: remote.Query{Type: listing.Rent, Limit: SectionSize}},
		{Title: "Recent places for sale", Query: remote.Query{Type: listing.Sale, Limit: SectionSize}},
	}
}

// ParseSearch turns ":search" arguments such as "rent offer" into a query.
// No arguments means the default home sections.
func ParseSearch(args string) ([]Section, error) {
	fields := strings.Fields(args)
	if len(fields) == 0 {
		return DefaultSections(), nil
	}
	var q remote.Query
	for _, f := range fields {
		if strings.EqualFold(f, "offer") {
			q.Offer = true
			continue
		}
		t, err := listing.ParseType(strings.ToLower(f))
		if err != nil {
			return nil, fmt.Errorf("search: %w", err)
		}
		q.Type = t
	}
	return []Section{{Title: "Search: " + strings.Join(fields, " "), Query: q}}, nil
}

// Home holds the listing sections shown on the home page.
type Home struct {
	searcher Searcher

	mu       sync.RWMutex
	sections []Section
	filter   string
}

// NewHome creates a home model with the default sections, not yet loaded.
func NewHome(searcher Searcher) *Home {
	return &Home{searcher: searcher, sections: DefaultSections()}
}

// Use replaces the section layout. Call Load afterwards.
func (h *Home) Use(sections []Section) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.sections = sections
}

// Load runs every section query. Sections fail independently; the returned
// error joins the individual failures.
func (h *Home) Load(ctx context.Context) error {
	h.mu.RLock()
	sections := make([]Section, len(h.sections))
	copy(sections, h.sections)
	h.mu.RUnlock()

	var errs []error
	for i := range sections {
		found, err := h.searcher.SearchListings(ctx, sections[i].Query)
		sections[i].Listings, sections[i].Err = found, err
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", sections[i].Title, err))
		}
	}

	h.mu.Lock()
	h.sections = sections
	h.mu.Unlock()
	return errors.Join(errs...)
}

// SetFilter narrows visible listings to names containing text, case-insensitively.
func (h *Home) SetFilter(text string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.filter = strings.ToLower(strings.TrimSpace(text))
}

// Filter returns the active filter.
func (h *Home) Filter() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.filter
}

// Sections returns the sections with the filter applied.
func (h *Home) Sections() []Section {
	h.mu.RLock()
	defer h.mu.RUnlock()

	out := make([]Section, len(h.sections))
	for i, s := range h.sections {
		out[i] = s
		if h.filter == "" {
			continue
		}
		out[i].Listings = nil
		for _, l := range s.Listings {
			if strings.Contains(strings.ToLower(l.Name), h.filter) {
				out[i].Listings = append(out[i].Listings, l)
			}
		}
	}
	return out
}
