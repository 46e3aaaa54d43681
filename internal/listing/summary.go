package listing

import (
	"encoding/json"
	"fmt"

	"github.com/matheus3301/estate/internal/contracts"
)

// Type is the listing's transaction type.
type Type string

const (
	Sale Type = "sale"
	Rent Type = "rent"
)

// ParseType accepts "sale" or "rent".
func ParseType(s string) (Type, error) {
	switch Type(s) {
	case Sale, Rent:
		return Type(s), nil
	default:
		return "", fmt.Errorf("unknown listing type %q (want sale or rent)", s)
	}
}

// Summary is a listing as served by the backend. It is never mutated
// locally; wishlist entries store it verbatim.
type Summary struct {
	ID            string   `json:"_id"`
	Name          string   `json:"name"`
	Description   string   `json:"description,omitempty"`
	Address       string   `json:"address,omitempty"`
	RegularPrice  float64  `json:"regularPrice"`
	DiscountPrice float64  `json:"discountPrice,omitempty"`
	Offer         bool     `json:"offer"`
	Type          Type     `json:"type"`
	Furnished     bool     `json:"furnished"`
	Parking       bool     `json:"parking"`
	Bedrooms      int      `json:"bedrooms"`
	Bathrooms     int      `json:"bathrooms"`
	ImageURLs     []string `json:"imageUrls,omitempty"`
	UserRef       string   `json:"userRef,omitempty"`
	Currency      string   `json:"currency,omitempty"`
}

// Key returns the identifier collections key summaries by.
func Key(s Summary) string { return s.ID }

// Parse validates and decodes one listing. A missing currency is set to
// defaultCurrency.
func Parse(body []byte, defaultCurrency string) (*Summary, error) {
	if err := contracts.Validate(contracts.Listing, body); err != nil {
		return nil, err
	}
	var s Summary
	if err := json.Unmarshal(body, &s); err != nil {
		return nil, fmt.Errorf("decode listing: %w", err)
	}
	s.applyDefaults(defaultCurrency)
	return &s, nil
}

// ParseList validates and decodes a page of listings.
func ParseList(body []byte, defaultCurrency string) ([]Summary, error) {
	if err := contracts.Validate(contracts.Listings, body); err != nil {
		return nil, err
	}
	var out []Summary
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("decode listings: %w", err)
	}
	for i := range out {
		out[i].applyDefaults(defaultCurrency)
	}
	return out, nil
}

func (s *Summary) applyDefaults(currency string) {
	if s.Currency == "" {
		s.Currency = currency
	}
}
