package model

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/matheus3301/estate/internal/listing"
	"github.com/matheus3301/estate/internal/remote"
)

type stubSearcher struct {
	queries []remote.Query
	fail    map[listing.Type]error
}

func (s *stubSearcher) SearchListings(_ context.Context, q remote.Query) ([]listing.Summary, error) {
	s.queries = append(s.queries, q)
	if err := s.fail[q.Type]; err != nil {
		return nil, err
	}
	name := "Offer Loft"
	if q.Type != "" {
		name = "Seaside " + string(q.Type)
	}
	return []listing.Summary{{ID: name, Name: name, Type: q.Type}}, nil
}

func TestHomeLoadsDefaultSections(t *testing.T) {
	s := &stubSearcher{}
	h := NewHome(s)

	if err := h.Load(context.Background()); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(s.queries) != 3 {
		t.Fatalf("queries = %d, want 3", len(s.queries))
	}
	for _, q := range s.queries {
		if q.Limit != SectionSize {
			t.Errorf("query %+v limit = %d, want %d", q, q.Limit, SectionSize)
		}
	}
	if !s.queries[0].Offer || s.queries[1].Type != listing.Rent || s.queries[2].Type != listing.Sale {
		t.Errorf("unexpected section queries %+v", s.queries)
	}
	for _, sec := range h.Sections() {
		if len(sec.Listings) != 1 {
			t.Errorf("%s: %d listings, want 1", sec.Title, len(sec.Listings))
		}
	}
}

func TestHomeSectionsFailIndependently(t *testing.T) {
	boom := errors.New("boom")
	h := NewHome(&stubSearcher{fail: map[listing.Type]error{listing.Rent: boom}})

	err := h.Load(context.Background())
	if !errors.Is(err, boom) {
		t.Fatalf("Load() error = %v, want boom", err)
	}
	sections := h.Sections()
	if sections[1].Err == nil || len(sections[1].Listings) != 0 {
		t.Errorf("rent section = %+v, want failure", sections[1])
	}
	if sections[2].Err != nil || len(sections[2].Listings) != 1 {
		t.Errorf("sale section = %+v, want listings", sections[2])
	}
}

func TestHomeFilter(t *testing.T) {
	h := NewHome(&stubSearcher{})
	if err := h.Load(context.Background()); err != nil {
		t.Fatal(err)
	}

	h.SetFilter("  SEASIDE ")
	var names []string
	for _, sec := range h.Sections() {
		for _, l := range sec.Listings {
			names = append(names, l.Name)
		}
	}
	if len(names) != 2 {
		t.Fatalf("filtered names = %v, want the two seaside listings", names)
	}
	for _, n := range names {
		if !strings.HasPrefix(n, "Seaside") {
			t.Errorf("unexpected %q", n)
		}
	}

	h.SetFilter("")
	if got := len(h.Sections()[0].Listings); got != 1 {
		t.Errorf("cleared filter: offers = %d, want 1", got)
	}
}

func TestParseSearch(t *testing.T) {
	tests := []struct {
		args    string
		want    remote.Query
		wantErr bool
	}{
		{"rent", remote.Query{Type: listing.Rent}, false},
		{"sale offer", remote.Query{Type: listing.Sale, Offer: true}, false},
		{"Offer", remote.Query{Offer: true}, false},
		{"castle", remote.Query{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.args, func(t *testing.T) {
			got, err := ParseSearch(tt.args)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseSearch(%q) error = %v", tt.args, err)
			}
			if tt.wantErr {
				return
			}
			if len(got) != 1 || got[0].Query != tt.want {
				t.Errorf("ParseSearch(%q) = %+v, want query %+v", tt.args, got, tt.want)
			}
		})
	}

	def, err := ParseSearch("")
	if err != nil || len(def) != 3 {
		t.Errorf("ParseSearch(\"\") = %d sections, %v", len(def), err)
	}
}
