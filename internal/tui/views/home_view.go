package views

import (
	"fmt"

	"github.com/matheus3301/estate/internal/listing"
	"github.com/matheus3301/estate/internal/tui/model"
	"github.com/matheus3301/estate/internal/tui/ui"
)

// HomeView lists the home sections.
type HomeView struct {
	*listingTable
}

// NewHomeView creates the home listings table.
func NewHomeView(theme *ui.Theme, format *listing.Formatter) *HomeView {
	return &HomeView{listingTable: newListingTable(theme, format, " Listings ")}
}

// Name implements ui.Hinter.
func (v *HomeView) Name() string { return "listings" }

// Hints implements ui.Hinter.
func (v *HomeView) Hints() []ui.MenuHint {
	return []ui.MenuHint{
		{Key: "Enter", Description: "Open"},
		{Key: "t", Description: "Toggle wishlist"},
		{Key: "/", Description: "Filter"},
		{Key: "r", Description: "Refresh"},
	}
}

// Update redraws the sections. wished reports wishlist membership.
func (v *HomeView) Update(sections []model.Section, filter string, wished func(id string) bool) {
	prev, _ := v.Selected()
	v.reset()

	title := " Listings "
	if filter != "" {
		title = fmt.Sprintf(" Listings /%s ", clean(filter))
	}
	v.SetTitle(title)

	for _, sec := range sections {
		v.addNote(sec.Title, v.theme.Section)
		switch {
		case sec.Err != nil:
			v.addNote("  could not load: "+sanitizeForTerminal(sec.Err.Error()), v.theme.Error)
		case len(sec.Listings) == 0:
			v.addNote("  nothing here yet", v.theme.Border)
		}
		for _, s := range sec.Listings {
			v.addListing(s, wished(s.ID))
		}
	}
	v.restoreSelection(prev.ID)
}
