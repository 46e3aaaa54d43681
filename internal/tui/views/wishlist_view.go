package views

import (
	"fmt"

	"github.com/matheus3301/estate/internal/listing"
	"github.com/matheus3301/estate/internal/tui/ui"
)

// WishlistView shows saved listings in wishlist order.
type WishlistView struct {
	*listingTable
}

// NewWishlistView creates the wishlist table.
func NewWishlistView(theme *ui.Theme, format *listing.Formatter) *WishlistView {
	return &WishlistView{listingTable: newListingTable(theme, format, " Wishlist ")}
}

// Name implements ui.Hinter.
func (v *WishlistView) Name() string { return "wishlist" }

// Hints implements ui.Hinter.
func (v *WishlistView) Hints() []ui.MenuHint {
	return []ui.MenuHint{
		{Key: "Enter", Description: "Open"},
		{Key: "d", Description: "Remove"},
	}
}

// Update redraws the wishlist.
func (v *WishlistView) Update(entries []listing.Summary) {
	prev, _ := v.Selected()
	v.reset()
	v.SetTitle(fmt.Sprintf(" Wishlist (%d) ", len(entries)))
	if len(entries) == 0 {
		v.addNote("Your wishlist is empty. Press t on a listing to save it.", v.theme.Border)
		return
	}
	for _, s := range entries {
		v.addListing(s, true)
	}
	v.restoreSelection(prev.ID)
}
