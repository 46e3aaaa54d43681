package views

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rivo/tview"

	"github.com/matheus3301/estate/internal/listing"
	"github.com/matheus3301/estate/internal/remote"
	"github.com/matheus3301/estate/internal/review"
	"github.com/matheus3301/estate/internal/tui/ui"
)

// ListingView shows one listing and its reviews.
type ListingView struct {
	*tview.Flex
	info    *tview.TextView
	reviews *tview.TextView
	theme   *ui.Theme
	format  *listing.Formatter
}

// ListingExtras carries view state that does not come from the detail controller.
type ListingExtras struct {
	Wished      bool
	CanContact  bool
	Placeholder string
}

// NewListingView creates the detail view.
func NewListingView(theme *ui.Theme, format *listing.Formatter) *ListingView {
	info := tview.NewTextView().
		SetDynamicColors(true).
		SetWordWrap(true)
	info.SetBorder(true)
	info.SetBorderColor(theme.Border)
	info.SetTitleColor(theme.Title)
	info.SetBackgroundColor(theme.Bg)
	info.SetTextColor(theme.Fg)

	reviews := tview.NewTextView().
		SetDynamicColors(true).
		SetWordWrap(true).
		SetScrollable(true)
	reviews.SetBorder(true)
	reviews.SetTitle(" Reviews ")
	reviews.SetBorderColor(theme.Border)
	reviews.SetTitleColor(theme.Title)
	reviews.SetBackgroundColor(theme.Bg)
	reviews.SetTextColor(theme.Fg)

	flex := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(info, 0, 3, false).
		AddItem(reviews, 0, 2, true)

	return &ListingView{
		Flex:    flex,
		info:    info,
		reviews: reviews,
		theme:   theme,
		format:  format,
	}
}

// Name implements ui.Hinter.
func (v *ListingView) Name() string { return "listing" }

// Hints implements ui.Hinter.
func (v *ListingView) Hints() []ui.MenuHint {
	return []ui.MenuHint{
		{Key: "t", Description: "Toggle wishlist"},
		{Key: "a", Description: "Add review"},
		{Key: "c", Description: "Contact landlord"},
		{Key: "x", Description: "Clear reviews"},
		{Key: "r", Description: "Reload"},
	}
}

// Update redraws the view from a controller snapshot.
func (v *ListingView) Update(view listing.View, extra ListingExtras) {
	title := " Listing "
	if view.Listing != nil {
		title = fmt.Sprintf(" %s ", clean(truncate(view.Listing.Name, 60)))
	}
	v.info.SetTitle(title)
	v.info.Clear()
	_, _ = fmt.Fprint(v.info, renderListing(v.theme, v.format, view, extra))
	v.info.ScrollToBeginning()

	v.reviews.SetTitle(fmt.Sprintf(" Reviews (%d) ", len(view.Reviews)))
	v.reviews.Clear()
	_, _ = fmt.Fprint(v.reviews, renderReviews(v.theme, view.Reviews, extra.Placeholder))
}

func renderListing(theme *ui.Theme, f *listing.Formatter, view listing.View, extra ListingExtras) string {
	switch view.State {
	case listing.Idle:
		return ""
	case listing.Loading:
		return fmt.Sprintf("\n  Loading listing %s…", clean(view.ListingID))
	case listing.Failed:
		msg := "Something went wrong!"
		if errors.Is(view.Err, remote.ErrNotFound) {
			msg = "Listing not found."
		}
		detail := ""
		if view.Err != nil {
			detail = clean(view.Err.Error())
		}
		return fmt.Sprintf("\n  %s%s[-]\n  %s\n\n  Press r to retry.", ui.Tag(theme.Error), msg, detail)
	}

	l := view.Listing
	if l == nil {
		return ""
	}

	var b strings.Builder
	heart := "♡ not in wishlist"
	if extra.Wished {
		heart = ui.Tag(theme.Wish) + "♥ in wishlist[-]"
	}
	fmt.Fprintf(&b, "[::b]%s[-:-:-]  %s%s[-]  %s\n", clean(l.Name), ui.Tag(theme.Price), clean(f.Price(*l)), heart)
	if l.Address != "" {
		fmt.Fprintf(&b, "%s\n", clean(l.Address))
	}
	b.WriteString("\n")

	tags := []string{listing.TypeLabel(*l)}
	if d := f.Discount(*l); d != "" {
		tags = append(tags, d)
	}
	fmt.Fprintf(&b, "%s%s[-]\n\n", ui.Tag(theme.Offer), clean(strings.Join(tags, "  |  ")))

	if l.Description != "" {
		fmt.Fprintf(&b, "[::b]Description[-:-:-] %s\n\n", clean(l.Description))
	}
	fmt.Fprintf(&b, "%s  ·  %s  ·  %s  ·  %s\n",
		listing.Beds(*l), listing.Baths(*l), listing.ParkingLabel(*l), listing.FurnishedLabel(*l))

	if cover := listing.CoverImage(*l); cover != "" {
		fmt.Fprintf(&b, "\nImages: %d  cover %s\n", len(l.ImageURLs), clean(cover))
	}
	if extra.CanContact {
		fmt.Fprintf(&b, "\n%sPress c to contact the landlord.[-]\n", ui.Tag(theme.Key))
	}
	return b.String()
}

func renderReviews(theme *ui.Theme, reviews []review.Review, placeholder string) string {
	if len(reviews) == 0 {
		return "  No reviews yet. Press a to write one."
	}
	var b strings.Builder
	for i := len(reviews) - 1; i >= 0; i-- {
		r := reviews[i]
		fmt.Fprintf(&b, "%s%s[-] [::b]%s[-:-:-]\n", ui.Tag(theme.Star), review.Stars(r.Rating), clean(r.DisplayName()))
		fmt.Fprintf(&b, "  %s\n", clean(r.Text))
		if avatar := r.Avatar(placeholder); avatar != placeholder {
			fmt.Fprintf(&b, "  %s%s[-]\n", ui.Tag(theme.Border), clean(avatar))
		}
		b.WriteString("\n")
	}
	return b.String()
}
