package ui

import (
	"fmt"

	"github.com/rivo/tview"
)

// ProfileData holds profile information for display.
type ProfileData struct {
	Profile   string
	User      string
	Backend   string
	API       string
	Wishlist  int
	Listing   string
	Reviewing int
}

// ProfileInfo displays profile metadata in the header.
type ProfileInfo struct {
	*tview.TextView
	theme *Theme
}

// NewProfileInfo creates a new profile info panel.
func NewProfileInfo(theme *Theme) *ProfileInfo {
	tv := tview.NewTextView().
		SetDynamicColors(true)
	tv.SetBackgroundColor(theme.Bg)
	tv.SetBorderPadding(0, 0, 1, 1)

	return &ProfileInfo{
		TextView: tv,
		theme:    theme,
	}
}

// Update renders the profile info.
func (pi *ProfileInfo) Update(data ProfileData) {
	pi.Clear()

	fgColor := colorName(pi.theme.Fg)
	counterColor := colorName(pi.theme.Counter)

	user := data.User
	if user == "" {
		user = "(signed out)"
	}

	text := fmt.Sprintf(
		"[%s::b]Profile:[-:-:-]  [%s]%s[-]\n"+
			"[%s::b]User:[-:-:-]     [%s]%s[-]\n"+
			"[%s::b]Store:[-:-:-]    [%s]%s[-]\n"+
			"[%s::b]API:[-:-:-]      [%s]%s[-]\n"+
			"[%s::b]Wishlist:[-:-:-] [%s]%d[-]",
		fgColor, counterColor, data.Profile,
		fgColor, counterColor, tview.Escape(user),
		fgColor, counterColor, data.Backend,
		fgColor, counterColor, tview.Escape(data.API),
		fgColor, counterColor, data.Wishlist,
	)

	_, _ = fmt.Fprint(pi, text)
}
