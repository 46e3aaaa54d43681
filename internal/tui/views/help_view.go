package views

import (
	"fmt"
	"strings"

	"github.com/rivo/tview"

	"github.com/matheus3301/estate/internal/tui/ui"
)

// HelpView displays the key binding reference.
type HelpView struct {
	*tview.TextView
	theme *ui.Theme
}

// NewHelpView creates a new help view.
func NewHelpView(theme *ui.Theme) *HelpView {
	tv := tview.NewTextView().
		SetDynamicColors(true).
		SetScrollable(true)
	tv.SetBorder(true)
	tv.SetBorderColor(theme.Border)
	tv.SetBackgroundColor(theme.Bg)
	tv.SetTextColor(theme.Fg)
	tv.SetTitle(" Help ")
	tv.SetTitleColor(theme.Title)

	hv := &HelpView{
		TextView: tv,
		theme:    theme,
	}
	_, _ = fmt.Fprint(hv, hv.render())
	return hv
}

// Name implements ui.Hinter.
func (hv *HelpView) Name() string { return "help" }

// Hints implements ui.Hinter.
func (hv *HelpView) Hints() []ui.MenuHint {
	return []ui.MenuHint{
		{Key: "Esc", Description: "Back"},
	}
}

type helpSection struct {
	title string
	keys  [][2]string
}

var helpSections = []helpSection{
	{"Global Keys", [][2]string{
		{":", "Command mode"},
		{"/", "Filter listings"},
		{"w", "Wishlist"},
		{"?", "Help"},
		{"Esc", "Go back"},
		{"q", "Quit"},
	}},
	{"Listings and Wishlist", [][2]string{
		{"Enter", "Open listing"},
		{"t", "Toggle wishlist"},
		{"d", "Remove from wishlist"},
		{"r", "Refresh"},
	}},
	{"Listing", [][2]string{
		{"a", "Write a review"},
		{"x", "Clear reviews"},
		{"c", "Contact landlord"},
		{"t", "Toggle wishlist"},
		{"r", "Reload"},
	}},
	{"Contact", [][2]string{
		{"Enter", "Done typing"},
		{"i", "Edit message"},
		{"1-3", "Gmail, Yahoo, Outlook"},
	}},
	{"Commands (: mode)", [][2]string{
		{":open <id>", "Open a listing"},
		{":search [rent|sale] [offer]", "Search listings"},
		{":home", "Back to the home sections"},
		{":wishlist", "Show wishlist"},
		{":help", "Show this help"},
		{":quit", "Quit"},
	}},
}

func (hv *HelpView) render() string {
	kc := ui.Tag(hv.theme.Key)
	var b strings.Builder
	for _, s := range helpSections {
		fmt.Fprintf(&b, "\n  [::b]%s[-:-:-]\n\n", s.title)
		for _, k := range s.keys {
			fmt.Fprintf(&b, "  %s%-30s[-:-:-] %s\n", kc, tview.Escape(k[0]), k[1])
		}
	}
	return b.String()
}
