package ui

import (
	"strings"

	"github.com/rivo/tview"
)

var logoLines = []string{
	"╔═╗╔═╗╔╦╗╔═╗╔╦╗╔═╗",
	"║╣ ╚═╗ ║ ╠═╣ ║ ║╣ ",
	"╚═╝╚═╝ ╩ ╩ ╩ ╩ ╚═╝",
}

const tagline = "Listings in your terminal"

// NewLogo returns the header logo.
func NewLogo(theme *Theme) *tview.TextView {
	var b strings.Builder
	for _, line := range logoLines {
		b.WriteString(Tag(theme.Title) + "[::b]" + line + "[-:-:-]\n")
	}
	b.WriteString(Tag(theme.Fg) + tagline + "[-]")

	tv := tview.NewTextView().SetDynamicColors(true).SetText(b.String())
	tv.SetBackgroundColor(theme.Bg)
	tv.SetBorderPadding(1, 0, 2, 0)
	return tv
}
