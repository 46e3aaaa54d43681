package ui

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// Crumbs shows the navigation history, e.g. "listings > listing:Sea View".
type Crumbs struct {
	*tview.TextView
	active, inactive Pair
	labels           map[string]string
}

// NewCrumbs creates an empty breadcrumb bar.
func NewCrumbs(theme *Theme) *Crumbs {
	tv := tview.NewTextView().SetDynamicColors(true)
	tv.SetBackgroundColor(theme.Bg)
	return &Crumbs{
		TextView: tv,
		active:   theme.CrumbActive,
		inactive: theme.CrumbInactive,
		labels:   map[string]string{},
	}
}

// SetLabel appends label to the crumb of page. An empty label removes it.
func (c *Crumbs) SetLabel(page, label string) {
	if label == "" {
		delete(c.labels, page)
	} else {
		c.labels[page] = label
	}
}

// Update redraws the bar for history.
func (c *Crumbs) Update(history []string) {
	c.SetText(c.render(history))
}

func (c *Crumbs) render(history []string) string {
	var b strings.Builder
	for i, page := range history {
		if i > 0 {
			b.WriteString(" > ")
		}
		text := page
		if l, ok := c.labels[page]; ok {
			text += ":" + l
		}
		colors, attr := c.inactive, ""
		if i == len(history)-1 {
			colors, attr = c.active, "b"
		}
		fmt.Fprintf(&b, "[%s:%s:%s] %s [-:-:-]", colorName(colors.Fg), colorName(colors.Bg), attr, tview.Escape(text))
	}
	return b.String()
}

func colorName(c tcell.Color) string {
	for name, v := range tcell.ColorNames {
		if v == c {
			return name
		}
	}
	return fmt.Sprintf("#%06x", c.Hex())
}
