package ui

import (
	"fmt"
	"strings"

	"github.com/rivo/tview"
)

// Menu displays keyboard shortcut hints in columns.
type Menu struct {
	*tview.TextView
	theme *Theme
	rows  int
}

// NewMenu creates a new menu hint bar with the given number of rows per column.
func NewMenu(theme *Theme, rows int) *Menu {
	tv := tview.NewTextView().
		SetDynamicColors(true).
		SetTextAlign(tview.AlignLeft)
	tv.SetBackgroundColor(theme.Bg)
	tv.SetBorderPadding(0, 0, 2, 0)

	if rows < 1 {
		rows = 1
	}
	return &Menu{
		TextView: tv,
		theme:    theme,
		rows:     rows,
	}
}

// Update renders the view's hints first, then the global ones.
func (m *Menu) Update(global, view []MenuHint) {
	m.Clear()
	_, _ = fmt.Fprint(m, m.render(append(append([]MenuHint(nil), view...), global...)))
}

func (m *Menu) render(hints []MenuHint) string {
	keyColor := colorName(m.theme.Key)
	numColor := colorName(m.theme.NumericKey)

	cells := make([]string, len(hints))
	for i, h := range hints {
		kc := keyColor
		if h.Numeric {
			kc = numColor
		}
		cells[i] = fmt.Sprintf("[%s::b]<%s>[-:-:-] %-16s", kc, tview.Escape(h.Key), h.Description)
	}

	var b strings.Builder
	for r := 0; r < m.rows; r++ {
		for i := r; i < len(cells); i += m.rows {
			b.WriteString(cells[i])
		}
		b.WriteByte('\n')
	}
	return b.String()
}
