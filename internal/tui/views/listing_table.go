package views

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/matheus3301/estate/internal/listing"
	"github.com/matheus3301/estate/internal/tui/ui"
)

var listingColumns = []string{"", "NAME", "TYPE", "PRICE", "OFFER", "BEDS", "BATHS", "ADDRESS"}

// listingRow returns the table cells for one listing.
func listingRow(f *listing.Formatter, s listing.Summary, wished bool) []string {
	mark := " "
	if wished {
		mark = "♥"
	}
	return []string{
		mark,
		truncate(sanitizeForTerminal(s.Name), 40),
		listing.TypeLabel(s),
		f.Price(s),
		f.Discount(s),
		listing.Beds(s),
		listing.Baths(s),
		truncate(sanitizeForTerminal(s.Address), 40),
	}
}

// listingTable is a selectable table of listings shared by the home and
// wishlist views. Rows that are not listings are not selectable.
type listingTable struct {
	*tview.Table
	theme    *ui.Theme
	format   *listing.Formatter
	rows     map[int]listing.Summary
	onSelect func(listing.Summary)
}

func newListingTable(theme *ui.Theme, format *listing.Formatter, title string) *listingTable {
	table := tview.NewTable().
		SetSelectable(true, false).
		SetFixed(1, 0)
	table.SetBorder(true)
	table.SetTitle(title)
	table.SetBorderColor(theme.Border)
	table.SetTitleColor(theme.Title)
	table.SetBackgroundColor(theme.Bg)
	table.SetSelectedStyle(tcell.StyleDefault.
		Foreground(theme.Cursor.Fg).
		Background(theme.Cursor.Bg))

	lt := &listingTable{
		Table:  table,
		theme:  theme,
		format: format,
		rows:   make(map[int]listing.Summary),
	}
	table.SetSelectedFunc(func(row, _ int) {
		if s, ok := lt.rows[row]; ok && lt.onSelect != nil {
			lt.onSelect(s)
		}
	})
	return lt
}

func (lt *listingTable) reset() {
	lt.Clear()
	lt.rows = make(map[int]listing.Summary)
	for col, h := range listingColumns {
		lt.SetCell(0, col, tview.NewTableCell(h).
			SetTextColor(lt.theme.Header.Fg).
			SetBackgroundColor(lt.theme.Header.Bg).
			SetAttributes(tcell.AttrBold).
			SetSelectable(false))
	}
}

func (lt *listingTable) addNote(text string, color tcell.Color) {
	row := lt.GetRowCount()
	lt.SetCell(row, 1, tview.NewTableCell(text).
		SetTextColor(color).
		SetAttributes(tcell.AttrBold).
		SetSelectable(false))
}

func (lt *listingTable) addListing(s listing.Summary, wished bool) {
	row := lt.GetRowCount()
	for col, text := range listingRow(lt.format, s, wished) {
		cell := tview.NewTableCell(tview.Escape(text)).SetTextColor(lt.theme.Fg)
		switch col {
		case 0:
			cell.SetTextColor(lt.theme.Wish)
		case 3:
			cell.SetTextColor(lt.theme.Price).SetAlign(tview.AlignRight)
		case 4:
			cell.SetTextColor(lt.theme.Offer)
		case 7:
			cell.SetExpansion(1)
		}
		lt.SetCell(row, col, cell)
	}
	lt.rows[row] = s
}

// restoreSelection keeps the cursor on the listing id if it is still shown,
// otherwise moves it to the first listing row.
func (lt *listingTable) restoreSelection(id string) {
	first := -1
	for row := 1; row < lt.GetRowCount(); row++ {
		s, ok := lt.rows[row]
		if !ok {
			continue
		}
		if first < 0 {
			first = row
		}
		if s.ID == id {
			lt.Select(row, 0)
			return
		}
	}
	if first > 0 {
		lt.Select(first, 0)
	}
}

// Selected returns the listing under the cursor.
func (lt *listingTable) Selected() (listing.Summary, bool) {
	row, _ := lt.GetSelection()
	s, ok := lt.rows[row]
	return s, ok
}

// SetOnSelect sets the callback for Enter on a listing row.
func (lt *listingTable) SetOnSelect(fn func(listing.Summary)) {
	lt.onSelect = fn
}
