package views

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/matheus3301/estate/internal/contact"
	"github.com/matheus3301/estate/internal/tui/ui"
)

// ContactView lets the user write to a listing's landlord.
type ContactView struct {
	*tview.Flex
	header    *tview.TextView
	input     *tview.InputField
	body      *tview.TextView
	theme     *ui.Theme
	onMessage func(string)
	onLeave   func()
}

// NewContactView creates the contact panel.
func NewContactView(theme *ui.Theme) *ContactView {
	header := tview.NewTextView().SetDynamicColors(true)
	header.SetBackgroundColor(theme.Bg)
	header.SetTextColor(theme.Fg)

	input := tview.NewInputField().
		SetLabel("Message ").
		SetPlaceholder("Enter your message here...")
	input.SetBackgroundColor(theme.Bg)
	input.SetFieldBackgroundColor(theme.Bg)
	input.SetFieldTextColor(theme.Fg)
	input.SetLabelColor(theme.Key)

	body := tview.NewTextView().
		SetDynamicColors(true).
		SetScrollable(true)
	body.SetBackgroundColor(theme.Bg)
	body.SetTextColor(theme.Fg)

	flex := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(header, 3, 0, false).
		AddItem(input, 1, 0, true).
		AddItem(body, 0, 1, false)
	flex.SetBorder(true)
	flex.SetTitle(" Contact landlord ")
	flex.SetBorderColor(theme.Border)
	flex.SetTitleColor(theme.Title)
	flex.SetBackgroundColor(theme.Bg)

	cv := &ContactView{
		Flex:   flex,
		header: header,
		input:  input,
		body:   body,
		theme:  theme,
	}
	input.SetChangedFunc(func(text string) {
		if cv.onMessage != nil {
			cv.onMessage(text)
		}
	})
	input.SetDoneFunc(func(key tcell.Key) {
		if (key == tcell.KeyEnter || key == tcell.KeyTab) && cv.onLeave != nil {
			cv.onLeave()
		}
	})
	return cv
}

// Name implements ui.Hinter.
func (cv *ContactView) Name() string { return "contact" }

// Hints implements ui.Hinter.
func (cv *ContactView) Hints() []ui.MenuHint {
	return []ui.MenuHint{
		{Key: "i", Description: "Edit message"},
		{Key: "1", Description: "Gmail", Numeric: true},
		{Key: "2", Description: "Yahoo", Numeric: true},
		{Key: "3", Description: "Outlook", Numeric: true},
	}
}

// SetOnMessage sets the callback for edits to the message.
func (cv *ContactView) SetOnMessage(fn func(string)) {
	cv.onMessage = fn
}

// SetOnLeaveInput sets the callback for Enter or Tab in the message field.
func (cv *ContactView) SetOnLeaveInput(fn func()) {
	cv.onLeave = fn
}

// Input returns the message field.
func (cv *ContactView) Input() *tview.InputField { return cv.input }

// Body returns the provider panel, which takes focus outside the input.
func (cv *ContactView) Body() *tview.TextView { return cv.body }

// Reset empties the message field.
func (cv *ContactView) Reset() {
	cv.input.SetText("")
}

// Update redraws the panel. link is the compose URL, or "" when none can be
// produced yet.
func (cv *ContactView) Update(s contact.Session, link string) {
	cv.header.Clear()
	_, _ = fmt.Fprint(cv.header, renderContactHeader(cv.theme, s))
	cv.body.Clear()
	_, _ = fmt.Fprint(cv.body, renderContactBody(cv.theme, s, link))
}

func renderContactHeader(theme *ui.Theme, s contact.Session) string {
	name := ""
	if s.Listing != nil {
		name = clean(s.Listing.Name)
	}
	switch {
	case s.State == contact.Revealing:
		return "\n Looking up the landlord…"
	case s.Landlord == nil || s.Landlord.Email == "":
		return fmt.Sprintf("\n %sLandlord contact unavailable.[-]", ui.Tag(theme.Warn))
	default:
		return fmt.Sprintf("\n Contact [::b]%s[-:-:-] for [::b]%s[-:-:-]",
			clean(s.Landlord.Username), name)
	}
}

func renderContactBody(theme *ui.Theme, s contact.Session, link string) string {
	if s.State != contact.Ready || s.Landlord == nil || s.Landlord.Email == "" {
		return ""
	}
	if !s.CanOfferLinks() {
		return "\n Type a message, then press Enter to choose an email provider."
	}

	var b strings.Builder
	b.WriteString("\n")
	for i, p := range contact.Providers() {
		marker := " "
		if p == s.Provider {
			marker = ui.Tag(theme.Title) + "›[-]"
		}
		fmt.Fprintf(&b, " %s %s<%d>[-] %s\n", marker, ui.Tag(theme.NumericKey), i+1, p.Label())
	}
	if link == "" {
		return b.String()
	}

	fmt.Fprintf(&b, "\n %s%s[-]\n", ui.Tag(theme.Key), clean(link))
	qr, err := renderQR(link)
	if err != nil {
		fmt.Fprintf(&b, "\n  (QR unavailable: %s)\n", clean(err.Error()))
		return b.String()
	}
	b.WriteString("\n" + qr)
	return b.String()
}
