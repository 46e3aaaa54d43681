package views

import (
	"fmt"
	"time"

	"github.com/rivo/tview"
)

// StatusBar displays the profile, store backend and detail state.
type StatusBar struct {
	*tview.TextView
	profile string
	backend string
	state   string
	loading bool
	now     func() time.Time
}

// NewStatusBar creates a new status bar.
func NewStatusBar(profile, backend string) *StatusBar {
	tv := tview.NewTextView().
		SetDynamicColors(true)
	tv.SetBackgroundColor(tview.Styles.MoreContrastBackgroundColor)

	sb := &StatusBar{TextView: tv, profile: profile, backend: backend, now: time.Now}
	sb.render()
	return sb
}

// SetState updates the detail state display.
func (sb *StatusBar) SetState(state string) {
	sb.state = state
	sb.render()
}

// SetLoading toggles the network activity indicator.
func (sb *StatusBar) SetLoading(loading bool) {
	sb.loading = loading
	sb.render()
}

// Tick redraws the clock.
func (sb *StatusBar) Tick() {
	sb.render()
}

func (sb *StatusBar) render() {
	sb.Clear()
	_, _ = fmt.Fprint(sb, sb.line())
}

func (sb *StatusBar) line() string {
	spinner := " "
	if sb.loading {
		spinner = "[green]~[-]"
	}
	state := sb.state
	if state == "" {
		state = "idle"
	}
	return fmt.Sprintf(" [::b]%s[-:-:-] | %s | %s %s | %s",
		sb.profile, sb.backend, state, spinner, sb.now().Format("15:04"))
}
