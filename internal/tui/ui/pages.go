package ui

import (
	"slices"

	"github.com/rivo/tview"
)

// Pages keeps a navigation history over tview.Pages. Only the top entry is
// visible. Pushing a page that is already in the history unwinds to it, so a
// page appears at most once.
type Pages struct {
	*tview.Pages
	history  []string
	onChange func(history []string)
	onLeave  func(name string)
}

// NewPages creates an empty history.
func NewPages() *Pages {
	return &Pages{Pages: tview.NewPages()}
}

// SetOnChange is called with a copy of the history after every navigation.
func (p *Pages) SetOnChange(fn func(history []string)) { p.onChange = fn }

// SetOnLeave is called once for each page that leaves the history.
func (p *Pages) SetOnLeave(fn func(name string)) { p.onLeave = fn }

// Push navigates to name.
func (p *Pages) Push(name string) {
	if i := slices.Index(p.history, name); i >= 0 {
		p.navigate(i+1, nil)
		return
	}
	p.navigate(len(p.history), []string{name})
}

// Pop goes back one page and returns the page left. The root page stays, in
// which case Pop returns "".
func (p *Pages) Pop() string {
	n := len(p.history)
	if n < 2 {
		return ""
	}
	top := p.history[n-1]
	p.navigate(n-1, nil)
	return top
}

// Reset replaces the whole history with name.
func (p *Pages) Reset(name string) {
	p.navigate(0, []string{name})
}

// Current returns the visible page, or "" before the first navigation.
func (p *Pages) Current() string {
	if len(p.history) == 0 {
		return ""
	}
	return p.history[len(p.history)-1]
}

// Stack returns a copy of the history, root first.
func (p *Pages) Stack() []string { return slices.Clone(p.history) }

// Depth is the length of the history.
func (p *Pages) Depth() int { return len(p.history) }

// navigate truncates the history to keep entries, appends push and shows
// the new top.
func (p *Pages) navigate(keep int, push []string) {
	if top := p.Current(); top != "" {
		p.HidePage(top)
	}
	left := slices.Clone(p.history[keep:])
	p.history = append(p.history[:keep], push...)
	if p.onLeave != nil {
		for i := len(left) - 1; i >= 0; i-- {
			p.onLeave(left[i])
		}
	}
	if top := p.Current(); top != "" {
		p.ShowPage(top)
		p.SendToFront(top)
	}
	if p.onChange != nil {
		p.onChange(p.Stack())
	}
}
