package keys

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// Action represents a keybinding action.
type Action struct {
	Key         tcell.Key
	Rune        rune
	Description string
	Handler     func()
	Visible     bool
}

// Matches returns true if the event matches this action.
func (a *Action) Matches(ev *tcell.EventKey) bool {
	if a.Key != tcell.KeyRune {
		return ev.Key() == a.Key
	}
	return ev.Key() == tcell.KeyRune && ev.Rune() == a.Rune
}

// Label returns the display name of the bound key, e.g. "t" or "Enter".
func (a *Action) Label() string {
	if a.Key == tcell.KeyRune {
		return string(a.Rune)
	}
	if name, ok := tcell.KeyNames[a.Key]; ok {
		return name
	}
	return fmt.Sprintf("key%d", a.Key)
}

// Hint is a visible binding as shown in the menu.
type Hint struct {
	Key         string
	Description string
}

// Registry holds keybindings organized by scope. Bindings keep their
// registration order so hints render stably.
type Registry struct {
	global []*Action
	views  map[string][]*Action
}

// NewRegistry creates a new keybinding registry.
func NewRegistry() *Registry {
	return &Registry{
		views: make(map[string][]*Action),
	}
}

// AddGlobal registers a global keybinding.
func (r *Registry) AddGlobal(action *Action) {
	r.global = append(r.global, action)
}

// AddView registers a view-specific keybinding.
func (r *Registry) AddView(view string, action *Action) {
	r.views[view] = append(r.views[view], action)
}

// GlobalHints returns visible global bindings.
func (r *Registry) GlobalHints() []Hint {
	return hints(r.global)
}

func hints(actions []*Action) []Hint {
	var out []Hint
	for _, a := range actions {
		if a.Visible {
			out = append(out, Hint{Key: a.Label(), Description: a.Description})
		}
	}
	return out
}

// HandleEvent dispatches a key event to the matching action in the given view.
// View bindings shadow global ones. Returns true if a handler matched.
func (r *Registry) HandleEvent(view string, ev *tcell.EventKey) bool {
	for _, a := range r.views[view] {
		if a.Matches(ev) {
			a.Handler()
			return true
		}
	}
	for _, a := range r.global {
		if a.Matches(ev) {
			a.Handler()
			return true
		}
	}
	return false
}
