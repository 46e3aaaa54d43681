package ui

// MenuHint describes a keyboard shortcut for display in the menu bar.
type MenuHint struct {
	Key         string
	Description string
	Numeric     bool // true for digit shortcuts (displayed in a different color)
}

// Hinter is implemented by views that advertise their own shortcuts.
type Hinter interface {
	Name() string
	Hints() []MenuHint
}
