package status

import (
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/matheus3301/estate/internal/bus"
)

// ErrInvalidTransition is returned when a transition is not in the table.
var ErrInvalidTransition = errors.New("invalid transition")

// Transitions maps each state to the states it may move to.
type Transitions[S ~string] map[S][]S

// Allows reports whether from -> to is a listed transition.
func (t Transitions[S]) Allows(from, to S) bool {
	return slices.Contains(t[from], to)
}

// Machine tracks and enforces state transitions for one controller.
type Machine[S ~string] struct {
	mu          sync.RWMutex
	current     S
	transitions Transitions[S]
	bus         *bus.Bus
	kind        bus.Kind
}

// NewMachine creates a state machine starting in initial. Every successful
// transition is published on b (if non-nil) under kind.
func NewMachine[S ~string](initial S, transitions Transitions[S], b *bus.Bus, kind bus.Kind) *Machine[S] {
	return &Machine[S]{
		current:     initial,
		transitions: transitions,
		bus:         b,
		kind:        kind,
	}
}

// Current returns the current state.
func (m *Machine[S]) Current() S {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

// Transition attempts to move to a new state. Returns error if transition is invalid.
func (m *Machine[S]) Transition(to S) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.transitions.Allows(m.current, to) {
		return fmt.Errorf("%w from %s to %s", ErrInvalidTransition, m.current, to)
	}
	from := m.current
	m.current = to
	m.bus.Emit(m.kind, Change[S]{From: from, To: to})
	return nil
}

// Change is the payload for state change events.
type Change[S ~string] struct {
	From S
	To   S
}
