package listing

import "github.com/matheus3301/estate/internal/status"

// State is the detail controller's lifecycle state.
type State string

const (
	Idle    State = "idle"
	Loading State = "loading"
	Ready   State = "ready"
	Failed  State = "failed"
)

// Every Open re-enters Loading, including from Loading itself.
var transitions = status.Transitions[State]{
	Idle:    {Loading},
	Loading: {Loading, Ready, Failed, Idle},
	Ready:   {Loading, Idle},
	Failed:  {Loading, Idle},
}
