package engine

// State is the engine lifecycle
type State uint8

const (
	StateMenu State = iota
	StateActive
	StateEnded
)

func (s State) String() string {
	switch s {
	case StateMenu:
		return "menu"
	case StateActive:
		return "active"
	case StateEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// transitions lists every allowed edge; Active is entered only by an explicit start
var transitions = map[State][]State{
	StateMenu:   {StateActive},
	StateActive: {StateEnded, StateMenu},
	StateEnded:  {StateMenu},
}

// CanTransition reports whether from -> to is a lifecycle edge
func CanTransition(from, to State) bool {
	for _, s := range transitions[from] {
		if s == to {
			return true
		}
	}
	return false
}
