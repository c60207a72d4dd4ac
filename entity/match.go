package entity

// Lifecycle is the persisted match state
type Lifecycle uint8

const (
	LifecycleMenu Lifecycle = iota
	LifecycleLobby
	LifecycleActive
	LifecycleEnded
)

func (l Lifecycle) String() string {
	switch l {
	case LifecycleMenu:
		return "menu"
	case LifecycleLobby:
		return "lobby"
	case LifecycleActive:
		return "active"
	case LifecycleEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// ParseLifecycle is the inverse of Lifecycle.String
func ParseLifecycle(s string) (Lifecycle, bool) {
	for l := LifecycleMenu; l <= LifecycleEnded; l++ {
		if l.String() == s {
			return l, true
		}
	}
	return LifecycleMenu, false
}

// Match owns its zone and roster exclusively
type Match struct {
	ID      int
	Name    string
	State   Lifecycle
	Zone    Zone
	Players []*Player // roster order, the only player collection
	Elapsed int       // whole seconds
	Phase   int
	Winner  *PlayerID // set only in ended, only with a sole survivor
}

// Player looks up a roster member by id
func (m *Match) Player(id PlayerID) (*Player, bool) {
	for _, p := range m.Players {
		if p.ID == id {
			return p, true
		}
	}
	return nil, false
}

// Human returns the human-controlled player
func (m *Match) Human() (*Player, bool) {
	for _, p := range m.Players {
		if p.Human {
			return p, true
		}
	}
	return nil, false
}

// AliveCount returns the number of players still alive
func (m *Match) AliveCount() int {
	n := 0
	for _, p := range m.Players {
		if p.Alive {
			n++
		}
	}
	return n
}

// Alive returns the living players in roster order
func (m *Match) Alive() []*Player {
	out := make([]*Player, 0, len(m.Players))
	for _, p := range m.Players {
		if p.Alive {
			out = append(out, p)
		}
	}
	return out
}
