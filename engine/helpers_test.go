package engine

import (
	"context"
	"math/rand"
	"sync"
	"testing"

	"github.com/lixenwraith/zone-royale/config"
	"github.com/lixenwraith/zone-royale/entity"
	"github.com/lixenwraith/zone-royale/status"
	"github.com/lixenwraith/zone-royale/store"
)

// countingStore counts terminal updates and can fail or stall them
type countingStore struct {
	*store.Memory

	mu         sync.Mutex
	ended      int
	failEnded  error
	blockEnded bool
}

func (c *countingStore) Update(ctx context.Context, id int, patch store.MatchPatch) (store.MatchRecord, error) {
	if patch.State != nil && *patch.State == store.StateEnded {
		c.mu.Lock()
		c.ended++
		fail, block := c.failEnded, c.blockEnded
		c.mu.Unlock()
		if block {
			<-ctx.Done()
			return store.MatchRecord{}, ctx.Err()
		}
		if fail != nil {
			return store.MatchRecord{}, fail
		}
	}
	return c.Memory.Update(ctx, id, patch)
}

func (c *countingStore) endedCalls() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ended
}

func newCountingStore(t *testing.T) *countingStore {
	t.Helper()
	mem, err := store.NewMemory()
	if err != nil {
		t.Fatalf("NewMemory: %v", err)
	}
	return &countingStore{Memory: mem}
}

// newTestSim returns a simulation in Menu with the fixture roster loaded
func newTestSim(t *testing.T) (*simulation, *countingStore, *[]Event) {
	t.Helper()
	cs := newCountingStore(t)
	events := &[]Event{}
	s := newSimulation(config.Default(), cs, cs.Memory, cs.Memory,
		rand.New(rand.NewSource(1)), discardLogger(), status.NewRegistry(),
		func(ev Event) { *events = append(*events, ev) })
	if err := s.enterMenu(context.Background()); err != nil {
		t.Fatalf("enterMenu: %v", err)
	}
	return s, cs, events
}

func startTestSim(t *testing.T) (*simulation, *countingStore, *[]Event) {
	t.Helper()
	s, cs, events := newTestSim(t)
	if err := s.start(context.Background()); err != nil {
		t.Fatalf("start: %v", err)
	}
	return s, cs, events
}

func mustPlayer(t *testing.T, m *entity.Match, id entity.PlayerID) *entity.Player {
	t.Helper()
	p, ok := m.Player(id)
	if !ok {
		t.Fatalf("player %d not in roster", id)
	}
	return p
}

func countEvents(events []Event, kind EventKind) int {
	n := 0
	for _, ev := range events {
		if ev.Kind == kind {
			n++
		}
	}
	return n
}
