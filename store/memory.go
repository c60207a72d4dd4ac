package store

import (
	"context"
	"embed"
	"encoding/json"
	"fmt"
	"slices"
	"sync"
	"time"
)

//go:embed fixtures/*.json
var fixtures embed.FS

// Memory implements every store interface over in-process slices
// Safe for concurrent use
type Memory struct {
	mu      sync.Mutex
	matches []MatchRecord
	players []PlayerRecord
	weapons []WeaponRecord
	latency time.Duration
}

// MemoryOption configures Memory
type MemoryOption func(*Memory)

// WithLatency delays every call by d, honoring context cancellation
func WithLatency(d time.Duration) MemoryOption {
	return func(m *Memory) { m.latency = d }
}

// WithPlayers replaces the seeded roster
func WithPlayers(players []PlayerRecord) MemoryOption {
	return func(m *Memory) { m.players = slices.Clone(players) }
}

// WithWeapons replaces the seeded weapons
func WithWeapons(weapons []WeaponRecord) MemoryOption {
	return func(m *Memory) { m.weapons = slices.Clone(weapons) }
}

// NewMemory returns a store seeded from the embedded fixtures
func NewMemory(opts ...MemoryOption) (*Memory, error) {
	m := &Memory{}
	if err := decodeFixture("fixtures/players.json", &m.players); err != nil {
		return nil, err
	}
	if err := decodeFixture("fixtures/weapons.json", &m.weapons); err != nil {
		return nil, err
	}
	if err := decodeFixture("fixtures/matches.json", &m.matches); err != nil {
		return nil, err
	}
	for _, opt := range opts {
		opt(m)
	}
	return m, nil
}

func decodeFixture(name string, out any) error {
	data, err := fixtures.ReadFile(name)
	if err != nil {
		return fmt.Errorf("read fixture %s: %w", name, err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode fixture %s: %w", name, err)
	}
	return nil
}

func (m *Memory) wait(ctx context.Context) error {
	if m.latency <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(m.latency)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// Create stores draft as a new lobby match with id max+1
func (m *Memory) Create(ctx context.Context, draft MatchDraft) (MatchRecord, error) {
	if err := m.wait(ctx); err != nil {
		return MatchRecord{}, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	id := 0
	for _, r := range m.matches {
		id = max(id, r.ID)
	}
	rec := MatchRecord{
		ID:         id + 1,
		Name:       draft.Name,
		RunKey:     draft.RunKey,
		State:      StateLobby,
		MaxPlayers: draft.MaxPlayers,
		GameMode:   draft.GameMode,
		Zone:       draft.Zone,
		MapSize:    draft.MapSize,
	}
	m.matches = append(m.matches, rec)
	return rec, nil
}

// Update merges the non-nil patch fields into match id
func (m *Memory) Update(ctx context.Context, id int, patch MatchPatch) (MatchRecord, error) {
	if err := m.wait(ctx); err != nil {
		return MatchRecord{}, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	i := slices.IndexFunc(m.matches, func(r MatchRecord) bool { return r.ID == id })
	if i < 0 {
		return MatchRecord{}, fmt.Errorf("match %d: %w", id, ErrNotFound)
	}
	rec := &m.matches[i]
	if patch.State != nil {
		rec.State = *patch.State
	}
	if patch.TimeElapsed != nil {
		rec.TimeElapsed = *patch.TimeElapsed
	}
	if patch.WinnerID != nil {
		w := *patch.WinnerID
		rec.WinnerID = &w
	}
	return cloneMatch(*rec), nil
}

// Get returns match id
func (m *Memory) Get(ctx context.Context, id int) (MatchRecord, error) {
	if err := m.wait(ctx); err != nil {
		return MatchRecord{}, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, r := range m.matches {
		if r.ID == id {
			return cloneMatch(r), nil
		}
	}
	return MatchRecord{}, fmt.Errorf("match %d: %w", id, ErrNotFound)
}

// Active returns matches in the active state
func (m *Memory) Active(ctx context.Context) ([]MatchRecord, error) {
	return m.filter(ctx, StateActive)
}

// History returns ended matches
func (m *Memory) History(ctx context.Context) ([]MatchRecord, error) {
	return m.filter(ctx, StateEnded)
}

func (m *Memory) filter(ctx context.Context, state string) ([]MatchRecord, error) {
	if err := m.wait(ctx); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []MatchRecord
	for _, r := range m.matches {
		if r.State == state {
			out = append(out, cloneMatch(r))
		}
	}
	return out, nil
}

// ListPlayers returns the roster in store order
func (m *Memory) ListPlayers(ctx context.Context) ([]PlayerRecord, error) {
	if err := m.wait(ctx); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return slices.Clone(m.players), nil
}

// ListWeapons returns all weapon definitions
func (m *Memory) ListWeapons(ctx context.Context) ([]WeaponRecord, error) {
	if err := m.wait(ctx); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return slices.Clone(m.weapons), nil
}

func cloneMatch(r MatchRecord) MatchRecord {
	if r.WinnerID != nil {
		w := *r.WinnerID
		r.WinnerID = &w
	}
	return r
}
