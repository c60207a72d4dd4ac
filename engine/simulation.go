package engine

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"sync/atomic"

	"github.com/lixenwraith/zone-royale/ai"
	"github.com/lixenwraith/zone-royale/combat"
	"github.com/lixenwraith/zone-royale/config"
	"github.com/lixenwraith/zone-royale/entity"
	"github.com/lixenwraith/zone-royale/status"
	"github.com/lixenwraith/zone-royale/store"
	"github.com/lixenwraith/zone-royale/vmath"
	"github.com/lixenwraith/zone-royale/zone"
)

// persistRequest is the terminal match state waiting to be stored
type persistRequest struct {
	matchID int
	patch   store.MatchPatch
}

// simulation owns the match aggregate; every method runs on the engine goroutine
type simulation struct {
	cfg      config.Config
	matches  store.MatchStore
	players  store.PlayerStore
	weapons  store.WeaponStore
	resolver *combat.Resolver
	zones    *zone.Controller
	ai       *ai.Controller
	rng      *rand.Rand
	logger   *log.Logger
	emit     func(Event)

	state     State
	base      []*entity.Player // roster as loaded, copied into each match
	match     *entity.Match
	bullets   []entity.Bullet
	summary   *Summary
	placement int // human finishing rank once dead
	pending   *persistRequest

	// Cached metric pointers
	statTicksAI     *atomic.Int64
	statTicksZone   *atomic.Int64
	statTicksClock  *atomic.Int64
	statTicksDamage *atomic.Int64
	statMatches     *atomic.Int64
	statShots       *atomic.Int64
	statHits        *atomic.Int64
	statKills       *atomic.Int64
	statFailures    *atomic.Int64
	statRadius      *status.Gauge
	statState       *status.Label
}

func newSimulation(
	cfg config.Config,
	matches store.MatchStore,
	players store.PlayerStore,
	weapons store.WeaponStore,
	rng *rand.Rand,
	logger *log.Logger,
	reg *status.Registry,
	emit func(Event),
) *simulation {
	s := &simulation{
		cfg:             cfg,
		matches:         matches,
		players:         players,
		weapons:         weapons,
		resolver:        combat.NewResolver(cfg.Combat),
		zones:           zone.NewController(cfg.Zone),
		ai:              ai.NewController(cfg.AI),
		rng:             rng,
		logger:          logger,
		emit:            emit,
		state:           StateMenu,
		statTicksAI:     reg.Counter(status.TicksAI),
		statTicksZone:   reg.Counter(status.TicksZone),
		statTicksClock:  reg.Counter(status.TicksClock),
		statTicksDamage: reg.Counter(status.TicksDamage),
		statMatches:     reg.Counter(status.Matches),
		statShots:       reg.Counter(status.Shots),
		statHits:        reg.Counter(status.Hits),
		statKills:       reg.Counter(status.Kills),
		statFailures:    reg.Counter(status.StoreFailures),
		statRadius:      reg.Gauge(status.ZoneRadius),
		statState:       reg.Label(status.State),
	}
	s.statState.Store(s.state.String())
	return s
}

func (s *simulation) storeContext(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.cfg.Store.PersistTimeout.Duration)
}

// loadRoster replaces the base roster from the player and weapon stores
// The previous roster is kept on failure
func (s *simulation) loadRoster(ctx context.Context) error {
	ctx, cancel := s.storeContext(ctx)
	defer cancel()

	players, err := s.players.ListPlayers(ctx)
	if err != nil {
		return fmt.Errorf("list players: %w", err)
	}
	weapons, err := s.weapons.ListWeapons(ctx)
	if err != nil {
		return fmt.Errorf("list weapons: %w", err)
	}
	roster, err := buildRoster(players, weapons, s.cfg.Arena.MaxPlayers)
	if err != nil {
		return fmt.Errorf("build roster: %w", err)
	}
	s.base = roster
	return nil
}

// enterMenu is the reset procedure: clear the match, zero the scoreboard, reload the roster
func (s *simulation) enterMenu(ctx context.Context) error {
	s.setState(StateMenu)
	s.match = nil
	s.bullets = nil
	s.summary = nil
	s.placement = 0
	if err := s.loadRoster(ctx); err != nil {
		s.logger.Printf("[ENGINE] roster load failed, keeping %d players: %v", len(s.base), err)
		return err
	}
	s.logger.Printf("[ENGINE] roster loaded: %d players", len(s.base))
	return nil
}

func (s *simulation) setState(next State) {
	if s.state != next {
		s.logger.Printf("[ENGINE] state %s -> %s", s.state, next)
	}
	s.state = next
	s.statState.Store(next.String())
}

// start creates the store record, spawns the zone and resets every player
func (s *simulation) start(ctx context.Context) error {
	if !CanTransition(s.state, StateActive) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, s.state, StateActive)
	}
	if len(s.base) == 0 {
		if err := s.loadRoster(ctx); err != nil {
			return fmt.Errorf("start: %w", err)
		}
	}

	area := s.cfg.Arena.Map
	z, err := s.zones.Spawn(area.Center())
	if err != nil {
		return fmt.Errorf("start: %w", err)
	}

	sctx, cancel := s.storeContext(ctx)
	defer cancel()
	draft := store.NewMatchDraft(area, store.ZoneRecord{
		Center:          z.Center,
		Radius:          z.Radius,
		DamagePerSecond: z.DamagePerSecond,
	}, s.cfg.Arena.MaxPlayers)
	rec, err := s.matches.Create(sctx, draft)
	if err != nil {
		s.statFailures.Add(1)
		return fmt.Errorf("%w: create match: %w", ErrPersistence, err)
	}
	active := store.StateActive
	if _, err := s.matches.Update(sctx, rec.ID, store.MatchPatch{State: &active}); err != nil {
		s.statFailures.Add(1)
		s.logger.Printf("[ENGINE] match %d activate failed: %v", rec.ID, err)
	}

	players := cloneRoster(s.base)
	for _, p := range players {
		p.ResetForMatch(vmath.RandomPoint(area, s.cfg.Arena.SpawnMargin, s.rng))
	}

	s.match = &entity.Match{
		ID:      rec.ID,
		Name:    rec.Name,
		State:   entity.LifecycleActive,
		Zone:    z,
		Players: players,
		Phase:   1,
	}
	s.bullets = nil
	s.summary = nil
	s.placement = 0
	s.setState(StateActive)
	s.statMatches.Add(1)
	s.statRadius.Set(z.Radius)
	s.logger.Printf("[ENGINE] match %d %q started with %d players", rec.ID, rec.Name, len(players))
	s.emit(Event{Kind: EventMatchStarted, MatchID: rec.ID})
	return nil
}

// aiTick moves every alive AI player, then checks termination in the same tick
func (s *simulation) aiTick() {
	if s.state != StateActive {
		return
	}
	s.statTicksAI.Add(1)
	m := s.match
	for _, p := range m.Players {
		if p.Human || !p.Alive {
			continue
		}
		ai.Apply(p, s.ai.Step(p, m.Zone.Center), s.cfg.Arena.Map, s.cfg.Arena.PlayerMargin)
	}
	s.checkEnd()
}

// zoneTick shrinks the zone; the phase advances only on an actual shrink
func (s *simulation) zoneTick() {
	if s.state != StateActive {
		return
	}
	s.statTicksZone.Add(1)
	m := s.match
	z, shrunk := s.zones.Advance(m.Zone)
	m.Zone = z
	s.statRadius.Set(z.Radius)
	if shrunk {
		m.Phase++
		s.emit(Event{Kind: EventZoneShrunk, MatchID: m.ID, Amount: m.Phase})
	}
}

// clockTick counts elapsed seconds
func (s *simulation) clockTick() {
	if s.state != StateActive {
		return
	}
	s.statTicksClock.Add(1)
	s.match.Elapsed++
}

// damageTick hurts the human player while outside the zone
func (s *simulation) damageTick() {
	if s.state != StateActive {
		return
	}
	s.statTicksDamage.Add(1)
	m := s.match
	if h, ok := m.Human(); ok && h.Alive && zone.IsOutside(h.Position, m.Zone) {
		dealt, killed := h.ApplyDamage(m.Zone.DamagePerSecond)
		if dealt > 0 {
			s.emit(Event{Kind: EventZoneDamage, MatchID: m.ID, PlayerID: h.ID, Amount: dealt})
		}
		if killed {
			s.notePlacement()
		}
	}
	s.checkEnd()
}

func (s *simulation) lookup(id entity.PlayerID) (*entity.Player, error) {
	if s.state != StateActive {
		return nil, fmt.Errorf("%w: state %s", ErrNotActive, s.state)
	}
	p, ok := s.match.Player(id)
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownPlayer, id)
	}
	return p, nil
}

// move integrates one frame of movement along the normalized direction
// Dead players and zero directions are ignored
func (s *simulation) move(id entity.PlayerID, dir vmath.Vec2) error {
	p, err := s.lookup(id)
	if err != nil {
		return err
	}
	if !p.Alive {
		return nil
	}
	unit, mag := vmath.Normalize(dir)
	if mag == 0 {
		return nil
	}
	next := p.Position.Add(unit.Scale(s.cfg.Arena.PlayerSpeed))
	p.Position = vmath.ClampToRect(next, s.cfg.Arena.Map, s.cfg.Arena.PlayerMargin)
	return nil
}

// shoot resolves a shot, spawns its tracer and checks termination
func (s *simulation) shoot(id entity.PlayerID, target vmath.Vec2) (combat.Outcome, error) {
	p, err := s.lookup(id)
	if err != nil {
		return combat.Outcome{}, err
	}
	m := s.match

	out := s.resolver.ResolveShot(p, target, m.Players)
	if !out.Effective() {
		s.emit(Event{Kind: EventShotIneffective, MatchID: m.ID, PlayerID: p.ID})
		return out, nil
	}

	s.statShots.Add(1)
	s.emit(Event{Kind: EventShotFired, MatchID: m.ID, PlayerID: p.ID})
	if b, ok := entity.NewBullet(p.ID, p.Position, target, s.cfg.Combat.BulletSpeed, p.Weapon.Damage); ok {
		s.bullets = append(s.bullets, b)
	}

	switch out.Kind {
	case combat.OutcomeHit:
		s.statHits.Add(1)
		s.emit(Event{Kind: EventHit, MatchID: m.ID, PlayerID: p.ID, TargetID: out.TargetID, Amount: out.Damage})
	case combat.OutcomeKill:
		s.statHits.Add(1)
		s.statKills.Add(1)
		s.emit(Event{Kind: EventKill, MatchID: m.ID, PlayerID: p.ID, TargetID: out.TargetID, Amount: out.Damage})
		if victim, ok := m.Player(out.TargetID); ok && victim.Human {
			s.notePlacement()
		}
	}
	s.checkEnd()
	return out, nil
}

// frame advances tracers by one render frame
func (s *simulation) frame() {
	if s.state != StateActive || len(s.bullets) == 0 {
		return
	}
	s.bullets = combat.AdvanceBullets(s.bullets, s.cfg.Arena.Map)
}

// notePlacement records the human's rank right after their death
func (s *simulation) notePlacement() {
	s.placement = s.match.AliveCount() + 1
}

// checkEnd ends the match when at most one player lives or the human is dead
func (s *simulation) checkEnd() {
	if s.state != StateActive {
		return
	}
	m := s.match
	h, ok := m.Human()
	if m.AliveCount() > 1 && ok && h.Health > 0 {
		return
	}
	s.end()
}

// end commits the terminal state once; later calls are no-ops
func (s *simulation) end() {
	if s.state != StateActive {
		return
	}
	m := s.match
	s.setState(StateEnded)
	m.State = entity.LifecycleEnded
	s.bullets = nil

	var winnerID entity.PlayerID
	if alive := m.Alive(); len(alive) == 1 {
		winnerID = alive[0].ID
		m.Winner = &winnerID
	}
	s.summary = summarize(m, s.placement)

	ended := store.StateEnded
	elapsed := m.Elapsed
	patch := store.MatchPatch{State: &ended, TimeElapsed: &elapsed}
	if m.Winner != nil {
		w := int(*m.Winner)
		patch.WinnerID = &w
	}
	s.pending = &persistRequest{matchID: m.ID, patch: patch}

	s.logger.Printf("[ENGINE] match %d ended after %ds, winner %d", m.ID, m.Elapsed, winnerID)
	s.emit(Event{Kind: EventMatchEnded, MatchID: m.ID, PlayerID: winnerID})
}

// returnToMenu leaves Ended, or aborts Active, and runs the reset procedure
// An aborted match is closed in the store without a winner
func (s *simulation) returnToMenu(ctx context.Context) error {
	if !CanTransition(s.state, StateMenu) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, s.state, StateMenu)
	}
	if s.state == StateActive {
		m := s.match
		ended := store.StateEnded
		elapsed := m.Elapsed
		s.pending = &persistRequest{matchID: m.ID, patch: store.MatchPatch{State: &ended, TimeElapsed: &elapsed}}
		s.logger.Printf("[ENGINE] match %d aborted after %ds", m.ID, m.Elapsed)
	}
	// Roster failure keeps the previous roster; menu is still entered
	_ = s.enterMenu(ctx)
	return nil
}

// takePending hands the queued persistence request to the caller
func (s *simulation) takePending() *persistRequest {
	p := s.pending
	s.pending = nil
	return p
}
