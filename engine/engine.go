// Package engine runs a battle royale match on a single goroutine
//
// Every mutation, whether an external intent or one of the four periodic
// tasks, is serialized through Run. Readers get immutable snapshots.
package engine

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math/rand"
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/zone-royale/combat"
	"github.com/lixenwraith/zone-royale/config"
	"github.com/lixenwraith/zone-royale/core"
	"github.com/lixenwraith/zone-royale/entity"
	"github.com/lixenwraith/zone-royale/parameter"
	"github.com/lixenwraith/zone-royale/status"
	"github.com/lixenwraith/zone-royale/store"
	"github.com/lixenwraith/zone-royale/vmath"
)

type commandKind uint8

const (
	cmdStart commandKind = iota
	cmdMove
	cmdShoot
	cmdFrame
	cmdMenu
	cmdSync
)

type command struct {
	kind   commandKind
	player entity.PlayerID
	vec    vmath.Vec2
	reply  chan reply
}

type reply struct {
	snap    *Snapshot
	outcome combat.Outcome
	err     error
}

// Engine is the match simulation; construct with New and drive with Run
type Engine struct {
	cfg     config.Config
	matches store.MatchStore
	sim     *simulation

	clock  Clock
	logger *log.Logger
	rng    *rand.Rand
	status *status.Registry

	commands chan command
	events   chan Event
	done     chan struct{}
	running  atomic.Bool
	snap     atomic.Pointer[Snapshot]

	// Periodic tasks, all nil outside Active
	aiTicker     Ticker
	zoneTicker   Ticker
	clockTicker  Ticker
	damageTicker Ticker

	persistWG    sync.WaitGroup
	statFailures *atomic.Int64
}

// New validates cfg and wires the store collaborators
func New(cfg config.Config, matches store.MatchStore, players store.PlayerStore, weapons store.WeaponStore, opts ...Option) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if matches == nil || players == nil || weapons == nil {
		return nil, errors.New("engine: nil store")
	}

	e := &Engine{
		cfg:      cfg,
		matches:  matches,
		commands: make(chan command, parameter.CommandQueueSize),
		events:   make(chan Event, parameter.EventQueueSize),
		done:     make(chan struct{}),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.clock == nil {
		e.clock = SystemClock{}
	}
	if e.logger == nil {
		e.logger = discardLogger()
	}
	if e.rng == nil {
		e.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if e.status == nil {
		e.status = status.NewRegistry()
	}
	e.statFailures = e.status.Counter(status.StoreFailures)

	e.sim = newSimulation(cfg, matches, players, weapons, e.rng, e.logger, e.status, e.emit)
	e.publish()
	return e, nil
}

// Run owns the match state until ctx is cancelled
// Loads the roster on entry; waits for in-flight persistence before returning
func (e *Engine) Run(ctx context.Context) error {
	if !e.running.CompareAndSwap(false, true) {
		return fmt.Errorf("%w: engine already running", ErrInvalidTransition)
	}
	defer close(e.done)
	defer e.persistWG.Wait()
	defer e.stopTickers()

	_ = e.sim.enterMenu(ctx)
	e.publish()

	for {
		select {
		case <-ctx.Done():
			return nil

		case cmd := <-e.commands:
			e.handle(ctx, cmd)

		case <-tickC(e.aiTicker):
			e.sim.aiTick()
			e.settle(ctx)

		case <-tickC(e.zoneTicker):
			e.sim.zoneTick()
			e.settle(ctx)

		case <-tickC(e.clockTicker):
			e.sim.clockTick()
			e.settle(ctx)

		case <-tickC(e.damageTicker):
			e.sim.damageTick()
			e.settle(ctx)
		}
	}
}

func (e *Engine) handle(ctx context.Context, cmd command) {
	var r reply
	switch cmd.kind {
	case cmdStart:
		r.err = e.sim.start(ctx)
	case cmdMove:
		r.err = e.sim.move(cmd.player, cmd.vec)
	case cmdShoot:
		r.outcome, r.err = e.sim.shoot(cmd.player, cmd.vec)
	case cmdFrame:
		e.sim.frame()
	case cmdMenu:
		r.err = e.sim.returnToMenu(ctx)
	case cmdSync:
	}
	e.settle(ctx)
	r.snap = e.snap.Load()
	cmd.reply <- r
}

// settle aligns tickers with the state, launches queued persistence and publishes
// Runs after every mutation, so no ticker outlives Active by a single message
func (e *Engine) settle(ctx context.Context) {
	active := e.sim.state == StateActive
	switch {
	case active && e.aiTicker == nil:
		e.startTickers()
	case !active && e.aiTicker != nil:
		e.stopTickers()
	}
	if req := e.sim.takePending(); req != nil {
		e.persist(ctx, *req)
	}
	e.publish()
}

func (e *Engine) startTickers() {
	t := e.cfg.Timing
	e.aiTicker = e.clock.NewTicker(t.AITick.Duration)
	e.zoneTicker = e.clock.NewTicker(t.ZoneTick.Duration)
	e.clockTicker = e.clock.NewTicker(t.ClockTick.Duration)
	e.damageTicker = e.clock.NewTicker(t.ZoneDamageTick.Duration)
}

// stopTickers cancels all four periodic tasks; safe when already stopped
func (e *Engine) stopTickers() {
	for _, t := range []*Ticker{&e.aiTicker, &e.zoneTicker, &e.clockTicker, &e.damageTicker} {
		if *t != nil {
			(*t).Stop()
			*t = nil
		}
	}
}

func tickC(t Ticker) <-chan time.Time {
	if t == nil {
		return nil
	}
	return t.C()
}

// persist stores the terminal state off the loop; failures never touch match state
func (e *Engine) persist(ctx context.Context, req persistRequest) {
	timeout := e.cfg.Store.PersistTimeout.Duration
	pctx := context.WithoutCancel(ctx)

	e.persistWG.Add(1)
	core.Go(func() {
		defer e.persistWG.Done()
		ctx, cancel := context.WithTimeout(pctx, timeout)
		defer cancel()

		if _, err := e.matches.Update(ctx, req.matchID, req.patch); err != nil {
			err = fmt.Errorf("%w: match %d: %w", ErrPersistence, req.matchID, err)
			e.statFailures.Add(1)
			e.logger.Printf("[ENGINE] %v", err)
			e.emit(Event{Kind: EventPersistenceFailed, MatchID: req.matchID, Err: err})
			return
		}
		e.logger.Printf("[ENGINE] match %d persisted", req.matchID)
	})
}

func (e *Engine) publish() {
	e.snap.Store(e.sim.snapshot())
}

// emit never blocks; events are dropped when the consumer lags
func (e *Engine) emit(ev Event) {
	select {
	case e.events <- ev:
	default:
	}
}

func (e *Engine) do(ctx context.Context, cmd command) (reply, error) {
	cmd.reply = make(chan reply, 1)
	select {
	case e.commands <- cmd:
	case <-ctx.Done():
		return reply{}, ctx.Err()
	case <-e.done:
		return reply{}, ErrStopped
	}
	select {
	case r := <-cmd.reply:
		return r, r.err
	case <-ctx.Done():
		return reply{}, ctx.Err()
	case <-e.done:
		return reply{}, ErrStopped
	}
}

// Start enters Active from Menu
func (e *Engine) Start(ctx context.Context) error {
	_, err := e.do(ctx, command{kind: cmdStart})
	return err
}

// Move applies one frame of movement for player id along dir
func (e *Engine) Move(ctx context.Context, id entity.PlayerID, dir vmath.Vec2) error {
	_, err := e.do(ctx, command{kind: cmdMove, player: id, vec: dir})
	return err
}

// Shoot fires at target for player id
// An Ineffective outcome is not an error
func (e *Engine) Shoot(ctx context.Context, id entity.PlayerID, target vmath.Vec2) (combat.Outcome, error) {
	r, err := e.do(ctx, command{kind: cmdShoot, player: id, vec: target})
	return r.outcome, err
}

// Frame advances tracers one render frame and returns the resulting snapshot
func (e *Engine) Frame(ctx context.Context) (*Snapshot, error) {
	r, err := e.do(ctx, command{kind: cmdFrame})
	return r.snap, err
}

// ReturnToMenu resets from Ended, or aborts an active match
func (e *Engine) ReturnToMenu(ctx context.Context) error {
	_, err := e.do(ctx, command{kind: cmdMenu})
	return err
}

// Sync waits until every earlier message is handled and returns the state after it
func (e *Engine) Sync(ctx context.Context) (*Snapshot, error) {
	r, err := e.do(ctx, command{kind: cmdSync})
	return r.snap, err
}

// Snapshot returns the latest published state without blocking
func (e *Engine) Snapshot() *Snapshot {
	return e.snap.Load()
}

// Events delivers notifications; the channel is never closed
func (e *Engine) Events() <-chan Event {
	return e.events
}

// Status exposes the metrics registry
func (e *Engine) Status() *status.Registry {
	return e.status
}

// Done is closed when Run returns
func (e *Engine) Done() <-chan struct{} {
	return e.done
}
