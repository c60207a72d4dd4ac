package main

import (
	"context"
	"fmt"
	"time"

	"github.com/lixenwraith/zone-royale/config"
	"github.com/lixenwraith/zone-royale/core"
	"github.com/lixenwraith/zone-royale/engine"
	"github.com/lixenwraith/zone-royale/entity"
	"github.com/lixenwraith/zone-royale/parameter"
	"github.com/lixenwraith/zone-royale/store"
	"github.com/lixenwraith/zone-royale/vmath"
)

// runHeadless plays one match on a manual clock with an autopilot in the human's seat
// The autopilot walks toward the zone center and periodically shoots the nearest opponent
func runHeadless(ctx context.Context, cfg config.Config, mem *store.Memory, opts []engine.Option) (*engine.Summary, error) {
	clock := engine.NewManualClock(time.Unix(0, 0))
	eng, err := engine.New(cfg, mem, mem, mem, append(opts, engine.WithClock(clock))...)
	if err != nil {
		return nil, err
	}

	runCtx, cancel := context.WithCancel(ctx)
	defer func() {
		cancel()
		<-eng.Done()
	}()
	core.Go(func() { _ = eng.Run(runCtx) })

	if err := eng.Start(runCtx); err != nil {
		return nil, err
	}

	step := cfg.Timing.AITick.Duration
	for tick := 1; time.Duration(tick)*step <= parameter.HeadlessLimit; tick++ {
		clock.Advance(step)
		snap, err := eng.Sync(runCtx)
		if err != nil {
			return nil, err
		}
		if snap.State == engine.StateEnded {
			return snap.Summary, nil
		}
		if err := autopilot(runCtx, eng, snap, tick); err != nil {
			return nil, err
		}
	}
	return nil, fmt.Errorf("no result after %s of simulated play", parameter.HeadlessLimit)
}

func autopilot(ctx context.Context, eng *engine.Engine, snap *engine.Snapshot, tick int) error {
	me, ok := snap.Human()
	if !ok || !me.Alive {
		return nil
	}
	if err := eng.Move(ctx, me.ID, snap.Zone.Center.Sub(me.Position)); err != nil {
		return err
	}
	if tick%parameter.HeadlessShotEvery != 0 || me.Ammo == 0 {
		return nil
	}
	if target, ok := nearestOpponent(snap.Players, me); ok {
		if _, err := eng.Shoot(ctx, me.ID, target.Position); err != nil {
			return err
		}
	}
	return nil
}

func nearestOpponent(players []entity.Player, me entity.Player) (entity.Player, bool) {
	var best entity.Player
	found := false
	for _, p := range players {
		if p.ID == me.ID || !p.Alive {
			continue
		}
		if !found || vmath.Distance(me.Position, p.Position) < vmath.Distance(me.Position, best.Position) {
			best, found = p, true
		}
	}
	return best, found
}
