package game

import (
	"context"
	"time"
)

// FrameInterval is the nominal frame period the tuning constants assume.
const FrameInterval = time.Second / 60

// Driver advances a Game once per frame signal with the measured
// wall-clock delta since the previous frame.
type Driver struct {
	game     *Game
	clock    TimeProvider
	interval time.Duration
	maxTicks uint64 // 0 means unlimited

	onFrame func(*Game)
}

// NewDriver creates a driver ticking at the given interval.
// A non-positive interval uses FrameInterval; a nil clock uses the wall clock.
func NewDriver(g *Game, clock TimeProvider, interval time.Duration) *Driver {
	if interval <= 0 {
		interval = FrameInterval
	}
	if clock == nil {
		clock = WallClock{}
	}
	return &Driver{game: g, clock: clock, interval: interval}
}

// SetMaxTicks stops the driver after n ticks. Zero removes the limit.
func (d *Driver) SetMaxTicks(n uint64) {
	d.maxTicks = n
}

// OnFrame registers a callback run after every tick, on the driving goroutine.
func (d *Driver) OnFrame(fn func(*Game)) {
	d.onFrame = fn
}

// Run ticks the game from a time.Ticker until game over, the tick limit,
// or context cancellation.
func (d *Driver) Run(ctx context.Context) error {
	ticker := time.NewTicker(d.interval)
	defer ticker.Stop()
	return d.RunFrames(ctx, ticker.C)
}

// RunFrames ticks the game once per value received on frames. The first
// frame measures its delta from the moment RunFrames was called.
func (d *Driver) RunFrames(ctx context.Context, frames <-chan time.Time) error {
	last := d.clock.Now()
	for {
		select {
		case <-ctx.Done():
			d.game.Stop()
			return ctx.Err()
		case <-frames:
		}

		now := d.clock.Now()
		dt := now.Sub(last)
		last = now

		playing := d.game.Step(dt)
		if d.onFrame != nil {
			d.onFrame(d.game)
		}
		if !playing {
			return nil
		}
		if d.maxTicks > 0 && d.game.Tick() >= d.maxTicks {
			d.game.Stop()
			return nil
		}
	}
}

// Replay steps the game through the given frame durations and returns the
// number of ticks run. It stops early at game over.
func Replay(g *Game, durations []time.Duration) int {
	ticks := 0
	for _, dt := range durations {
		if g.State() != StatePlaying {
			break
		}
		g.Step(dt)
		ticks++
	}
	return ticks
}

// RunFixed steps the game with a constant delta as fast as possible until
// game over, maxTicks (0 for unlimited) or cancellation.
func RunFixed(ctx context.Context, g *Game, dt time.Duration, maxTicks uint64) error {
	for g.State() == StatePlaying {
		if err := ctx.Err(); err != nil {
			g.Stop()
			return err
		}
		if !g.Step(dt) {
			return nil
		}
		if maxTicks > 0 && g.Tick() >= maxTicks {
			g.Stop()
			return nil
		}
	}
	return nil
}
