package spherecubed

import (
	"context"
	"time"

	"github.com/akmonengine/spherecubed/actor"
	"github.com/rs/zerolog/log"
)

const inputBuffer = 64

// Engine ticks the game at a fixed interval. Input may be sent from any
// goroutine, it is applied at the start of the next tick.
type Engine struct {
	World    *World
	Game     *Game
	Interval time.Duration

	inputs chan actor.InputEvent
	ticks  uint64
}

func NewEngine(world *World, game *Game, interval time.Duration) *Engine {
	return &Engine{
		World:    world,
		Game:     game,
		Interval: interval,
		inputs:   make(chan actor.InputEvent, inputBuffer),
	}
}

// Ticks returns the number of ticks run so far
func (e *Engine) Ticks() uint64 {
	return e.ticks
}

// Input queues an event for the next tick. It is dropped when the queue is full.
func (e *Engine) Input(event actor.InputEvent) {
	select {
	case e.inputs <- event:
	default:
		log.Warn().Str("key", event.Key.String()).Msg("input queue is full, event dropped")
	}
}

// Run ticks the game until ctx is done
func (e *Engine) Run(ctx context.Context) error {
	e.Game.Start()

	ticker := time.NewTicker(e.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			e.tick()
		}
	}
}

// Step runs n ticks right away
func (e *Engine) Step(n int) {
	e.Game.Start()

	for range n {
		e.tick()
	}
}

func (e *Engine) tick() {
	e.drain()

	e.Game.Tick()
	e.Game.Render()
	e.World.Events.flush()
	e.ticks++
}

func (e *Engine) drain() {
	for {
		select {
		case event := <-e.inputs:
			e.Game.HandleEvent(event)
		default:
			return
		}
	}
}
