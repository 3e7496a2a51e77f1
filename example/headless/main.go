package main

import (
	"fmt"

	"github.com/akmonengine/spherecubed"
	"github.com/akmonengine/spherecubed/actor"
	"github.com/akmonengine/spherecubed/config"
	"github.com/akmonengine/spherecubed/level"
	"github.com/go-gl/mathgl/mgl64"
)

// A small corridor: start on the left, finish two cubes ahead
const corridor = `
01:00,02:00
02:00,02:00
FF:00,02:00
`

// printer is a Renderer writing what would be drawn
type printer struct {
	spherecubed.NopRenderer
	frame int
}

func (p *printer) View(view, projection mgl64.Mat4) {
	p.frame++
}

func (p *printer) Player(player *actor.Player) {
	if p.frame%10 == 0 {
		fmt.Printf("frame %3d: player at %.3f, velocity %.3f\n", p.frame, player.Position(), player.Velocity)
	}
}

func main() {
	l, err := level.ParseString(corridor)
	if err != nil {
		panic(err)
	}

	cfg := config.Default()
	world, err := spherecubed.NewWorld(cfg, []*level.Level{l}, &printer{})
	if err != nil {
		panic(err)
	}
	game := spherecubed.NewGame(world)
	engine := spherecubed.NewEngine(world, game, cfg.Interval())

	world.Events.Subscribe(spherecubed.ON_COLLISION, func(event spherecubed.Event) {
		e := event.(spherecubed.CollisionEvent)
		fmt.Printf("collision: normal %v, cube %v\n", e.Contact.Normal, e.Contact.Cube)
	})
	world.Events.Subscribe(spherecubed.ON_STATE_CHANGED, func(event spherecubed.Event) {
		e := event.(spherecubed.StateChangedEvent)
		fmt.Printf("%s: %s -> %s\n", e.Machine, e.From, e.To)
	})

	// Leave the menu, then keep pushing forward
	engine.Input(actor.InputEvent{Key: actor.KeySpace, Action: actor.Release})
	for range 60 {
		engine.Input(actor.InputEvent{Key: actor.KeyUp, Action: actor.Press})
		engine.Step(1)
	}

	fmt.Printf("state %s, level %d, lives %d\n", game.Current().Name(), world.LevelIndex+1, world.Lives)
}
