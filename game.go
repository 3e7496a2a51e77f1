package spherecubed

import (
	"github.com/akmonengine/spherecubed/actor"
	"github.com/akmonengine/spherecubed/machine"
)

// Menu images, one per menu state
const (
	ImageMenu     = "menu"
	ImageDied     = "died"
	ImageFinished = "finished"
	ImageOver     = "over"
	ImageWon      = "won"
)

// Game is the machine sequencing the menus and the play of the campaign
type Game struct {
	*machine.Machine
	world *World

	Menu     machine.State
	Play     machine.State
	Died     machine.State
	Finished machine.State
	Over     machine.State
	Won      machine.State
}

func NewGame(world *World) *Game {
	g := &Game{
		Machine: machine.NewMachine("Game"),
		world:   world,
	}
	g.configure()
	world.Events.watch(g.Machine)

	return g
}

func (g *Game) configure() {
	w := g.world

	g.Menu = g.AddState(&menuState{BaseState: machine.NewBaseState("Menu"), world: w, image: ImageMenu, key: actor.KeySpace, latch: &w.spacePressed, newGame: true})
	g.Play = g.AddState(&playState{BaseState: machine.NewBaseState("Play"), world: w})
	g.Died = g.AddState(&menuState{BaseState: machine.NewBaseState("Died"), world: w, image: ImageDied, key: actor.KeySpace, latch: &w.spacePressed})
	g.Finished = g.AddState(&menuState{BaseState: machine.NewBaseState("Finished"), world: w, image: ImageFinished, key: actor.KeySpace, latch: &w.spacePressed})
	g.Over = g.AddState(&menuState{BaseState: machine.NewBaseState("Over"), world: w, image: ImageOver, key: actor.KeyReturn, latch: &w.returnPressed})
	g.Won = g.AddState(&menuState{BaseState: machine.NewBaseState("Won"), world: w, image: ImageWon, key: actor.KeyReturn, latch: &w.returnPressed})

	space := g.AddEvent(machine.NewLatchEvent("Space", &w.spacePressed))
	ret := g.AddEvent(machine.NewLatchEvent("Return", &w.returnPressed))
	died := g.AddEvent(machine.NewLatchEvent("Died", &w.died))
	finished := g.AddEvent(machine.NewLatchEvent("Finished", &w.finished))
	lastLife := g.AddEvent(machine.NewLatchEvent("LastLife", &w.lastLife))
	lastLevel := g.AddEvent(machine.NewLatchEvent("LastLevel", &w.lastLevel))

	// Events are polled in the order they are bound
	g.Bind(g.Menu, space, g.Play)
	g.Bind(g.Play, died, g.Died)
	g.Bind(g.Play, finished, g.Finished)
	g.Bind(g.Died, lastLife, g.Over)
	g.Bind(g.Died, space, g.Play)
	g.Bind(g.Finished, lastLevel, g.Won)
	g.Bind(g.Finished, space, g.Play)
	g.Bind(g.Over, ret, g.Menu)
	g.Bind(g.Won, ret, g.Menu)

	g.SetStart(g.Menu)
}

// Start starts the camera, then enters the menu
func (g *Game) Start() {
	g.world.Camera.Start()
	g.Machine.Start()
}

// menuState shows an image until its key is released
type menuState struct {
	machine.BaseState
	world *World

	image   string
	key     actor.Key
	latch   *bool
	newGame bool
}

// Enter forgets the keys hit before the menu was shown
func (s *menuState) Enter() {
	if s.newGame {
		s.world.NewGame()
	}
	s.world.spacePressed = false
	s.world.returnPressed = false
	s.world.Camera.SetMenu(true)
	s.world.LoadMenu(s.image)
}

func (s *menuState) Exit() {
	s.world.UnloadMenu()
}

func (s *menuState) Tick() {
	s.world.Camera.Tick()
}

func (s *menuState) Render() {
	w := s.world
	w.Camera.Render()
	w.Renderer.View(w.Camera.View, w.Camera.Projection)
	w.Renderer.Menu(w.Menu)
}

func (s *menuState) HandleEvent(event actor.InputEvent) bool {
	if event.Action != actor.Release || event.Key != s.key {
		return false
	}

	*s.latch = true
	return true
}

type playState struct {
	machine.BaseState
	world *World
}

func (s *playState) Enter() {
	s.world.Camera.SetPlay(true)
	s.world.LoadLevel()
	s.world.Camera.TargetPosition = s.world.Player.Position()
	s.world.Camera.TargetDirection = s.world.Player.Direction
}

func (s *playState) Exit() {
	s.world.UnloadLevel()
}

func (s *playState) Tick() {
	s.world.Step()
	s.world.Camera.Tick()
}

// Render draws the cubes then the player, skipping what the camera cannot see
func (s *playState) Render() {
	w := s.world
	w.Camera.Render()
	w.Renderer.View(w.Camera.View, w.Camera.Projection)

	if w.Level != nil {
		size := w.Level.CubeSize()
		for _, row := range w.Level.Cubes {
			for _, cube := range row {
				if !cube.Solid() || w.Camera.Frustum.BoxViewable(cube.Bounds(size)) == Out {
					continue
				}
				w.Renderer.Cube(cube)
			}
		}
	}

	if w.Camera.Frustum.BoxViewable(w.Player.Shape.GetAABB()) != Out {
		w.Renderer.Player(w.Player)
	}
}

func (s *playState) HandleEvent(event actor.InputEvent) bool {
	return s.world.Player.HandleEvent(event)
}
