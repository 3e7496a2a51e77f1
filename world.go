package spherecubed

import (
	"errors"

	"github.com/akmonengine/spherecubed/actor"
	"github.com/akmonengine/spherecubed/config"
	"github.com/akmonengine/spherecubed/level"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/rs/zerolog/log"
)

var ErrEmptyCampaign = errors.New("campaign has no level")

// World holds everything the game states share: the campaign, the loaded
// level, the player and its physics, the camera and the gameplay flags.
type World struct {
	Config config.Config

	Campaign   []*level.Level
	LevelIndex int
	Lives      int

	Level   *level.Level
	Player  *actor.Player
	Physics *Physics
	Camera  *Camera
	// Menu is the image shown by the menu states, empty when none is loaded
	Menu string
	// Light follows the player
	Light mgl64.Vec3

	Renderer Renderer
	Events   Events

	died          bool
	finished      bool
	lastLevel     bool
	lastLife      bool
	returnPressed bool
	spacePressed  bool
}

func NewWorld(cfg config.Config, campaign []*level.Level, renderer Renderer) (*World, error) {
	if len(campaign) == 0 {
		return nil, ErrEmptyCampaign
	}
	if renderer == nil {
		renderer = NopRenderer{}
	}

	player := actor.NewPlayer()
	player.Material = actor.Material{Mass: cfg.Player.Mass, RollingResistance: cfg.Player.RollingResistance}
	player.Shape.Radius = cfg.Player.Radius
	player.UserStrength = cfg.Player.Strength
	player.TerminalVelocity = cfg.Player.TerminalVelocity

	w := &World{
		Config:   cfg,
		Campaign: campaign,
		Lives:    cfg.Lives,
		Player:   player,
		Physics:  NewPhysics(cfg.Interval(), nil, player),
		Camera:   NewCamera(cfg.Camera),
		Renderer: renderer,
		Events:   NewEvents(),
	}
	w.Camera.Resize(cfg.Window.Width, cfg.Window.Height)
	w.Events.watch(w.Camera.Machine)

	return w, nil
}

// NewGame restores the lives and rewinds the campaign
func (w *World) NewGame() {
	w.Lives = w.Config.Lives
	w.LevelIndex = 0
	w.died = false
	w.finished = false
	w.lastLevel = false
	w.lastLife = false
}

// LoadLevel makes the level at LevelIndex current and puts the player on its start
func (w *World) LoadLevel() {
	w.Level = w.Campaign[w.LevelIndex]
	w.Physics.Level = w.Level
	w.Player.Reset(w.Level.StartPosition())
	w.Light = w.Player.Position()

	log.Debug().Int("level", w.LevelIndex).Int("rows", w.Level.Rows).Int("cols", w.Level.Cols).Msg("level loaded")
	w.Events.emit(LevelLoadedEvent{Level: w.LevelIndex, Rows: w.Level.Rows, Cols: w.Level.Cols})
}

func (w *World) UnloadLevel() {
	w.Level = nil
	w.Physics.Level = nil
}

func (w *World) LoadMenu(image string) {
	w.Menu = image
}

func (w *World) UnloadMenu() {
	w.Menu = ""
}

// Step advances the play by one tick: physics first, then the judgement of
// the new position, then the light and camera targets
func (w *World) Step() {
	contacts := w.Physics.Tick()
	w.Events.recordCollisions(contacts)

	w.Judge()

	position := w.Player.Position()
	w.Light = position
	w.Camera.TargetPosition = position
	w.Camera.TargetDirection = w.Player.Direction
}

// Judge raises the died or finished flags from the player position
func (w *World) Judge() {
	position := w.Player.Position()

	if position.Y() < w.Config.DeathDepth {
		w.died = true
		w.Lives = max(0, w.Lives-1)
		if w.Lives == 0 {
			w.lastLife = true
		}

		log.Debug().Int("level", w.LevelIndex).Int("lives", w.Lives).Msg("player died")
		w.Events.emit(DiedEvent{Level: w.LevelIndex, Lives: w.Lives})
		return
	}

	if w.Level != nil && w.Level.FinishAt(position) {
		w.finished = true
		finished := w.LevelIndex
		last := w.LevelIndex >= len(w.Campaign)-1
		if last {
			w.lastLevel = true
		} else {
			w.LevelIndex++
		}

		log.Debug().Int("level", finished).Bool("last", last).Msg("level finished")
		w.Events.emit(FinishedEvent{Level: finished, Last: last})
	}
}

func (w *World) Died() bool                { return w.died }
func (w *World) SetDied(died bool)         { w.died = died }
func (w *World) Finished() bool            { return w.finished }
func (w *World) SetFinished(finished bool) { w.finished = finished }
func (w *World) LastLevel() bool           { return w.lastLevel }
func (w *World) SetLastLevel(last bool)    { w.lastLevel = last }
func (w *World) LastLife() bool            { return w.lastLife }
func (w *World) SetLastLife(last bool)     { w.lastLife = last }
func (w *World) Return() bool              { return w.returnPressed }
func (w *World) SetReturn(pressed bool)    { w.returnPressed = pressed }
func (w *World) Space() bool               { return w.spacePressed }
func (w *World) SetSpace(pressed bool)     { w.spacePressed = pressed }
