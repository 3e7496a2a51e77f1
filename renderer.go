package spherecubed

import (
	"github.com/akmonengine/spherecubed/actor"
	"github.com/akmonengine/spherecubed/level"
	"github.com/go-gl/mathgl/mgl64"
)

// Renderer draws a frame. View is called first, then Menu, or the visible
// cubes followed by the player.
type Renderer interface {
	View(view, projection mgl64.Mat4)
	Menu(image string)
	Cube(cube level.Cube)
	Player(player *actor.Player)
}

// NopRenderer draws nothing, for headless runs
type NopRenderer struct{}

func (NopRenderer) View(view, projection mgl64.Mat4) {}
func (NopRenderer) Menu(image string)                {}
func (NopRenderer) Cube(cube level.Cube)             {}
func (NopRenderer) Player(player *actor.Player)      {}
