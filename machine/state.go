package machine

import (
	"github.com/akmonengine/spherecubed/actor"
	opt "github.com/repeale/fp-go/option"
)

// State is a behaviour of a Machine. Its events are polled in the order
// they were added; the first one firing decides the transition.
type State interface {
	Name() string
	Enter()
	Exit()
	Tick()
	Render()
	// HandleEvent delivers raw input, it returns true when consumed
	HandleEvent(event actor.InputEvent) bool

	Events() []Event
	AddEvent(event Event)
}

// BaseState implements every hook as a no-op, concrete states embed it
type BaseState struct {
	name   string
	events []Event
}

func NewBaseState(name string) BaseState {
	return BaseState{name: name}
}

func (s *BaseState) Name() string { return s.name }
func (s *BaseState) Enter()       {}
func (s *BaseState) Exit()        {}
func (s *BaseState) Tick()        {}
func (s *BaseState) Render()      {}

func (s *BaseState) HandleEvent(event actor.InputEvent) bool {
	return false
}

func (s *BaseState) Events() []Event {
	return s.events
}

// AddEvent references event in the poll list, the State does not own it
func (s *BaseState) AddEvent(event Event) {
	s.events = append(s.events, event)
}

// Process polls the events of state and returns the first triggered target
func Process(state State) opt.Option[State] {
	for _, event := range state.Events() {
		if target := event.Test(); !opt.IsNone(target) {
			return target
		}
	}
	return opt.None[State]()
}
