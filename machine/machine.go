package machine

import (
	"errors"
	"fmt"

	"github.com/akmonengine/spherecubed/actor"
	opt "github.com/repeale/fp-go/option"
	"github.com/rs/zerolog/log"
)

var (
	ErrNoStartState = errors.New("machine has no start state")
	ErrNotStarted   = errors.New("machine is not started")
)

// TransitionListener is called after a transition, once the new state is entered
type TransitionListener func(from, to State)

// Machine owns a set of States and Events, and runs one current State at a time.
// It is not safe for concurrent use.
type Machine struct {
	name    string
	states  []State
	events  []Event
	start   State
	current State
	started bool

	listeners []TransitionListener
}

func NewMachine(name string) *Machine {
	return &Machine{name: name}
}

func (m *Machine) Name() string {
	return m.name
}

// AddState hands the ownership of state to the machine
func (m *Machine) AddState(state State) State {
	m.states = append(m.states, state)
	return state
}

// AddEvent hands the ownership of event to the machine
func (m *Machine) AddEvent(event Event) Event {
	m.events = append(m.events, event)
	return event
}

// Bind sets the target of event and polls it from state
func (m *Machine) Bind(from State, event Event, to State) {
	event.SetTarget(to)
	from.AddEvent(event)
}

func (m *Machine) SetStart(state State) {
	m.start = state
}

// Current returns the running state, nil until the machine is started
func (m *Machine) Current() State {
	return m.current
}

// OnTransition registers a listener for every state change
func (m *Machine) OnTransition(listener TransitionListener) {
	m.listeners = append(m.listeners, listener)
}

// Start enters the start state. Calling it again has no effect.
func (m *Machine) Start() {
	if m.started {
		return
	}
	if m.start == nil {
		panic(fmt.Errorf("%s: %w", m.name, ErrNoStartState))
	}

	m.started = true
	m.current = m.start
	log.Debug().Str("machine", m.name).Str("state", m.current.Name()).Msg("start")
	m.current.Enter()
}

// Tick polls the current state events, makes the transition if any, then ticks
// the current state. The new state is entered and ticked within the same call.
// Ticking a machine that was not started panics.
func (m *Machine) Tick() {
	if m.current == nil {
		if m.start == nil {
			panic(fmt.Errorf("%s: %w", m.name, ErrNoStartState))
		}
		panic(fmt.Errorf("%s: %w", m.name, ErrNotStarted))
	}

	if target := Process(m.current); !opt.IsNone(target) {
		m.transition(target.Value)
	}

	m.current.Tick()
}

func (m *Machine) transition(to State) {
	from := m.current

	log.Debug().Str("machine", m.name).Str("from", from.Name()).Str("to", to.Name()).Msg("transition")

	from.Exit()
	m.current = to
	m.current.Enter()

	for _, listener := range m.listeners {
		listener(from, to)
	}
}

func (m *Machine) Render() {
	if m.current == nil {
		return
	}
	m.current.Render()
}

// HandleEvent forwards input to the current state
func (m *Machine) HandleEvent(event actor.InputEvent) bool {
	if m.current == nil {
		return false
	}
	return m.current.HandleEvent(event)
}
