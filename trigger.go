package spherecubed

import (
	"github.com/akmonengine/spherecubed/constraint"
	"github.com/akmonengine/spherecubed/machine"
)

const (
	ON_COLLISION EventType = iota
	ON_DIED
	ON_FINISHED
	ON_LEVEL_LOADED
	ON_STATE_CHANGED
)

type EventType uint8

// Event interface - all gameplay events implement this
type Event interface {
	Type() EventType
}

// CollisionEvent is sent for each contact resolved by the physics
type CollisionEvent struct {
	Contact constraint.Contact
}

func (e CollisionEvent) Type() EventType { return ON_COLLISION }

// DiedEvent is sent when the player falls out of the level
type DiedEvent struct {
	Level int
	Lives int
}

func (e DiedEvent) Type() EventType { return ON_DIED }

// FinishedEvent is sent when the player reaches a finish cube
type FinishedEvent struct {
	Level int
	Last  bool
}

func (e FinishedEvent) Type() EventType { return ON_FINISHED }

type LevelLoadedEvent struct {
	Level int
	Rows  int
	Cols  int
}

func (e LevelLoadedEvent) Type() EventType { return ON_LEVEL_LOADED }

type StateChangedEvent struct {
	Machine string
	From    string
	To      string
}

func (e StateChangedEvent) Type() EventType { return ON_STATE_CHANGED }

// EventListener - callback for events
type EventListener func(event Event)

// Events manager
type Events struct {
	// Listeners by event type
	listeners map[EventType][]EventListener

	// Event buffer to send at flush
	buffer []Event
}

func NewEvents() Events {
	return Events{
		listeners: make(map[EventType][]EventListener),
		buffer:    make([]Event, 0, 64),
	}
}

// Subscribe adds a listener for an event type
func (e *Events) Subscribe(eventType EventType, listener EventListener) {
	if e.listeners == nil {
		e.listeners = make(map[EventType][]EventListener)
	}
	e.listeners[eventType] = append(e.listeners[eventType], listener)
}

func (e *Events) emit(event Event) {
	e.buffer = append(e.buffer, event)
}

// recordCollisions buffers one event per contact
func (e *Events) recordCollisions(contacts []constraint.Contact) {
	for _, c := range contacts {
		e.emit(CollisionEvent{Contact: c})
	}
}

// watch emits an event on every transition of m
func (e *Events) watch(m *machine.Machine) {
	m.OnTransition(func(from, to machine.State) {
		e.emit(StateChangedEvent{Machine: m.Name(), From: from.Name(), To: to.Name()})
	})
}

// flush sends all buffered events and clears the buffer.
// An event emitted by a listener is sent in the same flush, after the others.
func (e *Events) flush() {
	for i := 0; i < len(e.buffer); i++ {
		event := e.buffer[i]
		for _, listener := range e.listeners[event.Type()] {
			listener(event)
		}
	}
	e.buffer = e.buffer[:0]
}
