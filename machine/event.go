package machine

import (
	opt "github.com/repeale/fp-go/option"
)

// Event is a condition polled by a State. Test returns the target State
// when the condition holds, and consumes it so it fires only once.
type Event interface {
	Name() string
	Test() opt.Option[State]
	SetTarget(state State)
	Target() State
}

// BaseEvent carries the name and the target of an Event
type BaseEvent struct {
	name   string
	target State
}

func NewBaseEvent(name string) BaseEvent {
	return BaseEvent{name: name}
}

func (e *BaseEvent) Name() string {
	return e.name
}

func (e *BaseEvent) SetTarget(state State) {
	e.target = state
}

func (e *BaseEvent) Target() State {
	return e.target
}

// Fire returns the target, or nothing when no target has been bound
func (e *BaseEvent) Fire() opt.Option[State] {
	if e.target == nil {
		return opt.None[State]()
	}
	return opt.Some[State](e.target)
}

// LatchEvent fires when the latch it watches is set, and clears it
type LatchEvent struct {
	BaseEvent
	latch *bool
}

func NewLatchEvent(name string, latch *bool) *LatchEvent {
	return &LatchEvent{BaseEvent: NewBaseEvent(name), latch: latch}
}

func (e *LatchEvent) Test() opt.Option[State] {
	if e.latch == nil || !*e.latch {
		return opt.None[State]()
	}

	*e.latch = false
	return e.Fire()
}
