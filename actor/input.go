package actor

import "strings"

type Key uint8

const (
	KeyUnknown Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeySpace
	KeyReturn
)

var keyNames = map[Key]string{
	KeyUnknown: "unknown",
	KeyUp:      "up",
	KeyDown:    "down",
	KeyLeft:    "left",
	KeyRight:   "right",
	KeySpace:   "space",
	KeyReturn:  "return",
}

func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	return keyNames[KeyUnknown]
}

// ParseKey is case insensitive, it returns KeyUnknown for any other name
func ParseKey(name string) Key {
	name = strings.ToLower(strings.TrimSpace(name))
	for k, n := range keyNames {
		if n == name {
			return k
		}
	}
	return KeyUnknown
}

type Action uint8

const (
	Press Action = iota
	Release
)

// InputEvent is a raw key event from the window layer
type InputEvent struct {
	Key    Key
	Action Action
}
