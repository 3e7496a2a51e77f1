package spherecubed

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/akmonengine/spherecubed/actor"
)

var ErrMalformedScript = errors.New("malformed script")

// Script maps a tick to the keys hit just before it. A hit is a press
// followed by a release.
type Script map[int][]actor.Key

// ParseScript reads comma separated TICK=KEY entries, such as "1=space,4=up"
func ParseScript(s string) (Script, error) {
	script := Script{}

	for _, entry := range strings.Split(s, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}

		tick, name, ok := strings.Cut(entry, "=")
		if !ok {
			return nil, fmt.Errorf("%w: %q has no key", ErrMalformedScript, entry)
		}
		n, err := strconv.Atoi(strings.TrimSpace(tick))
		if err != nil || n < 0 {
			return nil, fmt.Errorf("%w: %q has an invalid tick", ErrMalformedScript, entry)
		}
		key := actor.ParseKey(strings.TrimSpace(name))
		if key == actor.KeyUnknown {
			return nil, fmt.Errorf("%w: %q has an unknown key", ErrMalformedScript, entry)
		}

		script[n] = append(script[n], key)
	}

	return script, nil
}

// Replay runs ticks ticks, hitting the scripted keys on their tick
func (e *Engine) Replay(script Script, ticks int) {
	e.Game.Start()

	for i := range ticks {
		for _, key := range script[i] {
			e.Input(actor.InputEvent{Key: key, Action: actor.Press})
			e.Input(actor.InputEvent{Key: key, Action: actor.Release})
		}
		e.tick()
	}
}
