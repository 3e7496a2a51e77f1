package level

import (
	"errors"
	"math"
)

var (
	ErrNoFinish          = errors.New("no finish cell")
	ErrFinishUnreachable = errors.New("finish cannot be reached from start")
)

// Validate checks that a parsed level is playable.
// The ball cannot climb, so a finish cell must be reachable from start
// through solid neighbours that are never higher than the current cell.
func Validate(l *Level) error {
	if l.Count(FINISH) == 0 {
		return ErrNoFinish
	}
	if !l.finishReachable() {
		return ErrFinishUnreachable
	}

	return nil
}

func (l *Level) finishReachable() bool {
	type cell struct{ x, z int }

	start := cell{int(math.Round(l.Start.X())), int(math.Round(l.Start.Z()))}
	visited := map[cell]bool{start: true}
	queue := []cell{start}

	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]

		current, _ := l.CubeAt(c.x, c.z)
		if current.Type == FINISH {
			return true
		}

		for _, n := range []cell{{c.x - 1, c.z}, {c.x + 1, c.z}, {c.x, c.z - 1}, {c.x, c.z + 1}} {
			next, ok := l.CubeAt(n.x, n.z)
			if !ok || visited[n] || !next.Solid() || next.Height() > current.Height() {
				continue
			}
			visited[n] = true
			queue = append(queue, n)
		}
	}

	return false
}
