package level

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
)

var (
	ErrMalformedCell = errors.New("malformed cell")
	ErrUnknownType   = errors.New("unknown cube type")
	ErrRaggedRows    = errors.New("rows have different widths")
	ErrEmpty         = errors.New("empty level")
	ErrNoStart       = errors.New("no start cell")
	ErrMultipleStart = errors.New("more than one start cell")
)

// Parse reads a level: one row per line, comma separated TYPE:HEIGHT cells in hexadecimal.
// Row count gives the grid rows, cells per row give the columns.
func Parse(r io.Reader) (*Level, error) {
	var cubes [][]Cube
	starts := 0

	scanner := bufio.NewScanner(r)
	for line := 1; scanner.Scan(); line++ {
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}

		z := len(cubes)
		tokens := strings.Split(text, ",")
		row := make([]Cube, 0, len(tokens))
		for x, token := range tokens {
			cube, err := parseCell(token, x, z)
			if err != nil {
				return nil, fmt.Errorf("line %d, cell %d: %w", line, x, err)
			}
			if cube.Type == START {
				starts++
			}
			row = append(row, cube)
		}

		if z > 0 && len(row) != len(cubes[0]) {
			return nil, fmt.Errorf("line %d: %d cells, expected %d: %w", line, len(row), len(cubes[0]), ErrRaggedRows)
		}
		cubes = append(cubes, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading level: %w", err)
	}

	switch {
	case len(cubes) == 0:
		return nil, ErrEmpty
	case starts == 0:
		return nil, ErrNoStart
	case starts > 1:
		return nil, fmt.Errorf("%d start cells: %w", starts, ErrMultipleStart)
	}

	return New(cubes), nil
}

// ParseString is a convenience wrapper around Parse
func ParseString(s string) (*Level, error) {
	return Parse(strings.NewReader(s))
}

func parseCell(token string, x, z int) (Cube, error) {
	parts := strings.Split(strings.TrimSpace(token), ":")
	if len(parts) != 2 {
		return Cube{}, fmt.Errorf("%q: %w", token, ErrMalformedCell)
	}

	cubeType, err := strconv.ParseUint(strings.TrimSpace(parts[0]), 16, 8)
	if err != nil {
		return Cube{}, fmt.Errorf("%q type: %w", token, ErrMalformedCell)
	}
	height, err := strconv.ParseUint(strings.TrimSpace(parts[1]), 16, 8)
	if err != nil {
		return Cube{}, fmt.Errorf("%q height: %w", token, ErrMalformedCell)
	}
	if !CubeType(cubeType).Valid() {
		return Cube{}, fmt.Errorf("%q: %w", token, ErrUnknownType)
	}

	return Cube{
		Position: mgl64.Vec3{float64(x), float64(height), float64(z)},
		Type:     CubeType(cubeType),
	}, nil
}

// Marshal writes l back in the text format Parse reads
func Marshal(l *Level) []byte {
	var buf bytes.Buffer

	for _, row := range l.Cubes {
		for x, cube := range row {
			if x > 0 {
				buf.WriteByte(',')
			}
			fmt.Fprintf(&buf, "%02X:%02X", uint8(cube.Type), uint8(cube.Height()))
		}
		buf.WriteByte('\n')
	}

	return buf.Bytes()
}
