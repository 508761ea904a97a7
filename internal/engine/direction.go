package engine

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownDirection is returned when a direction name cannot be parsed.
var ErrUnknownDirection = errors.New("engine: unknown direction")

// Direction is the direction tiles slide toward.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Directions lists every direction in declaration order.
var Directions = []Direction{Up, Down, Left, Right}

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}

// ParseDirection accepts full names ("up") or single letters ("u"), any case.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "u", "up":
		return Up, nil
	case "d", "down":
		return Down, nil
	case "l", "left":
		return Left, nil
	case "r", "right":
		return Right, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownDirection, s)
}

// ParseMoves parses a compact move string such as "UULRD" or "u,l,down".
// Whitespace and commas separate names; a run of letters without separators is
// read one letter per move.
func ParseMoves(s string) ([]Direction, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n'
	})

	var moves []Direction
	for _, f := range fields {
		if d, err := ParseDirection(f); err == nil {
			moves = append(moves, d)
			continue
		}
		for _, r := range f {
			d, err := ParseDirection(string(r))
			if err != nil {
				return nil, err
			}
			moves = append(moves, d)
		}
	}
	return moves, nil
}
