// Package direction is the plain iota enumeration: four values, no explicit
// codes, and a switch with a catch-all default.
package direction

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

var names = [...]string{
	Up:    "Up",
	Down:  "Down",
	Left:  "Left",
	Right: "Right",
}

// Move returns the movement sentence for d.
func Move(d Direction) string {
	switch d {
	case Up:
		return "Moving up!"
	case Down:
		return "Moving down!"
	case Left:
		return "Moving left!"
	case Right:
		return "Moving right!"
	default:
		return "Unknown direction!"
	}
}

func (d Direction) String() string {
	if d >= 0 && int(d) < len(names) {
		return names[d]
	}
	return "Direction(" + strconv.Itoa(int(d)) + ")"
}

// All returns the four directions in declaration order.
func All() []Direction {
	return []Direction{Up, Down, Left, Right}
}

var ErrUnknownDirection = errors.New("unknown direction")

// Parse matches a direction name, ignoring case.
func Parse(s string) (Direction, error) {
	in := strings.TrimSpace(s)
	for _, d := range All() {
		if strings.EqualFold(in, d.String()) {
			return d, nil
		}
	}
	return -1, fmt.Errorf("%q: %w", s, ErrUnknownDirection)
}
