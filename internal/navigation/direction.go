package navigation

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownDirection is returned by ParseDirection for anything other than
// left, right, up or down.
var ErrUnknownDirection = errors.New("unknown direction")

// Direction is one of the four cardinal directions focus can move in.
type Direction int

const (
	DirLeft Direction = iota
	DirRight
	DirUp
	DirDown
)

// String returns the lowercase name used on the command line.
func (d Direction) String() string {
	switch d {
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	default:
		return "unknown"
	}
}

// Horizontal reports whether d moves along the x axis.
func (d Direction) Horizontal() bool {
	return d == DirLeft || d == DirRight
}

// ParseDirection maps a direction name to a Direction, ignoring case.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(s) {
	case "left":
		return DirLeft, nil
	case "right":
		return DirRight, nil
	case "up":
		return DirUp, nil
	case "down":
		return DirDown, nil
	}
	return 0, fmt.Errorf("%w %s", ErrUnknownDirection, s)
}
