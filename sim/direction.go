package sim

import (
	"fmt"
	"strings"
)

// Direction is the initial sweep direction for SCAN and C-SCAN.
// Left moves toward cylinder 0, right toward the last cylinder.
type Direction string

const (
	DirectionLeft  Direction = "left"
	DirectionRight Direction = "right"
)

// validDirections maps accepted direction strings.
var validDirections = map[Direction]bool{
	DirectionLeft:  true,
	DirectionRight: true,
}

// IsValidDirection returns true if s names a direction (case-insensitive).
func IsValidDirection(s string) bool {
	return validDirections[Direction(strings.ToLower(strings.TrimSpace(s)))]
}

// ParseDirection converts s into a Direction.
func ParseDirection(s string) (Direction, error) {
	d := Direction(strings.ToLower(strings.TrimSpace(s)))
	if !validDirections[d] {
		return "", fmt.Errorf("unknown direction %q; valid: left, right", s)
	}
	return d, nil
}
