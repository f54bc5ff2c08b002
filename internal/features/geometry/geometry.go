// Package geometry lays out pie wedges and radar polygons in screen
// coordinates (y grows downward). It never draws.
package geometry

import (
	"errors"
	"math"
)

// ErrDegenerate is returned when the data leaves no well-defined shape:
// nothing to draw, a zero divisor, or values that would turn into NaN.
var ErrDegenerate = errors.New("degenerate data")

type Point struct {
	X, Y float64
}

// Polar returns the point at angle (radians) and distance r from center,
// using the screen convention where positive angles sweep clockwise.
func Polar(center Point, r, angle float64) Point {
	return Point{
		X: center.X + r*math.Cos(angle),
		Y: center.Y + r*math.Sin(angle),
	}
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
