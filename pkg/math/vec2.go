// Package math provides vector, color and matrix types for mesh export.
package math

import "math"

// Vec2 is a 2D vector, used for texture coordinates.
type Vec2 struct {
	X, Y float32
}

// Add returns v + other.
func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{v.X + other.X, v.Y + other.Y}
}

// Scale returns v * scalar.
func (v Vec2) Scale(s float32) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// IsFinite reports whether no component is NaN or infinite.
func (v Vec2) IsFinite() bool {
	return finite(v.X) && finite(v.Y)
}

// FlipV returns the coordinate with V mirrored (1 - V).
// Host applications and most exporters disagree on the V origin.
func (v Vec2) FlipV() Vec2 {
	return Vec2{v.X, 1 - v.Y}
}

// Slice returns the components as a slice.
func (v Vec2) Slice() []float32 {
	return []float32{v.X, v.Y}
}

func finite(f float32) bool {
	d := float64(f)
	return !math.IsNaN(d) && !math.IsInf(d, 0)
}
