package vmath

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Vec2 is a float64 2D vector for world and screen coordinates
// Arithmetic uses the gonum r2 free functions (r2.Add, r2.Sub, r2.Scale, r2.Norm)
type Vec2 = r2.Vec

// V2 is shorthand for building a Vec2
func V2(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// V2Perp returns vector rotated 90° counter-clockwise
func V2Perp(v Vec2) Vec2 {
	return Vec2{X: -v.Y, Y: v.X}
}

// V2Mul returns component-wise product, used for per-axis scaling
func V2Mul(a, b Vec2) Vec2 {
	return Vec2{X: a.X * b.X, Y: a.Y * b.Y}
}

// V2Div returns component-wise quotient, zero components of b yield zero
func V2Div(a, b Vec2) Vec2 {
	var out Vec2
	if b.X != 0 {
		out.X = a.X / b.X
	}
	if b.Y != 0 {
		out.Y = a.Y / b.Y
	}
	return out
}

// V2Dist returns Euclidean distance between two points
func V2Dist(a, b Vec2) float64 {
	return r2.Norm(r2.Sub(a, b))
}

// V2Finite reports whether both components are finite
func V2Finite(v Vec2) bool {
	return Finite(v.X) && Finite(v.Y)
}

// V2Round returns nearest integer cell for a screen position
func V2Round(v Vec2) (x, y int) {
	return int(math.Floor(v.X + 0.5)), int(math.Floor(v.Y + 0.5))
}
