package vmath

import "math"

// Vec2 is a point or direction in world units
type Vec2 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Add returns v + o
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale multiplies both components by factor
func (v Vec2) Scale(factor float64) Vec2 {
	return Vec2{X: v.X * factor, Y: v.Y * factor}
}

// Len returns the Euclidean magnitude
func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// IsZero reports whether both components are exactly zero
func (v Vec2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Distance returns the Euclidean distance between a and b
func Distance(a, b Vec2) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}

// Normalize returns the unit vector of v and its magnitude, zero-safe
// A zero input yields a zero vector with magnitude 0
func Normalize(v Vec2) (Vec2, float64) {
	mag := v.Len()
	if mag == 0 {
		return Vec2{}, 0
	}
	return Vec2{X: v.X / mag, Y: v.Y / mag}, mag
}

// Direction returns the unit vector pointing from a to b and the distance between them
func Direction(a, b Vec2) (Vec2, float64) {
	return Normalize(b.Sub(a))
}
