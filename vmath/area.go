package vmath

import "math/rand"

// Rect is an axis-aligned map rectangle anchored at the origin
type Rect struct {
	Width  float64 `json:"width" toml:"width"`
	Height float64 `json:"height" toml:"height"`
}

// Center returns the center point of the rectangle
func (r Rect) Center() Vec2 {
	return Vec2{X: r.Width / 2, Y: r.Height / 2}
}

// Contains reports whether p lies strictly inside the rectangle
func (r Rect) Contains(p Vec2) bool {
	return p.X > 0 && p.X < r.Width && p.Y > 0 && p.Y < r.Height
}

// ClampToRect clamps p so each axis stays within [margin, size-margin]
func ClampToRect(p Vec2, r Rect, margin float64) Vec2 {
	return Vec2{
		X: clamp(p.X, margin, r.Width-margin),
		Y: clamp(p.Y, margin, r.Height-margin),
	}
}

// RandomPoint returns a uniformly distributed point in [margin, size-margin) on both axes
func RandomPoint(r Rect, margin float64, rng *rand.Rand) Vec2 {
	w := r.Width - 2*margin
	h := r.Height - 2*margin
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return Vec2{
		X: margin + rng.Float64()*w,
		Y: margin + rng.Float64()*h,
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
