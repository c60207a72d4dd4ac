package vmath

import (
	"math"
	"math/rand"
	"testing"
)

const epsilon = 1e-9

func TestDistance(t *testing.T) {
	tests := []struct {
		name string
		a, b Vec2
		want float64
	}{
		{"same point", Vec2{3, 4}, Vec2{3, 4}, 0},
		{"3-4-5", Vec2{0, 0}, Vec2{3, 4}, 5},
		{"symmetric", Vec2{3, 4}, Vec2{0, 0}, 5},
		{"negative", Vec2{-1, -1}, Vec2{2, 3}, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Distance(tt.a, tt.b); math.Abs(got-tt.want) > epsilon {
				t.Errorf("Distance(%v, %v) = %f, want %f", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestNormalizeZeroSafe(t *testing.T) {
	unit, mag := Normalize(Vec2{})
	if !unit.IsZero() || mag != 0 {
		t.Errorf("Normalize(zero) = (%v, %f), want (zero, 0)", unit, mag)
	}
}

func TestNormalizeUnitLength(t *testing.T) {
	inputs := []Vec2{{3, 4}, {-10, 0}, {0, 0.001}, {123.4, -56.7}}
	for _, in := range inputs {
		unit, mag := Normalize(in)
		if math.Abs(unit.Len()-1) > epsilon {
			t.Errorf("Normalize(%v) length = %f, want 1", in, unit.Len())
		}
		if math.Abs(mag-in.Len()) > epsilon {
			t.Errorf("Normalize(%v) magnitude = %f, want %f", in, mag, in.Len())
		}
	}
}

func TestNormalizeDeterministic(t *testing.T) {
	a, ma := Normalize(Vec2{7, -2})
	b, mb := Normalize(Vec2{7, -2})
	if a != b || ma != mb {
		t.Errorf("Normalize not deterministic: (%v,%f) vs (%v,%f)", a, ma, b, mb)
	}
}

func TestClampToRect(t *testing.T) {
	r := Rect{Width: 800, Height: 600}
	tests := []struct {
		name string
		in   Vec2
		want Vec2
	}{
		{"inside untouched", Vec2{400, 300}, Vec2{400, 300}},
		{"left edge", Vec2{-5, 300}, Vec2{12, 300}},
		{"bottom right corner", Vec2{900, 700}, Vec2{788, 588}},
		{"exact margin", Vec2{12, 588}, Vec2{12, 588}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClampToRect(tt.in, r, 12); got != tt.want {
				t.Errorf("ClampToRect(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestRandomPointInsideMargin(t *testing.T) {
	r := Rect{Width: 800, Height: 600}
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 1000; i++ {
		p := RandomPoint(r, 100, rng)
		if p.X < 100 || p.X >= 700 || p.Y < 100 || p.Y >= 500 {
			t.Fatalf("RandomPoint #%d = %v, outside interior margin", i, p)
		}
	}
}

func TestRectContains(t *testing.T) {
	r := Rect{Width: 10, Height: 10}
	if !r.Contains(Vec2{5, 5}) {
		t.Error("expected center to be contained")
	}
	if r.Contains(Vec2{0, 5}) || r.Contains(Vec2{5, 10}) {
		t.Error("expected boundary points to be outside")
	}
	if c := r.Center(); c != (Vec2{5, 5}) {
		t.Errorf("Center() = %v, want {5 5}", c)
	}
}

func TestTraverseCells(t *testing.T) {
	tests := []struct {
		name           string
		x0, y0, x1, y1 int
		want           [][2]int
	}{
		{"single cell", 3, 3, 3, 3, [][2]int{{3, 3}}},
		{"horizontal", 0, 0, 3, 0, [][2]int{{0, 0}, {1, 0}, {2, 0}, {3, 0}}},
		{"reverse vertical", 1, 2, 1, 0, [][2]int{{1, 2}, {1, 1}, {1, 0}}},
		{"diagonal", 0, 0, 2, 2, [][2]int{{0, 0}, {1, 1}, {2, 2}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got [][2]int
			TraverseCells(tt.x0, tt.y0, tt.x1, tt.y1, func(x, y int) bool {
				got = append(got, [2]int{x, y})
				return true
			})
			if len(got) != len(tt.want) {
				t.Fatalf("visited %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("cell %d = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}

	visits := 0
	TraverseCells(0, 0, 10, 0, func(x, y int) bool {
		visits++
		return x < 2
	})
	if visits != 3 {
		t.Errorf("early stop visited %d cells, want 3", visits)
	}
}
