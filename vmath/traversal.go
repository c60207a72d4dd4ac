package vmath

// TraverseCells visits every grid cell on the line from (x0, y0) to (x1, y1), both ends included
// Diagonal steps are allowed; visiting stops early when visit returns false
func TraverseCells(x0, y0, x1, y1 int, visit func(x, y int) bool) {
	dx, stepX := x1-x0, 1
	if dx < 0 {
		dx, stepX = -dx, -1
	}
	dy, stepY := y1-y0, 1
	if dy < 0 {
		dy, stepY = -dy, -1
	}

	err := dx - dy
	x, y := x0, y0
	for {
		if !visit(x, y) || (x == x1 && y == y1) {
			return
		}
		e2 := 2 * err
		if e2 >= -dy {
			err -= dy
			x += stepX
		}
		if e2 <= dx {
			err += dx
			y += stepY
		}
	}
}
