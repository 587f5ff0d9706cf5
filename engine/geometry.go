package engine

// Rect is an axis-aligned rectangle in playfield units
type Rect struct {
	X, Y float64 // Top-left corner
	W, H float64
}

// Right returns the x of the right edge
func (r Rect) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y of the bottom edge
func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

// Contains reports whether (x, y) lies inside r, right and bottom edges excluded
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// ContainsClosed reports whether (x, y) lies inside r or on any of its edges
func (r Rect) ContainsClosed(x, y float64) bool {
	return x >= r.X && x <= r.Right() && y >= r.Y && y <= r.Bottom()
}

// Clamp restricts a value to be within [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
