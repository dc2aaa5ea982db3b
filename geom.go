package sight

import "github.com/chewxy/math32"

// Point is an integer point on the pixel grid.
type Point struct {
	X, Y int
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// DistanceTo returns the Euclidean distance between p and other.
func (p Point) DistanceTo(other Point) float32 {
	dx := float32(other.X - p.X)
	dy := float32(other.Y - p.Y)
	return math32.Sqrt(dx*dx + dy*dy)
}

// Rect is an axis-aligned rectangle with integer origin and
// non-negative extent. The spanned region is half-open:
// [X, X+Width) x [Y, Y+Height).
type Rect struct {
	X, Y          int
	Width, Height int
}

// NewRect is shorthand for Rect{x, y, width, height}.
func NewRect(x, y, width, height int) Rect {
	return Rect{X: x, Y: y, Width: width, Height: height}
}

// Contains reports whether p lies inside the rectangle.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.X+r.Width &&
		p.Y >= r.Y && p.Y < r.Y+r.Height
}

// Intersects reports whether r and other overlap. Rectangles that only
// touch edges do not intersect, consistent with the half-open span.
func (r Rect) Intersects(other Rect) bool {
	return r.X < other.X+other.Width && other.X < r.X+r.Width &&
		r.Y < other.Y+other.Height && other.Y < r.Y+r.Height
}
