package sight

import "github.com/chewxy/math32"

// Arc sampling bounds: enough steps that adjacent samples are never
// more than half a pixel apart at typical radii, without letting huge
// radii or angle ranges explode the walk.
const (
	minArcSteps = 8
	maxArcSteps = 4096
)

// DrawArc strokes a circular arc from start to end angle (radians,
// measured clockwise from the positive x axis in raster space). The
// range is normalized so end >= start, wrapping by 2π if needed; the
// step count is proportional to arc length, clamped to sane bounds.
func (c *Canvas) DrawArc(cx, cy, radius int, start, end float32, color Color) {
	if radius <= 0 {
		return
	}
	for end < start {
		end += 2 * math32.Pi
	}

	steps := int((end - start) * float32(radius) * 2)
	steps = min(max(steps, minArcSteps), maxArcSteps)

	r := float32(radius)
	for i := 0; i <= steps; i++ {
		t := start + (end-start)*float32(i)/float32(steps)
		px := cx + int(math32.Round(r*math32.Cos(t)))
		py := cy + int(math32.Round(r*math32.Sin(t)))
		c.PutPixel(px, py, color)
	}
}

// DrawBezierQuad draws a quadratic Bezier curve from p0 to p2 with
// control point p1, by fixed-step evaluation of the Bernstein form.
// Each sample is splatted across its four enclosing pixels weighted by
// bilinear coverage.
func (c *Canvas) DrawBezierQuad(p0, p1, p2 Point, color Color) {
	steps := bezierSteps(p0.DistanceTo(p1) + p1.DistanceTo(p2))
	for i := 0; i <= steps; i++ {
		t := float32(i) / float32(steps)
		u := 1 - t
		x := u*u*float32(p0.X) + 2*u*t*float32(p1.X) + t*t*float32(p2.X)
		y := u*u*float32(p0.Y) + 2*u*t*float32(p1.Y) + t*t*float32(p2.Y)
		c.splat(x, y, color)
	}
}

// DrawBezierCubic draws a cubic Bezier curve from p0 to p3 with control
// points p1 and p2.
func (c *Canvas) DrawBezierCubic(p0, p1, p2, p3 Point, color Color) {
	steps := bezierSteps(p0.DistanceTo(p1) + p1.DistanceTo(p2) + p2.DistanceTo(p3))
	for i := 0; i <= steps; i++ {
		t := float32(i) / float32(steps)
		u := 1 - t
		x := u*u*u*float32(p0.X) + 3*u*u*t*float32(p1.X) +
			3*u*t*t*float32(p2.X) + t*t*t*float32(p3.X)
		y := u*u*u*float32(p0.Y) + 3*u*u*t*float32(p1.Y) +
			3*u*t*t*float32(p2.Y) + t*t*t*float32(p3.Y)
		c.splat(x, y, color)
	}
}

// bezierSteps sizes the sample count from the control polygon length.
func bezierSteps(polyLength float32) int {
	return min(max(int(polyLength*2), 16), 1024)
}

// splat writes one curve sample, distributing coverage across the four
// integer pixels enclosing the sub-pixel position.
func (c *Canvas) splat(x, y float32, color Color) {
	fx := math32.Floor(x)
	fy := math32.Floor(y)
	ix := int(fx)
	iy := int(fy)
	wx := x - fx
	wy := y - fy

	c.putPixelAA(ix, iy, color, (1-wx)*(1-wy))
	c.putPixelAA(ix+1, iy, color, wx*(1-wy))
	c.putPixelAA(ix, iy+1, color, (1-wx)*wy)
	c.putPixelAA(ix+1, iy+1, color, wx*wy)
}
