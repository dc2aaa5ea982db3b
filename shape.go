package sight

import "github.com/chewxy/math32"

// DrawRect strokes the rectangle border, inclusive of the far edges.
func (c *Canvas) DrawRect(rect Rect, color Color) {
	if rect.Width <= 0 || rect.Height <= 0 {
		return
	}
	x1 := rect.X + rect.Width - 1
	y1 := rect.Y + rect.Height - 1
	c.DrawLine(Pt(rect.X, rect.Y), Pt(x1, rect.Y), color)
	c.DrawLine(Pt(x1, rect.Y), Pt(x1, y1), color)
	c.DrawLine(Pt(x1, y1), Pt(rect.X, y1), color)
	c.DrawLine(Pt(rect.X, y1), Pt(rect.X, rect.Y), color)
}

// FillRect fills every pixel in [X, X+Width) x [Y, Y+Height), clipped
// to the canvas.
func (c *Canvas) FillRect(rect Rect, color Color) {
	x0 := max(rect.X, 0)
	y0 := max(rect.Y, 0)
	x1 := min(rect.X+rect.Width, c.width)
	y1 := min(rect.Y+rect.Height, c.height)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			c.PutPixel(x, y, color)
		}
	}
}

// DrawCircle strokes a circle outline with the 8-way symmetric midpoint
// algorithm.
func (c *Canvas) DrawCircle(cx, cy, radius int, color Color) {
	if radius < 0 {
		return
	}
	x := radius
	y := 0
	err := 0
	for x >= y {
		c.PutPixel(cx+x, cy+y, color)
		c.PutPixel(cx+y, cy+x, color)
		c.PutPixel(cx-y, cy+x, color)
		c.PutPixel(cx-x, cy+y, color)
		c.PutPixel(cx-x, cy-y, color)
		c.PutPixel(cx-y, cy-x, color)
		c.PutPixel(cx+y, cy-x, color)
		c.PutPixel(cx+x, cy-y, color)
		y++
		if err <= 0 {
			err += 2*y + 1
		}
		if err > 0 {
			x--
			err -= 2*x + 1
		}
	}
}

// FillCircle fills a disc with a two-band anti-aliased edge: pixels
// within radius-0.5 of the center are solid, pixels in the half-pixel
// ring outside that get distance-proportional coverage.
func (c *Canvas) FillCircle(cx, cy, radius int, color Color) {
	if radius <= 0 {
		if radius == 0 {
			c.PutPixel(cx, cy, color)
		}
		return
	}
	r := float32(radius)
	inner := r - 0.5
	outer := r + 0.5
	for y := -radius - 1; y <= radius+1; y++ {
		for x := -radius - 1; x <= radius+1; x++ {
			d := math32.Sqrt(float32(x*x + y*y))
			switch {
			case d <= inner:
				c.PutPixel(cx+x, cy+y, color)
			case d < outer:
				c.putPixelAA(cx+x, cy+y, color, outer-d)
			}
		}
	}
}

// DrawEllipse strokes an axis-aligned ellipse outline with the
// two-region midpoint algorithm, mirroring writes into all four
// quadrants.
func (c *Canvas) DrawEllipse(cx, cy, rx, ry int, color Color) {
	if rx <= 0 || ry <= 0 {
		return
	}

	plot4 := func(x, y int) {
		c.PutPixel(cx+x, cy+y, color)
		c.PutPixel(cx-x, cy+y, color)
		c.PutPixel(cx+x, cy-y, color)
		c.PutPixel(cx-x, cy-y, color)
	}

	rx2 := rx * rx
	ry2 := ry * ry

	// Region 1: slope > -1.
	x := 0
	y := ry
	d1 := ry2 - rx2*ry + rx2/4
	dx := 2 * ry2 * x
	dy := 2 * rx2 * y
	for dx < dy {
		plot4(x, y)
		if d1 < 0 {
			x++
			dx += 2 * ry2
			d1 += dx + ry2
		} else {
			x++
			y--
			dx += 2 * ry2
			dy -= 2 * rx2
			d1 += dx - dy + ry2
		}
	}

	// Region 2: slope <= -1.
	d2 := ry2*(2*x+1)*(2*x+1)/4 + rx2*(y-1)*(y-1) - rx2*ry2
	for y >= 0 {
		plot4(x, y)
		if d2 > 0 {
			y--
			dy -= 2 * rx2
			d2 += rx2 - dy
		} else {
			y--
			x++
			dx += 2 * ry2
			dy -= 2 * rx2
			d2 += dx - dy + rx2
		}
	}
}

// DrawTriangle strokes the three edges of a triangle.
func (c *Canvas) DrawTriangle(p1, p2, p3 Point, color Color) {
	c.DrawLine(p1, p2, color)
	c.DrawLine(p2, p3, color)
	c.DrawLine(p3, p1, color)
}

// FillTriangle fills a triangle by sorting the vertices by y, splitting
// at the middle vertex's scanline into a flat-bottom and a flat-top
// half, and scan-filling each half row by row. Edge x positions are
// rounded and both span ends are inclusive.
func (c *Canvas) FillTriangle(p1, p2, p3 Point, color Color) {
	a, b, d := p1, p2, p3
	if a.Y > b.Y {
		a, b = b, a
	}
	if b.Y > d.Y {
		b, d = d, b
	}
	if a.Y > b.Y {
		a, b = b, a
	}

	if a.Y == d.Y {
		// All three vertices on one scanline: a point writes nothing,
		// otherwise a single-row span.
		minX := min(a.X, b.X, d.X)
		maxX := max(a.X, b.X, d.X)
		if minX == maxX {
			return
		}
		c.fillSpan(a.Y, minX, maxX, color)
		return
	}

	switch {
	case b.Y == d.Y:
		c.fillFlatBottom(a, b, d, color)
	case a.Y == b.Y:
		c.fillFlatTop(a, b, d, color)
	default:
		// Split the long edge a-d at b's scanline.
		t := float32(b.Y-a.Y) / float32(d.Y-a.Y)
		m := Pt(int(math32.Round(float32(a.X)+t*float32(d.X-a.X))), b.Y)
		c.fillFlatBottom(a, b, m, color)
		c.fillFlatTop(b, m, d, color)
	}
}

// fillFlatBottom fills a triangle whose bottom edge b1-b2 is
// horizontal, with apex top above it.
func (c *Canvas) fillFlatBottom(top, b1, b2 Point, color Color) {
	dy := float32(b1.Y - top.Y)
	s1 := float32(b1.X-top.X) / dy
	s2 := float32(b2.X-top.X) / dy
	for y := top.Y; y <= b1.Y; y++ {
		f := float32(y - top.Y)
		xa := int(math32.Round(float32(top.X) + s1*f))
		xb := int(math32.Round(float32(top.X) + s2*f))
		c.fillSpan(y, xa, xb, color)
	}
}

// fillFlatTop fills a triangle whose top edge t1-t2 is horizontal, with
// apex bot below it.
func (c *Canvas) fillFlatTop(t1, t2, bot Point, color Color) {
	dy := float32(bot.Y - t1.Y)
	s1 := float32(bot.X-t1.X) / dy
	s2 := float32(bot.X-t2.X) / dy
	for y := t1.Y; y <= bot.Y; y++ {
		f := float32(y - t1.Y)
		xa := int(math32.Round(float32(t1.X) + s1*f))
		xb := int(math32.Round(float32(t2.X) + s2*f))
		c.fillSpan(y, xa, xb, color)
	}
}

func (c *Canvas) fillSpan(y, xa, xb int, color Color) {
	if xa > xb {
		xa, xb = xb, xa
	}
	for x := xa; x <= xb; x++ {
		c.PutPixel(x, y, color)
	}
}

// DrawRoundedRect strokes a rectangle with circular corner arcs. The
// radius is clamped to half the smaller dimension; a zero radius
// degenerates to [Canvas.DrawRect].
func (c *Canvas) DrawRoundedRect(rect Rect, radius int, color Color) {
	if rect.Width <= 0 || rect.Height <= 0 {
		return
	}
	r := clampCornerRadius(radius, rect)
	if r <= 0 {
		c.DrawRect(rect, color)
		return
	}
	x0, y0 := rect.X, rect.Y
	x1 := rect.X + rect.Width - 1
	y1 := rect.Y + rect.Height - 1

	c.DrawLine(Pt(x0+r, y0), Pt(x1-r, y0), color)
	c.DrawLine(Pt(x0+r, y1), Pt(x1-r, y1), color)
	c.DrawLine(Pt(x0, y0+r), Pt(x0, y1-r), color)
	c.DrawLine(Pt(x1, y0+r), Pt(x1, y1-r), color)

	const pi = math32.Pi
	c.DrawArc(x0+r, y0+r, r, pi, 3*pi/2, color)
	c.DrawArc(x1-r, y0+r, r, 3*pi/2, 2*pi, color)
	c.DrawArc(x1-r, y1-r, r, 0, pi/2, color)
	c.DrawArc(x0+r, y1-r, r, pi/2, pi, color)
}

// FillRoundedRect fills a rectangle with rounded corners: a center
// slab, two side slabs and four corner discs.
func (c *Canvas) FillRoundedRect(rect Rect, radius int, color Color) {
	if rect.Width <= 0 || rect.Height <= 0 {
		return
	}
	r := clampCornerRadius(radius, rect)
	if r <= 0 {
		c.FillRect(rect, color)
		return
	}

	c.FillRect(NewRect(rect.X+r, rect.Y, rect.Width-2*r, rect.Height), color)
	c.FillRect(NewRect(rect.X, rect.Y+r, r, rect.Height-2*r), color)
	c.FillRect(NewRect(rect.X+rect.Width-r, rect.Y+r, r, rect.Height-2*r), color)

	c.FillCircle(rect.X+r, rect.Y+r, r, color)
	c.FillCircle(rect.X+rect.Width-r-1, rect.Y+r, r, color)
	c.FillCircle(rect.X+r, rect.Y+rect.Height-r-1, r, color)
	c.FillCircle(rect.X+rect.Width-r-1, rect.Y+rect.Height-r-1, r, color)
}

func clampCornerRadius(radius int, rect Rect) int {
	if radius < 0 {
		return 0
	}
	limit := min(rect.Width, rect.Height) / 2
	return min(radius, limit)
}
