package sight

import "github.com/chewxy/math32"

// DrawLine draws an anti-aliased line from p1 to p2 using a
// coverage-weighted DDA (Xiaolin Wu's split): for each step along the
// major axis the fractional minor-axis position is split across the
// two straddling pixels. Rounding policy is floor+fract throughout;
// zero-coverage pixels are never written.
//
// A degenerate line with p1 == p2 writes exactly one pixel.
func (c *Canvas) DrawLine(p1, p2 Point, color Color) {
	x0 := float32(p1.X)
	y0 := float32(p1.Y)
	x1 := float32(p2.X)
	y1 := float32(p2.Y)

	steep := math32.Abs(y1-y0) > math32.Abs(x1-x0)
	if steep {
		x0, y0 = y0, x0
		x1, y1 = y1, x1
	}
	if x0 > x1 {
		x0, x1 = x1, x0
		y0, y1 = y1, y0
	}

	dx := x1 - x0
	dy := y1 - y0
	gradient := float32(1)
	if dx != 0 {
		gradient = dy / dx
	}

	intery := y0
	for x := int(x0); x <= int(x1); x++ {
		y := math32.Floor(intery)
		frac := intery - y
		if steep {
			c.putPixelAA(int(y), x, color, 1-frac)
			c.putPixelAA(int(y)+1, x, color, frac)
		} else {
			c.putPixelAA(x, int(y), color, 1-frac)
			c.putPixelAA(x, int(y)+1, color, frac)
		}
		intery += gradient
	}
}

// DrawThickLine draws a line of the given pixel thickness by stacking
// parallel copies offset along the line's normal, centered on the
// segment. Thickness <= 1 degenerates to [Canvas.DrawLine]; coincident
// endpoints are a no-op.
func (c *Canvas) DrawThickLine(p1, p2 Point, color Color, thickness int) {
	if thickness <= 1 {
		c.DrawLine(p1, p2, color)
		return
	}
	if p1 == p2 {
		return
	}

	dx := float32(p2.X - p1.X)
	dy := float32(p2.Y - p1.Y)
	length := math32.Sqrt(dx*dx + dy*dy)
	nx := -dy / length
	ny := dx / length

	for i := 0; i < thickness; i++ {
		offset := float32(i) - float32(thickness-1)/2
		ox := int(math32.Round(nx * offset))
		oy := int(math32.Round(ny * offset))
		c.DrawLine(
			Pt(p1.X+ox, p1.Y+oy),
			Pt(p2.X+ox, p2.Y+oy),
			color,
		)
	}
}
