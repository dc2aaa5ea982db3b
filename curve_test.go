package sight

import (
	"testing"

	"github.com/chewxy/math32"
)

func TestDrawArcQuarterEndpoints(t *testing.T) {
	pm := NewPixmap(40, 40)
	c := NewCanvas(pm)
	c.Clear(Black)

	// Quarter arc from the positive x axis down to the positive y axis
	// (raster space y grows down).
	c.DrawArc(20, 20, 10, 0, math32.Pi/2, White)

	if got := pm.GetPixel(30, 20); got != White {
		t.Errorf("arc start (30,20) = %+v, want white", got)
	}
	if got := pm.GetPixel(20, 30); got != White {
		t.Errorf("arc end (20,30) = %+v, want white", got)
	}
	// Opposite side of the circle is untouched.
	if got := pm.GetPixel(10, 20); got != Black {
		t.Errorf("(10,20) = %+v, want black", got)
	}
}

func TestDrawArcNormalizesWrappedRange(t *testing.T) {
	pm := NewPixmap(40, 40)
	c := NewCanvas(pm)
	c.Clear(Black)

	// end < start wraps by 2π and still draws.
	c.DrawArc(20, 20, 8, math32.Pi/2, 0, White)

	if got := pm.GetPixel(20, 28); got != White {
		t.Errorf("wrapped arc start = %+v, want white", got)
	}
}

func TestDrawArcNonPositiveRadiusIsNoOp(t *testing.T) {
	s := newRecordSurface(8, 8)
	c := NewCanvas(s)

	c.DrawArc(4, 4, 0, 0, math32.Pi, Red)
	c.DrawArc(4, 4, -3, 0, math32.Pi, Red)

	if len(s.pixels) != 0 {
		t.Errorf("degenerate arcs wrote %d pixels, want 0", len(s.pixels))
	}
}

func TestDrawBezierQuadEndpoints(t *testing.T) {
	pm := NewPixmap(30, 30)
	c := NewCanvas(pm)
	c.Clear(Black)

	p0 := Pt(2, 25)
	p1 := Pt(15, 2)
	p2 := Pt(27, 25)
	c.DrawBezierQuad(p0, p1, p2, White)

	if got := pm.GetPixel(p0.X, p0.Y); got != White {
		t.Errorf("start pixel = %+v, want white", got)
	}
	if got := pm.GetPixel(p2.X, p2.Y); got != White {
		t.Errorf("end pixel = %+v, want white", got)
	}
	// The curve bends toward the control point but never reaches it.
	if got := pm.GetPixel(p1.X, p1.Y); got != Black {
		t.Errorf("control pixel = %+v, want black", got)
	}
	// Apex of the symmetric quad is at t=0.5: midway between the
	// chord and the control point.
	if got := pm.GetPixel(15, 13); got == Black {
		t.Error("apex region untouched, curve did not bend")
	}
}

func TestDrawBezierCubicEndpoints(t *testing.T) {
	pm := NewPixmap(40, 30)
	c := NewCanvas(pm)
	c.Clear(Black)

	p0 := Pt(2, 15)
	p3 := Pt(37, 15)
	c.DrawBezierCubic(p0, Pt(12, 2), Pt(27, 28), p3, White)

	if got := pm.GetPixel(p0.X, p0.Y); got != White {
		t.Errorf("start pixel = %+v, want white", got)
	}
	if got := pm.GetPixel(p3.X, p3.Y); got != White {
		t.Errorf("end pixel = %+v, want white", got)
	}
}
