package sight

import "testing"

func TestFillRectPixelCount(t *testing.T) {
	tests := []struct {
		name string
		rect Rect
		want int
	}{
		{"fully on canvas", NewRect(1, 1, 3, 4), 12},
		{"clipped at right edge", NewRect(6, 0, 5, 2), 4},
		{"clipped at top-left", NewRect(-2, -2, 4, 4), 4},
		{"fully off canvas", NewRect(20, 20, 3, 3), 0},
		{"zero size", NewRect(2, 2, 0, 5), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newRecordSurface(8, 8)
			c := NewCanvas(s)

			c.FillRect(tt.rect, Red)

			if len(s.pixels) != tt.want {
				t.Errorf("FillRect wrote %d pixels, want %d", len(s.pixels), tt.want)
			}
		})
	}
}

func TestDrawRectStrokesBorderInclusive(t *testing.T) {
	pm := NewPixmap(10, 10)
	c := NewCanvas(pm)
	c.Clear(Black)

	c.DrawRect(NewRect(2, 2, 5, 4), White)

	// Corners of the inclusive border.
	for _, p := range []Point{Pt(2, 2), Pt(6, 2), Pt(6, 5), Pt(2, 5)} {
		if got := pm.GetPixel(p.X, p.Y); got != White {
			t.Errorf("corner %v = %+v, want white", p, got)
		}
	}
	// Interior stays empty.
	if got := pm.GetPixel(4, 3); got != Black {
		t.Errorf("interior = %+v, want black", got)
	}
}

func TestDrawCircleSymmetry(t *testing.T) {
	pm := NewPixmap(30, 30)
	c := NewCanvas(pm)
	c.Clear(Black)

	c.DrawCircle(15, 15, 10, White)

	// The four axis extremes are always plotted by the first midpoint
	// iteration.
	for _, p := range []Point{Pt(25, 15), Pt(5, 15), Pt(15, 25), Pt(15, 5)} {
		if got := pm.GetPixel(p.X, p.Y); got != White {
			t.Errorf("extreme %v = %+v, want white", p, got)
		}
	}
	if got := pm.GetPixel(15, 15); got != Black {
		t.Errorf("center = %+v, want black (stroke only)", got)
	}
}

func TestFillCircleBands(t *testing.T) {
	pm := NewPixmap(30, 30)
	c := NewCanvas(pm)
	c.Clear(Black)

	c.FillCircle(15, 15, 5, White)

	if got := pm.GetPixel(15, 15); got != White {
		t.Errorf("center = %+v, want solid white", got)
	}
	if got := pm.GetPixel(15+3, 15); got != White {
		t.Errorf("interior = %+v, want solid white", got)
	}
	// Just past radius+0.5: untouched.
	if got := pm.GetPixel(15+7, 15); got != Black {
		t.Errorf("outside = %+v, want black", got)
	}
	// The edge band at exactly the radius gets partial coverage.
	edge := pm.GetPixel(15+5, 15)
	if edge == Black || edge == White {
		t.Errorf("edge pixel = %+v, want partial coverage", edge)
	}
}

func TestFillCircleZeroRadiusWritesSinglePixel(t *testing.T) {
	s := newRecordSurface(8, 8)
	c := NewCanvas(s)

	c.FillCircle(4, 4, 0, Red)

	if len(s.pixels) != 1 {
		t.Errorf("zero-radius fill wrote %d pixels, want 1", len(s.pixels))
	}
}

func TestDrawEllipseExtremes(t *testing.T) {
	pm := NewPixmap(40, 30)
	c := NewCanvas(pm)
	c.Clear(Black)

	c.DrawEllipse(20, 15, 12, 7, White)

	for _, p := range []Point{Pt(32, 15), Pt(8, 15), Pt(20, 22), Pt(20, 8)} {
		if got := pm.GetPixel(p.X, p.Y); got != White {
			t.Errorf("extreme %v = %+v, want white", p, got)
		}
	}
	if got := pm.GetPixel(20, 15); got != Black {
		t.Errorf("center = %+v, want black", got)
	}
}

func TestFillTriangleDegenerateRow(t *testing.T) {
	t.Run("single row span", func(t *testing.T) {
		s := newRecordSurface(16, 16)
		c := NewCanvas(s)

		c.FillTriangle(Pt(2, 5), Pt(8, 5), Pt(5, 5), Red)

		if len(s.pixels) != 7 {
			t.Fatalf("flat triangle wrote %d pixels, want 7", len(s.pixels))
		}
		for x := 2; x <= 8; x++ {
			if _, ok := s.pixels[Pt(x, 5)]; !ok {
				t.Errorf("span pixel (%d,5) missing", x)
			}
		}
	})

	t.Run("point writes nothing", func(t *testing.T) {
		s := newRecordSurface(16, 16)
		c := NewCanvas(s)

		c.FillTriangle(Pt(4, 4), Pt(4, 4), Pt(4, 4), Red)

		if len(s.pixels) != 0 {
			t.Errorf("degenerate point wrote %d pixels, want 0", len(s.pixels))
		}
	})
}

func TestFillTriangleCoversInteriorAndVertices(t *testing.T) {
	pm := NewPixmap(20, 20)
	c := NewCanvas(pm)
	c.Clear(Black)

	c.FillTriangle(Pt(3, 2), Pt(16, 8), Pt(5, 15), Green)

	// Centroid is interior.
	if got := pm.GetPixel(8, 8); got != Green {
		t.Errorf("interior = %+v, want green", got)
	}
	for _, p := range []Point{Pt(3, 2), Pt(16, 8), Pt(5, 15)} {
		if got := pm.GetPixel(p.X, p.Y); got != Green {
			t.Errorf("vertex %v = %+v, want green", p, got)
		}
	}
	// Well outside.
	if got := pm.GetPixel(18, 2); got != Black {
		t.Errorf("exterior = %+v, want black", got)
	}
}

func TestFillRoundedRectStaysInsideAndClampsRadius(t *testing.T) {
	pm := NewPixmap(24, 24)
	c := NewCanvas(pm)
	c.Clear(Black)

	rect := NewRect(4, 4, 12, 8)
	// Radius far larger than half the smaller dimension: clamped to 4.
	c.FillRoundedRect(rect, 100, White)

	for y := 0; y < 24; y++ {
		for x := 0; x < 24; x++ {
			if rect.Contains(Pt(x, y)) {
				continue
			}
			if got := pm.GetPixel(x, y); got != Black {
				t.Fatalf("pixel %v outside rect = %+v, want black", Pt(x, y), got)
			}
		}
	}
	// Center of the rect is filled.
	if got := pm.GetPixel(10, 8); got != White {
		t.Errorf("center = %+v, want white", got)
	}
}

func TestFillGradientH(t *testing.T) {
	pm := NewPixmap(8, 4)
	c := NewCanvas(pm)

	rect := NewRect(0, 0, 8, 4)
	c.FillGradientH(rect, Black, White)

	// First column is exactly c1.
	if got := pm.GetPixel(0, 0); got != Black {
		t.Errorf("first column = %+v, want black", got)
	}
	// Monotonic left to right, identical within a column.
	prev := uint8(0)
	for x := 0; x < 8; x++ {
		col := pm.GetPixel(x, 0)
		if col.R < prev {
			t.Fatalf("gradient not monotonic at x=%d", x)
		}
		prev = col.R
		if other := pm.GetPixel(x, 3); other != col {
			t.Errorf("column %d varies vertically: %+v vs %+v", x, col, other)
		}
	}
}

func TestFillGradientZeroSpanIsNoOp(t *testing.T) {
	s := newRecordSurface(8, 8)
	c := NewCanvas(s)

	c.FillGradientH(NewRect(0, 0, 0, 8), Red, Blue)
	c.FillGradientV(NewRect(0, 0, 8, 0), Red, Blue)

	if len(s.pixels) != 0 {
		t.Errorf("zero-span gradients wrote %d pixels, want 0", len(s.pixels))
	}
}
