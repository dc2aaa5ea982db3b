package ttf

import "github.com/go-text/typesetting/font/opentype"

// Curve flattening step counts. Fixed steps keep the flattening
// deterministic across sizes; at text sizes the segment error is well
// under a pixel.
const (
	quadSteps  = 10
	cubicSteps = 15
)

// vec is a point in glyph-local pixel space.
type vec struct {
	x, y float32
}

// flattenOutline walks a glyph outline's segments, transforming every
// control point from y-up font units into y-down glyph-local pixel
// space (x*scale - bearingX, bearingY - y*scale) and flattening curves
// into fixed-step polylines. Each MoveTo closes the contour in
// progress; the final contour is closed at the end of the walk.
func flattenOutline(segments []opentype.Segment, scale, bearingX, bearingY float32) [][]vec {
	transform := func(p opentype.SegmentPoint) vec {
		return vec{
			x: p.X*scale - bearingX,
			y: bearingY - p.Y*scale,
		}
	}

	var contours [][]vec
	var current []vec
	var pen vec

	closeContour := func() {
		if len(current) > 1 {
			contours = append(contours, current)
		}
		current = nil
	}

	for _, seg := range segments {
		switch seg.Op {
		case opentype.SegmentOpMoveTo:
			closeContour()
			pen = transform(seg.Args[0])
			current = append(current, pen)

		case opentype.SegmentOpLineTo:
			pen = transform(seg.Args[0])
			current = append(current, pen)

		case opentype.SegmentOpQuadTo:
			ctrl := transform(seg.Args[0])
			end := transform(seg.Args[1])
			for i := 1; i <= quadSteps; i++ {
				t := float32(i) / quadSteps
				u := 1 - t
				current = append(current, vec{
					x: u*u*pen.x + 2*u*t*ctrl.x + t*t*end.x,
					y: u*u*pen.y + 2*u*t*ctrl.y + t*t*end.y,
				})
			}
			pen = end

		case opentype.SegmentOpCubeTo:
			c1 := transform(seg.Args[0])
			c2 := transform(seg.Args[1])
			end := transform(seg.Args[2])
			for i := 1; i <= cubicSteps; i++ {
				t := float32(i) / cubicSteps
				u := 1 - t
				current = append(current, vec{
					x: u*u*u*pen.x + 3*u*u*t*c1.x + 3*u*t*t*c2.x + t*t*t*end.x,
					y: u*u*u*pen.y + 3*u*u*t*c1.y + 3*u*t*t*c2.y + t*t*t*end.y,
				})
			}
			pen = end
		}
	}
	closeContour()

	return contours
}

// outlineBounds returns the bounding box of all segment points in font
// units. Control points are included, which can overestimate the true
// curve extent; the rasterizer tolerates the slack.
func outlineBounds(segments []opentype.Segment) (minX, minY, maxX, maxY float32) {
	minX, minY = 1e10, 1e10
	maxX, maxY = -1e10, -1e10

	update := func(p opentype.SegmentPoint) {
		minX = minf(minX, p.X)
		minY = minf(minY, p.Y)
		maxX = maxf(maxX, p.X)
		maxY = maxf(maxY, p.Y)
	}

	for _, seg := range segments {
		switch seg.Op {
		case opentype.SegmentOpMoveTo, opentype.SegmentOpLineTo:
			update(seg.Args[0])
		case opentype.SegmentOpQuadTo:
			update(seg.Args[0])
			update(seg.Args[1])
		case opentype.SegmentOpCubeTo:
			update(seg.Args[0])
			update(seg.Args[1])
			update(seg.Args[2])
		}
	}
	return minX, minY, maxX, maxY
}

func minf(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func maxf(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}
