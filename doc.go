// Package sight is a software 2D graphics primitives library: a
// pixel-addressable canvas with scan-conversion routines for lines,
// circles, ellipses, triangles, rounded rectangles, arcs, Bezier
// curves, gradients and image blitting, built on top of a minimal
// write/flush surface capability.
//
// The same drawing code runs against any destination that can accept a
// pixel write at (x, y) and a flush: a memory-mapped device buffer, a
// host window staging buffer, or the in-memory [Pixmap] included here.
// Bind a surface once, draw, then call [Canvas.Present] to push the
// frame out; presentation is skipped entirely when nothing changed.
//
// Basic usage:
//
//	pm := sight.NewPixmap(320, 240)
//	c := sight.NewCanvas(pm)
//	c.Clear(sight.Black)
//	c.DrawLine(sight.Pt(10, 10), sight.Pt(300, 200), sight.White)
//	c.FillCircle(160, 120, 40, sight.Red)
//	if err := c.Present(); err != nil {
//	    // surface flush failed; Present may be retried
//	}
//
// Font and image decoding live in the subpackages bdf (bitmap glyph
// fonts), ttf (outline fonts) and bmp (uncompressed bitmap images).
// The font packages draw through the [Setter] interface, which both
// [Canvas] and [Pixmap] implement.
//
// All types in this package are single-goroutine by design. A canvas
// and its surface are exclusively owned by one caller; hosts that want
// to share a canvas across goroutines must serialize access externally.
package sight
