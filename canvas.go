package sight

import "log/slog"

// Canvas is the drawing engine. It owns a [Surface] exclusively for its
// lifetime and tracks a dirty flag so that [Canvas.Present] only
// flushes when something actually changed.
//
// Drawing calls never fail: out-of-bounds pixels are silently
// discarded, degenerate shapes (zero radius, zero-length span) are
// defined no-ops. The only fallible operation is presentation.
//
// A Canvas is not safe for concurrent use.
type Canvas struct {
	surface Surface
	reader  PixelReader // nil when the surface is write-only
	width   int
	height  int
	dirty   bool
}

// NewCanvas binds a canvas to a ready surface. The canvas starts dirty
// so that the first Present pushes the initial contents out.
func NewCanvas(s Surface) *Canvas {
	w, h := s.Size()
	reader, _ := s.(PixelReader)
	return &Canvas{
		surface: s,
		reader:  reader,
		width:   w,
		height:  h,
		dirty:   true,
	}
}

// Width returns the canvas width in pixels.
func (c *Canvas) Width() int { return c.width }

// Height returns the canvas height in pixels.
func (c *Canvas) Height() int { return c.height }

// Dirty reports whether there is drawing state pending presentation.
func (c *Canvas) Dirty() bool { return c.dirty }

// Clear writes color to every addressable pixel.
func (c *Canvas) Clear(color Color) {
	pixel := color.Packed()
	for y := 0; y < c.height; y++ {
		for x := 0; x < c.width; x++ {
			c.surface.WritePixel(x, y, pixel)
		}
	}
	c.dirty = true
}

// PutPixel writes an opaque pixel at (x, y). Writes outside the canvas
// are discarded without touching the surface or the dirty flag.
func (c *Canvas) PutPixel(x, y int, color Color) {
	if x < 0 || y < 0 || x >= c.width || y >= c.height {
		return
	}
	if c.surface.WritePixel(x, y, color.Packed()) {
		c.dirty = true
	}
}

// SetPixel implements [Setter]: color is alpha-blended over the
// destination pixel and the result written opaque.
//
// When the surface is write-only (no [PixelReader]), the blend falls
// back to a black background. On non-black backgrounds this darkens
// partially covered pixels; it is an approximation forced by the
// surface, not correct anti-aliasing.
func (c *Canvas) SetPixel(x, y int, color Color) {
	if x < 0 || y < 0 || x >= c.width || y >= c.height {
		return
	}
	bg := Black
	if c.reader != nil {
		bg = FromPacked(c.reader.ReadPixel(x, y))
		bg.A = 255
	}
	if c.surface.WritePixel(x, y, color.Blend(bg).Packed()) {
		c.dirty = true
	}
}

// putPixelAA commits a pixel with fractional coverage. Coverage scales
// the color's alpha before blending; zero coverage writes nothing.
func (c *Canvas) putPixelAA(x, y int, color Color, coverage float32) {
	if coverage <= 0 {
		return
	}
	c.SetPixel(x, y, color.scaleAlpha(coverage))
}

// Present flushes the surface if there is pending drawing state, then
// clears the dirty flag. Calling Present on a clean canvas is a no-op.
// On failure the canvas stays dirty and Present may be retried.
func (c *Canvas) Present() error {
	if !c.dirty {
		return nil
	}
	return c.ForcePresent()
}

// ForcePresent flushes the surface unconditionally.
func (c *Canvas) ForcePresent() error {
	if err := c.surface.Flush(); err != nil {
		Logger().Warn("sight: surface flush failed", slog.Any("err", err))
		return &PresentError{Err: err}
	}
	c.dirty = false
	return nil
}
