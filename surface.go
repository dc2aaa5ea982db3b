package sight

// Surface is the destination capability the drawing engine writes to.
// Implementations cover anything pixel-addressable: a memory-mapped
// device framebuffer, a host window staging buffer, or [Pixmap].
//
// The engine holds exactly one Surface for the lifetime of a Canvas and
// never resizes it.
type Surface interface {
	// Size returns the surface dimensions in pixels.
	Size() (width, height int)

	// WritePixel stores a packed 0xAARRGGBB pixel at (x, y) and
	// reports whether the write took effect. Coordinates are
	// guaranteed in range by the caller. Implementations that cannot
	// observe write failures may always return true.
	WritePixel(x, y int, pixel uint32) bool

	// Flush pushes any buffered pixels to the physical destination.
	Flush() error
}

// PixelReader is an optional capability for surfaces whose pixels can
// be read back. When a Canvas's surface implements PixelReader,
// anti-aliased drawing blends against the true destination pixel;
// write-only surfaces fall back to blending against black.
type PixelReader interface {
	// ReadPixel returns the packed 0xAARRGGBB pixel at (x, y).
	// Coordinates are guaranteed in range by the caller.
	ReadPixel(x, y int) uint32
}

// Setter commits a single, possibly translucent, pixel. It is the
// explicit pixel-sink contract between rasterization code and its
// destination: implementations blend c over whatever is already at
// (x, y) and silently discard out-of-bounds writes.
//
// [Canvas] and [Pixmap] both implement Setter; the bdf and ttf font
// rasterizers draw through it.
type Setter interface {
	SetPixel(x, y int, c Color)
}
