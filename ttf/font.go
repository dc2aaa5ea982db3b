// Package ttf rasterizes text from outline fonts (TrueType/OpenType
// sfnt containers) onto any sight.Setter pixel sink.
//
// Glyph outlines are extracted through go-text/typesetting, flattened
// into contour polylines, and converted to 8-bit coverage bitmaps by a
// scanline rasterizer. Rasterized glyphs are cached per (rune, pixel
// size) pair; the cache is unbounded by design — the expected working
// set is a small alphabet at a handful of sizes — and callers that
// sweep many sizes can bound memory with [Font.ClearCache].
package ttf

import (
	"bytes"
	"log/slog"

	"github.com/chewxy/math32"
	"github.com/go-text/typesetting/font"

	"github.com/gogpu/sight"
)

// InvalidFontError is returned by [Parse] when the byte buffer is not a
// valid sfnt font container.
type InvalidFontError struct {
	Err error
}

func (e *InvalidFontError) Error() string {
	if e.Err == nil {
		return "ttf: invalid font"
	}
	return "ttf: invalid font: " + e.Err.Error()
}

func (e *InvalidFontError) Unwrap() error { return e.Err }

// glyphKey identifies one cache entry.
type glyphKey struct {
	r    rune
	size float32
}

// cachedGlyph is a rasterized glyph: a coverage bitmap plus the
// placement metrics needed to composite it at a pen position.
type cachedGlyph struct {
	coverage []uint8 // width*height, row-major, 0..255
	width    int
	height   int
	bearingX int // bitmap left edge relative to the pen x
	bearingY int // bitmap top edge above the baseline
	advance  float32
}

// Font is an outline font with a lazily populated glyph cache.
// Not safe for concurrent use.
type Font struct {
	face  *font.Face
	upem  float32
	cache map[glyphKey]*cachedGlyph

	// rasterized counts trips through the rasterize path, i.e. cache
	// misses. Used to verify caching behavior.
	rasterized int
}

// Parse constructs a Font from raw sfnt container bytes. It fails with
// [InvalidFontError] when the table directory or head table cannot be
// parsed.
func Parse(data []byte) (*Font, error) {
	face, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, &InvalidFontError{Err: err}
	}
	upem := float32(face.Upem())
	if upem <= 0 {
		return nil, &InvalidFontError{}
	}
	return &Font{
		face:  face,
		upem:  upem,
		cache: make(map[glyphKey]*cachedGlyph),
	}, nil
}

// ClearCache drops all cached glyph bitmaps.
func (f *Font) ClearCache() {
	f.cache = make(map[glyphKey]*cachedGlyph)
}

// CacheLen returns the number of cached (rune, size) glyph bitmaps.
func (f *Font) CacheLen() int {
	return len(f.cache)
}

// Ascent returns the scaled distance from the baseline to the top of
// the tallest glyphs, for callers placing a baseline from a top-left
// anchor.
func (f *Font) Ascent(size float32) float32 {
	ext, ok := f.face.FontHExtents()
	if !ok {
		return size
	}
	return ext.Ascender / f.upem * size
}

// DrawText draws text with the pen starting at (x, y), where y is the
// baseline of the first line. A newline resets the pen x and advances
// the baseline by exactly the pixel size. Glyph coverage scales the
// color's alpha; compositing is delegated to the sink's SetPixel.
func (f *Font) DrawText(text string, x, y int, size float32, color sight.Color, dst sight.Setter) {
	if size <= 0 {
		return
	}
	penX := float32(x)
	penY := float32(y)
	for _, r := range text {
		if r == '\n' {
			penX = float32(x)
			penY += size
			continue
		}
		g := f.glyph(r, size)
		ox := int(math32.Round(penX)) + g.bearingX
		oy := int(math32.Round(penY)) - g.bearingY
		for gy := 0; gy < g.height; gy++ {
			rowOffset := gy * g.width
			for gx := 0; gx < g.width; gx++ {
				cov := g.coverage[rowOffset+gx]
				if cov == 0 {
					continue
				}
				a := uint8(uint32(color.A) * uint32(cov) / 255)
				if a == 0 {
					continue
				}
				dst.SetPixel(ox+gx, oy+gy, sight.RGBA(color.R, color.G, color.B, a))
			}
		}
		penX += g.advance
	}
}

// TextWidth returns the widest line's advance-summed width in pixels.
// It populates the glyph cache exactly like DrawText but draws nothing.
func (f *Font) TextWidth(text string, size float32) float32 {
	w, _ := f.TextDimensions(text, size)
	return w
}

// TextDimensions returns the maximum line width and the total height
// (line count times the pixel size) of the text.
func (f *Font) TextDimensions(text string, size float32) (width, height float32) {
	if size <= 0 {
		return 0, 0
	}
	maxWidth := float32(0)
	lineWidth := float32(0)
	lines := 1
	for _, r := range text {
		if r == '\n' {
			maxWidth = math32.Max(maxWidth, lineWidth)
			lineWidth = 0
			lines++
			continue
		}
		lineWidth += f.glyph(r, size).advance
	}
	maxWidth = math32.Max(maxWidth, lineWidth)
	return maxWidth, float32(lines) * size
}

// glyph returns the cached glyph for (r, size), rasterizing on a miss.
func (f *Font) glyph(r rune, size float32) *cachedGlyph {
	key := glyphKey{r: r, size: size}
	if g, ok := f.cache[key]; ok {
		return g
	}
	g := f.rasterizeGlyph(r, size)
	f.cache[key] = g
	f.rasterized++
	return g
}

// rasterizeGlyph resolves the outline for r, flattens it into pixel
// space and accumulates scanline coverage.
func (f *Font) rasterizeGlyph(r rune, size float32) *cachedGlyph {
	scale := size / f.upem

	gid, ok := f.face.Cmap.Lookup(r)
	if !ok {
		gid = 0 // notdef
	}
	advance := f.face.HorizontalAdvance(gid) * scale

	outline, ok := f.face.GlyphData(gid).(font.GlyphOutline)
	if !ok || len(outline.Segments) == 0 {
		// No drawable outline (space, bitmap-only glyph): advance only.
		return &cachedGlyph{advance: advance}
	}

	minX, minY, maxX, maxY := outlineBounds(outline.Segments)

	// Bearings snap the scaled bounding box to the pixel grid; the
	// extra pixel absorbs rounding at the far edges.
	bearingX := int(math32.Floor(minX * scale))
	bearingY := int(math32.Ceil(maxY * scale))
	width := int(math32.Ceil(maxX*scale)) - bearingX + 1
	height := bearingY - int(math32.Floor(minY*scale)) + 1

	contours := flattenOutline(outline.Segments, scale, float32(bearingX), float32(bearingY))
	coverage := rasterize(contours, width, height)

	sight.Logger().Debug("ttf: rasterized glyph",
		slog.Int("rune", int(r)),
		slog.Float64("size", float64(size)),
		slog.Int("width", width),
		slog.Int("height", height),
	)

	return &cachedGlyph{
		coverage: coverage,
		width:    width,
		height:   height,
		bearingX: bearingX,
		bearingY: bearingY,
		advance:  advance,
	}
}
