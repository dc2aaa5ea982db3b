// Package bdf decodes BDF bitmap glyph fonts and draws their glyphs by
// direct bit-tests through the sight.Setter pixel sink.
//
// Parsing is deliberately lenient: unrecognized lines are skipped and
// malformed numeric fields default to zero rather than failing the
// whole font. The glyph table is 8-bit only; glyphs with encodings
// of 256 and above are parsed but discarded.
package bdf

import (
	"bufio"
	"bytes"
	"strconv"
	"strings"

	"github.com/gogpu/sight"
)

// Glyph is a single bitmap glyph: packed 1-bit-per-pixel rows with the
// leftmost pixel in the high bit of each row's first byte. Immutable
// once parsed.
type Glyph struct {
	Encoding    rune
	Bitmap      []byte
	Width       int
	Height      int
	OffsetX     int
	OffsetY     int
	DeviceWidth int
}

// Draw blits the glyph with its pen position at (x, y) on the baseline.
// Set bits become pixels of the given color; clear bits leave the
// destination untouched.
func (g *Glyph) Draw(x, y int, color sight.Color, dst sight.Setter) {
	x += g.OffsetX
	y = y - g.Height - g.OffsetY

	bytesPerRow := (g.Width + 7) / 8
	for row := 0; row < g.Height; row++ {
		rowOffset := row * bytesPerRow
		for col := 0; col < g.Width; col++ {
			byteIndex := rowOffset + col/8
			if byteIndex >= len(g.Bitmap) {
				continue
			}
			bit := 7 - col%8
			if g.Bitmap[byteIndex]>>bit&1 == 1 {
				dst.SetPixel(x+col, y+row, color)
			}
		}
	}
}

// BoundingBox is the font's global bounding box: the maximum glyph
// extent and its offset from the origin.
type BoundingBox struct {
	Width   int
	Height  int
	OffsetX int
	OffsetY int
}

// Font is a parsed bitmap font. Read-only after Parse.
type Font struct {
	Name        string
	Size        int
	BoundingBox BoundingBox
	Glyphs      map[rune]*Glyph
}

// Glyph returns the glyph for ch, or nil if the font has none.
func (f *Font) Glyph(ch rune) *Glyph {
	return f.Glyphs[ch]
}

// DrawChar draws a single character with the pen at (x, y) and returns
// the advance used: the glyph's device width, or the global
// bounding-box width for unmapped characters.
func (f *Font) DrawChar(ch rune, x, y int, color sight.Color, dst sight.Setter) int {
	g := f.Glyph(ch)
	if g == nil {
		return f.BoundingBox.Width
	}
	g.Draw(x, y, color, dst)
	return g.DeviceWidth
}

// DrawText draws a string with the pen starting at (x, y). A newline
// resets the pen x and advances y by the font's line height.
func (f *Font) DrawText(text string, x, y int, color sight.Color, dst sight.Setter) {
	penX := x
	penY := y
	for _, ch := range text {
		if ch == '\n' {
			penX = x
			penY += f.TextHeight()
			continue
		}
		penX += f.DrawChar(ch, penX, penY, color, dst)
	}
}

// TextWidth returns the advance-summed width of a single line of text.
// Unmapped characters contribute the global bounding-box width.
func (f *Font) TextWidth(text string) int {
	width := 0
	for _, ch := range text {
		if g := f.Glyph(ch); g != nil {
			width += g.DeviceWidth
		} else {
			width += f.BoundingBox.Width
		}
	}
	return width
}

// TextHeight returns the font's line height.
func (f *Font) TextHeight() int {
	return f.BoundingBox.Height
}

// Parse decodes a BDF font description. It never fails: missing or
// malformed fields fall back to zero values, and an empty input yields
// an empty font.
func Parse(data []byte) *Font {
	font := &Font{Glyphs: make(map[rune]*Glyph)}

	var current *Glyph
	var bitmap []byte
	inBitmap := false

	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		switch {
		case strings.HasPrefix(line, "FONT "):
			font.Name = strings.TrimSpace(line[5:])

		case strings.HasPrefix(line, "SIZE "):
			font.Size = atoiField(strings.Fields(line[5:]), 0)

		case strings.HasPrefix(line, "FONTBOUNDINGBOX "):
			parts := strings.Fields(line[16:])
			if len(parts) >= 4 {
				font.BoundingBox = BoundingBox{
					Width:   atoiField(parts, 0),
					Height:  atoiField(parts, 1),
					OffsetX: atoiField(parts, 2),
					OffsetY: atoiField(parts, 3),
				}
			}

		case strings.HasPrefix(line, "STARTCHAR"):
			current = &Glyph{}

		case strings.HasPrefix(line, "ENCODING "):
			if current != nil {
				current.Encoding = rune(atoiField(strings.Fields(line[9:]), 0))
			}

		case strings.HasPrefix(line, "DWIDTH "):
			if current != nil {
				current.DeviceWidth = atoiField(strings.Fields(line[7:]), 0)
			}

		case strings.HasPrefix(line, "BBX "):
			if current != nil {
				parts := strings.Fields(line[4:])
				if len(parts) >= 4 {
					current.Width = atoiField(parts, 0)
					current.Height = atoiField(parts, 1)
					current.OffsetX = atoiField(parts, 2)
					current.OffsetY = atoiField(parts, 3)
				}
			}

		case line == "BITMAP":
			inBitmap = true
			bitmap = bitmap[:0]

		case line == "ENDCHAR":
			if current != nil && current.Encoding < 256 {
				current.Bitmap = append([]byte(nil), bitmap...)
				font.Glyphs[current.Encoding] = current
			}
			current = nil
			inBitmap = false

		case inBitmap:
			bitmap = appendHexRow(bitmap, line)
		}
	}

	return font
}

// atoiField parses parts[i] as an integer, defaulting to 0 for missing
// or malformed fields.
func atoiField(parts []string, i int) int {
	if i >= len(parts) {
		return 0
	}
	n, err := strconv.Atoi(parts[i])
	if err != nil {
		return 0
	}
	return n
}

// appendHexRow decodes one BITMAP line of hex digits, two per byte.
// Malformed pairs are skipped.
func appendHexRow(dst []byte, line string) []byte {
	for i := 0; i < len(line); i += 2 {
		end := min(i+2, len(line))
		b, err := strconv.ParseUint(line[i:end], 16, 8)
		if err != nil {
			continue
		}
		dst = append(dst, byte(b))
	}
	return dst
}
