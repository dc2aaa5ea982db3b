package sight

import (
	"image"
	"image/png"
	"os"
)

// Pixmap is an in-memory pixel buffer implementing [Surface],
// [PixelReader] and [Setter]. It serves both as the staging buffer for
// window-backed targets (draw into it, then hand Data to the window
// system) and as the test double for the drawing engine.
type Pixmap struct {
	width  int
	height int
	data   []uint32 // packed 0xAARRGGBB, row-major
}

// NewPixmap creates a pixmap with the given dimensions, initially all
// transparent black.
func NewPixmap(width, height int) *Pixmap {
	return &Pixmap{
		width:  width,
		height: height,
		data:   make([]uint32, width*height),
	}
}

// Size implements Surface.
func (p *Pixmap) Size() (int, int) {
	return p.width, p.height
}

// Width returns the width of the pixmap.
func (p *Pixmap) Width() int { return p.width }

// Height returns the height of the pixmap.
func (p *Pixmap) Height() int { return p.height }

// Data returns the raw packed pixel data, row-major.
func (p *Pixmap) Data() []uint32 { return p.data }

// WritePixel implements Surface.
func (p *Pixmap) WritePixel(x, y int, pixel uint32) bool {
	if x < 0 || y < 0 || x >= p.width || y >= p.height {
		return false
	}
	p.data[y*p.width+x] = pixel
	return true
}

// ReadPixel implements PixelReader.
func (p *Pixmap) ReadPixel(x, y int) uint32 {
	if x < 0 || y < 0 || x >= p.width || y >= p.height {
		return 0
	}
	return p.data[y*p.width+x]
}

// Flush implements Surface. A pixmap has no physical destination, so
// Flush always succeeds.
func (p *Pixmap) Flush() error { return nil }

// SetPixel implements Setter: c is blended over the existing pixel and
// the result stored opaque. Out-of-bounds writes are discarded.
func (p *Pixmap) SetPixel(x, y int, c Color) {
	if x < 0 || y < 0 || x >= p.width || y >= p.height {
		return
	}
	i := y*p.width + x
	bg := FromPacked(p.data[i])
	bg.A = 255
	p.data[i] = c.Blend(bg).Packed()
}

// GetPixel returns the color at (x, y), or Transparent when out of
// bounds.
func (p *Pixmap) GetPixel(x, y int) Color {
	if x < 0 || y < 0 || x >= p.width || y >= p.height {
		return Transparent
	}
	return FromPacked(p.data[y*p.width+x])
}

// ToImage converts the pixmap to an image.NRGBA.
func (p *Pixmap) ToImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, p.width, p.height))
	for y := 0; y < p.height; y++ {
		for x := 0; x < p.width; x++ {
			c := FromPacked(p.data[y*p.width+x])
			i := img.PixOffset(x, y)
			img.Pix[i+0] = c.R
			img.Pix[i+1] = c.G
			img.Pix[i+2] = c.B
			img.Pix[i+3] = c.A
		}
	}
	return img
}

// FromImage creates a pixmap from an image.
func FromImage(img image.Image) *Pixmap {
	bounds := img.Bounds()
	pm := NewPixmap(bounds.Dx(), bounds.Dy())
	for y := 0; y < pm.height; y++ {
		for x := 0; x < pm.width; x++ {
			c := FromColor(img.At(bounds.Min.X+x, bounds.Min.Y+y))
			pm.data[y*pm.width+x] = c.Packed()
		}
	}
	return pm
}

// SavePNG saves the pixmap to a PNG file.
func (p *Pixmap) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()
	return png.Encode(f, p.ToImage())
}
