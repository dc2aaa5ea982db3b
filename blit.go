package sight

import "github.com/gogpu/sight/bmp"

// DrawImage blits a decoded BMP image with its top-left corner at
// (x, y). Fully transparent source pixels are skipped; all others are
// written opaque through [Canvas.PutPixel], so out-of-canvas parts of
// the image are clipped.
func (c *Canvas) DrawImage(img *bmp.Image, x, y int) {
	if img == nil {
		return
	}
	for row := 0; row < img.Height; row++ {
		for col := 0; col < img.Width; col++ {
			i := (row*img.Width + col) * 4
			a := img.Data[i+3]
			if a == 0 {
				continue
			}
			// Data is canonical BGRA.
			color := Color{
				R: img.Data[i+2],
				G: img.Data[i+1],
				B: img.Data[i+0],
				A: a,
			}
			c.PutPixel(x+col, y+row, color)
		}
	}
}
