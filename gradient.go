package sight

// FillGradientH fills rect with a horizontal linear gradient from c1 at
// the left edge to c2 at the right. A zero-size rect is a no-op.
func (c *Canvas) FillGradientH(rect Rect, c1, c2 Color) {
	if rect.Width <= 0 || rect.Height <= 0 {
		return
	}
	for x := 0; x < rect.Width; x++ {
		col := c1.Lerp(c2, float32(x)/float32(rect.Width))
		for y := 0; y < rect.Height; y++ {
			c.PutPixel(rect.X+x, rect.Y+y, col)
		}
	}
}

// FillGradientV fills rect with a vertical linear gradient from c1 at
// the top edge to c2 at the bottom. A zero-size rect is a no-op.
func (c *Canvas) FillGradientV(rect Rect, c1, c2 Color) {
	if rect.Width <= 0 || rect.Height <= 0 {
		return
	}
	for y := 0; y < rect.Height; y++ {
		col := c1.Lerp(c2, float32(y)/float32(rect.Height))
		for x := 0; x < rect.Width; x++ {
			c.PutPixel(rect.X+x, rect.Y+y, col)
		}
	}
}
