package sight

import "image/color"

// Color is a color with 8-bit red, green, blue and alpha channels.
// The zero value is fully transparent black.
type Color struct {
	R, G, B, A uint8
}

// RGB creates an opaque color from RGB components.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 255}
}

// RGBA creates a color from RGBA components.
func RGBA(r, g, b, a uint8) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// Common colors.
var (
	Black       = RGB(0, 0, 0)
	White       = RGB(255, 255, 255)
	Red         = RGB(255, 0, 0)
	Green       = RGB(0, 255, 0)
	Blue        = RGB(0, 0, 255)
	Yellow      = RGB(255, 255, 0)
	Cyan        = RGB(0, 255, 255)
	Magenta     = RGB(255, 0, 255)
	Orange      = RGB(255, 165, 0)
	Purple      = RGB(128, 0, 128)
	Gray        = RGB(128, 128, 128)
	LightGray   = RGB(192, 192, 192)
	DarkGray    = RGB(64, 64, 64)
	Transparent = RGBA(0, 0, 0, 0)
)

// Packed returns the color packed as 0xAARRGGBB, the layout expected by
// Surface.WritePixel.
func (c Color) Packed() uint32 {
	return uint32(c.B) | uint32(c.G)<<8 | uint32(c.R)<<16 | uint32(c.A)<<24
}

// FromPacked unpacks a 0xAARRGGBB pixel into a Color.
func FromPacked(p uint32) Color {
	return Color{
		R: uint8(p >> 16),
		G: uint8(p >> 8),
		B: uint8(p),
		A: uint8(p >> 24),
	}
}

// Blend composites c over bg and returns the result. A fully opaque c
// returns c itself, a fully transparent c returns bg; anything in
// between mixes per channel. The result is always opaque, since it
// represents ink laid down on an opaque destination.
func (c Color) Blend(bg Color) Color {
	if c.A == 255 {
		return c
	}
	if c.A == 0 {
		return bg
	}
	alpha := uint32(c.A)
	inv := 255 - alpha
	return Color{
		R: uint8((uint32(c.R)*alpha + uint32(bg.R)*inv) / 255),
		G: uint8((uint32(c.G)*alpha + uint32(bg.G)*inv) / 255),
		B: uint8((uint32(c.B)*alpha + uint32(bg.B)*inv) / 255),
		A: 255,
	}
}

// Lerp performs per-channel linear interpolation between c and other.
// t is clamped to [0, 1]: 0 returns c, 1 returns other.
func (c Color) Lerp(other Color, t float32) Color {
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return Color{
		R: uint8(float32(c.R) + (float32(other.R)-float32(c.R))*t),
		G: uint8(float32(c.G) + (float32(other.G)-float32(c.G))*t),
		B: uint8(float32(c.B) + (float32(other.B)-float32(c.B))*t),
		A: uint8(float32(c.A) + (float32(other.A)-float32(c.A))*t),
	}
}

// scaleAlpha returns c with its alpha channel scaled by t in [0, 1].
// This is the anti-aliasing primitive: coverage weights the alpha
// before blending.
func (c Color) scaleAlpha(t float32) Color {
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	c.A = uint8(float32(c.A) * t)
	return c
}

// RGBA implements the color.Color interface.
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}.RGBA()
}

// FromColor converts a standard color.Color to a Color.
func FromColor(c color.Color) Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Color{R: n.R, G: n.G, B: n.B, A: n.A}
}
