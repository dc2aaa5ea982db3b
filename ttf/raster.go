package ttf

import (
	"slices"

	"github.com/chewxy/math32"
)

// subScanlines is the vertical supersampling factor: each pixel row is
// sampled on this many sub-scanlines and the results averaged, giving
// vertical anti-aliasing to match the fractional horizontal spans.
const subScanlines = 4

// rasterize converts closed contour polylines into a width*height
// 8-bit coverage bitmap.
//
// Fill rule: even-odd. Each sub-scanline collects the x positions where
// it crosses a contour edge (half-open edge test, so shared vertices
// count once), sorts them, and fills between alternate pairs with
// fractional coverage at the span ends.
func rasterize(contours [][]vec, width, height int) []uint8 {
	if width <= 0 || height <= 0 {
		return nil
	}
	acc := make([]float32, width*height)

	var xs []float32
	for y := 0; y < height; y++ {
		row := acc[y*width : (y+1)*width]
		for s := 0; s < subScanlines; s++ {
			sy := float32(y) + (float32(s)+0.5)/subScanlines

			xs = xs[:0]
			for _, contour := range contours {
				n := len(contour)
				for i := 0; i < n; i++ {
					a := contour[i]
					b := contour[(i+1)%n]
					if (a.y <= sy) == (b.y <= sy) {
						continue
					}
					t := (sy - a.y) / (b.y - a.y)
					xs = append(xs, a.x+t*(b.x-a.x))
				}
			}
			slices.Sort(xs)

			for i := 0; i+1 < len(xs); i += 2 {
				accumulateSpan(row, xs[i], xs[i+1], width)
			}
		}
	}

	out := make([]uint8, width*height)
	for i, v := range acc {
		v /= subScanlines
		if v <= 0 {
			continue
		}
		if v > 1 {
			v = 1
		}
		out[i] = uint8(v*255 + 0.5)
	}
	return out
}

// accumulateSpan adds the horizontal coverage of [x0, x1) to one
// sub-scanline's row, splitting fractional coverage at both ends.
func accumulateSpan(row []float32, x0, x1 float32, width int) {
	if x0 < 0 {
		x0 = 0
	}
	if x1 > float32(width) {
		x1 = float32(width)
	}
	if x1 <= x0 {
		return
	}

	first := int(x0)
	last := min(int(math32.Ceil(x1))-1, width-1)
	for px := first; px <= last; px++ {
		l := math32.Max(x0, float32(px))
		r := math32.Min(x1, float32(px+1))
		if r > l {
			row[px] += r - l
		}
	}
}
