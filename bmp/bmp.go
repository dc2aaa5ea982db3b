// Package bmp decodes uncompressed Windows bitmap images into a
// canonical BGRA pixel buffer suitable for blitting.
//
// Only the common subset needed for embedded asset loading is
// supported: BITMAPINFOHEADER (or larger) headers, a single color
// plane, no compression (BI_RGB, or BI_BITFIELDS for 32-bit data), and
// 24- or 32-bit pixel depths. Both bottom-up and top-down row orders
// are handled; the output is always top-down.
package bmp

import (
	"encoding/binary"
	"errors"
)

// Decode failure conditions, one per diagnosable defect in the input.
var (
	ErrTooSmall          = errors.New("bmp: file smaller than header")
	ErrBadMagic          = errors.New("bmp: missing BM signature")
	ErrUnsupportedHeader = errors.New("bmp: unsupported DIB header")
	ErrBadDimensions     = errors.New("bmp: invalid image dimensions")
	ErrBadPlanes         = errors.New("bmp: color plane count must be 1")
	ErrCompressed        = errors.New("bmp: compressed data not supported")
	ErrBadOffset         = errors.New("bmp: pixel data offset out of range")
	ErrUnsupportedDepth  = errors.New("bmp: only 24 and 32 bits per pixel supported")
	ErrTruncated         = errors.New("bmp: truncated pixel data")
)

// headerSize is the fixed file header (14 bytes) plus the minimum DIB
// header (BITMAPINFOHEADER, 40 bytes).
const headerSize = 54

// Image is a decoded bitmap: Width x Height pixels, 4 bytes per pixel
// in B, G, R, A order, top-down row-major. Immutable after decode;
// ownership passes to the caller.
type Image struct {
	Width  int
	Height int
	Data   []byte
}

// Decode parses an uncompressed 24- or 32-bit BMP file.
func Decode(data []byte) (*Image, error) {
	if len(data) < headerSize {
		return nil, ErrTooSmall
	}
	if data[0] != 'B' || data[1] != 'M' {
		return nil, ErrBadMagic
	}

	dibSize := binary.LittleEndian.Uint32(data[14:])
	if dibSize < 40 {
		return nil, ErrUnsupportedHeader
	}

	width := int(int32(binary.LittleEndian.Uint32(data[18:])))
	heightSigned := int(int32(binary.LittleEndian.Uint32(data[22:])))
	// A negative height marks a top-down pixel layout.
	topDown := heightSigned < 0
	height := heightSigned
	if topDown {
		height = -height
	}
	if width <= 0 || height == 0 {
		return nil, ErrBadDimensions
	}

	planes := binary.LittleEndian.Uint16(data[26:])
	bpp := binary.LittleEndian.Uint16(data[28:])
	compression := binary.LittleEndian.Uint32(data[30:])

	if planes != 1 {
		return nil, ErrBadPlanes
	}
	// 0 = BI_RGB; 3 = BI_BITFIELDS, which common encoders emit for
	// 32-bit BGRA with the default masks.
	if compression != 0 && compression != 3 {
		return nil, ErrCompressed
	}

	offset := int(binary.LittleEndian.Uint32(data[10:]))
	if offset < 0 || offset >= len(data) {
		return nil, ErrBadOffset
	}
	pixelData := data[offset:]

	switch bpp {
	case 24:
		return decode24(pixelData, width, height, topDown)
	case 32:
		return decode32(pixelData, width, height, topDown)
	default:
		return nil, ErrUnsupportedDepth
	}
}

// decode24 converts 24-bit BGR rows (padded to 4-byte multiples) to
// BGRA with full alpha.
func decode24(pixelData []byte, width, height int, topDown bool) (*Image, error) {
	rowSize := (width*3 + 3) / 4 * 4
	if len(pixelData) < rowSize*height {
		return nil, ErrTruncated
	}

	out := make([]byte, 0, width*height*4)
	for y := 0; y < height; y++ {
		srcY := y
		if !topDown {
			srcY = height - 1 - y
		}
		row := pixelData[srcY*rowSize:]
		for x := 0; x < width; x++ {
			i := x * 3
			out = append(out, row[i], row[i+1], row[i+2], 255)
		}
	}
	return &Image{Width: width, Height: height, Data: out}, nil
}

// decode32 copies 32-bit BGRA rows, flipping bottom-up layouts.
func decode32(pixelData []byte, width, height int, topDown bool) (*Image, error) {
	rowSize := width * 4
	if len(pixelData) < rowSize*height {
		return nil, ErrTruncated
	}

	out := make([]byte, 0, width*height*4)
	for y := 0; y < height; y++ {
		srcY := y
		if !topDown {
			srcY = height - 1 - y
		}
		row := pixelData[srcY*rowSize:]
		out = append(out, row[:rowSize]...)
	}
	return &Image{Width: width, Height: height, Data: out}, nil
}
