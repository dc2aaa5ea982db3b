package bmp

import (
	"bytes"
	"encoding/binary"
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	xbmp "golang.org/x/image/bmp"
)

// buildBMP assembles a minimal BMP file around the given pixel data.
func buildBMP(width, height int32, planes, bpp uint16, compression uint32, pixels []byte) []byte {
	buf := make([]byte, 54, 54+len(pixels))
	buf[0] = 'B'
	buf[1] = 'M'
	binary.LittleEndian.PutUint32(buf[2:], uint32(54+len(pixels)))
	binary.LittleEndian.PutUint32(buf[10:], 54) // pixel data offset
	binary.LittleEndian.PutUint32(buf[14:], 40) // BITMAPINFOHEADER
	binary.LittleEndian.PutUint32(buf[18:], uint32(width))
	binary.LittleEndian.PutUint32(buf[22:], uint32(height))
	binary.LittleEndian.PutUint16(buf[26:], planes)
	binary.LittleEndian.PutUint16(buf[28:], bpp)
	binary.LittleEndian.PutUint32(buf[30:], compression)
	return append(buf, pixels...)
}

func TestDecodeErrors(t *testing.T) {
	// 2x2, 24-bit rows are padded to 8 bytes.
	validPixels := make([]byte, 16)

	tests := []struct {
		name string
		data []byte
		want error
	}{
		{"too small", []byte("BM"), ErrTooSmall},
		{"shifted header", buildBMP(2, 2, 1, 24, 0, validPixels)[2:], ErrBadMagic},
		{"not a bmp", append([]byte("PNG"), make([]byte, 60)...), ErrBadMagic},
		{"zero width", buildBMP(0, 2, 1, 24, 0, validPixels), ErrBadDimensions},
		{"zero height", buildBMP(2, 0, 1, 24, 0, validPixels), ErrBadDimensions},
		{"two planes", buildBMP(2, 2, 2, 24, 0, validPixels), ErrBadPlanes},
		{"rle compressed", buildBMP(2, 2, 1, 24, 1, validPixels), ErrCompressed},
		{"8-bit depth", buildBMP(2, 2, 1, 8, 0, validPixels), ErrUnsupportedDepth},
		{"truncated pixels", buildBMP(2, 2, 1, 24, 0, validPixels[:7]), ErrTruncated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img, err := Decode(tt.data)
			assert.Nil(t, img)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestDecodeUnsupportedHeader(t *testing.T) {
	data := buildBMP(2, 2, 1, 24, 0, make([]byte, 16))
	binary.LittleEndian.PutUint32(data[14:], 12) // BITMAPCOREHEADER
	_, err := Decode(data)
	assert.ErrorIs(t, err, ErrUnsupportedHeader)
}

func TestDecodeBadOffset(t *testing.T) {
	data := buildBMP(2, 2, 1, 24, 0, make([]byte, 16))
	binary.LittleEndian.PutUint32(data[10:], uint32(len(data)+100))
	_, err := Decode(data)
	assert.ErrorIs(t, err, ErrBadOffset)
}

func TestDecode24BitAllRed(t *testing.T) {
	// 2x2 bottom-up, every pixel red: BGR = 00 00 FF, rows padded to 8.
	row := []byte{0, 0, 255, 0, 0, 255, 0, 0}
	pixels := append(append([]byte{}, row...), row...)

	img, err := Decode(buildBMP(2, 2, 1, 24, 0, pixels))
	require.NoError(t, err)
	require.Equal(t, 2, img.Width)
	require.Equal(t, 2, img.Height)
	require.Len(t, img.Data, 16)

	for i := 0; i < len(img.Data); i += 4 {
		assert.Equal(t, []byte{0, 0, 255, 255}, img.Data[i:i+4], "pixel %d", i/4)
	}
}

func TestDecode32BitTopDown(t *testing.T) {
	// 2x1 top-down (negative height): left pixel blue, right pixel
	// green, with distinct alpha values.
	pixels := []byte{
		255, 0, 0, 200, // BGRA blue
		0, 255, 0, 100, // BGRA green
	}

	img, err := Decode(buildBMP(2, -1, 1, 32, 0, pixels))
	require.NoError(t, err)
	require.Equal(t, 2, img.Width)
	require.Equal(t, 1, img.Height)
	assert.Equal(t, pixels, img.Data)
}

func TestDecode32BitBottomUpFlipsRows(t *testing.T) {
	// 1x2 bottom-up: file stores the bottom row first.
	bottom := []byte{1, 2, 3, 255}
	top := []byte{4, 5, 6, 255}
	pixels := append(append([]byte{}, bottom...), top...)

	img, err := Decode(buildBMP(1, 2, 1, 32, 0, pixels))
	require.NoError(t, err)
	assert.Equal(t, top, img.Data[0:4], "first output row should be the image top")
	assert.Equal(t, bottom, img.Data[4:8])
}

func TestDecodeRoundTripWithEncoder(t *testing.T) {
	// Encode a 2x2 all-red image with the x/image reference encoder,
	// then decode it with ours.
	src := image.NewRGBA(image.Rect(0, 0, 2, 2))
	for i := 0; i < len(src.Pix); i += 4 {
		src.Pix[i+0] = 255 // R
		src.Pix[i+3] = 255 // A
	}

	var buf bytes.Buffer
	require.NoError(t, xbmp.Encode(&buf, src))

	img, err := Decode(buf.Bytes())
	require.NoError(t, err)
	require.Equal(t, 2, img.Width)
	require.Equal(t, 2, img.Height)

	for i := 0; i < len(img.Data); i += 4 {
		assert.Equal(t, []byte{0, 0, 255, 255}, img.Data[i:i+4], "pixel %d", i/4)
	}
}
