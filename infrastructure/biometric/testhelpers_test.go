package biometric

import (
	"bytes"
	"encoding/binary"
	"hash/crc32"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"testing"

	"github.com/stretchr/testify/require"
)

const testIterations = 1000

func uniformRaster(value uint8) *Raster {
	pix := make([]uint8, RasterWidth*RasterHeight)
	for i := range pix {
		pix[i] = value
	}
	return &Raster{Width: RasterWidth, Height: RasterHeight, Pix: pix}
}

func uniformImage(width, height int, c color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

func encodePNG(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func encodeJPEG(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, img, &jpeg.Options{Quality: 95}))
	return buf.Bytes()
}

// withPNGDimensions rewrites the IHDR size fields of an encoded PNG
// without touching the pixel data.
func withPNGDimensions(t *testing.T, data []byte, width, height uint32) []byte {
	t.Helper()
	require.Equal(t, "IHDR", string(data[12:16]))
	patched := append([]byte{}, data...)
	binary.BigEndian.PutUint32(patched[16:20], width)
	binary.BigEndian.PutUint32(patched[20:24], height)
	binary.BigEndian.PutUint32(patched[29:33], crc32.ChecksumIEEE(patched[12:29]))
	return patched
}
