package biometric

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

const (
	// MaxImageBytes bounds a single upload.
	MaxImageBytes = 5 << 20
	// MaxImagePixels bounds the decoded size, which a compressed upload can hide.
	MaxImagePixels = 40_000_000

	RasterWidth  = 256
	RasterHeight = 256
)

// AllowedMediaTypes lists the image formats the normalizer can decode.
var AllowedMediaTypes = []string{
	"image/png",
	"image/jpeg",
	"image/gif",
	"image/webp",
	"image/bmp",
	"image/tiff",
}

// RawImage is an uploaded image. It is consumed once and never persisted.
type RawImage struct {
	Data      []byte
	MediaType string
}

// Raster is a single-channel 8-bit intensity grid stored row-major.
type Raster struct {
	Width  int
	Height int
	Pix    []uint8
}

// Valid reports whether the sample count matches the raster dimensions.
func (r *Raster) Valid() bool {
	return r != nil && r.Width >= 0 && r.Height >= 0 && len(r.Pix) == r.Width*r.Height
}

// CheckRawImage enforces the upload limits without decoding the image.
// It returns the sniffed media type.
func CheckRawImage(raw RawImage) (string, error) {
	if len(raw.Data) == 0 {
		return "", fmt.Errorf("%w: empty upload", ErrInvalidImage)
	}
	if len(raw.Data) > MaxImageBytes {
		return "", fmt.Errorf("%w: %d bytes exceeds the %d byte limit", ErrInvalidImage, len(raw.Data), MaxImageBytes)
	}
	if raw.MediaType != "" && !strings.HasPrefix(strings.ToLower(raw.MediaType), "image/") {
		return "", fmt.Errorf("%w: declared media type %q is not an image", ErrInvalidImage, raw.MediaType)
	}
	detected := mimetype.Detect(raw.Data)
	for _, allowed := range AllowedMediaTypes {
		if detected.Is(allowed) {
			return allowed, nil
		}
	}
	return "", fmt.Errorf("%w: unsupported media type %s", ErrInvalidImage, detected.String())
}

// Normalize decodes raw, stretches it to RasterWidth x RasterHeight and reduces it to luma.
// Enrollment and authentication must both go through this function.
func Normalize(raw RawImage) (*Raster, error) {
	if _, err := CheckRawImage(raw); err != nil {
		return nil, err
	}
	config, _, err := image.DecodeConfig(bytes.NewReader(raw.Data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidImage, err)
	}
	if config.Width <= 0 || config.Height <= 0 {
		return nil, fmt.Errorf("%w: image has no pixels", ErrInvalidImage)
	}
	if int64(config.Width)*int64(config.Height) > MaxImagePixels {
		return nil, fmt.Errorf("%w: %dx%d exceeds the %d pixel limit", ErrInvalidImage, config.Width, config.Height, MaxImagePixels)
	}
	src, _, err := image.Decode(bytes.NewReader(raw.Data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidImage, err)
	}
	if src.Bounds().Empty() {
		return nil, fmt.Errorf("%w: image has no pixels", ErrInvalidImage)
	}
	return NormalizeImage(src), nil
}

// NormalizeImage performs the resize and grayscale steps on an already decoded image.
func NormalizeImage(src image.Image) *Raster {
	scaled := image.NewRGBA(image.Rect(0, 0, RasterWidth, RasterHeight))
	draw.BiLinear.Scale(scaled, scaled.Bounds(), src, src.Bounds(), draw.Src, nil)

	raster := &Raster{
		Width:  RasterWidth,
		Height: RasterHeight,
		Pix:    make([]uint8, RasterWidth*RasterHeight),
	}
	for y := 0; y < RasterHeight; y++ {
		for x := 0; x < RasterWidth; x++ {
			gray := color.GrayModel.Convert(scaled.RGBAAt(x, y)).(color.Gray)
			raster.Pix[y*RasterWidth+x] = gray.Y
		}
	}
	return raster
}
