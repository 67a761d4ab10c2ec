package biometric

import "errors"

var (
	// ErrInvalidImage is returned when the upload is not a decodable still image or breaks the size/type limits.
	ErrInvalidImage = errors.New("invalid biometric image")
	// ErrDegenerateImage is returned when the raster carries no histogram mass.
	ErrDegenerateImage = errors.New("degenerate biometric image")
)
