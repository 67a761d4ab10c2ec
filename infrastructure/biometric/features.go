package biometric

import (
	"fmt"
	"math"
)

const HistogramBins = 6

// binWidth splits 0..255 into HistogramBins equal-width buckets.
const binWidth = 256.0 / HistogramBins

// FeatureVector is the statistical summary of a raster: histogram, centroid and spread.
type FeatureVector struct {
	H [HistogramBins]float64 `bson:"h" json:"h"`
	C float64                `bson:"c" json:"c"`
	M float64                `bson:"m" json:"m"`
}

// BinIndex maps an intensity to its histogram bucket; the top bucket absorbs the remainder.
func BinIndex(intensity uint8) int {
	idx := int(math.Floor(float64(intensity) / binWidth))
	if idx > HistogramBins-1 {
		idx = HistogramBins - 1
	}
	return idx
}

// Extract computes the feature vector of a raster. The result is a pure function of the pixels.
func Extract(raster *Raster) (FeatureVector, error) {
	var fv FeatureVector
	if !raster.Valid() {
		return fv, fmt.Errorf("%w: raster sample count does not match its dimensions", ErrInvalidImage)
	}

	var counts [HistogramBins]int
	for _, v := range raster.Pix {
		counts[BinIndex(v)]++
	}

	total := float64(len(raster.Pix))
	if total == 0 {
		return fv, fmt.Errorf("%w: raster has no samples", ErrDegenerateImage)
	}
	for i, count := range counts {
		fv.H[i] = float64(count) / total * 255
	}

	mass := 0.0
	weighted := 0.0
	for i, h := range fv.H {
		mass += h
		weighted += float64(i) * h
	}
	if mass == 0 {
		return fv, fmt.Errorf("%w: histogram has zero mass", ErrDegenerateImage)
	}
	fv.C = weighted / mass

	spread := 0.0
	for i, h := range fv.H {
		d := float64(i) - fv.C
		spread += d * d * h
	}
	fv.M = math.Sqrt(spread / mass)

	if !finite(fv.C) || !finite(fv.M) {
		return fv, fmt.Errorf("%w: non-finite centroid or spread", ErrDegenerateImage)
	}
	return fv, nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
