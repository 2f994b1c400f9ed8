package analysis

import (
	"math"

	"github.com/jmm688/openspectra/raster"
)

// Floating-point reflectance legitimately ranges 0-1; NaN/Inf and
// out-of-range samples are sensor artifacts that would otherwise
// dominate min/max and bias mean/std. Integer band data bypasses
// cleanup entirely.

func isNoise(v float64) bool {
	return math.IsNaN(v) || math.IsInf(v, 0) || v < 0.0 || v > 1.0
}

// cleanForStatistics returns the values that survive the noise cleanup,
// dropping the rest. Excluded samples are absent from the result, never
// zeroed, so reductions over it treat them as missing. Integer data is
// returned as-is.
func cleanForStatistics(values []float64, dtype raster.DataType) []float64 {
	if !dtype.IsFloat() {
		return values
	}
	clean := make([]float64, 0, len(values))
	for _, v := range values {
		if !isNoise(v) {
			clean = append(clean, v)
		}
	}
	return clean
}

// maskNoise returns a copy with noise values replaced by NaN, preserving
// length and position so the result stays aligned with a parallel axis
// such as wavelengths. Integer data is returned as-is.
func maskNoise(values []float64, dtype raster.DataType) []float64 {
	if !dtype.IsFloat() {
		return values
	}
	masked := make([]float64, len(values))
	for i, v := range values {
		if isNoise(v) {
			masked[i] = math.NaN()
		} else {
			masked[i] = v
		}
	}
	return masked
}
