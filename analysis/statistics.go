package analysis

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// BandStatistics holds per-band summary statistics computed over a Bands
// sample: mean, min, max, population standard deviation and the mean
// plus/minus one standard deviation, each one scalar per band in band
// order.
type BandStatistics struct {
	bands *Bands

	mean        []float64
	min         []float64
	max         []float64
	std         []float64
	meanPlusStd []float64
	meanLessStd []float64
}

// NewBandStatistics reduces each band across its sampled pixels.
// Floating-point bands pass through the noise cleanup first, so invalid
// and out-of-range samples never contribute; a band with no surviving
// samples reports NaN for every statistic.
func NewBandStatistics(bands *Bands) *BandStatistics {
	n := bands.BandCount()
	s := &BandStatistics{
		bands:       bands,
		mean:        make([]float64, n),
		min:         make([]float64, n),
		max:         make([]float64, n),
		std:         make([]float64, n),
		meanPlusStd: make([]float64, n),
		meanLessStd: make([]float64, n),
	}

	dtype := bands.Data().Type()
	for i := 0; i < n; i++ {
		values := cleanForStatistics(bands.Band(i), dtype)
		if len(values) == 0 {
			nan := math.NaN()
			s.mean[i], s.min[i], s.max[i], s.std[i] = nan, nan, nan, nan
			s.meanPlusStd[i], s.meanLessStd[i] = nan, nan
			continue
		}
		s.mean[i] = stat.Mean(values, nil)
		s.min[i] = floats.Min(values)
		s.max[i] = floats.Max(values)
		s.std[i] = stat.PopStdDev(values, nil)
		s.meanPlusStd[i] = s.mean[i] + s.std[i]
		s.meanLessStd[i] = s.mean[i] - s.std[i]
	}
	return s
}

// Bands returns the sample the statistics were computed from.
func (s *BandStatistics) Bands() *Bands { return s.bands }

// Mean returns the per-band mean.
func (s *BandStatistics) Mean() []float64 { return s.mean }

// Min returns the per-band minimum.
func (s *BandStatistics) Min() []float64 { return s.min }

// Max returns the per-band maximum.
func (s *BandStatistics) Max() []float64 { return s.max }

// Std returns the per-band population standard deviation.
func (s *BandStatistics) Std() []float64 { return s.std }

// PlusOneStd returns mean + std per band.
func (s *BandStatistics) PlusOneStd() []float64 { return s.meanPlusStd }

// MinusOneStd returns mean - std per band.
func (s *BandStatistics) MinusOneStd() []float64 { return s.meanLessStd }
