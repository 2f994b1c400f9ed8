package raster

import (
	"fmt"
	"log/slog"
	"math"
	"sort"

	"github.com/jmm688/openspectra/config"
)

// Stretch describes a default linear contrast stretch carried by a band
// descriptor and applied when an adjuster is created or reset.
type Stretch interface {
	apply(a *bandAdjuster) error
}

// PercentageStretch clips a band at the Percent and 100-Percent
// percentiles of its data.
type PercentageStretch struct {
	Percent float64
}

func (s PercentageStretch) apply(a *bandAdjuster) error {
	return a.adjustByPercentage(s.Percent, 100-s.Percent)
}

// ValueStretch clips a band at explicit low/high data values.
type ValueStretch struct {
	Low  float64
	High float64
}

func (s ValueStretch) apply(a *bandAdjuster) error {
	a.setLowCutoff(s.Low)
	a.setHighCutoff(s.High)
	return nil
}

// bandAdjuster owns the contrast stretch of a single band: it tracks the
// low/high cutoffs and lazily produces 8-bit display data from the raw
// band values.
type bandAdjuster struct {
	band           *Matrix
	ignoreValue    *float64
	defaultStretch Stretch
	props          *config.Properties
	log            *slog.Logger

	low       float64
	high      float64
	imageData *Matrix
	updated   bool
}

func newBandAdjuster(band *Matrix, ignoreValue *float64, defaultStretch Stretch,
	props *config.Properties) (*bandAdjuster, error) {
	if props == nil {
		props = config.Default()
	}
	a := &bandAdjuster{
		band:           band,
		ignoreValue:    ignoreValue,
		defaultStretch: defaultStretch,
		props:          props,
		log:            slog.Default(),
	}
	if err := a.resetStretch(); err != nil {
		return nil, err
	}
	if err := a.adjust(); err != nil {
		return nil, err
	}
	return a, nil
}

// resetStretch reapplies the band's default stretch.
func (a *bandAdjuster) resetStretch() error {
	stretch := a.defaultStretch
	if stretch == nil {
		stretch = PercentageStretch{Percent: a.props.StretchPercent}
	}
	return stretch.apply(a)
}

// adjustByPercentage sets the cutoffs to the lower/upper percentiles of
// the band data. Integer bands take the percentiles of the raw values;
// float bands are scaled through a FloatBins-bin histogram first so the
// cutoffs land on bin edges.
func (a *bandAdjuster) adjustByPercentage(lower, upper float64) error {
	switch {
	case a.band.Type().IsInteger():
		a.low = percentile(a.band.Values(), lower)
		a.high = percentile(a.band.Values(), upper)
	case a.band.Type().IsFloat():
		a.calculateFloatCutoffs(lower, upper)
	default:
		return fmt.Errorf("band data type %s has no stretch policy: %w",
			a.band.Type(), ErrUnsupportedType)
	}
	a.updated = true
	a.log.Debug("adjusted band by percentage",
		"lower", lower, "upper", upper, "low_cutoff", a.low, "high_cutoff", a.high)
	return nil
}

func (a *bandAdjuster) adjustByValue(lower, upper float64) {
	a.low = lower
	a.high = upper
	a.updated = true
}

func (a *bandAdjuster) setLowCutoff(limit float64) {
	a.low = limit
	a.updated = true
}

func (a *bandAdjuster) setHighCutoff(limit float64) {
	a.high = limit
	a.updated = true
}

func (a *bandAdjuster) lowCutoff() float64  { return a.low }
func (a *bandAdjuster) highCutoff() float64 { return a.high }
func (a *bandAdjuster) isUpdated() bool     { return a.updated }

// adjust recomputes the 8-bit display data if a cutoff changed since the
// last call. Values at or below the low cutoff map to 0, values at or
// above the high cutoff map to 255, everything between scales linearly.
// Data-ignore values always map to 0. Equal cutoffs yield an all-zero
// image rather than a division by zero.
func (a *bandAdjuster) adjust() error {
	if !a.updated {
		return nil
	}
	raw := a.band.Values()
	adjusted := make([]float64, len(raw))

	if a.low != a.high {
		scale := 256 / (a.high - a.low)
		for i, v := range raw {
			if a.ignoreValue != nil && v == *a.ignoreValue {
				adjusted[i] = 0
				continue
			}
			switch {
			case v <= a.low:
				adjusted[i] = 0
			case v >= a.high:
				adjusted[i] = 255
			default:
				scaled := math.Floor((v - a.low) * scale)
				if scaled > 255 {
					scaled = 255
				}
				adjusted[i] = scaled
			}
		}
	}

	imageData, err := NewMatrix(adjusted, a.band.Rows(), a.band.Cols(), TypeUint8)
	if err != nil {
		return err
	}
	a.imageData = imageData
	a.updated = false
	return nil
}

// adjustedData returns the current 8-bit display data, recomputing it
// first if the stretch changed.
func (a *bandAdjuster) adjustedData() (*Matrix, error) {
	if err := a.adjust(); err != nil {
		return nil, err
	}
	return a.imageData, nil
}

// calculateFloatCutoffs maps the band onto FloatBins histogram bins,
// takes the percentiles in bin space and converts the result back to
// data values.
func (a *bandAdjuster) calculateFloatCutoffs(lower, upper float64) {
	nbins := float64(a.props.FloatBins)
	min := a.band.Min()
	max := a.band.Max()
	if min == max {
		a.low = min
		a.high = max
		return
	}

	raw := a.band.Values()
	scaled := make([]float64, len(raw))
	for i, v := range raw {
		scaled[i] = math.Floor((v - min) / (max - min) * (nbins - 1))
	}
	scaledLow := percentile(scaled, lower)
	scaledHigh := percentile(scaled, upper)

	a.low = scaledLow/(nbins-1)*(max-min) + min
	a.high = scaledHigh/(nbins-1)*(max-min) + min
}

// percentile returns the p'th percentile of values using linear
// interpolation between closest ranks, the same rule numpy applies.
func percentile(values []float64, p float64) float64 {
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	if len(sorted) == 1 {
		return sorted[0]
	}
	rank := p / 100 * float64(len(sorted)-1)
	lo := int(math.Floor(rank))
	hi := int(math.Ceil(rank))
	if lo == hi {
		return sorted[lo]
	}
	frac := rank - float64(lo)
	return sorted[lo] + (sorted[hi]-sorted[lo])*frac
}
