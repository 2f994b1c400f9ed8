package analysis

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/jmm688/openspectra/config"
	"github.com/jmm688/openspectra/plot"
	"github.com/jmm688/openspectra/raster"
)

// ErrMissingBand indicates a histogram request on a multi-channel image
// that did not say which channel to use. Retry with a band.
var ErrMissingBand = errors.New("band is required when the image has multiple channels")

// Image is the capability this layer needs from an image: enough to pull
// raw and display-adjusted data for a band and describe its clipping.
// RequiresBandSelector replaces concrete-type inspection; single-channel
// implementations report false and ignore the band argument everywhere.
type Image interface {
	RequiresBandSelector() bool
	RawData(band raster.Band) *raster.Matrix
	ImageData(band raster.Band) *raster.Matrix
	Label(band raster.Band) string
	LowCutoff(band raster.Band) float64
	HighCutoff(band raster.Band) float64
}

// HistogramTools builds histogram plot data from an image.
type HistogramTools struct {
	image     Image
	floatBins int
	log       *slog.Logger
}

// NewHistogramTools wraps an image. A nil props falls back to
// config.Default().
func NewHistogramTools(image Image, props *config.Properties) *HistogramTools {
	if props == nil {
		props = config.Default()
	}
	return &HistogramTools{
		image:     image,
		floatBins: props.FloatBins,
		log:       slog.Default(),
	}
}

// RawHistogram builds histogram data over the image's raw band values,
// with the band's current clip cutoffs attached as plot limits. The band
// argument is required for multi-channel images and ignored otherwise.
func (t *HistogramTools) RawHistogram(band raster.Band) (*plot.HistogramPlotData, error) {
	if err := t.checkBand(band); err != nil {
		return nil, err
	}
	data, err := t.histogramData(t.image.RawData(band))
	if err != nil {
		return nil, err
	}
	data.Title = "Raw " + t.image.Label(band)
	data.Color = plot.Red
	data.LowerLimit = t.image.LowCutoff(band)
	data.UpperLimit = t.image.HighCutoff(band)
	data.HasLimits = true
	return data, nil
}

// AdjustedHistogram builds histogram data over the image's
// display-adjusted values. No clip limits are attached: the adjusted
// data is already clipped. The band argument contract matches
// RawHistogram.
func (t *HistogramTools) AdjustedHistogram(band raster.Band) (*plot.HistogramPlotData, error) {
	if err := t.checkBand(band); err != nil {
		return nil, err
	}
	data, err := t.histogramData(t.image.ImageData(band))
	if err != nil {
		return nil, err
	}
	data.Title = "Adjusted " + t.image.Label(band)
	data.Color = plot.Blue
	return data, nil
}

func (t *HistogramTools) checkBand(band raster.Band) error {
	if t.image.RequiresBandSelector() && band == raster.BandGrey {
		return ErrMissingBand
	}
	return nil
}

// histogramData applies the binning policy: integer data gets one bin
// per integer value (max - min), floating-point data gets the configured
// fixed bin count, anything else has no policy.
func (t *HistogramTools) histogramData(data *raster.Matrix) (*plot.HistogramPlotData, error) {
	min := data.Min()
	max := data.Max()

	var bins int
	switch {
	case data.Type().IsInteger():
		bins = int(max - min)
	case data.Type().IsFloat():
		bins = t.floatBins
	default:
		return nil, fmt.Errorf("data with type %s cannot be binned: %w",
			data.Type(), raster.ErrUnsupportedType)
	}

	t.log.Debug("built histogram data", "type", data.Type().String(),
		"bins", bins, "min", min, "max", max)

	return &plot.HistogramPlotData{
		PlotData: plot.PlotData{
			XData: []float64{min, max},
			YData: data.Values(),
		},
		Bins: bins,
	}, nil
}
