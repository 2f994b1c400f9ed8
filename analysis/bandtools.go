package analysis

import (
	"fmt"
	"log/slog"

	"github.com/jmm688/openspectra/plot"
)

// BandTools prepares band data and statistics from a spectral file for
// plotting. It holds no state beyond the file; every call reads fresh.
type BandTools struct {
	file SpectralFile
	log  *slog.Logger
}

// NewBandTools wraps a spectral file.
func NewBandTools(file SpectralFile) *BandTools {
	return &BandTools{file: file, log: slog.Default()}
}

// Bands returns the raw band values for the pixels at the given
// line/sample pairs, labeled from the file header.
func (t *BandTools) Bands(lines, samples []int) (*Bands, error) {
	data, err := t.file.Bands(lines, samples)
	if err != nil {
		return nil, fmt.Errorf("failed to read bands: %w", err)
	}
	return NewBands(data, t.file.Header().BandLabels())
}

// Statistics computes per-band summary statistics over the pixels at
// the given line/sample pairs, with noise cleanup applied to
// floating-point data.
func (t *BandTools) Statistics(lines, samples []int) (*BandStatistics, error) {
	bands, err := t.Bands(lines, samples)
	if err != nil {
		return nil, err
	}
	t.log.Debug("computing band statistics",
		"pixels", bands.SampleCount(), "bands", bands.BandCount())
	return NewBandStatistics(bands), nil
}

// StatisticsPlot packages the statistics of the given pixels as line
// series keyed to the header's wavelengths. An empty title uses the
// plot layer's default.
func (t *BandTools) StatisticsPlot(lines, samples []int, title string) (*plot.BandStatisticsPlotData, error) {
	stats, err := t.Statistics(lines, samples)
	if err != nil {
		return nil, err
	}
	return plot.NewBandStatisticsPlotData(stats, t.file.Header().Wavelengths(), title), nil
}

// SpectralPlot returns a single pixel's full spectrum as a line series.
// Noise values are masked to NaN so the spectrum stays aligned with the
// wavelength axis. The title uses 1-based display indices.
func (t *BandTools) SpectralPlot(line, sample int) (*plot.LinePlotData, error) {
	data, err := t.file.Bands([]int{line}, []int{sample})
	if err != nil {
		return nil, fmt.Errorf("failed to read spectrum: %w", err)
	}
	spectrum := maskNoise(data.Row(0), data.Type())

	return &plot.LinePlotData{PlotData: plot.PlotData{
		XData:     t.file.Header().Wavelengths(),
		YData:     spectrum,
		XLabel:    "Wavelength",
		YLabel:    "Brightness",
		Title:     fmt.Sprintf("Spectra S-%d, L-%d", sample+1, line+1),
		Color:     plot.Blue,
		LineStyle: plot.LineSolid,
	}}, nil
}
