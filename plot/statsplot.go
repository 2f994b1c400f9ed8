package plot

import "github.com/lucasb-eyer/go-colorful"

// BandStatisticsSource supplies the per-band summary curves the
// statistics plot draws, one scalar per band in band order.
type BandStatisticsSource interface {
	Mean() []float64
	Min() []float64
	Max() []float64
	PlusOneStd() []float64
	MinusOneStd() []float64
}

// BandStatisticsPlotData builds the five line series of a band
// statistics plot, each keyed to wavelength on the x axis.
type BandStatisticsPlotData struct {
	stats       BandStatisticsSource
	wavelengths []float64
	title       string
}

// NewBandStatisticsPlotData pairs statistics with their wavelength axis.
// An empty title defaults to "Band Stats".
func NewBandStatisticsPlotData(stats BandStatisticsSource, wavelengths []float64,
	title string) *BandStatisticsPlotData {
	if title == "" {
		title = "Band Stats"
	}
	return &BandStatisticsPlotData{stats: stats, wavelengths: wavelengths, title: title}
}

// Mean returns the per-band mean series.
func (d *BandStatisticsPlotData) Mean() *LinePlotData {
	return d.series(d.stats.Mean(), Blue, "mean")
}

// Min returns the per-band minimum series.
func (d *BandStatisticsPlotData) Min() *LinePlotData {
	return d.series(d.stats.Min(), Red, "min")
}

// Max returns the per-band maximum series.
func (d *BandStatisticsPlotData) Max() *LinePlotData {
	return d.series(d.stats.Max(), Red, "max")
}

// PlusOneStd returns the mean plus one standard deviation series.
func (d *BandStatisticsPlotData) PlusOneStd() *LinePlotData {
	return d.series(d.stats.PlusOneStd(), Green, "std+")
}

// MinusOneStd returns the mean minus one standard deviation series.
func (d *BandStatisticsPlotData) MinusOneStd() *LinePlotData {
	return d.series(d.stats.MinusOneStd(), Green, "std-")
}

func (d *BandStatisticsPlotData) series(values []float64, color colorful.Color, legend string) *LinePlotData {
	return &LinePlotData{PlotData: PlotData{
		XData:     d.wavelengths,
		YData:     values,
		XLabel:    "Wavelength",
		YLabel:    "Brightness",
		Title:     d.title,
		Color:     color,
		LineStyle: LineSolid,
		Legend:    legend,
	}}
}
