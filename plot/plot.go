package plot

import "github.com/lucasb-eyer/go-colorful"

// Fixed series colors. Plot styling is data here, not rendering: the
// external plotting layer maps these to whatever its backend needs.
var (
	Blue  = mustColor("#0000ff")
	Red   = mustColor("#ff0000")
	Green = mustColor("#008000")
)

// LineSolid is the default line style.
const LineSolid = "-"

func mustColor(hex string) colorful.Color {
	c, err := colorful.Hex(hex)
	if err != nil {
		panic(err)
	}
	return c
}

// PlotData carries one plottable series: axis data plus display styling.
// It has no behavior; the plotting layer consumes it as-is.
type PlotData struct {
	XData     []float64      `json:"x_data"`
	YData     []float64      `json:"y_data"`
	XLabel    string         `json:"x_label,omitempty"`
	YLabel    string         `json:"y_label,omitempty"`
	Title     string         `json:"title,omitempty"`
	Color     colorful.Color `json:"color"`
	LineStyle string         `json:"line_style,omitempty"`
	Legend    string         `json:"legend,omitempty"`
}

// LinePlotData is a series drawn as a line, e.g. a spectrum or a
// per-band statistic keyed to wavelength.
type LinePlotData struct {
	PlotData
}

// HistogramPlotData is the input to a histogram plot: the flattened data
// in YData, the (min, max) data range in XData, the bin count, and the
// optional clip limits to mark on the plot.
type HistogramPlotData struct {
	PlotData
	Bins       int     `json:"bins"`
	LowerLimit float64 `json:"lower_limit,omitempty"`
	UpperLimit float64 `json:"upper_limit,omitempty"`
	HasLimits  bool    `json:"has_limits"`
}
