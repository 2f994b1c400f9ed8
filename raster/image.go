package raster

import (
	"fmt"
	"strings"

	"github.com/jmm688/openspectra/config"
)

// BandDescriptor identifies a band within its source file and carries the
// per-band display defaults the header supplies for it.
type BandDescriptor struct {
	fileName        string
	bandName        string
	wavelengthLabel string
	badBand         bool
	ignoreValue     *float64
	defaultStretch  Stretch
}

// NewBandDescriptor builds a descriptor. ignoreValue and defaultStretch
// may be nil when the header supplies neither.
func NewBandDescriptor(fileName, bandName, wavelengthLabel string,
	badBand bool, ignoreValue *float64, defaultStretch Stretch) *BandDescriptor {
	return &BandDescriptor{
		fileName:        fileName,
		bandName:        bandName,
		wavelengthLabel: wavelengthLabel,
		badBand:         badBand,
		ignoreValue:     ignoreValue,
		defaultStretch:  defaultStretch,
	}
}

// FileName returns the name of the source file.
func (d *BandDescriptor) FileName() string { return d.fileName }

// BandName returns the band's name from the header.
func (d *BandDescriptor) BandName() string { return d.bandName }

// WavelengthLabel returns the band's wavelength label from the header.
func (d *BandDescriptor) WavelengthLabel() string { return d.wavelengthLabel }

// BandLabel returns "<band> - <wavelength>".
func (d *BandDescriptor) BandLabel() string {
	return d.bandName + " - " + d.wavelengthLabel
}

// Label returns "<file> - <band> - <wavelength>".
func (d *BandDescriptor) Label() string {
	return d.fileName + " - " + d.bandName + " - " + d.wavelengthLabel
}

// IsBadBand reports whether the header flagged this band as bad.
func (d *BandDescriptor) IsBadBand() bool { return d.badBand }

// DataIgnoreValue returns the header's data-ignore value, if any.
func (d *BandDescriptor) DataIgnoreValue() (float64, bool) {
	if d.ignoreValue == nil {
		return 0, false
	}
	return *d.ignoreValue, true
}

// DefaultStretch returns the band's default stretch, or nil.
func (d *BandDescriptor) DefaultStretch() Stretch { return d.defaultStretch }

// GreyscaleImage is a single-band image with an 8-bit display rendering.
// The band argument on its accessors exists only to satisfy the shared
// image contract and is ignored.
type GreyscaleImage struct {
	adj        *bandAdjuster
	descriptor *BandDescriptor
}

// NewGreyscaleImage wraps a raw band slice. A nil props falls back to
// config.Default().
func NewGreyscaleImage(band *Matrix, descriptor *BandDescriptor,
	props *config.Properties) (*GreyscaleImage, error) {
	adj, err := newBandAdjuster(band, descriptor.ignoreValue, descriptor.defaultStretch, props)
	if err != nil {
		return nil, err
	}
	return &GreyscaleImage{adj: adj, descriptor: descriptor}, nil
}

// RequiresBandSelector reports false: greyscale operations never need to
// be told which band to work on.
func (g *GreyscaleImage) RequiresBandSelector() bool { return false }

// RawData returns the raw band values as a view.
func (g *GreyscaleImage) RawData(_ Band) *Matrix { return g.adj.band }

// ImageData returns the contrast-adjusted 8-bit display data,
// recomputing it if the stretch changed since the last call.
func (g *GreyscaleImage) ImageData(_ Band) *Matrix {
	data, err := g.adj.adjustedData()
	if err != nil {
		// adjust can only fail on a shape defect introduced after
		// construction, which the immutable band rules out.
		panic(err)
	}
	return data
}

// Label returns the band's full display label.
func (g *GreyscaleImage) Label(_ Band) string { return g.descriptor.Label() }

// LowCutoff returns the current low clip value.
func (g *GreyscaleImage) LowCutoff(_ Band) float64 { return g.adj.lowCutoff() }

// HighCutoff returns the current high clip value.
func (g *GreyscaleImage) HighCutoff(_ Band) float64 { return g.adj.highCutoff() }

// SetLowCutoff sets the low clip value without recomputing display data.
func (g *GreyscaleImage) SetLowCutoff(limit float64, _ Band) { g.adj.setLowCutoff(limit) }

// SetHighCutoff sets the high clip value without recomputing display data.
func (g *GreyscaleImage) SetHighCutoff(limit float64, _ Band) { g.adj.setHighCutoff(limit) }

// AdjustByPercentage sets both cutoffs from data percentiles.
func (g *GreyscaleImage) AdjustByPercentage(lower, upper float64, _ Band) error {
	return g.adj.adjustByPercentage(lower, upper)
}

// AdjustByValue sets both cutoffs to explicit data values.
func (g *GreyscaleImage) AdjustByValue(lower, upper float64, _ Band) {
	g.adj.adjustByValue(lower, upper)
}

// ResetStretch reapplies the band's default stretch.
func (g *GreyscaleImage) ResetStretch(_ Band) error { return g.adj.resetStretch() }

// IsUpdated reports whether a cutoff changed since the display data was
// last computed.
func (g *GreyscaleImage) IsUpdated(_ Band) bool { return g.adj.isUpdated() }

// ImageShape returns (lines, samples).
func (g *GreyscaleImage) ImageShape() (int, int) {
	return g.adj.band.Rows(), g.adj.band.Cols()
}

// Descriptor returns the band's descriptor.
func (g *GreyscaleImage) Descriptor() *BandDescriptor { return g.descriptor }

// RGBImage is a three-band composite image with per-band contrast
// stretches. Accessors that take a Band require BandRed, BandGreen or
// BandBlue; BandGrey addresses all three bands at once where that makes
// sense (adjustment) and the composite where it doesn't (Label).
type RGBImage struct {
	adjusters   map[Band]*bandAdjuster
	descriptors map[Band]*BandDescriptor
	label       string
}

var rgbBands = []Band{BandRed, BandGreen, BandBlue}

// NewRGBImage wraps three raw band slices, which must share a shape.
// A nil props falls back to config.Default().
func NewRGBImage(red, green, blue *Matrix,
	redDesc, greenDesc, blueDesc *BandDescriptor,
	props *config.Properties) (*RGBImage, error) {
	if red.Rows() != green.Rows() || red.Rows() != blue.Rows() ||
		red.Cols() != green.Cols() || red.Cols() != blue.Cols() {
		return nil, fmt.Errorf("all bands must have the same shape: red (%d, %d), green (%d, %d), blue (%d, %d)",
			red.Rows(), red.Cols(), green.Rows(), green.Cols(), blue.Rows(), blue.Cols())
	}

	bands := map[Band]*Matrix{BandRed: red, BandGreen: green, BandBlue: blue}
	descriptors := map[Band]*BandDescriptor{BandRed: redDesc, BandGreen: greenDesc, BandBlue: blueDesc}

	adjusters := make(map[Band]*bandAdjuster, len(rgbBands))
	for _, b := range rgbBands {
		desc := descriptors[b]
		adj, err := newBandAdjuster(bands[b], desc.ignoreValue, desc.defaultStretch, props)
		if err != nil {
			return nil, fmt.Errorf("%s band: %w", b, err)
		}
		adjusters[b] = adj
	}

	labels := make([]string, 0, len(rgbBands))
	for _, b := range rgbBands {
		labels = append(labels, descriptors[b].BandLabel())
	}

	return &RGBImage{
		adjusters:   adjusters,
		descriptors: descriptors,
		label:       strings.Join(labels, " "),
	}, nil
}

// RequiresBandSelector reports true: data accessors need to be told
// which of the three bands to work on.
func (im *RGBImage) RequiresBandSelector() bool { return true }

// RawData returns the raw values of the given band as a view, or nil for
// BandGrey.
func (im *RGBImage) RawData(band Band) *Matrix {
	adj, ok := im.adjusters[band]
	if !ok {
		return nil
	}
	return adj.band
}

// ImageData returns the contrast-adjusted 8-bit display data of the
// given band, or nil for BandGrey.
func (im *RGBImage) ImageData(band Band) *Matrix {
	adj, ok := im.adjusters[band]
	if !ok {
		return nil
	}
	data, err := adj.adjustedData()
	if err != nil {
		panic(err)
	}
	return data
}

// Label returns the given band's label, or the combined three-band label
// for BandGrey.
func (im *RGBImage) Label(band Band) string {
	if desc, ok := im.descriptors[band]; ok {
		return desc.BandLabel()
	}
	return im.label
}

// LowCutoff returns the given band's low clip value.
func (im *RGBImage) LowCutoff(band Band) float64 { return im.adjusters[band].lowCutoff() }

// HighCutoff returns the given band's high clip value.
func (im *RGBImage) HighCutoff(band Band) float64 { return im.adjusters[band].highCutoff() }

// SetLowCutoff sets the low clip value of the given band, or of all
// three bands for BandGrey.
func (im *RGBImage) SetLowCutoff(limit float64, band Band) {
	for _, adj := range im.selected(band) {
		adj.setLowCutoff(limit)
	}
}

// SetHighCutoff sets the high clip value of the given band, or of all
// three bands for BandGrey.
func (im *RGBImage) SetHighCutoff(limit float64, band Band) {
	for _, adj := range im.selected(band) {
		adj.setHighCutoff(limit)
	}
}

// AdjustByPercentage sets cutoffs from data percentiles for the given
// band, or for all three bands for BandGrey.
func (im *RGBImage) AdjustByPercentage(lower, upper float64, band Band) error {
	for _, adj := range im.selected(band) {
		if err := adj.adjustByPercentage(lower, upper); err != nil {
			return err
		}
	}
	return nil
}

// AdjustByValue sets explicit cutoffs for the given band, or for all
// three bands for BandGrey.
func (im *RGBImage) AdjustByValue(lower, upper float64, band Band) {
	for _, adj := range im.selected(band) {
		adj.adjustByValue(lower, upper)
	}
}

// ResetStretch reapplies the default stretch of the given band, or of
// all three bands for BandGrey.
func (im *RGBImage) ResetStretch(band Band) error {
	for _, adj := range im.selected(band) {
		if err := adj.resetStretch(); err != nil {
			return err
		}
	}
	return nil
}

// IsUpdated reports whether any selected band has a cutoff change that
// display data does not yet reflect.
func (im *RGBImage) IsUpdated(band Band) bool {
	for _, adj := range im.selected(band) {
		if adj.isUpdated() {
			return true
		}
	}
	return false
}

// ImageShape returns (lines, samples) shared by the three bands.
func (im *RGBImage) ImageShape() (int, int) {
	band := im.adjusters[BandRed].band
	return band.Rows(), band.Cols()
}

// Descriptor returns the given band's descriptor, or nil for BandGrey.
func (im *RGBImage) Descriptor(band Band) *BandDescriptor { return im.descriptors[band] }

func (im *RGBImage) selected(band Band) []*bandAdjuster {
	if adj, ok := im.adjusters[band]; ok {
		return []*bandAdjuster{adj}
	}
	all := make([]*bandAdjuster, 0, len(rgbBands))
	for _, b := range rgbBands {
		all = append(all, im.adjusters[b])
	}
	return all
}
