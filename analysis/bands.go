package analysis

import (
	"fmt"

	"github.com/jmm688/openspectra/raster"
)

// Bands is an ordered collection of band samples: a (pixels, bands)
// matrix with a parallel set of band labels. Band order and label order
// are positionally aligned; the constructor rejects any input that would
// break that alignment.
type Bands struct {
	data   *raster.Matrix
	labels []raster.BandLabel
}

// NewBands pairs a (pixels, bands) matrix with its band labels. labels
// may be nil when no header metadata is available, but when present its
// length must match the band count.
func NewBands(data *raster.Matrix, labels []raster.BandLabel) (*Bands, error) {
	if labels != nil && len(labels) != data.Cols() {
		return nil, fmt.Errorf("have %d band labels for %d bands", len(labels), data.Cols())
	}
	return &Bands{data: data, labels: labels}, nil
}

// Data returns the (pixels, bands) matrix.
func (b *Bands) Data() *raster.Matrix { return b.data }

// Labels returns the band labels in band order, or nil.
func (b *Bands) Labels() []raster.BandLabel { return b.labels }

// BandCount returns the number of bands.
func (b *Bands) BandCount() int { return b.data.Cols() }

// SampleCount returns the number of sampled pixels per band.
func (b *Bands) SampleCount() int { return b.data.Rows() }

// Band returns the sampled values of band i across all pixels.
func (b *Bands) Band(i int) []float64 { return b.data.Col(i) }
