package analysis

import (
	"github.com/jmm688/openspectra/raster"
	"github.com/jmm688/openspectra/region"
)

// Header is the slice of hyperspectral header metadata this layer
// consumes. The file reader that parses headers lives outside this
// module; any type that can answer these questions will do.
type Header interface {
	// Wavelengths returns the band center wavelengths in band order.
	Wavelengths() []float64

	// BandLabels returns (name, wavelength) label pairs in band order.
	BandLabels() []raster.BandLabel

	// MapInfo returns the geo-referencing metadata, or nil when the
	// header carries none.
	MapInfo() *region.MapInfo

	// DataIgnoreValue returns the sentinel value marking pixels to
	// exclude from display, if the header defines one.
	DataIgnoreValue() (float64, bool)

	// DefaultStretch returns the header's default contrast stretch, or
	// nil to use the standard percentage stretch.
	DefaultStretch() raster.Stretch
}

// SpectralFile is the narrow interface to the external file reader. Band
// and pixel selections should return views over the underlying buffer
// where the reader's layout allows it.
type SpectralFile interface {
	// Name returns the file's display name.
	Name() string

	// Header returns the file's header metadata.
	Header() Header

	// Bands returns band values for the pixels at the given line/sample
	// coordinate pairs, as a (len(lines), band count) matrix.
	Bands(lines, samples []int) (*raster.Matrix, error)

	// RawImage returns the full 2D slice of the given band,
	// as a (lines, samples) matrix.
	RawImage(band int) (*raster.Matrix, error)
}
