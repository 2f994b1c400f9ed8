package analysis

import (
	"fmt"

	"github.com/jmm688/openspectra/raster"
)

// ImageTools creates images from a spectral file. It is a thin facade:
// band data comes straight from the file reader (as views where the
// reader supports them) and is wrapped with descriptors built from the
// header's band labels.
type ImageTools struct {
	file SpectralFile
}

// NewImageTools wraps a spectral file.
func NewImageTools(file SpectralFile) *ImageTools {
	return &ImageTools{file: file}
}

// GreyscaleImage builds a single-band image from the band at the given
// index.
func (t *ImageTools) GreyscaleImage(band int) (*raster.GreyscaleImage, error) {
	data, err := t.file.RawImage(band)
	if err != nil {
		return nil, fmt.Errorf("failed to read band %d: %w", band, err)
	}
	desc, err := t.descriptor(band)
	if err != nil {
		return nil, err
	}
	return raster.NewGreyscaleImage(data, desc, nil)
}

// RGBImage builds a three-band composite from the bands at the given
// indexes. Each band is read separately so the reader can hand back
// views of its buffer.
func (t *ImageTools) RGBImage(red, green, blue int) (*raster.RGBImage, error) {
	bands := [3]*raster.Matrix{}
	descs := [3]*raster.BandDescriptor{}
	for i, index := range [3]int{red, green, blue} {
		data, err := t.file.RawImage(index)
		if err != nil {
			return nil, fmt.Errorf("failed to read band %d: %w", index, err)
		}
		desc, err := t.descriptor(index)
		if err != nil {
			return nil, err
		}
		bands[i], descs[i] = data, desc
	}
	return raster.NewRGBImage(bands[0], bands[1], bands[2], descs[0], descs[1], descs[2], nil)
}

func (t *ImageTools) descriptor(band int) (*raster.BandDescriptor, error) {
	header := t.file.Header()
	labels := header.BandLabels()
	if band < 0 || band >= len(labels) {
		return nil, fmt.Errorf("band %d out of range, file has %d bands", band, len(labels))
	}

	var ignoreValue *float64
	if v, ok := header.DataIgnoreValue(); ok {
		ignoreValue = &v
	}

	label := labels[band]
	return raster.NewBandDescriptor(t.file.Name(), label.Name, label.Wavelength,
		false, ignoreValue, header.DefaultStretch()), nil
}
