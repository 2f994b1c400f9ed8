package analysis

import (
	"fmt"

	"github.com/jmm688/openspectra/raster"
	"github.com/jmm688/openspectra/region"
)

// testHeader and testFile are in-memory stand-ins for the external file
// reader, holding a small band-interleaved-by-pixel cube.
type testHeader struct {
	wavelengths []float64
	labels      []raster.BandLabel
	mapInfo     *region.MapInfo
	ignoreValue *float64
	stretch     raster.Stretch
}

func (h *testHeader) Wavelengths() []float64          { return h.wavelengths }
func (h *testHeader) BandLabels() []raster.BandLabel  { return h.labels }
func (h *testHeader) MapInfo() *region.MapInfo        { return h.mapInfo }
func (h *testHeader) DefaultStretch() raster.Stretch  { return h.stretch }
func (h *testHeader) DataIgnoreValue() (float64, bool) {
	if h.ignoreValue == nil {
		return 0, false
	}
	return *h.ignoreValue, true
}

type testFile struct {
	name   string
	header *testHeader
	// cube[line][sample][band]
	cube  [][][]float64
	dtype raster.DataType
}

func (f *testFile) Name() string   { return f.name }
func (f *testFile) Header() Header { return f.header }

func (f *testFile) Bands(lines, samples []int) (*raster.Matrix, error) {
	if len(lines) != len(samples) {
		return nil, fmt.Errorf("have %d lines and %d samples", len(lines), len(samples))
	}
	bandCount := len(f.header.labels)
	values := make([]float64, 0, len(lines)*bandCount)
	for i := range lines {
		values = append(values, f.cube[lines[i]][samples[i]]...)
	}
	return raster.NewMatrix(values, len(lines), bandCount, f.dtype)
}

func (f *testFile) RawImage(band int) (*raster.Matrix, error) {
	if band < 0 || band >= len(f.header.labels) {
		return nil, fmt.Errorf("band %d out of range", band)
	}
	lines := len(f.cube)
	samples := len(f.cube[0])
	values := make([]float64, 0, lines*samples)
	for _, line := range f.cube {
		for _, pixel := range line {
			values = append(values, pixel[band])
		}
	}
	return raster.NewMatrix(values, lines, samples, f.dtype)
}

// newTestFile builds a 2x2 image with the given per-band pixel values:
// bandValues[b] supplies the 4 pixels of band b in line-major order.
func newTestFile(dtype raster.DataType, bandValues ...[]float64) *testFile {
	bandCount := len(bandValues)
	labels := make([]raster.BandLabel, bandCount)
	wavelengths := make([]float64, bandCount)
	for b := range labels {
		labels[b] = raster.BandLabel{
			Name:       fmt.Sprintf("band %d", b+1),
			Wavelength: fmt.Sprintf("0.%d", b+5),
		}
		wavelengths[b] = 0.5 + 0.1*float64(b)
	}

	cube := make([][][]float64, 2)
	for line := 0; line < 2; line++ {
		cube[line] = make([][]float64, 2)
		for sample := 0; sample < 2; sample++ {
			pixel := make([]float64, bandCount)
			for b := range bandValues {
				pixel[b] = bandValues[b][line*2+sample]
			}
			cube[line][sample] = pixel
		}
	}

	return &testFile{
		name:   "test.img",
		header: &testHeader{wavelengths: wavelengths, labels: labels},
		cube:   cube,
		dtype:  dtype,
	}
}

func allPixels() (lines, samples []int) {
	return []int{0, 0, 1, 1}, []int{0, 1, 0, 1}
}
