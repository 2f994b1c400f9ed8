package raster

import (
	"testing"
)

func TestGreyscaleImage_ToImage(t *testing.T) {
	band := mustMatrix(t, []float64{0, 5, 10, 15}, 2, 2, TypeUint8)
	img, err := NewGreyscaleImage(band, testDescriptor("b"), nil)
	if err != nil {
		t.Fatalf("NewGreyscaleImage failed: %v", err)
	}
	img.AdjustByValue(0, 16, BandGrey)

	rendered := img.ToImage()
	if rendered.Bounds().Dx() != 2 || rendered.Bounds().Dy() != 2 {
		t.Fatalf("rendered bounds: got %v, want 2x2", rendered.Bounds())
	}
	// Pixel values come straight from the adjusted data.
	data := img.ImageData(BandGrey).Values()
	for i, v := range data {
		if rendered.Pix[i] != uint8(v) {
			t.Errorf("pixel %d: got %d, want %d", i, rendered.Pix[i], uint8(v))
		}
	}
}

func TestRGBImage_ToImage(t *testing.T) {
	mk := func() *Matrix { return mustMatrix(t, []float64{0, 64, 128, 255}, 2, 2, TypeUint8) }
	img, err := NewRGBImage(mk(), mk(), mk(),
		testDescriptor("r"), testDescriptor("g"), testDescriptor("b"), nil)
	if err != nil {
		t.Fatalf("NewRGBImage failed: %v", err)
	}
	img.AdjustByValue(0, 256, BandGrey)

	rendered := img.ToImage()
	if rendered.Bounds().Dx() != 2 || rendered.Bounds().Dy() != 2 {
		t.Fatalf("rendered bounds: got %v, want 2x2", rendered.Bounds())
	}
	for i := 0; i < 4; i++ {
		if a := rendered.Pix[i*4+3]; a != 0xff {
			t.Errorf("pixel %d alpha: got %d, want 255", i, a)
		}
		r, g, b := rendered.Pix[i*4], rendered.Pix[i*4+1], rendered.Pix[i*4+2]
		if r != g || g != b {
			t.Errorf("pixel %d: identical input bands produced (%d, %d, %d)", i, r, g, b)
		}
	}
}

func TestZoom(t *testing.T) {
	band := mustMatrix(t, make([]float64, 16), 4, 4, TypeUint8)
	img, err := NewGreyscaleImage(band, testDescriptor("b"), nil)
	if err != nil {
		t.Fatalf("NewGreyscaleImage failed: %v", err)
	}

	zoomed := Zoom(img.ToImage(), 2, 2)
	if zoomed.Bounds().Dx() != 8 || zoomed.Bounds().Dy() != 8 {
		t.Errorf("zoom 2x: got %dx%d, want 8x8", zoomed.Bounds().Dx(), zoomed.Bounds().Dy())
	}

	shrunk := Zoom(img.ToImage(), 0.1, 0.1)
	if shrunk.Bounds().Dx() < 1 || shrunk.Bounds().Dy() < 1 {
		t.Error("zoom below one pixel produced an empty image")
	}
}
