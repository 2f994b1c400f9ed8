package raster

import (
	"image"

	"github.com/disintegration/imaging"
)

// ToImage renders the contrast-adjusted band as an 8-bit greyscale image.
func (g *GreyscaleImage) ToImage() *image.Gray {
	data := g.ImageData(BandGrey)
	lines, samples := data.Rows(), data.Cols()

	out := image.NewGray(image.Rect(0, 0, samples, lines))
	values := data.Values()
	for i, v := range values {
		out.Pix[i] = uint8(v)
	}
	return out
}

// ToImage renders the three contrast-adjusted bands as a fully opaque
// RGBA image.
func (im *RGBImage) ToImage() *image.NRGBA {
	red := im.ImageData(BandRed)
	green := im.ImageData(BandGreen)
	blue := im.ImageData(BandBlue)
	lines, samples := red.Rows(), red.Cols()

	out := image.NewNRGBA(image.Rect(0, 0, samples, lines))
	rv, gv, bv := red.Values(), green.Values(), blue.Values()
	for i := range rv {
		out.Pix[i*4+0] = uint8(rv[i])
		out.Pix[i*4+1] = uint8(gv[i])
		out.Pix[i*4+2] = uint8(bv[i])
		out.Pix[i*4+3] = 0xff
	}
	return out
}

// Zoom scales a rendered image by the display zoom factors. It uses
// nearest-neighbour resampling so pixel values survive magnification
// unchanged, keeping the display consistent with the zoom-factor
// inversion used for region-of-interest coordinates.
func Zoom(img image.Image, xZoom, yZoom float64) image.Image {
	width := int(float64(img.Bounds().Dx()) * xZoom)
	height := int(float64(img.Bounds().Dy()) * yZoom)
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	return imaging.Resize(img, width, height, imaging.NearestNeighbor)
}
