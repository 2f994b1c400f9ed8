package region

import (
	"errors"
	"fmt"
	"math"

	"github.com/google/uuid"
)

// ErrInvalidShape indicates a point table that is not N rows of (x, y).
var ErrInvalidShape = errors.New("invalid point table shape")

// ErrMismatchedPointCount indicates the derived x and y pixel sequences
// differ in length. The 2-column input contract makes this unreachable;
// it is checked anyway and should be treated as a defect, not handled.
var ErrMismatchedPointCount = errors.New("number of x points doesn't match number of y points")

// RegionOfInterest is an ordered set of 2D points a user drew on a
// zoomed display image, converted back to native pixel coordinates and,
// when geo-referencing metadata is available, to projected map
// coordinates.
//
// The point set is fixed at construction. Attaching or replacing map
// info recomputes the geo coordinates; nothing else ever changes after
// construction. A region is owned by the operation that created it and
// is not safe for concurrent use.
type RegionOfInterest struct {
	id          string
	displayName string
	imageName   string
	imageHeight int
	imageWidth  int

	xPoints []int16
	yPoints []int16

	mapInfo *MapInfo
	xCoords []float64
	yCoords []float64

	// cursor used when the region is iterated over
	index int
}

// NewRegionOfInterest converts a polygon of display-space points into a
// region. points must be N rows of (x, y) display coordinates; the zoom
// factors invert the display scaling, so pixelX = floor(x/xZoom). Pixel
// coordinates are truncated to int16; callers must keep zoom and image
// bounds such that they fit. displayName may be empty and mapInfo nil.
func NewRegionOfInterest(points [][]float64, xZoom, yZoom float64,
	imageHeight, imageWidth int, imageName, displayName string,
	mapInfo *MapInfo) (*RegionOfInterest, error) {

	for i, p := range points {
		if len(p) != 2 {
			return nil, fmt.Errorf("point %d has %d values, expected (x, y) pairs: %w",
				i, len(p), ErrInvalidShape)
		}
	}

	xPoints := make([]int16, len(points))
	yPoints := make([]int16, len(points))
	for i, p := range points {
		xPoints[i] = int16(math.Floor(p[0] / xZoom))
		yPoints[i] = int16(math.Floor(p[1] / yZoom))
	}

	if len(xPoints) != len(yPoints) {
		return nil, ErrMismatchedPointCount
	}

	r := &RegionOfInterest{
		id:          uuid.NewString(),
		displayName: displayName,
		imageName:   imageName,
		imageHeight: imageHeight,
		imageWidth:  imageWidth,
		xPoints:     xPoints,
		yPoints:     yPoints,
		mapInfo:     mapInfo,
		index:       -1,
	}
	r.calculateCoordinates()
	return r, nil
}

// calculateCoordinates derives projected coordinates from the pixel
// points. Both slices are replaced together so readers never observe a
// partially stale pair. Rotation is not applied (north-up only).
func (r *RegionOfInterest) calculateCoordinates() {
	if r.mapInfo == nil {
		r.xCoords = nil
		r.yCoords = nil
		return
	}
	m := r.mapInfo
	xCoords := make([]float64, len(r.xPoints))
	yCoords := make([]float64, len(r.yPoints))
	for i := range r.xPoints {
		xCoords[i] = (float64(r.xPoints[i])-(m.XReferencePixel-1))*m.XPixelSize + m.XZeroCoordinate
		yCoords[i] = m.YZeroCoordinate - (float64(r.yPoints[i])-(m.YReferencePixel-1))*m.YPixelSize
	}
	r.xCoords = xCoords
	r.yCoords = yCoords
}

// ID returns the region's process-wide unique identifier. It is
// generated at construction and carries no information about the point
// data.
func (r *RegionOfInterest) ID() string { return r.id }

// Len returns the number of points in the region.
func (r *RegionOfInterest) Len() int { return len(r.xPoints) }

// DisplayName returns the user-facing name of the region, if set.
func (r *RegionOfInterest) DisplayName() string { return r.displayName }

// SetDisplayName sets the user-facing name of the region.
func (r *RegionOfInterest) SetDisplayName(name string) { r.displayName = name }

// ImageName returns the name of the source image.
func (r *RegionOfInterest) ImageName() string { return r.imageName }

// ImageHeight returns the source image height in pixels.
func (r *RegionOfInterest) ImageHeight() int { return r.imageHeight }

// ImageWidth returns the source image width in pixels.
func (r *RegionOfInterest) ImageWidth() int { return r.imageWidth }

// XPoints returns the pixel x coordinates of all points as a view.
func (r *RegionOfInterest) XPoints() []int16 { return r.xPoints }

// YPoints returns the pixel y coordinates of all points as a view.
func (r *RegionOfInterest) YPoints() []int16 { return r.yPoints }

// MapInfo returns the region's geo-referencing metadata, or nil.
func (r *RegionOfInterest) MapInfo() *MapInfo { return r.mapInfo }

// SetMapInfo replaces the geo-referencing metadata and recomputes the
// projected coordinates. Passing nil removes them: coordinate accessors
// report unavailable rather than zero. Pixel coordinates are unaffected.
func (r *RegionOfInterest) SetMapInfo(mapInfo *MapInfo) {
	r.mapInfo = mapInfo
	r.calculateCoordinates()
}

// Reset moves the iteration cursor to before the first point. Iterating
// again after Reset visits the same points in the same order.
func (r *RegionOfInterest) Reset() { r.index = -1 }

// Next advances the cursor by one position and reports whether it landed
// on a point. Once it returns false the cursor is exhausted until Reset.
func (r *RegionOfInterest) Next() bool {
	if r.index >= len(r.xPoints)-1 {
		return false
	}
	r.index++
	return true
}

// XPoint returns the pixel x coordinate at the cursor. It must only be
// called while the cursor is on a valid position, i.e. after Next has
// returned true.
func (r *RegionOfInterest) XPoint() int16 { return r.xPoints[r.index] }

// YPoint returns the pixel y coordinate at the cursor. It must only be
// called while the cursor is on a valid position.
func (r *RegionOfInterest) YPoint() int16 { return r.yPoints[r.index] }

// XCoordinate returns the projected x coordinate at the cursor. The
// second return is false when no geo-referencing metadata is attached.
func (r *RegionOfInterest) XCoordinate() (float64, bool) {
	if r.xCoords == nil {
		return 0, false
	}
	return r.xCoords[r.index], true
}

// YCoordinate returns the projected y coordinate at the cursor. The
// second return is false when no geo-referencing metadata is attached.
func (r *RegionOfInterest) YCoordinate() (float64, bool) {
	if r.yCoords == nil {
		return 0, false
	}
	return r.yCoords[r.index], true
}
