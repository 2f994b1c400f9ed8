// Package region converts user-drawn regions of interest from display
// coordinates back to native pixel coordinates and, when geo-referencing
// metadata is present, to projected map coordinates.
//
// A display runs at a zoom factor relative to the native image, so a
// drawn point inverts through pixel = floor(display/zoom). Projected
// coordinates follow the ENVI map-info convention: a 1-based reference
// pixel anchored at a zero coordinate, with a fixed ground size per
// pixel. Rasters are assumed north-up; map-info rotation is carried but
// not applied.
//
// Regions iterate through an internal cursor: Reset positions it before
// the first point, Next advances it, and the point accessors read the
// current position. Exporter walks the same cursor to produce the flat
// text export format.
package region
