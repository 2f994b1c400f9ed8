// Package raster holds the pixel data model shared by the analysis layer.
//
// Band values travel as float64 in a Matrix regardless of their native
// file type; the DataType tag carried alongside decides type-dependent
// policy (histogram binning, noise cleanup, stretch percentile rules).
// Matrix accessors return views of the backing array wherever the layout
// allows, so slicing a band out of a large image never duplicates it.
//
// # Coordinate System
//
// All pixel coordinates are 0-based with (0,0) at the top-left corner:
// samples (x) increase rightward, lines (y) increase downward. Display
// conventions that present 1-based coordinates convert at the edge, never
// here.
//
// # Images
//
// GreyscaleImage and RGBImage wrap raw bands with a linear contrast
// stretch and produce 8-bit display data on demand. Both satisfy the
// band-selector capability the histogram tools rely on, so callers never
// have to inspect the concrete image type.
package raster
