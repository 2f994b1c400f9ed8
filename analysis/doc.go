// Package analysis prepares hyperspectral band data for statistics and
// plotting.
//
// The package never reads files and never renders: it consumes the
// narrow SpectralFile/Header interfaces for raw data and header
// metadata, and the Image capability interface for display-adjusted
// data, and produces plot-ready value structures from the plot package.
//
// Floating-point band data passes through a noise cleanup before
// statistics are computed: NaN, infinities and values outside the
// closed range [0, 1] are excluded from every reduction. Reflectance
// data legitimately ranges 0-1, so anything outside is a sensor
// artifact. Integer band data is used as-is.
package analysis
