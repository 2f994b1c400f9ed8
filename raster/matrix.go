package raster

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// Matrix is a dense 2D array of band values with a native-type tag.
// It is the in-memory shape shared by raw band slices (rows=lines,
// cols=samples) and multi-band pixel tables (rows=pixels, cols=bands).
//
// Accessors that return slices return views of the backing array, not
// copies, so large image buffers are never duplicated by slicing alone.
// Callers must treat views as read-only.
type Matrix struct {
	values []float64 // row-major
	rows   int
	cols   int
	dtype  DataType
}

// NewMatrix wraps values (row-major, rows*cols long) in a Matrix.
// The values slice is retained, not copied.
func NewMatrix(values []float64, rows, cols int, dtype DataType) (*Matrix, error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("invalid matrix shape (%d, %d)", rows, cols)
	}
	if len(values) != rows*cols {
		return nil, fmt.Errorf("matrix shape (%d, %d) requires %d values, got %d",
			rows, cols, rows*cols, len(values))
	}
	return &Matrix{values: values, rows: rows, cols: cols, dtype: dtype}, nil
}

// Rows returns the number of rows.
func (m *Matrix) Rows() int { return m.rows }

// Cols returns the number of columns.
func (m *Matrix) Cols() int { return m.cols }

// Type returns the native pixel type of the data.
func (m *Matrix) Type() DataType { return m.dtype }

// At returns the value at row r, column c.
func (m *Matrix) At(r, c int) float64 {
	return m.values[r*m.cols+c]
}

// Row returns row r as a view of the backing array.
func (m *Matrix) Row(r int) []float64 {
	return m.values[r*m.cols : (r+1)*m.cols]
}

// Col returns column c. Column elements are not contiguous, so this is
// the one accessor that must copy.
func (m *Matrix) Col(c int) []float64 {
	out := make([]float64, m.rows)
	for r := 0; r < m.rows; r++ {
		out[r] = m.values[r*m.cols+c]
	}
	return out
}

// Values returns the full row-major backing array as a view.
func (m *Matrix) Values() []float64 { return m.values }

// Min returns the smallest value in the matrix.
func (m *Matrix) Min() float64 { return floats.Min(m.values) }

// Max returns the largest value in the matrix.
func (m *Matrix) Max() float64 { return floats.Max(m.values) }
