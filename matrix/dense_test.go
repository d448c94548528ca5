// Package matrix_test contains unit tests for the Dense implementation
// of the Matrix interface in the matrix package.
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/nntour/matrix"
	"github.com/stretchr/testify/require"
)

// TestNewDenseInvalidDimensions ensures that NewDense rejects non-positive dimensions.
func TestNewDenseInvalidDimensions(t *testing.T) {
	_, err := matrix.NewDense(0, 5)
	require.ErrorIs(t, err, matrix.ErrBadShape)

	_, err = matrix.NewDense(5, 0)
	require.ErrorIs(t, err, matrix.ErrBadShape)
}

// TestRowsCols verifies that Rows() and Cols() return correct dimension values.
func TestRowsCols(t *testing.T) {
	rows, cols := 3, 4
	m, err := matrix.NewDense(rows, cols)
	require.NoError(t, err)

	require.Equal(t, rows, m.Rows())
	require.Equal(t, cols, m.Cols())
}

// TestAtSetOutOfBounds ensures At() and Set() return ErrOutOfRange on invalid access.
func TestAtSetOutOfBounds(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)

	_, err = m.At(-1, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	_, err = m.At(0, 2)
	require.ErrorIs(t, err, matrix.ErrIndexOutOfBounds) // deprecated alias still matches
	require.EqualError(t, err, "Dense.At(0,2): matrix: index out of range")

	err = m.Set(2, 0, 1.23)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	err = m.Set(0, -1, 4.56)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

// TestSetGet validates correct behavior of Set() followed by At() on valid indices.
func TestSetGet(t *testing.T) {
	m, err := matrix.NewDense(2, 3)
	require.NoError(t, err)

	require.NoError(t, m.Set(1, 2, 7.89))

	val, err := m.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, 7.89, val)
}

// TestNilDense checks that a nil *Dense reports ErrNilMatrix instead of panicking.
func TestNilDense(t *testing.T) {
	var m *matrix.Dense

	_, err := m.At(0, 0)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	require.ErrorIs(t, m.Set(0, 0, 1), matrix.ErrNilMatrix)
}

// TestNewDenseFromRows covers the literal-table constructor.
func TestNewDenseFromRows(t *testing.T) {
	cases := []struct {
		name    string
		rows    [][]float64
		wantErr error
	}{
		{name: "Nil", rows: nil, wantErr: matrix.ErrBadShape},
		{name: "EmptyRow", rows: [][]float64{{}}, wantErr: matrix.ErrBadShape},
		{name: "Ragged", rows: [][]float64{{0, 1}, {1}}, wantErr: matrix.ErrBadShape},
		{name: "NaN", rows: [][]float64{{0, math.NaN()}, {1, 0}}, wantErr: matrix.ErrNaN},
		{name: "InfAllowed", rows: [][]float64{{0, math.Inf(1)}, {1, 0}}},
		{name: "Rect", rows: [][]float64{{1, 2, 3}, {4, 5, 6}}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m, err := matrix.NewDenseFromRows(tc.rows)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				require.Nil(t, m)
				return
			}
			require.NoError(t, err)
			require.Equal(t, len(tc.rows), m.Rows())
			require.Equal(t, len(tc.rows[0]), m.Cols())
			require.Equal(t, tc.rows, m.ToRows())
		})
	}
}

// TestNewDenseFromRowsCopies ensures the constructor does not alias its input.
func TestNewDenseFromRowsCopies(t *testing.T) {
	src := [][]float64{{0, 1}, {1, 0}}
	m, err := matrix.NewDenseFromRows(src)
	require.NoError(t, err)

	src[0][1] = 42
	v, err := m.At(0, 1)
	require.NoError(t, err)
	require.Equal(t, 1.0, v)
}

// TestClone verifies that Clone produces an independent deep copy.
func TestClone(t *testing.T) {
	m, err := matrix.NewDenseFromRows([][]float64{{0, 1}, {2, 0}})
	require.NoError(t, err)

	c := m.Clone()
	require.NoError(t, c.Set(0, 1, 9))

	orig, err := m.At(0, 1)
	require.NoError(t, err)
	require.Equal(t, 1.0, orig)

	cloned, err := c.At(0, 1)
	require.NoError(t, err)
	require.Equal(t, 9.0, cloned)
}

// TestString checks the row-per-line debug format.
func TestString(t *testing.T) {
	m, err := matrix.NewDenseFromRows([][]float64{{0, 1.5}, {2, 0}})
	require.NoError(t, err)
	require.Equal(t, "[0, 1.5]\n[2, 0]\n", m.String())
}
