package mat

import (
	"fmt"

	"dasa.cc/rt/eps"
)

// Submatrix returns a with the given row and column removed. Dimension
// must be at least 2.
func (a Matrix) Submatrix(row, col int) Matrix {
	if a.n < 2 {
		panic("mat: dimension 1 has no submatrix")
	}
	if row < 0 || row >= a.n || col < 0 || col >= a.n {
		panic("mat: index out of range")
	}
	out := Zero(a.n - 1)
	i := 0
	for r := 0; r < a.n; r++ {
		if r == row {
			continue
		}
		for c := 0; c < a.n; c++ {
			if c == col {
				continue
			}
			out.m[i] = a.m[r*a.n+c]
			i++
		}
	}
	return out
}

// Minor returns the determinant of the submatrix at the given row and
// column.
func (a Matrix) Minor(row, col int) float64 {
	return a.Submatrix(row, col).Det()
}

// Cofactor returns the minor at the given row and column, negated when
// row+col is odd.
func (a Matrix) Cofactor(row, col int) float64 {
	m := a.Minor(row, col)
	if (row+col)%2 == 1 {
		return -m
	}
	return m
}

// Det returns the determinant of a, expanding along the first row.
func (a Matrix) Det() float64 {
	switch a.n {
	case 1:
		return a.m[0]
	case 2:
		return a.m[0]*a.m[3] - a.m[1]*a.m[2]
	default:
		var det float64
		for c := 0; c < a.n; c++ {
			det += a.m[c] * a.Cofactor(0, c)
		}
		return det
	}
}

// Invertible reports whether a has an inverse.
func (a Matrix) Invertible() bool {
	return !eps.EqAt(a.Det(), 0, eps.Tight)
}

// Inverse returns the inverse of a by the adjugate method, or ErrSingular
// if the determinant is approximately zero.
func (a Matrix) Inverse() (Matrix, error) {
	det := a.Det()
	if eps.EqAt(det, 0, eps.Tight) {
		return Matrix{}, fmt.Errorf("%w: det %v", ErrSingular, det)
	}
	if a.n == 1 {
		return Matrix{1, []float64{1 / det}}, nil
	}
	out := Zero(a.n)
	for r := 0; r < a.n; r++ {
		for c := 0; c < a.n; c++ {
			out.m[c*a.n+r] = a.Cofactor(r, c) / det
		}
	}
	return out, nil
}
