// Package mat provides square float64 matrices for 3D transform math.
//
// A Matrix is an immutable value: operations return new values and never
// write through an operand's backing buffer. Dimension is dynamic but in
// practice 2 to 4; determinants expand recursively, which is exact at these
// sizes and not meant for large n.
package mat

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/image/math/f64"

	"dasa.cc/rt/eps"
	"dasa.cc/rt/geom"
)

var (
	// ErrShape reports a value count that does not fit the dimension.
	ErrShape = errors.New("mat: wrong shape")
	// ErrSingular reports a matrix with no inverse.
	ErrSingular = errors.New("mat: singular matrix")
)

// A Matrix is an n by n matrix in row-major order.
type Matrix struct {
	n int
	m []float64
}

func dim(n int) int {
	if n < 1 {
		panic(fmt.Sprintf("mat: dimension %v out of range", n))
	}
	return n
}

// New returns the n by n Matrix of the given values in row-major order. The
// values are copied. Errors wrap ErrShape unless exactly n*n values are
// given for n >= 1.
func New(n int, vals ...float64) (Matrix, error) {
	if n < 1 {
		return Matrix{}, fmt.Errorf("%w: dimension %v", ErrShape, n)
	}
	if len(vals) != n*n {
		return Matrix{}, fmt.Errorf("%w: %v values for dimension %v", ErrShape, len(vals), n)
	}
	m := make([]float64, n*n)
	copy(m, vals)
	return Matrix{n, m}, nil
}

// MustNew is New, panicking on error.
func MustNew(n int, vals ...float64) Matrix {
	a, err := New(n, vals...)
	if err != nil {
		panic(err)
	}
	return a
}

// Zero returns the n by n zero Matrix.
func Zero(n int) Matrix {
	return Matrix{dim(n), make([]float64, n*n)}
}

// Identity returns the n by n identity Matrix.
func Identity(n int) Matrix {
	a := Zero(n)
	for i := 0; i < n; i++ {
		a.m[i*n+i] = 1
	}
	return a
}

// Diagonal returns the Matrix with vals on the main diagonal and zeros
// elsewhere.
func Diagonal(vals ...float64) Matrix {
	a := Zero(len(vals))
	for i, v := range vals {
		a.m[i*a.n+i] = v
	}
	return a
}

// FromFn returns the n by n Matrix with f(row, col) at each index.
func FromFn(n int, f func(row, col int) float64) Matrix {
	a := Zero(n)
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			a.m[r*n+c] = f(r, c)
		}
	}
	return a
}

// Dim returns the dimension of a.
func (a Matrix) Dim() int { return a.n }

// At returns the value at the given row and column.
func (a Matrix) At(row, col int) float64 {
	if row < 0 || row >= a.n || col < 0 || col >= a.n {
		panic("mat: index out of range")
	}
	return a.m[row*a.n+col]
}

// Eq reports whether a and b have the same dimension and approximately
// equal values.
func (a Matrix) Eq(b Matrix) bool { return a.EqAt(b, eps.Standard) }

// EqAt reports whether a and b have the same dimension and values
// approximately equal at the given tier.
func (a Matrix) EqAt(b Matrix, tier eps.Tier) bool {
	if a.n != b.n {
		return false
	}
	for i, v := range a.m {
		if !eps.EqAt(v, b.m[i], tier) {
			return false
		}
	}
	return true
}

func (a Matrix) same(b Matrix) {
	if a.n != b.n {
		panic("mat: dimension mismatch")
	}
}

// Add returns the sum of a and b. Dimensions must match.
func (a Matrix) Add(b Matrix) Matrix {
	a.same(b)
	out := Zero(a.n)
	for i, v := range a.m {
		out.m[i] = v + b.m[i]
	}
	return out
}

// Sub returns the difference of a and b. Dimensions must match.
func (a Matrix) Sub(b Matrix) Matrix {
	a.same(b)
	out := Zero(a.n)
	for i, v := range a.m {
		out.m[i] = v - b.m[i]
	}
	return out
}

// Mul returns the product of a and b. Dimensions must match.
func (a Matrix) Mul(b Matrix) Matrix {
	a.same(b)
	n := a.n
	out := Zero(n)
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			var sum float64
			for k := 0; k < n; k++ {
				sum += a.m[r*n+k] * b.m[k*n+c]
			}
			out.m[r*n+c] = sum
		}
	}
	return out
}

// MulTuple applies a to the homogeneous tuple t. Dimension must be 4.
func (a Matrix) MulTuple(t geom.Tuple4) geom.Tuple4 {
	if a.n != 4 {
		panic("mat: dimension mismatch")
	}
	v := t.Vec4()
	var out f64.Vec4
	for r := 0; r < 4; r++ {
		out[r] = a.m[r*4]*v[0] + a.m[r*4+1]*v[1] + a.m[r*4+2]*v[2] + a.m[r*4+3]*v[3]
	}
	return geom.TupleFromVec4(out)
}

// Transpose returns a with rows and columns swapped.
func (a Matrix) Transpose() Matrix {
	n := a.n
	out := Zero(n)
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			out.m[c*n+r] = a.m[r*n+c]
		}
	}
	return out
}

// Mat4 returns a as a fixed-size 4x4 array, reporting false unless the
// dimension is 4.
func (a Matrix) Mat4() (f64.Mat4, bool) {
	if a.n != 4 {
		return f64.Mat4{}, false
	}
	var out f64.Mat4
	copy(out[:], a.m)
	return out, true
}

// FromMat4 returns the Matrix of a fixed-size 4x4 array.
func FromMat4(m f64.Mat4) Matrix {
	a := Zero(4)
	copy(a.m, m[:])
	return a
}

func (a Matrix) String() string {
	var sb strings.Builder
	for r := 0; r < a.n; r++ {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for c := 0; c < a.n; c++ {
			if c > 0 {
				sb.WriteByte(' ')
			}
			fmt.Fprintf(&sb, "%+.2f", a.m[r*a.n+c])
		}
	}
	return sb.String()
}
