package mat

import (
	"errors"
	"testing"

	"dasa.cc/rt/eps"
	"dasa.cc/rt/geom"
)

func TestNew(t *testing.T) {
	a := MustNew(4,
		1, 2, 3, 4,
		5.5, 6.5, 7.5, 8.5,
		9, 10, 11, 12,
		13.5, 14.5, 15.5, 16.5,
	)
	for _, tt := range []struct {
		row, col int
		want     float64
	}{
		{0, 0, 1},
		{0, 3, 4},
		{1, 0, 5.5},
		{1, 2, 7.5},
		{2, 2, 11},
		{3, 0, 13.5},
		{3, 2, 15.5},
	} {
		if have := a.At(tt.row, tt.col); !eps.Eq(have, tt.want) {
			t.Errorf("At(%v, %v): have %v, want %v", tt.row, tt.col, have, tt.want)
		}
	}

	b := MustNew(2, -3, 5, 1, -2)
	if b.At(0, 0) != -3 || b.At(0, 1) != 5 || b.At(1, 0) != 1 || b.At(1, 1) != -2 {
		t.Fatalf("have %v", b)
	}

	c := MustNew(3, -3, 5, 0, 1, -2, -7, 0, 1, 1)
	if c.At(0, 0) != -3 || c.At(1, 1) != -2 || c.At(2, 2) != 1 {
		t.Fatalf("have %v", c)
	}
}

func TestNewErr(t *testing.T) {
	if _, err := New(4, 1, 2, 3); !errors.Is(err, ErrShape) {
		t.Errorf("have %v, want ErrShape", err)
	}
	if _, err := New(0); !errors.Is(err, ErrShape) {
		t.Errorf("have %v, want ErrShape", err)
	}
	if _, err := New(-1, 1); !errors.Is(err, ErrShape) {
		t.Errorf("have %v, want ErrShape", err)
	}
}

func TestNewCopies(t *testing.T) {
	vals := []float64{1, 2, 3, 4}
	a := MustNew(2, vals...)
	vals[0] = 99
	if have, want := a.At(0, 0), 1.0; have != want {
		t.Fatalf("have %v, want %v", have, want)
	}
}

func TestEq(t *testing.T) {
	a := MustNew(4,
		1, 2, 3, 4,
		5, 6, 7, 8,
		9, 8, 7, 6,
		5, 4, 3, 2,
	)
	b := MustNew(4,
		1, 2, 3, 4,
		5, 6, 7, 8,
		9, 8, 7, 6,
		5, 4, 3, 2,
	)
	if !a.Eq(b) {
		t.Error("identical matrices not equal")
	}

	c := MustNew(4,
		2, 3, 4, 5,
		6, 7, 8, 9,
		8, 7, 6, 5,
		4, 3, 2, 1,
	)
	if a.Eq(c) {
		t.Error("different matrices equal")
	}

	if a.Eq(Identity(2)) {
		t.Error("different dimensions equal")
	}

	d := a.Add(FromFn(4, func(_, _ int) float64 { return 1e-7 }))
	if !a.Eq(d) {
		t.Error("nearby matrices not equal")
	}
}

func TestAddSub(t *testing.T) {
	a := MustNew(2, 1, 2, 3, 4)
	b := MustNew(2, 10, 20, 30, 40)
	if have, want := a.Add(b), MustNew(2, 11, 22, 33, 44); !have.Eq(want) {
		t.Fatalf("have %v, want %v", have, want)
	}
	if have, want := b.Sub(a), MustNew(2, 9, 18, 27, 36); !have.Eq(want) {
		t.Fatalf("have %v, want %v", have, want)
	}
}

func TestMul(t *testing.T) {
	a := MustNew(4,
		1, 2, 3, 4,
		5, 6, 7, 8,
		9, 8, 7, 6,
		5, 4, 3, 2,
	)
	b := MustNew(4,
		-2, 1, 2, 3,
		3, 2, 1, -1,
		4, 3, 6, 5,
		1, 2, 7, 8,
	)
	want := MustNew(4,
		20, 22, 50, 48,
		44, 54, 114, 108,
		40, 58, 110, 102,
		16, 26, 46, 42,
	)
	if have := a.Mul(b); !have.Eq(want) {
		t.Fatalf("have\n%v\nwant\n%v", have, want)
	}
}

func TestMulIdentity(t *testing.T) {
	a := MustNew(4,
		0, 1, 2, 4,
		1, 2, 4, 8,
		2, 4, 8, 16,
		4, 8, 16, 32,
	)
	if have := a.Mul(Identity(4)); !have.Eq(a) {
		t.Fatalf("have\n%v\nwant\n%v", have, a)
	}
}

func TestMulTuple(t *testing.T) {
	a := MustNew(4,
		1, 2, 3, 4,
		2, 4, 4, 2,
		8, 6, 4, 1,
		0, 0, 0, 1,
	)
	v := geom.Tuple4{X: 1, Y: 2, Z: 3, W: 1}
	if have, want := a.MulTuple(v), (geom.Tuple4{X: 18, Y: 24, Z: 33, W: 1}); !have.Eq(want) {
		t.Fatalf("have %v, want %v", have, want)
	}
	if have := Identity(4).MulTuple(v); !have.Eq(v) {
		t.Fatalf("have %v, want %v", have, v)
	}
}

func TestTranspose(t *testing.T) {
	a := MustNew(4,
		0, 9, 3, 0,
		9, 8, 0, 8,
		1, 8, 5, 3,
		0, 0, 5, 8,
	)
	want := MustNew(4,
		0, 9, 1, 0,
		9, 8, 8, 0,
		3, 0, 5, 5,
		0, 8, 3, 8,
	)
	if have := a.Transpose(); !have.Eq(want) {
		t.Fatalf("have\n%v\nwant\n%v", have, want)
	}
	if have := Identity(4).Transpose(); !have.Eq(Identity(4)) {
		t.Fatalf("have\n%v", have)
	}
}

func TestDiagonal(t *testing.T) {
	a := Diagonal(1, 2, 3)
	if have, want := a.At(1, 1), 2.0; have != want {
		t.Fatalf("have %v, want %v", have, want)
	}
	if have, want := a.At(0, 1), 0.0; have != want {
		t.Fatalf("have %v, want %v", have, want)
	}
	if !Diagonal(1, 1, 1).Eq(Identity(3)) {
		t.Error("unit diagonal not identity")
	}
}

func TestFromFn(t *testing.T) {
	a := FromFn(3, func(row, col int) float64 { return float64(row*3 + col) })
	want := MustNew(3, 0, 1, 2, 3, 4, 5, 6, 7, 8)
	if !a.Eq(want) {
		t.Fatalf("have\n%v\nwant\n%v", a, want)
	}
}

func TestMat4(t *testing.T) {
	a := MustNew(4,
		1, 2, 3, 4,
		5, 6, 7, 8,
		9, 10, 11, 12,
		13, 14, 15, 16,
	)
	m, ok := a.Mat4()
	if !ok {
		t.Fatal("conversion refused")
	}
	if m[0] != 1 || m[5] != 6 || m[15] != 16 {
		t.Fatalf("have %v", m)
	}
	if have := FromMat4(m); !have.Eq(a) {
		t.Fatalf("have\n%v\nwant\n%v", have, a)
	}
	if _, ok := Identity(3).Mat4(); ok {
		t.Error("conversion accepted dimension 3")
	}
}

func TestString(t *testing.T) {
	a := MustNew(2, 1, -2, 0.5, 3)
	if have, want := a.String(), "+1.00 -2.00\n+0.50 +3.00"; have != want {
		t.Fatalf("have %q, want %q", have, want)
	}
}

func TestDimPanic(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("no panic")
		}
	}()
	Identity(2).Mul(Identity(3))
}

var benchMat Matrix

func BenchmarkMul4(b *testing.B) {
	x := MustNew(4,
		1, 2, 3, 4,
		5, 6, 7, 8,
		9, 8, 7, 6,
		5, 4, 3, 2,
	)
	y := MustNew(4,
		-2, 1, 2, 3,
		3, 2, 1, -1,
		4, 3, 6, 5,
		1, 2, 7, 8,
	)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		benchMat = x.Mul(y)
	}
}
