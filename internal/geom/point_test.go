package geom

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

const tol = 1e-9

func TestPointArithmetic(t *testing.T) {
	p := Pt(3, 4)
	q := Pt(1, 2)

	assert.Equal(t, Pt(4, 6), p.Add(q))
	assert.Equal(t, Pt(2, 2), p.Sub(q))
	assert.Equal(t, Pt(6, 8), p.Mul(2))
	assert.Equal(t, 11.0, p.Dot(q))
	assert.Equal(t, 5.0, p.Length())
	assert.InDelta(t, math.Sqrt(8), p.Distance(q), tol)
}

func TestNormalize(t *testing.T) {
	n := Pt(3, 4).Normalize()
	assert.InDelta(t, 0.6, n.X, tol)
	assert.InDelta(t, 0.8, n.Y, tol)
	assert.InDelta(t, 1.0, n.Length(), tol)

	// Zero vector stays zero instead of dividing by zero.
	assert.Equal(t, Point{}, Pt(0, 0).Normalize())
}

func TestTranslate(t *testing.T) {
	got := Pt(0, 0).Translate(Pt(10, 0), 3)
	assert.InDelta(t, 3, got.X, tol)
	assert.InDelta(t, 0, got.Y, tol)

	// Direction is normalized, so its magnitude must not matter.
	a := Pt(5, 5).Translate(Pt(0, 2), 7)
	b := Pt(5, 5).Translate(Pt(0, 200), 7)
	assert.InDelta(t, a.X, b.X, tol)
	assert.InDelta(t, a.Y, b.Y, tol)
}

func TestRotate(t *testing.T) {
	got := Pt(1, 0).Rotate(math.Pi / 2)
	assert.InDelta(t, 0, got.X, tol)
	assert.InDelta(t, 1, got.Y, tol)

	got = Pt(1, 0).Rotate(math.Pi)
	assert.InDelta(t, -1, got.X, tol)
	assert.InDelta(t, 0, got.Y, tol)
}

func TestLerp(t *testing.T) {
	p, q := Pt(0, 0), Pt(10, 20)
	assert.Equal(t, p, p.Lerp(q, 0))
	assert.Equal(t, q, p.Lerp(q, 1))
	assert.Equal(t, Pt(5, 10), p.Lerp(q, 0.5))
}

func TestAngle(t *testing.T) {
	assert.InDelta(t, math.Pi/2, Angle(Pt(1, 0), Pt(0, 1)), tol)
	assert.InDelta(t, math.Pi, Angle(Pt(1, 0), Pt(-1, 0)), tol)
	assert.InDelta(t, 0, Angle(Pt(1, 0), Pt(5, 0)), tol)

	// Parallel vectors must not produce NaN from acos of 1+epsilon.
	a := Pt(0.1+0.2, 0.3)
	got := Angle(a, a)
	assert.False(t, math.IsNaN(got))
	assert.InDelta(t, 0, got, 1e-6)

	// Zero-length input is defined as 0 rather than NaN.
	assert.Equal(t, 0.0, Angle(Point{}, Pt(1, 1)))
}
