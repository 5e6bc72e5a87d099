package advanced

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeLine_Identity(t *testing.T) {
	samples := Sample1D(func(x float64) float64 { return x }, -1, 1, 3)
	buf := NormalizeLine(samples, -1, 1, DegenerateFail)
	assert.Equal(t, []Vertex{{-1, -1, 0}, {0, 0, 0}, {1, 1, 0}}, buf.Vertices())
}

func TestNormalizeLine_ObservedRange(t *testing.T) {
	f := func(x float64) float64 { return x*x*x - 4*x + 7 }
	samples := Sample1D(f, -3, 5, 201)
	buf := NormalizeLine(samples, -3, 5, DegenerateFail)

	lo, hi := Extrema(samples, 1)
	for i, s := range samples {
		v := buf.Vertex(i)
		assert.GreaterOrEqual(t, v.X, -1.0)
		assert.LessOrEqual(t, v.X, 1.0)
		assert.GreaterOrEqual(t, v.Y, -1.0)
		assert.LessOrEqual(t, v.Y, 1.0)
		assert.Zero(t, v.Z)
		if s.Value == lo {
			assert.Equal(t, -1.0, v.Y)
		}
		if s.Value == hi {
			assert.InDelta(t, 1.0, v.Y, 1e-12)
		}
	}
	assert.Equal(t, -1.0, buf.Vertex(0).X)
	assert.Equal(t, 1.0, buf.Vertex(200).X)
}

func TestNormalizeLine_UnsymmetricDomain(t *testing.T) {
	samples := Sample1D(math.Exp, 0.1, 0.7, 4)
	buf := NormalizeLine(samples, 0.1, 0.7, DegenerateFail)
	xs := make([]float64, buf.Len())
	for i, v := range buf.Vertices() {
		xs[i] = v.X
	}
	want := []float64{-1, -1.0 / 3, 1.0 / 3, 1}
	if diff := cmp.Diff(want, xs, cmpopts.EquateApprox(0, 1e-12)); diff != "" {
		t.Errorf("normalized x mismatch (-want +got):\n%s", diff)
	}
}

func TestNormalizeLine_Degenerate(t *testing.T) {
	constant := func(float64) float64 { return 5 }
	samples := Sample1D(constant, -4, 4, 9)

	t.Run("fail", func(t *testing.T) {
		err := catchBuildError(func() { NormalizeLine(samples, -4, 4, DegenerateFail) })
		assert.True(t, errors.Is(err, ErrDegenerateRange))
	})

	t.Run("clamp", func(t *testing.T) {
		var buf *Buffer
		require.NotPanics(t, func() { buf = NormalizeLine(samples, -4, 4, DegenerateClamp) })
		for _, v := range buf.Vertices() {
			assert.Zero(t, v.Y)
			assert.False(t, math.IsNaN(v.X))
		}
	})
}

func TestNormalizeLine_NonFinite(t *testing.T) {
	samples := []Sample{{X: 0, Value: 1}, {X: 1, Value: math.NaN()}, {X: 2, Value: 3}}
	err := catchBuildError(func() { NormalizeLine(samples, 0, 2, DegenerateClamp) })
	assert.True(t, errors.Is(err, ErrNonFiniteSample))

	samples[1].Value = math.Inf(-1)
	err = catchBuildError(func() { NormalizeLine(samples, 0, 2, DegenerateClamp) })
	assert.True(t, errors.Is(err, ErrNonFiniteSample))
}

func TestExtrema(t *testing.T) {
	samples := Sample1D(math.Sin, 0, 10, 1000)
	lo, hi := Extrema(samples, 1)
	for _, workers := range []int{0, 2, 3, 8, 2000} {
		plo, phi := Extrema(samples, workers)
		assert.Equal(t, lo, plo, "workers=%d", workers)
		assert.Equal(t, hi, phi, "workers=%d", workers)
	}
	assert.InDelta(t, -1, lo, 1e-4)
	assert.InDelta(t, 1, hi, 1e-4)
}

func TestPassThrough(t *testing.T) {
	samples := Sample2D(func(x, y float64) float64 { return x * y }, -1, 1, -1, 1, 3)
	buf := PassThrough(samples, Surface)
	require.Equal(t, 9, buf.Len())
	assert.Equal(t, Vertex{-1, -1, 1}, buf.Vertex(0))
	assert.Equal(t, Vertex{-1, 1, -1}, buf.Vertex(2))
	assert.Equal(t, Vertex{1, 1, 1}, buf.Vertex(8))

	err := catchBuildError(func() { PassThrough(samples, Line) })
	assert.True(t, errors.Is(err, ErrUnsupportedMode))
}
