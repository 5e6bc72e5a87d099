package slopeplot

import (
	"math"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osuushi/slopeplot/advanced"
)

// Smoke tests. The internals are tested in advanced.
func TestBuild(t *testing.T) {
	result, err := Build(Line, Domain{XMin: -1, XMax: 1, Samples: 3}, Expression{F1: func(x float64) float64 { return x }})
	require.NoError(t, err)
	assert.Equal(t, 3, result.Buffer.Len())

	segments := Classify(result.Buffer)
	require.Len(t, segments, 2)
	assert.Equal(t, Positive, segments[0].Class)
	assert.Equal(t, Positive, segments[1].Class)
}

func TestBuild_Errors(t *testing.T) {
	identity := Expression{F1: func(x float64) float64 { return x }}

	t.Run("too few samples", func(t *testing.T) {
		result, err := Build(Line, Domain{XMin: -1, XMax: 1, Samples: 1}, identity)
		assert.Nil(t, result)
		assert.True(t, errors.Is(err, advanced.ErrInvalidDomain))
	})

	t.Run("empty interval", func(t *testing.T) {
		_, err := Build(Line, Domain{XMin: 2, XMax: 2, Samples: 10}, identity)
		assert.True(t, errors.Is(err, advanced.ErrInvalidDomain))
	})

	t.Run("constant function", func(t *testing.T) {
		_, err := Build(Line, Domain{XMin: -1, XMax: 1, Samples: 10}, Expression{F1: func(float64) float64 { return 5 }})
		assert.True(t, errors.Is(err, advanced.ErrDegenerateRange))
	})

	t.Run("missing function", func(t *testing.T) {
		_, err := Build(Surface, Domain{XMin: -1, XMax: 1, YMin: -1, YMax: 1, Samples: 10}, identity)
		assert.True(t, errors.Is(err, advanced.ErrMissingFunction))
	})

	t.Run("infinite sample", func(t *testing.T) {
		_, err := Build(Line, Domain{XMin: -1, XMax: 1, Samples: 3}, Expression{F1: func(x float64) float64 { return 1 / x }})
		assert.True(t, errors.Is(err, advanced.ErrNonFiniteSample))
	})
}

func TestBuildString(t *testing.T) {
	result, err := BuildString(Line, Domain{XMin: -1, XMax: 1, Samples: 3}, "-x")
	require.NoError(t, err)
	for _, segment := range Classify(result.Buffer) {
		assert.Equal(t, NonPositive, segment.Class)
		assert.InDelta(t, -1, segment.Slope, 1e-12)
	}

	_, err = BuildString(Line, Domain{XMin: -1, XMax: 1, Samples: 3}, "x +")
	assert.Error(t, err)
}

func TestBuildString_Spiral(t *testing.T) {
	result, err := BuildString(Spiral, Domain{Samples: 100, Turns: 2}, "")
	require.NoError(t, err)
	first := result.Buffer.Vertex(0)
	assert.Equal(t, Vertex{X: 1, Y: 0, Z: -1}, first)
	for _, v := range result.Buffer.Vertices() {
		assert.LessOrEqual(t, math.Hypot(v.X, v.Y), 1+1e-12)
	}
}
