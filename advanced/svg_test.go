package advanced

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/JoshVarga/svgparser"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteSVG(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, WriteSVG(&out, identityResult().Buffer))

	root, err := svgparser.Parse(bytes.NewReader(out.Bytes()), false)
	require.NoError(t, err)
	lines := root.FindAll("line")
	require.Len(t, lines, 2)
	for _, line := range lines {
		assert.Equal(t, "#00ff00", line.Attributes["stroke"])
		assert.Equal(t, "1", line.Attributes["data-slope"])
	}
}

func TestReadSVG_RoundTrip(t *testing.T) {
	result := Build(Line, Domain{XMin: -2, XMax: 2, Samples: 50}, Expression{F1: func(x float64) float64 { return math.Cos(2 * x) }})
	var out bytes.Buffer
	require.NoError(t, WriteSVG(&out, result.Buffer))

	buf, err := ReadSVG(&out)
	require.NoError(t, err)
	require.Equal(t, result.Buffer.Len(), buf.Len())
	for i := 0; i < buf.Len(); i++ {
		original, reread := result.Buffer.Vertex(i), buf.Vertex(i)
		assert.Equal(t, original.X, reread.X)
		assert.Equal(t, original.Y, reread.Y)
	}

	original := Segments(result.Buffer)
	for i, segment := range Segments(buf) {
		assert.Equal(t, original[i].Class, segment.Class, "segment %d", i)
	}
}

func TestReadSVG_NoLines(t *testing.T) {
	_, err := ReadSVG(strings.NewReader(`<svg xmlns="http://www.w3.org/2000/svg"><rect width="1" height="1"/></svg>`))
	assert.True(t, errors.Is(err, ErrMalformedDump))
}
