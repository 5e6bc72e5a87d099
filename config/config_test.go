package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osuushi/slopeplot/advanced"
)

func TestDefault(t *testing.T) {
	run := Default()
	require.NoError(t, run.Validate())
	assert.Equal(t, "tan(x*x)", run.SelectedExpression())

	d := run.AdvancedDomain()
	assert.Equal(t, advanced.Domain{XMin: -10, XMax: 10, Samples: 100, Turns: 2}, d)
}

func TestParse(t *testing.T) {
	run, err := Parse([]byte(`
mode: surface
domain:
  samples: 20
  surface:
    x_min: -0.5
    x_max: 0.5
output:
  dir: out
`))
	require.NoError(t, err)
	assert.Equal(t, "x*y", run.SelectedExpression())
	assert.Equal(t, "out", run.Output.Dir)
	// Untouched fields keep their defaults
	assert.Equal(t, "vertex_raw.txt", run.Output.Raw)

	d := run.AdvancedDomain()
	assert.Equal(t, advanced.Domain{XMin: -0.5, XMax: 0.5, YMin: -1, YMax: 1, Samples: 20, Turns: 2}, d)
}

func TestParse_Spiral(t *testing.T) {
	run, err := Parse([]byte("mode: spiral\n"))
	require.NoError(t, err)
	assert.Equal(t, "", run.SelectedExpression())

	run.Expression = "x"
	assert.Equal(t, "x", run.SelectedExpression())
}

func TestParse_Errors(t *testing.T) {
	for name, input := range map[string]string{
		"unknown key":    "colour: red\n",
		"bad mode":       "mode: cube\n",
		"bad policy":     "degenerate: ignore\n",
		"negative":       "parallel: -2\n",
		"malformed yaml": "mode: [line\n",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(input))
			assert.Error(t, err)
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")
	data, err := Default().Marshal()
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data, 0o644))

	run, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Default(), run)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
