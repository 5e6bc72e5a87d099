// Package config loads the YAML description of a build: which graph to draw,
// over what domain, and where the outputs go.
package config

import (
	"bytes"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/osuushi/slopeplot/advanced"
)

type Run struct {
	Mode string `yaml:"mode"`
	// Expression for the selected mode. When empty, the mode's default below
	// is used.
	Expression        string `yaml:"expression,omitempty"`
	LineExpression    string `yaml:"line_expression"`
	SurfaceExpression string `yaml:"surface_expression"`

	Domain     Domain `yaml:"domain"`
	Degenerate string `yaml:"degenerate"`
	// Sampling goroutines; 1 or less samples serially.
	Parallel int `yaml:"parallel"`

	Output Output `yaml:"output"`
	Render Render `yaml:"render"`
}

type Domain struct {
	// Line graph interval.
	XMin float64 `yaml:"x_min"`
	XMax float64 `yaml:"x_max"`
	// Surface grid bounds. Surfaces are not output normalized, so these are
	// normally kept inside [-1, 1].
	Surface Bounds `yaml:"surface"`
	// Samples per axis.
	Samples int     `yaml:"samples"`
	Turns   float64 `yaml:"turns"`
}

type Bounds struct {
	XMin float64 `yaml:"x_min"`
	XMax float64 `yaml:"x_max"`
	YMin float64 `yaml:"y_min"`
	YMax float64 `yaml:"y_max"`
}

type Output struct {
	Dir      string `yaml:"dir"`
	Vertex   string `yaml:"vertex"`
	Raw      string `yaml:"raw"`
	Function string `yaml:"function"`
	PNG      string `yaml:"png"`
	SVG      string `yaml:"svg,omitempty"`
}

type Render struct {
	Width     int     `yaml:"width"`
	Height    int     `yaml:"height"`
	LineWidth float64 `yaml:"line_width"`
	Caption   bool    `yaml:"caption"`
}

// A 100 sample tan(x*x) line graph over [-10, 10], written to the working
// directory. Surfaces default to x*y on [-1, 1]².
func Default() Run {
	return Run{
		Mode:              advanced.Line.String(),
		LineExpression:    "tan(x*x)",
		SurfaceExpression: "x*y",
		Domain: Domain{
			XMin:    -10,
			XMax:    10,
			Surface: Bounds{XMin: -1, XMax: 1, YMin: -1, YMax: 1},
			Samples: 100,
			Turns:   2,
		},
		Degenerate: advanced.DegenerateFail.String(),
		Output: Output{
			Dir:      ".",
			Vertex:   "vertex_data.txt",
			Raw:      "vertex_raw.txt",
			Function: "function_data.txt",
			PNG:      "graph.png",
		},
		Render: Render{Width: 800, Height: 800, LineWidth: 2, Caption: true},
	}
}

// Load a YAML file on top of Default. Unknown keys are an error.
func Load(path string) (Run, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Run{}, errors.Wrap(err, "read config")
	}
	return Parse(data)
}

func Parse(data []byte) (Run, error) {
	run := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&run); err != nil {
		return Run{}, errors.Wrap(err, "parse config")
	}
	if err := run.Validate(); err != nil {
		return Run{}, err
	}
	return run, nil
}

func (r Run) Validate() error {
	if _, err := advanced.ParseMode(r.Mode); err != nil {
		return err
	}
	if _, err := advanced.ParseDegeneratePolicy(r.Degenerate); err != nil {
		return err
	}
	if r.Parallel < 0 {
		return errors.Errorf("parallel must not be negative, got %d", r.Parallel)
	}
	return nil
}

// The expression for the configured mode.
func (r Run) SelectedExpression() string {
	if r.Expression != "" {
		return r.Expression
	}
	mode, _ := advanced.ParseMode(r.Mode)
	switch mode {
	case advanced.Surface:
		return r.SurfaceExpression
	case advanced.Spiral:
		return ""
	}
	return r.LineExpression
}

// The domain descriptor for the configured mode.
func (r Run) AdvancedDomain() advanced.Domain {
	d := advanced.Domain{
		XMin:    r.Domain.XMin,
		XMax:    r.Domain.XMax,
		Samples: r.Domain.Samples,
		Turns:   r.Domain.Turns,
	}
	if mode, _ := advanced.ParseMode(r.Mode); mode == advanced.Surface {
		d.XMin, d.XMax = r.Domain.Surface.XMin, r.Domain.Surface.XMax
		d.YMin, d.YMax = r.Domain.Surface.YMin, r.Domain.Surface.YMax
	}
	return d
}

func (r Run) Marshal() ([]byte, error) {
	return yaml.Marshal(r)
}
