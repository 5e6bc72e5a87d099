package advanced

import (
	"fmt"
	"strings"

	"github.com/osuushi/slopeplot/dbg"
	"github.com/pkg/errors"
)

// Functions that can be sampled. They must be pure: the sampler may call them
// from several goroutines at once and in any order.
type Func1 func(x float64) float64
type Func2 func(x, y float64) float64

// One evaluated point of the source function, before normalization. For line
// graphs only X is meaningful as a domain coordinate; for the spiral X holds
// the curve parameter t.
type Sample struct {
	X     float64
	Y     float64
	Value float64
}

type Vertex struct {
	X, Y, Z float64
}

func (v Vertex) String() string {
	return fmt.Sprintf("(%.6f, %.6f, %.6f)", v.X, v.Y, v.Z)
}

type Mode int

const (
	// A function of one variable, normalized on both axes, z = 0.
	Line Mode = iota
	// A function of two variables sampled on a grid, z = f(x, y), not normalized.
	Surface
	// The parametric spiral, not normalized.
	Spiral
)

var modeNames = []string{"line", "surface", "spiral"}

func (m Mode) String() string {
	if m < 0 || int(m) >= len(modeNames) {
		return fmt.Sprintf("Mode(%d)", int(m))
	}
	return modeNames[m]
}

func ParseMode(s string) (Mode, error) {
	for i, name := range modeNames {
		if strings.EqualFold(s, name) {
			return Mode(i), nil
		}
	}
	return 0, errors.Wrapf(ErrInvalidMode, "%q (want one of %s)", s, strings.Join(modeNames, ", "))
}

// The bounds and resolution of a build. Which fields matter depends on the
// mode: Line uses XMin, XMax and Samples; Surface uses all four bounds and
// Samples per axis; Spiral uses Turns and Samples.
type Domain struct {
	XMin, XMax float64
	YMin, YMax float64
	Samples    int
	// Full revolutions of the spiral over the first half of the samples.
	Turns float64
}

type DegeneratePolicy int

const (
	// Fail the build when a line graph has a constant output.
	DegenerateFail DegeneratePolicy = iota
	// Put every vertex of a constant line graph on y = 0.
	DegenerateClamp
)

func (p DegeneratePolicy) String() string {
	switch p {
	case DegenerateFail:
		return "fail"
	case DegenerateClamp:
		return "clamp"
	}
	return fmt.Sprintf("DegeneratePolicy(%d)", int(p))
}

func ParseDegeneratePolicy(s string) (DegeneratePolicy, error) {
	switch strings.ToLower(s) {
	case "", "fail":
		return DegenerateFail, nil
	case "clamp":
		return DegenerateClamp, nil
	}
	return 0, errors.Errorf("unknown degenerate range policy %q", s)
}

// The function to sample. Source is only used for labels and logs.
type Expression struct {
	Source string
	F1     Func1
	F2     Func2
}

type Result struct {
	Mode       Mode
	Domain     Domain
	Expression string
	Samples    []Sample
	Buffer     *Buffer
}

func (r *Result) String() string {
	return fmt.Sprintf("%s %s { %s, %d vertices }", r.Mode, dbg.Name(r.Buffer), r.Expression, r.Buffer.Len())
}
