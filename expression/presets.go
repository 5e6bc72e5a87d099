package expression

import (
	"sort"

	"github.com/pkg/errors"

	"github.com/osuushi/slopeplot/advanced"
)

type Preset struct {
	Name   string
	Mode   advanced.Mode
	Source string
}

var presets = map[string]Preset{
	"tan-square": {"tan-square", advanced.Line, "tan(x*x)"},
	"identity":   {"identity", advanced.Line, "x"},
	"negated":    {"negated", advanced.Line, "-x"},
	"constant":   {"constant", advanced.Line, "5"},
	"parabola":   {"parabola", advanced.Line, "x*x"},
	"saddle":     {"saddle", advanced.Surface, "x*y"},
	"ripple":     {"ripple", advanced.Surface, "sin(3*x)*cos(3*y)"},
}

func LookupPreset(name string) (Preset, error) {
	p, ok := presets[name]
	if !ok {
		return Preset{}, errors.Errorf("no preset named %q", name)
	}
	return p, nil
}

// All presets sorted by name.
func Presets() []Preset {
	list := make([]Preset, 0, len(presets))
	for _, p := range presets {
		list = append(list, p)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })
	return list
}

// Compile source for the given mode into an advanced.Expression. The spiral
// has no free function, so source is only kept as a label there.
func ForMode(mode advanced.Mode, source string) (advanced.Expression, error) {
	e := advanced.Expression{Source: source}
	switch mode {
	case advanced.Line:
		p, err := Compile1(source)
		if err != nil {
			return e, err
		}
		e.F1 = p.Func1()
	case advanced.Surface:
		p, err := Compile2(source)
		if err != nil {
			return e, err
		}
		e.F2 = p.Func2()
	case advanced.Spiral:
	default:
		return e, errors.Wrapf(advanced.ErrInvalidMode, "%s", mode)
	}
	return e, nil
}
