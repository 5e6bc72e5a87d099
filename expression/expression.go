// Package expression compiles expression strings such as "tan(x*x)" or "x*y"
// into functions the sampler can evaluate.
//
// Expressions use the expr language. Besides the variables x (and y for
// surfaces), the environment provides the constants pi and e and the usual
// math functions: sin, cos, tan, asin, acos, atan, sinh, cosh, tanh, exp, log,
// sqrt and pow. Powers can also be written with ** or ^.
package expression

import (
	"math"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/pkg/errors"

	"github.com/osuushi/slopeplot/advanced"
)

var ErrCompile = errors.New("cannot compile expression")

type Program struct {
	Source  string
	vars    []string
	program *vm.Program
}

// Compile an expression of x.
func Compile1(source string) (*Program, error) {
	return compile(source, "x")
}

// Compile an expression of x and y.
func Compile2(source string) (*Program, error) {
	return compile(source, "x", "y")
}

func compile(source string, vars ...string) (*Program, error) {
	source = strings.TrimSpace(source)
	if source == "" {
		return nil, errors.Wrap(ErrCompile, "empty expression")
	}
	program, err := expr.Compile(source, expr.Env(environment(vars, make([]float64, len(vars)))))
	if err != nil {
		return nil, errors.Wrapf(ErrCompile, "%q: %v", source, err)
	}
	return &Program{Source: source, vars: vars, program: program}, nil
}

// Evaluate with one value per variable, in the order x, y.
func (p *Program) Eval(values ...float64) (float64, error) {
	if len(values) != len(p.vars) {
		return 0, errors.Errorf("%q takes %d variables, got %d", p.Source, len(p.vars), len(values))
	}
	out, err := expr.Run(p.program, environment(p.vars, values))
	if err != nil {
		return 0, errors.Wrapf(err, "evaluate %q", p.Source)
	}
	switch v := out.(type) {
	case float64:
		return v, nil
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case float32:
		return float64(v), nil
	}
	return 0, errors.Errorf("%q produced %T, not a number", p.Source, out)
}

// Adapt to the sampler's function type. Evaluation errors abort the build
// through advanced.Throw.
func (p *Program) Func1() advanced.Func1 {
	return func(x float64) float64 {
		v, err := p.Eval(x)
		if err != nil {
			advanced.Throw(err)
		}
		return v
	}
}

func (p *Program) Func2() advanced.Func2 {
	return func(x, y float64) float64 {
		v, err := p.Eval(x, y)
		if err != nil {
			advanced.Throw(err)
		}
		return v
	}
}

// Every evaluation gets its own environment, so programs can be run from
// several goroutines at once.
func environment(vars []string, values []float64) map[string]interface{} {
	env := map[string]interface{}{
		"pi":   math.Pi,
		"e":    math.E,
		"sin":  math.Sin,
		"cos":  math.Cos,
		"tan":  math.Tan,
		"asin": math.Asin,
		"acos": math.Acos,
		"atan": math.Atan,
		"sinh": math.Sinh,
		"cosh": math.Cosh,
		"tanh": math.Tanh,
		"exp":  math.Exp,
		"log":  math.Log,
		"sqrt": math.Sqrt,
		"pow":  math.Pow,
	}
	for i, name := range vars {
		env[name] = values[i]
	}
	return env
}
