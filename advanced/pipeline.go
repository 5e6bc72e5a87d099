package advanced

type buildOptions struct {
	policy  DegeneratePolicy
	workers int
}

type Option func(*buildOptions)

func WithDegeneratePolicy(policy DegeneratePolicy) Option {
	return func(o *buildOptions) { o.policy = policy }
}

// Sample on several goroutines. Zero means one per CPU. The output is
// identical to a serial build.
func WithParallel(workers int) Option {
	return func(o *buildOptions) {
		if workers <= 0 {
			workers = defaultWorkers()
		}
		o.workers = workers
	}
}

// Build runs the whole pipeline for one mode: sample, normalize (line graphs
// only) and fill a fresh buffer. The modes are mutually exclusive and chosen by
// the caller. Panics with a BuildError; see HandleBuildPanicRecover.
func Build(mode Mode, domain Domain, expr Expression, opts ...Option) *Result {
	o := buildOptions{workers: 1}
	for _, opt := range opts {
		opt(&o)
	}

	result := &Result{Mode: mode, Domain: domain, Expression: expr.Source}
	switch mode {
	case Line:
		result.Samples = sample1D(expr.F1, domain.XMin, domain.XMax, domain.Samples, o.workers)
		result.Buffer = normalizeLine(result.Samples, domain.XMin, domain.XMax, o.policy, o.workers)
	case Surface:
		result.Samples = sample2D(expr.F2, domain.XMin, domain.XMax, domain.YMin, domain.YMax, domain.Samples, o.workers)
		result.Buffer = PassThrough(result.Samples, Surface)
	case Spiral:
		result.Samples = SampleSpiral(domain.Samples, domain.Turns)
		result.Buffer = PassThrough(result.Samples, Spiral)
		if result.Expression == "" {
			result.Expression = "spiral"
		}
	default:
		fatalf(ErrInvalidMode, "%s", mode)
	}

	Logger().Debug("built vertex buffer",
		"mode", mode.String(), "expression", result.Expression,
		"samples", len(result.Samples), "vertices", result.Buffer.Len(), "workers", o.workers)
	return result
}
