package advanced

import "github.com/pkg/errors"

var (
	// ErrInvalidDomain is returned when a domain cannot be sampled: fewer than
	// two samples, an empty interval or non-finite bounds.
	ErrInvalidDomain = errors.New("invalid domain")

	// ErrDegenerateRange is returned when a line graph has a zero-width output
	// range and the policy is DegenerateFail.
	ErrDegenerateRange = errors.New("degenerate output range")

	// ErrNonFiniteSample is returned when the function produced ±Inf or NaN, which
	// would poison the observed range.
	ErrNonFiniteSample = errors.New("non-finite sample")

	ErrEvaluation      = errors.New("evaluation failed")
	ErrInvalidMode     = errors.New("invalid mode")
	ErrMissingFunction = errors.New("missing function for mode")
	ErrUnsupportedMode = errors.New("unsupported mode")

	// ErrMalformedDump is returned when a raw dump or SVG cannot be read back
	// into a buffer.
	ErrMalformedDump = errors.New("malformed dump")
)
