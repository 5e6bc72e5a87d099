// Sample a function into a normalized vertex buffer and color its line strip
// by slope.
//
// A build evaluates a function over a domain, rescales the samples into the
// [-1, 1] display range (line graphs only), and returns a flat position
// buffer. Every segment of the strip is then classified by the sign of its
// difference quotient: non-positive segments are drawn red, positive ones
// green. The buffer can be rendered to PNG or SVG and dumped to text.
//
// This package wraps the advanced package with error returns. Use advanced
// directly for the individual pipeline stages.
package slopeplot

import (
	"image"
	"io"

	"github.com/osuushi/slopeplot/advanced"
	"github.com/osuushi/slopeplot/expression"
)

type (
	Mode                  = advanced.Mode
	Domain                = advanced.Domain
	Expression            = advanced.Expression
	Result                = advanced.Result
	Buffer                = advanced.Buffer
	Vertex                = advanced.Vertex
	Class                 = advanced.Class
	SegmentClassification = advanced.SegmentClassification
	Option                = advanced.Option
	Paths                 = advanced.Paths
	RenderOptions         = advanced.RenderOptions
)

const (
	Line    = advanced.Line
	Surface = advanced.Surface
	Spiral  = advanced.Spiral

	NonPositive = advanced.NonPositive
	Positive    = advanced.Positive
)

// Build the vertex buffer for one mode. Invalid domains, constant line graphs
// (unless clamped) and evaluation failures are returned as errors; no partial
// buffer is ever returned.
func Build(mode Mode, domain Domain, expr Expression, opts ...Option) (result *Result, err error) {
	defer func() {
		recoveredErr := advanced.HandleBuildPanicRecover(recover())
		if recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()
	return advanced.Build(mode, domain, expr, opts...), nil
}

// Like Build, but compiles the expression from a string first.
func BuildString(mode Mode, domain Domain, source string, opts ...Option) (*Result, error) {
	expr, err := expression.ForMode(mode, source)
	if err != nil {
		return nil, err
	}
	return Build(mode, domain, expr, opts...)
}

// Classify every segment of a buffer.
func Classify(buf *Buffer) []SegmentClassification {
	return advanced.Segments(buf)
}

// Write the text dumps. See advanced.ExportFiles for the failure policy.
func Export(result *Result, paths Paths) error {
	return advanced.ExportFiles(result, paths)
}

func Render(buf *Buffer, opts RenderOptions) image.Image {
	return advanced.Render(buf, opts)
}

func ReadRawDump(r io.Reader) (*Buffer, error) {
	return advanced.ReadRawDump(r)
}
