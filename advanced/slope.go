package advanced

import (
	"fmt"
	"image/color"

	"github.com/logrusorgru/aurora"
)

// The binary coloring decision for a segment.
type Class int

const (
	NonPositive Class = iota
	Positive
)

func (c Class) String() string {
	if c == Positive {
		return "POSITIVE"
	}
	return "NON_POSITIVE"
}

var (
	// The two fragment colors: red for non-positive slopes, green otherwise.
	NonPositiveColor = color.NRGBA{R: 255, A: 255}
	PositiveColor    = color.NRGBA{G: 255, A: 255}
)

func (c Class) Color() color.NRGBA {
	if c == Positive {
		return PositiveColor
	}
	return NonPositiveColor
}

// Name of the class, colored the way it is drawn.
func (c Class) DbgString() string {
	if c == Positive {
		return aurora.Green(c.String()).String()
	}
	return aurora.Red(c.String()).String()
}

type SegmentClassification struct {
	// Index of the first vertex; the segment runs from Index to Index+1.
	Index int
	Slope float64
	Class Class
}

func (s SegmentClassification) String() string {
	return fmt.Sprintf("%d: slope %.6f %s", s.Index, s.Slope, s.Class)
}

// Difference quotient between two vertices. Equal x coordinates give ±Inf or
// NaN, which ClassOf still classifies deterministically.
func Slope(p1, p2 Vertex) float64 {
	return (p2.Y - p1.Y) / (p2.X - p1.X)
}

// NonPositive if and only if slope <= 0 under IEEE comparison. NaN compares
// false, so it falls into Positive along with +Inf; -Inf is NonPositive.
func ClassOf(slope float64) Class {
	if slope <= 0 {
		return NonPositive
	}
	return Positive
}

func Classify(p1, p2 Vertex) SegmentClassification {
	slope := Slope(p1, p2)
	return SegmentClassification{Slope: slope, Class: ClassOf(slope)}
}

// Classify every segment of the strip. Nothing is cached: callers that need
// the table again (the next frame, an export) derive it again from the
// buffer.
func Segments(buf *Buffer) []SegmentClassification {
	segments := make([]SegmentClassification, buf.SegmentCount())
	for i := range segments {
		segments[i] = Classify(buf.Vertex(i), buf.Vertex(i+1))
		segments[i].Index = i
	}
	return segments
}

// Uniforms gives the per-draw-call scalar a renderer uploads for each segment:
// the segment's slope, in single precision. The shader compares it against 0.
func Uniforms(buf *Buffer) []float32 {
	uniforms := make([]float32, buf.SegmentCount())
	for i := range uniforms {
		uniforms[i] = float32(Slope(buf.Vertex(i), buf.Vertex(i+1)))
	}
	return uniforms
}
