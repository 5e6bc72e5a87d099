package advanced

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/JoshVarga/svgparser"
	"github.com/pkg/errors"
)

// Write the line strip as an SVG, one <line> per segment stroked with the
// color of its class. The view box is the [-1, 1] square, flipped so y points
// up. ReadSVG reads the positions back.
func WriteSVG(w io.Writer, buf *Buffer) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="-1 -1 2 2" width="800" height="800">`)
	fmt.Fprintln(bw, `<rect x="-1" y="-1" width="2" height="2" fill="black"/>`)
	fmt.Fprintln(bw, `<g transform="scale(1,-1)" stroke-width="0.005" stroke-linecap="round">`)
	for _, segment := range Segments(buf) {
		p1, p2 := buf.Vertex(segment.Index), buf.Vertex(segment.Index+1)
		c := segment.Class.Color()
		fmt.Fprintf(bw, `<line x1="%s" y1="%s" x2="%s" y2="%s" stroke="#%02x%02x%02x" data-slope="%s"/>`+"\n",
			svgFloat(p1.X), svgFloat(p1.Y), svgFloat(p2.X), svgFloat(p2.Y),
			c.R, c.G, c.B, svgFloat(segment.Slope))
	}
	fmt.Fprintln(bw, `</g>`)
	fmt.Fprintln(bw, `</svg>`)
	return bw.Flush()
}

func svgFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// Rebuild the x and y positions of a strip from an SVG written by WriteSVG.
// z is not stored in the SVG and comes back as 0.
func ReadSVG(r io.Reader) (*Buffer, error) {
	root, err := svgparser.Parse(r, false)
	if err != nil {
		return nil, errors.Wrap(err, "parse svg")
	}

	lines := root.FindAll("line")
	if len(lines) == 0 {
		return nil, errors.Wrap(ErrMalformedDump, "no line elements")
	}

	attr := func(el *svgparser.Element, name string) (float64, error) {
		value, ok := el.Attributes[name]
		if !ok {
			return 0, errors.Wrapf(ErrMalformedDump, "line is missing %s", name)
		}
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return 0, errors.Wrapf(ErrMalformedDump, "%s: %v", name, err)
		}
		return f, nil
	}

	positions := make([]float64, 0, 3*(len(lines)+1))
	for i, line := range lines {
		x1, err := attr(line, "x1")
		if err != nil {
			return nil, err
		}
		y1, err := attr(line, "y1")
		if err != nil {
			return nil, err
		}
		positions = append(positions, x1, y1, 0)
		if i == len(lines)-1 {
			x2, err := attr(line, "x2")
			if err != nil {
				return nil, err
			}
			y2, err := attr(line, "y2")
			if err != nil {
				return nil, err
			}
			positions = append(positions, x2, y2, 0)
		}
	}
	return &Buffer{count: len(lines) + 1, positions: positions}, nil
}
