package advanced

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

const headerPrefix = "Number of Points: "

// One of the text files an export produces.
type Artifact int

const (
	VertexListing Artifact = iota
	RawDump
	FunctionData
)

func (a Artifact) String() string {
	switch a {
	case VertexListing:
		return "vertex listing"
	case RawDump:
		return "raw dump"
	case FunctionData:
		return "function data"
	}
	return fmt.Sprintf("Artifact(%d)", int(a))
}

// Destinations for ExportFiles. Empty paths are skipped.
type Paths struct {
	Vertex   string
	Raw      string
	Function string
}

// Human readable listing, one numbered line per vertex, numbering from 1.
func WriteVertexListing(w io.Writer, buf *Buffer) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%s%d\n", headerPrefix, buf.Len())
	for i := 0; i < buf.Len(); i++ {
		v := buf.Vertex(i)
		fmt.Fprintf(bw, "%d:\t x: %.6f\ty: %.6f\tz: %.6f\n", i+1, v.X, v.Y, v.Z)
	}
	return bw.Flush()
}

// Comma separated positions. ReadRawDump reads this back.
func WriteRawDump(w io.Writer, buf *Buffer) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%s%d\n", headerPrefix, buf.Len())
	for i := 0; i < buf.Len(); i++ {
		v := buf.Vertex(i)
		fmt.Fprintf(bw, "%.6f, %.6f, %.6f\n", v.X, v.Y, v.Z)
	}
	return bw.Flush()
}

// Pair each domain value of a line graph with its raw output and the slope of
// the segment that starts there. The last point has no segment of its own, so
// it repeats the slope of the segment that ends there.
func WriteFunctionData(w io.Writer, result *Result) error {
	if result.Mode != Line {
		return errors.Wrapf(ErrUnsupportedMode, "function data is only written for line graphs, not %s", result.Mode)
	}
	segments := Segments(result.Buffer)

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%s%d\n", headerPrefix, len(result.Samples))
	for i, s := range result.Samples {
		slope := segments[min(i, len(segments)-1)].Slope
		fmt.Fprintf(bw, "x: %.6f\ty: %.6f\tSlope: %.6f\n", s.X, s.Value, slope)
	}
	return bw.Flush()
}

// Every artifact that failed during ExportFiles, keyed by artifact.
type ExportError struct {
	Failures map[Artifact]error
}

func (e *ExportError) Error() string {
	artifacts := make([]Artifact, 0, len(e.Failures))
	for a := range e.Failures {
		artifacts = append(artifacts, a)
	}
	sort.Slice(artifacts, func(i, j int) bool { return artifacts[i] < artifacts[j] })

	parts := make([]string, len(artifacts))
	for i, a := range artifacts {
		parts[i] = fmt.Sprintf("%s: %v", a, e.Failures[a])
	}
	return "export failed: " + strings.Join(parts, "; ")
}

// ExportFiles writes each artifact to its own file, truncating it first. The
// files are independent: a file that cannot be written does not stop the
// others, and every failure is reported in a single *ExportError. The result
// itself is never modified.
func ExportFiles(result *Result, paths Paths) error {
	failures := make(map[Artifact]error)
	write := func(a Artifact, path string, fn func(io.Writer) error) {
		if path == "" {
			return
		}
		if err := writeFile(path, fn); err != nil {
			failures[a] = err
			Logger().Debug("export failed", "artifact", a.String(), "path", path, "err", err)
			return
		}
		Logger().Debug("exported", "artifact", a.String(), "path", path)
	}

	write(VertexListing, paths.Vertex, func(w io.Writer) error { return WriteVertexListing(w, result.Buffer) })
	write(RawDump, paths.Raw, func(w io.Writer) error { return WriteRawDump(w, result.Buffer) })
	if result.Mode == Line {
		write(FunctionData, paths.Function, func(w io.Writer) error { return WriteFunctionData(w, result) })
	}

	if len(failures) > 0 {
		return &ExportError{Failures: failures}
	}
	return nil
}

func writeFile(path string, fn func(io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "open")
	}
	defer func() {
		if closeErr := f.Close(); err == nil && closeErr != nil {
			err = errors.Wrap(closeErr, "close")
		}
	}()
	return errors.Wrap(fn(f), "write")
}

// Parse a raw dump written by WriteRawDump back into a buffer, so the segment
// classifications can be derived again from the file alone.
func ReadRawDump(r io.Reader) (*Buffer, error) {
	scanner := bufio.NewScanner(r)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return nil, errors.Wrap(err, "read raw dump")
		}
		return nil, errors.Wrap(ErrMalformedDump, "empty input")
	}
	header := scanner.Text()
	if !strings.HasPrefix(header, headerPrefix) {
		return nil, errors.Wrapf(ErrMalformedDump, "bad header %q", header)
	}
	count, err := strconv.Atoi(strings.TrimSpace(strings.TrimPrefix(header, headerPrefix)))
	if err != nil || count < 2 {
		return nil, errors.Wrapf(ErrMalformedDump, "bad point count in %q", header)
	}

	positions := make([]float64, 0, 3*count)
	line := 1
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		fields := strings.Split(text, ",")
		if len(fields) != 3 {
			return nil, errors.Wrapf(ErrMalformedDump, "line %d: expected 3 values, got %d", line, len(fields))
		}
		for _, field := range fields {
			f, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
			if err != nil {
				return nil, errors.Wrapf(ErrMalformedDump, "line %d: %v", line, err)
			}
			positions = append(positions, f)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "read raw dump")
	}
	if len(positions) != 3*count {
		return nil, errors.Wrapf(ErrMalformedDump, "header says %d points, found %d", count, len(positions)/3)
	}
	buf := &Buffer{count: count, positions: positions}
	return buf, nil
}
