package advanced

// A flat position buffer: three floats (x, y, z) per vertex, in sample order.
// The vertex count is carried explicitly instead of being inferred from the
// length of the backing slice.
//
// The pipeline owns a buffer while it fills it. Once returned, treat it as an
// immutable snapshot; the accessors hand out copies.
type Buffer struct {
	count     int
	positions []float64
}

func NewBuffer(count int) *Buffer {
	if count < 2 {
		fatalf(ErrInvalidDomain, "a buffer needs at least 2 vertices, got %d", count)
	}
	return &Buffer{count: count, positions: make([]float64, 3*count)}
}

// Wrap a copy of flat positions in a buffer, checking the shape.
func BufferFromPositions(count int, positions []float64) *Buffer {
	if len(positions) != 3*count {
		fatalf(ErrMalformedDump, "expected %d floats for %d vertices, got %d", 3*count, count, len(positions))
	}
	buf := NewBuffer(count)
	copy(buf.positions, positions)
	return buf
}

func (b *Buffer) Len() int {
	return b.count
}

func (b *Buffer) Vertex(i int) Vertex {
	if i < 0 || i >= b.count {
		panic("vertex index out of range")
	}
	p := b.positions[3*i : 3*i+3]
	return Vertex{p[0], p[1], p[2]}
}

func (b *Buffer) set(i int, v Vertex) {
	p := b.positions[3*i : 3*i+3]
	p[0], p[1], p[2] = v.X, v.Y, v.Z
}

func (b *Buffer) Vertices() []Vertex {
	vertices := make([]Vertex, b.count)
	for i := range vertices {
		vertices[i] = b.Vertex(i)
	}
	return vertices
}

// Copy of the flat x, y, z positions.
func (b *Buffer) Positions() []float64 {
	return append([]float64(nil), b.positions...)
}

// Float32s returns the positions in the single precision layout expected by a
// GPU vertex buffer.
func (b *Buffer) Float32s() []float32 {
	out := make([]float32, len(b.positions))
	for i, f := range b.positions {
		out[i] = float32(f)
	}
	return out
}

// Number of line segments in the strip.
func (b *Buffer) SegmentCount() int {
	return b.count - 1
}
