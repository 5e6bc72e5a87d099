package advanced

import "math"

// Find the smallest and largest raw output among the samples. With more than
// one worker, each chunk is reduced on its own and the partial results are
// merged afterwards.
func Extrema(samples []Sample, workers int) (lo, hi float64) {
	if workers < 1 {
		workers = 1
	}
	chunks := min(workers, max(len(samples), 1))
	partialLo := make([]float64, chunks)
	partialHi := make([]float64, chunks)
	size := (len(samples) + chunks - 1) / chunks

	forEachChunk(chunks, workers, func(from, to int) {
		for c := from; c < to; c++ {
			partialLo[c], partialHi[c] = math.Inf(1), math.Inf(-1)
			end := min((c+1)*size, len(samples))
			for _, s := range samples[min(c*size, end):end] {
				partialLo[c] = math.Min(partialLo[c], s.Value)
				partialHi[c] = math.Max(partialHi[c], s.Value)
			}
		}
	})

	lo, hi = math.Inf(1), math.Inf(-1)
	for c := range partialLo {
		lo = math.Min(lo, partialLo[c])
		hi = math.Max(hi, partialHi[c])
	}
	return lo, hi
}

// Map line graph samples into [-1, 1] on both axes. The x axis is scaled by
// the domain; the y axis is scaled by the observed output range, so the lowest
// sample lands on -1 and the highest on +1. z is always 0.
func NormalizeLine(samples []Sample, xMin, xMax float64, policy DegeneratePolicy) *Buffer {
	return normalizeLine(samples, xMin, xMax, policy, 1)
}

func normalizeLine(samples []Sample, xMin, xMax float64, policy DegeneratePolicy, workers int) *Buffer {
	checkInterval("x", xMin, xMax)
	buf := NewBuffer(len(samples))

	yMin, yMax := Extrema(samples, workers)
	if math.IsInf(yMin, 0) || math.IsInf(yMax, 0) || math.IsNaN(yMin) || math.IsNaN(yMax) {
		fatalf(ErrNonFiniteSample, "observed output range is [%v, %v]", yMin, yMax)
	}
	yRange := yMax - yMin
	degenerate := yRange == 0
	if degenerate && policy != DegenerateClamp {
		fatalf(ErrDegenerateRange, "every sample evaluates to %v", yMin)
	}

	xRange := xMax - xMin
	xCenter := (xMax + xMin) / 2
	Logger().Debug("normalizing line graph",
		"samples", len(samples), "yMin", yMin, "yMax", yMax, "degenerate", degenerate)

	for i, s := range samples {
		var v Vertex
		// Pin the domain endpoints so they land on exactly -1 and +1.
		switch s.X {
		case xMin:
			v.X = -1
		case xMax:
			v.X = 1
		default:
			v.X = (s.X - xCenter) / (xRange / 2)
		}
		if !degenerate {
			v.Y = 2*((s.Value-yMin)/yRange) - 1
		}
		buf.set(i, v)
	}
	return buf
}

// Copy surface or spiral samples straight into a buffer. These modes are not
// output normalized: the surface domain is expected to already be chosen in
// [-1, 1], and the spiral is unit bounded by construction.
func PassThrough(samples []Sample, mode Mode) *Buffer {
	buf := NewBuffer(len(samples))
	for i, s := range samples {
		switch mode {
		case Surface:
			buf.set(i, Vertex{X: s.X, Y: s.Y, Z: s.Value})
		case Spiral:
			buf.set(i, SpiralVertex(s))
		default:
			fatalf(ErrUnsupportedMode, "%s graphs are output normalized", mode)
		}
	}
	return buf
}
