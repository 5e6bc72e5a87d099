package advanced

import (
	"math"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Sample a function of one variable at n evenly spaced points, both endpoints
// included. Panics with a BuildError on an invalid domain.
func Sample1D(f Func1, xMin, xMax float64, n int) []Sample {
	return sample1D(f, xMin, xMax, n, 1)
}

func sample1D(f Func1, xMin, xMax float64, n int, workers int) []Sample {
	checkInterval("x", xMin, xMax)
	checkCount(n)
	if f == nil {
		fatalf(ErrMissingFunction, "line graph needs a function of one variable")
	}

	samples := make([]Sample, n)
	xRange := xMax - xMin
	forEachChunk(n, workers, func(lo, hi int) {
		for i := lo; i < hi; i++ {
			x := gridCoordinate(xMin, xMax, xRange, i, n)
			samples[i] = Sample{X: x, Value: f(x)}
		}
	})
	return samples
}

// Sample a function of two variables on an n×n grid. The outer loop walks x
// and the inner loop walks y, so the result is row-major with one row per x.
func Sample2D(f Func2, xMin, xMax, yMin, yMax float64, n int) []Sample {
	return sample2D(f, xMin, xMax, yMin, yMax, n, 1)
}

func sample2D(f Func2, xMin, xMax, yMin, yMax float64, n int, workers int) []Sample {
	checkInterval("x", xMin, xMax)
	checkInterval("y", yMin, yMax)
	checkCount(n)
	if f == nil {
		fatalf(ErrMissingFunction, "surface needs a function of two variables")
	}

	samples := make([]Sample, n*n)
	xRange := xMax - xMin
	yRange := yMax - yMin
	// Chunk over rows; each row is written by exactly one worker.
	forEachChunk(n, workers, func(lo, hi int) {
		for i := lo; i < hi; i++ {
			x := gridCoordinate(xMin, xMax, xRange, i, n)
			row := samples[i*n : (i+1)*n]
			for j := range row {
				y := gridCoordinate(yMin, yMax, yRange, j, n)
				row[j] = Sample{X: x, Y: y, Value: f(x, y)}
			}
		}
	})
	return samples
}

// The arc parameter covered by one half of the spiral's samples.
func SpiralArc(turns float64) float64 {
	return turns * 2 * math.Pi
}

// Generate the parametric spiral. The step is the arc for the given number of
// turns divided by half the sample count (integer halving), so the curve
// climbs from z = -1 and reaches z = 1 around the last sample. Each sample
// stores t in X; SpiralVertex turns it into a position.
func SampleSpiral(n int, turns float64) []Sample {
	checkCount(n)
	if !(turns > 0) || math.IsInf(turns, 0) {
		fatalf(ErrInvalidDomain, "spiral needs a positive number of turns, got %v", turns)
	}

	rad := SpiralArc(turns)
	dt := rad / float64(n/2)
	samples := make([]Sample, n)
	for i := range samples {
		t := float64(i) * dt
		samples[i] = Sample{X: t, Value: t/rad - 1}
	}
	return samples
}

func SpiralVertex(s Sample) Vertex {
	return Vertex{X: math.Cos(s.X), Y: math.Sin(s.X), Z: s.Value}
}

// Compute the i'th of n evenly spaced coordinates. The last one is pinned to
// max so rounding never leaves the domain.
func gridCoordinate(min, max, span float64, i, n int) float64 {
	if i == n-1 {
		return max
	}
	return min + float64(i)*span/float64(n-1)
}

func checkCount(n int) {
	if n < 2 {
		fatalf(ErrInvalidDomain, "need at least 2 samples to define a segment, got %d", n)
	}
}

func checkInterval(axis string, min, max float64) {
	if math.IsNaN(min) || math.IsNaN(max) || math.IsInf(min, 0) || math.IsInf(max, 0) {
		fatalf(ErrInvalidDomain, "%s bounds must be finite, got [%v, %v]", axis, min, max)
	}
	if min == max {
		fatalf(ErrInvalidDomain, "%s interval is empty: [%v, %v]", axis, min, max)
	}
}

// Run fn over [0, n) split into contiguous chunks, one goroutine per chunk
// when workers > 1. BuildError panics inside a worker are recovered there and
// rethrown on the calling goroutine once every worker is done.
func forEachChunk(n, workers int, fn func(lo, hi int)) {
	if workers <= 1 {
		fn(0, n)
		return
	}

	var g errgroup.Group
	g.SetLimit(workers)
	size := (n + workers - 1) / workers
	for lo := 0; lo < n; lo += size {
		lo, hi := lo, min(lo+size, n)
		g.Go(func() (err error) {
			defer func() {
				if recoveredErr := HandleBuildPanicRecover(recover()); recoveredErr != nil {
					err = recoveredErr
				}
			}()
			fn(lo, hi)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		panic(err)
	}
}

// Default worker count for WithParallel(0).
func defaultWorkers() int {
	return runtime.GOMAXPROCS(0)
}
