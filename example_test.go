package slopeplot_test

import (
	"fmt"

	"github.com/osuushi/slopeplot"
)

func ExampleBuild() {
	result, err := slopeplot.Build(
		slopeplot.Line,
		slopeplot.Domain{XMin: -1, XMax: 1, Samples: 3},
		slopeplot.Expression{F1: func(x float64) float64 { return -x }},
	)
	if err != nil {
		panic(err)
	}
	for _, v := range result.Buffer.Vertices() {
		fmt.Println(v)
	}
	for _, segment := range slopeplot.Classify(result.Buffer) {
		fmt.Println(segment)
	}
	// Output:
	// (-1.000000, 1.000000, 0.000000)
	// (0.000000, 0.000000, 0.000000)
	// (1.000000, -1.000000, 0.000000)
	// 0: slope -1.000000 NON_POSITIVE
	// 1: slope -1.000000 NON_POSITIVE
}
