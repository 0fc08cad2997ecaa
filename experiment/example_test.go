package experiment_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/treeembed/descent"
	"github.com/katalvlaran/treeembed/experiment"
)

// ExampleDecode overrides a single key of the hyperbolic preset.
func ExampleDecode() {
	cfg, err := experiment.Decode(strings.NewReader(`{"geometry":"hyperbolic","iterations":5000}`))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(cfg.Geometry, cfg.Points, cfg.Iterations, cfg.LearningRate)
	// Output:
	// hyperbolic 21 5000 0.0001
}

// ExampleReporter shows the report line format.
func ExampleReporter() {
	var sb strings.Builder
	r := experiment.NewReporter(&sb)
	_ = r.Report(descent.Sample{Iteration: 0, Energy: 1234.5})
	_ = r.Report(descent.Sample{Iteration: 10000, Energy: 183.0256})
	fmt.Print(sb.String())
	fmt.Println(r.Lines())
	// Output:
	// 0 1234.500000
	// 10000 183.025600
	// 2
}
