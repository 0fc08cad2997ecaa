package experiment

import (
	"fmt"
	"io"

	"github.com/katalvlaran/treeembed/descent"
)

// Reporter writes one "<iteration> <energy>" line per sample.
type Reporter struct {
	w     io.Writer
	lines int
}

// NewReporter returns a Reporter writing to w.
func NewReporter(w io.Writer) *Reporter {
	return &Reporter{w: w}
}

// Report implements the descent report hook.
func (r *Reporter) Report(s descent.Sample) error {
	if _, err := fmt.Fprintf(r.w, "%d %.6f\n", s.Iteration, s.Energy); err != nil {
		return fmt.Errorf("Report: %w", err)
	}
	r.lines++

	return nil
}

// Lines returns the number of samples written so far.
func (r *Reporter) Lines() int { return r.lines }
