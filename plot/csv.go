// SPDX-License-Identifier: MIT
// Package: treeembed/plot
//
// csv.go — point export.

package plot

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/treeembed/geom"
)

// CSVHeader is the first row written by WriteCSV.
var CSVHeader = []string{"node", "parent", "x", "y"}

// WriteCSV writes one row per node: index, parent index (-1 for a root)
// and the coordinates in shortest round-trip form.
func WriteCSV(w io.Writer, pts []geom.Point, parents []int) error {
	if err := validate(methodCSV, pts, parents); err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(CSVHeader); err != nil {
		return fmt.Errorf("%s: %w", methodCSV, err)
	}
	for i, p := range pts {
		parent := parents[i]
		if parent < 0 {
			parent = -1
		}
		row := []string{
			strconv.Itoa(i),
			strconv.Itoa(parent),
			strconv.FormatFloat(p.X, 'g', -1, 64),
			strconv.FormatFloat(p.Y, 'g', -1, 64),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("%s: node %d: %w", methodCSV, i, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("%s: %w", methodCSV, err)
	}

	return nil
}
