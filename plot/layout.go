// SPDX-License-Identifier: MIT
// Package: treeembed/plot
//
// layout.go — world-to-cell projection.

package plot

import (
	"math"

	"github.com/katalvlaran/treeembed/geom"
)

// padding is the fraction of the data span added on every side of the
// bounding box.
const padding = 0.05

// Layout maps world coordinates onto a Cols×Rows cell grid whose top-left
// cell is (Left, Top).
type Layout struct {
	Left, Top  int
	Cols, Rows int

	MinX, MaxX float64
	MinY, MaxY float64
}

// fitLayout returns a Layout covering pts inside the given cell rectangle.
func fitLayout(pts []geom.Point, left, top, cols, rows int) Layout {
	l := Layout{Left: left, Top: top, Cols: cols, Rows: rows}
	l.MinX, l.MaxX = pts[0].X, pts[0].X
	l.MinY, l.MaxY = pts[0].Y, pts[0].Y
	for _, p := range pts[1:] {
		l.MinX, l.MaxX = min(l.MinX, p.X), max(l.MaxX, p.X)
		l.MinY, l.MaxY = min(l.MinY, p.Y), max(l.MaxY, p.Y)
	}
	l.MinX, l.MaxX = pad(l.MinX, l.MaxX)
	l.MinY, l.MaxY = pad(l.MinY, l.MaxY)

	return l
}

// diskLayout returns a Layout fixed to [-1, 1]².
func diskLayout(left, top, cols, rows int) Layout {
	return Layout{Left: left, Top: top, Cols: cols, Rows: rows, MinX: -1, MaxX: 1, MinY: -1, MaxY: 1}
}

func pad(lo, hi float64) (float64, float64) {
	span := hi - lo
	if span == 0 {
		return lo - 1, hi + 1
	}

	return lo - padding*span, hi + padding*span
}

// Project returns the cell of p. Points outside the view map outside the
// rectangle; callers clip.
func (l Layout) Project(p geom.Point) (col, row int) {
	fx := (p.X - l.MinX) / (l.MaxX - l.MinX)
	fy := (l.MaxY - p.Y) / (l.MaxY - l.MinY)
	col = l.Left + int(math.Round(fx*float64(l.Cols-1)))
	row = l.Top + int(math.Round(fy*float64(l.Rows-1)))

	return col, row
}

// Contains reports whether the cell lies inside the rectangle.
func (l Layout) Contains(col, row int) bool {
	return col >= l.Left && col < l.Left+l.Cols && row >= l.Top && row < l.Top+l.Rows
}
