// SPDX-License-Identifier: MIT
// Package: treeembed/plot
//
// render.go — tcell scatter plot.

package plot

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/katalvlaran/treeembed/geom"
)

// Node glyphs.
const (
	GlyphRoot     = '@'
	GlyphInternal = 'o'
	GlyphLeaf     = '*'
	glyphEdge     = '·'
	glyphDisk     = '.'
)

// circleSteps is the number of samples taken along the disk boundary.
const circleSteps = 720

var (
	styleEdge  = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleDisk  = tcell.StyleDefault.Foreground(tcell.ColorDarkCyan)
	styleTitle = tcell.StyleDefault.Bold(true)

	// depthStyles colours nodes by depth, cycling for deep trees.
	depthStyles = []tcell.Style{
		tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true),
		tcell.StyleDefault.Foreground(tcell.ColorYellow),
		tcell.StyleDefault.Foreground(tcell.ColorGreen),
		tcell.StyleDefault.Foreground(tcell.ColorBlue),
		tcell.StyleDefault.Foreground(tcell.ColorPurple),
	}
)

// Render clears screen and draws the tree given by pts and parents
// (parents[i] < 0 marks a root). It does not call Show.
//
// Errors: ErrNoPoints, ErrSizeMismatch, ErrNonFinite, ErrScreenTooSmall.
func Render(screen tcell.Screen, pts []geom.Point, parents []int, opts ...Option) (Layout, error) {
	if err := validate(methodRender, pts, parents); err != nil {
		return Layout{}, err
	}
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	w, h := screen.Size()
	top := 0
	if cfg.title != "" {
		top = 1
	}
	if w < 2 || h-top < 2 {
		return Layout{}, fmt.Errorf("%s: %dx%d: %w", methodRender, w, h, ErrScreenTooSmall)
	}

	var l Layout
	if cfg.disk {
		l = diskLayout(0, top, w, h-top)
	} else {
		l = fitLayout(pts, 0, top, w, h-top)
	}

	screen.Clear()
	if cfg.title != "" {
		drawText(screen, 0, 0, w, cfg.title, styleTitle)
	}
	if cfg.disk {
		drawCircle(screen, l)
	}

	internal := make([]bool, len(pts))
	for i, p := range parents {
		if p < 0 {
			continue
		}
		internal[p] = true
		c0, r0 := l.Project(pts[p])
		c1, r1 := l.Project(pts[i])
		drawLine(screen, l, c0, r0, c1, r1)
	}

	for i, p := range pts {
		col, row := l.Project(p)
		if !l.Contains(col, row) {
			continue
		}
		glyph := GlyphLeaf
		switch {
		case parents[i] < 0:
			glyph = GlyphRoot
		case internal[i]:
			glyph = GlyphInternal
		}
		style := depthStyles[depth(parents, i)%len(depthStyles)]
		screen.SetContent(col, row, glyph, nil, style)
	}

	return l, nil
}

func validate(method string, pts []geom.Point, parents []int) error {
	if len(pts) == 0 {
		return fmt.Errorf("%s: %w", method, ErrNoPoints)
	}
	if len(parents) != len(pts) {
		return fmt.Errorf("%s: %d parents for %d points: %w", method, len(parents), len(pts), ErrSizeMismatch)
	}
	for i, p := range pts {
		if !p.IsFinite() {
			return fmt.Errorf("%s: node %d at %v: %w", method, i, p, ErrNonFinite)
		}
		if parents[i] >= len(pts) {
			return fmt.Errorf("%s: node %d parent %d: %w", method, i, parents[i], ErrSizeMismatch)
		}
	}

	return nil
}

// depth follows parent links to a root; a cycle stops after len(parents)
// hops.
func depth(parents []int, i int) int {
	d := 0
	for parents[i] >= 0 && d < len(parents) {
		i = parents[i]
		d++
	}

	return d
}

// drawLine plots the Bresenham segment between two cells, skipping the
// endpoints and anything outside the layout.
func drawLine(screen tcell.Screen, l Layout, c0, r0, c1, r1 int) {
	dc, dr := abs(c1-c0), -abs(r1-r0)
	sc, sr := sign(c1-c0), sign(r1-r0)
	e := dc + dr
	c, r := c0, r0
	for c != c1 || r != r1 {
		if (c != c0 || r != r0) && l.Contains(c, r) {
			screen.SetContent(c, r, glyphEdge, nil, styleEdge)
		}
		e2 := 2 * e
		if e2 >= dr {
			e += dr
			c += sc
		}
		if e2 <= dc {
			e += dc
			r += sr
		}
	}
}

func drawCircle(screen tcell.Screen, l Layout) {
	for k := 0; k < circleSteps; k++ {
		a := 2 * math.Pi * float64(k) / circleSteps
		col, row := l.Project(geom.Point{X: math.Cos(a), Y: math.Sin(a)})
		if l.Contains(col, row) {
			screen.SetContent(col, row, glyphDisk, nil, styleDisk)
		}
	}
}

func drawText(screen tcell.Screen, col, row, width int, s string, style tcell.Style) {
	for _, r := range s {
		if col >= width {
			return
		}
		screen.SetContent(col, row, r, nil, style)
		col++
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
