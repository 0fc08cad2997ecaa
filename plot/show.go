// SPDX-License-Identifier: MIT
// Package: treeembed/plot
//
// show.go — interactive viewer.

package plot

import (
	"github.com/gdamore/tcell/v2"

	"github.com/katalvlaran/treeembed/geom"
)

// Show renders the tree on an initialized screen and blocks until a key is
// pressed, redrawing on resize. The caller owns Init and Fini.
func Show(screen tcell.Screen, pts []geom.Point, parents []int, opts ...Option) error {
	if _, err := Render(screen, pts, parents, opts...); err != nil {
		return err
	}
	screen.Show()

	for {
		switch screen.PollEvent().(type) {
		case nil, *tcell.EventKey:
			return nil
		case *tcell.EventResize:
			screen.Sync()
			if _, err := Render(screen, pts, parents, opts...); err != nil {
				return err
			}
			screen.Show()
		}
	}
}
