// Package plot renders embedded trees: a terminal scatter plot drawn on a
// tcell.Screen and a CSV writer for external plotting tools.
//
// Terminal layout:
//
//	row 0      optional title
//	rows 1..   plot area; y grows upwards, edges drawn as dotted lines,
//	           nodes drawn over edges:
//	             '@' root
//	             'o' internal node
//	             '*' leaf
//
// With WithDisk the view is fixed to the unit square and the boundary of the
// Poincaré disk is traced; otherwise the view is the padded bounding box of
// the points.
//
// CSV layout (one row per node, root parent is -1):
//
//	node,parent,x,y
//	0,-1,0.12,-0.03
//	1,0,0.98,0.41
package plot
