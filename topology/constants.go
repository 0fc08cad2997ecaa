package topology

// Method tags used as error prefixes.
const (
	methodNew   = "New"
	methodDepth = "Depth"
)

const (
	// DefaultBranching is the number of children per internal node when no
	// WithBranching option is supplied.
	DefaultBranching = 4

	// MinNodes is the smallest tree New accepts: a lone root.
	MinNodes = 1

	// MinBranching is the smallest meaningful branching factor (a path).
	MinBranching = 1

	// noParent marks the root in the parent table.
	noParent = -1
)
