package knuthplass

// nodeID is a handle into an arena of breakpoint nodes.
type nodeID int

// noPrevious marks the sentinel's back-pointer.
const noPrevious nodeID = -1

// activeNode is the optimizer's internal representation of a candidate
// break. Position -1 with previous == noPrevious marks the sentinel.
type activeNode struct {
	position      int
	line          int
	fitnessClass  int
	totalWidth    float64
	totalStretch  float64
	totalShrink   float64
	totalDemerits float64
	ratio         float64
	previous      nodeID
}

// arena is the grow-only backing store for the breakpoint DAG. Indices
// double as stable handles so the active set can reference nodes
// without sharing pointers.
type arena struct {
	nodes []activeNode
}

func newArena() *arena {
	a := &arena{}
	a.nodes = append(a.nodes, activeNode{
		position:     -1,
		line:         0,
		fitnessClass: 1,
		previous:     noPrevious,
	})
	return a
}

func (a *arena) sentinel() nodeID { return 0 }

func (a *arena) alloc(n activeNode) nodeID {
	a.nodes = append(a.nodes, n)
	return nodeID(len(a.nodes) - 1)
}

func (a *arena) at(id nodeID) *activeNode { return &a.nodes[id] }

// Breakpoint is one node of the chain OptimumBreakpoints returns: a
// public, pointer-linked view over the arena's winning path.
type Breakpoint struct {
	// Position is the index into the item stream this breakpoint falls
	// at, after the penalty post-processing adjustment. The sentinel's
	// Position is -1.
	Position int

	// Line is the 1-based number of the line this break ends (0 for
	// the sentinel).
	Line int

	// FitnessClass is the fitness bucket of the line ending here: 0
	// tight, 1 normal, 2 loose, 3 very loose.
	FitnessClass int

	// Ratio is the adjustment ratio of the line ending here.
	Ratio float64

	// TotalDemerits is the cumulative demerits of the best chain
	// ending at this breakpoint.
	TotalDemerits float64

	// Previous is the breakpoint this one extends, or nil for the
	// sentinel.
	Previous *Breakpoint
}

// LineResult pairs the items making up one line with the breakpoint that
// ends it.
type LineResult struct {
	Items      Stream
	Breakpoint *Breakpoint
}
