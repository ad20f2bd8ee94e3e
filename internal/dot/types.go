package dot

// Assignment is one `name = value` pair of a state label. Val is the raw
// label text, quotes and escapes included.
type Assignment struct {
	Var string
	Val string
}

// Node is one state of the graph.
type Node struct {
	// ID is the identifier token exactly as written in the source.
	ID          string
	Label       string
	Assignments []Assignment
	// IsRoot is set on the first node of the file only.
	IsRoot bool
}

// Link is a directed edge between two node ids.
type Link struct {
	From      string
	To        string
	Label     string
	Color     string
	FontColor string
}

// LineKind tells what a classified line turned out to be.
type LineKind int

const (
	KindStructural LineKind = iota
	KindEdge
	KindNode
)

// String returns a human readable name for the kind.
func (k LineKind) String() string {
	switch k {
	case KindEdge:
		return "edge"
	case KindNode:
		return "node"
	default:
		return "structural"
	}
}

// Line is the result of classifying a single line. Exactly one of Link and
// Node is set for edge and node lines respectively.
type Line struct {
	Kind LineKind
	Link *Link
	Node *Node
}
