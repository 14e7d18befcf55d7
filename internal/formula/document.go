package formula

// Document is one formula: an immutable ordered sequence of top-level
// nodes. Every edit produces a new Document; unchanged subtrees may be
// shared between versions.
type Document struct {
	nodes []Node
}

// NewDocument creates a Document over the given top-level nodes. The
// slice is not copied; callers hand over ownership.
func NewDocument(nodes ...Node) *Document {
	return &Document{nodes: nodes}
}

// Nodes returns the top-level node sequence. Callers must not modify
// the returned slice.
func (d *Document) Nodes() []Node {
	return d.nodes
}

// Latex serializes the document: each top-level node's serialization
// joined by a single space.
func (d *Document) Latex(mode Mode) string {
	return joinLatex(d.nodes, mode, " ")
}

// Equal reports whether two documents have the same structural
// serialization. Ids do not participate, so a parse of d.Latex(ModeAST)
// is Equal to d even though every node carries a fresh id.
func (d *Document) Equal(other *Document) bool {
	return d.Latex(ModeAST) == other.Latex(ModeAST)
}

// FindNode searches the whole forest depth-first for the node with the
// given id. An unknown id is a normal outcome (a selection can go
// stale after an edit), reported by ok == false.
func (d *Document) FindNode(id NodeID) (Node, bool) {
	for _, n := range d.nodes {
		if found, ok := findIn(n, id); ok {
			return found, true
		}
	}
	return nil, false
}

func findIn(n Node, id NodeID) (Node, bool) {
	if n.NodeID() == id && id != "" {
		return n, true
	}
	for _, c := range n.Children() {
		if found, ok := findIn(c, id); ok {
			return found, true
		}
	}
	return nil, false
}

// Ancestors returns the root-to-parent path for the node with the
// given id, root first. A top-level node has an empty path. ok is
// false if the id is not in the document.
func (d *Document) Ancestors(id NodeID) ([]Node, bool) {
	for _, n := range d.nodes {
		if path, ok := ancestorsIn(n, id, nil); ok {
			return path, true
		}
	}
	return nil, false
}

func ancestorsIn(n Node, id NodeID, path []Node) ([]Node, bool) {
	if n.NodeID() == id && id != "" {
		return path, true
	}
	for _, c := range n.Children() {
		if found, ok := ancestorsIn(c, id, append(path, n)); ok {
			return found, true
		}
	}
	return nil, false
}

// Parent returns the immediate parent of the node with the given id,
// or nil if the node is top-level. ok is false if the id is unknown.
func (d *Document) Parent(id NodeID) (Node, bool) {
	path, ok := d.Ancestors(id)
	if !ok {
		return nil, false
	}
	if len(path) == 0 {
		return nil, true
	}
	return path[len(path)-1], true
}
