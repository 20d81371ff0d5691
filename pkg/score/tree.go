package score

// NodeID is a handle to a node inside a Tree.
type NodeID int32

// NoNode is the parent handle of the root.
const NoNode NodeID = -1

type node struct {
	kind     Kind
	parent   NodeID
	children []NodeID
	pos      Position
	elem     Element
}

// Tree is the arena that owns every node of a score. Node 0 is the root.
// A Tree returned by Builder.Build is read-only.
type Tree struct {
	nodes  []node
	frozen bool
}

// Root returns the handle of the Score node.
func (t *Tree) Root() NodeID {
	return 0
}

// Len returns the number of nodes.
func (t *Tree) Len() int {
	return len(t.nodes)
}

// Has reports whether id names a node of t.
func (t *Tree) Has(id NodeID) bool {
	return id >= 0 && int(id) < len(t.nodes)
}

// Kind returns the kind of a node.
func (t *Tree) Kind(id NodeID) Kind {
	return t.nodes[id].kind
}

// Parent returns the parent handle, or NoNode for the root.
func (t *Tree) Parent(id NodeID) NodeID {
	return t.nodes[id].parent
}

// Children returns the ordered child handles. The slice must not be modified.
func (t *Tree) Children(id NodeID) []NodeID {
	return t.nodes[id].children
}

// Pos returns the input position of a node.
func (t *Tree) Pos(id NodeID) Position {
	return t.nodes[id].pos
}

// Element returns the payload of a node.
func (t *Tree) Element(id NodeID) Element {
	return t.nodes[id].elem
}

// ChildrenOf returns the children of id that have the given kind.
func (t *Tree) ChildrenOf(id NodeID, kind Kind) []NodeID {
	var out []NodeID
	for _, c := range t.nodes[id].children {
		if t.nodes[c].kind == kind {
			out = append(out, c)
		}
	}
	return out
}

// CountOf returns how many children of id have the given kind.
func (t *Tree) CountOf(id NodeID, kind Kind) int {
	n := 0
	for _, c := range t.nodes[id].children {
		if t.nodes[c].kind == kind {
			n++
		}
	}
	return n
}

// Ancestor returns the closest ancestor of id with the given kind,
// or NoNode.
func (t *Tree) Ancestor(id NodeID, kind Kind) NodeID {
	for p := t.nodes[id].parent; p != NoNode; p = t.nodes[p].parent {
		if t.nodes[p].kind == kind {
			return p
		}
	}
	return NoNode
}

// IndexOf returns the position of id among its parent's children, or -1.
func (t *Tree) IndexOf(id NodeID) int {
	p := t.nodes[id].parent
	if p == NoNode {
		return -1
	}
	for i, c := range t.nodes[p].children {
		if c == id {
			return i
		}
	}
	return -1
}

// As returns the payload of id converted to T.
func As[T Element](t *Tree, id NodeID) (T, bool) {
	e, ok := t.nodes[id].elem.(T)
	return e, ok
}

// Stats counts the nodes of each kind.
func (t *Tree) Stats() map[Kind]int {
	counts := make(map[Kind]int)
	for i := range t.nodes {
		counts[t.nodes[i].kind]++
	}
	return counts
}
