package score

import "fmt"

// Builder assembles a Tree top-down. Children are appended in document
// order; the Builder refuses kinds that may not appear under their parent.
type Builder struct {
	t *Tree
}

// NewBuilder starts a tree whose root carries s.
func NewBuilder(s Score) *Builder {
	return &Builder{t: &Tree{
		nodes: []node{{kind: KindScore, parent: NoNode, elem: s}},
	}}
}

// Root returns the root handle.
func (b *Builder) Root() NodeID {
	return 0
}

// Add appends e as the last child of parent and returns its handle.
func (b *Builder) Add(parent NodeID, pos Position, e Element) (NodeID, error) {
	if b.t.frozen {
		return NoNode, ErrFrozen
	}
	if e == nil {
		return NoNode, fmt.Errorf("score: nil element under node %d", parent)
	}
	if !b.t.Has(parent) {
		return NoNode, fmt.Errorf("%w: %d", ErrNoNode, parent)
	}
	pk := b.t.nodes[parent].kind
	if !CanContain(pk, e.NodeKind()) {
		return NoNode, fmt.Errorf("%w: %s under %s (line %s)", ErrKindNotAllowed, e.NodeKind(), pk, pos)
	}

	id := NodeID(len(b.t.nodes))
	b.t.nodes = append(b.t.nodes, node{
		kind:   e.NodeKind(),
		parent: parent,
		pos:    pos,
		elem:   e,
	})
	b.t.nodes[parent].children = append(b.t.nodes[parent].children, id)
	return id, nil
}

// Kind returns the kind of a node added so far.
func (b *Builder) Kind(id NodeID) Kind {
	return b.t.nodes[id].kind
}

// Build validates the tree and freezes it. The Builder cannot be used
// to add nodes afterwards.
func (b *Builder) Build() (*Tree, error) {
	if b.t.frozen {
		return nil, ErrFrozen
	}
	if err := Validate(b.t); err != nil {
		return nil, err
	}
	b.t.frozen = true
	return b.t, nil
}
