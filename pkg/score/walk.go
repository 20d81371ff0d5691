package score

// Rule is the enter/exit hook pair for one node kind. A nil hook does
// nothing; a Rule with both hooks nil visits children only.
type Rule struct {
	Enter func(v *Visit) error
	Exit  func(v *Visit) error
}

// Rules maps every node kind to its Rule.
type Rules [NumKinds]Rule

// Visit describes the node a hook is called for. The same Visit value is
// reused across calls; hooks must not retain it.
type Visit struct {
	Tree *Tree
	ID   NodeID
	path []NodeID
}

// Kind returns the kind of the visited node.
func (v *Visit) Kind() Kind { return v.Tree.nodes[v.ID].kind }

// Pos returns the input position of the visited node.
func (v *Visit) Pos() Position { return v.Tree.nodes[v.ID].pos }

// Element returns the payload of the visited node.
func (v *Visit) Element() Element { return v.Tree.nodes[v.ID].elem }

// Depth returns the number of open ancestors.
func (v *Visit) Depth() int { return len(v.path) }

// Path returns the handles of the open ancestors, root first.
// The slice must not be retained.
func (v *Visit) Path() []NodeID { return v.path }

// Parent returns the handle of the enclosing node being walked, or NoNode.
func (v *Visit) Parent() NodeID {
	if len(v.path) == 0 {
		return NoNode
	}
	return v.path[len(v.path)-1]
}

// Walk traverses t depth-first in document order. For each node it calls
// the kind's Enter hook, walks the children, then calls the Exit hook.
// It stops at the first hook error, or with a *StructureError when a
// child's uplink does not point back at the node being walked.
func Walk(t *Tree, rules *Rules) error {
	if t.Len() == 0 {
		return &StructureError{Kind: KindScore, Msg: "empty tree"}
	}
	v := &Visit{Tree: t}
	return walk(t, t.Root(), rules, v)
}

func walk(t *Tree, id NodeID, rules *Rules, v *Visit) error {
	n := &t.nodes[id]
	var rule Rule
	if int(n.kind) < NumKinds {
		rule = rules[n.kind]
	}

	v.ID = id
	if rule.Enter != nil {
		if err := rule.Enter(v); err != nil {
			return wrapRuleError(n, err)
		}
	}

	v.path = append(v.path, id)
	for _, c := range n.children {
		if !t.Has(c) {
			return &StructureError{Kind: n.kind, Pos: n.pos, Msg: "child handle out of range"}
		}
		if t.nodes[c].parent != id {
			child := &t.nodes[c]
			return &StructureError{
				Kind: child.kind,
				Pos:  child.pos,
				Msg:  "uplink does not point at owner " + n.kind.String(),
			}
		}
		if err := walk(t, c, rules, v); err != nil {
			return err
		}
	}
	v.path = v.path[:len(v.path)-1]

	v.ID = id
	if rule.Exit != nil {
		if err := rule.Exit(v); err != nil {
			return wrapRuleError(n, err)
		}
	}
	return nil
}

func wrapRuleError(n *node, err error) error {
	switch err.(type) {
	case *StructureError, *RuleError:
		return err
	}
	return &RuleError{Kind: n.kind, Pos: n.pos, Err: err}
}

// Inspect calls fn for id and its descendants in pre-order.
// If fn returns false, the children of that node are skipped.
func Inspect(t *Tree, id NodeID, fn func(id NodeID) bool) {
	if !fn(id) {
		return
	}
	for _, c := range t.nodes[id].children {
		Inspect(t, c, fn)
	}
}
