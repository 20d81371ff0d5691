package score

import (
	"errors"
	"fmt"
)

// Validate checks the structural invariants of t and returns every
// violation found, joined.
func Validate(t *Tree) error {
	v := &validator{t: t}
	v.checkLinks()
	if len(v.errs) > 0 {
		// Content checks follow handles and need consistent links.
		return errors.Join(v.errs...)
	}
	for i := range t.nodes {
		id := NodeID(i)
		switch t.nodes[i].kind {
		case KindPart:
			v.checkPart(id)
		case KindStaff:
			v.checkStaff(id)
		case KindVoice:
			v.checkVoice(id)
		case KindRepeat:
			v.checkRepeat(id)
		case KindChord:
			v.checkMembers(id, NoteChordMember)
			if t.CountOf(id, KindNote) == 0 {
				v.fail(id, "chord has no member notes")
			}
		case KindTuplet:
			v.checkMembers(id, NoteTupletMember)
			if tu, ok := As[Tuplet](t, id); ok && (tu.Actual <= 0 || tu.Normal <= 0) {
				v.fail(id, "tuplet ratio %d/%d is not positive", tu.Actual, tu.Normal)
			}
		case KindGraceNotes:
			v.checkMembers(id, NoteGrace)
		case KindMeasure:
			v.checkMeasureNotes(id)
		}
	}
	return errors.Join(v.errs...)
}

type validator struct {
	t    *Tree
	errs []error
}

func (v *validator) fail(id NodeID, format string, args ...any) {
	v.errs = append(v.errs, &StructureError{
		Kind: v.t.nodes[id].kind,
		Pos:  v.t.nodes[id].pos,
		Msg:  fmt.Sprintf(format, args...),
	})
}

// checkLinks verifies that every uplink round-trips to its owner.
func (v *validator) checkLinks() {
	t := v.t
	if len(t.nodes) == 0 || t.nodes[0].kind != KindScore || t.nodes[0].parent != NoNode {
		v.errs = append(v.errs, &StructureError{Kind: KindScore, Msg: "tree has no score root"})
		return
	}
	for i := range t.nodes {
		n := &t.nodes[i]
		id := NodeID(i)
		if n.elem == nil || n.elem.NodeKind() != n.kind {
			v.fail(id, "payload does not match node kind")
		}
		for _, c := range n.children {
			if !t.Has(c) {
				v.fail(id, "child handle %d out of range", c)
				continue
			}
			if t.nodes[c].parent != id {
				v.fail(c, "uplink does not point at owner %s", n.kind)
			}
			if !CanContain(n.kind, t.nodes[c].kind) {
				v.fail(c, "not allowed under %s", n.kind)
			}
		}
		if i == 0 {
			continue
		}
		if !t.Has(n.parent) {
			v.fail(id, "uplink %d out of range", n.parent)
			continue
		}
		if t.IndexOf(id) < 0 {
			v.fail(id, "owner %s does not list this node", t.nodes[n.parent].kind)
		}
	}
}

func (v *validator) checkPart(id NodeID) {
	seenStaff := map[int]bool{}
	seenVoice := map[int]bool{}
	for _, s := range v.t.ChildrenOf(id, KindStaff) {
		st, _ := As[Staff](v.t, s)
		if seenStaff[st.Number] {
			v.fail(s, "duplicate staff number %d", st.Number)
		}
		seenStaff[st.Number] = true
		for _, vc := range v.t.ChildrenOf(s, KindVoice) {
			vo, _ := As[Voice](v.t, vc)
			if seenVoice[vo.Number] {
				v.fail(vc, "duplicate voice number %d in part", vo.Number)
			}
			seenVoice[vo.Number] = true
		}
	}
}

func (v *validator) checkStaff(id NodeID) {
	seen := map[int]bool{}
	for _, vc := range v.t.ChildrenOf(id, KindVoice) {
		vo, _ := As[Voice](v.t, vc)
		if vo.StaffRelative < 1 || vo.StaffRelative > 4 {
			v.fail(vc, "staff-relative voice number %d outside 1..4", vo.StaffRelative)
		}
		if seen[vo.StaffRelative] {
			v.fail(vc, "duplicate staff-relative voice number %d", vo.StaffRelative)
		}
		seen[vo.StaffRelative] = true
	}
}

// checkVoice verifies that measure numbers never decrease in document order.
func (v *validator) checkVoice(id NodeID) {
	last := 0
	first := true
	Inspect(v.t, id, func(n NodeID) bool {
		if v.t.nodes[n].kind != KindMeasure {
			return true
		}
		m, _ := As[Measure](v.t, n)
		if !first && m.Number < last {
			v.fail(n, "measure %d follows measure %d", m.Number, last)
		}
		last, first = m.Number, false
		return false
	})
}

func (v *validator) checkRepeat(id NodeID) {
	endings := v.t.ChildrenOf(id, KindRepeatEnding)
	seen := make(map[int]bool, len(endings))
	for i, e := range endings {
		re, _ := As[RepeatEnding](v.t, e)
		switch {
		case re.Position < 1 || re.Position > len(endings):
			v.fail(e, "ending position %d outside 1..%d", re.Position, len(endings))
		case seen[re.Position]:
			v.fail(e, "duplicate ending position %d", re.Position)
		case re.Position != i+1:
			v.fail(e, "ending position %d out of order", re.Position)
		}
		seen[re.Position] = true
	}
	// Endings must follow the body.
	sawEnding := false
	for _, c := range v.t.nodes[id].children {
		switch v.t.nodes[c].kind {
		case KindRepeatEnding:
			sawEnding = true
		case KindMeasure:
			if sawEnding {
				v.fail(c, "measure after repeat endings")
			}
		}
	}
}

func (v *validator) checkMembers(id NodeID, want NoteKind) {
	for _, c := range v.t.ChildrenOf(id, KindNote) {
		n, _ := As[Note](v.t, c)
		if n.Kind != want {
			v.fail(c, "%s note inside %s", n.Kind, v.t.nodes[id].kind)
		}
	}
}

func (v *validator) checkMeasureNotes(id NodeID) {
	for _, c := range v.t.ChildrenOf(id, KindNote) {
		n, _ := As[Note](v.t, c)
		if n.Kind != NoteStandalone && n.Kind != NoteRest {
			v.fail(c, "%s note directly inside a measure", n.Kind)
		}
	}
}
