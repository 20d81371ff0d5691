package lilypond

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kant/libmusicxml/pkg/score"
)

// treeBuilder wraps score.Builder with line numbering and fatal errors.
type treeBuilder struct {
	t    *testing.T
	b    *score.Builder
	line int
}

func newTreeBuilder(t *testing.T) *treeBuilder {
	t.Helper()
	return &treeBuilder{t: t, b: score.NewBuilder(score.Score{}), line: 1}
}

func (tb *treeBuilder) add(parent score.NodeID, e score.Element) score.NodeID {
	tb.t.Helper()
	tb.line++
	id, err := tb.b.Add(parent, score.Position{Line: tb.line}, e)
	require.NoError(tb.t, err)
	return id
}

func (tb *treeBuilder) build() *score.Tree {
	tb.t.Helper()
	tree, err := tb.b.Build()
	require.NoError(tb.t, err)
	return tree
}

// part adds a top-level group holding one part and returns the part.
func (tb *treeBuilder) part(p score.Part) score.NodeID {
	g := tb.add(tb.b.Root(), score.PartGroup{})
	return tb.add(g, p)
}

// voice adds a staff with one voice and its chunk, returning voice and chunk.
func (tb *treeBuilder) voice(part score.NodeID, staff int) (score.NodeID, score.NodeID) {
	s := tb.add(part, score.Staff{Number: staff})
	v := tb.add(s, score.Voice{Number: staff, StaffRelative: 1})
	return v, tb.add(v, score.VoiceChunk{})
}

func (tb *treeBuilder) measure(parent score.NodeID, number int, elems ...score.Element) score.NodeID {
	m := tb.add(parent, score.Measure{Number: number})
	for _, e := range elems {
		tb.add(m, e)
	}
	return m
}

func pitch(step score.Step, octave int) score.Pitch {
	return score.Pitch{Step: step, Octave: octave}
}

func note(step score.Step, octave int, d score.Duration) score.Note {
	return score.Note{Kind: score.NoteStandalone, Pitch: pitch(step, octave), Duration: d}
}

func rest(d score.Duration) score.Note {
	return score.Note{Kind: score.NoteRest, Duration: d}
}

func member(step score.Step, octave int) score.Note {
	return score.Note{Kind: score.NoteChordMember, Pitch: pitch(step, octave), Duration: score.Quarter}
}

// singleVoice builds a one-part, one-staff, one-voice score from measures.
func singleVoice(t *testing.T, measures ...[]score.Element) *score.Tree {
	t.Helper()
	tb := newTreeBuilder(t)
	p := tb.part(score.Part{ID: "P1", Name: "Flute"})
	_, chunk := tb.voice(p, 1)
	for i, elems := range measures {
		tb.measure(chunk, i+1, elems...)
	}
	return tb.build()
}

func render(t *testing.T, tree *score.Tree, opts Options) string {
	t.Helper()
	out, err := RenderString(tree, opts)
	require.NoError(t, err)
	return out
}
