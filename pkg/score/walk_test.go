package score

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWalk_Order(t *testing.T) {
	b, _, chunk := buildVoice(t)
	m, _ := b.Add(chunk, Position{}, Measure{Number: 1})
	c, _ := b.Add(m, Position{}, Chord{Duration: Quarter})
	_, _ = b.Add(c, Position{}, Note{Kind: NoteChordMember})
	_, _ = b.Add(m, Position{}, BarCheck{NextBar: 2})
	tree, err := b.Build()
	require.NoError(t, err)

	var events []string
	var rules Rules
	for _, k := range Kinds() {
		rules[k] = Rule{
			Enter: func(v *Visit) error {
				events = append(events, fmt.Sprintf("+%s@%d", v.Kind(), v.Depth()))
				return nil
			},
			Exit: func(v *Visit) error {
				events = append(events, "-"+v.Kind().String())
				return nil
			},
		}
	}
	require.NoError(t, Walk(tree, &rules))

	assert.Equal(t, []string{
		"+Score@0", "+PartGroup@1", "+Part@2", "+Staff@3", "+Voice@4", "+VoiceChunk@5",
		"+Measure@6", "+Chord@7", "+Note@8", "-Note", "-Chord", "+BarCheck@7", "-BarCheck",
		"-Measure", "-VoiceChunk", "-Voice", "-Staff", "-Part", "-PartGroup", "-Score",
	}, events)
}

func TestWalk_IdentityRules(t *testing.T) {
	b, _, chunk := buildVoice(t)
	m, _ := b.Add(chunk, Position{}, Measure{Number: 1})
	_, _ = b.Add(m, Position{}, Note{Kind: NoteRest, Duration: Whole})
	tree, err := b.Build()
	require.NoError(t, err)

	notes := 0
	var rules Rules
	rules[KindNote] = Rule{Enter: func(v *Visit) error {
		notes++
		assert.Equal(t, m, v.Parent())
		assert.Equal(t, KindMeasure, v.Tree.Kind(v.Path()[len(v.Path())-1]))
		return nil
	}}
	require.NoError(t, Walk(tree, &rules))
	assert.Equal(t, 1, notes)
}

func TestWalk_RuleError(t *testing.T) {
	b, _, chunk := buildVoice(t)
	_, _ = b.Add(chunk, Position{Line: 30}, Measure{Number: 1})
	tree, err := b.Build()
	require.NoError(t, err)

	boom := errors.New("boom")
	var rules Rules
	rules[KindMeasure].Exit = func(*Visit) error { return boom }

	err = Walk(tree, &rules)
	require.ErrorIs(t, err, boom)

	var re *RuleError
	require.ErrorAs(t, err, &re)
	assert.Equal(t, KindMeasure, re.Kind)
	assert.Equal(t, 30, re.Pos.Line)
}

func TestWalk_BrokenUplink(t *testing.T) {
	b, voice, chunk := buildVoice(t)
	tree, err := b.Build()
	require.NoError(t, err)
	tree.nodes[chunk].parent = tree.Parent(voice)

	err = Walk(tree, &Rules{})
	var se *StructureError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, KindVoiceChunk, se.Kind)
}

func TestKinds_Named(t *testing.T) {
	for _, k := range Kinds() {
		assert.NotContains(t, k.String(), "Kind(", "kind %d has no name", k)
	}
	assert.Equal(t, "Kind(200)", Kind(200).String())
}

func TestElements_NodeKind(t *testing.T) {
	elems := []Element{
		Score{}, Header{}, Variable{}, Paper{}, Layout{}, Comment{},
		PartGroup{}, Part{}, Staff{}, Voice{}, VoiceChunk{}, Measure{},
		Repeat{}, RepeatEnding{}, Note{}, Chord{}, Tuplet{}, GraceNotes{},
		Lyrics{}, LyricsChunk{}, Clef{}, Key{}, Time{}, Tempo{}, Barline{},
		BarCheck{}, BarNumberCheck{}, Break{}, OctaveShift{}, Rehearsal{},
		Segno{}, Coda{}, Eyeglasses{}, Pedal{},
	}
	seen := make(map[Kind]bool)
	for _, e := range elems {
		k := e.NodeKind()
		assert.False(t, seen[k], "kind %s claimed twice", k)
		seen[k] = true
	}
	assert.Len(t, seen, NumKinds)

	// The node kind is independent of a payload's own Kind field.
	rest := Note{Kind: NoteRest}
	assert.Equal(t, KindNote, rest.NodeKind())
	assert.Equal(t, NoteRest, rest.Kind)
}
