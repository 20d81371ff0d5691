package score

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildVoice returns a builder holding score > group > part > staff > voice > chunk.
func buildVoice(t *testing.T) (*Builder, NodeID, NodeID) {
	t.Helper()
	b := NewBuilder(Score{})
	g, err := b.Add(b.Root(), Position{Line: 1}, PartGroup{})
	require.NoError(t, err)
	p, err := b.Add(g, Position{Line: 2}, Part{ID: "P1", Name: "Flute"})
	require.NoError(t, err)
	s, err := b.Add(p, Position{Line: 3}, Staff{Number: 1})
	require.NoError(t, err)
	v, err := b.Add(s, Position{Line: 4}, Voice{Number: 1, StaffRelative: 1})
	require.NoError(t, err)
	c, err := b.Add(v, Position{Line: 5}, VoiceChunk{})
	require.NoError(t, err)
	return b, v, c
}

func TestBuilder_Add(t *testing.T) {
	b, _, chunk := buildVoice(t)

	m, err := b.Add(chunk, Position{Line: 6}, Measure{Number: 1})
	require.NoError(t, err)
	_, err = b.Add(m, Position{Line: 7}, Note{Kind: NoteStandalone, Pitch: Pitch{Step: StepC, Octave: 4}, Duration: Quarter})
	require.NoError(t, err)

	tree, err := b.Build()
	require.NoError(t, err)

	assert.Equal(t, 8, tree.Len())
	assert.Equal(t, KindMeasure, tree.Kind(m))
	assert.Equal(t, chunk, tree.Parent(m))
	assert.Equal(t, NoNode, tree.Parent(tree.Root()))
	assert.Equal(t, KindVoice, tree.Kind(tree.Ancestor(m, KindVoice)))
	assert.Equal(t, NoNode, tree.Ancestor(m, KindLyrics))
	assert.Equal(t, 0, tree.IndexOf(m))

	_, err = b.Add(m, Position{}, Clef{})
	assert.ErrorIs(t, err, ErrFrozen)
}

func TestBuilder_RejectsKind(t *testing.T) {
	tests := []struct {
		name   string
		parent func(b *Builder, chunk NodeID) NodeID
		elem   Element
	}{
		{"note under score", func(b *Builder, _ NodeID) NodeID { return b.Root() }, Note{}},
		{"measure under measure", func(b *Builder, c NodeID) NodeID {
			m, _ := b.Add(c, Position{}, Measure{Number: 1})
			return m
		}, Measure{}},
		{"clef under chunk", func(_ *Builder, c NodeID) NodeID { return c }, Clef{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, _, chunk := buildVoice(t)
			_, err := b.Add(tt.parent(b, chunk), Position{}, tt.elem)
			assert.ErrorIs(t, err, ErrKindNotAllowed)
		})
	}
}

func TestBuilder_UnknownParent(t *testing.T) {
	b := NewBuilder(Score{})
	_, err := b.Add(42, Position{}, PartGroup{})
	assert.ErrorIs(t, err, ErrNoNode)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		build   func(t *testing.T, b *Builder, voice, chunk NodeID)
		wantMsg string
	}{
		{
			name: "valid",
			build: func(t *testing.T, b *Builder, _, chunk NodeID) {
				_, err := b.Add(chunk, Position{}, Measure{Number: 1})
				require.NoError(t, err)
			},
		},
		{
			name: "empty chord",
			build: func(t *testing.T, b *Builder, _, chunk NodeID) {
				m, _ := b.Add(chunk, Position{}, Measure{Number: 1})
				_, err := b.Add(m, Position{Line: 9}, Chord{Duration: Quarter})
				require.NoError(t, err)
			},
			wantMsg: "chord has no member notes",
		},
		{
			name: "measures out of order",
			build: func(t *testing.T, b *Builder, _, chunk NodeID) {
				_, _ = b.Add(chunk, Position{}, Measure{Number: 3})
				_, _ = b.Add(chunk, Position{}, Measure{Number: 2})
			},
			wantMsg: "measure 2 follows measure 3",
		},
		{
			name: "ending positions not contiguous",
			build: func(t *testing.T, b *Builder, _, chunk NodeID) {
				r, _ := b.Add(chunk, Position{}, Repeat{})
				_, _ = b.Add(r, Position{}, RepeatEnding{Position: 1})
				_, _ = b.Add(r, Position{}, RepeatEnding{Position: 3})
			},
			wantMsg: "ending position 3 outside 1..2",
		},
		{
			name: "duplicate ending positions",
			build: func(t *testing.T, b *Builder, _, chunk NodeID) {
				r, _ := b.Add(chunk, Position{}, Repeat{})
				_, _ = b.Add(r, Position{}, RepeatEnding{Position: 1})
				_, _ = b.Add(r, Position{}, RepeatEnding{Position: 1})
			},
			wantMsg: "duplicate ending position 1",
		},
		{
			name: "duplicate staff-relative voice",
			build: func(t *testing.T, b *Builder, voice, _ NodeID) {
				staff := b.t.Parent(voice)
				_, _ = b.Add(staff, Position{}, Voice{Number: 2, StaffRelative: 1})
			},
			wantMsg: "duplicate staff-relative voice number 1",
		},
		{
			name: "chord member directly in measure",
			build: func(t *testing.T, b *Builder, _, chunk NodeID) {
				m, _ := b.Add(chunk, Position{}, Measure{Number: 1})
				_, _ = b.Add(m, Position{}, Note{Kind: NoteChordMember})
			},
			wantMsg: "chord-member note directly inside a measure",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, voice, chunk := buildVoice(t)
			tt.build(t, b, voice, chunk)
			_, err := b.Build()
			if tt.wantMsg == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantMsg)
			var se *StructureError
			assert.True(t, errors.As(err, &se))
		})
	}
}

func TestValidate_BrokenUplink(t *testing.T) {
	b, _, chunk := buildVoice(t)
	m, err := b.Add(chunk, Position{Line: 12}, Measure{Number: 1})
	require.NoError(t, err)
	b.t.nodes[m].parent = b.Root()

	err = Validate(b.t)
	require.Error(t, err)

	var se *StructureError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, KindMeasure, se.Kind)
	assert.Contains(t, err.Error(), "line 12")
}

func TestValidate_EndingOrder(t *testing.T) {
	b, _, chunk := buildVoice(t)
	r, _ := b.Add(chunk, Position{}, Repeat{})
	_, _ = b.Add(r, Position{}, RepeatEnding{Position: 2})
	_, _ = b.Add(r, Position{}, RepeatEnding{Position: 1})

	_, err := b.Build()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ending position 2 out of order")
}
