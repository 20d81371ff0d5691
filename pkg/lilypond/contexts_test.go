package lilypond

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kant/libmusicxml/pkg/score"
)

// staffVoice adds st with one voice to part and returns the voice chunk.
func (tb *treeBuilder) staffVoice(part score.NodeID, st score.Staff) score.NodeID {
	s := tb.add(part, st)
	v := tb.add(s, score.Voice{Number: st.Number, StaffRelative: 1})
	return tb.add(v, score.VoiceChunk{})
}

func TestRender_StaffContexts(t *testing.T) {
	tests := []struct {
		name  string
		staff score.Staff
		opts  Options
		want  []string
	}{
		{
			name: "tablature",
			staff: score.Staff{
				Number:  1,
				Kind:    score.StaffTablature,
				Tunings: []score.Pitch{pitch(score.StepE, 2), pitch(score.StepA, 2), pitch(score.StepD, 3)},
			},
			want: []string{
				"    \\new TabStaff <<\n      \\set TabStaff.instrumentName = \"Guitar\"\n",
				`\set TabStaff.stringTunings = \stringTuning <e, a, d>`,
				`\context Voice = "PartPOneVoiceOne" <<`,
			},
		},
		{
			name:  "percussion",
			staff: score.Staff{Number: 1, Kind: score.StaffPercussion},
			opts:  Options{NoAutoBeaming: true},
			want: []string{
				`\new DrumStaff <<`,
				`\set DrumStaff.instrumentName = "Guitar"`,
				`\context DrumVoice = "PartPOneVoiceOne" <<`,
				`\set DrumVoice.autoBeaming = ##f`,
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tb := newTreeBuilder(t)
			p := tb.part(score.Part{ID: "P1", Name: "Guitar"})
			chunk := tb.staffVoice(p, tt.staff)
			tb.measure(chunk, 1, note(score.StepE, 3, score.Whole))

			out := render(t, tb.build(), tt.opts)
			for _, w := range tt.want {
				assert.Contains(t, out, w)
			}
			assert.NotContains(t, out, `\new Staff <<`)
			assert.Equal(t, 1, strings.Count(out, "instrumentName"))
		})
	}
}

// groupedParts builds two single-staff parts inside a group nested in the
// top-level group.
func groupedParts(t *testing.T, g score.PartGroup) *score.Tree {
	t.Helper()
	tb := newTreeBuilder(t)
	top := tb.add(tb.b.Root(), score.PartGroup{})
	group := tb.add(top, g)
	for _, id := range []string{"P1", "P2"} {
		p := tb.add(group, score.Part{ID: id})
		chunk := tb.staffVoice(p, score.Staff{Number: 1})
		tb.measure(chunk, 1, note(score.StepC, 4, score.Whole))
	}
	return tb.build()
}

func TestRender_GroupContexts(t *testing.T) {
	tests := []struct {
		name  string
		group score.PartGroup
		want  string
	}{
		{
			name:  "brace with instrument name",
			group: score.PartGroup{Symbol: score.GroupSymbolBrace, InstrumentName: "Keys"},
			want:  "    \\new PianoStaff <<\n      \\set PianoStaff.instrumentName = \"Keys\"\n      \\new Staff <<\n",
		},
		{
			name:  "brace",
			group: score.PartGroup{Symbol: score.GroupSymbolBrace},
			want:  "    \\new GrandStaff <<\n      \\new Staff <<\n",
		},
		{
			name:  "bracket",
			group: score.PartGroup{Symbol: score.GroupSymbolBracket, InstrumentName: "Winds"},
			want:  "    \\new StaffGroup <<\n      \\set StaffGroup.instrumentName = \"Winds\"\n      \\new Staff <<\n",
		},
		{
			name:  "line",
			group: score.PartGroup{Symbol: score.GroupSymbolLine},
			want:  "    \\new StaffGroup <<\n      \\new Staff <<\n",
		},
		{
			name:  "square",
			group: score.PartGroup{Symbol: score.GroupSymbolSquare},
			want:  "    \\new StaffGroup <<\n      \\new Staff <<\n",
		},
		{
			name:  "no symbol",
			group: score.PartGroup{Symbol: score.GroupSymbolNone},
			want:  "  <<\n    <<\n      \\new Staff <<\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := render(t, groupedParts(t, tt.group), Options{})
			assert.Contains(t, out, tt.want)
			assert.Equal(t, 2, strings.Count(out, `\new Staff <<`))
			assert.Equal(t, strings.Count(out, "<<"), strings.Count(out, ">>"))
		})
	}
}

func TestRender_GroupElision(t *testing.T) {
	tb := newTreeBuilder(t)
	top := tb.add(tb.b.Root(), score.PartGroup{})
	group := tb.add(top, score.PartGroup{Symbol: score.GroupSymbolBracket, Name: "Solo"})
	p := tb.add(group, score.Part{ID: "P1"})
	chunk := tb.staffVoice(p, score.Staff{Number: 1})
	tb.measure(chunk, 1, note(score.StepC, 4, score.Whole))

	out := render(t, tb.build(), Options{Comments: true})
	assert.Contains(t, out, "  <<\n    \\context Voice = \"PartPOneVoiceOne\" <<\n")
	assert.NotContains(t, out, "StaffGroup")
	assert.NotContains(t, out, "part group")
	assert.NotContains(t, out, `\new Staff`)
}

func TestRender_SeveralSingleStaffParts(t *testing.T) {
	tb := newTreeBuilder(t)
	for _, p := range []score.Part{{ID: "P1", Name: "Flute"}, {ID: "P2", Name: "Oboe"}} {
		_, chunk := tb.voice(tb.part(p), 1)
		tb.measure(chunk, 1, note(score.StepC, 5, score.Whole))
	}

	// Each part keeps its own staff.
	want := `\score {
  <<
    \new Staff <<
      \set Staff.instrumentName = "Flute"
      \context Voice = "PartPOneVoiceOne" <<
        \PartPOneVoiceOne
      >>
    >>
    \new Staff <<
      \set Staff.instrumentName = "Oboe"
      \context Voice = "PartPTwoVoiceOne" <<
        \PartPTwoVoiceOne
      >>
    >>
  >>
`
	out := render(t, tb.build(), Options{})
	assert.Contains(t, out, want)
	assert.NotContains(t, out, "StaffGroup")
}

func TestRender_Partial(t *testing.T) {
	tb := newTreeBuilder(t)
	p := tb.part(score.Part{ID: "P1"})
	_, chunk := tb.voice(p, 1)
	pickup := tb.add(chunk, score.Measure{Number: 0, Kind: score.MeasureIncompleteLeft, Length: score.Quarter})
	tb.add(pickup, note(score.StepC, 4, score.Quarter))
	tb.measure(chunk, 1, note(score.StepD, 4, score.Whole))

	assert.Contains(t, render(t, tb.build(), Options{}), "  \\partial 4\n  c'4\n  d1\n")
}

func TestRender_TupletRestKeepsReference(t *testing.T) {
	tb := newTreeBuilder(t)
	p := tb.part(score.Part{ID: "P1"})
	_, chunk := tb.voice(p, 1)
	m := tb.measure(chunk, 1, note(score.StepC, 6, score.Quarter))
	tup := tb.add(m, score.Tuplet{Actual: 3, Normal: 2})
	tb.add(tup, score.Note{Kind: score.NoteTupletMember, Rest: true, Duration: score.Eighth})
	tb.add(tup, score.Note{Kind: score.NoteTupletMember, Pitch: pitch(score.StepD, 6), Duration: score.Eighth})
	tb.add(tup, score.Note{Kind: score.NoteTupletMember, Pitch: pitch(score.StepE, 6), Duration: score.Eighth})

	assert.Contains(t, render(t, tb.build(), Options{}), `  c'''4 \tuplet 3/2 { r8 d8 e8 }`)
}

func TestRender_VoiceResetsReference(t *testing.T) {
	tb := newTreeBuilder(t)
	_, first := tb.voice(tb.part(score.Part{ID: "P1"}), 1)
	tb.measure(first, 1, note(score.StepC, 6, score.Whole))
	_, second := tb.voice(tb.part(score.Part{ID: "P2"}), 1)
	tb.measure(second, 1, note(score.StepC, 4, score.Whole))

	out := render(t, tb.build(), Options{})
	assert.Contains(t, out, "PartPOneVoiceOne = \\relative {\n  c'''1\n}\n")
	assert.Contains(t, out, "PartPTwoVoiceOne = \\relative {\n  c'1\n}\n")
}

func TestRender_TimeAndBeaming(t *testing.T) {
	tree := singleVoice(t, []score.Element{
		score.Time{Beats: 2, BeatType: 4},
		note(score.StepC, 4, score.Half),
	})

	out := render(t, tree, Options{})
	assert.Contains(t, out, "  \\time 2/4\n")
	assert.NotContains(t, out, `\numericTimeSignature`)
	assert.NotContains(t, out, "autoBeaming")

	out = render(t, tree, Options{NumericTime: true, NoAutoBeaming: true})
	assert.Contains(t, out, "  \\numericTimeSignature \\time 2/4\n")
	assert.Contains(t, out, "      \\set Staff.instrumentName = \"Flute\"\n      \\set Voice.autoBeaming = ##f\n")
}

func TestRender_OrnamentAccidentals(t *testing.T) {
	n := note(score.StepC, 4, score.Quarter)
	n.Attachments.Ornaments = []score.Ornament{
		{Kind: score.Trill, AccidentalMark: score.AccidentalMarkSharp},
		{Kind: score.Turn, Placement: score.PlacementBelow, AccidentalMark: score.AccidentalMarkFlat},
		{Kind: score.Mordent, Placement: score.PlacementAbove},
	}
	tree := singleVoice(t, []score.Element{n})

	out := render(t, tree, Options{MaxTokensPerLine: 40})
	assert.Contains(t, out, `  c'4 \trill ^\markup { \sharp } _\turn _\markup { \flat } ^\mordent`)
}

func TestRender_BarNumberCheck(t *testing.T) {
	tree := singleVoice(t, []score.Element{
		note(score.StepC, 4, score.Quarter),
		score.BarNumberCheck{Number: 2},
		note(score.StepD, 4, score.Quarter),
		note(score.StepE, 4, score.Quarter),
		note(score.StepF, 4, score.Quarter),
	})

	// The check stands on its own line and restarts the line width.
	out := render(t, tree, Options{MaxTokensPerLine: 2})
	assert.Contains(t, out, "  c'4\n  \\barNumberCheck #2\n  d4 e4\n  f4\n")
}

func lyricsTree(t *testing.T, chunks ...score.LyricsChunk) *score.Tree {
	t.Helper()
	tb := newTreeBuilder(t)
	v, chunk := tb.voice(tb.part(score.Part{ID: "P1"}), 1)
	tb.measure(chunk, 1, note(score.StepC, 4, score.Whole))
	ly := tb.add(v, score.Lyrics{Number: 1})
	for _, c := range chunks {
		tb.add(ly, c)
	}
	return tb.build()
}

func TestRender_LyricsLineBreaks(t *testing.T) {
	tree := lyricsTree(t,
		score.LyricsChunk{Kind: score.SyllableSingle, Text: "a"},
		score.LyricsChunk{Kind: score.SyllableBarCheck, Text: "2"},
		score.LyricsChunk{Kind: score.SyllableSingle, Text: "b"},
		score.LyricsChunk{Kind: score.SyllableSingle, Text: "c"},
		score.LyricsChunk{Kind: score.SyllableSingle, Text: "d"},
		score.LyricsChunk{Kind: score.SyllableBreak, Text: "3"},
		score.LyricsChunk{Kind: score.SyllableSingle, Text: "e"},
	)

	want := `PartPOneVoiceOneLyricsOne = \lyricmode {
  a | %{ 2 %}
  b c
  d %{ break "3" %}
  e
}
`
	assert.Contains(t, render(t, tree, Options{MaxLyricsPerLine: 2}), want)
}

func TestRender_CommentTextCannotCloseComment(t *testing.T) {
	tree := lyricsTree(t,
		score.LyricsChunk{Kind: score.SyllableSingle, Text: "la"},
		score.LyricsChunk{Kind: score.SyllableSlur, Text: `x%} \bar "|."`},
		score.LyricsChunk{Kind: score.SyllableBarCheck, Text: "%}"},
	)

	out := render(t, tree, Options{})
	assert.Contains(t, out, `%{ slur "x% } \\bar \"|.\"" %}`)
	assert.Contains(t, out, `| %{ % } %}`)
	assert.Equal(t, strings.Count(out, "%{"), strings.Count(out, "%}"))
}

func TestBlockComment(t *testing.T) {
	assert.Equal(t, "%{ 12 %}", blockComment("12"))
	assert.Equal(t, "%{ a % } b % }% } %}", blockComment("a %} b %}%}"))
}
