package lilypond

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kant/libmusicxml/pkg/score"
)

func TestSequencer(t *testing.T) {
	q := &sequencer{endings: 2}
	assert.Error(t, q.finish())

	open, err := q.enterEnding(1)
	require.NoError(t, err)
	assert.True(t, open)
	assert.Equal(t, inAlternative, q.phase)

	closed, err := q.exitEnding(1)
	require.NoError(t, err)
	assert.False(t, closed)

	open, err = q.enterEnding(2)
	require.NoError(t, err)
	assert.False(t, open)

	closed, err = q.exitEnding(2)
	require.NoError(t, err)
	assert.True(t, closed)
	assert.Equal(t, repeatClosed, q.phase)
	assert.NoError(t, q.finish())
}

func TestSequencer_Errors(t *testing.T) {
	t.Run("second ending first", func(t *testing.T) {
		q := &sequencer{endings: 2}
		_, err := q.enterEnding(2)
		assert.Error(t, err)
	})
	t.Run("exit before enter", func(t *testing.T) {
		q := &sequencer{endings: 1}
		_, err := q.exitEnding(1)
		assert.Error(t, err)
	})
	t.Run("ending after close", func(t *testing.T) {
		q := &sequencer{endings: 1}
		_, err := q.enterEnding(1)
		require.NoError(t, err)
		_, err = q.exitEnding(1)
		require.NoError(t, err)
		_, err = q.enterEnding(1)
		assert.Error(t, err)
	})
	t.Run("unclosed alternative", func(t *testing.T) {
		q := &sequencer{endings: 3}
		_, err := q.enterEnding(1)
		require.NoError(t, err)
		assert.Error(t, q.finish())
	})
}

// repeatTree builds a voice with a repeat of one body measure and n endings.
func repeatTree(t *testing.T, endings int) *score.Tree {
	t.Helper()
	tb := newTreeBuilder(t)
	p := tb.part(score.Part{ID: "P1"})
	_, chunk := tb.voice(p, 1)
	rep := tb.add(chunk, score.Repeat{})
	tb.measure(rep, 1, note(score.StepC, 4, score.Whole))
	for i := 1; i <= endings; i++ {
		e := tb.add(rep, score.RepeatEnding{Position: i})
		tb.measure(e, i+1, note(score.StepD, 4, score.Whole))
	}
	return tb.build()
}

func TestRender_RepeatWithoutEndings(t *testing.T) {
	out := render(t, repeatTree(t, 0), Options{})

	assert.Equal(t, 1, strings.Count(out, `\repeat volta 2 {`))
	assert.NotContains(t, out, `\alternative`)
	assert.Contains(t, out, "  \\repeat volta 2 {\n    c'1\n  }\n")
}

func TestRender_RepeatWithEndings(t *testing.T) {
	for _, n := range []int{1, 2, 3} {
		out := render(t, repeatTree(t, n), Options{})

		assert.Equal(t, 1, strings.Count(out, `\repeat volta `), "endings %d", n)
		assert.Contains(t, out, `\repeat volta `+string(rune('0'+n))+" {")
		assert.Equal(t, 1, strings.Count(out, `\alternative {`), "endings %d", n)
		assert.Equal(t, strings.Count(out, "{"), strings.Count(out, "}"), "endings %d", n)
	}
}

func TestRender_RepeatLayout(t *testing.T) {
	out := render(t, repeatTree(t, 2), Options{})

	want := `PartPOneVoiceOne = \relative {
  \repeat volta 2 {
    c'1
  }
  \alternative {
    {
      d1
    }
    {
      d1
    }
  }
}
`
	assert.Contains(t, out, want)
}

func TestRender_RepeatComments(t *testing.T) {
	out := render(t, repeatTree(t, 1), Options{Comments: true})

	assert.Contains(t, out, `% start of repeat`)
	assert.Contains(t, out, `% start of alternative`)
	assert.Contains(t, out, `% end of alternative`)
}
