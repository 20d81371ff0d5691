package lilypond

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kant/libmusicxml/pkg/score"
)

func TestAbsoluteMarks(t *testing.T) {
	tests := []struct {
		octave int
		want   string
	}{
		{0, ",,,"},
		{2, ","},
		{3, ""},
		{4, "'"},
		{5, "''"},
		{8, "'''''"},
		{-1, "###"},
		{9, "###"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, absoluteMarks(tt.octave), "octave %d", tt.octave)
	}
}

func TestRelativeMarks(t *testing.T) {
	tests := []struct {
		name      string
		note, ref score.Pitch
		want      string
	}{
		{"unison", pitch(score.StepC, 4), pitch(score.StepC, 4), ""},
		{"fourth up", pitch(score.StepF, 4), pitch(score.StepC, 4), ""},
		{"octave up", pitch(score.StepC, 5), pitch(score.StepC, 4), "'"},
		{"two octaves up", pitch(score.StepC, 6), pitch(score.StepC, 4), "''"},
		{"second down", pitch(score.StepB, 3), pitch(score.StepC, 4), ""},
		{"octave down", pitch(score.StepC, 3), pitch(score.StepC, 4), ","},
		{"ninth down", pitch(score.StepB, 2), pitch(score.StepC, 4), ","},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, relativeMarks(tt.note.Ordinal(), tt.ref.Ordinal()))
		})
	}
}

func TestRelativeMarks_Count(t *testing.T) {
	const ref = 28
	for d := -30; d <= 30; d++ {
		marks := relativeMarks(ref+d, ref)

		abs := d
		if abs < 0 {
			abs = -abs
		}
		want := 0
		if abs > 4 {
			want = (abs - 4 + 6) / 7
		}
		assert.Len(t, marks, want, "distance %d", d)

		switch {
		case d > 0:
			assert.Equal(t, strings.Repeat("'", want), marks)
		case d < 0:
			assert.Equal(t, strings.Repeat(",", want), marks)
		}
		assert.Len(t, relativeMarks(ref-d, ref), want, "mirrored distance %d", d)
	}
}

func TestSpell(t *testing.T) {
	nl := languages["nederlands"]
	en := languages["english"]

	tests := []struct {
		name string
		lang *pitchLanguage
		p    score.Pitch
		want string
	}{
		{"natural", nl, score.Pitch{Step: score.StepD}, "d"},
		{"sharp", nl, score.Pitch{Step: score.StepF, Alteration: score.Sharp}, "fis"},
		{"e flat", nl, score.Pitch{Step: score.StepE, Alteration: score.Flat}, "es"},
		{"a flat", nl, score.Pitch{Step: score.StepA, Alteration: score.Flat}, "as"},
		{"a double flat", nl, score.Pitch{Step: score.StepA, Alteration: score.DoubleFlat}, "asas"},
		{"b flat", nl, score.Pitch{Step: score.StepB, Alteration: score.Flat}, "bes"},
		{"quarter sharp", nl, score.Pitch{Step: score.StepC, Alteration: score.SemiSharp}, "cih"},
		{"english sharp", en, score.Pitch{Step: score.StepF, Alteration: score.Sharp}, "fs"},
		{"english flat", en, score.Pitch{Step: score.StepE, Alteration: score.Flat}, "ef"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.lang.spell(tt.p)
			assert.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}

	_, ok := nl.spell(score.Pitch{Step: score.StepC, Alteration: 7})
	assert.False(t, ok)
}

func TestDurationString(t *testing.T) {
	tests := []struct {
		d    score.Duration
		want string
	}{
		{score.Quarter, "4"},
		{score.Duration{Log: 3, Dots: 1}, "8."},
		{score.Duration{Log: 2, Dots: 2}, "4.."},
		{score.Duration{Log: -1}, `\breve`},
		{score.Duration{Log: -2}, `\longa`},
		{score.Duration{Log: 0, Num: 3, Den: 4}, "1*3/4"},
		{score.Duration{Log: 0, Num: 2, Den: 1}, "1*2"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, durationString(tt.d))
	}

	assert.Equal(t, "8.", graceDurationString(score.Duration{Log: 3, Dots: 1, Num: 2, Den: 3}))
}
