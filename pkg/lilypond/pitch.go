package lilypond

import (
	"strconv"
	"strings"

	"github.com/kant/libmusicxml/pkg/score"
)

// octaveOutOfRange marks an octave outside the absolute table.
const octaveOutOfRange = "###"

// absoluteOctaves maps an octave number to its marks. Octave 3 holds the
// LilyPond reference octave of unmarked note names.
var absoluteOctaves = []string{
	0: ",,,",
	1: ",,",
	2: ",",
	3: "",
	4: "'",
	5: "''",
	6: "'''",
	7: "''''",
	8: "'''''",
}

// absoluteMarks returns the octave marks of a note written in absolute mode.
func absoluteMarks(octave int) string {
	if octave < 0 || octave >= len(absoluteOctaves) {
		return octaveOutOfRange
	}
	return absoluteOctaves[octave]
}

// relativeMarks returns the octave marks of a note with diatonic ordinal
// note following a note with ordinal ref in \relative mode. Intervals up to
// a fifth need no mark; each further octave adds one.
func relativeMarks(note, ref int) string {
	var sb strings.Builder
	if note >= ref {
		for n := note - 4; n > ref; n -= 7 {
			sb.WriteByte('\'')
		}
	} else {
		for n := note + 4; n < ref; n += 7 {
			sb.WriteByte(',')
		}
	}
	return sb.String()
}

// pitchLanguage spells note names in one of LilyPond's input languages.
type pitchLanguage struct {
	name     string
	steps    [7]string
	suffixes map[score.Alteration]string
	special  map[string]string // contractions such as "ees" -> "es"
}

var languages = map[string]*pitchLanguage{
	"nederlands": {
		name:  "nederlands",
		steps: [7]string{"c", "d", "e", "f", "g", "a", "b"},
		suffixes: map[score.Alteration]string{
			score.DoubleFlat:  "eses",
			score.SesquiFlat:  "eseh",
			score.Flat:        "es",
			score.SemiFlat:    "eh",
			score.Natural:     "",
			score.SemiSharp:   "ih",
			score.Sharp:       "is",
			score.SesquiSharp: "isih",
			score.DoubleSharp: "isis",
		},
		special: map[string]string{
			"ees":   "es",
			"eeses": "eses",
			"aes":   "as",
			"aeses": "asas",
		},
	},
	"english": {
		name:  "english",
		steps: [7]string{"c", "d", "e", "f", "g", "a", "b"},
		suffixes: map[score.Alteration]string{
			score.DoubleFlat:  "ff",
			score.SesquiFlat:  "tqf",
			score.Flat:        "f",
			score.SemiFlat:    "qf",
			score.Natural:     "",
			score.SemiSharp:   "qs",
			score.Sharp:       "s",
			score.SesquiSharp: "tqs",
			score.DoubleSharp: "ss",
		},
	},
}

// Languages returns the supported pitch-name languages.
func Languages() []string {
	return []string{"english", "nederlands"}
}

// spell returns the name of the step and alteration of p. The second result is false
// when the alteration has no spelling.
func (l *pitchLanguage) spell(p score.Pitch) (string, bool) {
	if p.Step < score.StepC || p.Step > score.StepB {
		return "", false
	}
	suffix, ok := l.suffixes[p.Alteration]
	if !ok {
		return l.steps[p.Step], false
	}
	name := l.steps[p.Step] + suffix
	if short, ok := l.special[name]; ok {
		name = short
	}
	return name, true
}

// durationString renders a duration: "4.", "\breve", "1*3/4".
func durationString(d score.Duration) string {
	var sb strings.Builder
	switch {
	case d.Log == -1:
		sb.WriteString(`\breve`)
	case d.Log == -2:
		sb.WriteString(`\longa`)
	case d.Log <= -3:
		sb.WriteString(`\maxima`)
	default:
		sb.WriteString(strconv.Itoa(1 << d.Log))
	}
	sb.WriteString(strings.Repeat(".", max(d.Dots, 0)))
	if d.Scaled() {
		sb.WriteString("*" + strconv.Itoa(d.Num))
		if d.Den != 1 {
			sb.WriteString("/" + strconv.Itoa(d.Den))
		}
	}
	return sb.String()
}

// graceDurationString renders the note type and dots of a grace note.
func graceDurationString(d score.Duration) string {
	d.Num, d.Den = 0, 0
	return durationString(d)
}
