package scorefile

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/kant/libmusicxml/pkg/score"
)

// parsePitch parses a compact pitch such as "C4", "F#3", "Bb2" or "E-4".
// The octave may be omitted when octave is false.
func parsePitch(s string, octave bool) (score.Pitch, error) {
	var p score.Pitch
	if s == "" {
		return p, fmt.Errorf("empty pitch")
	}
	step, ok := score.ParseStep(s[0])
	if !ok {
		return p, fmt.Errorf("bad pitch %q: unknown step %q", s, s[0])
	}
	p.Step = step

	i := 1
	alter := 0
accidentals:
	for ; i < len(s); i++ {
		switch s[i] {
		case '#':
			alter += 2
		case 'b':
			alter -= 2
		case '+':
			alter++
		case '-':
			alter--
		default:
			break accidentals
		}
	}
	if alter < int(score.DoubleFlat) || alter > int(score.DoubleSharp) {
		return p, fmt.Errorf("bad pitch %q: alteration out of range", s)
	}
	p.Alteration = score.Alteration(alter)

	rest := s[i:]
	if rest == "" {
		if octave {
			return p, fmt.Errorf("bad pitch %q: missing octave", s)
		}
		return p, nil
	}
	n, err := strconv.Atoi(rest)
	if err != nil || n < 0 {
		return p, fmt.Errorf("bad pitch %q: bad octave %q", s, rest)
	}
	p.Octave = n
	return p, nil
}

func parseDuration(s string) (score.Duration, error) {
	d, ok := score.ParseDuration(s)
	if !ok {
		return d, fmt.Errorf("bad duration %q", s)
	}
	return d, nil
}

func parsePitches(words []string) ([]score.Pitch, error) {
	out := make([]score.Pitch, 0, len(words))
	for _, w := range words {
		p, err := parsePitch(w, true)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

// splitPlacement strips a leading "^" (above) or "_" (below).
func splitPlacement(s string) (score.Placement, string) {
	switch {
	case strings.HasPrefix(s, "^"):
		return score.PlacementAbove, s[1:]
	case strings.HasPrefix(s, "_"):
		return score.PlacementBelow, s[1:]
	default:
		return score.PlacementNone, s
	}
}

// parseSyllable expands a syllable shorthand: "Hel-" begins a word, "-lo-"
// continues it, "-lo" ends it, "_" or "_2" is a skip and "|" a bar check.
func parseSyllable(s syllable) (score.LyricsChunk, error) {
	var ch score.LyricsChunk
	if !s.shorthand {
		kind := s.Kind
		if kind == "" {
			kind = "single"
		}
		k, ok := score.ParseSyllableKind(kind)
		if !ok {
			return ch, fmt.Errorf("unknown syllable kind %q", s.Kind)
		}
		ch.Kind, ch.Text = k, s.Text
		if s.Duration != "" {
			d, err := parseDuration(s.Duration)
			if err != nil {
				return ch, err
			}
			ch.Duration = d
		}
		return ch, nil
	}

	t := s.Text
	switch {
	case t == "|":
		ch.Kind = score.SyllableBarCheck
	case strings.HasPrefix(t, "_"):
		ch.Kind = score.SyllableSkip
		ch.Duration = score.Quarter
		if len(t) > 1 {
			d, err := parseDuration(t[1:])
			if err != nil {
				return ch, err
			}
			ch.Duration = d
		}
	case len(t) > 2 && strings.HasPrefix(t, "-") && strings.HasSuffix(t, "-"):
		ch.Kind, ch.Text = score.SyllableMiddle, t[1:len(t)-1]
	case len(t) > 1 && strings.HasPrefix(t, "-"):
		ch.Kind, ch.Text = score.SyllableEnd, t[1:]
	case len(t) > 1 && strings.HasSuffix(t, "-"):
		ch.Kind, ch.Text = score.SyllableBegin, t[:len(t)-1]
	default:
		ch.Kind, ch.Text = score.SyllableSingle, t
	}
	return ch, nil
}
