package scorefile

import (
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/kant/libmusicxml/pkg/score"
)

// noteSpec is the mapping form of a note, rest or chord.
type noteSpec struct {
	Pitch         string      `yaml:"pitch"`
	Pitches       []string    `yaml:"pitches"`
	Duration      string      `yaml:"duration"`
	Full          bool        `yaml:"full"`
	Tie           bool        `yaml:"tie"`
	Stem          string      `yaml:"stem"`
	Beams         []string    `yaml:"beams"`
	Articulations []string    `yaml:"articulations"`
	Ornaments     []string    `yaml:"ornaments"`
	Dynamics      []string    `yaml:"dynamics"`
	Words         []wordsSpec `yaml:"words"`
	Slurs         []string    `yaml:"slurs"`
	Wedges        []string    `yaml:"wedges"`
}

type wordsSpec struct {
	Text      string `yaml:"text"`
	Placement string `yaml:"placement"`
	Style     string `yaml:"style"`
	Weight    string `yaml:"weight"`
}

func (w *wordsSpec) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind == yaml.ScalarNode {
		w.Text = n.Value
		return nil
	}
	type plain wordsSpec
	return decodeStrict(n, (*plain)(w))
}

type groupSpec struct {
	Actual  int         `yaml:"actual"`
	Normal  int         `yaml:"normal"`
	Slashed bool        `yaml:"slashed"`
	Notes   []yaml.Node `yaml:"notes"`
}

type tempoSpec struct {
	Text string `yaml:"text"`
	Unit string `yaml:"unit"`
	BPM  int    `yaml:"bpm"`
}

type barlineSpec struct {
	Style string `yaml:"style"`
	Segno bool   `yaml:"segno"`
	Coda  bool   `yaml:"coda"`
}

// decodeNote reads a note in shorthand or mapping form.
func decodeNote(n *yaml.Node) (noteSpec, error) {
	var ns noteSpec
	if n.Kind == yaml.ScalarNode {
		fields := strings.Fields(n.Value)
		if len(fields) != 2 {
			return ns, fmt.Errorf("note %q: want \"<pitch> <duration>\"", n.Value)
		}
		ns.Pitch = fields[0]
		ns.Duration, ns.Tie = strings.CutSuffix(fields[1], "~")
		return ns, nil
	}
	err := decodeStrict(n, &ns)
	return ns, err
}

// decodeChord reads a chord in shorthand or mapping form.
func decodeChord(n *yaml.Node) (noteSpec, error) {
	var ns noteSpec
	if n.Kind == yaml.ScalarNode {
		fields := strings.Fields(n.Value)
		if len(fields) < 2 {
			return ns, fmt.Errorf("chord %q: want \"<pitch>... <duration>\"", n.Value)
		}
		last := len(fields) - 1
		ns.Pitches = fields[:last]
		ns.Duration, ns.Tie = strings.CutSuffix(fields[last], "~")
		return ns, nil
	}
	err := decodeStrict(n, &ns)
	return ns, err
}

// decodeRest reads a rest: a duration or a mapping with "full".
func decodeRest(n *yaml.Node) (noteSpec, error) {
	var ns noteSpec
	if n.Kind == yaml.ScalarNode {
		ns.Duration = n.Value
		return ns, nil
	}
	err := decodeStrict(n, &ns)
	return ns, err
}

// toNote converts a spec into a note of the given kind. Rests carry no
// pitch.
func (ns noteSpec) toNote(kind score.NoteKind, rest bool) (score.Note, error) {
	note := score.Note{
		Kind:        kind,
		Rest:        rest && kind == score.NoteTupletMember,
		FullMeasure: ns.Full,
		TieStart:    ns.Tie,
	}
	var err error
	if !rest {
		if note.Pitch, err = parsePitch(ns.Pitch, true); err != nil {
			return note, err
		}
	}
	if kind != score.NoteChordMember {
		if note.Duration, err = parseDuration(ns.Duration); err != nil {
			return note, err
		}
	}
	if note.Stem, err = ns.stem(); err != nil {
		return note, err
	}
	if note.Beams, err = ns.beams(); err != nil {
		return note, err
	}
	note.Attachments, err = ns.attachments()
	return note, err
}

func (ns noteSpec) toChord() (score.Chord, []score.Pitch, error) {
	c := score.Chord{TieStart: ns.Tie}
	if len(ns.Pitches) == 0 {
		return c, nil, fmt.Errorf("chord without pitches")
	}
	pitches, err := parsePitches(ns.Pitches)
	if err != nil {
		return c, nil, err
	}
	if c.Duration, err = parseDuration(ns.Duration); err != nil {
		return c, nil, err
	}
	if c.Stem, err = ns.stem(); err != nil {
		return c, nil, err
	}
	if c.Beams, err = ns.beams(); err != nil {
		return c, nil, err
	}
	c.Attachments, err = ns.attachments()
	return c, pitches, err
}

func (ns noteSpec) stem() (score.StemKind, error) {
	if ns.Stem == "" {
		return score.StemUnspecified, nil
	}
	k, ok := score.ParseStem(ns.Stem)
	if !ok {
		return k, fmt.Errorf("unknown stem %q", ns.Stem)
	}
	return k, nil
}

// beams parses "begin" (primary beam) or "2:end" (numbered beam).
func (ns noteSpec) beams() ([]score.Beam, error) {
	var out []score.Beam
	for _, s := range ns.Beams {
		b := score.Beam{Number: 1}
		name := s
		if num, kind, ok := strings.Cut(s, ":"); ok {
			n, err := strconv.Atoi(num)
			if err != nil || n < 1 {
				return nil, fmt.Errorf("bad beam number in %q", s)
			}
			b.Number, name = n, kind
		}
		k, ok := score.ParseBeam(name)
		if !ok {
			return nil, fmt.Errorf("unknown beam %q", s)
		}
		b.Kind = k
		out = append(out, b)
	}
	return out, nil
}

func (ns noteSpec) attachments() (score.Attachments, error) {
	var a score.Attachments
	for _, s := range ns.Articulations {
		pl, name := splitPlacement(s)
		k, ok := score.ParseArticulation(name)
		if !ok {
			return a, fmt.Errorf("unknown articulation %q", s)
		}
		a.Articulations = append(a.Articulations, score.Articulation{Kind: k, Placement: pl})
	}
	for _, s := range ns.Ornaments {
		pl, name := splitPlacement(s)
		name, markName, _ := strings.Cut(name, ":")
		k, ok := score.ParseOrnament(name)
		if !ok {
			return a, fmt.Errorf("unknown ornament %q", s)
		}
		o := score.Ornament{Kind: k, Placement: pl}
		if markName != "" {
			if o.AccidentalMark, ok = score.ParseAccidentalMark(markName); !ok {
				return a, fmt.Errorf("unknown accidental mark %q", s)
			}
		}
		a.Ornaments = append(a.Ornaments, o)
	}
	for _, s := range ns.Dynamics {
		pl, name := splitPlacement(s)
		k, ok := score.ParseDynamics(name)
		if !ok {
			return a, fmt.Errorf("unknown dynamics %q", s)
		}
		a.Dynamics = append(a.Dynamics, score.Dynamics{Kind: k, Placement: pl})
	}
	for _, w := range ns.Words {
		words, err := w.toWords()
		if err != nil {
			return a, err
		}
		a.Words = append(a.Words, words)
	}
	for _, s := range ns.Slurs {
		k, ok := score.ParseSlur(s)
		if !ok {
			return a, fmt.Errorf("unknown slur %q", s)
		}
		a.Slurs = append(a.Slurs, k)
	}
	for _, s := range ns.Wedges {
		k, ok := score.ParseWedge(s)
		if !ok {
			return a, fmt.Errorf("unknown wedge %q", s)
		}
		a.Wedges = append(a.Wedges, k)
	}
	return a, nil
}

func (w wordsSpec) toWords() (score.Words, error) {
	words := score.Words{Text: w.Text}
	if w.Placement != "" {
		p, ok := score.ParsePlacement(w.Placement)
		if !ok {
			return words, fmt.Errorf("unknown placement %q", w.Placement)
		}
		words.Placement = p
	}
	switch w.Style {
	case "", "normal":
	case "italic":
		words.Style = score.FontStyleItalic
	default:
		return words, fmt.Errorf("unknown font style %q", w.Style)
	}
	switch w.Weight {
	case "", "normal":
	case "bold":
		words.Weight = score.FontWeightBold
	default:
		return words, fmt.Errorf("unknown font weight %q", w.Weight)
	}
	return words, nil
}

// =============================================================================
// Directions
// =============================================================================

func decodeClef(n *yaml.Node) (score.Element, error) {
	k, ok := score.ParseClef(n.Value)
	if !ok {
		return nil, fmt.Errorf("unknown clef %q", n.Value)
	}
	return score.Clef{Kind: k}, nil
}

// decodeKey reads "G", "Bb major" or "F# minor".
func decodeKey(n *yaml.Node) (score.Element, error) {
	fields := strings.Fields(n.Value)
	if len(fields) == 0 || len(fields) > 2 {
		return nil, fmt.Errorf("key %q: want \"<tonic> [major|minor]\"", n.Value)
	}
	tonic, err := parsePitch(fields[0], false)
	if err != nil {
		return nil, err
	}
	key := score.Key{Tonic: tonic, Mode: score.ModeMajor}
	if len(fields) == 2 {
		m, ok := score.ParseKeyMode(fields[1])
		if !ok {
			return nil, fmt.Errorf("unknown key mode %q", fields[1])
		}
		key.Mode = m
	}
	return key, nil
}

func decodeTime(n *yaml.Node) (score.Element, error) {
	beats, beatType, ok := strings.Cut(n.Value, "/")
	if !ok {
		return nil, fmt.Errorf("time %q: want \"<beats>/<beat type>\"", n.Value)
	}
	b, err1 := strconv.Atoi(strings.TrimSpace(beats))
	t, err2 := strconv.Atoi(strings.TrimSpace(beatType))
	if err1 != nil || err2 != nil {
		return nil, fmt.Errorf("bad time %q", n.Value)
	}
	return score.Time{Beats: b, BeatType: t}, nil
}

// decodeTempo reads "4 = 120", a text indication, or a mapping.
func decodeTempo(n *yaml.Node) (score.Element, error) {
	var ts tempoSpec
	if n.Kind == yaml.ScalarNode {
		unit, bpm, ok := strings.Cut(n.Value, "=")
		if !ok {
			return score.Tempo{Indication: n.Value}, nil
		}
		ts.Unit = strings.TrimSpace(unit)
		v, err := strconv.Atoi(strings.TrimSpace(bpm))
		if err != nil {
			return nil, fmt.Errorf("bad tempo %q", n.Value)
		}
		ts.BPM = v
	} else if err := decodeStrict(n, &ts); err != nil {
		return nil, err
	}

	t := score.Tempo{Indication: ts.Text, PerMinute: ts.BPM}
	if ts.BPM > 0 {
		unit := ts.Unit
		if unit == "" {
			unit = "4"
		}
		d, err := parseDuration(unit)
		if err != nil {
			return nil, err
		}
		t.Unit = d
	}
	return t, nil
}

func decodeBarline(n *yaml.Node) (score.Element, error) {
	var bs barlineSpec
	if n.Kind == yaml.ScalarNode {
		bs.Style = n.Value
	} else if err := decodeStrict(n, &bs); err != nil {
		return nil, err
	}
	b := score.Barline{Segno: bs.Segno, Coda: bs.Coda}
	if bs.Style != "" {
		s, ok := score.ParseBarlineStyle(bs.Style)
		if !ok {
			return nil, fmt.Errorf("unknown barline style %q", bs.Style)
		}
		b.Style = s
	}
	return b, nil
}

// decodeOttava reads "up", "down 15" or "stop".
func decodeOttava(n *yaml.Node) (score.Element, error) {
	fields := strings.Fields(n.Value)
	if len(fields) == 0 || len(fields) > 2 {
		return nil, fmt.Errorf("ottava %q: want \"up|down|stop [8|15]\"", n.Value)
	}
	k, ok := score.ParseOctaveShift(fields[0])
	if !ok {
		return nil, fmt.Errorf("unknown ottava %q", fields[0])
	}
	o := score.OctaveShift{Kind: k, Size: 8}
	if len(fields) == 2 {
		size, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, fmt.Errorf("bad ottava size %q", fields[1])
		}
		o.Size = size
	}
	return o, nil
}

func decodePedal(n *yaml.Node) (score.Element, error) {
	k, ok := score.ParsePedal(n.Value)
	if !ok {
		return nil, fmt.Errorf("unknown pedal %q", n.Value)
	}
	return score.Pedal{Kind: k}, nil
}

// decodeNumber reads an optional integer; an empty value is zero.
func decodeNumber(n *yaml.Node) (int, error) {
	if n.Kind == yaml.ScalarNode && (n.Value == "" || n.Tag == "!!null") {
		return 0, nil
	}
	var v int
	err := n.Decode(&v)
	return v, err
}

// directions maps the element keys of simple directions to their decoders.
var directions = map[string]func(*yaml.Node) (score.Element, error){
	"clef":    decodeClef,
	"key":     decodeKey,
	"time":    decodeTime,
	"tempo":   decodeTempo,
	"barline": decodeBarline,
	"ottava":  decodeOttava,
	"pedal":   decodePedal,
	"break": func(n *yaml.Node) (score.Element, error) {
		v, err := decodeNumber(n)
		return score.Break{NextBar: v}, err
	},
	"barnumbercheck": func(n *yaml.Node) (score.Element, error) {
		v, err := decodeNumber(n)
		return score.BarNumberCheck{Number: v}, err
	},
	"rehearsal": func(n *yaml.Node) (score.Element, error) {
		return score.Rehearsal{Text: n.Value}, nil
	},
	"comment": func(n *yaml.Node) (score.Element, error) {
		return score.Comment{Text: n.Value}, nil
	},
	"segno":      func(*yaml.Node) (score.Element, error) { return score.Segno{}, nil },
	"coda":       func(*yaml.Node) (score.Element, error) { return score.Coda{}, nil },
	"eyeglasses": func(*yaml.Node) (score.Element, error) { return score.Eyeglasses{}, nil },
}
