package scorefile

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/kant/libmusicxml/pkg/score"
)

// Load reads and decodes the score description at path.
func Load(path string) (*score.Tree, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read score description: %w", err)
	}
	return Parse(path, data)
}

// Parse decodes a score description. path names the input in errors and
// in the score's source.
func Parse(path string, data []byte) (*score.Tree, error) {
	var doc document
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, decodeError(path, err)
	}

	l := &loader{b: score.NewBuilder(score.Score{Source: path})}
	if err := l.document(&doc); err != nil {
		return nil, decodeError(path, err)
	}
	tree, err := l.b.Build()
	if err != nil {
		return nil, fmt.Errorf("invalid score %s: %w", path, err)
	}
	return tree, nil
}

// loader adds the decoded description to a score builder.
type loader struct {
	b      *score.Builder
	groups int
}

func (l *loader) add(parent score.NodeID, at score.Position, e score.Element) (score.NodeID, error) {
	id, err := l.b.Add(parent, at, e)
	if err != nil {
		return score.NoNode, &DecodeError{Pos: at, Msg: err.Error(), Err: err}
	}
	return id, nil
}

func (l *loader) document(doc *document) error {
	root := l.b.Root()

	if len(doc.Header) > 0 {
		h, err := l.add(root, doc.Header[0].at, score.Header{})
		if err != nil {
			return err
		}
		if err := l.fields(h, doc.Header, true); err != nil {
			return err
		}
	}
	if err := l.fields(root, doc.Variables, false); err != nil {
		return err
	}
	if p := doc.Paper; p != nil {
		if _, err := l.add(root, p.at, score.Paper{
			Width:        p.Width,
			Height:       p.Height,
			TopMargin:    p.TopMargin,
			BottomMargin: p.BottomMargin,
			LeftMargin:   p.LeftMargin,
			RightMargin:  p.RightMargin,
		}); err != nil {
			return err
		}
	}
	if len(doc.Layout) > 0 {
		lay, err := l.add(root, doc.Layout[0].at, score.Layout{})
		if err != nil {
			return err
		}
		if err := l.fields(lay, doc.Layout, false); err != nil {
			return err
		}
	}

	// The implicit top-level group holds everything else.
	top, err := l.add(root, score.Position{}, score.PartGroup{})
	if err != nil {
		return err
	}
	for i := range doc.Groups {
		if err := l.group(top, &doc.Groups[i]); err != nil {
			return err
		}
	}
	for i := range doc.Parts {
		if err := l.part(top, &doc.Parts[i]); err != nil {
			return err
		}
	}
	return nil
}

// fields adds variables; quoted defaults to true in a header.
func (l *loader) fields(parent score.NodeID, fs []field, header bool) error {
	for _, f := range fs {
		if f.Name == "" {
			return errorAt(f.at, "field without name")
		}
		quoted := header
		if f.Quoted != nil {
			quoted = *f.Quoted
		}
		if _, err := l.add(parent, f.at, score.Variable{
			Name:      f.Name,
			Value:     f.Value,
			Quoted:    quoted,
			Commented: f.Commented,
			Unit:      f.Unit,
		}); err != nil {
			return err
		}
	}
	return nil
}

func (l *loader) group(parent score.NodeID, g *group) error {
	l.groups++
	pg := score.PartGroup{Number: l.groups, Name: g.Name, InstrumentName: g.Instrument}
	if g.Symbol != "" {
		sym, ok := score.ParseGroupSymbol(g.Symbol)
		if !ok {
			return errorAt(g.at, "unknown group symbol %q", g.Symbol)
		}
		pg.Symbol = sym
	}
	id, err := l.add(parent, g.at, pg)
	if err != nil {
		return err
	}
	for i := range g.Groups {
		if err := l.group(id, &g.Groups[i]); err != nil {
			return err
		}
	}
	for i := range g.Parts {
		if err := l.part(id, &g.Parts[i]); err != nil {
			return err
		}
	}
	return nil
}

func (l *loader) part(parent score.NodeID, p *part) error {
	if p.ID == "" {
		return errorAt(p.at, "part without id")
	}
	id, err := l.add(parent, p.at, score.Part{ID: p.ID, Name: p.Name, Abbreviation: p.Abbreviation})
	if err != nil {
		return err
	}
	voices := 0
	for i := range p.Staves {
		if err := l.staff(id, i+1, &voices, &p.Staves[i]); err != nil {
			return err
		}
	}
	return nil
}

// staff adds a staff; voices numbers the voices of the whole part.
func (l *loader) staff(parent score.NodeID, index int, voices *int, s *staff) error {
	st := score.Staff{Number: s.Number}
	if st.Number == 0 {
		st.Number = index
	}
	if s.Kind != "" {
		k, ok := score.ParseStaffKind(s.Kind)
		if !ok {
			return errorAt(s.at, "unknown staff kind %q", s.Kind)
		}
		st.Kind = k
	}
	tunings, err := parsePitches(s.Tunings)
	if err != nil {
		return errorAt(s.at, "%v", err)
	}
	st.Tunings = tunings

	id, err := l.add(parent, s.at, st)
	if err != nil {
		return err
	}
	for i := range s.Voices {
		*voices++
		if err := l.voice(id, i+1, *voices, &s.Voices[i]); err != nil {
			return err
		}
	}
	return nil
}

func (l *loader) voice(parent score.NodeID, index, number int, v *voice) error {
	vo := score.Voice{Number: v.Number, StaffRelative: v.StaffVoice}
	if vo.Number == 0 {
		vo.Number = number
	}
	if vo.StaffRelative == 0 {
		vo.StaffRelative = index
	}
	id, err := l.add(parent, v.at, vo)
	if err != nil {
		return err
	}
	chunk, err := l.add(id, v.at, score.VoiceChunk{})
	if err != nil {
		return err
	}

	ms := &measures{total: countMeasures(v.Music)}
	for _, item := range v.Music {
		if item.Measure != nil {
			err = l.measure(chunk, ms, item.Measure)
		} else {
			err = l.repeat(chunk, ms, item.at, item.Repeat)
		}
		if err != nil {
			return err
		}
	}

	for i := range v.Lyrics {
		if err := l.stanza(id, i+1, &v.Lyrics[i]); err != nil {
			return err
		}
	}
	return nil
}

func (l *loader) stanza(parent score.NodeID, index int, s *stanza) error {
	number := s.Number
	if number == 0 {
		number = index
	}
	id, err := l.add(parent, s.at, score.Lyrics{Number: number})
	if err != nil {
		return err
	}
	for _, syl := range s.Syllables {
		ch, err := parseSyllable(syl)
		if err != nil {
			return errorAt(syl.at, "%v", err)
		}
		if _, err := l.add(id, syl.at, ch); err != nil {
			return err
		}
	}
	return nil
}

// measures numbers the measures of one voice.
type measures struct {
	total int // measures in the voice
	seen  int
	last  int // number of the previous measure
}

func countMeasures(items []musicItem) int {
	n := 0
	for _, item := range items {
		if item.Measure != nil {
			n++
			continue
		}
		n += len(item.Repeat.Measures)
		for _, e := range item.Repeat.Endings {
			n += len(e)
		}
	}
	return n
}

func (l *loader) repeat(parent score.NodeID, ms *measures, at score.Position, r *repeat) error {
	id, err := l.add(parent, at, score.Repeat{})
	if err != nil {
		return err
	}
	for i := range r.Measures {
		if err := l.measure(id, ms, &r.Measures[i]); err != nil {
			return err
		}
	}
	for i, ending := range r.Endings {
		pos := at
		if len(ending) > 0 {
			pos = ending[0].at
		}
		e, err := l.add(id, pos, score.RepeatEnding{Position: i + 1})
		if err != nil {
			return err
		}
		for j := range ending {
			if err := l.measure(e, ms, &ending[j]); err != nil {
				return err
			}
		}
	}
	return nil
}

// measure adds a measure, its elements and, unless it is the last measure
// of the voice, a bar check.
func (l *loader) measure(parent score.NodeID, ms *measures, m *measure) error {
	sm := score.Measure{Number: m.Number}
	if sm.Number == 0 {
		sm.Number = ms.last + 1
	}
	ms.last = sm.Number
	ms.seen++

	if m.Kind != "" {
		k, ok := score.ParseMeasureKind(m.Kind)
		if !ok {
			return errorAt(m.at, "unknown measure kind %q", m.Kind)
		}
		sm.Kind = k
	}
	if m.Length != "" {
		d, err := parseDuration(m.Length)
		if err != nil {
			return errorAt(m.at, "%v", err)
		}
		sm.Length = d
	}
	if sm.Kind == score.MeasureIncompleteLeft && m.Length == "" {
		return errorAt(m.at, "incomplete measure %d without length", sm.Number)
	}

	id, err := l.add(parent, m.at, sm)
	if err != nil {
		return err
	}
	for _, e := range m.Elements {
		if err := l.element(id, e); err != nil {
			return err
		}
	}
	if ms.seen < ms.total {
		if _, err := l.add(id, m.at, score.BarCheck{NextBar: sm.Number + 1}); err != nil {
			return err
		}
	}
	return nil
}

// element adds one measure element.
func (l *loader) element(parent score.NodeID, e element) error {
	err := l.playable(parent, e, score.NoteStandalone)
	if !errors.Is(err, ErrNoElement) {
		return err
	}
	decode, ok := directions[e.key]
	if !ok {
		return err
	}
	el, derr := decode(e.value)
	if derr != nil {
		return errorAt(e.at, "%s: %v", e.key, derr)
	}
	_, err = l.add(parent, e.at, el)
	return err
}

// playable adds a note, rest, chord, tuplet or grace group. kind is the role
// of a note inside the parent: standalone, tuplet member or grace.
func (l *loader) playable(parent score.NodeID, e element, kind score.NoteKind) error {
	wrap := func(err error) error {
		return errorAt(e.at, "%s: %v", e.key, err)
	}

	switch e.key {
	case "note":
		ns, err := decodeNote(e.value)
		if err != nil {
			return wrap(err)
		}
		n, err := ns.toNote(kind, false)
		if err != nil {
			return wrap(err)
		}
		_, err = l.add(parent, e.at, n)
		return err

	case "rest":
		if kind == score.NoteGrace {
			return wrap(fmt.Errorf("rest in a grace group"))
		}
		ns, err := decodeRest(e.value)
		if err != nil {
			return wrap(err)
		}
		restKind := score.NoteRest
		if kind == score.NoteTupletMember {
			restKind = kind
		}
		n, err := ns.toNote(restKind, true)
		if err != nil {
			return wrap(err)
		}
		_, err = l.add(parent, e.at, n)
		return err

	case "chord":
		ns, err := decodeChord(e.value)
		if err != nil {
			return wrap(err)
		}
		c, pitches, err := ns.toChord()
		if err != nil {
			return wrap(err)
		}
		id, err := l.add(parent, e.at, c)
		if err != nil {
			return err
		}
		for _, p := range pitches {
			member := score.Note{Kind: score.NoteChordMember, Pitch: p, Duration: c.Duration}
			if _, err := l.add(id, e.at, member); err != nil {
				return err
			}
		}
		return nil

	case "tuplet", "grace":
		if kind != score.NoteStandalone {
			return wrap(fmt.Errorf("nested %s", e.key))
		}
		var gs groupSpec
		if err := decodeStrict(e.value, &gs); err != nil {
			return wrap(err)
		}
		var g score.Element = score.GraceNotes{Slashed: gs.Slashed}
		memberKind := score.NoteGrace
		if e.key == "tuplet" {
			if gs.Actual <= 0 || gs.Normal <= 0 {
				return wrap(fmt.Errorf("tuplet needs positive actual and normal counts"))
			}
			g = score.Tuplet{Actual: gs.Actual, Normal: gs.Normal}
			memberKind = score.NoteTupletMember
		}
		id, err := l.add(parent, e.at, g)
		if err != nil {
			return err
		}
		for i := range gs.Notes {
			if err := l.member(id, &gs.Notes[i], memberKind); err != nil {
				return err
			}
		}
		return nil
	}
	return &DecodeError{Pos: e.at, Msg: fmt.Sprintf("unknown element %q", e.key), Err: ErrNoElement}
}

// member adds one note of a tuplet or grace group. A bare string is a note
// shorthand.
func (l *loader) member(parent score.NodeID, n *yaml.Node, kind score.NoteKind) error {
	e := element{key: "note", value: n, at: position(n)}
	if n.Kind != yaml.ScalarNode {
		if err := n.Decode(&e); err != nil {
			return err
		}
	}
	return l.playable(parent, e, kind)
}
