package lilypond

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/kant/libmusicxml/pkg/score"
)

// =============================================================================
// Pitch
// =============================================================================

// pitch spells p with the octave marks of the current mode and makes no
// state change.
func (r *renderer) pitch(p score.Pitch, pos score.Position) string {
	name := r.pitchName(p, pos)
	if r.opts.AbsoluteOctaves {
		return name + absoluteMarks(p.Octave)
	}
	if !r.st.hasReference {
		r.log.Debug("no relative reference, writing absolute octave", "line", pos.Line)
		return name + absoluteMarks(p.Octave)
	}
	return name + relativeMarks(p.Ordinal(), r.st.reference.Ordinal())
}

func (r *renderer) absolutePitch(p score.Pitch, pos score.Position) string {
	return r.pitchName(p, pos) + absoluteMarks(p.Octave)
}

func (r *renderer) pitchName(p score.Pitch, pos score.Position) string {
	name, ok := r.lang.spell(p)
	if !ok {
		r.warnUnknown("pitch", fmt.Sprintf("%s %s", p.Step, p.Alteration), pos)
		if name == "" {
			name = placeholder("pitch")
		}
	}
	return name
}

// =============================================================================
// Notes and chords
// =============================================================================

// startPlayable counts a note, chord or group in the innermost scope and
// starts a fresh line for the first one.
func (r *renderer) startPlayable() {
	if r.st.countPlayable() {
		r.st.music.breakLine()
	}
}

// stem writes a stem direction when enabled and changed.
func (r *renderer) stem(k score.StemKind, pos score.Position) {
	if !r.opts.Stems || k == score.StemUnspecified || k == r.st.stem {
		return
	}
	tok, ok := stemTokens[k]
	if !ok {
		r.warnUnknown("stem", k, pos)
		tok = placeholder("stem")
	}
	if tok != "" {
		r.st.music.token(tok, 1)
	}
	r.st.stem = k
}

func tieAndBeams(tie bool, beams []score.Beam) string {
	var sb strings.Builder
	if tie {
		sb.WriteByte('~')
	}
	for _, b := range beams {
		if b.Number != 1 {
			continue
		}
		switch b.Kind {
		case score.BeamBegin:
			sb.WriteByte('[')
		case score.BeamEnd:
			sb.WriteByte(']')
		}
	}
	return sb.String()
}

func restText(n score.Note) string {
	if n.FullMeasure {
		return "R" + durationString(n.Duration)
	}
	return "r" + durationString(n.Duration)
}

func (r *renderer) enterNote(v *score.Visit) error {
	n := v.Element().(score.Note)
	m := r.st.music
	if n.Kind != score.NoteChordMember {
		r.startPlayable()
		r.stem(n.Stem, v.Pos())
	}

	var word string
	switch n.Kind {
	case score.NoteRest:
		word = restText(n)
	case score.NoteStandalone:
		word = r.pitch(n.Pitch, v.Pos()) + durationString(n.Duration)
	case score.NoteGrace:
		word = r.pitch(n.Pitch, v.Pos()) + graceDurationString(n.Duration)
	case score.NoteChordMember:
		word = r.pitch(n.Pitch, v.Pos())
	case score.NoteTupletMember:
		if n.Rest {
			word = "r" + durationString(n.Duration)
		} else {
			word = r.pitch(n.Pitch, v.Pos()) + durationString(n.Duration)
		}
	default:
		r.warnUnknown("note kind", n.Kind, v.Pos())
		word = placeholder("note")
	}
	word += tieAndBeams(n.TieStart, n.Beams)

	if n.Kind == score.NoteChordMember && r.st.inChord && !r.st.chordHasMembers {
		m.attach(word)
		r.st.chordFirst = n.Pitch
		r.st.chordHasMembers = true
	} else {
		m.token(word, 1)
	}
	if !n.IsRest() {
		r.st.setReference(n.Pitch)
	}
	return nil
}

func (r *renderer) exitNote(v *score.Visit) error {
	n := v.Element().(score.Note)
	if n.Kind != score.NoteChordMember {
		r.lineNumber(v.Pos())
	}
	r.attachments(&n.Attachments, v.Pos())
	return nil
}

func (r *renderer) enterChord(v *score.Visit) error {
	c := v.Element().(score.Chord)
	r.startPlayable()
	r.stem(c.Stem, v.Pos())
	r.st.music.token("<", 1)
	r.st.inChord = true
	r.st.chordHasMembers = false
	return nil
}

func (r *renderer) exitChord(v *score.Visit) error {
	c := v.Element().(score.Chord)
	r.st.music.attach(">" + durationString(c.Duration) + tieAndBeams(c.TieStart, c.Beams))
	r.st.inChord = false
	if r.st.chordHasMembers {
		r.st.setReference(r.st.chordFirst)
	}
	r.lineNumber(v.Pos())
	r.attachments(&c.Attachments, v.Pos())
	return nil
}

func (r *renderer) enterTuplet(v *score.Visit) error {
	t := v.Element().(score.Tuplet)
	r.startPlayable()
	r.st.music.token(fmt.Sprintf(`\tuplet %d/%d {`, t.Actual, t.Normal), 1)
	return nil
}

func (r *renderer) enterGraceNotes(v *score.Visit) error {
	g := v.Element().(score.GraceNotes)
	r.startPlayable()
	if g.Slashed {
		r.st.music.token(`\slashedGrace {`, 1)
	} else {
		r.st.music.token(`\grace {`, 1)
	}
	return nil
}

// closeGroup ends a tuplet or grace group.
func (r *renderer) closeGroup(*score.Visit) error {
	r.st.music.token("}", 1)
	return nil
}

func (r *renderer) lineNumber(pos score.Position) {
	if r.opts.LineNumbers && pos.IsValid() {
		r.st.music.token(blockComment(strconv.Itoa(pos.Line)), 1)
	}
}

// =============================================================================
// Attachments
// =============================================================================

// attachments writes the ornamentation of a note or chord: articulations,
// ornaments, dynamics, words, slurs, then wedges.
func (r *renderer) attachments(a *score.Attachments, pos score.Position) {
	if a.Empty() {
		return
	}
	m := r.st.music

	for _, art := range a.Articulations {
		tok, ok := articulationTokens[art.Kind]
		if !ok {
			r.warnUnknown("articulation", art.Kind, pos)
			m.token(placeholder("articulation"), 1)
			continue
		}
		if !undirected[art.Kind] {
			tok = direct(tok, art.Placement)
		}
		m.token(tok, 1)
	}

	for _, o := range a.Ornaments {
		tok, ok := ornamentTokens[o.Kind]
		if !ok {
			r.warnUnknown("ornament", o.Kind, pos)
			m.token(placeholder("ornament"), 1)
			continue
		}
		m.token(direct(tok, o.Placement), 1)
		if o.AccidentalMark == score.AccidentalMarkNone {
			continue
		}
		mark, ok := accidentalMarkups[o.AccidentalMark]
		if !ok {
			r.warnUnknown("accidental mark", o.AccidentalMark, pos)
			continue
		}
		m.token(direct(mark, aboveByDefault(o.Placement)), 1)
	}

	for _, d := range a.Dynamics {
		name := d.Kind.String()
		if _, ok := score.ParseDynamics(name); !ok {
			r.warnUnknown("dynamics", d.Kind, pos)
			m.token(placeholder("dynamics"), 1)
			continue
		}
		m.token(direct(`\`+name, d.Placement), 1)
	}

	for _, w := range a.Words {
		markup := wordsMarkup(w)
		m.token(direct(markup, aboveByDefault(w.Placement)), max(1, len(markup)/4))
	}

	for _, s := range a.Slurs {
		tok, ok := slurTokens[s]
		if !ok {
			r.warnUnknown("slur", s, pos)
			continue
		}
		if tok != "" {
			m.token(tok, 1)
		}
	}

	for _, w := range a.Wedges {
		tok, ok := wedgeTokens[w]
		if !ok {
			r.warnUnknown("wedge", w, pos)
			continue
		}
		m.token(tok, 1)
	}
}

func aboveByDefault(p score.Placement) score.Placement {
	if p == score.PlacementNone {
		return score.PlacementAbove
	}
	return p
}

func wordsMarkup(w score.Words) string {
	var sb strings.Builder
	sb.WriteString(`\markup { `)
	if w.Style == score.FontStyleItalic {
		sb.WriteString(`\italic `)
	}
	if w.Weight == score.FontWeightBold {
		sb.WriteString(`\bold `)
	}
	sb.WriteString(quote(text(w.Text)))
	sb.WriteString(" }")
	return sb.String()
}

// =============================================================================
// Directions
// =============================================================================

func (r *renderer) enterClef(v *score.Visit) error {
	c := v.Element().(score.Clef)
	name, ok := clefNames[c.Kind]
	if !ok {
		r.warnUnknown("clef", c.Kind, v.Pos())
	}
	r.st.music.line(`\clef ` + quote(name))
	return nil
}

func (r *renderer) enterKey(v *score.Visit) error {
	k := v.Element().(score.Key)
	mode, ok := keyModes[k.Mode]
	if !ok {
		r.warnUnknown("key mode", k.Mode, v.Pos())
		mode = keyModes[score.ModeMajor]
	}
	r.st.music.line(`\key ` + r.pitchName(k.Tonic, v.Pos()) + " " + mode)
	return nil
}

func (r *renderer) enterTime(v *score.Visit) error {
	t := v.Element().(score.Time)
	if t.Beats <= 0 || t.BeatType <= 0 {
		r.warnUnknown("time signature", fmt.Sprintf("%d/%d", t.Beats, t.BeatType), v.Pos())
		r.st.music.line(placeholder("time"))
		return nil
	}
	line := fmt.Sprintf(`\time %d/%d`, t.Beats, t.BeatType)
	if r.opts.NumericTime {
		line = `\numericTimeSignature ` + line
	}
	r.st.music.line(line)
	return nil
}

func (r *renderer) enterTempo(v *score.Visit) error {
	t := v.Element().(score.Tempo)
	parts := []string{`\tempo`}
	if t.Indication != "" {
		parts = append(parts, quote(text(t.Indication)))
	}
	if t.PerMinute > 0 {
		parts = append(parts, durationString(t.Unit), "=", strconv.Itoa(t.PerMinute))
	}
	if len(parts) == 1 {
		return nil
	}
	r.st.music.line(strings.Join(parts, " "))
	return nil
}

func (r *renderer) enterBarline(v *score.Visit) error {
	b := v.Element().(score.Barline)
	m := r.st.music
	style, ok := barlineStyles[b.Style]
	if !ok {
		r.warnUnknown("barline style", b.Style, v.Pos())
		style = "|"
	}
	m.token(`\bar `+quote(style), 1)
	if b.Segno {
		m.token(segnoMark, 1)
	}
	if b.Coda {
		m.token(codaMark, 1)
	}
	return nil
}

func (r *renderer) enterBarCheck(v *score.Visit) error {
	bc := v.Element().(score.BarCheck)
	m := r.st.music
	m.token("|", 1)
	if bc.NextBar > 0 {
		m.comment(strconv.Itoa(bc.NextBar))
	}
	m.breakLine()
	return nil
}

func (r *renderer) enterBarNumberCheck(v *score.Visit) error {
	bn := v.Element().(score.BarNumberCheck)
	m := r.st.music
	m.line(fmt.Sprintf(`\barNumberCheck #%d`, bn.Number))
	m.breakLine()
	return nil
}

func (r *renderer) enterBreak(v *score.Visit) error {
	br := v.Element().(score.Break)
	m := r.st.music
	m.token(`\break`, 1)
	if br.NextBar > 0 {
		m.comment(strconv.Itoa(br.NextBar))
	}
	m.breakLine()
	r.st.lyrics.width = 0
	return nil
}

func (r *renderer) enterOctaveShift(v *score.Visit) error {
	o := v.Element().(score.OctaveShift)
	n, ok := ottavaValue(o)
	if !ok {
		r.warnUnknown("octave shift", fmt.Sprintf("%s %d", o.Kind, o.Size), v.Pos())
		r.st.music.token(placeholder("ottava"), 1)
		return nil
	}
	r.st.music.token(fmt.Sprintf(`\ottava #%d`, n), 1)
	return nil
}

func (r *renderer) enterRehearsal(v *score.Visit) error {
	rh := v.Element().(score.Rehearsal)
	r.st.music.token(`\mark `+quote(text(rh.Text)), 1)
	return nil
}

func (r *renderer) enterPedal(v *score.Visit) error {
	p := v.Element().(score.Pedal)
	tok, ok := pedalTokens[p.Kind]
	if !ok {
		r.warnUnknown("pedal", p.Kind, v.Pos())
		return nil
	}
	if tok != "" {
		r.st.music.token(tok, 1)
	}
	return nil
}

// mark returns a rule writing a fixed token.
func (r *renderer) mark(tok string) func(*score.Visit) error {
	return func(*score.Visit) error {
		r.st.music.token(tok, 1)
		return nil
	}
}
