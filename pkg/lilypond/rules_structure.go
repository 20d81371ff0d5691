package lilypond

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/kant/libmusicxml/pkg/score"
)

const (
	headerFieldWidth = 18
	paperFieldWidth  = 13
)

// =============================================================================
// Preamble and metadata
// =============================================================================

func (r *renderer) enterPreamble(v *score.Visit) error {
	m := r.st.music
	m.line(`\version ` + quote(r.opts.Version))
	if r.lang.name != DefaultLanguage {
		m.line(`\language ` + quote(r.lang.name))
	}
	if s := v.Element().(score.Score); r.opts.Comments && s.Source != "" {
		m.line("% source: " + s.Source)
	}
	m.blank()
	return nil
}

// Metadata rules are shared by both walks and only write outside the
// score block.

func (r *renderer) enterHeader(*score.Visit) error {
	if r.st.inScoreBlock {
		return nil
	}
	r.st.music.line(`\header {`)
	r.st.music.indent()
	r.st.inHeader = true
	return nil
}

func (r *renderer) exitHeader(*score.Visit) error {
	if r.st.inScoreBlock {
		return nil
	}
	m := r.st.music
	m.dedent()
	m.line("}")
	m.blank()
	r.st.inHeader = false
	return nil
}

func (r *renderer) enterVariable(v *score.Visit) error {
	if r.st.inScoreBlock {
		return nil
	}
	vr := v.Element().(score.Variable)
	width := len(vr.Name)
	if r.st.inHeader {
		width = headerFieldWidth
	}
	value := vr.Value
	if vr.Quoted {
		value = quote(text(value))
	}
	prefix := ""
	if vr.Commented {
		prefix = "%"
	}
	r.st.music.line(fmt.Sprintf("%s%-*s = %s%s", prefix, width, vr.Name, value, vr.Unit))
	return nil
}

func (r *renderer) enterPaper(v *score.Visit) error {
	if r.st.inScoreBlock {
		return nil
	}
	p := v.Element().(score.Paper)
	m := r.st.music
	m.line(`\paper {`)
	m.indent()

	field := func(name, value string) {
		m.line(fmt.Sprintf("%-*s = %s", paperFieldWidth, name, value))
	}
	cm := func(name string, value float64) {
		if value > 0 {
			field(name, strconv.FormatFloat(value, 'f', -1, 64)+`\cm`)
		}
	}
	cm("paper-width", p.Width)
	cm("paper-height", p.Height)
	cm("top-margin", p.TopMargin)
	cm("bottom-margin", p.BottomMargin)
	cm("left-margin", p.LeftMargin)
	cm("right-margin", p.RightMargin)
	field("indent", `1.5\cm`)
	field("short-indent", `0\cm`)
	m.line("%page-count = 1")
	m.line("%system-count = 1")

	m.dedent()
	m.line("}")
	m.blank()
	return nil
}

func (r *renderer) enterLayout(*score.Visit) error {
	if r.st.inScoreBlock {
		return nil
	}
	r.st.music.line(`\layout {`)
	r.st.music.indent()
	return nil
}

func (r *renderer) exitLayout(*score.Visit) error {
	if r.st.inScoreBlock {
		return nil
	}
	m := r.st.music
	m.dedent()
	m.line("}")
	m.blank()
	return nil
}

func (r *renderer) enterComment(v *score.Visit) error {
	if r.st.inScoreBlock {
		return nil
	}
	c := v.Element().(score.Comment)
	r.st.music.line("% " + text(c.Text))
	return nil
}

// =============================================================================
// Voice and lyrics variables
// =============================================================================

func (r *renderer) enterVoice(v *score.Visit) error {
	r.st.startVoice()
	m := r.st.music
	name := r.tree.VoiceName(v.ID)
	if r.opts.AbsoluteOctaves {
		m.line(name + " = {")
	} else {
		m.line(name + ` = \relative {`)
	}
	m.indent()
	return nil
}

func (r *renderer) exitVoice(*score.Visit) error {
	m := r.st.music
	m.breakLine()
	m.dedent()
	m.line("}")
	m.blank()

	// Lyrics of the voice were collected in their own stream.
	if lyrics := r.st.lyrics.String(); lyrics != "" {
		m.output.WriteString(lyrics)
		m.blank()
	}
	r.st.lyrics.reset()
	return nil
}

func (r *renderer) enterVoiceChunk(*score.Visit) error {
	r.st.pushChunk()
	if r.opts.Comments {
		r.st.music.line("{ % start of voice chunk")
		r.st.music.indent()
	}
	return nil
}

func (r *renderer) exitVoiceChunk(*score.Visit) error {
	r.st.popChunk()
	if r.opts.Comments {
		m := r.st.music
		m.breakLine()
		m.dedent()
		m.line("} % end of voice chunk")
	}
	return nil
}

func (r *renderer) enterMeasure(v *score.Visit) error {
	ms := v.Element().(score.Measure)
	m := r.st.music
	r.st.pushChunk()
	if r.opts.Comments {
		m.line(fmt.Sprintf("{ %% start of measure %d", ms.Number))
		m.indent()
	}
	switch ms.Kind {
	case score.MeasureIncompleteLeft:
		m.line(`\partial ` + durationString(ms.Length))
	case score.MeasureRegular, score.MeasureIncompleteRight:
	default:
		r.warnUnknown("measure kind", ms.Kind, v.Pos())
	}
	return nil
}

func (r *renderer) exitMeasure(v *score.Visit) error {
	r.st.popChunk()
	if r.opts.Comments {
		ms := v.Element().(score.Measure)
		m := r.st.music
		m.breakLine()
		m.dedent()
		m.line(fmt.Sprintf("} %% end of measure %d", ms.Number))
	}
	return nil
}

// =============================================================================
// Repeats
// =============================================================================

func (r *renderer) enterRepeat(v *score.Visit) error {
	endings := r.tree.CountOf(v.ID, score.KindRepeatEnding)
	volta := endings
	if volta == 0 {
		volta = 2
	}
	m := r.st.music
	m.breakLine()
	m.line(r.commented(fmt.Sprintf(`\repeat volta %d {`, volta), "start of repeat"))
	m.indent()
	r.st.pushRepeat(endings)
	return nil
}

func (r *renderer) exitRepeat(v *score.Visit) error {
	q := r.st.popRepeat()
	if q == nil {
		return structureError(v, "repeat exited without being entered")
	}
	if err := q.finish(); err != nil {
		return structureError(v, "%v", err)
	}
	m := r.st.music
	m.breakLine()
	if q.endings == 0 {
		m.dedent()
		m.line(r.commented("}", "end of repeat"))
	}
	return nil
}

func (r *renderer) enterRepeatEnding(v *score.Visit) error {
	e := v.Element().(score.RepeatEnding)
	q := r.st.topRepeat()
	if q == nil {
		return structureError(v, "ending %d outside a repeat", e.Position)
	}
	open, err := q.enterEnding(e.Position)
	if err != nil {
		return structureError(v, "%v", err)
	}

	m := r.st.music
	m.breakLine()
	if open {
		m.dedent()
		m.line(r.commented("}", "end of repeat"))
		m.line(r.commented(`\alternative {`, "start of alternative"))
		m.indent()
	}
	m.line("{")
	m.indent()
	return nil
}

func (r *renderer) exitRepeatEnding(v *score.Visit) error {
	e := v.Element().(score.RepeatEnding)
	q := r.st.topRepeat()
	if q == nil {
		return structureError(v, "ending %d outside a repeat", e.Position)
	}

	m := r.st.music
	m.breakLine()
	m.dedent()
	m.line("}")

	closed, err := q.exitEnding(e.Position)
	if err != nil {
		return structureError(v, "%v", err)
	}
	if closed {
		m.dedent()
		m.line(r.commented("}", "end of alternative"))
	}
	return nil
}

// =============================================================================
// Score block
// =============================================================================

func (r *renderer) enterScoreBlock(*score.Visit) error {
	m := r.st.music
	m.blank()
	m.line(`\score {`)
	m.indent()
	r.st.inScoreBlock = true
	m.line("<<")
	m.indent()
	return nil
}

func (r *renderer) exitScoreBlock(*score.Visit) error {
	m := r.st.music
	m.dedent()
	m.line(">>")
	m.blank()
	m.line(`\layout {`)
	m.line("}")
	if r.opts.Midi {
		m.blank()
		m.line(`\midi {`)
		m.line("}")
	}
	m.dedent()
	m.line("}")
	r.st.inScoreBlock = false
	return nil
}

// groupBracketed reports whether a part group writes its own bracket.
// The top-level group and groups with a single child are transparent.
func (r *renderer) groupBracketed(id score.NodeID) bool {
	if r.tree.Kind(r.tree.Parent(id)) == score.KindScore {
		return false
	}
	return len(r.tree.Children(id)) > 1
}

func (r *renderer) enterPartGroup(v *score.Visit) error {
	if !r.groupBracketed(v.ID) {
		return nil
	}
	pg := v.Element().(score.PartGroup)
	ctx, ok := groupContext(pg)
	if !ok {
		r.warnUnknown("group symbol", pg.Symbol, v.Pos())
	}
	open := "<<"
	if ctx != "" {
		open = `\new ` + ctx + " <<"
	}

	m := r.st.music
	m.line(r.commented(open, "part group "+pg.Name))
	m.indent()
	if ctx != "" && pg.InstrumentName != "" {
		m.line(`\set ` + ctx + `.instrumentName = ` + quote(text(pg.InstrumentName)))
	}
	return nil
}

func (r *renderer) exitPartGroup(v *score.Visit) error {
	if !r.groupBracketed(v.ID) {
		return nil
	}
	r.st.music.dedent()
	r.st.music.line(">>")
	return nil
}

func (r *renderer) enterPart(v *score.Visit) error {
	if r.tree.CountOf(v.ID, score.KindStaff) <= 1 {
		return nil
	}
	part := v.Element().(score.Part)
	m := r.st.music
	m.line(r.commented(`\new StaffGroup <<`, "part "+part.ID))
	m.indent()
	r.instrumentNames("StaffGroup", part)
	return nil
}

func (r *renderer) exitPart(v *score.Visit) error {
	if r.tree.CountOf(v.ID, score.KindStaff) <= 1 {
		return nil
	}
	r.st.music.dedent()
	r.st.music.line(">>")
	return nil
}

func (r *renderer) instrumentNames(ctx string, part score.Part) {
	m := r.st.music
	if part.Name != "" {
		m.line(`\set ` + ctx + `.instrumentName = ` + quote(text(part.Name)))
	}
	if part.Abbreviation != "" {
		m.line(`\set ` + ctx + `.shortInstrumentName = ` + quote(text(part.Abbreviation)))
	}
}

// staffElided reports whether a staff is written without its own context:
// a regular staff holding a single voice. Voices without a staff share
// LilyPond's implicit one, so this only applies to single-staff scores.
func (r *renderer) staffElided(id score.NodeID, st score.Staff) bool {
	return st.Kind == score.StaffRegular &&
		r.tree.CountOf(id, score.KindVoice) == 1 &&
		r.staves == 1
}

// soleStaff reports whether the staff is the only one of its part.
func (r *renderer) soleStaff(staff score.NodeID) bool {
	return r.tree.CountOf(r.tree.Parent(staff), score.KindStaff) == 1
}

func (r *renderer) enterStaff(v *score.Visit) error {
	st := v.Element().(score.Staff)
	if r.staffElided(v.ID, st) {
		return nil
	}
	ctx, ok := staffContexts[st.Kind]
	if !ok {
		r.warnUnknown("staff kind", st.Kind, v.Pos())
		ctx = "Staff"
	}

	m := r.st.music
	m.line(r.commented(`\new `+ctx+" <<", "staff "+r.tree.StaffName(v.ID)))
	m.indent()
	r.st.inStaffBlock = true

	if r.soleStaff(v.ID) {
		part, _ := score.As[score.Part](r.tree, r.tree.Parent(v.ID))
		r.instrumentNames(ctx, part)
	}
	if st.Kind == score.StaffTablature && len(st.Tunings) > 0 {
		strs := make([]string, 0, len(st.Tunings))
		for _, p := range st.Tunings {
			strs = append(strs, r.absolutePitch(p, v.Pos()))
		}
		m.line(`\set ` + ctx + `.stringTunings = \stringTuning <` + strings.Join(strs, " ") + ">")
	}
	return nil
}

func (r *renderer) exitStaff(v *score.Visit) error {
	st := v.Element().(score.Staff)
	if r.staffElided(v.ID, st) {
		return nil
	}
	r.st.music.dedent()
	r.st.music.line(">>")
	r.st.inStaffBlock = false
	return nil
}

// useVoice writes the context that plays a voice variable.
func (r *renderer) useVoice(v *score.Visit) error {
	vo := v.Element().(score.Voice)
	staffID := r.tree.Parent(v.ID)
	staff, _ := score.As[score.Staff](r.tree, staffID)
	name := r.tree.VoiceName(v.ID)

	ctx := "Voice"
	if staff.Kind == score.StaffPercussion {
		ctx = "DrumVoice"
	}

	m := r.st.music
	m.line(fmt.Sprintf(`\context %s = %s <<`, ctx, quote(name)))
	m.indent()

	// An elided staff has no block of its own to carry the names.
	if !r.st.inStaffBlock && r.soleStaff(staffID) {
		part, _ := score.As[score.Part](r.tree, r.tree.Parent(staffID))
		r.instrumentNames("Staff", part)
	}
	if r.opts.NoAutoBeaming {
		m.line(`\set ` + ctx + `.autoBeaming = ##f`)
	}
	if staff.Kind == score.StaffRegular && r.tree.CountOf(staffID, score.KindVoice) > 1 {
		if dir, ok := voiceDirectives[vo.StaffRelative]; ok {
			m.line(dir)
		} else {
			r.warnUnknown("staff-relative voice", vo.StaffRelative, v.Pos())
		}
	}
	m.line(`\` + name)

	m.dedent()
	m.line(">>")
	return nil
}

func (r *renderer) useLyrics(v *score.Visit) error {
	if r.opts.NoLyrics || !r.hasLyricsText(v.ID) {
		return nil
	}
	m := r.st.music
	m.line(`\new Lyrics`)
	m.indent()
	m.line(`\lyricsto ` + quote(r.tree.VoiceName(r.tree.Parent(v.ID))))
	m.line(`\` + r.tree.LyricsName(v.ID))
	m.dedent()
	return nil
}
