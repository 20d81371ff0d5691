package lilypond

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"unicode"

	"github.com/kant/libmusicxml/pkg/score"
	"golang.org/x/text/unicode/norm"
)

var (
	// ErrNilTree is returned when rendering a nil tree.
	ErrNilTree = errors.New("lilypond: nil score tree")
	// ErrUnknownLanguage is returned for an unsupported pitch-name language.
	ErrUnknownLanguage = errors.New("lilypond: unknown pitch language")
)

// Render writes the LilyPond source of t to w. Nothing is written when
// rendering fails.
func Render(w io.Writer, t *score.Tree, opts Options) error {
	out, err := RenderString(t, opts)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, out)
	return err
}

// RenderString returns the LilyPond source of t.
//
// A structural inconsistency in t aborts the render with a
// *score.StructureError. Values the renderer does not know are written as
// placeholders and logged at warn level.
func RenderString(t *score.Tree, opts Options) (string, error) {
	if t == nil {
		return "", ErrNilTree
	}
	opts = opts.withDefaults()
	lang, ok := languages[opts.Language]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownLanguage, opts.Language)
	}
	if err := score.Validate(t); err != nil {
		return "", err
	}

	r := &renderer{
		tree: t,
		opts: opts,
		log:  opts.Logger,
		lang: lang,
		st:   newState(opts),

		staves: t.Stats()[score.KindStaff],
	}
	r.log.Debug("rendering score",
		"nodes", t.Len(),
		"absolute", opts.AbsoluteOctaves,
		"language", lang.name,
	)

	defs := r.definitionRules()
	if err := score.Walk(t, &defs); err != nil {
		return "", err
	}
	block := r.scoreBlockRules()
	if err := score.Walk(t, &block); err != nil {
		return "", err
	}
	return r.st.music.String(), nil
}

type renderer struct {
	tree *score.Tree
	opts Options
	log  *slog.Logger
	lang *pitchLanguage
	st   *state

	staves int // staff count of the whole score
}

// definitionRules returns the rules of the first walk, which writes the
// preamble and the voice and lyrics variables.
func (r *renderer) definitionRules() score.Rules {
	var rules score.Rules
	for _, k := range score.Kinds() {
		rules[k] = r.definitionRule(k)
	}
	return rules
}

func (r *renderer) definitionRule(k score.Kind) score.Rule {
	switch k {
	case score.KindScore:
		return score.Rule{Enter: r.enterPreamble}
	case score.KindHeader:
		return score.Rule{Enter: r.enterHeader, Exit: r.exitHeader}
	case score.KindVariable:
		return score.Rule{Enter: r.enterVariable}
	case score.KindPaper:
		return score.Rule{Enter: r.enterPaper}
	case score.KindLayout:
		return score.Rule{Enter: r.enterLayout, Exit: r.exitLayout}
	case score.KindComment:
		return score.Rule{Enter: r.enterComment}
	case score.KindPartGroup, score.KindPart, score.KindStaff:
		return score.Rule{}
	case score.KindVoice:
		return score.Rule{Enter: r.enterVoice, Exit: r.exitVoice}
	case score.KindVoiceChunk:
		return score.Rule{Enter: r.enterVoiceChunk, Exit: r.exitVoiceChunk}
	case score.KindMeasure:
		return score.Rule{Enter: r.enterMeasure, Exit: r.exitMeasure}
	case score.KindNote:
		return score.Rule{Enter: r.enterNote, Exit: r.exitNote}
	case score.KindChord:
		return score.Rule{Enter: r.enterChord, Exit: r.exitChord}
	case score.KindTuplet:
		return score.Rule{Enter: r.enterTuplet, Exit: r.closeGroup}
	case score.KindGraceNotes:
		return score.Rule{Enter: r.enterGraceNotes, Exit: r.closeGroup}
	case score.KindRepeat:
		return score.Rule{Enter: r.enterRepeat, Exit: r.exitRepeat}
	case score.KindRepeatEnding:
		return score.Rule{Enter: r.enterRepeatEnding, Exit: r.exitRepeatEnding}
	case score.KindLyrics:
		return score.Rule{Enter: r.enterLyrics, Exit: r.exitLyrics}
	case score.KindLyricsChunk:
		return score.Rule{Enter: r.enterLyricsChunk}
	case score.KindClef:
		return score.Rule{Enter: r.enterClef}
	case score.KindKey:
		return score.Rule{Enter: r.enterKey}
	case score.KindTime:
		return score.Rule{Enter: r.enterTime}
	case score.KindTempo:
		return score.Rule{Enter: r.enterTempo}
	case score.KindBarline:
		return score.Rule{Enter: r.enterBarline}
	case score.KindBarCheck:
		return score.Rule{Enter: r.enterBarCheck}
	case score.KindBarNumberCheck:
		return score.Rule{Enter: r.enterBarNumberCheck}
	case score.KindBreak:
		return score.Rule{Enter: r.enterBreak}
	case score.KindOctaveShift:
		return score.Rule{Enter: r.enterOctaveShift}
	case score.KindRehearsal:
		return score.Rule{Enter: r.enterRehearsal}
	case score.KindSegno:
		return score.Rule{Enter: r.mark(segnoMark)}
	case score.KindCoda:
		return score.Rule{Enter: r.mark(codaMark)}
	case score.KindEyeglasses:
		return score.Rule{Enter: r.mark(`\eyeglasses`)}
	case score.KindPedal:
		return score.Rule{Enter: r.enterPedal}
	default:
		panic("lilypond: no definition rule for " + k.String())
	}
}

// scoreBlockRules returns the rules of the second walk, which writes the
// \score block.
func (r *renderer) scoreBlockRules() score.Rules {
	var rules score.Rules
	for _, k := range score.Kinds() {
		rules[k] = r.scoreBlockRule(k)
	}
	return rules
}

func (r *renderer) scoreBlockRule(k score.Kind) score.Rule {
	switch k {
	case score.KindScore:
		return score.Rule{Enter: r.enterScoreBlock, Exit: r.exitScoreBlock}
	case score.KindHeader:
		return score.Rule{Enter: r.enterHeader, Exit: r.exitHeader}
	case score.KindVariable:
		return score.Rule{Enter: r.enterVariable}
	case score.KindPaper:
		return score.Rule{Enter: r.enterPaper}
	case score.KindLayout:
		return score.Rule{Enter: r.enterLayout, Exit: r.exitLayout}
	case score.KindComment:
		return score.Rule{Enter: r.enterComment}
	case score.KindPartGroup:
		return score.Rule{Enter: r.enterPartGroup, Exit: r.exitPartGroup}
	case score.KindPart:
		return score.Rule{Enter: r.enterPart, Exit: r.exitPart}
	case score.KindStaff:
		return score.Rule{Enter: r.enterStaff, Exit: r.exitStaff}
	case score.KindVoice:
		return score.Rule{Enter: r.useVoice}
	case score.KindLyrics:
		return score.Rule{Enter: r.useLyrics}
	case score.KindVoiceChunk, score.KindMeasure, score.KindNote, score.KindChord,
		score.KindTuplet, score.KindGraceNotes, score.KindRepeat, score.KindRepeatEnding,
		score.KindLyricsChunk:
		return score.Rule{}
	case score.KindClef, score.KindKey, score.KindTime, score.KindTempo, score.KindBarline,
		score.KindBarCheck, score.KindBarNumberCheck, score.KindBreak, score.KindOctaveShift,
		score.KindRehearsal, score.KindSegno, score.KindCoda, score.KindEyeglasses, score.KindPedal:
		return score.Rule{}
	default:
		panic("lilypond: no score block rule for " + k.String())
	}
}

// warnUnknown logs a value the renderer has no token for.
func (r *renderer) warnUnknown(what string, value any, pos score.Position) {
	r.log.Warn("unknown value, writing placeholder",
		"kind", what,
		"value", value,
		"line", pos.Line,
	)
}

// placeholder is the visible token written for an unknown value.
func placeholder(what string) string {
	return blockComment("unknown " + what)
}

var commentCloser = strings.NewReplacer("%}", "% }")

// blockComment wraps s in %{ %}. A "%}" inside s would end the comment
// early and is broken up.
func blockComment(s string) string {
	return "%{ " + commentCloser.Replace(s) + " %}"
}

func structureError(v *score.Visit, format string, args ...any) error {
	return &score.StructureError{Kind: v.Kind(), Pos: v.Pos(), Msg: fmt.Sprintf(format, args...)}
}

// commented pads text and appends a comment when comments are enabled.
func (r *renderer) commented(text, comment string) string {
	if !r.opts.Comments {
		return text
	}
	return fmt.Sprintf("%-30s%% %s", text, comment)
}

var stringEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`)

// quote returns s as a LilyPond string literal.
func quote(s string) string {
	return `"` + stringEscaper.Replace(s) + `"`
}

// quoteIfNonAlpha quotes s unless it consists of letters only.
func quoteIfNonAlpha(s string) string {
	if s == "" {
		return `""`
	}
	for _, c := range s {
		if !unicode.IsLetter(c) {
			return quote(s)
		}
	}
	return s
}

// text normalises user text before it is written.
func text(s string) string {
	return norm.NFC.String(s)
}
