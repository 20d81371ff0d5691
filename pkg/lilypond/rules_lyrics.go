package lilypond

import (
	"github.com/kant/libmusicxml/pkg/score"
)

// hasLyricsText reports whether a stanza carries any syllable text.
func (r *renderer) hasLyricsText(id score.NodeID) bool {
	for _, c := range r.tree.ChildrenOf(id, score.KindLyricsChunk) {
		ch, _ := score.As[score.LyricsChunk](r.tree, c)
		switch ch.Kind {
		case score.SyllableSingle, score.SyllableBegin, score.SyllableMiddle, score.SyllableEnd:
			if ch.Text != "" {
				return true
			}
		}
	}
	return false
}

func (r *renderer) enterLyrics(v *score.Visit) error {
	r.st.lyricsOpen = false
	if r.opts.NoLyrics || !r.hasLyricsText(v.ID) {
		return nil
	}
	l := r.st.lyrics
	l.line(r.tree.LyricsName(v.ID) + ` = \lyricmode {`)
	l.indent()
	l.width = 0
	r.st.lyricsOpen = true
	return nil
}

func (r *renderer) exitLyrics(*score.Visit) error {
	if !r.st.lyricsOpen {
		return nil
	}
	l := r.st.lyrics
	l.breakLine()
	l.dedent()
	l.line("}")
	l.blank()
	r.st.lyricsOpen = false
	return nil
}

func (r *renderer) enterLyricsChunk(v *score.Visit) error {
	if !r.st.lyricsOpen {
		return nil
	}
	ch := v.Element().(score.LyricsChunk)
	l := r.st.lyrics
	syllable := quoteIfNonAlpha(text(ch.Text))

	switch ch.Kind {
	case score.SyllableSingle, score.SyllableBegin:
		l.token(syllable, 1)
	case score.SyllableMiddle, score.SyllableEnd:
		l.token("-- "+syllable, 1)
	case score.SyllableSkip:
		l.token(`\skip`+durationString(ch.Duration), 1)
	case score.SyllableSlur:
		l.token(blockComment("slur "+quote(text(ch.Text))), 1)
	case score.SyllableTied:
		l.token(blockComment("~ "+quote(text(ch.Text))), 1)
	case score.SyllableSlurBeyondEnd:
	case score.SyllableBarCheck:
		l.token("|", 1)
		if ch.Text != "" {
			l.token(blockComment(text(ch.Text)), 0)
		}
		l.breakLine()
	case score.SyllableBreak:
		l.token(blockComment("break "+quote(text(ch.Text))), 0)
		l.breakLine()
	default:
		r.warnUnknown("syllable kind", ch.Kind, v.Pos())
		l.token(placeholder("syllable"), 1)
	}
	return nil
}
