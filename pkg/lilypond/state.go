package lilypond

import (
	"github.com/kant/libmusicxml/pkg/score"
)

// state is the mutable context of one render pass.
type state struct {
	music  *stream
	lyrics *stream

	// chunks holds one playable-element counter per open voice chunk or measure.
	chunks []int

	reference    score.Pitch
	hasReference bool

	stem score.StemKind

	inHeader     bool
	inStaffBlock bool
	inScoreBlock bool

	// chord bookkeeping while a chord's members render
	inChord         bool
	chordFirst      score.Pitch
	chordHasMembers bool

	// lyricsOpen is false while a stanza is being skipped.
	lyricsOpen bool

	repeats []*sequencer
}

func newState(opts Options) *state {
	return &state{
		music:  newStream(opts.MaxTokensPerLine),
		lyrics: newStream(opts.MaxLyricsPerLine),
		stem:   score.StemNeutral,
	}
}

// startVoice resets the per-voice context.
func (s *state) startVoice() {
	s.hasReference = false
	s.stem = score.StemNeutral
	s.chunks = s.chunks[:0]
	s.music.width = 0
	s.lyrics.width = 0
}

func (s *state) pushChunk() {
	s.chunks = append(s.chunks, 0)
}

func (s *state) popChunk() {
	if len(s.chunks) > 0 {
		s.chunks = s.chunks[:len(s.chunks)-1]
	}
}

// countPlayable records a note or chord in the innermost scope and reports
// whether it is the first one there.
func (s *state) countPlayable() bool {
	if len(s.chunks) == 0 {
		return false
	}
	top := len(s.chunks) - 1
	s.chunks[top]++
	return s.chunks[top] == 1
}

func (s *state) setReference(p score.Pitch) {
	s.reference = p
	s.hasReference = true
}

func (s *state) pushRepeat(endings int) *sequencer {
	q := &sequencer{endings: endings}
	s.repeats = append(s.repeats, q)
	return q
}

func (s *state) topRepeat() *sequencer {
	if len(s.repeats) == 0 {
		return nil
	}
	return s.repeats[len(s.repeats)-1]
}

func (s *state) popRepeat() *sequencer {
	q := s.topRepeat()
	if q != nil {
		s.repeats = s.repeats[:len(s.repeats)-1]
	}
	return q
}
