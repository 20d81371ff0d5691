package lilypond

import "log/slog"

// Default option values.
const (
	DefaultVersion          = "2.24.0"
	DefaultLanguage         = "nederlands"
	DefaultTokensPerLine    = 10
	LineNumberTokensPerLine = 5
	DefaultLyricsPerLine    = 10
)

// Options controls the rendering.
type Options struct {
	AbsoluteOctaves  bool   // write every pitch with absolute octave marks
	Comments         bool   // annotate structural scopes with comments
	NoLyrics         bool   // omit lyrics variables and their uses
	NumericTime      bool   // \numericTimeSignature before \time
	Stems            bool   // emit \stemUp / \stemDown / \stemNeutral
	LineNumbers      bool   // annotate notes with their input line
	MaxTokensPerLine int    // soft wrap for music; 0 selects the default
	MaxLyricsPerLine int    // soft wrap for lyrics; 0 selects the default
	NoAutoBeaming    bool   // set autoBeaming = ##f in every voice
	Language         string // pitch-name language
	Version          string // LilyPond version written in \version
	Midi             bool   // add a \midi block to the score
	Logger           *slog.Logger
}

func (o Options) withDefaults() Options {
	if o.MaxTokensPerLine <= 0 {
		o.MaxTokensPerLine = DefaultTokensPerLine
		if o.LineNumbers {
			o.MaxTokensPerLine = LineNumberTokensPerLine
		}
	}
	if o.MaxLyricsPerLine <= 0 {
		o.MaxLyricsPerLine = DefaultLyricsPerLine
	}
	if o.Language == "" {
		o.Language = DefaultLanguage
	}
	if o.Version == "" {
		o.Version = DefaultVersion
	}
	if o.Logger == nil {
		o.Logger = slog.New(slog.DiscardHandler)
	}
	return o
}
