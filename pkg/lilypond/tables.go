package lilypond

import "github.com/kant/libmusicxml/pkg/score"

// =============================================================================
// Contexts
// =============================================================================

var staffContexts = map[score.StaffKind]string{
	score.StaffRegular:    "Staff",
	score.StaffTablature:  "TabStaff",
	score.StaffPercussion: "DrumStaff",
}

var voiceDirectives = map[int]string{
	1: `\voiceOne`,
	2: `\voiceTwo`,
	3: `\voiceThree`,
	4: `\voiceFour`,
}

// groupContext returns the context created for a part group, or "" for a
// plain simultaneous block.
func groupContext(g score.PartGroup) (string, bool) {
	switch g.Symbol {
	case score.GroupSymbolNone:
		return "", true
	case score.GroupSymbolBrace:
		if g.InstrumentName != "" {
			return "PianoStaff", true
		}
		return "GrandStaff", true
	case score.GroupSymbolBracket, score.GroupSymbolLine, score.GroupSymbolSquare:
		return "StaffGroup", true
	default:
		return "", false
	}
}

// =============================================================================
// Directions
// =============================================================================

var clefNames = map[score.ClefKind]string{
	score.ClefTreble:        "treble",
	score.ClefAlto:          "alto",
	score.ClefTenor:         "tenor",
	score.ClefBass:          "bass",
	score.ClefTrebleLine1:   "french",
	score.ClefTrebleMinus15: "treble_15",
	score.ClefTrebleMinus8:  "treble_8",
	score.ClefTreblePlus8:   "treble^8",
	score.ClefTreblePlus15:  "treble^15",
	score.ClefBassMinus15:   "bass_15",
	score.ClefBassMinus8:    "bass_8",
	score.ClefBassPlus8:     "bass^8",
	score.ClefBassPlus15:    "bass^15",
	score.ClefSoprano:       "soprano",
	score.ClefMezzoSoprano:  "mezzosoprano",
	score.ClefBaritone:      "baritone",
	score.ClefVarBaritone:   "varbaritone",
	score.ClefSubBass:       "subbass",
	score.ClefTablature4:    "tab",
	score.ClefTablature5:    "tab",
	score.ClefTablature6:    "tab",
	score.ClefTablature7:    "tab",
	score.ClefPercussion:    "percussion",
}

var keyModes = map[score.KeyMode]string{
	score.ModeMajor: `\major`,
	score.ModeMinor: `\minor`,
}

var barlineStyles = map[score.BarlineStyle]string{
	score.BarlineRegular:    "|",
	score.BarlineDotted:     ";",
	score.BarlineDashed:     "!",
	score.BarlineHeavy:      ".",
	score.BarlineLightLight: "||",
	score.BarlineLightHeavy: "|.",
	score.BarlineHeavyLight: ".|",
	score.BarlineHeavyHeavy: "..",
	score.BarlineTick:       "'",
	score.BarlineShort:      ",",
	score.BarlineNone:       "",
}

const (
	segnoMark = `\mark \markup { \musicglyph #"scripts.segno" }`
	codaMark  = `\mark \markup { \musicglyph #"scripts.coda" }`
)

var pedalTokens = map[score.PedalKind]string{
	score.PedalStart:    `<>\sustainOn`,
	score.PedalContinue: "",
	score.PedalChange:   `<>\sustainOff\sustainOn`,
	score.PedalStop:     `<>\sustainOff`,
}

// ottavaValue returns the \ottava argument of an octave shift.
func ottavaValue(o score.OctaveShift) (int, bool) {
	steps := 1
	switch o.Size {
	case 8, 0:
	case 15:
		steps = 2
	default:
		return 0, false
	}
	switch o.Kind {
	case score.OctaveShiftUp:
		return -steps, true
	case score.OctaveShiftDown:
		return steps, true
	case score.OctaveShiftStop:
		return 0, true
	default:
		return 0, false
	}
}

// =============================================================================
// Attachments
// =============================================================================

// Tokens starting with '-' take their direction in place of the dash; the
// others are prefixed with a direction when one is given.
var articulationTokens = map[score.ArticulationKind]string{
	score.Accent:         "->",
	score.Breathe:        `\breathe`,
	score.Caesura:        `\caesura`,
	score.Spiccato:       `\staccatissimo`,
	score.Staccato:       "-.",
	score.Staccatissimo:  "-!",
	score.Stress:         `\stress`,
	score.Unstress:       `\unstress`,
	score.DetachedLegato: "-_",
	score.StrongAccent:   "-^",
	score.Tenuto:         "--",
	score.Fermata:        `\fermata`,
	score.Arpeggiato:     `\arpeggio`,
	score.Doit:           `\bendAfter #+4`,
	score.Falloff:        `\bendAfter #-4`,
	score.Plop:           `\plop`,
	score.Scoop:          `\scoop`,
}

// undirected articulations are standalone music and never take a direction.
var undirected = map[score.ArticulationKind]bool{
	score.Breathe: true,
	score.Caesura: true,
}

var ornamentTokens = map[score.OrnamentKind]string{
	score.Trill:               `\trill`,
	score.WavyLine:            `\startTrillSpan`,
	score.Turn:                `\turn`,
	score.InvertedTurn:        `\reverseturn`,
	score.DelayedTurn:         `\turn`,
	score.DelayedInvertedTurn: `\reverseturn`,
	score.VerticalTurn:        `\turn`,
	score.Mordent:             `\mordent`,
	score.InvertedMordent:     `\prall`,
	score.Schleifer:           `\slashturn`,
	score.Shake:               `\prallprall`,
}

var accidentalMarkups = map[score.AccidentalMark]string{
	score.AccidentalMarkNatural: `\markup { \natural }`,
	score.AccidentalMarkSharp:   `\markup { \sharp }`,
	score.AccidentalMarkFlat:    `\markup { \flat }`,
}

var slurTokens = map[score.SlurKind]string{
	score.SlurStart:    "(",
	score.SlurContinue: "",
	score.SlurStop:     ")",
}

var wedgeTokens = map[score.WedgeKind]string{
	score.WedgeCrescendo:  `\<`,
	score.WedgeDiminuendo: `\>`,
	score.WedgeStop:       `\!`,
}

var stemTokens = map[score.StemKind]string{
	score.StemNeutral: `\stemNeutral`,
	score.StemUp:      `\stemUp`,
	score.StemDown:    `\stemDown`,
	score.StemNone:    "",
	score.StemDouble:  "",
}

// direct applies a placement to an articulation-like token.
func direct(tok string, p score.Placement) string {
	var dir byte
	switch p {
	case score.PlacementAbove:
		dir = '^'
	case score.PlacementBelow:
		dir = '_'
	default:
		return tok
	}
	if len(tok) > 0 && tok[0] == '-' {
		return string(dir) + tok[1:]
	}
	return string(dir) + tok
}
