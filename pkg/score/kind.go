package score

import "fmt"

// Kind identifies the type of a node in the tree.
type Kind uint8

// Node kinds. The order is the order used by Rules tables.
const (
	KindScore Kind = iota
	KindHeader
	KindVariable
	KindPaper
	KindLayout
	KindPartGroup
	KindPart
	KindStaff
	KindVoice
	KindVoiceChunk
	KindMeasure
	KindNote
	KindChord
	KindTuplet
	KindGraceNotes
	KindRepeat
	KindRepeatEnding
	KindLyrics
	KindLyricsChunk
	KindClef
	KindKey
	KindTime
	KindTempo
	KindBarline
	KindBarCheck
	KindBarNumberCheck
	KindBreak
	KindOctaveShift
	KindRehearsal
	KindSegno
	KindCoda
	KindEyeglasses
	KindPedal
	KindComment

	// NumKinds is the number of node kinds.
	NumKinds int = iota
)

var kindNames = [NumKinds]string{
	KindScore:          "Score",
	KindHeader:         "Header",
	KindVariable:       "Variable",
	KindPaper:          "Paper",
	KindLayout:         "Layout",
	KindPartGroup:      "PartGroup",
	KindPart:           "Part",
	KindStaff:          "Staff",
	KindVoice:          "Voice",
	KindVoiceChunk:     "VoiceChunk",
	KindMeasure:        "Measure",
	KindNote:           "Note",
	KindChord:          "Chord",
	KindTuplet:         "Tuplet",
	KindGraceNotes:     "GraceNotes",
	KindRepeat:         "Repeat",
	KindRepeatEnding:   "RepeatEnding",
	KindLyrics:         "Lyrics",
	KindLyricsChunk:    "LyricsChunk",
	KindClef:           "Clef",
	KindKey:            "Key",
	KindTime:           "Time",
	KindTempo:          "Tempo",
	KindBarline:        "Barline",
	KindBarCheck:       "BarCheck",
	KindBarNumberCheck: "BarNumberCheck",
	KindBreak:          "Break",
	KindOctaveShift:    "OctaveShift",
	KindRehearsal:      "Rehearsal",
	KindSegno:          "Segno",
	KindCoda:           "Coda",
	KindEyeglasses:     "Eyeglasses",
	KindPedal:          "Pedal",
	KindComment:        "Comment",
}

// String returns the kind name.
func (k Kind) String() string {
	if int(k) < NumKinds {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", k)
}

// Kinds returns every node kind in declaration order.
func Kinds() []Kind {
	kinds := make([]Kind, NumKinds)
	for i := range kinds {
		kinds[i] = Kind(i)
	}
	return kinds
}

// IsDirection reports whether k is a measure-level direction rather than a
// playable element.
func (k Kind) IsDirection() bool {
	switch k {
	case KindClef, KindKey, KindTime, KindTempo, KindBarline, KindBarCheck,
		KindBarNumberCheck, KindBreak, KindOctaveShift, KindRehearsal,
		KindSegno, KindCoda, KindEyeglasses, KindPedal, KindComment:
		return true
	default:
		return false
	}
}

// allowedChildren lists the kinds a node of a given kind may own.
var allowedChildren = map[Kind][]Kind{
	KindScore:        {KindHeader, KindVariable, KindPaper, KindLayout, KindPartGroup, KindComment},
	KindHeader:       {KindVariable},
	KindLayout:       {KindVariable},
	KindPartGroup:    {KindPartGroup, KindPart},
	KindPart:         {KindStaff},
	KindStaff:        {KindVoice},
	KindVoice:        {KindVoiceChunk, KindLyrics},
	KindVoiceChunk:   {KindMeasure, KindRepeat},
	KindRepeat:       {KindMeasure, KindRepeatEnding},
	KindRepeatEnding: {KindMeasure},
	KindChord:        {KindNote},
	KindTuplet:       {KindNote, KindChord},
	KindGraceNotes:   {KindNote},
	KindLyrics:       {KindLyricsChunk},
	KindMeasure: {
		KindNote, KindChord, KindTuplet, KindGraceNotes,
		KindClef, KindKey, KindTime, KindTempo, KindBarline, KindBarCheck,
		KindBarNumberCheck, KindBreak, KindOctaveShift, KindRehearsal,
		KindSegno, KindCoda, KindEyeglasses, KindPedal, KindComment,
	},
}

// CanContain reports whether a node of kind parent may own a child of kind child.
func CanContain(parent, child Kind) bool {
	for _, k := range allowedChildren[parent] {
		if k == child {
			return true
		}
	}
	return false
}
