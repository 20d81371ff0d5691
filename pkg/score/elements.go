package score

// Element is the payload of a node. The set of implementations is closed:
// every node kind has exactly one payload type.
type Element interface {
	NodeKind() Kind
	element()
}

// =============================================================================
// Score-level elements
// =============================================================================

// Score is the root payload.
type Score struct {
	Source string // input the model was built from, if any
}

// Header holds the bibliographic variables of a score.
type Header struct{}

// Variable is a named value, such as a header field or a layout setting.
type Variable struct {
	Name      string
	Value     string
	Quoted    bool
	Commented bool
	Unit      string // appended after the value, e.g. "\\cm"
}

// Paper holds page dimensions in centimetres. Zero means unset.
type Paper struct {
	Width        float64
	Height       float64
	TopMargin    float64
	BottomMargin float64
	LeftMargin   float64
	RightMargin  float64
}

// Layout holds layout settings as Variable children.
type Layout struct{}

// Comment is a free comment line.
type Comment struct {
	Text string
}

// =============================================================================
// Structural elements
// =============================================================================

// GroupSymbol is the bracket drawn at the left of a part group.
type GroupSymbol int

// Group symbols.
const (
	GroupSymbolNone GroupSymbol = iota
	GroupSymbolBrace
	GroupSymbolBracket
	GroupSymbolLine
	GroupSymbolSquare
)

var groupSymbolNames = []string{"none", "brace", "bracket", "line", "square"}

func (g GroupSymbol) String() string { return enumName(groupSymbolNames, int(g)) }

// ParseGroupSymbol converts a MusicXML group-symbol value.
func ParseGroupSymbol(s string) (GroupSymbol, bool) {
	i, ok := enumLookup(groupSymbolNames, s)
	return GroupSymbol(i), ok
}

// PartGroup groups parts and nested groups. A group whose parent is the
// Score is the top-level implicit group.
type PartGroup struct {
	Number         int
	Symbol         GroupSymbol
	Name           string
	InstrumentName string
}

// Part is one instrument.
type Part struct {
	ID           string
	Name         string
	Abbreviation string
}

// StaffKind selects the notation context of a staff.
type StaffKind int

// Staff kinds.
const (
	StaffRegular StaffKind = iota
	StaffTablature
	StaffPercussion
)

var staffKindNames = []string{"regular", "tablature", "percussion"}

func (k StaffKind) String() string { return enumName(staffKindNames, int(k)) }

// ParseStaffKind converts "regular", "tablature" or "percussion".
func ParseStaffKind(s string) (StaffKind, bool) {
	i, ok := enumLookup(staffKindNames, s)
	return StaffKind(i), ok
}

// Staff is one staff of a part. Tunings lists the open strings of a
// tablature staff from the lowest string up.
type Staff struct {
	Number  int
	Kind    StaffKind
	Tunings []Pitch
}

// Voice is one voice. Number is unique within the part; StaffRelative is
// the 1..4 position of the voice within its staff.
type Voice struct {
	Number        int
	StaffRelative int
}

// VoiceChunk groups consecutive measures and repeats of a voice.
type VoiceChunk struct{}

// MeasureKind tells whether a measure is complete.
type MeasureKind int

// Measure kinds.
const (
	MeasureRegular MeasureKind = iota
	MeasureIncompleteLeft
	MeasureIncompleteRight
)

var measureKindNames = []string{"regular", "incomplete-left", "incomplete-right"}

func (k MeasureKind) String() string { return enumName(measureKindNames, int(k)) }

// ParseMeasureKind converts a measure kind name.
func ParseMeasureKind(s string) (MeasureKind, bool) {
	i, ok := enumLookup(measureKindNames, s)
	return MeasureKind(i), ok
}

// Measure is one bar. Length is the actual length, used for pickups.
type Measure struct {
	Number int
	Kind   MeasureKind
	Length Duration
}

// Repeat is a repeated section. Its Measure children form the body and
// its RepeatEnding children the alternatives.
type Repeat struct{}

// RepeatEnding is one alternative ending. Position is 1-based.
type RepeatEnding struct {
	Position int
}

// =============================================================================
// Playable elements
// =============================================================================

// NoteKind is the role of a note.
type NoteKind int

// Note kinds.
const (
	NoteStandalone NoteKind = iota
	NoteGrace
	NoteRest
	NoteChordMember
	NoteTupletMember
)

var noteKindNames = []string{"standalone", "grace", "rest", "chord-member", "tuplet-member"}

func (k NoteKind) String() string { return enumName(noteKindNames, int(k)) }

// Note is a single note or rest.
type Note struct {
	Kind        NoteKind
	Pitch       Pitch
	Duration    Duration
	Rest        bool // tuplet members only; NoteRest is always a rest
	FullMeasure bool // a rest filling the whole measure
	TieStart    bool
	Stem        StemKind
	Beams       []Beam
	Attachments Attachments
}

// IsRest reports whether the note is silent.
func (n Note) IsRest() bool {
	return n.Kind == NoteRest || (n.Kind == NoteTupletMember && n.Rest)
}

// Chord is a simultaneity of member notes.
type Chord struct {
	Duration    Duration
	TieStart    bool
	Stem        StemKind
	Beams       []Beam
	Attachments Attachments
}

// Tuplet plays Actual notes in the time of Normal.
type Tuplet struct {
	Actual int
	Normal int
}

// GraceNotes groups grace notes before a principal note.
type GraceNotes struct {
	Slashed bool
}

// =============================================================================
// Lyrics
// =============================================================================

// Lyrics is one stanza attached to a voice.
type Lyrics struct {
	Number int
}

// SyllableKind decides the punctuation around a lyrics chunk.
type SyllableKind int

// Syllable kinds.
const (
	SyllableSingle SyllableKind = iota
	SyllableBegin
	SyllableMiddle
	SyllableEnd
	SyllableSkip
	SyllableSlur
	SyllableTied
	SyllableSlurBeyondEnd
	SyllableBarCheck
	SyllableBreak
)

var syllableKindNames = []string{
	"single", "begin", "middle", "end", "skip", "slur", "tied",
	"slur-beyond-end", "bar-check", "break",
}

func (k SyllableKind) String() string { return enumName(syllableKindNames, int(k)) }

// ParseSyllableKind converts a syllable kind name.
func ParseSyllableKind(s string) (SyllableKind, bool) {
	i, ok := enumLookup(syllableKindNames, s)
	return SyllableKind(i), ok
}

// LyricsChunk is one syllable or lyrics event.
type LyricsChunk struct {
	Kind     SyllableKind
	Text     string
	Duration Duration
}

// =============================================================================
// Directions
// =============================================================================

// ClefKind names a clef.
type ClefKind int

// Clef kinds.
const (
	ClefTreble ClefKind = iota
	ClefAlto
	ClefTenor
	ClefBass
	ClefTrebleLine1
	ClefTrebleMinus15
	ClefTrebleMinus8
	ClefTreblePlus8
	ClefTreblePlus15
	ClefBassMinus15
	ClefBassMinus8
	ClefBassPlus8
	ClefBassPlus15
	ClefSoprano
	ClefMezzoSoprano
	ClefBaritone
	ClefVarBaritone
	ClefSubBass
	ClefTablature4
	ClefTablature5
	ClefTablature6
	ClefTablature7
	ClefPercussion
)

var clefKindNames = []string{
	"treble", "alto", "tenor", "bass", "treble-line-1",
	"treble-15", "treble-8", "treble+8", "treble+15",
	"bass-15", "bass-8", "bass+8", "bass+15",
	"soprano", "mezzo-soprano", "baritone", "varbaritone", "subbass",
	"tab4", "tab5", "tab6", "tab7", "percussion",
}

func (k ClefKind) String() string { return enumName(clefKindNames, int(k)) }

// ParseClef converts a clef name such as "treble-8".
func ParseClef(s string) (ClefKind, bool) {
	i, ok := enumLookup(clefKindNames, s)
	return ClefKind(i), ok
}

// Clef changes the clef.
type Clef struct {
	Kind ClefKind
}

// KeyMode is the mode of a key signature.
type KeyMode int

// Key modes.
const (
	ModeMajor KeyMode = iota
	ModeMinor
)

var keyModeNames = []string{"major", "minor"}

func (m KeyMode) String() string { return enumName(keyModeNames, int(m)) }

// ParseKeyMode converts "major" or "minor".
func ParseKeyMode(s string) (KeyMode, bool) {
	i, ok := enumLookup(keyModeNames, s)
	return KeyMode(i), ok
}

// Key changes the key signature. The tonic octave is ignored.
type Key struct {
	Tonic Pitch
	Mode  KeyMode
}

// Time changes the time signature.
type Time struct {
	Beats    int
	BeatType int
}

// Tempo is a metronome or text tempo mark.
type Tempo struct {
	Indication string
	Unit       Duration
	PerMinute  int
}

// BarlineStyle is the drawing style of a barline.
type BarlineStyle int

// Barline styles.
const (
	BarlineRegular BarlineStyle = iota
	BarlineDotted
	BarlineDashed
	BarlineHeavy
	BarlineLightLight
	BarlineLightHeavy
	BarlineHeavyLight
	BarlineHeavyHeavy
	BarlineTick
	BarlineShort
	BarlineNone
)

var barlineStyleNames = []string{
	"regular", "dotted", "dashed", "heavy", "light-light", "light-heavy",
	"heavy-light", "heavy-heavy", "tick", "short", "none",
}

func (s BarlineStyle) String() string { return enumName(barlineStyleNames, int(s)) }

// ParseBarlineStyle converts a MusicXML bar-style value.
func ParseBarlineStyle(s string) (BarlineStyle, bool) {
	i, ok := enumLookup(barlineStyleNames, s)
	return BarlineStyle(i), ok
}

// Barline is an explicit barline.
type Barline struct {
	Style BarlineStyle
	Segno bool
	Coda  bool
}

// BarCheck marks the end of a bar. NextBar is the number of the next bar.
type BarCheck struct {
	NextBar int
}

// BarNumberCheck asserts the current bar number.
type BarNumberCheck struct {
	Number int
}

// Break is a line break before NextBar.
type Break struct {
	NextBar int
}

// OctaveShiftKind is the role of an ottava mark.
type OctaveShiftKind int

// Octave shift kinds.
const (
	OctaveShiftUp OctaveShiftKind = iota
	OctaveShiftDown
	OctaveShiftStop
)

var octaveShiftNames = []string{"up", "down", "stop"}

func (k OctaveShiftKind) String() string { return enumName(octaveShiftNames, int(k)) }

// ParseOctaveShift converts "up", "down" or "stop".
func ParseOctaveShift(s string) (OctaveShiftKind, bool) {
	i, ok := enumLookup(octaveShiftNames, s)
	return OctaveShiftKind(i), ok
}

// OctaveShift starts or stops an ottava. Size is 8 or 15.
type OctaveShift struct {
	Kind OctaveShiftKind
	Size int
}

// Rehearsal is a rehearsal mark.
type Rehearsal struct {
	Text string
}

// Segno is a segno sign.
type Segno struct{}

// Coda is a coda sign.
type Coda struct{}

// Eyeglasses is a "watch out" sign.
type Eyeglasses struct{}

// PedalKind is the role of a sustain pedal mark.
type PedalKind int

// Pedal kinds.
const (
	PedalStart PedalKind = iota
	PedalContinue
	PedalChange
	PedalStop
)

var pedalNames = []string{"start", "continue", "change", "stop"}

func (k PedalKind) String() string { return enumName(pedalNames, int(k)) }

// ParsePedal converts "start", "continue", "change" or "stop".
func ParsePedal(s string) (PedalKind, bool) {
	i, ok := enumLookup(pedalNames, s)
	return PedalKind(i), ok
}

// Pedal is a sustain pedal mark.
type Pedal struct {
	Kind PedalKind
}

// =============================================================================
// Kind methods
// =============================================================================

func (Score) NodeKind() Kind          { return KindScore }
func (Header) NodeKind() Kind         { return KindHeader }
func (Variable) NodeKind() Kind       { return KindVariable }
func (Paper) NodeKind() Kind          { return KindPaper }
func (Layout) NodeKind() Kind         { return KindLayout }
func (Comment) NodeKind() Kind        { return KindComment }
func (PartGroup) NodeKind() Kind      { return KindPartGroup }
func (Part) NodeKind() Kind           { return KindPart }
func (Staff) NodeKind() Kind          { return KindStaff }
func (Voice) NodeKind() Kind          { return KindVoice }
func (VoiceChunk) NodeKind() Kind     { return KindVoiceChunk }
func (Measure) NodeKind() Kind        { return KindMeasure }
func (Repeat) NodeKind() Kind         { return KindRepeat }
func (RepeatEnding) NodeKind() Kind   { return KindRepeatEnding }
func (Note) NodeKind() Kind           { return KindNote }
func (Chord) NodeKind() Kind          { return KindChord }
func (Tuplet) NodeKind() Kind         { return KindTuplet }
func (GraceNotes) NodeKind() Kind     { return KindGraceNotes }
func (Lyrics) NodeKind() Kind         { return KindLyrics }
func (LyricsChunk) NodeKind() Kind    { return KindLyricsChunk }
func (Clef) NodeKind() Kind           { return KindClef }
func (Key) NodeKind() Kind            { return KindKey }
func (Time) NodeKind() Kind           { return KindTime }
func (Tempo) NodeKind() Kind          { return KindTempo }
func (Barline) NodeKind() Kind        { return KindBarline }
func (BarCheck) NodeKind() Kind       { return KindBarCheck }
func (BarNumberCheck) NodeKind() Kind { return KindBarNumberCheck }
func (Break) NodeKind() Kind          { return KindBreak }
func (OctaveShift) NodeKind() Kind    { return KindOctaveShift }
func (Rehearsal) NodeKind() Kind      { return KindRehearsal }
func (Segno) NodeKind() Kind          { return KindSegno }
func (Coda) NodeKind() Kind           { return KindCoda }
func (Eyeglasses) NodeKind() Kind     { return KindEyeglasses }
func (Pedal) NodeKind() Kind          { return KindPedal }

func (Score) element()          {}
func (Header) element()         {}
func (Variable) element()       {}
func (Paper) element()          {}
func (Layout) element()         {}
func (Comment) element()        {}
func (PartGroup) element()      {}
func (Part) element()           {}
func (Staff) element()          {}
func (Voice) element()          {}
func (VoiceChunk) element()     {}
func (Measure) element()        {}
func (Repeat) element()         {}
func (RepeatEnding) element()   {}
func (Note) element()           {}
func (Chord) element()          {}
func (Tuplet) element()         {}
func (GraceNotes) element()     {}
func (Lyrics) element()         {}
func (LyricsChunk) element()    {}
func (Clef) element()           {}
func (Key) element()            {}
func (Time) element()           {}
func (Tempo) element()          {}
func (Barline) element()        {}
func (BarCheck) element()       {}
func (BarNumberCheck) element() {}
func (Break) element()          {}
func (OctaveShift) element()    {}
func (Rehearsal) element()      {}
func (Segno) element()          {}
func (Coda) element()           {}
func (Eyeglasses) element()     {}
func (Pedal) element()          {}
