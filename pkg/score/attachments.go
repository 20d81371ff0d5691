package score

// =============================================================================
// Enum naming helpers
// =============================================================================

func enumName(names []string, i int) string {
	if i < 0 || i >= len(names) || names[i] == "" {
		return "unknown"
	}
	return names[i]
}

func enumLookup(names []string, s string) (int, bool) {
	for i, n := range names {
		if n != "" && n == s {
			return i, true
		}
	}
	return 0, false
}

// =============================================================================
// Placement
// =============================================================================

// Placement says whether a mark sits above or below the staff.
type Placement int

// Placements.
const (
	PlacementNone Placement = iota
	PlacementAbove
	PlacementBelow
)

var placementNames = []string{"none", "above", "below"}

func (p Placement) String() string { return enumName(placementNames, int(p)) }

// ParsePlacement converts "above"/"below" to a Placement.
func ParsePlacement(s string) (Placement, bool) {
	i, ok := enumLookup(placementNames, s)
	return Placement(i), ok
}

// =============================================================================
// Articulations
// =============================================================================

// ArticulationKind names an articulation mark.
type ArticulationKind int

// Articulation kinds.
const (
	Accent ArticulationKind = iota
	Breathe
	Caesura
	Spiccato
	Staccato
	Staccatissimo
	Stress
	Unstress
	DetachedLegato
	StrongAccent
	Tenuto
	Fermata
	Arpeggiato
	Doit
	Falloff
	Plop
	Scoop
)

var articulationNames = []string{
	"accent", "breathe", "caesura", "spiccato", "staccato", "staccatissimo",
	"stress", "unstress", "detached-legato", "strong-accent", "tenuto",
	"fermata", "arpeggiato", "doit", "falloff", "plop", "scoop",
}

func (k ArticulationKind) String() string { return enumName(articulationNames, int(k)) }

// ParseArticulation converts a MusicXML-style articulation name.
func ParseArticulation(s string) (ArticulationKind, bool) {
	i, ok := enumLookup(articulationNames, s)
	return ArticulationKind(i), ok
}

// Articulation is an articulation attached to a note or chord.
type Articulation struct {
	Kind      ArticulationKind
	Placement Placement
}

// =============================================================================
// Ornaments
// =============================================================================

// OrnamentKind names an ornament.
type OrnamentKind int

// Ornament kinds.
const (
	Trill OrnamentKind = iota
	WavyLine
	Turn
	InvertedTurn
	DelayedTurn
	DelayedInvertedTurn
	VerticalTurn
	Mordent
	InvertedMordent
	Schleifer
	Shake
)

var ornamentNames = []string{
	"trill", "wavy-line", "turn", "inverted-turn", "delayed-turn",
	"delayed-inverted-turn", "vertical-turn", "mordent", "inverted-mordent",
	"schleifer", "shake",
}

func (k OrnamentKind) String() string { return enumName(ornamentNames, int(k)) }

// ParseOrnament converts a MusicXML-style ornament name.
func ParseOrnament(s string) (OrnamentKind, bool) {
	i, ok := enumLookup(ornamentNames, s)
	return OrnamentKind(i), ok
}

// AccidentalMark is an accidental printed next to an ornament.
type AccidentalMark int

// Accidental marks.
const (
	AccidentalMarkNone AccidentalMark = iota
	AccidentalMarkNatural
	AccidentalMarkSharp
	AccidentalMarkFlat
)

var accidentalMarkNames = []string{"none", "natural", "sharp", "flat"}

func (a AccidentalMark) String() string { return enumName(accidentalMarkNames, int(a)) }

// ParseAccidentalMark converts "natural", "sharp" or "flat".
func ParseAccidentalMark(s string) (AccidentalMark, bool) {
	i, ok := enumLookup(accidentalMarkNames, s)
	return AccidentalMark(i), ok
}

// Ornament is an ornament attached to a note or chord.
type Ornament struct {
	Kind           OrnamentKind
	Placement      Placement
	AccidentalMark AccidentalMark
}

// =============================================================================
// Dynamics
// =============================================================================

// DynamicsKind names a dynamic marking.
type DynamicsKind int

// Dynamics kinds.
const (
	DynamicsPPPPPP DynamicsKind = iota
	DynamicsPPPPP
	DynamicsPPPP
	DynamicsPPP
	DynamicsPP
	DynamicsP
	DynamicsMP
	DynamicsMF
	DynamicsF
	DynamicsFF
	DynamicsFFF
	DynamicsFFFF
	DynamicsFFFFF
	DynamicsFFFFFF
	DynamicsFP
	DynamicsFZ
	DynamicsRF
	DynamicsSF
	DynamicsRFZ
	DynamicsSFZ
	DynamicsSFP
	DynamicsSFPP
	DynamicsSFFZ
)

var dynamicsNames = []string{
	"pppppp", "ppppp", "pppp", "ppp", "pp", "p", "mp", "mf",
	"f", "ff", "fff", "ffff", "fffff", "ffffff",
	"fp", "fz", "rf", "sf", "rfz", "sfz", "sfp", "sfpp", "sffz",
}

func (k DynamicsKind) String() string { return enumName(dynamicsNames, int(k)) }

// ParseDynamics converts a dynamics name such as "mf".
func ParseDynamics(s string) (DynamicsKind, bool) {
	i, ok := enumLookup(dynamicsNames, s)
	return DynamicsKind(i), ok
}

// Dynamics is a dynamic marking attached to a note or chord.
type Dynamics struct {
	Kind      DynamicsKind
	Placement Placement
}

// =============================================================================
// Words
// =============================================================================

// FontStyle is the style of a words direction.
type FontStyle int

// Font styles.
const (
	FontStyleNormal FontStyle = iota
	FontStyleItalic
)

// FontWeight is the weight of a words direction.
type FontWeight int

// Font weights.
const (
	FontWeightNormal FontWeight = iota
	FontWeightBold
)

// Words is free text attached to a note or chord.
type Words struct {
	Text      string
	Placement Placement
	Style     FontStyle
	Weight    FontWeight
}

// =============================================================================
// Slurs, wedges, stems, beams
// =============================================================================

// SlurKind is the role of a slur mark.
type SlurKind int

// Slur kinds.
const (
	SlurStart SlurKind = iota
	SlurContinue
	SlurStop
)

var slurNames = []string{"start", "continue", "stop"}

func (k SlurKind) String() string { return enumName(slurNames, int(k)) }

// ParseSlur converts "start", "continue" or "stop".
func ParseSlur(s string) (SlurKind, bool) {
	i, ok := enumLookup(slurNames, s)
	return SlurKind(i), ok
}

// WedgeKind is the role of a hairpin mark.
type WedgeKind int

// Wedge kinds.
const (
	WedgeCrescendo WedgeKind = iota
	WedgeDiminuendo
	WedgeStop
)

var wedgeNames = []string{"crescendo", "diminuendo", "stop"}

func (k WedgeKind) String() string { return enumName(wedgeNames, int(k)) }

// ParseWedge converts "crescendo", "diminuendo" or "stop".
func ParseWedge(s string) (WedgeKind, bool) {
	i, ok := enumLookup(wedgeNames, s)
	return WedgeKind(i), ok
}

// StemKind is the stem direction of a note.
// StemUnspecified means the note carries no stem information.
type StemKind int

// Stem kinds.
const (
	StemUnspecified StemKind = iota
	StemNeutral
	StemUp
	StemDown
	StemNone
	StemDouble
)

var stemNames = []string{"unspecified", "neutral", "up", "down", "none", "double"}

func (k StemKind) String() string { return enumName(stemNames, int(k)) }

// ParseStem converts "up", "down", "neutral", "none" or "double".
func ParseStem(s string) (StemKind, bool) {
	i, ok := enumLookup(stemNames, s)
	return StemKind(i), ok
}

// BeamKind is the role of a note within a beam.
type BeamKind int

// Beam kinds.
const (
	BeamBegin BeamKind = iota
	BeamContinue
	BeamEnd
	BeamForwardHook
	BeamBackwardHook
)

var beamNames = []string{"begin", "continue", "end", "forward-hook", "backward-hook"}

func (k BeamKind) String() string { return enumName(beamNames, int(k)) }

// ParseBeam converts a MusicXML beam value.
func ParseBeam(s string) (BeamKind, bool) {
	i, ok := enumLookup(beamNames, s)
	return BeamKind(i), ok
}

// Beam is one beam level on a note. Number 1 is the primary beam.
type Beam struct {
	Number int
	Kind   BeamKind
}

// Attachments is the ornamentation attached to a note or a chord.
type Attachments struct {
	Articulations []Articulation
	Ornaments     []Ornament
	Dynamics      []Dynamics
	Words         []Words
	Slurs         []SlurKind
	Wedges        []WedgeKind
}

// Empty reports whether no ornamentation is attached.
func (a *Attachments) Empty() bool {
	return len(a.Articulations) == 0 && len(a.Ornaments) == 0 &&
		len(a.Dynamics) == 0 && len(a.Words) == 0 &&
		len(a.Slurs) == 0 && len(a.Wedges) == 0
}
