package score

// Step is the diatonic pitch letter. C is 0 and B is 6.
type Step int

// Diatonic steps.
const (
	StepC Step = iota
	StepD
	StepE
	StepF
	StepG
	StepA
	StepB
)

// String returns the upper-case pitch letter.
func (s Step) String() string {
	if s < StepC || s > StepB {
		return "?"
	}
	return string("CDEFGAB"[s])
}

// ParseStep converts a pitch letter (either case) to a Step.
func ParseStep(r byte) (Step, bool) {
	switch r {
	case 'C', 'c':
		return StepC, true
	case 'D', 'd':
		return StepD, true
	case 'E', 'e':
		return StepE, true
	case 'F', 'f':
		return StepF, true
	case 'G', 'g':
		return StepG, true
	case 'A', 'a':
		return StepA, true
	case 'B', 'b':
		return StepB, true
	default:
		return 0, false
	}
}

// Alteration is a chromatic alteration measured in quarter tones.
type Alteration int

// Alterations, from double flat to double sharp.
const (
	DoubleFlat  Alteration = -4
	SesquiFlat  Alteration = -3
	Flat        Alteration = -2
	SemiFlat    Alteration = -1
	Natural     Alteration = 0
	SemiSharp   Alteration = 1
	Sharp       Alteration = 2
	SesquiSharp Alteration = 3
	DoubleSharp Alteration = 4
)

// String returns the alteration name.
func (a Alteration) String() string {
	switch a {
	case DoubleFlat:
		return "double flat"
	case SesquiFlat:
		return "sesqui flat"
	case Flat:
		return "flat"
	case SemiFlat:
		return "semi flat"
	case Natural:
		return "natural"
	case SemiSharp:
		return "semi sharp"
	case Sharp:
		return "sharp"
	case SesquiSharp:
		return "sesqui sharp"
	case DoubleSharp:
		return "double sharp"
	default:
		return "unknown"
	}
}

// Pitch is a diatonic step, an alteration and an absolute octave.
// Octaves follow MusicXML numbering: octave 4 starts at middle C.
type Pitch struct {
	Step       Step
	Alteration Alteration
	Octave     int
}

// Ordinal returns the absolute diatonic ordinal octave*7 + step.
// Alterations are ignored.
func (p Pitch) Ordinal() int {
	return p.Octave*7 + int(p.Step)
}
