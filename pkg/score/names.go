package score

import (
	"strconv"
	"strings"
	"unicode"
)

var smallNumbers = []string{
	"Zero", "One", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine",
	"Ten", "Eleven", "Twelve", "Thirteen", "Fourteen", "Fifteen", "Sixteen",
	"Seventeen", "Eighteen", "Nineteen",
}

var tens = []string{
	"", "", "Twenty", "Thirty", "Forty", "Fifty", "Sixty", "Seventy", "Eighty", "Ninety",
}

// NumberWord spells n in English words without spaces, as used in
// identifiers: 1 is "One", 42 is "FortyTwo". Values of 1000 or more are
// spelled digit by digit.
func NumberWord(n int) string {
	switch {
	case n < 0:
		return "Minus" + NumberWord(-n)
	case n < 20:
		return smallNumbers[n]
	case n < 100:
		if n%10 == 0 {
			return tens[n/10]
		}
		return tens[n/10] + smallNumbers[n%10]
	case n < 1000:
		if n%100 == 0 {
			return smallNumbers[n/100] + "Hundred"
		}
		return smallNumbers[n/100] + "Hundred" + NumberWord(n%100)
	}
	var sb strings.Builder
	for _, d := range []byte(strconv.Itoa(n)) {
		sb.WriteString(smallNumbers[d-'0'])
	}
	return sb.String()
}

// Letterize turns an input identifier into letters only: digit runs are
// spelled with NumberWord and every other non-letter is dropped.
// "P1" becomes "POne".
func Letterize(s string) string {
	var sb strings.Builder
	num, inNum := 0, false
	flush := func() {
		if inNum {
			sb.WriteString(NumberWord(num))
			num, inNum = 0, false
		}
	}
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			num = num*10 + int(r-'0')
			inNum = true
		case unicode.IsLetter(r) && r < unicode.MaxASCII:
			flush()
			sb.WriteRune(r)
		default:
			flush()
		}
	}
	flush()
	return sb.String()
}

// PartName returns the identifier stem of the part owning id.
func (t *Tree) PartName(id NodeID) string {
	p := id
	if t.nodes[id].kind != KindPart {
		p = t.Ancestor(id, KindPart)
	}
	if p == NoNode {
		return "Part"
	}
	part, _ := As[Part](t, p)
	return "Part" + Letterize(part.ID)
}

// StaffName returns the identifier of a staff, e.g. "PartPOneStaffTwo".
func (t *Tree) StaffName(id NodeID) string {
	st, _ := As[Staff](t, id)
	return t.PartName(id) + "Staff" + NumberWord(st.Number)
}

// VoiceName returns the identifier of a voice, e.g. "PartPOneVoiceOne".
func (t *Tree) VoiceName(id NodeID) string {
	vo, _ := As[Voice](t, id)
	return t.PartName(id) + "Voice" + NumberWord(vo.Number)
}

// LyricsName returns the identifier of a stanza, e.g.
// "PartPOneVoiceOneLyricsOne".
func (t *Tree) LyricsName(id NodeID) string {
	ly, _ := As[Lyrics](t, id)
	return t.VoiceName(t.Parent(id)) + "Lyrics" + NumberWord(ly.Number)
}
