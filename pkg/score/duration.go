package score

import (
	"strconv"
	"strings"
)

// Duration is a notated duration.
//
// Log is the base-2 logarithm of the note type: 0 is a whole note, 2 a
// quarter, -1 a breve. Num/Den scale the duration when both are positive,
// as in full-measure rests spanning an uneven bar.
type Duration struct {
	Log  int
	Dots int
	Num  int
	Den  int
}

// Common durations.
var (
	Whole   = Duration{Log: 0}
	Half    = Duration{Log: 1}
	Quarter = Duration{Log: 2}
	Eighth  = Duration{Log: 3}
)

// Scaled reports whether the duration carries a multiplier.
func (d Duration) Scaled() bool {
	return d.Num > 0 && d.Den > 0
}

// ParseDuration parses the textual form used in score descriptions:
// a note type ("4", "8", "breve", "longa"), optional dots, and an
// optional multiplier ("1*3/4").
func ParseDuration(s string) (Duration, bool) {
	var d Duration
	s = strings.TrimSpace(s)
	if s == "" {
		return d, false
	}

	base, mult, hasMult := strings.Cut(s, "*")
	d.Dots = len(base) - len(strings.TrimRight(base, "."))
	base = strings.TrimRight(base, ".")

	switch base {
	case "breve":
		d.Log = -1
	case "longa":
		d.Log = -2
	default:
		n, err := strconv.Atoi(base)
		if err != nil || n <= 0 || n&(n-1) != 0 {
			return d, false
		}
		for n > 1 {
			n >>= 1
			d.Log++
		}
	}

	if hasMult {
		num, den, ok := strings.Cut(mult, "/")
		if !ok {
			den = "1"
		}
		var err error
		if d.Num, err = strconv.Atoi(num); err != nil || d.Num <= 0 {
			return d, false
		}
		if d.Den, err = strconv.Atoi(den); err != nil || d.Den <= 0 {
			return d, false
		}
	}
	return d, true
}
