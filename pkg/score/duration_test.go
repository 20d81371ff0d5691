package score

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseDuration(t *testing.T) {
	tests := []struct {
		in   string
		want Duration
		ok   bool
	}{
		{"4", Duration{Log: 2}, true},
		{"8.", Duration{Log: 3, Dots: 1}, true},
		{"2..", Duration{Log: 1, Dots: 2}, true},
		{"1*3/4", Duration{Log: 0, Num: 3, Den: 4}, true},
		{"1*2", Duration{Log: 0, Num: 2, Den: 1}, true},
		{"breve", Duration{Log: -1}, true},
		{"3", Duration{}, false},
		{"", Duration{}, false},
		{"4*x", Duration{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseDuration(tt.in)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestPitchOrdinal(t *testing.T) {
	assert.Equal(t, 28, Pitch{Step: StepC, Octave: 4}.Ordinal())
	assert.Equal(t, 27, Pitch{Step: StepB, Octave: 3}.Ordinal())
	assert.Equal(t, Pitch{Step: StepC, Octave: 4, Alteration: Sharp}.Ordinal(), Pitch{Step: StepC, Octave: 4}.Ordinal())
}
