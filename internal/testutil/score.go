package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// SampleScore is a small one-part score description with a repeat and
// lyrics.
const SampleScore = `header:
  - name: title
    value: Sample
parts:
  - id: P1
    name: Voice
    staves:
      - voices:
          - music:
              - measure:
                  - clef: treble
                  - key: F
                  - time: 2/4
                  - note: F4 4
                  - note: A4 4
              - repeat:
                  measures:
                    - - note: C5 2
                  endings:
                    - - note: A4 2
                    - - note: F4 2
            lyrics:
              - syllables: [Sing, a, song, now, "done"]
`

// DuetScore has two parts, the second on two staves.
const DuetScore = `parts:
  - id: P1
    name: Flute
    staves:
      - voices:
          - music:
              - measure: [{note: C5 1}]
  - id: P2
    name: Piano
    staves:
      - voices:
          - music:
              - measure: [{chord: C4 E4 G4 1}]
      - number: 2
        voices:
          - music:
              - measure: [{clef: bass}, {note: C3 1}]
`

// WriteScore writes content to dir/name and returns the path.
func WriteScore(t testing.TB, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
	return path
}
