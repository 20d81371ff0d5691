// Package scorefile loads score descriptions written in YAML (or JSON) into
// a score model.
//
// A description lists header fields, paper settings and a tree of groups,
// parts, staves and voices. Voice music is a list of measures and repeats;
// each measure lists single-key element maps:
//
//	groups:
//	  - parts:
//	      - id: P1
//	        name: Flute
//	        staves:
//	          - voices:
//	              - music:
//	                  - measure:
//	                      - clef: treble
//	                      - time: 4/4
//	                      - note: C4 4
//	                      - rest: "4"
//	                      - chord: C4 E4 G4 2
//
// Pitches are written as a letter, accidentals (# and b for sharps and
// flats, + and - for quarter tones) and an octave. Durations use the
// LilyPond note type with optional dots and multiplier ("4.", "1*3/4").
package scorefile
