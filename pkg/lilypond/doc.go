// Package lilypond renders a score.Tree as LilyPond source.
//
// Rendering walks the tree twice with two rule tables. The first walk
// writes the header, paper and layout blocks and one variable per voice
// and lyrics stanza; the second writes the \score block that combines
// them. All mutable context (indentation, line-wrap counters, the relative
// pitch reference, open repeats) lives in a per-call state value, so
// independent renders never share anything.
package lilypond
