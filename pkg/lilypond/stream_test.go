package lilypond

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStream_Tokens(t *testing.T) {
	s := newStream(0)
	s.line("a = {")
	s.indent()
	s.token("c4", 1)
	s.token("d4", 1)
	s.attach("~")
	s.breakLine()
	s.dedent()
	s.line("}")

	assert.Equal(t, "a = {\n  c4 d4~\n}\n", s.String())
}

func TestStream_SoftWrap(t *testing.T) {
	s := newStream(3)
	for _, tok := range []string{"a", "b", "c", "d", "e", "f", "g"} {
		s.token(tok, 1)
	}
	s.breakLine()

	assert.Equal(t, "a b c\nd e f\ng\n", s.String())
}

func TestStream_ZeroWeightDoesNotWrap(t *testing.T) {
	s := newStream(2)
	s.token("a", 1)
	s.token("b", 1)
	s.comment("end")
	s.token("c", 1)
	s.breakLine()

	assert.Equal(t, "a b % end\nc\n", s.String())
}

func TestStream_ZeroWeightTokenStaysOnLine(t *testing.T) {
	s := newStream(2)
	s.token("a", 1)
	s.token("|", 1)
	s.token("%{ 2 %}", 0)
	s.token("b", 1)
	s.breakLine()

	assert.Equal(t, "a | %{ 2 %}\nb\n", s.String())
}

func TestStream_BreakLineResetsWidth(t *testing.T) {
	s := newStream(3)
	s.token("a", 1)
	s.token("b", 1)
	s.breakLine()
	s.token("c", 1)
	s.token("d", 1)
	s.token("e", 1)
	s.breakLine()

	assert.Equal(t, "a b\nc d e\n", s.String())
}

func TestStream_Blank(t *testing.T) {
	s := newStream(0)
	s.blank()
	s.line("x")
	s.blank()
	s.blank()
	s.line("y")

	assert.Equal(t, "x\n\ny\n", s.String())
}

func TestStream_NoTrailingSpaces(t *testing.T) {
	s := newStream(0)
	s.token("a", 1)
	s.write("  ")
	s.writeln()

	assert.Equal(t, "a\n", s.String())
}

func TestStream_Reset(t *testing.T) {
	s := newStream(0)
	s.indent()
	s.token("a", 1)
	s.reset()
	s.token("b", 1)
	s.breakLine()

	assert.Equal(t, "b\n", s.String())
}
