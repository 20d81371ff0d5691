package lilypond

import (
	"bytes"
	"strings"
)

const indentSize = 2

// stream is one output stream with its own indentation, line state and
// soft-wrap counter. Tokens are separated by single spaces; lines never
// carry trailing blanks.
type stream struct {
	output      *bytes.Buffer
	depth       int
	atLineStart bool
	needSpace   bool
	width       int // token weight emitted since the last line break
	maxWidth    int // 0 disables soft wrapping
}

func newStream(maxWidth int) *stream {
	return &stream{
		output:      &bytes.Buffer{},
		atLineStart: true,
		maxWidth:    maxWidth,
	}
}

// String returns the rendered text.
func (s *stream) String() string {
	return s.output.String()
}

func (s *stream) reset() {
	s.output.Reset()
	s.depth = 0
	s.atLineStart = true
	s.needSpace = false
	s.width = 0
}

func (s *stream) write(str string) {
	if s.atLineStart && len(str) > 0 && str[0] != '\n' {
		s.writeIndent()
	}
	s.output.WriteString(str)
	s.atLineStart = false
}

func (s *stream) writeln() {
	b := s.output.Bytes()
	n := len(b)
	for n > 0 && b[n-1] == ' ' {
		n--
	}
	s.output.Truncate(n)
	s.output.WriteByte('\n')
	s.atLineStart = true
	s.needSpace = false
}

func (s *stream) writeIndent() {
	s.output.WriteString(strings.Repeat(" ", s.depth*indentSize))
	s.atLineStart = false
}

func (s *stream) indent() {
	s.depth++
}

func (s *stream) dedent() {
	if s.depth > 0 {
		s.depth--
	}
}

// breakLine ends the current line, if any, and resets the width counter.
func (s *stream) breakLine() {
	if !s.atLineStart {
		s.writeln()
	}
	s.width = 0
}

// line writes str on a line of its own.
func (s *stream) line(str string) {
	if !s.atLineStart {
		s.writeln()
	}
	s.write(str)
	s.writeln()
}

// blank writes an empty line, never two in a row.
func (s *stream) blank() {
	if !s.atLineStart {
		s.writeln()
	}
	b := s.output.Bytes()
	if len(b) == 0 || (len(b) >= 2 && b[len(b)-2] == '\n') {
		return
	}
	s.output.WriteByte('\n')
}

// token writes an inline token of the given weight, wrapping first when
// the line is full. Zero-weight tokens never wrap.
func (s *stream) token(tok string, weight int) {
	if weight > 0 && s.maxWidth > 0 && s.width >= s.maxWidth {
		s.breakLine()
	}
	if s.needSpace && !s.atLineStart {
		s.output.WriteByte(' ')
	}
	s.write(tok)
	s.needSpace = true
	s.width += weight
}

// attach appends tok to the previous token without a separator.
func (s *stream) attach(tok string) {
	s.write(tok)
	s.needSpace = true
}

// comment appends a trailing comment and ends the line. It never wraps.
func (s *stream) comment(text string) {
	if s.needSpace && !s.atLineStart {
		s.output.WriteByte(' ')
	}
	s.write("% " + text)
	s.writeln()
}
