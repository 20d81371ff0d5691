package scorefile

import (
	"errors"
	"fmt"
	"path/filepath"
	"regexp"
	"strconv"

	"github.com/kant/libmusicxml/pkg/score"
)

// ErrNoElement is returned for a measure element with an unknown key.
var ErrNoElement = errors.New("unknown element")

// DecodeError is a description error with its input position.
type DecodeError struct {
	Path string
	Pos  score.Position
	Msg  string
	Err  error
}

func (e *DecodeError) Error() string {
	name := "input"
	if e.Path != "" {
		name = filepath.Base(e.Path)
	}
	if e.Pos.IsValid() {
		return fmt.Sprintf("%s:%s: %s", name, e.Pos, e.Msg)
	}
	return name + ": " + e.Msg
}

func (e *DecodeError) Unwrap() error { return e.Err }

func errorAt(pos score.Position, format string, args ...any) *DecodeError {
	return &DecodeError{Pos: pos, Msg: fmt.Sprintf(format, args...)}
}

var yamlLine = regexp.MustCompile(`line (\d+)`)

// decodeError converts an error from the YAML decoder, keeping the first
// line number it mentions.
func decodeError(path string, err error) error {
	var de *DecodeError
	if errors.As(err, &de) {
		de.Path = path
		return de
	}
	out := &DecodeError{Path: path, Msg: err.Error(), Err: err}
	if m := yamlLine.FindStringSubmatch(err.Error()); m != nil {
		out.Pos.Line, _ = strconv.Atoi(m[1])
	}
	return out
}
