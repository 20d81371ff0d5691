package score

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the Builder.
var (
	// ErrFrozen is returned when adding to a tree that has been built.
	ErrFrozen = errors.New("score: tree is frozen")
	// ErrKindNotAllowed is returned when a child kind may not appear under its parent.
	ErrKindNotAllowed = errors.New("score: child kind not allowed here")
	// ErrNoNode is returned for a handle that does not name a node.
	ErrNoNode = errors.New("score: no such node")
)

// StructureError reports a structural inconsistency of the tree. It names
// the offending node kind and its input position.
type StructureError struct {
	Kind Kind
	Pos  Position
	Msg  string
}

func (e *StructureError) Error() string {
	return fmt.Sprintf("structure error at line %s in %s: %s", e.Pos, e.Kind, e.Msg)
}

// RuleError wraps an error returned by a traversal rule.
type RuleError struct {
	Kind Kind
	Pos  Position
	Err  error
}

func (e *RuleError) Error() string {
	return fmt.Sprintf("%s at line %s: %v", e.Kind, e.Pos, e.Err)
}

func (e *RuleError) Unwrap() error {
	return e.Err
}
