// Package score defines the Score Model: the immutable tree of musical
// entities handed to renderers.
//
// This package contains:
//   - Element payloads for every node kind (Score, Part, Staff, Voice, Note, ...)
//   - The arena (Tree) that owns the nodes and resolves parent handles
//   - A Builder that enforces the allowed parent/child kinds
//   - Structural validation and the enter/exit traversal engine (Walk)
//
// Nodes never point at each other directly. Children are addressed by NodeID
// inside the owning Tree, and uplinks are stored as parent handles.
package score
