// Package formula defines the formula document model: a tree of typed
// nodes representing a mathematical expression, plus the Document
// container that holds one formula's top-level node sequence.
//
// The node set is a closed union. Every node serializes itself in two
// modes:
//
//   - ModeAST: structural markup that an external parser can read back
//     into an equivalent tree. This is the text shown in the markup
//     editing surface.
//   - ModeRender: presentational markup for the typesetting backend.
//     Addressable leaves (symbols, operators, spaces, variables) wrap
//     their text in an id-tagging command so rendered glyphs can be
//     correlated back to node ids.
//
// Nodes and Documents are immutable after construction. Structural
// edits go through the transform package, which builds new trees that
// share unchanged subtrees with the old ones. Because nothing is
// mutated in place, sharing a node across two Document versions is
// always safe.
//
// Parent/ancestor relationships are never stored on nodes; they are
// derived by search (Document.Ancestors) so trees stay acyclic and
// trivially shareable.
package formula
