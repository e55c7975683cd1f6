// Package ir provides the tree representation for parsed BBCode
// documents.
//
// A document is a tree of Node values.  The Type field of each node
// indicates its kind:
//
//   - RootType: the whole document, an ordered sequence of children
//   - TagType: a bracket tag [name]...[/name] with an optional =value
//     and ordered key=value attributes
//   - ListItemType: one [*] entry of a list tag
//   - TextType: a literal character run (leaf)
//
// Nodes are owned by their parents: AddChild stores a deep copy of its
// argument and there are no parent back-references, so a node can never
// be aliased into two trees.  Containers never hold two adjacent text
// children; AddChild merges consecutive text.
//
// Node.String renders the canonical text form, which reproduces the
// exact input for any tree built by the parse package.
package ir
