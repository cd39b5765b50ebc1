// Package Trees holds ordered containers built on binary search trees.
//
// Tree is a counting red-black tree: it stores each distinct element once and
// keeps how many times that element was inserted. Nodes live in a growable
// table and refer to each other by index, index 0 being the absent node.
// Receivers that are not documented as recursive are implemented iteratively.
// None of the types here are safe for concurrent use. The tree must not be
// modified while it is being traversed; doing so doesn't panic, but the
// traversal results are undefined.
package Trees

// Color of a node in a red-black tree.
// The zero value is Black, so a zeroed node slot reads as an absent black leaf.
type Color byte

const (
	Black Color = iota
	Red
)

func (c Color) String() string {
	switch c {
	case Black:
		return "black"
	case Red:
		return "red"
	}
	return "invalid"
}
