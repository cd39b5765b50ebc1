package Trees

import "golang.org/x/exp/constraints"

// Position is a read only handle to a node of a Tree.
// Element and Count stay meaningful after later insertions, since nodes are
// never moved or removed, but the links reflect the shape at the time they are read.
// The zero Position and the positions returned for absent nodes are invalid;
// only the Has and Is receivers may be called on them.
type Position[T any, S constraints.Unsigned] struct {
	t *Tree[T, S]
	i S
}

// Element stored at p.
func (p Position[T, S]) Element() T {
	return p.t.vs[p.i-1]
}

// Count of insertions of Element.
func (p Position[T, S]) Count() S {
	return p.t.ifs[p.i].cnt
}

func (p Position[T, S]) Color() Color {
	return p.t.ifs[p.i].c
}

// Valid reports whether p refers to a node.
func (p Position[T, S]) Valid() bool {
	return p.t != nil && p.i != 0
}

func (p Position[T, S]) IsRoot() bool {
	return p.Valid() && p.t.ifs[p.i].p == 0
}

func (p Position[T, S]) HasLeft() bool {
	return p.Valid() && p.t.ifs[p.i].l != 0
}

func (p Position[T, S]) HasRight() bool {
	return p.Valid() && p.t.ifs[p.i].r != 0
}

func (p Position[T, S]) Left() Position[T, S] {
	return Position[T, S]{p.t, p.t.ifs[p.i].l}
}

func (p Position[T, S]) Right() Position[T, S] {
	return Position[T, S]{p.t, p.t.ifs[p.i].r}
}

// Parent of p; invalid if p is the root.
func (p Position[T, S]) Parent() Position[T, S] {
	return Position[T, S]{p.t, p.t.ifs[p.i].p}
}
