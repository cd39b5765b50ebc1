package Trees

import (
	"github.com/pkg/errors"
)

var (
	ErrRedRoot      = errors.New("root is red")
	ErrRedViolation = errors.New("red node has a red child")
	ErrBlackHeight  = errors.New("black height differs between paths")
	ErrParentLink   = errors.New("parent link doesn't match child link")
	ErrSentinel     = errors.New("absent node was modified")
	ErrOrder        = errors.New("elements are out of order")
	ErrSize         = errors.New("size doesn't match number of nodes")
	ErrCount        = errors.New("node has zero count")
	ErrOverflow     = errors.New("index or count doesn't fit in S")
)

// fixUp restores the red-black properties after the red node at index i was attached.
// An absent uncle is black, so it takes the rotation case.
// Time: O(log n); Space: O(1)
func (u *base[S]) fixUp(i S) {
	if i == u.root {
		u.ifs[i].c = Black
		return
	}
	for par := u.ifs[i].p; par != 0 && u.ifs[par].c == Red; par = u.ifs[i].p {
		g := u.ifs[par].p
		if u.ifs[g].l == par {
			if ui := u.ifs[g].r; u.ifs[ui].c == Red {
				u.ifs[par].c, u.ifs[ui].c, u.ifs[g].c = Black, Black, Red
				i = g
			} else {
				if u.ifs[par].r == i { // zig-zag, straighten it first
					i = par
					u.rotateLeft(i)
				}
				u.ifs[u.ifs[i].p].c = Black
				u.ifs[g].c = Red
				u.rotateRight(g)
			}
		} else {
			if ui := u.ifs[g].l; u.ifs[ui].c == Red {
				u.ifs[par].c, u.ifs[ui].c, u.ifs[g].c = Black, Black, Red
				i = g
			} else {
				if u.ifs[par].l == i {
					i = par
					u.rotateRight(i)
				}
				u.ifs[u.ifs[i].p].c = Black
				u.ifs[g].c = Red
				u.rotateLeft(g)
			}
		}
		u.ifs[u.root].c = Black
		u.ifs[u.root].p = 0
	}
}

// inOrder calls f with the index of each node in ascending order until f returns false.
// st is used as the traversal stack and returned for reuse; it can be nil.
// Time: O(n); Space: O(log n)
func (u *base[S]) inOrder(f func(S) bool, st []S) []S {
	curI := u.root
	for st = st[:0]; curI != 0; curI = u.ifs[curI].l {
		st = append(st, curI)
	}
	for len(st) > 0 {
		curI, st = st[len(st)-1], st[:len(st)-1]
		if !f(curI) {
			break
		}
		for curI = u.ifs[curI].r; curI != 0; curI = u.ifs[curI].l {
			st = append(st, curI)
		}
	}
	return st
}

// Size is the number of distinct elements.
// Time: O(1); Space: O(1)
func (u *base[S]) Size() S {
	return u.n
}

// Empty reports whether nothing has been inserted.
func (u *base[S]) Empty() bool {
	return u.n == 0
}

func (u *base[S]) height(curI S) int {
	if curI == 0 {
		return 0
	}
	return 1 + max(u.height(u.ifs[curI].l), u.height(u.ifs[curI].r))
}

// Height is the number of edges on the longest path from the root to a node.
// It is 0 for both the empty tree and a single element. Recursive.
// Time: O(n)
func (u *base[S]) Height() int {
	if u.root == 0 {
		return 0
	}
	return u.height(u.root) - 1
}

func (u *base[S]) minDepth(curI S, d int) int {
	cur := u.ifs[curI]
	if cur.l == 0 || cur.r == 0 {
		return d
	}
	return min(u.minDepth(cur.l, d+1), u.minDepth(cur.r, d+1))
}

// MinDepth is the number of edges from the root to the closest node that lacks
// a child. It is 0 for the empty tree. Recursive.
// Time: O(n)
func (u *base[S]) MinDepth() int {
	if u.root == 0 {
		return 0
	}
	return u.minDepth(u.root, 0)
}

// blackHeight checks the subtree at curI and returns its black height, counting
// the absent leaves. Recursive.
func (u *base[S]) blackHeight(curI S, nodes *S) (int, error) {
	if curI == 0 {
		return 1, nil
	}
	*nodes++
	cur := u.ifs[curI]
	if cur.cnt == 0 {
		return 0, errors.Wrapf(ErrCount, "node %d", curI)
	}
	for _, c := range [2]S{cur.l, cur.r} {
		if c == 0 {
			continue
		}
		if u.ifs[c].p != curI {
			return 0, errors.Wrapf(ErrParentLink, "node %d has parent %d, want %d", c, u.ifs[c].p, curI)
		}
		if cur.c == Red && u.ifs[c].c == Red {
			return 0, errors.Wrapf(ErrRedViolation, "nodes %d and %d", curI, c)
		}
	}
	lh, err := u.blackHeight(cur.l, nodes)
	if err != nil {
		return 0, err
	}
	rh, err := u.blackHeight(cur.r, nodes)
	if err != nil {
		return 0, err
	}
	if lh != rh {
		return 0, errors.Wrapf(ErrBlackHeight, "node %d has %d on the left and %d on the right", curI, lh, rh)
	}
	if cur.c == Black {
		lh++
	}
	return lh, nil
}

// check the shape and coloring of the tree, without looking at the elements.
func (u *base[S]) check() error {
	if len(u.ifs) == 0 || u.ifs[0] != (info[S]{}) {
		return ErrSentinel
	}
	if u.root != 0 {
		if u.ifs[u.root].c != Black {
			return errors.Wrapf(ErrRedRoot, "root %d", u.root)
		}
		if u.ifs[u.root].p != 0 {
			return errors.Wrapf(ErrParentLink, "root %d has parent %d", u.root, u.ifs[u.root].p)
		}
	}
	var nodes S
	if _, err := u.blackHeight(u.root, &nodes); err != nil {
		return err
	}
	if nodes != u.n || int(u.n) != len(u.ifs)-1 {
		return errors.Wrapf(ErrSize, "size %d, %d reachable nodes, %d allocated", u.n, nodes, len(u.ifs)-1)
	}
	return nil
}
