package Trees

import "golang.org/x/exp/constraints"

// A node in the Tree.
// l, r and p are indexes of the left child, right child and parent; 0 means absent.
// The zero value is meaningful: it is the absent node, black and unlinked.
type info[S constraints.Unsigned] struct {
	l, r, p, cnt S
	c            Color
}

// base holds the shape of the tree. ifs[0] is the absent node and is never written.
type base[S constraints.Unsigned] struct {
	root, n S
	ifs     []info[S]
}

// replace makes y take the child slot of x's parent, or the root if x has no parent.
func (u *base[S]) replace(x, y S) {
	if p := u.ifs[x].p; p == 0 {
		u.root = y
	} else if u.ifs[p].l == x {
		u.ifs[p].l = y
	} else {
		u.ifs[p].r = y
	}
	u.ifs[y].p = u.ifs[x].p
}

// rotateLeft around the node at index i. Its right child takes its place and
// i becomes that child's left child. Does nothing if i has no right child.
// Time: O(1); Space: O(1)
func (u *base[S]) rotateLeft(i S) {
	yi := u.ifs[i].r
	if yi == 0 {
		return
	}
	t := u.ifs[yi].l
	u.ifs[i].r = t
	if t != 0 {
		u.ifs[t].p = i
	}
	u.replace(i, yi)
	u.ifs[yi].l = i
	u.ifs[i].p = yi
}

// rotateRight is the mirror of rotateLeft, pivoting on the left child of i.
// Time: O(1); Space: O(1)
func (u *base[S]) rotateRight(i S) {
	yi := u.ifs[i].l
	if yi == 0 {
		return
	}
	t := u.ifs[yi].r
	u.ifs[i].l = t
	if t != 0 {
		u.ifs[t].p = i
	}
	u.replace(i, yi)
	u.ifs[yi].r = i
	u.ifs[i].p = yi
}
