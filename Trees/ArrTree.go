package Trees

import (
	"cmp"
	"iter"
	"math/bits"

	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"
)

// Tree is a counting red-black tree backed by arrays. Each distinct element is
// stored once together with the number of times it was inserted.
// T is the type of the elements, S is the unsigned type used for node indexes,
// counts and the size. Insert panics with ErrOverflow when S can't hold the next
// index or count.
// The worst case height of the tree is 2*log2(n+1).
type Tree[T any, S constraints.Unsigned] struct {
	base[S]
	vs []T //vs[i] corresponds to ifs[i+1]
	//returns negative number if first < second, 0 if first==second, positive number if first>second. see cmp.Compare for an example.
	Cmp func(T, T) int
}

// New returns an empty tree for ordered elements, compared with cmp.Compare.
// hint is the expected number of distinct elements.
func New[T cmp.Ordered, S constraints.Unsigned](hint S) *Tree[T, S] {
	return NewC[T, S](hint, cmp.Compare[T])
}

// NewC returns an empty tree ordered by the given three way comparison.
func NewC[T any, S constraints.Unsigned](hint S, cmp func(T, T) int) *Tree[T, S] {
	return &Tree[T, S]{base[S]{ifs: make([]info[S], 1, int(hint)+1)}, make([]T, 0, hint), cmp}
}

// Insert v. If an equal element is already stored its count is incremented and
// the tree keeps its shape. Otherwise v is attached as a red leaf with count 1
// and the tree is rebalanced. Returns true if v was new.
// Panics with ErrOverflow instead of wrapping an index or a count around.
// Time: O(log n)
func (u *Tree[T, S]) Insert(v T) bool {
	var par S
	left := false
	for curI := u.root; curI != 0; {
		if order := u.Cmp(v, u.vs[curI-1]); order < 0 {
			par, left, curI = curI, true, u.ifs[curI].l
		} else if order > 0 {
			par, left, curI = curI, false, u.ifs[curI].r
		} else {
			if u.ifs[curI].cnt == ^S(0) {
				panic(errors.Wrapf(ErrOverflow, "count of node %d", curI))
			}
			u.ifs[curI].cnt++
			return false
		}
	}
	if uint64(len(u.ifs)) > uint64(^S(0)) {
		panic(errors.Wrapf(ErrOverflow, "%d distinct elements", u.n))
	}
	ni := S(len(u.ifs))
	u.ifs = append(u.ifs, info[S]{p: par, cnt: 1, c: Red})
	u.vs = append(u.vs, v)
	if par == 0 {
		u.root = ni
	} else if left {
		u.ifs[par].l = ni
	} else {
		u.ifs[par].r = ni
	}
	u.n++
	u.fixUp(ni)
	return true
}

// InOrder calls f with every element and its count in ascending order, stopping
// early when f returns false. st is the buffer used as the traversal stack, it
// can be nil; the returned buffer can be passed to the next call.
// Time: O(n); Space: O(log n)
func (u *Tree[T, S]) InOrder(f func(T, S) bool, st []S) []S {
	return u.inOrder(func(i S) bool {
		return f(u.vs[i-1], u.ifs[i].cnt)
	}, st)
}

// Range is InOrder without a reusable buffer.
func (u *Tree[T, S]) Range(f func(T, S) bool) {
	u.InOrder(f, nil)
}

// All returns an iterator over the elements and their counts in ascending order.
func (u *Tree[T, S]) All() iter.Seq2[T, S] {
	return func(yield func(T, S) bool) {
		u.InOrder(yield, nil)
	}
}

// Positions of all the nodes in ascending order.
// Time: O(n); Space: O(n)
func (u *Tree[T, S]) Positions() []Position[T, S] {
	ps := make([]Position[T, S], 0, u.n)
	u.inOrder(func(i S) bool {
		ps = append(ps, Position[T, S]{u, i})
		return true
	}, make([]S, 0, 2*bits.Len(uint(u.n))))
	return ps
}

// Root position of the tree. The second return value is false if the tree is empty.
func (u *Tree[T, S]) Root() (Position[T, S], bool) {
	return Position[T, S]{u, u.root}, u.root != 0
}

// Clear the tree. The underlying arrays are kept for reuse.
func (u *Tree[T, S]) Clear() {
	clear(u.vs)
	u.vs = u.vs[:0]
	u.ifs = u.ifs[:1]
	u.root, u.n = 0, 0
}

// Check returns the first broken red-black tree property found, or nil.
// Recursive.
// Time: O(n)
func (u *Tree[T, S]) Check() error {
	if err := u.check(); err != nil {
		return err
	}
	var prev S
	var err error
	u.inOrder(func(i S) bool {
		if prev != 0 && u.Cmp(u.vs[prev-1], u.vs[i-1]) >= 0 {
			err = errors.Wrapf(ErrOrder, "node %d comes after node %d", i, prev)
			return false
		}
		prev = i
		return true
	}, nil)
	return err
}

// Corrupt returns whether the tree has broken structures.
// This is to be distinguished from whether the tree is balanced, which it always is when not corrupt.
func (u *Tree[T, S]) Corrupt() bool {
	return u.Check() != nil
}
