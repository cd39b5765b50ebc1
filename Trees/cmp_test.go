package Trees

import (
	"testing"

	"github.com/alphadose/haxmap"
	"github.com/emirpasic/gods/trees/redblacktree"
	"github.com/emirpasic/gods/utils"
	"github.com/google/btree"
	"github.com/petar/GoLLRB/llrb"
)

// compares the traversal order and the counts with other ordered containers.
// gods' redblacktree is given the counts as values; google/btree and GoLLRB only
// hold the distinct keys, and a haxmap holds the counts for them.

func TestTree_CmpGods(t *testing.T) {
	tree := New[int, uint](0)
	gt := redblacktree.NewWith(utils.IntComparator)
	for range tAddN {
		v := rg.Intn(tAddValRange / 8)
		tree.Insert(v)
		c, _ := gt.Get(v)
		if c == nil {
			c = uint(0)
		}
		gt.Put(v, c.(uint)+1)
	}
	if int(tree.Size()) != gt.Size() {
		t.Fatalf("tree size is %d, gods has %d", tree.Size(), gt.Size())
	}
	keys, values := gt.Keys(), gt.Values()
	for i, p := range tree.Positions() {
		if p.Element() != keys[i].(int) || p.Count() != values[i].(uint) {
			t.Fatalf("position %d is (%d,%d), gods has (%v,%v)", i, p.Element(), p.Count(), keys[i], values[i])
		}
	}
}

func TestTree_CmpBTree(t *testing.T) {
	tree := New[int, uint](0)
	bt := btree.NewOrderedG[int](32)
	lt := llrb.New()
	counts := haxmap.New[int, uint]()
	for range tAddN {
		v := rg.Intn(tAddValRange)
		tree.Insert(v)
		bt.ReplaceOrInsert(v)
		lt.ReplaceOrInsert(llrb.Int(v))
		c, _ := counts.Get(v)
		counts.Set(v, c+1)
	}
	if int(tree.Size()) != bt.Len() || int(tree.Size()) != lt.Len() || uintptr(tree.Size()) != counts.Len() {
		t.Fatalf("tree size is %d, btree has %d, llrb has %d, haxmap has %d", tree.Size(), bt.Len(), lt.Len(), counts.Len())
	}
	var fromB []int
	bt.Ascend(func(v int) bool {
		fromB = append(fromB, v)
		return true
	})
	var fromL []int
	lt.AscendGreaterOrEqual(lt.Min(), func(i llrb.Item) bool {
		fromL = append(fromL, int(i.(llrb.Int)))
		return true
	})
	i := 0
	tree.Range(func(v int, c uint) bool {
		if v != fromB[i] || v != fromL[i] {
			t.Errorf("element %d is %d, btree has %d, llrb has %d", i, v, fromB[i], fromL[i])
			return false
		}
		if want, _ := counts.Get(v); c != want {
			t.Errorf("count of %d is %d, want %d", v, c, want)
			return false
		}
		i++
		return true
	})
}

func BenchmarkCmp_Tree(b *testing.B) {
	for range b.N {
		tree := New[int, uint32](0)
		for range bAddN {
			tree.Insert(rg.Intn(bValRange))
		}
	}
}

func BenchmarkCmp_Gods(b *testing.B) {
	for range b.N {
		gt := redblacktree.NewWith(utils.IntComparator)
		for range bAddN {
			v := rg.Intn(bValRange)
			if c, ok := gt.Get(v); ok {
				gt.Put(v, c.(uint32)+1)
			} else {
				gt.Put(v, uint32(1))
			}
		}
	}
}

type counted struct {
	v int
	c uint32
}

func BenchmarkCmp_BTree(b *testing.B) {
	for range b.N {
		bt := btree.NewG[*counted](32, func(a, b *counted) bool { return a.v < b.v })
		key := &counted{}
		for range bAddN {
			key.v = rg.Intn(bValRange)
			if c, ok := bt.Get(key); ok {
				c.c++
			} else {
				bt.ReplaceOrInsert(&counted{key.v, 1})
			}
		}
	}
}

func BenchmarkCmp_LLRB(b *testing.B) {
	for range b.N {
		lt := llrb.New()
		counts := haxmap.New[int, uint32]()
		for range bAddN {
			v := rg.Intn(bValRange)
			lt.ReplaceOrInsert(llrb.Int(v))
			c, _ := counts.Get(v)
			counts.Set(v, c+1)
		}
	}
}
