package Sets

import "golang.org/x/exp/constraints"

// Bag is a multiset: inserting an element that is already present increments
// its count instead of storing it again.
type Bag[E any, S constraints.Unsigned] interface {
	//Insert e. Returns true if e wasn't present before.
	Insert(e E) bool
	//Size is the number of distinct elements, not the sum of the counts.
	Size() S
	Empty() bool
	//Range calls f with each distinct element and its count until f returns false.
	//Ordered bags give the elements in ascending order.
	Range(f func(e E, count S) bool)
}
