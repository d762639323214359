// Package iterator provides tree iterators for use
// by tree implementations.
package iterator

import (
	"go.lepak.sg/trees/chops"
)

// Iterator describes the common interface for all
// iterators in this package.
// Next must always be called before Item, even for
// the first round of iteration.
// If Next returns false, Item must not be called.
// Next may be called any number of times.
// Item may be called any number of times if the
// last call to Next returned true.
// Reset rewinds the iterator to before the first item.
// The iterator may be abandoned at any time.
//
// The usual usage of an Iterator is like this:
//	i := someTree.Iterator()
//	for i.Next() {
//		k := i.Item()
//		... do stuff with k, or break ...
//	}
type Iterator[K any] interface {
	Next() bool
	Item() K
	Reset()
}

// Make sure this Iterator is kept in sync with the one in chops.
var _ chops.Iterator[int] = (Iterator[int])(nil)
