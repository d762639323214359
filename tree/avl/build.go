package avl

import (
	"math/rand"
)

// Permutation returns the keys [0, num) shuffled by a source seeded
// with seed, which makes the order repeatable.
func Permutation(num int, seed int64) []int {
	rd := rand.New(rand.NewSource(seed))

	keys := make([]int, num)
	for i := 0; i < num; i++ {
		keys[i] = i
	}

	rd.Shuffle(num, func(i, j int) {
		keys[i], keys[j] = keys[j], keys[i]
	})

	return keys
}

// BuildRandom builds a tree with num keys.
// Keys are in the range [0, num) and are inserted in a random order.
// The seed for the random insert order is a parameter,
// which ensures repeatable results.
func BuildRandom(num int, seed int64) *Tree[int] {
	return NewOrdered(Permutation(num, seed)...)
}
