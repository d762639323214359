package avl

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.lepak.sg/trees/testutils"
	"go.uber.org/goleak"
	"golang.org/x/exp/slices"
	"golang.org/x/sync/errgroup"
)

func TestLocked_Concurrent(t *testing.T) {
	const writers = 8
	const perWriter = 500

	l := NewLocked(NewOrdered[int]())
	g, ctx := errgroup.WithContext(context.Background())

	for w := 0; w < writers; w++ {
		g.Go(func() error {
			for i := 0; i < perWriter; i++ {
				l.Insert(w*perWriter + i)
			}
			// every other key goes again
			for i := 0; i < perWriter; i += 2 {
				if !l.Remove(w*perWriter + i) {
					t.Errorf("key %d vanished", w*perWriter+i)
				}
			}
			return nil
		})
	}

	for r := 0; r < 4; r++ {
		g.Go(func() error {
			for ctx.Err() == nil {
				keys := l.Keys()
				if !slices.IsSorted(keys) {
					t.Error("reader saw unsorted keys")
				}
				var err error
				l.View(func(tr *Tree[int]) {
					err = tr.Validate()
				})
				if err != nil {
					return err
				}
				if l.Len() == writers*perWriter/2 && len(keys) == l.Len() {
					return nil
				}
			}
			return nil
		})
	}

	require.NoError(t, g.Wait())

	assert.Equal(t, writers*perWriter/2, l.Len())
	for w := 0; w < writers; w++ {
		assert.False(t, l.Contains(w*perWriter))
		assert.True(t, l.Contains(w*perWriter+1))
	}

	lo, ok := l.Min()
	assert.True(t, ok)
	assert.Equal(t, 1, lo)
	hi, ok := l.Max()
	assert.True(t, ok)
	assert.Equal(t, writers*perWriter-1, hi)
	assert.LessOrEqual(t, float64(l.Height()), heightBound(l.Len()))

	l.Update(func(tr *Tree[int]) {
		tr.Clear()
		tr.Insert(3)
	})
	assert.Equal(t, []int{3}, l.Keys())

	l.Clear()
	assert.Equal(t, 0, l.Len())

	goleak.VerifyNone(t)
}

func TestNewLocked_Nil(t *testing.T) {
	assert.Panics(t, func() { NewLocked[int](nil) })
}

func TestInOrderCoroutine(t *testing.T) {
	tr := NewOrdered(4, 2, 6, 1, 3, 5, 7)

	testutils.DrainBlocking(t, []int{1, 2, 3, 4, 5, 6, 7}, tr.InOrderCoroutine().Items(), time.Second)
	testutils.DrainBlocking(t, nil, NewOrdered[int]().InOrderCoroutine().Items(), time.Second)

	co := tr.InOrderCoroutine()
	var got []int
	for k := range co.Items() {
		got = append(got, k)
		if k == 3 {
			co.Stop()
			break
		}
	}
	assert.Equal(t, []int{1, 2, 3}, got)

	goleak.VerifyNone(t)
}

func TestLocked_Empty(t *testing.T) {
	l := NewLocked(NewOrdered[string]())

	assert.Equal(t, 0, l.Len())
	assert.Equal(t, -1, l.Height())
	assert.Equal(t, []string{}, l.Keys())
	assert.False(t, l.Contains("a"))
	assert.False(t, l.Remove("a"))
	_, ok := l.Min()
	assert.False(t, ok)
	_, ok = l.Max()
	assert.False(t, ok)

	l.Insert("b")
	l.Insert("a")
	assert.Equal(t, 1, l.Height())
	l.Clear()
	assert.Equal(t, -1, l.Height())
}
