package testutils

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// recorder is a TestT that remembers failures instead of failing.
type recorder struct {
	errs []string
}

func (r *recorder) Helper()                      {}
func (r *recorder) Error(args ...any)            { r.errs = append(r.errs, fmt.Sprint(args...)) }
func (r *recorder) Errorf(f string, args ...any) { r.errs = append(r.errs, fmt.Sprintf(f, args...)) }

func filled(xs ...int) chan int {
	ch := make(chan int, len(xs))
	for _, x := range xs {
		ch <- x
	}
	close(ch)
	return ch
}

func TestDrainBlocking(t *testing.T) {
	ch := make(chan int)
	go func() {
		defer close(ch)
		for i := 0; i < 3; i++ {
			ch <- i
		}
	}()

	DrainBlocking(t, []int{0, 1, 2}, ch, time.Second)

	r := &recorder{}
	DrainBlocking[int](r, nil, make(chan int), 10*time.Millisecond)
	assert.Len(t, r.errs, 1)
}

func TestWaitClosed(t *testing.T) {
	assert.Equal(t, 3, WaitClosed(t, filled(4, 5, 6), time.Second))

	r := &recorder{}
	WaitClosed[int](r, make(chan int), 10*time.Millisecond)
	assert.Len(t, r.errs, 1)
}
