// Package testutils has assertions on channels that are shared by
// the tests of several packages.
//
// It must not import anything from this module, so that internal
// tests of any package here can use it.
package testutils

import (
	"time"

	"github.com/stretchr/testify/assert"
)

type TestT interface {
	Helper()
	Error(...any)
	Errorf(string, ...any) // also used by testify/assert
}

// DrainBlocking receives everything from ch until it is closed and
// expects exactly data, in order. It gives up if ch is not closed
// within timeout.
func DrainBlocking[T any](t TestT, data []T, ch <-chan T, timeout time.Duration) {
	t.Helper()
	got := make([]T, 0, len(data))
	deadline := time.After(timeout)

	for {
		select {
		case el, ok := <-ch:
			if !ok {
				assert.Equal(t, append([]T{}, data...), got)
				return
			}
			got = append(got, el)
		case <-deadline:
			t.Errorf("channel not closed after %v, received so far: %v", timeout, got)
			return
		}
	}
}

// WaitClosed discards anything sent on ch and expects it to be
// closed within timeout. It returns the number of discarded items.
func WaitClosed[T any](t TestT, ch <-chan T, timeout time.Duration) int {
	t.Helper()
	n := 0
	deadline := time.After(timeout)

	for {
		select {
		case _, ok := <-ch:
			if !ok {
				return n
			}
			n++
		case <-deadline:
			t.Errorf("channel not closed after %v", timeout)
			return n
		}
	}
}
