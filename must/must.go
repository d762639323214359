// Package must unwraps (value, error) results where an error can
// only mean a broken program, such as in command setup.
package must

// Must2 returns p1, or panics with err if it is not nil.
func Must2[T1 any](p1 T1, err error) T1 {
	if err != nil {
		panic(err)
	}
	return p1
}
