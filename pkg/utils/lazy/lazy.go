package lazy

import "sync"

// Value computes its result on first use. Errors are cached along with the
// value, so a failing computation is not retried.
type Value[T any] struct {
	get func() (T, error)
}

func New[T any](get func() (T, error)) *Value[T] {
	return &Value[T]{get: sync.OnceValues(get)}
}

func (v *Value[T]) Get() (T, error) {
	return v.get()
}

// Must returns the value and panics if computing it failed.
func (v *Value[T]) Must() T {
	value, err := v.get()
	if err != nil {
		panic(err)
	}
	return value
}
