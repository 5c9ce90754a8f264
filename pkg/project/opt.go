package project

import "encoding/json"

// Opt holds a value that may be absent. The zero Opt is absent.
type Opt[T any] struct {
	value T
	ok    bool
}

func Some[T any](v T) Opt[T] {
	return Opt[T]{value: v, ok: true}
}

func None[T any]() Opt[T] {
	return Opt[T]{}
}

func (o Opt[T]) Get() (T, bool) {
	return o.value, o.ok
}

func (o Opt[T]) IsSet() bool {
	return o.ok
}

// Or returns the held value, or fallback when absent.
func (o Opt[T]) Or(fallback T) T {
	if o.ok {
		return o.value
	}
	return fallback
}

func (o Opt[T]) String() string {
	if !o.ok {
		return "<absent>"
	}
	b, err := json.Marshal(o.value)
	if err != nil {
		return "<invalid>"
	}
	return string(b)
}
