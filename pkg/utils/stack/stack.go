// Package stack is a small LIFO used to close nested structures in order.
package stack

import "iter"

func New[T any](values ...T) *Stack[T] {
	return &Stack[T]{items: values}
}

type Stack[T any] struct {
	items []T
}

func (s *Stack[T]) Push(items ...T) {
	s.items = append(s.items, items...)
}

func (s *Stack[T]) Pop() (T, bool) {
	if len(s.items) == 0 {
		return *new(T), false
	}
	item := s.items[len(s.items)-1]
	s.items = s.items[:len(s.items)-1]
	return item, true
}

func (s *Stack[T]) Peek() (T, bool) {
	if len(s.items) == 0 {
		return *new(T), false
	}
	return s.items[len(s.items)-1], true
}

func (s *Stack[T]) Len() int {
	return len(s.items)
}

// Drain pops every item, most recent first. Each item is removed before it
// is yielded, so Len reports what is still below it.
func (s *Stack[T]) Drain() iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			item, ok := s.Pop()
			if !ok || !yield(item) {
				return
			}
		}
	}
}
