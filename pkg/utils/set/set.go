package set

import (
	"cmp"
	"slices"
)

func New[T comparable](values ...T) *Set[T] {
	s := &Set[T]{m: make(map[T]struct{}, len(values))}
	for _, v := range values {
		s.Add(v)
	}
	return s
}

type Set[T comparable] struct {
	m map[T]struct{}
}

func (s *Set[T]) Add(v T) {
	s.m[v] = struct{}{}
}

func (s *Set[T]) Has(v T) bool {
	_, ok := s.m[v]
	return ok
}

func (s *Set[T]) Delete(v T) {
	delete(s.m, v)
}

func (s *Set[T]) Len() int {
	return len(s.m)
}

func (s *Set[T]) Values() []T {
	values := make([]T, 0, len(s.m))
	for k := range s.m {
		values = append(values, k)
	}
	return values
}

// Equal reports whether both sets hold the same members.
func (s *Set[T]) Equal(other *Set[T]) bool {
	if s.Len() != other.Len() {
		return false
	}
	for k := range s.m {
		if !other.Has(k) {
			return false
		}
	}
	return true
}

// Sorted returns the members of s in ascending order.
func Sorted[T cmp.Ordered](s *Set[T]) []T {
	values := s.Values()
	slices.Sort(values)
	return values
}
