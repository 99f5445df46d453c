// Package sets provides a minimal generic hash set.
package sets

// Set is an unordered collection of distinct values.
// The zero value is ready to use.
type Set[T comparable] struct {
	m map[T]struct{}
}

// New returns an empty set with room for size elements.
func New[T comparable](size int) Set[T] {
	return Set[T]{
		m: make(map[T]struct{}, size),
	}
}

// Insert adds element to the set. It reports whether element was newly added.
func (set *Set[T]) Insert(element T) bool {
	if set.m == nil {
		set.m = make(map[T]struct{})
	}
	if _, present := set.m[element]; present {
		return false
	}
	set.m[element] = struct{}{}
	return true
}

func (set *Set[T]) Contains(element T) bool {
	_, present := set.m[element]
	return present
}

func (set *Set[T]) Len() int {
	return len(set.m)
}
