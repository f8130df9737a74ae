package lib

import (
	"sync"
)

// Set is thread-safe and can be passed by value.
type Set[T comparable] struct {
	data map[T]struct{}
	mu   *sync.RWMutex
}

func NewSet[T comparable]() Set[T] {
	return Set[T]{
		data: make(map[T]struct{}),
		mu:   &sync.RWMutex{},
	}
}

// SetOf returns a Set holding every element of elems.
func SetOf[T comparable](elems ...T) Set[T] {
	s := NewSet[T]()
	for _, elem := range elems {
		s.data[elem] = struct{}{}
	}
	return s
}

func (s Set[T]) Add(elem T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[elem] = struct{}{}
}

// AddNew adds elem and reports whether it was not already present.
func (s Set[T]) AddNew(elem T) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.data[elem]; exists {
		return false
	}
	s.data[elem] = struct{}{}
	return true
}

func (s Set[T]) Remove(elem T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, elem)
}

func (s Set[T]) Contains(elem T) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, exists := s.data[elem]
	return exists
}

func (s Set[T]) Size() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.data)
}

// AsSlice returns the elements in no particular order.
func (s Set[T]) AsSlice() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()

	elements := make([]T, 0, len(s.data))
	for elem := range s.data {
		elements = append(elements, elem)
	}

	return elements
}
