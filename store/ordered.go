// Package store bundles reference collaborators for listwrap: concrete
// collections satisfying the primitive contract.
package store

import (
	"github.com/denismitr/dll"
)

type (
	Option[T comparable] func(cfg *config[T])

	config[T comparable] struct {
		sanitize func(items []T) []T
	}
)

// WithSanitize installs a batch sanitizer on the store, which the wrapper
// discovers through the Sanitizer capability.
func WithSanitize[T comparable](f func(items []T) []T) Option[T] {
	return func(cfg *config[T]) {
		cfg.sanitize = f
	}
}

// Dedup returns a sanitizer that keeps the first occurrence of each item,
// preserving batch order.
func Dedup[T comparable]() func(items []T) []T {
	return func(items []T) []T {
		seen := make(map[T]struct{}, len(items))
		result := make([]T, 0, len(items))
		for _, item := range items {
			if _, found := seen[item]; found {
				continue
			}
			seen[item] = struct{}{}
			result = append(result, item)
		}
		return result
	}
}

// Ordered - an insertion-ordered collection of unique items
type Ordered[T comparable] struct {
	m        map[T]*dll.Element[T]
	list     *dll.DoublyLinkedList[T]
	sanitize func(items []T) []T
}

func NewOrdered[T comparable](options ...Option[T]) *Ordered[T] {
	cfg := config[T]{}
	for _, o := range options {
		o(&cfg)
	}

	return &Ordered[T]{
		m:        make(map[T]*dll.Element[T]),
		list:     dll.New[T](),
		sanitize: cfg.sanitize,
	}
}

// Add is idempotent
func (s *Ordered[T]) Add(item T) {
	if _, found := s.m[item]; found {
		return
	}

	newEl := dll.NewElement(item)
	s.m[item] = newEl
	s.list.PushTail(newEl)
}

func (s *Ordered[T]) Remove(item T) {
	if el, found := s.m[item]; found {
		delete(s.m, item)
		s.list.Remove(el)
	}
}

func (s *Ordered[T]) Has(item T) bool {
	_, ok := s.m[item]
	return ok
}

func (s *Ordered[T]) Values() []T {
	items := make([]T, 0, len(s.m))
	curr := s.list.Head()
	for curr != nil {
		items = append(items, curr.Value())
		curr = curr.Next()
	}
	return items
}

// Item returns the value at index in insertion order, or the zero value
// when index is out of range.
func (s *Ordered[T]) Item(index int) T {
	if index < 0 || index >= len(s.m) {
		return getZero[T]()
	}

	curr := s.list.Head()
	for i := 0; i < index; i++ {
		curr = curr.Next()
	}
	return curr.Value()
}

func (s *Ordered[T]) Len() int {
	return len(s.m)
}

func (s *Ordered[T]) RemoveAll() {
	s.m = nil
	s.m = make(map[T]*dll.Element[T])
	s.list = nil
	s.list = dll.New[T]()
}

// Sanitize applies the configured sanitizer; without one, batches pass
// through unchanged.
func (s *Ordered[T]) Sanitize(items []T) []T {
	if s.sanitize == nil {
		return items
	}
	return s.sanitize(items)
}

func getZero[T any]() T {
	var result T
	return result
}
