package listwrap

import (
	"github.com/pkg/errors"
)

// List is the primitive contract in interface form. Any concrete type with
// these methods gains the full derived-operation set through Wrap.
type List[T comparable] interface {
	Add(item T)
	Remove(item T)
	Has(item T) bool
	Values() []T
	Item(index int) T
	Len() int
}

// Clearable marks a List that can empty itself in one call.
type Clearable interface {
	RemoveAll()
}

// Sanitizer marks a List that normalizes candidate batches before any
// membership or mutation logic.
type Sanitizer[T comparable] interface {
	Sanitize(items []T) []T
}

// Wrap builds a Wrapper from a List, discovering the optional Clearable
// and Sanitizer capabilities by type assertion.
func Wrap[T comparable](list List[T]) (*Wrapper[T], error) {
	if list == nil {
		return nil, errors.Wrap(ErrMissingPrimitive, "list")
	}

	p := Primitives[T]{
		Add:    list.Add,
		Remove: list.Remove,
		Has:    list.Has,
		Values: list.Values,
		Item:   list.Item,
		Length: list.Len,
	}

	if c, ok := list.(Clearable); ok {
		p.RemoveAll = c.RemoveAll
	}

	if s, ok := list.(Sanitizer[T]); ok {
		p.Sanitize = s.Sanitize
	}

	return New(p)
}

// MustWrap is like Wrap but panics on a nil list.
func MustWrap[T comparable](list List[T]) *Wrapper[T] {
	w, err := Wrap(list)
	if err != nil {
		panic(err)
	}
	return w
}
