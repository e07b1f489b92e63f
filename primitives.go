package listwrap

import (
	"github.com/pkg/errors"
)

var (
	// ErrMissingPrimitive signals that a required list primitive was not
	// supplied or is nil. The wrapped message names the primitive.
	ErrMissingPrimitive = errors.New("required list primitive is missing")

	// ErrNilPredicate signals that RemoveIf received a nil predicate.
	ErrNilPredicate = errors.New("remove predicate must not be nil")
)

// Primitives is the capability set a collaborator supplies to the wrapper.
// The collaborator owns all state; the wrapper only composes these calls.
type Primitives[T comparable] struct {
	// Add inserts an item. The wrapper checks Has before calling Add,
	// so duplicate insertion never reaches a well-behaved collaborator.
	Add func(item T)

	// Remove deletes an item if present and is a no-op otherwise.
	Remove func(item T)

	// Has reports membership.
	Has func(item T) bool

	// Values returns a snapshot or live view of all current items.
	Values func() []T

	// Item returns the item at index; the index domain is [0, Length()).
	// Behavior outside that domain is collaborator-defined.
	Item func(index int) T

	// Length returns the current item count.
	Length func() int

	// RemoveAll clears the collection in one call. Optional: when nil it
	// is synthesized from Remove over a Values snapshot.
	RemoveAll func()

	// Sanitize normalizes a batch of candidate items before any membership
	// or mutation logic runs. Optional: when nil batches pass through
	// unchanged.
	Sanitize func(items []T) []T
}

func (p *Primitives[T]) validate() error {
	switch {
	case p.Add == nil:
		return errors.Wrap(ErrMissingPrimitive, "add")
	case p.Remove == nil:
		return errors.Wrap(ErrMissingPrimitive, "remove")
	case p.Has == nil:
		return errors.Wrap(ErrMissingPrimitive, "has")
	case p.Values == nil:
		return errors.Wrap(ErrMissingPrimitive, "values")
	case p.Item == nil:
		return errors.Wrap(ErrMissingPrimitive, "item")
	case p.Length == nil:
		return errors.Wrap(ErrMissingPrimitive, "length")
	}

	return nil
}

func (p *Primitives[T]) applyDefaults() {
	if p.RemoveAll == nil {
		remove, values := p.Remove, p.Values
		p.RemoveAll = func() {
			for _, item := range values() {
				remove(item)
			}
		}
	}

	if p.Sanitize == nil {
		p.Sanitize = func(items []T) []T { return items }
	}
}
