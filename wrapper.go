// Package listwrap decorates any collection exposing a minimal set of list
// primitives with composed, chainable operations such as Toggle, Replace and
// RemoveIf. All state lives in the wrapped collaborator.
package listwrap

// Wrapper augments a primitive capability set with derived operations.
// It holds no state beyond the bound primitives: every call is routed to
// the collaborator immediately, with no buffering.
type Wrapper[T comparable] struct {
	p Primitives[T]
}

// New validates the capability set and builds a Wrapper around it.
// Missing optional primitives are substituted with defaults.
func New[T comparable](p Primitives[T]) (*Wrapper[T], error) {
	if err := p.validate(); err != nil {
		return nil, err
	}

	p.applyDefaults()
	return &Wrapper[T]{p: p}, nil
}

// MustNew is like New but panics on an invalid capability set.
func MustNew[T comparable](p Primitives[T]) *Wrapper[T] {
	w, err := New(p)
	if err != nil {
		panic(err)
	}
	return w
}

// Has reports whether the batch is non-empty and every item is present.
// An empty batch is never "all present".
func (w *Wrapper[T]) Has(items ...T) bool {
	return w.hasAll(w.p.Sanitize(items))
}

func (w *Wrapper[T]) hasAll(items []T) bool {
	if len(items) == 0 {
		return false
	}

	for _, item := range items {
		if !w.p.Has(item) {
			return false
		}
	}

	return true
}

// HasAny reports whether at least one item of the batch is present.
func (w *Wrapper[T]) HasAny(items ...T) bool {
	for _, item := range w.p.Sanitize(items) {
		if w.p.Has(item) {
			return true
		}
	}

	return false
}

// Add is idempotent: items already present are skipped.
func (w *Wrapper[T]) Add(items ...T) *Wrapper[T] {
	w.addAbsent(w.p.Sanitize(items))
	return w
}

func (w *Wrapper[T]) addAbsent(items []T) {
	for _, item := range items {
		if !w.p.Has(item) {
			w.p.Add(item)
		}
	}
}

// Remove removes every item of the batch. Absent items are silently
// ignored, never an error.
func (w *Wrapper[T]) Remove(items ...T) *Wrapper[T] {
	w.removeEach(w.p.Sanitize(items))
	return w
}

func (w *Wrapper[T]) removeEach(items []T) {
	for _, item := range items {
		w.p.Remove(item)
	}
}

// RemoveIf removes exactly the items the predicate selects. The current
// index-to-item mapping is collected first and removal happens after, so
// the collection is never mutated while being indexed. Panics with
// ErrNilPredicate when predicate is nil.
func (w *Wrapper[T]) RemoveIf(predicate func(item T) bool) *Wrapper[T] {
	if predicate == nil {
		panic(ErrNilPredicate)
	}

	w.removeIf(predicate)
	return w
}

func (w *Wrapper[T]) removeIf(predicate func(item T) bool) {
	n := w.p.Length()
	doomed := make([]T, 0, n)
	for i := 0; i < n; i++ {
		if item := w.p.Item(i); predicate(item) {
			doomed = append(doomed, item)
		}
	}

	w.removeEach(doomed)
}

// RemoveAll empties the collection, preferring the collaborator's own
// RemoveAll when it was supplied.
func (w *Wrapper[T]) RemoveAll() *Wrapper[T] {
	w.p.RemoveAll()
	return w
}

// RemoveAllExcept removes every item not in the permitted batch.
func (w *Wrapper[T]) RemoveAllExcept(permitted ...T) *Wrapper[T] {
	keep := make(map[T]struct{}, len(permitted))
	for _, item := range w.p.Sanitize(permitted) {
		keep[item] = struct{}{}
	}

	w.removeIf(func(item T) bool {
		_, ok := keep[item]
		return !ok
	})

	return w
}

// Replace removes oldItems and adds newItems, but only when every item of
// oldItems is currently present; otherwise the collection is left
// completely unchanged. A nil slice is the empty batch.
func (w *Wrapper[T]) Replace(oldItems, newItems []T) *Wrapper[T] {
	olds := w.p.Sanitize(oldItems)
	if !w.hasAll(olds) {
		return w
	}

	w.removeEach(olds)
	w.addAbsent(w.p.Sanitize(newItems))
	return w
}

// Toggle flips each item of the batch independently: present items are
// removed, absent ones added. Each decision uses the state at the moment
// that item is processed, in the sanitized batch's order.
func (w *Wrapper[T]) Toggle(items ...T) *Wrapper[T] {
	for _, item := range w.p.Sanitize(items) {
		if w.p.Has(item) {
			w.p.Remove(item)
		} else {
			w.p.Add(item)
		}
	}

	return w
}

// ToggleTogether treats the batch as a group: when every item is present
// the whole group is removed, otherwise the missing items are added. After
// the call the group is all-in or all-out.
func (w *Wrapper[T]) ToggleTogether(items ...T) *Wrapper[T] {
	batch := w.p.Sanitize(items)
	if w.hasAll(batch) {
		w.removeEach(batch)
	} else {
		w.addAbsent(batch)
	}

	return w
}

// If applies thenItems when condition holds and elseItems otherwise. The
// rejected branch is removed before the chosen branch is added. A nil
// slice is the empty batch.
func (w *Wrapper[T]) If(condition bool, thenItems, elseItems []T) *Wrapper[T] {
	then := w.p.Sanitize(thenItems)
	alt := w.p.Sanitize(elseItems)

	if condition {
		w.removeEach(alt)
		w.addAbsent(then)
	} else {
		w.removeEach(then)
		w.addAbsent(alt)
	}

	return w
}

// Values delegates to the collaborator; item order is collaborator-defined.
func (w *Wrapper[T]) Values() []T {
	return w.p.Values()
}

// Item delegates to the collaborator. An index outside [0, Len()) is not
// validated here; the result is collaborator-defined.
func (w *Wrapper[T]) Item(index int) T {
	return w.p.Item(index)
}

func (w *Wrapper[T]) Len() int {
	return w.p.Length()
}
