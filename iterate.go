package listwrap

import (
	"context"
	"sort"

	"golang.org/x/exp/constraints"
)

// ForEachFn receives each item with its position in the current snapshot.
type ForEachFn[T comparable] func(item T, order int)

// ForEach iterates a snapshot of the current values.
func (w *Wrapper[T]) ForEach(f ForEachFn[T]) {
	for i, item := range w.p.Values() {
		f(item, i)
	}
}

// Items streams a snapshot of the current values. Every call takes a fresh
// snapshot, so iteration is restartable.
func (w *Wrapper[T]) Items(ctx context.Context) <-chan T {
	snapshot := w.p.Values()
	resultCh := make(chan T)

	go func() {
		defer close(resultCh)

		for _, item := range snapshot {
			select {
			case resultCh <- item:
			case <-ctx.Done():
				return
			}
		}
	}()

	return resultCh
}

// SortedValues returns the current values in ascending order, regardless
// of the collaborator's own ordering.
func SortedValues[T constraints.Ordered](w *Wrapper[T]) []T {
	values := append([]T(nil), w.Values()...)
	sort.Slice(values, func(i, j int) bool {
		return values[i] < values[j]
	})
	return values
}
