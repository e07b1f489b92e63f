package listwrap_test

import (
	"context"
	"testing"

	"github.com/lamansky/listwrap"
	"github.com/lamansky/listwrap/store"
	"github.com/stretchr/testify/assert"
)

func TestForEach(t *testing.T) {
	t.Run("visits every item in collaborator order", func(t *testing.T) {
		s := store.NewOrdered[string]()
		w := listwrap.MustWrap[string](s)
		w.Add("foo", "bar", "baz")

		var visited []string
		var orders []int
		w.ForEach(func(item string, order int) {
			visited = append(visited, item)
			orders = append(orders, order)
		})

		assert.Equal(t, []string{"foo", "bar", "baz"}, visited)
		assert.Equal(t, []int{0, 1, 2}, orders)
	})
}

func TestItems(t *testing.T) {
	t.Run("streams a full snapshot and restarts on each call", func(t *testing.T) {
		s := store.NewOrdered[int]()
		w := listwrap.MustWrap[int](s)
		w.Add(1, 2, 3)

		collect := func() []int {
			var result []int
			for item := range w.Items(context.Background()) {
				result = append(result, item)
			}
			return result
		}

		assert.Equal(t, []int{1, 2, 3}, collect())
		assert.Equal(t, []int{1, 2, 3}, collect())
	})

	t.Run("cancellation stops the stream", func(t *testing.T) {
		s := store.NewOrdered[int]()
		w := listwrap.MustWrap[int](s)
		w.Add(1, 2, 3)

		ctx, cancel := context.WithCancel(context.Background())

		ch := w.Items(ctx)
		first, ok := <-ch
		assert.True(t, ok)
		assert.Equal(t, 1, first)

		cancel()

		// the channel closes once the producer observes cancellation
		for range ch {
		}
	})
}

func TestSortedValues(t *testing.T) {
	s := store.NewOrdered[int]()
	w := listwrap.MustWrap[int](s)
	w.Add(3, 1, 2)

	assert.Equal(t, []int{1, 2, 3}, listwrap.SortedValues(w))
	// the collaborator's own order is untouched
	assert.Equal(t, []int{3, 1, 2}, w.Values())
}
