package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaginate(t *testing.T) {
	items := make([]int, 13)
	for i := range items {
		items[i] = i
	}

	t.Run("splits evenly", func(t *testing.T) {
		p1 := Paginate(items, 1, 6)
		assert.Len(t, p1.Items, 6)
		assert.Equal(t, 13, p1.Total)
		assert.Equal(t, 3, p1.TotalPages)

		p2 := Paginate(items, 2, 6)
		assert.Len(t, p2.Items, 6)
		assert.Equal(t, 6, p2.Items[0])

		p3 := Paginate(items, 3, 6)
		require.Len(t, p3.Items, 1)
		assert.Equal(t, 12, p3.Items[0])
	})

	t.Run("pages cover every item once", func(t *testing.T) {
		seen := make([]int, 0, len(items))
		for page := 1; page <= 3; page++ {
			seen = append(seen, Paginate(items, page, 6).Items...)
		}
		assert.Equal(t, items, seen)
	})

	t.Run("past the end", func(t *testing.T) {
		p := Paginate(items, 4, 6)
		assert.NotNil(t, p.Items)
		assert.Empty(t, p.Items)
		assert.Equal(t, 4, p.Page)
		assert.Equal(t, 13, p.Total)
	})

	t.Run("clamps low pages", func(t *testing.T) {
		p := Paginate(items, 0, 6)
		assert.Equal(t, 1, p.Page)
		assert.Equal(t, 0, p.Items[0])

		p = Paginate(items, -3, 6)
		assert.Equal(t, 1, p.Page)
	})

	t.Run("zero size", func(t *testing.T) {
		p := Paginate(items, 1, 0)
		assert.Empty(t, p.Items)
		assert.Equal(t, 13, p.Total)
	})

	t.Run("empty input", func(t *testing.T) {
		p := Paginate([]int{}, 1, 6)
		assert.Empty(t, p.Items)
		assert.Equal(t, 0, p.Total)
		assert.Equal(t, 0, p.TotalPages)
	})
}
