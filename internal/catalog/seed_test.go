package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The embedded seed must always pass the integrity checks; a broken seed
// would take the service down at startup.
func TestLoadSeed(t *testing.T) {
	data, err := LoadSeed()
	require.NoError(t, err)

	c, err := New(data)
	require.NoError(t, err)

	assert.NotEmpty(t, c.Products())
	assert.NotEmpty(t, c.Categories())
	assert.NotEmpty(t, c.Posts())
	assert.NotEmpty(t, c.Jobs())

	if data.ProductOfTheMonthID != "" {
		_, ok := c.ProductOfTheMonth()
		assert.True(t, ok, "pinned product must exist in the seed")
	}
}
