package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/terravita/terravita/backend/content-service/internal/models"
)

func TestPostBySlug(t *testing.T) {
	c := mustCatalog(t, fixtureData())

	p, ok := c.PostBySlug("extraction-methods")
	require.True(t, ok)
	assert.Equal(t, "pst-2", p.ID)

	_, ok = c.PostBySlug("missing")
	assert.False(t, ok)
}

func TestPostsByCategory(t *testing.T) {
	c := mustCatalog(t, fixtureData())

	science := c.PostsByCategory("science")
	require.Len(t, science, 2)
	assert.Equal(t, "pst-1", science[0].ID)
	assert.Equal(t, "pst-2", science[1].ID)

	assert.Empty(t, c.PostsByCategory("no-such"))
}

func TestPostsByTag(t *testing.T) {
	c := mustCatalog(t, fixtureData())

	curcumin := c.PostsByTag("curcumin")
	require.Len(t, curcumin, 2)

	sourcing := c.PostsByTag("sourcing")
	require.Len(t, sourcing, 1)
	assert.Equal(t, "pst-3", sourcing[0].ID)

	assert.Empty(t, c.PostsByTag("no-such"))
}

func TestRelatedPosts(t *testing.T) {
	c := mustCatalog(t, fixtureData())

	t.Run("category outweighs a single tag", func(t *testing.T) {
		// pst-2 shares category and one tag with pst-1 (score 4); pst-3
		// shares nothing and is excluded.
		got := c.RelatedPosts("curcumin-absorption", 5)
		require.Len(t, got, 1)
		assert.Equal(t, "pst-2", got[0].ID)
	})

	t.Run("zero overlap excluded", func(t *testing.T) {
		got := c.RelatedPosts("turmeric-sourcing", 5)
		assert.Empty(t, got)
	})

	t.Run("ties keep catalog order", func(t *testing.T) {
		data := fixtureData()
		data.Posts = append(data.Posts,
			models.BlogPost{ID: "pst-4", Slug: "shelf-life", Title: "Shelf Life", AuthorID: "aut-1", CategoryID: "bct-1", PublishedAt: day("2024-04-01"), UpdatedAt: day("2024-04-01")},
			models.BlogPost{ID: "pst-5", Slug: "qc-methods", Title: "QC Methods", AuthorID: "aut-1", CategoryID: "bct-1", PublishedAt: day("2024-05-01"), UpdatedAt: day("2024-05-01")},
		)
		cc := mustCatalog(t, data)

		// pst-4 and pst-5 both score 3 against pst-2 (category only) and
		// pst-1 scores 4; ties fall back to catalog order.
		got := cc.RelatedPosts("extraction-methods", 5)
		require.Len(t, got, 3)
		assert.Equal(t, "pst-1", got[0].ID)
		assert.Equal(t, "pst-4", got[1].ID)
		assert.Equal(t, "pst-5", got[2].ID)
	})

	t.Run("limit truncates", func(t *testing.T) {
		got := c.RelatedPosts("extraction-methods", 1)
		require.Len(t, got, 1)
		assert.Equal(t, "pst-1", got[0].ID)
	})

	t.Run("unknown slug", func(t *testing.T) {
		assert.Empty(t, c.RelatedPosts("missing", 5))
	})
}

func TestLatestPosts(t *testing.T) {
	c := mustCatalog(t, fixtureData())

	got := c.LatestPosts(10)
	require.Len(t, got, 3)
	assert.Equal(t, "pst-2", got[0].ID) // 2024-03-05
	assert.Equal(t, "pst-3", got[1].ID) // 2024-02-15
	assert.Equal(t, "pst-1", got[2].ID) // 2024-01-10

	top := c.LatestPosts(1)
	require.Len(t, top, 1)
	assert.Equal(t, "pst-2", top[0].ID)

	assert.Empty(t, c.LatestPosts(0))
}

func TestLatestPostsSameInstantKeepsCatalogOrder(t *testing.T) {
	data := fixtureData()
	for i := range data.Posts {
		data.Posts[i].PublishedAt = day("2024-06-01")
		data.Posts[i].UpdatedAt = day("2024-06-01")
	}
	c := mustCatalog(t, data)

	got := c.LatestPosts(10)
	require.Len(t, got, 3)
	assert.Equal(t, "pst-1", got[0].ID)
	assert.Equal(t, "pst-2", got[1].ID)
	assert.Equal(t, "pst-3", got[2].ID)
}

func TestTagsByIDs(t *testing.T) {
	c := mustCatalog(t, fixtureData())

	tags := c.TagsByIDs([]string{"tag-1", "tag-404", "tag-3"})
	require.Len(t, tags, 2)
	assert.Equal(t, "tag-1", tags[0].ID)
	assert.Equal(t, "tag-3", tags[1].ID)

	assert.Empty(t, c.TagsByIDs(nil))
}

func TestAuthorAndReviewerLookup(t *testing.T) {
	c := mustCatalog(t, fixtureData())

	a, ok := c.AuthorByID("aut-1")
	require.True(t, ok)
	assert.Equal(t, "Dr. Elena Petrova", a.Name)

	r, ok := c.ReviewerByID("aut-2")
	require.True(t, ok)
	assert.Equal(t, "Marco Reyes", r.Name)

	_, ok = c.AuthorByID("aut-404")
	assert.False(t, ok)
}
