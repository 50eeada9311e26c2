package catalog

import (
	"sort"

	"github.com/terravita/terravita/backend/content-service/internal/models"
)

// Weight a shared category carries in related-post ranking, relative to one
// shared tag.
const relatedCategoryWeight = 3

// PostBySlug looks up a blog post by its URL slug.
func (c *Catalog) PostBySlug(slug string) (models.BlogPost, bool) {
	i, ok := c.postBySlug[slug]
	if !ok {
		return models.BlogPost{}, false
	}
	return c.data.Posts[i], true
}

// Posts returns all posts in catalog order.
func (c *Catalog) Posts() []models.BlogPost {
	out := make([]models.BlogPost, len(c.data.Posts))
	copy(out, c.data.Posts)
	return out
}

// PostsByCategory returns posts in the category named by slug, in catalog
// order. Unknown slugs yield an empty slice.
func (c *Catalog) PostsByCategory(categorySlug string) []models.BlogPost {
	out := make([]models.BlogPost, 0)
	ci, ok := c.blogCatBySlug[categorySlug]
	if !ok {
		return out
	}
	categoryID := c.data.BlogCategories[ci].ID
	for _, p := range c.data.Posts {
		if p.CategoryID == categoryID {
			out = append(out, p)
		}
	}
	return out
}

// PostsByTag returns posts carrying the tag named by slug, in catalog order.
func (c *Catalog) PostsByTag(tagSlug string) []models.BlogPost {
	out := make([]models.BlogPost, 0)
	ti, ok := c.tagBySlug[tagSlug]
	if !ok {
		return out
	}
	tagID := c.data.Tags[ti].ID
	for _, p := range c.data.Posts {
		for _, tid := range p.TagIDs {
			if tid == tagID {
				out = append(out, p)
				break
			}
		}
	}
	return out
}

// RelatedPosts ranks other posts by shared category and shared tags and
// returns the top limit. Ties keep catalog order. Posts sharing nothing with
// the source are never included.
func (c *Catalog) RelatedPosts(postSlug string, limit int) []models.BlogPost {
	out := make([]models.BlogPost, 0)
	src, ok := c.PostBySlug(postSlug)
	if !ok || limit <= 0 {
		return out
	}
	srcTags := make(map[string]bool, len(src.TagIDs))
	for _, tid := range src.TagIDs {
		srcTags[tid] = true
	}

	type scored struct {
		post  models.BlogPost
		score int
	}
	candidates := make([]scored, 0)
	for _, p := range c.data.Posts {
		if p.ID == src.ID {
			continue
		}
		score := 0
		if p.CategoryID == src.CategoryID {
			score += relatedCategoryWeight
		}
		for _, tid := range p.TagIDs {
			if srcTags[tid] {
				score++
			}
		}
		if score > 0 {
			candidates = append(candidates, scored{post: p, score: score})
		}
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score > candidates[j].score
	})
	for _, cand := range candidates {
		out = append(out, cand.post)
		if len(out) == limit {
			break
		}
	}
	return out
}

// LatestPosts returns up to limit posts, newest publishedAt first. Posts
// published at the same instant keep catalog order.
func (c *Catalog) LatestPosts(limit int) []models.BlogPost {
	out := make([]models.BlogPost, 0)
	if limit <= 0 {
		return out
	}
	all := c.Posts()
	sort.SliceStable(all, func(i, j int) bool {
		return all[i].PublishedAt.After(all[j].PublishedAt)
	})
	if limit > len(all) {
		limit = len(all)
	}
	return append(out, all[:limit]...)
}

// AuthorByID looks up a blog author.
func (c *Catalog) AuthorByID(id string) (models.BlogAuthor, bool) {
	i, ok := c.authorByID[id]
	if !ok {
		return models.BlogAuthor{}, false
	}
	return c.data.Authors[i], true
}

// ReviewerByID resolves a reviewer. Reviewers share the author collection.
func (c *Catalog) ReviewerByID(id string) (models.BlogAuthor, bool) {
	return c.AuthorByID(id)
}

// BlogCategoryByID looks up a blog category by id.
func (c *Catalog) BlogCategoryByID(id string) (models.BlogCategory, bool) {
	i, ok := c.blogCatByID[id]
	if !ok {
		return models.BlogCategory{}, false
	}
	return c.data.BlogCategories[i], true
}

// BlogCategoryBySlug looks up a blog category by slug.
func (c *Catalog) BlogCategoryBySlug(slug string) (models.BlogCategory, bool) {
	i, ok := c.blogCatBySlug[slug]
	if !ok {
		return models.BlogCategory{}, false
	}
	return c.data.BlogCategories[i], true
}

// BlogCategories returns all blog categories in catalog order.
func (c *Catalog) BlogCategories() []models.BlogCategory {
	out := make([]models.BlogCategory, len(c.data.BlogCategories))
	copy(out, c.data.BlogCategories)
	return out
}

// TagsByIDs resolves the subset of ids that exist; unknown ids are skipped.
// Tag lists on posts may reference tags retired independently, so an unknown
// id is not an error here.
func (c *Catalog) TagsByIDs(ids []string) []models.BlogTag {
	out := make([]models.BlogTag, 0, len(ids))
	for _, id := range ids {
		if i, ok := c.tagByID[id]; ok {
			out = append(out, c.data.Tags[i])
		}
	}
	return out
}

// TagBySlug looks up a tag by slug.
func (c *Catalog) TagBySlug(slug string) (models.BlogTag, bool) {
	i, ok := c.tagBySlug[slug]
	if !ok {
		return models.BlogTag{}, false
	}
	return c.data.Tags[i], true
}
