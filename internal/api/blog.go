package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/terravita/terravita/backend/content-service/internal/catalog"
	"github.com/terravita/terravita/backend/content-service/internal/models"
)

// postDetail is a post with its relations resolved for the article page.
type postDetail struct {
	models.BlogPost
	Author   models.BlogAuthor   `json:"author"`
	Reviewer *models.BlogAuthor  `json:"reviewer,omitempty"`
	Category models.BlogCategory `json:"category"`
	Tags     []models.BlogTag    `json:"tags"`
}

func (h *Handler) resolvePost(cat *catalog.Catalog, post models.BlogPost) postDetail {
	detail := postDetail{BlogPost: post}
	// Relations were checked at load time; lookups here cannot miss.
	detail.Author, _ = cat.AuthorByID(post.AuthorID)
	detail.Category, _ = cat.BlogCategoryByID(post.CategoryID)
	detail.Tags = cat.TagsByIDs(post.TagIDs)
	if post.ReviewerID != "" {
		if reviewer, ok := cat.ReviewerByID(post.ReviewerID); ok {
			detail.Reviewer = &reviewer
		}
	}
	return detail
}

// GetPosts handles GET /blog/posts: the paginated listing with optional
// category, tag and free-text filters. Out-of-range pages come back empty.
func (h *Handler) GetPosts(c *gin.Context) {
	cat := h.Catalog()

	var posts []models.BlogPost
	switch {
	case c.Query("category") != "":
		posts = cat.PostsByCategory(c.Query("category"))
	case c.Query("tag") != "":
		posts = cat.PostsByTag(c.Query("tag"))
	default:
		posts = cat.LatestPosts(len(cat.Posts()))
	}

	if q := strings.TrimSpace(c.Query("q")); q != "" {
		needle := strings.ToLower(q)
		matched := make([]models.BlogPost, 0, len(posts))
		for _, p := range posts {
			if strings.Contains(strings.ToLower(p.Title), needle) ||
				strings.Contains(strings.ToLower(p.Excerpt), needle) {
				matched = append(matched, p)
			}
		}
		posts = matched
	}

	page := intQuery(c, "page", 1)
	size := intQuery(c, "page_size", defaultPageSize)
	if size < 1 || size > maxPageSize {
		size = defaultPageSize
	}

	c.JSON(http.StatusOK, catalog.Paginate(posts, page, size))
}

// GetPost handles GET /blog/posts/:slug
func (h *Handler) GetPost(c *gin.Context) {
	cat := h.Catalog()
	post, ok := cat.PostBySlug(c.Param("slug"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}
	c.JSON(http.StatusOK, h.resolvePost(cat, post))
}

// GetRelatedPosts handles GET /blog/posts/:slug/related
func (h *Handler) GetRelatedPosts(c *gin.Context) {
	cat := h.Catalog()
	if _, ok := cat.PostBySlug(c.Param("slug")); !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}
	limit := intQuery(c, "limit", 3)
	c.JSON(http.StatusOK, gin.H{"posts": cat.RelatedPosts(c.Param("slug"), limit)})
}

// GetLatestPosts handles GET /blog/posts/latest
func (h *Handler) GetLatestPosts(c *gin.Context) {
	limit := intQuery(c, "limit", 3)
	c.JSON(http.StatusOK, gin.H{"posts": h.Catalog().LatestPosts(limit)})
}

// GetBlogCategories handles GET /blog/categories
func (h *Handler) GetBlogCategories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"categories": h.Catalog().BlogCategories()})
}
