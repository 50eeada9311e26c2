package api

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/terravita/terravita/backend/content-service/internal/catalog"
	"github.com/terravita/terravita/backend/content-service/internal/db"
	"github.com/terravita/terravita/backend/content-service/internal/email"
	"github.com/terravita/terravita/backend/content-service/internal/models"
	"github.com/terravita/terravita/backend/content-service/internal/storage"
)

const (
	defaultPageSize = 6
	maxPageSize     = 50
)

// Handler serves the content API. The catalog pointer is swapped atomically
// on reload so in-flight requests always see one consistent snapshot.
type Handler struct {
	cat     atomic.Pointer[catalog.Catalog]
	db      *db.Database
	mailer  *email.Service
	resumes *storage.S3Uploader
}

// NewHandler creates a handler serving the given catalog snapshot.
func NewHandler(cat *catalog.Catalog, database *db.Database, mailer *email.Service, resumes *storage.S3Uploader) *Handler {
	h := &Handler{db: database, mailer: mailer, resumes: resumes}
	h.cat.Store(cat)
	return h
}

// Catalog returns the current snapshot.
func (h *Handler) Catalog() *catalog.Catalog {
	return h.cat.Load()
}

// parseProductType validates an optional product_type query parameter
// against the closed set of kinds.
func parseProductType(raw string) (models.ProductType, bool) {
	if raw == "" {
		return "", true
	}
	t := models.ProductType(raw)
	return t, t.Valid()
}

// GetProducts handles GET /products with optional category, product_type and
// featured filters.
func (h *Handler) GetProducts(c *gin.Context) {
	cat := h.Catalog()

	scope, ok := parseProductType(c.Query("product_type"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product_type"})
		return
	}

	var products []models.Product
	if categorySlug := c.Query("category"); categorySlug != "" {
		products = cat.ProductsByCategory(categorySlug)
	} else {
		products = cat.Products()
	}

	featuredOnly := c.Query("featured") == "true"
	filtered := make([]models.Product, 0, len(products))
	for _, p := range products {
		if scope != "" && p.Type != scope {
			continue
		}
		if featuredOnly && !p.Featured {
			continue
		}
		filtered = append(filtered, p)
	}

	c.JSON(http.StatusOK, gin.H{"products": filtered, "total": len(filtered)})
}

// GetProduct handles GET /products/:slug
func (h *Handler) GetProduct(c *gin.Context) {
	product, ok := h.Catalog().ProductBySlug(c.Param("slug"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}
	c.JSON(http.StatusOK, product)
}

// GetRelatedProducts handles GET /products/:slug/related
func (h *Handler) GetRelatedProducts(c *gin.Context) {
	cat := h.Catalog()
	product, ok := cat.ProductBySlug(c.Param("slug"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	scope, ok := parseProductType(c.Query("product_type"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product_type"})
		return
	}
	limit := intQuery(c, "limit", 4)

	c.JSON(http.StatusOK, gin.H{"products": cat.RelatedProducts(product.ID, limit, scope)})
}

// GetFeaturedProducts handles GET /products/featured
func (h *Handler) GetFeaturedProducts(c *gin.Context) {
	limit := intQuery(c, "limit", 4)
	c.JSON(http.StatusOK, gin.H{"products": h.Catalog().FeaturedProducts(limit)})
}

// GetProductOfTheMonth handles GET /products/of-the-month. A missing
// pin is a plain 404; the site omits the section.
func (h *Handler) GetProductOfTheMonth(c *gin.Context) {
	product, ok := h.Catalog().ProductOfTheMonth()
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "No product of the month configured"})
		return
	}
	c.JSON(http.StatusOK, product)
}

// GetCategories handles GET /categories
func (h *Handler) GetCategories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"categories": h.Catalog().Categories()})
}

// GetCategory handles GET /categories/:slug
func (h *Handler) GetCategory(c *gin.Context) {
	category, ok := h.Catalog().CategoryBySlug(c.Param("slug"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
		return
	}
	c.JSON(http.StatusOK, category)
}

// GetCategoryProducts handles GET /categories/:slug/products. An unknown
// slug yields an empty list, not an error; the page shows a no-results state.
func (h *Handler) GetCategoryProducts(c *gin.Context) {
	products := h.Catalog().ProductsByCategory(c.Param("slug"))
	c.JSON(http.StatusOK, gin.H{"products": products, "total": len(products)})
}

// GetJobs handles GET /careers/jobs
func (h *Handler) GetJobs(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"jobs": h.Catalog().Jobs()})
}

// GetJob handles GET /careers/jobs/:slug
func (h *Handler) GetJob(c *gin.Context) {
	job, ok := h.Catalog().JobBySlug(c.Param("slug"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Job opening not found"})
		return
	}
	c.JSON(http.StatusOK, job)
}

// GetCompany handles GET /company: events, locations and certifications in
// one payload for the about pages.
func (h *Handler) GetCompany(c *gin.Context) {
	cat := h.Catalog()
	c.JSON(http.StatusOK, gin.H{
		"events":         cat.Events(),
		"locations":      cat.Locations(),
		"certifications": cat.Certifications(),
	})
}

// Health handles GET /health and /ready. The catalog is always loaded if the
// process is up; the database only matters when one is configured.
func (h *Handler) Health(c *gin.Context) {
	if h.db != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()
		if err := h.db.Health(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unhealthy", "database": err.Error()})
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

// intQuery parses a positive integer query parameter with a default.
func intQuery(c *gin.Context, name string, fallback int) int {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return fallback
	}
	return v
}
