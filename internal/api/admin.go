package api

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/terravita/terravita/backend/content-service/internal/catalog"
)

// CatalogStats handles GET /admin/catalog/stats
func (h *Handler) CatalogStats(c *gin.Context) {
	cat := h.Catalog()
	c.JSON(http.StatusOK, gin.H{
		"products":        len(cat.Products()),
		"categories":      len(cat.Categories()),
		"posts":           len(cat.Posts()),
		"blog_categories": len(cat.BlogCategories()),
		"jobs":            len(cat.Jobs()),
		"events":          len(cat.Events()),
		"locations":       len(cat.Locations()),
		"certifications":  len(cat.Certifications()),
		"loaded_at":       cat.LoadedAt().UTC().Format(time.RFC3339),
	})
}

// ReloadCatalog handles POST /admin/catalog/reload. It rebuilds the catalog
// from the configured source and swaps it in atomically; readers in flight
// keep the snapshot they started with. A catalog that fails integrity
// checks is rejected and the current one stays live.
func (h *Handler) ReloadCatalog(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 30*time.Second)
	defer cancel()

	var (
		data catalog.Data
		err  error
	)
	if h.db != nil {
		data, err = h.db.LoadCatalog(ctx)
	} else {
		data, err = catalog.LoadSeed()
	}
	if err != nil {
		log.Printf("[ReloadCatalog] load failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load catalog data"})
		return
	}

	cat, err := catalog.New(data)
	if err != nil {
		log.Printf("[ReloadCatalog] rejected: %v", err)
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Catalog failed integrity checks: " + err.Error()})
		return
	}

	h.cat.Store(cat)
	log.Printf("[ReloadCatalog] catalog reloaded: %d products, %d posts", len(cat.Products()), len(cat.Posts()))
	c.JSON(http.StatusOK, gin.H{
		"message":  "Catalog reloaded",
		"products": len(cat.Products()),
		"posts":    len(cat.Posts()),
	})
}
