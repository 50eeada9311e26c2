package catalog

import (
	"github.com/terravita/terravita/backend/content-service/internal/models"
)

// Query methods are pure reads over the immutable catalog: same arguments,
// same catalog, same answer. Missing entities come back as (zero, false);
// filters on unknown slugs come back as empty slices, never errors.

// ProductBySlug looks up a product by its URL slug. Exact match only.
func (c *Catalog) ProductBySlug(slug string) (models.Product, bool) {
	i, ok := c.productBySlug[slug]
	if !ok {
		return models.Product{}, false
	}
	return c.data.Products[i], true
}

// ProductByID looks up a product by id.
func (c *Catalog) ProductByID(id string) (models.Product, bool) {
	i, ok := c.productByID[id]
	if !ok {
		return models.Product{}, false
	}
	return c.data.Products[i], true
}

// ProductsByCategory returns every product in the category, in catalog order.
// Unknown slugs yield an empty slice.
func (c *Catalog) ProductsByCategory(slug string) []models.Product {
	out := make([]models.Product, 0)
	for _, p := range c.data.Products {
		if p.CategorySlug == slug {
			out = append(out, p)
		}
	}
	return out
}

// Products returns the full catalog in insertion order.
func (c *Catalog) Products() []models.Product {
	out := make([]models.Product, len(c.data.Products))
	copy(out, c.data.Products)
	return out
}

// FeaturedProducts returns up to n flagged products, in catalog order.
func (c *Catalog) FeaturedProducts(n int) []models.Product {
	out := make([]models.Product, 0)
	if n <= 0 {
		return out
	}
	for _, p := range c.data.Products {
		if !p.Featured {
			continue
		}
		out = append(out, p)
		if len(out) == n {
			break
		}
	}
	return out
}

// RelatedProducts returns up to n products related to the given one, never
// including it. Same-category products come first, in catalog order; when a
// product-type scope is given, same-type products from other categories
// follow, and everything is restricted to that type. Fewer than n qualifying
// products means a shorter result, never padding.
func (c *Catalog) RelatedProducts(id string, n int, scope models.ProductType) []models.Product {
	out := make([]models.Product, 0)
	src, ok := c.ProductByID(id)
	if !ok || n <= 0 {
		return out
	}
	matches := func(p models.Product) bool {
		return p.ID != id && (scope == "" || p.Type == scope)
	}
	for _, p := range c.data.Products {
		if matches(p) && p.CategorySlug == src.CategorySlug {
			out = append(out, p)
			if len(out) == n {
				return out
			}
		}
	}
	if scope == "" {
		return out
	}
	for _, p := range c.data.Products {
		if matches(p) && p.CategorySlug != src.CategorySlug {
			out = append(out, p)
			if len(out) == n {
				return out
			}
		}
	}
	return out
}

// ProductOfTheMonth resolves the pinned product. A missing or stale pin is
// not an error; the caller simply omits the section.
func (c *Catalog) ProductOfTheMonth() (models.Product, bool) {
	if c.data.ProductOfTheMonthID == "" {
		return models.Product{}, false
	}
	return c.ProductByID(c.data.ProductOfTheMonthID)
}

// CategoryBySlug looks up a product category.
func (c *Catalog) CategoryBySlug(slug string) (models.ProductCategory, bool) {
	i, ok := c.categoryBySlug[slug]
	if !ok {
		return models.ProductCategory{}, false
	}
	return c.data.Categories[i], true
}

// Categories returns all product categories in catalog order.
func (c *Catalog) Categories() []models.ProductCategory {
	out := make([]models.ProductCategory, len(c.data.Categories))
	copy(out, c.data.Categories)
	return out
}

// JobBySlug looks up a career opening.
func (c *Catalog) JobBySlug(slug string) (models.JobOpening, bool) {
	i, ok := c.jobBySlug[slug]
	if !ok {
		return models.JobOpening{}, false
	}
	return c.data.Jobs[i], true
}

// Jobs returns all openings in catalog order.
func (c *Catalog) Jobs() []models.JobOpening {
	out := make([]models.JobOpening, len(c.data.Jobs))
	copy(out, c.data.Jobs)
	return out
}

// Events returns the company's trade shows and exhibitions.
func (c *Catalog) Events() []models.Event {
	out := make([]models.Event, len(c.data.Events))
	copy(out, c.data.Events)
	return out
}

// Locations returns office and factory sites.
func (c *Catalog) Locations() []models.Location {
	out := make([]models.Location, len(c.data.Locations))
	copy(out, c.data.Locations)
	return out
}

// Certifications returns company-level quality credentials.
func (c *Catalog) Certifications() []models.Certification {
	out := make([]models.Certification, len(c.data.Certifications))
	copy(out, c.data.Certifications)
	return out
}
