package catalog

import (
	"fmt"
	"time"

	"github.com/terravita/terravita/backend/content-service/internal/models"
)

// Data is the raw content set a Catalog is built from. It can come from the
// embedded seed files or from Postgres; the integrity rules are the same.
type Data struct {
	Products       []models.Product
	Categories     []models.ProductCategory
	Posts          []models.BlogPost
	Authors        []models.BlogAuthor
	BlogCategories []models.BlogCategory
	Tags           []models.BlogTag
	Jobs           []models.JobOpening
	Events         []models.Event
	Locations      []models.Location
	Certifications []models.Certification

	// ProductOfTheMonthID pins the highlighted product. It is allowed to be
	// empty or stale; resolution happens at query time.
	ProductOfTheMonthID string
}

// IntegrityError reports a broken cross-reference found while building the
// catalog. It always identifies the offending entity and the missing target.
type IntegrityError struct {
	Entity string
	ID     string
	Field  string
	Ref    string
	Detail string
}

func (e *IntegrityError) Error() string {
	if e.Ref != "" {
		return fmt.Sprintf("catalog integrity: %s %q field %s references unknown %q", e.Entity, e.ID, e.Field, e.Ref)
	}
	return fmt.Sprintf("catalog integrity: %s %q: %s", e.Entity, e.ID, e.Detail)
}

// Catalog is the immutable content store. Build it once with New; after that
// any number of goroutines may query it without coordination.
type Catalog struct {
	data     Data
	loadedAt time.Time

	productBySlug  map[string]int
	productByID    map[string]int
	categoryBySlug map[string]int
	categoryByID   map[string]int
	postBySlug     map[string]int
	authorByID     map[string]int
	blogCatByID    map[string]int
	blogCatBySlug  map[string]int
	tagByID        map[string]int
	tagBySlug      map[string]int
	jobBySlug      map[string]int
}

// New validates the data set and builds the lookup indexes. Any referential
// violation is fatal: the caller must not serve traffic with a nil catalog.
// The catalog copies the entity slices up front, so derived state never
// leaks into the caller's Data and the same value can be loaded again.
func New(data Data) (*Catalog, error) {
	data.Categories = append([]models.ProductCategory(nil), data.Categories...)
	data.Products = append([]models.Product(nil), data.Products...)
	data.Posts = append([]models.BlogPost(nil), data.Posts...)
	data.Authors = append([]models.BlogAuthor(nil), data.Authors...)
	data.BlogCategories = append([]models.BlogCategory(nil), data.BlogCategories...)
	data.Tags = append([]models.BlogTag(nil), data.Tags...)
	data.Jobs = append([]models.JobOpening(nil), data.Jobs...)
	data.Events = append([]models.Event(nil), data.Events...)
	data.Locations = append([]models.Location(nil), data.Locations...)
	data.Certifications = append([]models.Certification(nil), data.Certifications...)

	c := &Catalog{
		data:           data,
		loadedAt:       time.Now(),
		productBySlug:  make(map[string]int, len(data.Products)),
		productByID:    make(map[string]int, len(data.Products)),
		categoryBySlug: make(map[string]int, len(data.Categories)),
		categoryByID:   make(map[string]int, len(data.Categories)),
		postBySlug:     make(map[string]int, len(data.Posts)),
		authorByID:     make(map[string]int, len(data.Authors)),
		blogCatByID:    make(map[string]int, len(data.BlogCategories)),
		blogCatBySlug:  make(map[string]int, len(data.BlogCategories)),
		tagByID:        make(map[string]int, len(data.Tags)),
		tagBySlug:      make(map[string]int, len(data.Tags)),
		jobBySlug:      make(map[string]int, len(data.Jobs)),
	}

	if err := c.indexCategories(); err != nil {
		return nil, err
	}
	if err := c.indexProducts(); err != nil {
		return nil, err
	}
	if err := c.indexBlog(); err != nil {
		return nil, err
	}
	if err := c.indexJobs(); err != nil {
		return nil, err
	}
	if err := c.indexCompany(); err != nil {
		return nil, err
	}
	c.deriveFamilies()
	c.deriveCounts()
	return c, nil
}

// LoadedAt reports when this catalog snapshot was built.
func (c *Catalog) LoadedAt() time.Time {
	return c.loadedAt
}

func (c *Catalog) indexCategories() error {
	for i, cat := range c.data.Categories {
		if cat.ID == "" || cat.Slug == "" {
			return &IntegrityError{Entity: "category", ID: cat.ID, Detail: "missing id or slug"}
		}
		if _, dup := c.categoryByID[cat.ID]; dup {
			return &IntegrityError{Entity: "category", ID: cat.ID, Detail: "duplicate id"}
		}
		if _, dup := c.categoryBySlug[cat.Slug]; dup {
			return &IntegrityError{Entity: "category", ID: cat.ID, Detail: "duplicate slug " + cat.Slug}
		}
		c.categoryByID[cat.ID] = i
		c.categoryBySlug[cat.Slug] = i
	}
	return nil
}

func (c *Catalog) indexProducts() error {
	for i, p := range c.data.Products {
		if p.ID == "" || p.Slug == "" {
			return &IntegrityError{Entity: "product", ID: p.ID, Detail: "missing id or slug"}
		}
		if _, dup := c.productByID[p.ID]; dup {
			return &IntegrityError{Entity: "product", ID: p.ID, Detail: "duplicate id"}
		}
		if _, dup := c.productBySlug[p.Slug]; dup {
			return &IntegrityError{Entity: "product", ID: p.ID, Detail: "duplicate slug " + p.Slug}
		}
		if !p.Type.Valid() {
			return &IntegrityError{Entity: "product", ID: p.ID, Detail: fmt.Sprintf("invalid product type %q", p.Type)}
		}
		ci, ok := c.categoryBySlug[p.CategorySlug]
		if !ok {
			return &IntegrityError{Entity: "product", ID: p.ID, Field: "category_slug", Ref: p.CategorySlug}
		}
		if p.CategoryID != c.data.Categories[ci].ID {
			return &IntegrityError{Entity: "product", ID: p.ID, Field: "category_id", Ref: p.CategoryID}
		}
		if len(p.ChildIDs) != 0 {
			return &IntegrityError{Entity: "product", ID: p.ID, Detail: "child_products is derived and must not be set in source data"}
		}
		// Category name is display-only; take it from the category record so
		// it cannot drift.
		c.data.Products[i].CategoryName = c.data.Categories[ci].Name
		c.productByID[p.ID] = i
		c.productBySlug[p.Slug] = i
	}
	// Parent links can only be checked once every product is indexed.
	for _, p := range c.data.Products {
		if p.ParentID == "" {
			continue
		}
		if p.ParentID == p.ID {
			return &IntegrityError{Entity: "product", ID: p.ID, Detail: "product is its own parent"}
		}
		if _, ok := c.productByID[p.ParentID]; !ok {
			return &IntegrityError{Entity: "product", ID: p.ID, Field: "parent_product_id", Ref: p.ParentID}
		}
	}
	return nil
}

func (c *Catalog) indexBlog() error {
	for i, a := range c.data.Authors {
		if a.ID == "" {
			return &IntegrityError{Entity: "author", ID: a.ID, Detail: "missing id"}
		}
		if _, dup := c.authorByID[a.ID]; dup {
			return &IntegrityError{Entity: "author", ID: a.ID, Detail: "duplicate id"}
		}
		c.authorByID[a.ID] = i
	}
	for i, bc := range c.data.BlogCategories {
		if bc.ID == "" || bc.Slug == "" {
			return &IntegrityError{Entity: "blog category", ID: bc.ID, Detail: "missing id or slug"}
		}
		if _, dup := c.blogCatByID[bc.ID]; dup {
			return &IntegrityError{Entity: "blog category", ID: bc.ID, Detail: "duplicate id"}
		}
		if _, dup := c.blogCatBySlug[bc.Slug]; dup {
			return &IntegrityError{Entity: "blog category", ID: bc.ID, Detail: "duplicate slug " + bc.Slug}
		}
		c.blogCatByID[bc.ID] = i
		c.blogCatBySlug[bc.Slug] = i
	}
	for i, t := range c.data.Tags {
		if t.ID == "" || t.Slug == "" {
			return &IntegrityError{Entity: "tag", ID: t.ID, Detail: "missing id or slug"}
		}
		if _, dup := c.tagByID[t.ID]; dup {
			return &IntegrityError{Entity: "tag", ID: t.ID, Detail: "duplicate id"}
		}
		if _, dup := c.tagBySlug[t.Slug]; dup {
			return &IntegrityError{Entity: "tag", ID: t.ID, Detail: "duplicate slug " + t.Slug}
		}
		c.tagByID[t.ID] = i
		c.tagBySlug[t.Slug] = i
	}
	postIDs := make(map[string]bool, len(c.data.Posts))
	for i, p := range c.data.Posts {
		if p.ID == "" || p.Slug == "" {
			return &IntegrityError{Entity: "post", ID: p.ID, Detail: "missing id or slug"}
		}
		if postIDs[p.ID] {
			return &IntegrityError{Entity: "post", ID: p.ID, Detail: "duplicate id"}
		}
		if _, dup := c.postBySlug[p.Slug]; dup {
			return &IntegrityError{Entity: "post", ID: p.ID, Detail: "duplicate slug " + p.Slug}
		}
		if _, ok := c.authorByID[p.AuthorID]; !ok {
			return &IntegrityError{Entity: "post", ID: p.ID, Field: "author_id", Ref: p.AuthorID}
		}
		if p.ReviewerID != "" {
			if _, ok := c.authorByID[p.ReviewerID]; !ok {
				return &IntegrityError{Entity: "post", ID: p.ID, Field: "reviewer_id", Ref: p.ReviewerID}
			}
		}
		if _, ok := c.blogCatByID[p.CategoryID]; !ok {
			return &IntegrityError{Entity: "post", ID: p.ID, Field: "category_id", Ref: p.CategoryID}
		}
		for _, tid := range p.TagIDs {
			if _, ok := c.tagByID[tid]; !ok {
				return &IntegrityError{Entity: "post", ID: p.ID, Field: "tag_ids", Ref: tid}
			}
		}
		if p.UpdatedAt.Before(p.PublishedAt) {
			return &IntegrityError{Entity: "post", ID: p.ID, Detail: "updated_at precedes published_at"}
		}
		postIDs[p.ID] = true
		c.postBySlug[p.Slug] = i
	}
	return nil
}

func (c *Catalog) indexJobs() error {
	jobIDs := make(map[string]bool, len(c.data.Jobs))
	for i, j := range c.data.Jobs {
		if j.ID == "" || j.Slug == "" {
			return &IntegrityError{Entity: "job", ID: j.ID, Detail: "missing id or slug"}
		}
		if jobIDs[j.ID] {
			return &IntegrityError{Entity: "job", ID: j.ID, Detail: "duplicate id"}
		}
		if _, dup := c.jobBySlug[j.Slug]; dup {
			return &IntegrityError{Entity: "job", ID: j.ID, Detail: "duplicate slug " + j.Slug}
		}
		jobIDs[j.ID] = true
		c.jobBySlug[j.Slug] = i
	}
	return nil
}

// indexCompany has no cross-references to check; events, locations and
// certifications only require present, unique ids.
func (c *Catalog) indexCompany() error {
	eventIDs := make(map[string]bool, len(c.data.Events))
	for _, e := range c.data.Events {
		if e.ID == "" {
			return &IntegrityError{Entity: "event", Detail: "missing id"}
		}
		if eventIDs[e.ID] {
			return &IntegrityError{Entity: "event", ID: e.ID, Detail: "duplicate id"}
		}
		eventIDs[e.ID] = true
	}
	locationIDs := make(map[string]bool, len(c.data.Locations))
	for _, l := range c.data.Locations {
		if l.ID == "" {
			return &IntegrityError{Entity: "location", Detail: "missing id"}
		}
		if locationIDs[l.ID] {
			return &IntegrityError{Entity: "location", ID: l.ID, Detail: "duplicate id"}
		}
		locationIDs[l.ID] = true
	}
	certIDs := make(map[string]bool, len(c.data.Certifications))
	for _, cert := range c.data.Certifications {
		if cert.ID == "" {
			return &IntegrityError{Entity: "certification", Detail: "missing id"}
		}
		if certIDs[cert.ID] {
			return &IntegrityError{Entity: "certification", ID: cert.ID, Detail: "duplicate id"}
		}
		certIDs[cert.ID] = true
	}
	return nil
}

// deriveFamilies fills ChildIDs from the authoritative ParentID links, in
// catalog order, so the two sides of the relationship can never disagree.
func (c *Catalog) deriveFamilies() {
	for _, p := range c.data.Products {
		if p.ParentID == "" {
			continue
		}
		pi := c.productByID[p.ParentID]
		c.data.Products[pi].ChildIDs = append(c.data.Products[pi].ChildIDs, p.ID)
	}
}

func (c *Catalog) deriveCounts() {
	for i := range c.data.Categories {
		c.data.Categories[i].Count = 0
	}
	for _, p := range c.data.Products {
		c.data.Categories[c.categoryBySlug[p.CategorySlug]].Count++
	}
}
