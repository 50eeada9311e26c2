package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/terravita/terravita/backend/content-service/internal/catalog"
	"github.com/terravita/terravita/backend/content-service/internal/models"
)

// LoadCatalog reads the full content set from Postgres. Rows come back in
// ordinal order so the in-memory catalog keeps the same insertion order an
// editor sees in the authoring tool. Referential integrity is NOT checked
// here; catalog.New is the single place that enforces it.
func (db *Database) LoadCatalog(ctx context.Context) (catalog.Data, error) {
	var data catalog.Data
	var err error

	if data.Categories, err = db.loadCategories(ctx); err != nil {
		return catalog.Data{}, fmt.Errorf("load categories: %w", err)
	}
	if data.Products, err = db.loadProducts(ctx); err != nil {
		return catalog.Data{}, fmt.Errorf("load products: %w", err)
	}
	if data.Authors, err = db.loadAuthors(ctx); err != nil {
		return catalog.Data{}, fmt.Errorf("load authors: %w", err)
	}
	if data.BlogCategories, err = db.loadBlogCategories(ctx); err != nil {
		return catalog.Data{}, fmt.Errorf("load blog categories: %w", err)
	}
	if data.Tags, err = db.loadTags(ctx); err != nil {
		return catalog.Data{}, fmt.Errorf("load tags: %w", err)
	}
	if data.Posts, err = db.loadPosts(ctx); err != nil {
		return catalog.Data{}, fmt.Errorf("load posts: %w", err)
	}
	if data.Jobs, err = db.loadJobs(ctx); err != nil {
		return catalog.Data{}, fmt.Errorf("load jobs: %w", err)
	}
	if data.Events, err = db.loadEvents(ctx); err != nil {
		return catalog.Data{}, fmt.Errorf("load events: %w", err)
	}
	if data.Locations, err = db.loadLocations(ctx); err != nil {
		return catalog.Data{}, fmt.Errorf("load locations: %w", err)
	}
	if data.Certifications, err = db.loadCertifications(ctx); err != nil {
		return catalog.Data{}, fmt.Errorf("load certifications: %w", err)
	}
	if data.ProductOfTheMonthID, err = db.loadSetting(ctx, "product_of_the_month_id"); err != nil {
		return catalog.Data{}, fmt.Errorf("load settings: %w", err)
	}

	return data, nil
}

func (db *Database) loadCategories(ctx context.Context) ([]models.ProductCategory, error) {
	rows, err := db.Pool.Query(ctx, `
        SELECT category_id, slug, name, COALESCE(description, ''), COALESCE(image, '')
        FROM product_categories
        ORDER BY ordinal, category_id
    `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categories := make([]models.ProductCategory, 0)
	for rows.Next() {
		var c models.ProductCategory
		if err := rows.Scan(&c.ID, &c.Slug, &c.Name, &c.Description, &c.Image); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

func (db *Database) loadProducts(ctx context.Context) ([]models.Product, error) {
	rows, err := db.Pool.Query(ctx, `
        SELECT
            p.product_id, p.slug, p.name,
            COALESCE(p.latin_name, ''), COALESCE(p.plant_part, ''),
            COALESCE(p.standardization, ''),
            COALESCE(p.short_description, ''), COALESCE(p.long_description, ''),
            p.category_id, COALESCE(c.slug, ''), COALESCE(c.name, ''),
            p.product_type,
            COALESCE(p.image, ''), COALESCE(p.brand_logo, ''),
            COALESCE(p.gallery, '{}'),
            COALESCE(p.certifications, '{}'),
            COALESCE(p.benefits, '{}'),
            COALESCE(p.applications, '{}'),
            COALESCE(p.is_featured, false),
            COALESCE(p.specifications, '{}'::jsonb),
            COALESCE(p.documents, '[]'::jsonb),
            COALESCE(p.faqs, '[]'::jsonb),
            COALESCE(p.narratives, '[]'::jsonb),
            COALESCE(p.parent_product_id, '')
        FROM products p
        LEFT JOIN product_categories c ON p.category_id = c.category_id
        ORDER BY p.ordinal, p.product_id
    `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := make([]models.Product, 0)
	for rows.Next() {
		var p models.Product
		var productType string
		if err := rows.Scan(
			&p.ID, &p.Slug, &p.Name,
			&p.LatinName, &p.PlantPart,
			&p.Standardization,
			&p.ShortDesc, &p.LongDesc,
			&p.CategoryID, &p.CategorySlug, &p.CategoryName,
			&productType,
			&p.Image, &p.BrandLogo,
			&p.Gallery,
			&p.Certifications,
			&p.Benefits,
			&p.Applications,
			&p.Featured,
			&p.Specifications,
			&p.Documents,
			&p.FAQs,
			&p.Narratives,
			&p.ParentID,
		); err != nil {
			return nil, err
		}
		// Unknown kinds are kept as-is here so catalog.New reports them as an
		// integrity failure naming the product.
		p.Type = models.ProductType(productType)
		products = append(products, p)
	}
	return products, rows.Err()
}

func (db *Database) loadAuthors(ctx context.Context) ([]models.BlogAuthor, error) {
	rows, err := db.Pool.Query(ctx, `
        SELECT author_id, name, COALESCE(role, ''), COALESCE(image, ''),
               COALESCE(bio, ''), COALESCE(certificates, '{}')
        FROM blog_authors
        ORDER BY ordinal, author_id
    `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	authors := make([]models.BlogAuthor, 0)
	for rows.Next() {
		var a models.BlogAuthor
		if err := rows.Scan(&a.ID, &a.Name, &a.Role, &a.Image, &a.Bio, &a.Certificates); err != nil {
			return nil, err
		}
		authors = append(authors, a)
	}
	return authors, rows.Err()
}

func (db *Database) loadBlogCategories(ctx context.Context) ([]models.BlogCategory, error) {
	rows, err := db.Pool.Query(ctx, `
        SELECT category_id, slug, name, COALESCE(description, '')
        FROM blog_categories
        ORDER BY ordinal, category_id
    `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categories := make([]models.BlogCategory, 0)
	for rows.Next() {
		var c models.BlogCategory
		if err := rows.Scan(&c.ID, &c.Slug, &c.Name, &c.Description); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

func (db *Database) loadTags(ctx context.Context) ([]models.BlogTag, error) {
	rows, err := db.Pool.Query(ctx, `
        SELECT tag_id, slug, name
        FROM blog_tags
        ORDER BY ordinal, tag_id
    `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tags := make([]models.BlogTag, 0)
	for rows.Next() {
		var t models.BlogTag
		if err := rows.Scan(&t.ID, &t.Slug, &t.Name); err != nil {
			return nil, err
		}
		tags = append(tags, t)
	}
	return tags, rows.Err()
}

func (db *Database) loadPosts(ctx context.Context) ([]models.BlogPost, error) {
	rows, err := db.Pool.Query(ctx, `
        SELECT post_id, slug, title, COALESCE(excerpt, ''), COALESCE(content, ''),
               COALESCE(image, ''),
               published_at, updated_at,
               author_id, COALESCE(reviewer_id, ''), category_id,
               COALESCE(tag_ids, '{}'),
               COALESCE(read_time, 0),
               COALESCE(toc, '[]'::jsonb)
        FROM blog_posts
        ORDER BY ordinal, post_id
    `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	posts := make([]models.BlogPost, 0)
	for rows.Next() {
		var p models.BlogPost
		if err := rows.Scan(
			&p.ID, &p.Slug, &p.Title, &p.Excerpt, &p.Content,
			&p.Image,
			&p.PublishedAt, &p.UpdatedAt,
			&p.AuthorID, &p.ReviewerID, &p.CategoryID,
			&p.TagIDs,
			&p.ReadTime,
			&p.TOC,
		); err != nil {
			return nil, err
		}
		posts = append(posts, p)
	}
	return posts, rows.Err()
}

func (db *Database) loadJobs(ctx context.Context) ([]models.JobOpening, error) {
	rows, err := db.Pool.Query(ctx, `
        SELECT job_id, slug, title, COALESCE(department, ''), COALESCE(location, ''),
               COALESCE(employment_type, ''), posted_date,
               COALESCE(responsibilities, '{}'),
               COALESCE(requirements, '{}'),
               COALESCE(qualifications, '{}'),
               COALESCE(benefits, '{}')
        FROM job_openings
        ORDER BY ordinal, job_id
    `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	jobs := make([]models.JobOpening, 0)
	for rows.Next() {
		var j models.JobOpening
		if err := rows.Scan(
			&j.ID, &j.Slug, &j.Title, &j.Department, &j.Location,
			&j.Type, &j.PostedDate,
			&j.Responsibilities, &j.Requirements, &j.Qualifications, &j.Benefits,
		); err != nil {
			return nil, err
		}
		jobs = append(jobs, j)
	}
	return jobs, rows.Err()
}

func (db *Database) loadEvents(ctx context.Context) ([]models.Event, error) {
	rows, err := db.Pool.Query(ctx, `
        SELECT event_id, name, COALESCE(details, ''), COALESCE(image, ''),
               COALESCE(venue, ''), start_date, end_date
        FROM events
        ORDER BY ordinal, event_id
    `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	events := make([]models.Event, 0)
	for rows.Next() {
		var e models.Event
		if err := rows.Scan(&e.ID, &e.Name, &e.Details, &e.Image, &e.Venue, &e.StartDate, &e.EndDate); err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

func (db *Database) loadLocations(ctx context.Context) ([]models.Location, error) {
	rows, err := db.Pool.Query(ctx, `
        SELECT location_id, name, COALESCE(details, ''), COALESCE(image, '')
        FROM locations
        ORDER BY ordinal, location_id
    `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	locations := make([]models.Location, 0)
	for rows.Next() {
		var l models.Location
		if err := rows.Scan(&l.ID, &l.Name, &l.Details, &l.Image); err != nil {
			return nil, err
		}
		locations = append(locations, l)
	}
	return locations, rows.Err()
}

func (db *Database) loadCertifications(ctx context.Context) ([]models.Certification, error) {
	rows, err := db.Pool.Query(ctx, `
        SELECT certification_id, name, COALESCE(details, ''), COALESCE(image, '')
        FROM certifications
        ORDER BY ordinal, certification_id
    `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	certs := make([]models.Certification, 0)
	for rows.Next() {
		var c models.Certification
		if err := rows.Scan(&c.ID, &c.Name, &c.Details, &c.Image); err != nil {
			return nil, err
		}
		certs = append(certs, c)
	}
	return certs, rows.Err()
}

// loadSetting returns the value for a site_settings key, or "" when unset.
func (db *Database) loadSetting(ctx context.Context, key string) (string, error) {
	var value string
	err := db.Pool.QueryRow(ctx,
		`SELECT value FROM site_settings WHERE key = $1`, key,
	).Scan(&value)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return value, nil
}
