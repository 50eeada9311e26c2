package catalog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/terravita/terravita/backend/content-service/internal/models"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

// fixtureData builds a small valid content set: two product categories, four
// products (one parent with two children), a blog with three posts, and one
// job opening.
func fixtureData() Data {
	return Data{
		Categories: []models.ProductCategory{
			{ID: "cat-1", Slug: "herbal-extracts", Name: "Herbal Extracts"},
			{ID: "cat-2", Slug: "branded-ingredients", Name: "Branded Ingredients"},
		},
		Products: []models.Product{
			{ID: "prd-1", Slug: "turmeric-extract", Name: "Turmeric Extract", CategoryID: "cat-1", CategorySlug: "herbal-extracts", Type: models.ProductTypeStandard, Featured: true},
			{ID: "prd-2", Slug: "curcumin-95", Name: "Curcumin 95%", CategoryID: "cat-1", CategorySlug: "herbal-extracts", Type: models.ProductTypeStandard, ParentID: "prd-1"},
			{ID: "prd-3", Slug: "curcumin-wd", Name: "Water-Dispersible Curcumin", CategoryID: "cat-1", CategorySlug: "herbal-extracts", Type: models.ProductTypeStandard, ParentID: "prd-1", Featured: true},
			{ID: "prd-4", Slug: "curcuflex", Name: "CurcuFlex", CategoryID: "cat-2", CategorySlug: "branded-ingredients", Type: models.ProductTypeBranded, Featured: true},
		},
		Authors: []models.BlogAuthor{
			{ID: "aut-1", Name: "Dr. Elena Petrova"},
			{ID: "aut-2", Name: "Marco Reyes"},
		},
		BlogCategories: []models.BlogCategory{
			{ID: "bct-1", Slug: "science", Name: "Science"},
			{ID: "bct-2", Slug: "industry", Name: "Industry"},
		},
		Tags: []models.BlogTag{
			{ID: "tag-1", Slug: "curcumin", Name: "Curcumin"},
			{ID: "tag-2", Slug: "bioavailability", Name: "Bioavailability"},
			{ID: "tag-3", Slug: "sourcing", Name: "Sourcing"},
		},
		Posts: []models.BlogPost{
			{ID: "pst-1", Slug: "curcumin-absorption", Title: "Curcumin Absorption", AuthorID: "aut-1", CategoryID: "bct-1", TagIDs: []string{"tag-1", "tag-2"}, PublishedAt: day("2024-01-10"), UpdatedAt: day("2024-01-10")},
			{ID: "pst-2", Slug: "extraction-methods", Title: "Extraction Methods", AuthorID: "aut-2", ReviewerID: "aut-1", CategoryID: "bct-1", TagIDs: []string{"tag-1"}, PublishedAt: day("2024-03-05"), UpdatedAt: day("2024-03-20")},
			{ID: "pst-3", Slug: "turmeric-sourcing", Title: "Turmeric Sourcing", AuthorID: "aut-2", CategoryID: "bct-2", TagIDs: []string{"tag-3"}, PublishedAt: day("2024-02-15"), UpdatedAt: day("2024-02-15")},
		},
		Jobs: []models.JobOpening{
			{ID: "job-1", Slug: "qa-specialist", Title: "QA Specialist", Department: "Quality"},
		},
		Events: []models.Event{
			{ID: "evt-1", Name: "Vitafoods Europe"},
			{ID: "evt-2", Name: "SupplySide West"},
		},
		Locations: []models.Location{
			{ID: "loc-1", Name: "Headquarters"},
		},
		Certifications: []models.Certification{
			{ID: "crt-1", Name: "ISO 9001"},
		},
		ProductOfTheMonthID: "prd-4",
	}
}

func mustCatalog(t *testing.T, data Data) *Catalog {
	t.Helper()
	c, err := New(data)
	require.NoError(t, err)
	return c
}

func TestNewValidData(t *testing.T) {
	c := mustCatalog(t, fixtureData())
	assert.Len(t, c.Products(), 4)
	assert.Len(t, c.Categories(), 2)
	assert.Len(t, c.Posts(), 3)
}

func TestNewDerivesChildIDs(t *testing.T) {
	c := mustCatalog(t, fixtureData())

	parent, ok := c.ProductByID("prd-1")
	require.True(t, ok)
	assert.Equal(t, []string{"prd-2", "prd-3"}, parent.ChildIDs)

	// Every child points back at a parent that lists it.
	for _, p := range c.Products() {
		if p.ParentID == "" {
			continue
		}
		pp, ok := c.ProductByID(p.ParentID)
		require.True(t, ok)
		assert.Contains(t, pp.ChildIDs, p.ID)
	}
}

func TestNewDerivesCategoryCounts(t *testing.T) {
	c := mustCatalog(t, fixtureData())

	herbal, ok := c.CategoryBySlug("herbal-extracts")
	require.True(t, ok)
	assert.Equal(t, 3, herbal.Count)

	branded, ok := c.CategoryBySlug("branded-ingredients")
	require.True(t, ok)
	assert.Equal(t, 1, branded.Count)
}

func TestNewOverwritesCategoryName(t *testing.T) {
	data := fixtureData()
	data.Products[0].CategoryName = "Stale Name"
	c := mustCatalog(t, data)

	p, ok := c.ProductBySlug("turmeric-extract")
	require.True(t, ok)
	assert.Equal(t, "Herbal Extracts", p.CategoryName)
}

func TestNewDoesNotMutateSourceData(t *testing.T) {
	data := fixtureData()

	first, err := New(data)
	require.NoError(t, err)

	// Derived state lives only in the catalog's copy.
	for _, p := range data.Products {
		assert.Empty(t, p.ChildIDs)
		assert.Empty(t, p.CategoryName)
	}
	for _, c := range data.Categories {
		assert.Equal(t, 0, c.Count)
	}

	// The same Data value loads again and yields the same catalog.
	second, err := New(data)
	require.NoError(t, err)
	assert.Equal(t, first.Products(), second.Products())
	assert.Equal(t, first.Categories(), second.Categories())
}

func TestNewRejectsBrokenData(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Data)
	}{
		{"duplicate product slug", func(d *Data) { d.Products[1].Slug = d.Products[0].Slug }},
		{"duplicate product id", func(d *Data) { d.Products[1].ID = d.Products[0].ID }},
		{"invalid product type", func(d *Data) { d.Products[0].Type = "powder" }},
		{"unknown category slug", func(d *Data) { d.Products[0].CategorySlug = "nope" }},
		{"category id mismatch", func(d *Data) { d.Products[0].CategoryID = "cat-2" }},
		{"unknown parent", func(d *Data) { d.Products[1].ParentID = "prd-999" }},
		{"self parent", func(d *Data) { d.Products[0].ParentID = "prd-1" }},
		{"preset child ids", func(d *Data) { d.Products[0].ChildIDs = []string{"prd-2"} }},
		{"duplicate category slug", func(d *Data) { d.Categories[1].Slug = d.Categories[0].Slug }},
		{"unknown post author", func(d *Data) { d.Posts[0].AuthorID = "aut-999" }},
		{"unknown post reviewer", func(d *Data) { d.Posts[0].ReviewerID = "aut-999" }},
		{"unknown post category", func(d *Data) { d.Posts[0].CategoryID = "bct-999" }},
		{"unknown post tag", func(d *Data) { d.Posts[0].TagIDs = []string{"tag-999"} }},
		{"updated before published", func(d *Data) { d.Posts[1].UpdatedAt = day("2024-01-01") }},
		{"duplicate post slug", func(d *Data) { d.Posts[1].Slug = d.Posts[0].Slug }},
		{"duplicate post id", func(d *Data) { d.Posts[1].ID = d.Posts[0].ID }},
		{"duplicate job slug", func(d *Data) {
			d.Jobs = append(d.Jobs, models.JobOpening{ID: "job-2", Slug: "qa-specialist"})
		}},
		{"duplicate job id", func(d *Data) {
			d.Jobs = append(d.Jobs, models.JobOpening{ID: "job-1", Slug: "plant-engineer"})
		}},
		{"duplicate event id", func(d *Data) { d.Events[1].ID = d.Events[0].ID }},
		{"missing event id", func(d *Data) { d.Events[0].ID = "" }},
		{"duplicate location id", func(d *Data) {
			d.Locations = append(d.Locations, models.Location{ID: "loc-1", Name: "Second Plant"})
		}},
		{"duplicate certification id", func(d *Data) {
			d.Certifications = append(d.Certifications, models.Certification{ID: "crt-1", Name: "ISO 22000"})
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			data := fixtureData()
			tc.mutate(&data)
			c, err := New(data)
			require.Error(t, err)
			assert.Nil(t, c)

			var ie *IntegrityError
			require.ErrorAs(t, err, &ie)
			assert.NotEmpty(t, ie.Error())
		})
	}
}
