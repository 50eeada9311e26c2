package models

import "fmt"

// ProductType classifies a catalog product
type ProductType string

const (
	ProductTypeStandard       ProductType = "standard"
	ProductTypeBranded        ProductType = "branded"
	ProductTypeVitaminMineral ProductType = "vitamin-mineral"
)

// Valid reports whether the value is one of the three known product kinds.
func (t ProductType) Valid() bool {
	switch t {
	case ProductTypeStandard, ProductTypeBranded, ProductTypeVitaminMineral:
		return true
	}
	return false
}

// UnmarshalText lets seed files and DB rows fail loudly on unknown kinds
// instead of carrying a free-form string through the catalog.
func (t *ProductType) UnmarshalText(b []byte) error {
	v := ProductType(b)
	if !v.Valid() {
		return fmt.Errorf("unknown product type %q", string(b))
	}
	*t = v
	return nil
}

// Document is a downloadable file attached to a product (spec sheet, CoA, MSDS).
type Document struct {
	Title string `json:"title"`
	URL   string `json:"url"`
	Type  string `json:"type,omitempty"`
}

// FAQ is a question/answer pair shown on a product page.
type FAQ struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// NarrativeBlock is a titled prose section (research, production, packaging,
// factory, certifications) with an optional image.
type NarrativeBlock struct {
	Title string `json:"title"`
	Body  string `json:"body"`
	Image string `json:"image,omitempty"`
}

// Product represents a single extract or ingredient in the catalog
type Product struct {
	ID              string      `json:"id" db:"product_id"`
	Slug            string      `json:"slug" db:"slug"`
	Name            string      `json:"name" db:"name"`
	LatinName       string      `json:"latin_name,omitempty" db:"latin_name"`
	PlantPart       string      `json:"plant_part,omitempty" db:"plant_part"`
	Standardization string      `json:"standardization,omitempty" db:"standardization"`
	ShortDesc       string      `json:"short_description" db:"short_description"`
	LongDesc        string      `json:"long_description,omitempty" db:"long_description"`
	CategoryID      string      `json:"category_id" db:"category_id"`
	CategorySlug    string      `json:"category_slug" db:"category_slug"`
	CategoryName    string      `json:"category_name" db:"category_name"`
	Type            ProductType `json:"product_type" db:"product_type"`
	Image           string      `json:"image,omitempty" db:"image"`
	Gallery         []string    `json:"gallery,omitempty"`
	BrandLogo       string      `json:"brand_logo,omitempty" db:"brand_logo"`
	Certifications  []string    `json:"certifications,omitempty"`
	Benefits        []string    `json:"benefits,omitempty"`
	Applications    []string    `json:"applications,omitempty"`
	Featured        bool        `json:"featured" db:"is_featured"`

	Specifications map[string]string `json:"specifications,omitempty"`
	Documents      []Document        `json:"documents,omitempty"`
	FAQs           []FAQ             `json:"faqs,omitempty"`
	Narratives     []NarrativeBlock  `json:"narratives,omitempty"`

	// ParentID is the single authoritative family link. ChildIDs is derived
	// from it when the catalog loads and must never be set in source data.
	ParentID string   `json:"parent_product_id,omitempty" db:"parent_product_id"`
	ChildIDs []string `json:"child_products,omitempty"`
}

// ProductCategory groups products for navigation
type ProductCategory struct {
	ID          string `json:"id" db:"category_id"`
	Slug        string `json:"slug" db:"slug"`
	Name        string `json:"name" db:"name"`
	Description string `json:"description,omitempty" db:"description"`
	Image       string `json:"image,omitempty" db:"image"`

	// Count is derived at catalog load from product membership.
	Count int `json:"count"`
}
