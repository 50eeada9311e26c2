package catalog

import (
	"embed"
	"encoding/json"
	"fmt"

	"github.com/terravita/terravita/backend/content-service/internal/models"
)

//go:embed seed/*.json
var seedFS embed.FS

type blogSeed struct {
	Authors    []models.BlogAuthor   `json:"authors"`
	Categories []models.BlogCategory `json:"categories"`
	Tags       []models.BlogTag      `json:"tags"`
	Posts      []models.BlogPost     `json:"posts"`
}

type companySeed struct {
	Jobs                []models.JobOpening    `json:"jobs"`
	Events              []models.Event         `json:"events"`
	Locations           []models.Location      `json:"locations"`
	Certifications      []models.Certification `json:"certifications"`
	ProductOfTheMonthID string                 `json:"product_of_the_month_id"`
}

// LoadSeed reads the embedded content files. The result still has to pass
// New; the seed gets no integrity shortcuts.
func LoadSeed() (Data, error) {
	var data Data

	if err := readSeed("seed/categories.json", &data.Categories); err != nil {
		return Data{}, err
	}
	if err := readSeed("seed/products.json", &data.Products); err != nil {
		return Data{}, err
	}

	var blog blogSeed
	if err := readSeed("seed/blog.json", &blog); err != nil {
		return Data{}, err
	}
	data.Authors = blog.Authors
	data.BlogCategories = blog.Categories
	data.Tags = blog.Tags
	data.Posts = blog.Posts

	var company companySeed
	if err := readSeed("seed/company.json", &company); err != nil {
		return Data{}, err
	}
	data.Jobs = company.Jobs
	data.Events = company.Events
	data.Locations = company.Locations
	data.Certifications = company.Certifications
	data.ProductOfTheMonthID = company.ProductOfTheMonthID

	return data, nil
}

func readSeed(name string, v any) error {
	b, err := seedFS.ReadFile(name)
	if err != nil {
		return fmt.Errorf("read %s: %w", name, err)
	}
	if err := json.Unmarshal(b, v); err != nil {
		return fmt.Errorf("parse %s: %w", name, err)
	}
	return nil
}
