package repository

import (
	"context"
	"fmt"
	"os"

	"github.com/fekuna/omnipos-storefront-service/internal/model"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// FileRepository reads products from a YAML (or JSON) document:
//
//	products:
//	  - id: "1"
//	    name: Memory Foam Mattress
//	    price: "299.99"
//	    category: Mattresses
type FileRepository struct {
	Path string
}

func NewFileRepository(path string) *FileRepository {
	return &FileRepository{Path: path}
}

type catalogFile struct {
	Products []productRecord `yaml:"products"`
}

type productRecord struct {
	ID            string  `yaml:"id"`
	Name          string  `yaml:"name"`
	Price         string  `yaml:"price"`
	OriginalPrice string  `yaml:"original_price"`
	Category      string  `yaml:"category"`
	Rating        float64 `yaml:"rating"`
	ReviewCount   int     `yaml:"review_count"`
	IsOnSale      bool    `yaml:"on_sale"`
	IsBestSeller  bool    `yaml:"best_seller"`
	ImageURL      string  `yaml:"image_url"`
}

func (r *FileRepository) FindAll(ctx context.Context) ([]model.Product, error) {
	data, err := os.ReadFile(r.Path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}
	return ParseCatalog(data)
}

// ParseCatalog decodes a catalog document. Prices are decimal strings; bare numbers work too.
func ParseCatalog(data []byte) ([]model.Product, error) {
	var doc catalogFile
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}

	products := make([]model.Product, 0, len(doc.Products))
	for i, rec := range doc.Products {
		price, err := decimal.NewFromString(rec.Price)
		if err != nil {
			return nil, fmt.Errorf("product #%d (%s): price: %w", i, rec.ID, err)
		}
		p := model.Product{
			ID:           rec.ID,
			Name:         rec.Name,
			Price:        price,
			Category:     model.Category(rec.Category),
			Rating:       rec.Rating,
			ReviewCount:  rec.ReviewCount,
			IsOnSale:     rec.IsOnSale,
			IsBestSeller: rec.IsBestSeller,
		}
		if rec.OriginalPrice != "" {
			orig, err := decimal.NewFromString(rec.OriginalPrice)
			if err != nil {
				return nil, fmt.Errorf("product #%d (%s): original_price: %w", i, rec.ID, err)
			}
			p.OriginalPrice = decimal.NewNullDecimal(orig)
		}
		if rec.ImageURL != "" {
			url := rec.ImageURL
			p.ImageURL = &url
		}
		products = append(products, p)
	}
	return products, nil
}
