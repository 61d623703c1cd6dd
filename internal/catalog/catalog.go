package catalog

import (
	"context"
	"fmt"

	pkgerrors "github.com/stitchandstory/shop-backend/pkg/errors"
)

// Product is a catalog entry. The catalog is seeded once at startup and
// never mutated.
type Product struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	Image       string  `json:"image"`
	Category    string  `json:"category"`
}

// Service exposes read-only catalog lookups.
type Service interface {
	List(ctx context.Context) []Product
	GetByID(ctx context.Context, id string) (*Product, error)
}

type service struct {
	products []Product
}

// NewService builds a catalog service over a fixed product list.
func NewService(products []Product) (Service, error) {
	if len(products) == 0 {
		return nil, fmt.Errorf("catalog products required")
	}
	return &service{products: products}, nil
}

// List returns the full catalog in seed order.
func (s *service) List(_ context.Context) []Product {
	return s.products
}

// GetByID resolves a product by exact id match.
func (s *service) GetByID(_ context.Context, id string) (*Product, error) {
	for i := range s.products {
		if s.products[i].ID == id {
			return &s.products[i], nil
		}
	}
	return nil, pkgerrors.New(pkgerrors.CodeNotFound, "Product not found")
}
