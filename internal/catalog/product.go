package catalog

import (
	"context"
	"errors"
)

// PlaceholderImageURL is rendered when a product row has no usable image.
const PlaceholderImageURL = "https://via.placeholder.com/800x600.png?text=No+Image"

var ErrNotFound = errors.New("catalog: not found")

// Product represents a product in the shop.
type Product struct {
	ID            int64   `json:"id"`
	Title         string  `json:"title"`
	Description   string  `json:"description"`
	Price         float64 `json:"price"`
	ImageURL      string  `json:"image_url"`
	ImagePublicID string  `json:"-"`
	CategoryID    int64   `json:"category_id"`
	Category      string  `json:"category"`
	CreatedAt     string  `json:"created_at"`
}

// Category represents a product category/tag.
type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// ProductUpdate carries a partial update; nil fields are left untouched.
type ProductUpdate struct {
	Title         *string
	Description   *string
	Price         *float64
	CategoryID    *int64
	ImageURL      *string
	ImagePublicID *string
}

// Store is the catalog storage port. List returns products newest first
// (id descending); that ordering is part of the contract the storefront
// renders against.
type Store interface {
	List(ctx context.Context) ([]Product, error)
	Get(ctx context.Context, id int64) (Product, error)
	Create(ctx context.Context, p Product) (int64, error)
	Update(ctx context.Context, id int64, upd ProductUpdate) error
	// Delete returns the removed product so callers can clean up its image.
	Delete(ctx context.Context, id int64) (Product, error)

	Categories(ctx context.Context) ([]Category, error)
	GetCategory(ctx context.Context, id int64) (Category, error)
	CreateCategory(ctx context.Context, name string) (Category, error)
	RenameCategory(ctx context.Context, id int64, name string) error
	DeleteCategory(ctx context.Context, id int64) error
}
