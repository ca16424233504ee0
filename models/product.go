package models

import "time"

// Product is a single catalogue entry owned by the user who created it.
type Product struct {
	// ProductID is the server-assigned unique identifier of the product.
	ProductID int64 `json:"id"`

	// UserID is the owner of the product. It is set once on creation from
	// the authenticated caller and never changes afterwards.
	UserID int64 `json:"user_id"`

	Category    string  `json:"category"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Quantity    int64   `json:"quantity"`

	// ProductImg is an optional image reference (URL or path).
	ProductImg *string `json:"product_img"`

	// CreatedAt is set once when the product is created.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is refreshed on every mutation.
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the Product model.
func (p Product) TableName() string {
	return "products"
}
