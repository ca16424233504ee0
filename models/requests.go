package models

import (
	"encoding/json"
	"strings"
)

// RegisterRequest is the body of POST /register/.
type RegisterRequest struct {
	Username  string `json:"username" validate:"required,max=150,username"`
	Password  string `json:"password" validate:"required,notblank,max=72"`
	Email     string `json:"email" validate:"required,email,max=254"`
	FirstName string `json:"first_name" validate:"required,notblank,max=150"`
	LastName  string `json:"last_name" validate:"required,notblank,max=150"`
}

// TrimSpace strips surrounding whitespace from every field except Password,
// which is kept byte for byte.
func (r *RegisterRequest) TrimSpace() {
	r.Username = strings.TrimSpace(r.Username)
	r.Email = strings.TrimSpace(r.Email)
	r.FirstName = strings.TrimSpace(r.FirstName)
	r.LastName = strings.TrimSpace(r.LastName)
}

// LoginRequest is the body of POST /login/.
type LoginRequest struct {
	Username string `json:"username" validate:"required,max=100"`
	Password string `json:"password" validate:"required,max=100"`
}

func (r *LoginRequest) TrimSpace() {
	r.Username = strings.TrimSpace(r.Username)
}

// ProductRequest is the body of product create and update calls.
//
// Every field is a pointer so that an absent field can be told apart from a
// zero value: create requires all fields except ProductImg, update applies
// only the fields that are present. ProductImg is nullable, so an explicit
// JSON null is recorded in ProductImgSet and clears the stored value.
type ProductRequest struct {
	Category    *string  `json:"category" validate:"required,notblank,max=100"`
	Title       *string  `json:"title" validate:"required,notblank,max=100"`
	Description *string  `json:"description" validate:"required,notblank"`
	Price       *float64 `json:"price" validate:"required"`
	Quantity    *int64   `json:"quantity" validate:"required"`
	ProductImg  *string  `json:"product_img" validate:"omitempty,max=200"`

	// ProductImgSet reports that the "product_img" key was present in the
	// request, including as null.
	ProductImgSet bool `json:"-"`
}

// UnmarshalJSON decodes the request and records whether "product_img" was
// present.
func (r *ProductRequest) UnmarshalJSON(data []byte) error {
	type plain ProductRequest

	var decoded plain
	if err := json.Unmarshal(data, &decoded); err != nil {
		return err
	}

	var keys map[string]json.RawMessage
	if err := json.Unmarshal(data, &keys); err != nil {
		return err
	}
	_, decoded.ProductImgSet = keys["product_img"]

	*r = ProductRequest(decoded)
	return nil
}

// TrimSpace strips surrounding whitespace from every present text field.
func (r *ProductRequest) TrimSpace() {
	for _, field := range []*string{r.Category, r.Title, r.Description, r.ProductImg} {
		if field != nil {
			*field = strings.TrimSpace(*field)
		}
	}
}

// HasProductImg reports whether the request sets product_img, either to a
// value or to null.
func (r ProductRequest) HasProductImg() bool {
	return r.ProductImg != nil || r.ProductImgSet
}

// PresentFields returns the struct field names of the fields set in the
// request, in the form expected by partial struct validation.
func (r ProductRequest) PresentFields() []string {
	fields := make([]string, 0, 6)
	if r.Category != nil {
		fields = append(fields, "Category")
	}
	if r.Title != nil {
		fields = append(fields, "Title")
	}
	if r.Description != nil {
		fields = append(fields, "Description")
	}
	if r.Price != nil {
		fields = append(fields, "Price")
	}
	if r.Quantity != nil {
		fields = append(fields, "Quantity")
	}
	if r.HasProductImg() {
		fields = append(fields, "ProductImg")
	}
	return fields
}

// ApplyTo copies every present field of the request onto p.
// Absent fields leave p unchanged; a null product_img clears it.
func (r ProductRequest) ApplyTo(p *Product) {
	if r.Category != nil {
		p.Category = *r.Category
	}
	if r.Title != nil {
		p.Title = *r.Title
	}
	if r.Description != nil {
		p.Description = *r.Description
	}
	if r.Price != nil {
		p.Price = *r.Price
	}
	if r.Quantity != nil {
		p.Quantity = *r.Quantity
	}
	if r.HasProductImg() {
		p.ProductImg = r.ProductImg
	}
}
