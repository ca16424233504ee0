// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client-side transport for talking to the
// go-shop-api server.
//
// The primary abstraction is [ShopAdapter], which hides the REST details
// (paths, bearer header, JSON bodies) from the command-line client. The
// package ships an HTTP implementation built on resty
// ([NewHTTPShopAdapter]).
//
// Non-2xx responses are returned as [*APIError], which unwraps to the
// sentinel for its status class (e.g. [ErrNotFound] for 404,
// [ErrUnauthorized] for 401) so that callers can use [errors.Is].
package adapter

import (
	"context"

	"github.com/MKhiriev/go-shop-api/models"
)

// ShopAdapter defines communication with the go-shop-api server.
type ShopAdapter interface {
	// SetToken stores the bearer token that will be attached to all subsequent
	// authenticated requests.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// Register creates a new account and returns the server-assigned id.
	Register(ctx context.Context, request models.RegisterRequest) (models.RegisterResponse, error)

	// Login authenticates the user. On success the returned token is stored
	// via SetToken.
	Login(ctx context.Context, request models.LoginRequest) (models.LoginResponse, error)

	// Home calls the greeting endpoint; an empty name is omitted.
	Home(ctx context.Context, name string) (models.MessageResponse, error)

	// Profile returns the record of the user the token belongs to.
	Profile(ctx context.Context) (models.User, error)

	CreateProduct(ctx context.Context, request models.ProductRequest) (models.ProductResponse, error)
	ListProducts(ctx context.Context) ([]models.Product, error)
	GetProduct(ctx context.Context, productID int64) (models.Product, error)

	// UpdateProduct sends only the fields set in request. Setting
	// ProductImgSet with a nil ProductImg clears the stored image.
	UpdateProduct(ctx context.Context, productID int64, request models.ProductRequest) (models.ProductResponse, error)
	DeleteProduct(ctx context.Context, productID int64) (models.ProductResponse, error)
}
