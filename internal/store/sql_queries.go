// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-shop-api/models"
)

var (
	userColumns = []string{
		"id",
		"username",
		"password",
		"email",
		"first_name",
		"last_name",
		"date_joined",
	}

	productColumns = []string{
		"id",
		"user_id",
		"category",
		"title",
		"description",
		"price",
		"quantity",
		"product_img",
		"created_at",
		"updated_at",
	}
)

func buildInsertUserQuery(sb sq.StatementBuilderType, user models.User) (string, []any, error) {
	query, args, err := sb.
		Insert(user.TableName()).
		Columns("username", "password", "email", "first_name", "last_name", "date_joined").
		Values(user.Username, user.Password, user.Email, user.FirstName, user.LastName, user.DateJoined).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildSelectUserQuery(sb sq.StatementBuilderType, where sq.Eq) (string, []any, error) {
	query, args, err := sb.
		Select(userColumns...).
		From(models.User{}.TableName()).
		Where(where).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildInsertProductQuery(sb sq.StatementBuilderType, product models.Product) (string, []any, error) {
	query, args, err := sb.
		Insert(product.TableName()).
		Columns(productColumns[1:]...).
		Values(
			product.UserID,
			product.Category,
			product.Title,
			product.Description,
			product.Price,
			product.Quantity,
			product.ProductImg,
			product.CreatedAt,
			product.UpdatedAt,
		).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildSelectProductsQuery(sb sq.StatementBuilderType) (string, []any, error) {
	query, args, err := sb.
		Select(productColumns...).
		From(models.Product{}.TableName()).
		OrderBy("id").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildSelectProductByIDQuery(sb sq.StatementBuilderType, productID int64) (string, []any, error) {
	query, args, err := sb.
		Select(productColumns...).
		From(models.Product{}.TableName()).
		Where(sq.Eq{"id": productID}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildUpdateProductQuery sets every mutable column; user_id and created_at
// are never written after creation.
func buildUpdateProductQuery(sb sq.StatementBuilderType, product models.Product) (string, []any, error) {
	query, args, err := sb.
		Update(product.TableName()).
		Set("category", product.Category).
		Set("title", product.Title).
		Set("description", product.Description).
		Set("price", product.Price).
		Set("quantity", product.Quantity).
		Set("product_img", product.ProductImg).
		Set("updated_at", product.UpdatedAt).
		Where(sq.Eq{"id": product.ProductID}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildDeleteProductQuery(sb sq.StatementBuilderType, productID int64) (string, []any, error) {
	query, args, err := sb.
		Delete(models.Product{}.TableName()).
		Where(sq.Eq{"id": productID}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}
