// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// go-shop-api server handlers and middleware.
//
// All Msg* constants are human-readable message strings that are written into
// the "message" field of HTTP response bodies. Keeping them in one place
// ensures consistent wording throughout the API.
package app

const (
	// MsgInvalidDataProvided is returned together with per-field reasons when
	// the request body cannot be decoded or fails validation.
	MsgInvalidDataProvided = "Invalid data provided"

	// MsgInvalidCredentials is returned by login for both an unknown username
	// and a wrong password.
	MsgInvalidCredentials = "Invalid credentials"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "Internal Server Error"

	// MsgAuthenticationNotProvided is returned by the auth gate when the
	// request carries no "Authorization" header.
	MsgAuthenticationNotProvided = "Authentication credentials were not provided."

	// MsgTokenIsExpiredOrInvalid is returned by the auth gate when the bearer
	// token is malformed, expired or signed with another key.
	MsgTokenIsExpiredOrInvalid = "Given token not valid for any token type"

	MsgProductDoesNotExist = "Product does not exist"
	MsgUserDoesNotExist    = "User does not exist"
	MsgNotFound            = "Not found."

	// MsgMethodNotAllowed is a format string taking the rejected method.
	MsgMethodNotAllowed = "Method %q not allowed."
)

const (
	MsgUserRegistered = "User registered successfully"
	MsgProductCreated = "Product created successfully"
	MsgProductUpdated = "Product updated successfully"
	MsgProductDeleted = "Product deleted successfully"
)
