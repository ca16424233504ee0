package models

import "time"

// User represents an account entity used for authentication and as the owner
// of products.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the server-assigned unique identifier of the user.
	UserID int64 `json:"id"`

	// Username is the unique login of the user.
	Username string `json:"username"`

	// Password stores the bcrypt hash of the user's password.
	// The plain-text password is never persisted and this field is never
	// serialized.
	Password string `json:"-"`

	// Email is the contact address supplied at registration.
	Email string `json:"email"`

	// FirstName is the given name of the user.
	FirstName string `json:"first_name"`

	// LastName is the family name of the user.
	LastName string `json:"last_name"`

	// DateJoined is the timestamp when the user account was created.
	DateJoined time.Time `json:"date_joined"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
