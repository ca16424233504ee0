package models

// MessageResponse is the generic body carrying a human-readable message.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is returned for validation failures. Errors maps a request
// field name to the list of reasons the field was rejected.
type ErrorResponse struct {
	Message string              `json:"message"`
	Errors  map[string][]string `json:"errors,omitempty"`
}

// RegisterResponse is returned by a successful registration.
type RegisterResponse struct {
	UserID  int64  `json:"user_id"`
	Message string `json:"message"`
}

// LoginResponse is returned by a successful login.
type LoginResponse struct {
	UserID int64  `json:"user_id"`
	Token  string `json:"token"`
}

// ProductResponse is returned by product create, update and delete.
type ProductResponse struct {
	ProductID int64  `json:"product_id"`
	Message   string `json:"message"`
}
