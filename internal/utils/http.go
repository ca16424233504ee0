package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// internalErrorBody is written when the response value itself cannot be
// encoded, so clients still receive the JSON error shape.
const internalErrorBody = `{"message":"Internal Server Error"}`

// WriteJSON serializes data to JSON and writes it with statusCode and a
// "Content-Type: application/json" header.
//
// If marshaling fails, it responds with 500 and a {"message": ...} body and
// returns a wrapped error.
//
// Example usage:
//
//	WriteJSON(w, models.Product{...}, http.StatusOK)
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(internalErrorBody))
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}

// WriteMessage writes {"message": message} with statusCode.
func WriteMessage(w http.ResponseWriter, message string, statusCode int) (int, error) {
	return WriteJSON(w, struct {
		Message string `json:"message"`
	}{Message: message}, statusCode)
}
