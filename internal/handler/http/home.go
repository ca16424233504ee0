package http

import (
	"net/http"

	"github.com/MKhiriev/go-shop-api/internal/utils"
)

// home greets the caller by the "name" query parameter.
func (h *Handler) home(w http.ResponseWriter, r *http.Request) {
	message := "Hello, world!"
	if name := r.URL.Query().Get("name"); name != "" {
		message = "Hello, " + name
	}

	utils.WriteMessage(w, message, http.StatusOK)
}
