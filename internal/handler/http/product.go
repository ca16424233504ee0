package http

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-shop-api/internal/app"
	"github.com/MKhiriev/go-shop-api/internal/store"
	"github.com/MKhiriev/go-shop-api/internal/utils"
	"github.com/MKhiriev/go-shop-api/models"
	"github.com/go-chi/chi/v5"
)

// productIDFromRequest reads the {id} route parameter. The route pattern
// only admits digits, so the only failure left is an id too large for
// int64, which cannot name a stored product.
func productIDFromRequest(r *http.Request) (int64, error) {
	productID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", store.ErrProductNotFound, err)
	}
	return productID, nil
}

func (h *Handler) createProduct(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		writeError(w, r, ErrNoUserInContext)
		return
	}

	var request models.ProductRequest
	if err := decodeRequest(r, &request); err != nil {
		writeError(w, r, err)
		return
	}

	productID, err := h.services.ProductService.CreateProduct(ctx, userID, request)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.ProductResponse{
		ProductID: productID,
		Message:   app.MsgProductCreated,
	}, http.StatusCreated)
}

func (h *Handler) listProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.services.ProductService.ListProducts(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	if products == nil {
		products = []models.Product{}
	}

	utils.WriteJSON(w, products, http.StatusOK)
}

func (h *Handler) getProduct(w http.ResponseWriter, r *http.Request) {
	productID, err := productIDFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	product, err := h.services.ProductService.GetProduct(r.Context(), productID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, product, http.StatusOK)
}

func (h *Handler) updateProduct(w http.ResponseWriter, r *http.Request) {
	productID, err := productIDFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var request models.ProductRequest
	if err = decodeRequest(r, &request); err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.services.ProductService.UpdateProduct(r.Context(), productID, request); err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.ProductResponse{
		ProductID: productID,
		Message:   app.MsgProductUpdated,
	}, http.StatusOK)
}

func (h *Handler) deleteProduct(w http.ResponseWriter, r *http.Request) {
	productID, err := productIDFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.services.ProductService.DeleteProduct(r.Context(), productID); err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.ProductResponse{
		ProductID: productID,
		Message:   app.MsgProductDeleted,
	}, http.StatusOK)
}
