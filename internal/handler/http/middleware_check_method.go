// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-shop-api/internal/app"
	"github.com/MKhiriev/go-shop-api/internal/utils"
	"github.com/go-chi/chi/v5"
)

// routeMethods lists the methods tried when building the "Allow" header.
var routeMethods = []string{
	http.MethodGet,
	http.MethodHead,
	http.MethodPost,
	http.MethodPut,
	http.MethodPatch,
	http.MethodDelete,
	http.MethodOptions,
}

// CheckHTTPMethod returns an [http.HandlerFunc] that is intended to be
// registered as the router's MethodNotAllowed handler via
// [chi.Mux.MethodNotAllowed].
//
// It answers HTTP 405 Method Not Allowed with a JSON body and an "Allow"
// header listing every method router serves for the requested path. The
// lookup goes through [chi.Mux.Match] on a fresh routing context, so
// parameterised patterns and mounted sub-routers are resolved the same way
// as for a real request.
//
// Usage:
//
//	router := chi.NewRouter()
//	// ... register routes ...
//	router.MethodNotAllowed(CheckHTTPMethod(router))
func CheckHTTPMethod(router *chi.Mux) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		allowed := allowedMethods(router, r.URL.Path)
		if len(allowed) == 0 {
			notFound(w, r)
			return
		}

		w.Header().Set("Allow", strings.Join(allowed, ", "))
		utils.WriteMessage(w, fmt.Sprintf(app.MsgMethodNotAllowed, r.Method), http.StatusMethodNotAllowed)
	}
}

func allowedMethods(router *chi.Mux, path string) []string {
	var allowed []string
	for _, method := range routeMethods {
		if router.Match(chi.NewRouteContext(), method, path) {
			allowed = append(allowed, method)
		}
	}
	return allowed
}

// notFound is the router's NotFound handler. It keeps 404 bodies in the same
// JSON shape as every other error.
func notFound(w http.ResponseWriter, r *http.Request) {
	utils.WriteMessage(w, app.MsgNotFound, http.StatusNotFound)
}
