package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// productIDPattern restricts product ids to digits; anything else falls
// through to the router's 404.
const productIDPattern = "/{id:[0-9]+}"

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID, withLogging, middleware.Recoverer)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/register/", h.register)
		r.Post("/login/", h.login)
	})

	// routes with authorization
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/", h.home)
		r.Get("/profile", h.profile)

		r.Route("/products", func(r chi.Router) {
			r.Post("/create", h.createProduct)
			r.Get("/list", h.listProducts)
			r.Get("/detail"+productIDPattern, h.getProduct)
			r.Put("/update"+productIDPattern, h.updateProduct)
			r.Delete("/delete"+productIDPattern, h.deleteProduct)
		})
	})

	router.NotFound(notFound)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
