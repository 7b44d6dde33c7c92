package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(h.withCORS)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/", h.root)
		r.Get("/ping", h.ping)
		r.Post("/signup", h.signup)
		r.Post("/login", h.login)
		r.Post("/logout", h.logout)
	})

	// routes behind the session cookie
	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Get("/protected", h.protected)
		r.Get("/sheets", h.listSheets)
		r.Post("/sheets", h.createSheet)
		r.Put("/sheets/{sheetID}", h.updateSheet)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
