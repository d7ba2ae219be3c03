// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer, h.withTraceID, h.withLogging)

	router.Route("/api", func(r chi.Router) {
		r.Get("/health", h.health)

		r.Route("/notes", func(r chi.Router) {
			r.Post("/", h.captureNote)
			r.Get("/search", h.searchNotes)
			r.Get("/recent", h.recentNotes)
		})
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
