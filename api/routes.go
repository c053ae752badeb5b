// Package api serves the styling toolkit over HTTP for page-builder
// backends that prefer REST to MCP.
package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/adalundhe/restyle/core/tools"
)

// RegisterRoutes builds the HTTP handler for the styling API. Element
// operations are POSTs carrying JSON bodies; the preset catalog is a plain
// GET. Every element operation responds 200 with a uniform result body
// whose success flag reports whether the instruction was understood.
func RegisterRoutes(toolkit *tools.Toolkit) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	h := &handler{toolkit: toolkit}

	r.Post("/api/elements/{id}/property", h.editProperty)
	r.Post("/api/elements/{id}/properties", h.editMultipleProperties)
	r.Post("/api/elements/{id}/preset", h.applyPreset)
	r.Post("/api/elements/{id}/suggestions", h.suggestImprovements)

	r.Get("/api/presets", h.listPresets)

	return r
}

type handler struct {
	toolkit *tools.Toolkit
}
