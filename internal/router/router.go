// Package router sets up all HTTP routes and middleware chains for the
// landpress editor. It organizes routes into the public page surface and
// the authenticated editor API.
package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"landpress/internal/handlers"
	"landpress/internal/middleware"
	"landpress/internal/session"
)

// New creates and returns the configured Chi router with all middleware
// and route groups wired up.
func New(
	sessionStore *session.Store,
	auth *handlers.Auth,
	editor *handlers.Editor,
	exporter *handlers.Export,
	publish *handlers.Publish,
	public *handlers.Public,
) chi.Router {
	r := chi.NewRouter()

	// Global middleware — applied to every request.
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(middleware.LoadSession(sessionStore))

	// Health check — no auth.
	r.Get("/health", healthHandler)

	// Auth endpoints — accessible without a session.
	r.Post("/api/login", auth.Login)
	r.Post("/api/logout", auth.Logout)

	// Editor API — requires an authenticated session.
	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.RequireAuth)

		// Document + editor state
		r.Get("/state", editor.State)
		r.Get("/layout", editor.Layout)
		r.Post("/save", editor.Save)
		r.Post("/import", editor.Import)

		// Components
		r.Route("/components", func(r chi.Router) {
			r.Post("/", editor.AddComponent)
			r.Post("/reorder", editor.ReorderComponents)
			r.Patch("/{id}", editor.UpdateComponent)
			r.Delete("/{id}", editor.RemoveComponent)
			r.Post("/{id}/duplicate", editor.DuplicateComponent)
			r.Post("/{id}/reset", editor.ResetComponent)
		})

		// Editor UI state
		r.Post("/editor/select", editor.Select)
		r.Post("/editor/focus", editor.Focus)
		r.Post("/editor/preview", editor.Preview)

		// Theme and SEO
		r.Patch("/theme", editor.UpdateTheme)
		r.Post("/theme/color", editor.SetThemeColor)
		r.Patch("/seo", editor.UpdateSEO)

		// Asset picker
		r.Post("/assets/open", editor.OpenAssets)
		r.Post("/assets/close", editor.CloseAssets)
		r.Post("/assets/select", editor.SelectAsset)

		// Templates
		r.Get("/templates", editor.Templates)
		r.Post("/templates/apply", editor.ApplyTemplate)

		// History
		r.Post("/undo", editor.Undo)
		r.Post("/redo", editor.Redo)

		// Versions
		r.Route("/versions", func(r chi.Router) {
			r.Get("/", editor.ListVersions)
			r.Post("/", editor.SaveVersion)
			r.Post("/{id}/load", editor.LoadVersion)
		})

		// Downloads
		r.Get("/export/html", exporter.HTML)
		r.Get("/export/json", exporter.JSON)
		r.Get("/export/zip", exporter.Archive)

		// Publishing
		r.Post("/publish", publish.Page)
		r.Get("/pages", publish.List)
		r.Delete("/pages/{slug}", publish.Unpublish)
	})

	// Public routes — published pages served straight from cache/store.
	r.Get("/", public.Home)
	r.Get("/p/{slug}", public.Page)

	return r
}

// healthHandler returns a simple JSON health check response.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}
