package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"landpress/internal/cache"
	"landpress/internal/store"
)

// Public serves published pages to visitors: cache first, database on a
// miss. No session required.
type Public struct {
	pages *store.PageStore
	cache *cache.PageCache
}

// NewPublic creates a new Public handler group.
func NewPublic(pages *store.PageStore, pageCache *cache.PageCache) *Public {
	return &Public{pages: pages, cache: pageCache}
}

// Home serves the most recently published page, or a minimal placeholder
// when nothing has been published yet.
func (p *Public) Home(w http.ResponseWriter, r *http.Request) {
	pages, err := p.pages.List()
	if err != nil {
		slog.Error("home page lookup failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	if len(pages) == 0 {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write([]byte("<!DOCTYPE html><html><body><p>Nothing published yet.</p></body></html>"))
		return
	}
	p.serve(w, r, pages[0].Slug)
}

// Page serves one published page by slug.
func (p *Public) Page(w http.ResponseWriter, r *http.Request) {
	p.serve(w, r, chi.URLParam(r, "slug"))
}

func (p *Public) serve(w http.ResponseWriter, r *http.Request, slug string) {
	if html, ok := p.cache.Get(r.Context(), slug); ok {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Header().Set("X-Cache", "HIT")
		w.Write(html)
		return
	}

	page, err := p.pages.FindBySlug(slug)
	if err != nil {
		slog.Error("page lookup failed", "slug", slug, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	if page == nil {
		http.NotFound(w, r)
		return
	}

	p.cache.Set(r.Context(), slug, []byte(page.HTML))
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("X-Cache", "MISS")
	w.Write([]byte(page.HTML))
}
