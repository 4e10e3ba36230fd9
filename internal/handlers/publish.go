package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"landpress/internal/builder"
	"landpress/internal/cache"
	"landpress/internal/export"
	"landpress/internal/slug"
	"landpress/internal/storage"
	"landpress/internal/store"
)

// Publish turns the live document into a served page: export the
// standalone HTML, store it under the layout's slug, and drop any stale
// cache entry. Republishing the same slug overwrites.
type Publish struct {
	builder *builder.Builder
	pages   *store.PageStore
	cache   *cache.PageCache
	files   *storage.Client
}

// NewPublish creates a new Publish handler group. files may be nil when
// no object storage is configured; the mirror upload is then skipped.
func NewPublish(b *builder.Builder, pages *store.PageStore, pageCache *cache.PageCache, files *storage.Client) *Publish {
	return &Publish{builder: b, pages: pages, cache: pageCache, files: files}
}

// Page publishes the current document.
func (p *Publish) Page(w http.ResponseWriter, r *http.Request) {
	layout := p.builder.Layout()
	html := export.GenerateStandaloneHTML(layout)

	pageSlug := slug.Generate(layout.Name)
	if pageSlug == "" {
		pageSlug = "landing-page"
	}

	page, err := p.pages.Upsert(&store.PublishedPage{
		Slug:     pageSlug,
		Title:    layout.SEO.Title,
		HTML:     html,
		LayoutID: layout.ID,
	})
	if err != nil {
		slog.Error("publish failed", "slug", pageSlug, "error", err)
		writeError(w, http.StatusInternalServerError, "publish failed")
		return
	}
	p.cache.Invalidate(r.Context(), pageSlug)

	// Best-effort mirror to object storage for CDN-fronted serving.
	if p.files != nil {
		key := "sites/" + pageSlug + "/index.html"
		if err := p.files.Upload(r.Context(), key, "text/html; charset=utf-8", []byte(html)); err != nil {
			slog.Warn("object storage upload failed", "key", key, "error", err)
		}
	}

	writeJSON(w, http.StatusOK, page)
}

// List returns the published pages, newest first, without HTML bodies.
func (p *Publish) List(w http.ResponseWriter, r *http.Request) {
	pages, err := p.pages.List()
	if err != nil {
		slog.Error("list pages failed", "error", err)
		writeError(w, http.StatusInternalServerError, "could not list pages")
		return
	}
	if pages == nil {
		pages = []store.PublishedPage{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"pages": pages})
}

// Unpublish removes a published page.
func (p *Publish) Unpublish(w http.ResponseWriter, r *http.Request) {
	pageSlug := chi.URLParam(r, "slug")
	if err := p.pages.Delete(pageSlug); err != nil {
		slog.Error("unpublish failed", "slug", pageSlug, "error", err)
		writeError(w, http.StatusInternalServerError, "unpublish failed")
		return
	}
	p.cache.Invalidate(r.Context(), pageSlug)
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}
