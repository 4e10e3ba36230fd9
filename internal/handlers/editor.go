package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"landpress/internal/builder"
	"landpress/internal/models"
)

// Editor exposes the mutation engine over HTTP. Every endpoint is a thin
// translation layer: decode, call the engine, report the result. The
// engine itself decides what is a no-op.
type Editor struct {
	builder *builder.Builder
}

// NewEditor creates a new Editor handler group.
func NewEditor(b *builder.Builder) *Editor {
	return &Editor{builder: b}
}

// State returns the full editor view: the live document plus UI state.
func (e *Editor) State(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"layout": e.builder.Layout(),
		"editor": e.builder.Editor(),
	})
}

// Layout returns the live document alone.
func (e *Editor) Layout(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, e.builder.Layout())
}

// Templates lists the available template preset names.
func (e *Editor) Templates(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"templates": builder.TemplateNames()})
}

type addComponentRequest struct {
	Type  models.SectionType `json:"type"`
	Index *int               `json:"index,omitempty"`
}

// AddComponent inserts a new section. A missing index appends.
func (e *Editor) AddComponent(w http.ResponseWriter, r *http.Request) {
	var req addComponentRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	index := -1
	if req.Index != nil {
		index = *req.Index
	}
	c := e.builder.AddComponent(req.Type, index)
	if c == nil {
		writeError(w, http.StatusBadRequest, "unknown section type")
		return
	}
	writeJSON(w, http.StatusCreated, c)
}

type updateComponentRequest struct {
	Variant *string        `json:"variant,omitempty"`
	Styles  map[string]any `json:"styles,omitempty"`
	Props   map[string]any `json:"props,omitempty"`
	// Patches maps dotted prop paths ("items.0.title") to new leaf
	// values. Paths are parsed here, once, at the API boundary.
	Patches map[string]any `json:"patches,omitempty"`
}

// UpdateComponent applies a partial update to one section.
func (e *Editor) UpdateComponent(w http.ResponseWriter, r *http.Request) {
	var req updateComponentRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	upd := builder.ComponentUpdate{
		Variant: req.Variant,
		Styles:  req.Styles,
		Props:   req.Props,
	}
	for key, value := range req.Patches {
		upd.Patches = append(upd.Patches, builder.PropPatch{
			Path:  builder.ParsePropPath(key),
			Value: value,
		})
	}

	if !e.builder.UpdateComponent(chi.URLParam(r, "id"), upd) {
		writeError(w, http.StatusNotFound, "component not found")
		return
	}
	writeJSON(w, http.StatusOK, e.builder.Layout())
}

// RemoveComponent deletes one section.
func (e *Editor) RemoveComponent(w http.ResponseWriter, r *http.Request) {
	if !e.builder.RemoveComponent(chi.URLParam(r, "id")) {
		writeError(w, http.StatusNotFound, "component not found")
		return
	}
	writeJSON(w, http.StatusOK, e.builder.Layout())
}

// DuplicateComponent clones one section in place.
func (e *Editor) DuplicateComponent(w http.ResponseWriter, r *http.Request) {
	c := e.builder.DuplicateComponent(chi.URLParam(r, "id"))
	if c == nil {
		writeError(w, http.StatusNotFound, "component not found")
		return
	}
	writeJSON(w, http.StatusCreated, c)
}

// ResetComponent restores one section's default props.
func (e *Editor) ResetComponent(w http.ResponseWriter, r *http.Request) {
	if !e.builder.ResetComponent(chi.URLParam(r, "id")) {
		writeError(w, http.StatusNotFound, "component not found")
		return
	}
	writeJSON(w, http.StatusOK, e.builder.Layout())
}

type reorderRequest struct {
	From int `json:"from"`
	To   int `json:"to"`
}

// ReorderComponents moves a section to a new position.
func (e *Editor) ReorderComponents(w http.ResponseWriter, r *http.Request) {
	var req reorderRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	e.builder.ReorderComponents(req.From, req.To)
	writeJSON(w, http.StatusOK, e.builder.Layout())
}

type selectRequest struct {
	ID string `json:"id"`
}

// Select marks a section as selected in the editor UI.
func (e *Editor) Select(w http.ResponseWriter, r *http.Request) {
	var req selectRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	e.builder.SelectComponent(req.ID)
	writeJSON(w, http.StatusOK, e.builder.Editor())
}

type focusRequest struct {
	Prop string `json:"prop"`
}

// Focus records which prop the editor cursor is in.
func (e *Editor) Focus(w http.ResponseWriter, r *http.Request) {
	var req focusRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	e.builder.SetFocusedProp(req.Prop)
	writeJSON(w, http.StatusOK, e.builder.Editor())
}

type previewRequest struct {
	Mode models.PreviewMode `json:"mode"`
}

// Preview switches the canvas viewport size.
func (e *Editor) Preview(w http.ResponseWriter, r *http.Request) {
	var req previewRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	switch req.Mode {
	case models.PreviewDesktop, models.PreviewTablet, models.PreviewMobile:
	default:
		writeError(w, http.StatusBadRequest, "unknown preview mode")
		return
	}
	e.builder.SetPreviewMode(req.Mode)
	writeJSON(w, http.StatusOK, e.builder.Editor())
}

type themeRequest struct {
	PrimaryColor   *string           `json:"primaryColor,omitempty"`
	SecondaryColor *string           `json:"secondaryColor,omitempty"`
	FontFamily     *string           `json:"fontFamily,omitempty"`
	Mode           *models.ThemeMode `json:"mode,omitempty"`
}

// UpdateTheme shallow-merges a partial theme update.
func (e *Editor) UpdateTheme(w http.ResponseWriter, r *http.Request) {
	var req themeRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Mode != nil && *req.Mode != models.ThemeModeLight && *req.Mode != models.ThemeModeDark {
		writeError(w, http.StatusBadRequest, "unknown theme mode")
		return
	}
	e.builder.SetTheme(builder.ThemeUpdate{
		PrimaryColor:   req.PrimaryColor,
		SecondaryColor: req.SecondaryColor,
		FontFamily:     req.FontFamily,
		Mode:           req.Mode,
	})
	writeJSON(w, http.StatusOK, e.builder.Layout())
}

type themeColorRequest struct {
	Color string `json:"color"`
}

// SetThemeColor sets the primary accent color.
func (e *Editor) SetThemeColor(w http.ResponseWriter, r *http.Request) {
	var req themeColorRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	e.builder.SetThemeColor(req.Color)
	writeJSON(w, http.StatusOK, e.builder.Layout())
}

type seoRequest struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	OGImage     *string `json:"ogImage,omitempty"`
}

// UpdateSEO shallow-merges a partial SEO update.
func (e *Editor) UpdateSEO(w http.ResponseWriter, r *http.Request) {
	var req seoRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	e.builder.SetSEO(builder.SEOUpdate{
		Title:       req.Title,
		Description: req.Description,
		OGImage:     req.OGImage,
	})
	writeJSON(w, http.StatusOK, e.builder.Layout())
}

// OpenAssets opens the asset picker for a target prop.
func (e *Editor) OpenAssets(w http.ResponseWriter, r *http.Request) {
	var target models.AssetTarget
	if err := decodeJSON(r, &target); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	e.builder.OpenAssetsManager(target)
	writeJSON(w, http.StatusOK, e.builder.Editor())
}

// CloseAssets closes the asset picker without selecting anything.
func (e *Editor) CloseAssets(w http.ResponseWriter, r *http.Request) {
	e.builder.CloseAssetsManager()
	writeJSON(w, http.StatusOK, e.builder.Editor())
}

type selectAssetRequest struct {
	URL string `json:"url"`
}

// SelectAsset writes a picked asset URL into the pending picker target.
func (e *Editor) SelectAsset(w http.ResponseWriter, r *http.Request) {
	var req selectAssetRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	e.builder.SelectAsset(req.URL)
	writeJSON(w, http.StatusOK, map[string]any{
		"layout": e.builder.Layout(),
		"editor": e.builder.Editor(),
	})
}

type applyTemplateRequest struct {
	Name string `json:"name"`
}

// ApplyTemplate replaces the document's sections with a named preset.
func (e *Editor) ApplyTemplate(w http.ResponseWriter, r *http.Request) {
	var req applyTemplateRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	e.builder.ApplyTemplate(req.Name)
	writeJSON(w, http.StatusOK, e.builder.Layout())
}

// Import replaces the whole document from an uploaded JSON export.
func (e *Editor) Import(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodySize))
	if err != nil {
		writeError(w, http.StatusBadRequest, "could not read body")
		return
	}
	if err := e.builder.ImportLayout(body); err != nil {
		if errors.Is(err, builder.ErrInvalidLayout) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, "import failed")
		return
	}
	writeJSON(w, http.StatusOK, e.builder.Layout())
}

type saveVersionRequest struct {
	Name string `json:"name"`
}

// SaveVersion appends a named snapshot to the document's version list.
func (e *Editor) SaveVersion(w http.ResponseWriter, r *http.Request) {
	var req saveVersionRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	v := e.builder.SaveVersion(req.Name)
	writeJSON(w, http.StatusCreated, v)
}

// ListVersions returns the saved versions' metadata, without the stored
// layouts (those can be large).
func (e *Editor) ListVersions(w http.ResponseWriter, r *http.Request) {
	layout := e.builder.Layout()
	type versionMeta struct {
		ID        string `json:"id"`
		Name      string `json:"name"`
		Timestamp int64  `json:"timestamp"`
	}
	metas := make([]versionMeta, len(layout.Versions))
	for i, v := range layout.Versions {
		metas[i] = versionMeta{ID: v.ID, Name: v.Name, Timestamp: v.Timestamp}
	}
	writeJSON(w, http.StatusOK, map[string]any{"versions": metas})
}

// LoadVersion restores a saved snapshot as the live document.
func (e *Editor) LoadVersion(w http.ResponseWriter, r *http.Request) {
	if !e.builder.LoadVersion(chi.URLParam(r, "id")) {
		writeError(w, http.StatusNotFound, "version not found")
		return
	}
	writeJSON(w, http.StatusOK, e.builder.Layout())
}

// Undo steps the document back one history entry.
func (e *Editor) Undo(w http.ResponseWriter, r *http.Request) {
	e.builder.Undo()
	writeJSON(w, http.StatusOK, map[string]any{
		"layout": e.builder.Layout(),
		"editor": e.builder.Editor(),
	})
}

// Redo steps the document forward one history entry.
func (e *Editor) Redo(w http.ResponseWriter, r *http.Request) {
	e.builder.Redo()
	writeJSON(w, http.StatusOK, map[string]any{
		"layout": e.builder.Layout(),
		"editor": e.builder.Editor(),
	})
}

// Save forces an immediate persistence write.
func (e *Editor) Save(w http.ResponseWriter, r *http.Request) {
	if err := e.builder.AutoSave(r.Context()); err != nil {
		writeError(w, http.StatusInternalServerError, "save failed")
		return
	}
	writeJSON(w, http.StatusOK, e.builder.Editor())
}
