// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package builder is the editing state engine. It owns the live Layout,
// the editor UI state, and the linear undo/redo history, and exposes every
// mutation the editor surface performs. All mutating operations follow the
// same discipline: change the live layout, then commit a deep-copy snapshot
// to history. Snapshots never alias the live document.
//
// Missing-id mutations are silent no-ops (the engine must not crash on a
// stale id); the one validated, user-initiated operation is ImportLayout,
// which reports failure and leaves both the layout and the history intact.
package builder

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"landpress/internal/models"
	"landpress/internal/registry"
)

// ErrInvalidLayout is returned by ImportLayout for malformed JSON or a
// document missing the required top-level fields.
var ErrInvalidLayout = errors.New("invalid layout")

// Persister writes layout snapshots to durable storage. The builder calls
// it from AutoSave and after template application and import.
type Persister interface {
	SaveLayout(ctx context.Context, layout *models.Layout) error
}

// PropPatch addresses one nested props leaf to overwrite.
type PropPatch struct {
	Path  PropPath
	Value any
}

// ComponentUpdate describes a partial component update. Nil fields are
// left untouched. Setting Variant to a different value resets Props to
// that variant's defaults and ignores Props/Patches in the same call.
type ComponentUpdate struct {
	Variant *string
	Styles  map[string]any // wholesale replacement
	Props   map[string]any // wholesale replacement
	Patches []PropPatch    // leaf-level deep merges
}

// ThemeUpdate is a shallow partial update of the layout theme.
type ThemeUpdate struct {
	PrimaryColor   *string
	SecondaryColor *string
	FontFamily     *string
	Mode           *models.ThemeMode
}

// SEOUpdate is a shallow partial update of the SEO config.
type SEOUpdate struct {
	Title       *string
	Description *string
	OGImage     *string
}

// Builder holds the live document and its editing session state. Methods
// are safe for concurrent use; operations serialize behind one mutex so
// there is never more than one in-flight mutation.
type Builder struct {
	mu           sync.Mutex
	layout       *models.Layout
	editor       models.EditorState
	history      []*models.Layout
	historyIndex int
	persister    Persister
}

// New creates a builder around an initial layout (the persisted snapshot
// or the built-in default when nil). History starts as a single entry.
func New(initial *models.Layout, persister Persister) *Builder {
	if initial == nil {
		initial = models.DefaultLayout()
	}
	return &Builder{
		layout:       initial,
		history:      []*models.Layout{initial.Clone()},
		historyIndex: 0,
		editor:       models.EditorState{PreviewMode: models.PreviewDesktop},
		persister:    persister,
	}
}

// Layout returns a deep copy of the live document. Callers may keep or
// mutate it freely; it shares nothing with the engine's state.
func (b *Builder) Layout() *models.Layout {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.layout.Clone()
}

// Editor returns a copy of the current editor UI state.
func (b *Builder) Editor() models.EditorState {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.editorCopy()
}

func (b *Builder) editorCopy() models.EditorState {
	ed := b.editor
	if ed.AssetsManager.Target != nil {
		target := *ed.AssetsManager.Target
		ed.AssetsManager.Target = &target
	}
	return ed
}

// HistoryLen reports the current number of history snapshots.
func (b *Builder) HistoryLen() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.history)
}

// HistoryIndex reports the history cursor position.
func (b *Builder) HistoryIndex() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.historyIndex
}

// commit appends a deep copy of the live layout to history, discarding
// any redo entries beyond the cursor. Must be called with mu held.
func (b *Builder) commit() {
	b.history = append(b.history[:b.historyIndex+1], b.layout.Clone())
	b.historyIndex = len(b.history) - 1
	b.editor.CanUndo = b.historyIndex > 0
	b.editor.CanRedo = false
}

// resetHistory replaces the whole history with a single snapshot of the
// live layout. Used by import, which deliberately discards prior history.
// Must be called with mu held.
func (b *Builder) resetHistory() {
	b.history = []*models.Layout{b.layout.Clone()}
	b.historyIndex = 0
	b.editor.CanUndo = false
	b.editor.CanRedo = false
}

// AddComponent creates a component of the given type with the default
// variant and props, inserts it at index (appends when index is out of
// range or negative), and selects it. Returns a copy of the new component,
// or nil for an unknown section type.
func (b *Builder) AddComponent(t models.SectionType, index int) *models.Component {
	if !t.Valid() {
		slog.Warn("add component ignored: unknown section type", "type", t)
		return nil
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	c := &models.Component{
		ID:      uuid.NewString(),
		Type:    t,
		Variant: registry.DefaultVariant,
		Props:   registry.DefaultProps(t, registry.DefaultVariant),
		Styles:  map[string]any{},
	}

	if index >= 0 && index <= len(b.layout.Components) {
		b.layout.Components = append(b.layout.Components, nil)
		copy(b.layout.Components[index+1:], b.layout.Components[index:])
		b.layout.Components[index] = c
	} else {
		b.layout.Components = append(b.layout.Components, c)
	}

	b.editor.SelectedComponentID = c.ID
	b.commit()
	return c.Clone()
}

// UpdateComponent applies a partial update to the component with the
// given id. A variant change resets props to the new variant's defaults;
// otherwise wholesale replacements apply first, then leaf patches.
// Returns false (without committing) when the id does not resolve.
func (b *Builder) UpdateComponent(id string, upd ComponentUpdate) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	c, _ := b.layout.FindComponent(id)
	if c == nil {
		return false
	}

	if upd.Variant != nil && *upd.Variant != c.Variant {
		c.Variant = *upd.Variant
		c.Props = registry.DefaultProps(c.Type, c.Variant)
	} else {
		if upd.Props != nil {
			c.Props = models.CopyPropMap(upd.Props)
		}
		for _, patch := range upd.Patches {
			c.Props = setPropValue(c.Props, patch.Path, models.CopyValue(patch.Value))
		}
	}

	if upd.Styles != nil {
		c.Styles = models.CopyPropMap(upd.Styles)
	}

	b.commit()
	return true
}

// RemoveComponent deletes the component with the given id, clearing the
// selection if it was selected. Missing ids are a silent no-op.
func (b *Builder) RemoveComponent(id string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	_, idx := b.layout.FindComponent(id)
	if idx < 0 {
		return false
	}

	b.layout.Components = append(b.layout.Components[:idx], b.layout.Components[idx+1:]...)
	if b.editor.SelectedComponentID == id {
		b.editor.SelectedComponentID = ""
	}
	b.commit()
	return true
}

// DuplicateComponent deep-clones a component under a fresh id, inserts
// the clone immediately after the original, and selects it.
func (b *Builder) DuplicateComponent(id string) *models.Component {
	b.mu.Lock()
	defer b.mu.Unlock()

	original, idx := b.layout.FindComponent(id)
	if original == nil {
		return nil
	}

	clone := original.Clone()
	clone.ID = uuid.NewString()

	b.layout.Components = append(b.layout.Components, nil)
	copy(b.layout.Components[idx+2:], b.layout.Components[idx+1:])
	b.layout.Components[idx+1] = clone

	b.editor.SelectedComponentID = clone.ID
	b.commit()
	return clone.Clone()
}

// ReorderComponents removes the component at from and reinserts it at to
// (splice semantics, not a swap). Out-of-range indices are a no-op.
func (b *Builder) ReorderComponents(from, to int) {
	b.mu.Lock()
	defer b.mu.Unlock()

	n := len(b.layout.Components)
	if from < 0 || from >= n || to < 0 || to >= n {
		return
	}

	moved := b.layout.Components[from]
	rest := append(b.layout.Components[:from], b.layout.Components[from+1:]...)
	b.layout.Components = append(rest[:to], append([]*models.Component{moved}, rest[to:]...)...)
	b.commit()
}

// ResetComponent restores a component's props to the defaults for its
// current variant and clears its styles.
func (b *Builder) ResetComponent(id string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	c, _ := b.layout.FindComponent(id)
	if c == nil {
		return false
	}

	c.Props = registry.DefaultProps(c.Type, c.Variant)
	c.Styles = map[string]any{}
	b.commit()
	return true
}

// SelectComponent updates the selection. An empty id clears it. Editor
// state only — never committed to history.
func (b *Builder) SelectComponent(id string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.editor.SelectedComponentID = id
}

// SetFocusedProp records which prop the pointer is over. Editor state only.
func (b *Builder) SetFocusedProp(key string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.editor.FocusedProp = key
}

// SetPreviewMode changes the canvas viewport. Editor state only.
func (b *Builder) SetPreviewMode(mode models.PreviewMode) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.editor.PreviewMode = mode
}

// SetTheme shallow-merges a partial theme update. An unrecognized font
// family is ignored, keeping the current one.
func (b *Builder) SetTheme(upd ThemeUpdate) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if upd.PrimaryColor != nil {
		b.layout.Theme.PrimaryColor = *upd.PrimaryColor
	}
	if upd.SecondaryColor != nil {
		b.layout.Theme.SecondaryColor = *upd.SecondaryColor
	}
	if upd.FontFamily != nil {
		if models.KnownFont(*upd.FontFamily) {
			b.layout.Theme.FontFamily = *upd.FontFamily
		} else {
			slog.Warn("theme update ignored unknown font", "font", *upd.FontFamily)
		}
	}
	if upd.Mode != nil {
		b.layout.Theme.Mode = *upd.Mode
	}
	b.commit()
}

// SetThemeColor sets the primary accent color.
func (b *Builder) SetThemeColor(color string) {
	b.SetTheme(ThemeUpdate{PrimaryColor: &color})
}

// SetSEO shallow-merges a partial SEO update.
func (b *Builder) SetSEO(upd SEOUpdate) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.applySEO(upd)
	b.commit()
}

func (b *Builder) applySEO(upd SEOUpdate) {
	if upd.Title != nil {
		b.layout.SEO.Title = *upd.Title
	}
	if upd.Description != nil {
		b.layout.SEO.Description = *upd.Description
	}
	if upd.OGImage != nil {
		b.layout.SEO.OGImage = *upd.OGImage
	}
}

// OpenAssetsManager opens the asset picker for the given target.
func (b *Builder) OpenAssetsManager(target models.AssetTarget) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.editor.AssetsManager = models.AssetsManager{Open: true, Target: &target}
}

// CloseAssetsManager closes the asset picker, keeping the last target.
func (b *Builder) CloseAssetsManager() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.editor.AssetsManager.Open = false
}

// SelectAsset resolves the pending picker target, writing url into either
// the SEO config or the target component's prop, then closes the picker.
// This is the sole bridge from asset selection into the document model.
func (b *Builder) SelectAsset(url string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	target := b.editor.AssetsManager.Target
	if target == nil {
		return
	}

	if target.ID == models.SEOTargetID {
		switch target.Prop {
		case "title":
			b.layout.SEO.Title = url
		case "description":
			b.layout.SEO.Description = url
		default:
			b.layout.SEO.OGImage = url
		}
		b.editor.AssetsManager.Open = false
		b.commit()
		return
	}

	c, _ := b.layout.FindComponent(target.ID)
	if c == nil {
		b.editor.AssetsManager.Open = false
		return
	}

	c.Props = setPropValue(c.Props, ParsePropPath(target.Prop), url)
	b.editor.AssetsManager.Open = false
	b.commit()
}

// ImportLayout parses and validates a JSON document, replacing the live
// layout wholesale and resetting history to a single entry. On any
// failure the live layout and history are left untouched. Import also
// triggers an immediate persistence write.
func (b *Builder) ImportLayout(jsonText []byte) error {
	var probe map[string]json.RawMessage
	if err := json.Unmarshal(jsonText, &probe); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidLayout, err)
	}

	var components []json.RawMessage
	if raw, ok := probe["components"]; !ok || json.Unmarshal(raw, &components) != nil {
		return fmt.Errorf("%w: missing components array", ErrInvalidLayout)
	}
	var theme map[string]json.RawMessage
	if raw, ok := probe["theme"]; !ok || json.Unmarshal(raw, &theme) != nil {
		return fmt.Errorf("%w: missing theme object", ErrInvalidLayout)
	}

	var layout models.Layout
	if err := json.Unmarshal(jsonText, &layout); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidLayout, err)
	}

	// Accept permissively, then backfill anything the document omits.
	if layout.ID == "" {
		layout.ID = uuid.NewString()
	}
	if layout.Components == nil {
		layout.Components = []*models.Component{}
	}
	for _, c := range layout.Components {
		if c.ID == "" {
			c.ID = uuid.NewString()
		}
		if c.Props == nil {
			c.Props = map[string]any{}
		}
		if c.Styles == nil {
			c.Styles = map[string]any{}
		}
	}
	// A version entry without a stored layout can never be restored; drop it.
	versions := layout.Versions[:0]
	for _, v := range layout.Versions {
		if v.Layout == nil {
			continue
		}
		if v.ID == "" {
			v.ID = uuid.NewString()
		}
		versions = append(versions, v)
	}
	if versions == nil {
		versions = []models.Version{}
	}
	layout.Versions = versions

	b.mu.Lock()
	b.layout = &layout
	b.resetHistory()
	snapshot := b.layout.Clone()
	b.mu.Unlock()

	b.persistAsync(snapshot)
	return nil
}

// SaveVersion appends a named, timestamped snapshot of the layout to its
// versions list. The stored snapshot excludes the versions list itself.
// Saving a version is an ordinary commit, so it is undoable.
func (b *Builder) SaveVersion(name string) models.Version {
	b.mu.Lock()
	defer b.mu.Unlock()

	v := models.Version{
		ID:        uuid.NewString(),
		Name:      name,
		Timestamp: time.Now().UnixMilli(),
		Layout:    b.layout.Snapshot(),
	}
	b.layout.Versions = append(b.layout.Versions, v)
	b.commit()
	return v
}

// LoadVersion replaces the live layout with a stored version's snapshot
// while preserving the current versions list, then commits. Loading an
// old version never rolls back the version list itself.
func (b *Builder) LoadVersion(versionID string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	var found *models.Version
	for i := range b.layout.Versions {
		if b.layout.Versions[i].ID == versionID {
			found = &b.layout.Versions[i]
			break
		}
	}
	if found == nil {
		return false
	}

	restored := found.Layout.Clone()
	restored.Versions = b.layout.Versions
	b.layout = restored
	b.commit()
	return true
}

// ApplyTemplate atomically replaces the component sequence with a named
// preset (falling back to the first preset for an unknown name), applies
// the preset's theme override if any, and renames the layout to the
// requested name — even on fallback. The SEO title is only overwritten
// while it still holds the placeholder default. Commits, then triggers
// an immediate persistence write.
func (b *Builder) ApplyTemplate(name string) {
	preset, ok := templatePresets[name]
	if !ok {
		preset = templatePresets[fallbackTemplate]
	}

	b.mu.Lock()

	components := make([]*models.Component, len(preset.Sections))
	for i, t := range preset.Sections {
		variant := preset.Variants[i]
		if variant == "" {
			variant = registry.DefaultVariant
		}
		components[i] = &models.Component{
			ID:      uuid.NewString(),
			Type:    t,
			Variant: variant,
			Props:   registry.DefaultProps(t, variant),
			Styles:  map[string]any{"glassmorphism": preset.Glassmorphism[i]},
		}
	}

	b.layout.Name = name
	b.layout.Components = components
	if preset.Theme != nil {
		b.layout.Theme = *preset.Theme
	}
	if b.layout.SEO.Title == models.DefaultSEOTitle {
		b.layout.SEO.Title = name
	}

	b.commit()
	snapshot := b.layout.Clone()
	b.mu.Unlock()

	b.persistAsync(snapshot)
}

// Undo moves the history cursor back one entry and replaces the live
// layout with a deep copy of that snapshot. No-op at the boundary.
func (b *Builder) Undo() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.historyIndex == 0 {
		return
	}
	b.historyIndex--
	b.layout = b.history[b.historyIndex].Clone()
	b.editor.CanUndo = b.historyIndex > 0
	b.editor.CanRedo = true
}

// Redo moves the history cursor forward one entry. No-op at the boundary.
func (b *Builder) Redo() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.historyIndex >= len(b.history)-1 {
		return
	}
	b.historyIndex++
	b.layout = b.history[b.historyIndex].Clone()
	b.editor.CanUndo = true
	b.editor.CanRedo = b.historyIndex < len(b.history)-1
}

// AutoSave serializes the live layout to the persistence adapter, tracking
// the in-progress flag and last-success instant for UI feedback. Not part
// of the undo system. A write failure is returned to the caller but the
// next periodic save simply retries.
func (b *Builder) AutoSave(ctx context.Context) error {
	if b.persister == nil {
		return nil
	}

	b.mu.Lock()
	b.editor.AutoSaving = true
	snapshot := b.layout.Clone()
	b.mu.Unlock()

	err := b.persister.SaveLayout(ctx, snapshot)

	b.mu.Lock()
	b.editor.AutoSaving = false
	if err == nil {
		b.editor.LastSaveTime = time.Now().UnixMilli()
	}
	b.mu.Unlock()

	if err != nil {
		return fmt.Errorf("autosave: %w", err)
	}
	return nil
}

// persistAsync kicks off a fire-and-forget persistence write for the
// operations that save immediately (template application, import).
func (b *Builder) persistAsync(snapshot *models.Layout) {
	if b.persister == nil {
		return
	}
	go func() {
		if err := b.persister.SaveLayout(context.Background(), snapshot); err != nil {
			slog.Warn("immediate layout save failed", "error", err)
		}
	}()
}
