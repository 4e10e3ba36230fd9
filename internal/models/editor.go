// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

// PreviewMode is the editor canvas viewport size.
type PreviewMode string

const (
	PreviewDesktop PreviewMode = "desktop"
	PreviewTablet  PreviewMode = "tablet"
	PreviewMobile  PreviewMode = "mobile"
)

// AssetTarget names where a picked asset URL lands: a component prop, or
// an SEO field when ID is the reserved value "seo".
type AssetTarget struct {
	ID   string `json:"id"`
	Prop string `json:"prop"`
	Kind string `json:"kind,omitempty"` // "image" or "icon", UI hint only
}

// SEOTargetID is the AssetTarget.ID value addressing the layout's SEO
// config instead of a component.
const SEOTargetID = "seo"

// AssetsManager tracks the asset picker dialog state.
type AssetsManager struct {
	Open   bool         `json:"open"`
	Target *AssetTarget `json:"target,omitempty"`
}

// EditorState is the UI-focus state owned by the mutation engine. It is
// session-scoped, never persisted, and never part of undo history —
// undo/redo must not move the user's selection or viewport.
type EditorState struct {
	SelectedComponentID string        `json:"selectedComponentId,omitempty"`
	PreviewMode         PreviewMode   `json:"previewMode"`
	FocusedProp         string        `json:"focusedProp,omitempty"`
	AssetsManager       AssetsManager `json:"assetsManager"`
	CanUndo             bool          `json:"canUndo"`
	CanRedo             bool          `json:"canRedo"`
	AutoSaving          bool          `json:"autoSaving"`
	LastSaveTime        int64         `json:"lastSaveTime,omitempty"` // Unix milliseconds
}
