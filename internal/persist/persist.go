// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package persist stores the working layout as a JSON blob under a single
// fixed Valkey key. It is a last-writer-wins slot: no optimistic
// concurrency, consistent with the single-editor assumption. Loading
// tolerates partial or older-shaped records by backfilling each missing
// top-level field from the built-in default layout.
package persist

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"landpress/internal/models"
)

// layoutKey is the fixed blob slot for the working layout.
const layoutKey = "landpress:layout"

// Adapter reads and writes layout snapshots in Valkey.
type Adapter struct {
	client *redis.Client
}

// New creates a persistence adapter backed by the given Valkey client.
func New(client *redis.Client) *Adapter {
	return &Adapter{client: client}
}

// SaveLayout serializes the layout verbatim into the blob slot. The entry
// has no TTL — the working document survives restarts.
func (a *Adapter) SaveLayout(ctx context.Context, layout *models.Layout) error {
	payload, err := json.Marshal(layout)
	if err != nil {
		return fmt.Errorf("marshal layout: %w", err)
	}
	if err := a.client.Set(ctx, layoutKey, payload, 0).Err(); err != nil {
		return fmt.Errorf("save layout: %w", err)
	}
	slog.Debug("layout saved", "bytes", len(payload), "versions", len(layout.Versions))
	return nil
}

// LoadLayout retrieves the stored layout. A missing record, a read
// failure, or unparseable JSON all fall back to the built-in default —
// persistence problems are never fatal to the editing session.
func (a *Adapter) LoadLayout(ctx context.Context) *models.Layout {
	payload, err := a.client.Get(ctx, layoutKey).Bytes()
	if err == redis.Nil {
		return models.DefaultLayout()
	}
	if err != nil {
		slog.Warn("layout load failed, using default", "error", err)
		return models.DefaultLayout()
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(payload, &raw); err != nil {
		slog.Warn("stored layout unparseable, using default", "error", err)
		return models.DefaultLayout()
	}

	var stored models.Layout
	if err := json.Unmarshal(payload, &stored); err != nil {
		slog.Warn("stored layout unparseable, using default", "error", err)
		return models.DefaultLayout()
	}

	// Field-by-field backfill: older saves may predate individual fields.
	// Each missing field independently takes the built-in default.
	def := models.DefaultLayout()
	if stored.ID == "" {
		stored.ID = def.ID
	}
	if stored.Name == "" {
		stored.Name = def.Name
	}
	if _, ok := raw["theme"]; !ok {
		stored.Theme = def.Theme
	} else {
		// Partial theme objects keep what they carry; the rest defaults.
		if stored.Theme.PrimaryColor == "" {
			stored.Theme.PrimaryColor = def.Theme.PrimaryColor
		}
		if stored.Theme.SecondaryColor == "" {
			stored.Theme.SecondaryColor = def.Theme.SecondaryColor
		}
		if stored.Theme.FontFamily == "" {
			stored.Theme.FontFamily = def.Theme.FontFamily
		}
		if stored.Theme.Mode == "" {
			stored.Theme.Mode = def.Theme.Mode
		}
	}
	if _, ok := raw["seo"]; !ok {
		stored.SEO = def.SEO
	} else if stored.SEO.Title == "" {
		stored.SEO.Title = def.SEO.Title
	}
	if stored.Components == nil {
		stored.Components = []*models.Component{}
	}
	for _, c := range stored.Components {
		if c.Props == nil {
			c.Props = map[string]any{}
		}
		if c.Styles == nil {
			c.Styles = map[string]any{}
		}
	}
	// A version entry without a stored layout can never be restored; drop it.
	versions := stored.Versions[:0]
	for _, v := range stored.Versions {
		if v.Layout != nil {
			versions = append(versions, v)
		}
	}
	if versions == nil {
		versions = []models.Version{}
	}
	stored.Versions = versions

	return &stored
}

// Clear removes the stored layout. Used by tests.
func (a *Adapter) Clear(ctx context.Context) error {
	return a.client.Del(ctx, layoutKey).Err()
}
