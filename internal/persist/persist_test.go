// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Integration tests against a real Valkey. Skipped when it is not
// reachable. Uses DB 15 to stay clear of development data.
package persist

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"

	"landpress/internal/models"
	"landpress/internal/registry"
)

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func testAdapter(t *testing.T) *Adapter {
	t.Helper()

	client := redis.NewClient(&redis.Options{
		Addr:     envOr("VALKEY_HOST", "localhost") + ":" + envOr("VALKEY_PORT", "6379"),
		Password: os.Getenv("VALKEY_PASSWORD"),
		DB:       15,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		t.Skipf("skipping: valkey not reachable: %v", err)
	}

	adapter := New(client)
	t.Cleanup(func() {
		adapter.Clear(context.Background())
		client.Close()
	})
	return adapter
}

func TestSaveAndLoadLayout(t *testing.T) {
	adapter := testAdapter(t)
	ctx := context.Background()

	layout := models.DefaultLayout()
	layout.Name = "Persisted Page"
	layout.Components = []*models.Component{{
		ID:      "c1",
		Type:    models.SectionHero,
		Variant: "v2",
		Props:   registry.DefaultProps(models.SectionHero, "v2"),
		Styles:  map[string]any{"glassmorphism": true},
	}}
	layout.Versions = []models.Version{{
		ID:        "v1",
		Name:      "checkpoint",
		Timestamp: 42,
		Layout:    layout.Snapshot(),
	}}

	if err := adapter.SaveLayout(ctx, layout); err != nil {
		t.Fatalf("save: %v", err)
	}

	loaded := adapter.LoadLayout(ctx)
	if loaded.Name != "Persisted Page" {
		t.Errorf("name = %q", loaded.Name)
	}
	if len(loaded.Components) != 1 || loaded.Components[0].Variant != "v2" {
		t.Errorf("components = %+v", loaded.Components)
	}
	if len(loaded.Versions) != 1 || loaded.Versions[0].Name != "checkpoint" {
		t.Errorf("versions = %+v", loaded.Versions)
	}
	if got := loaded.Components[0].Styles["glassmorphism"]; got != true {
		t.Errorf("styles = %v", loaded.Components[0].Styles)
	}
}

func TestLoadLayoutMissingFallsBack(t *testing.T) {
	adapter := testAdapter(t)
	ctx := context.Background()
	adapter.Clear(ctx)

	loaded := adapter.LoadLayout(ctx)
	if loaded.Name != "New Page" {
		t.Errorf("name = %q, want default", loaded.Name)
	}
	if loaded.Components == nil || loaded.Versions == nil {
		t.Error("nil slices on fallback layout")
	}
}

func TestLoadLayoutCorruptFallsBack(t *testing.T) {
	adapter := testAdapter(t)
	ctx := context.Background()

	if err := adapter.client.Set(ctx, layoutKey, "not json {", 0).Err(); err != nil {
		t.Fatal(err)
	}

	loaded := adapter.LoadLayout(ctx)
	if loaded.Name != "New Page" {
		t.Errorf("corrupt record not replaced by default: name = %q", loaded.Name)
	}
}

func TestLoadLayoutBackfillsMissingFields(t *testing.T) {
	adapter := testAdapter(t)
	ctx := context.Background()

	// An older-shaped record: no theme mode, no seo, nil maps.
	partial := `{
		"name": "Old Save",
		"components": [{"id": "c1", "type": "cta", "variant": "v1"}],
		"theme": {"primaryColor": "#111111"}
	}`
	if err := adapter.client.Set(ctx, layoutKey, partial, 0).Err(); err != nil {
		t.Fatal(err)
	}

	loaded := adapter.LoadLayout(ctx)
	if loaded.Name != "Old Save" {
		t.Errorf("name = %q", loaded.Name)
	}
	if loaded.ID == "" {
		t.Error("missing id not backfilled")
	}
	if loaded.Theme.PrimaryColor != "#111111" {
		t.Errorf("stored theme value lost: %q", loaded.Theme.PrimaryColor)
	}
	if loaded.Theme.FontFamily != "Inter" || loaded.Theme.Mode != models.ThemeModeLight {
		t.Errorf("partial theme not backfilled: %+v", loaded.Theme)
	}
	if loaded.SEO.Title != models.DefaultSEOTitle {
		t.Errorf("missing seo not backfilled: %+v", loaded.SEO)
	}
	if loaded.Components[0].Props == nil || loaded.Components[0].Styles == nil {
		t.Error("nil component maps not initialized")
	}
	if loaded.Versions == nil {
		t.Error("nil versions not initialized")
	}
}

func TestLoadLayoutDropsLayoutlessVersions(t *testing.T) {
	adapter := testAdapter(t)
	ctx := context.Background()

	record := `{
		"name": "Checkpointed",
		"components": [],
		"theme": {"primaryColor": "#111111"},
		"versions": [
			{"id": "v1", "name": "broken"},
			{"id": "v2", "name": "good", "layout": {"components": [], "theme": {}}}
		]
	}`
	if err := adapter.client.Set(ctx, layoutKey, record, 0).Err(); err != nil {
		t.Fatal(err)
	}

	loaded := adapter.LoadLayout(ctx)
	if len(loaded.Versions) != 1 || loaded.Versions[0].Name != "good" {
		t.Errorf("versions = %+v, want only the restorable entry", loaded.Versions)
	}
	// The loaded layout feeds straight into history snapshots.
	loaded.Clone()
}
