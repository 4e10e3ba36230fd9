// Package main is the entry point for the landpress editor server.
// It loads configuration, connects to services, restores the persisted
// layout, sets up routing, and starts the HTTP server with graceful
// shutdown support.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"landpress/internal/builder"
	"landpress/internal/cache"
	"landpress/internal/config"
	"landpress/internal/database"
	"landpress/internal/export"
	"landpress/internal/handlers"
	"landpress/internal/persist"
	"landpress/internal/router"
	"landpress/internal/session"
	"landpress/internal/storage"
	"landpress/internal/store"
)

func main() {
	// Structured logger — text output, debug level.
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	slog.SetDefault(logger)

	// Load configuration from environment variables.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}
	if cfg.AdminPasswordHash == "" {
		slog.Warn("ADMIN_PASSWORD_HASH is not set; editor login is disabled until it is configured")
	}

	slog.Info("configuration loaded",
		"env", cfg.Env,
		"addr", cfg.Addr(),
	)

	// Connect to PostgreSQL (published pages).
	db, err := database.Connect(cfg.DSN())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	// Run pending migrations.
	if err := database.Migrate(db); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	// Connect to Valkey (layout persistence, sessions, page cache).
	valkeyClient, err := cache.ConnectValkey(cfg.ValkeyHost, cfg.ValkeyPort, cfg.ValkeyPassword)
	if err != nil {
		slog.Error("failed to connect to valkey", "error", err)
		os.Exit(1)
	}
	defer valkeyClient.Close()

	// In non-development environments, mark session cookies as Secure.
	secureCookies := !cfg.IsDev()
	sessionStore := session.NewStore(valkeyClient, secureCookies)

	// Restore the working layout and hand it to the mutation engine.
	persister := persist.New(valkeyClient)
	startCtx, startCancel := context.WithTimeout(context.Background(), 10*time.Second)
	initial := persister.LoadLayout(startCtx)
	startCancel()
	engine := builder.New(initial, persister)

	slog.Info("layout restored",
		"name", initial.Name,
		"components", len(initial.Components),
		"versions", len(initial.Versions),
	)

	pageStore := store.NewPageStore(db)
	pageCache := cache.NewPageCache(valkeyClient, cache.DefaultPageTTL)

	// Connect to S3-compatible object storage (optional — app works without it).
	var storageClient *storage.Client
	if cfg.S3Endpoint != "" && cfg.S3AccessKey != "" {
		storageClient, err = storage.New(
			cfg.S3Endpoint, cfg.S3Region, cfg.S3AccessKey, cfg.S3SecretKey,
			cfg.S3Bucket, cfg.S3PublicURL,
		)
		if err != nil {
			slog.Error("failed to initialize S3 storage", "error", err)
			os.Exit(1)
		}
		if storageClient != nil {
			slog.Info("s3 storage connected", "endpoint", cfg.S3Endpoint, "bucket", cfg.S3Bucket)
		}
	} else {
		slog.Warn("s3 storage not configured — published pages served from database only")
	}

	// Archive exports bundle assets from object storage when configured,
	// otherwise from the local assets directory.
	var assetSource export.AssetSource
	switch {
	case storageClient != nil:
		assetSource = storageClient
	case cfg.AssetsDir != "":
		assetSource = export.DirAssets{Root: cfg.AssetsDir}
	}

	// Create handler groups with their dependencies.
	authHandlers := handlers.NewAuth(sessionStore, cfg.AdminEmail, cfg.AdminPasswordHash)
	editorHandlers := handlers.NewEditor(engine)
	exportHandlers := handlers.NewExport(engine, assetSource)
	publishHandlers := handlers.NewPublish(engine, pageStore, pageCache, storageClient)
	publicHandlers := handlers.NewPublic(pageStore, pageCache)

	// Set up the Chi router with all middleware and routes.
	r := router.New(sessionStore, authHandlers, editorHandlers, exportHandlers, publishHandlers, publicHandlers)

	// Background autosave loop. Stopped on shutdown via context cancel.
	autosaveCtx, stopAutosave := context.WithCancel(context.Background())
	go func() {
		ticker := time.NewTicker(cfg.AutosaveInterval)
		defer ticker.Stop()
		for {
			select {
			case <-autosaveCtx.Done():
				return
			case <-ticker.C:
				if err := engine.AutoSave(autosaveCtx); err != nil {
					slog.Warn("autosave failed", "error", err)
				}
			}
		}
	}()

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Start the server in a goroutine so we can listen for shutdown signals.
	go func() {
		slog.Info("server starting", "addr", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown: wait for SIGINT or SIGTERM, then drain connections.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	slog.Info("shutdown signal received", "signal", sig)

	stopAutosave()

	// Give active requests up to 30 seconds to complete.
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	// One final save so edits made since the last tick survive restarts.
	saveCtx, saveCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer saveCancel()
	if err := engine.AutoSave(saveCtx); err != nil {
		slog.Warn("final save failed", "error", err)
	}

	slog.Info("server stopped gracefully")
}
