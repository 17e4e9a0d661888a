package main

import (
	"context"
	"log"
	"log/slog"
	nethttp "net/http"
	"os"

	"partscatalog/internal/catalog"
	"partscatalog/internal/config"
	"partscatalog/internal/http"
	"partscatalog/internal/imagestore"
	"partscatalog/internal/search"
	"partscatalog/internal/service"
)

func main() {
	// Load configuration first (needed for log level)
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Configure structured logging with configurable level and format
	opts := &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}
	var handler slog.Handler
	if cfg.LogFormat == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}
	logger := slog.New(handler)
	slog.SetDefault(logger)
	slog.Debug("Logging configured", "level", cfg.LogLevel.String(), "format", cfg.LogFormat)

	products, err := catalog.LoadProducts(cfg.ProductsPath)
	if err != nil {
		log.Fatalf("Failed to load products: %v", err)
	}
	slog.Info("Products loaded", "path", cfg.ProductsPath, "rows", products.Count())

	// Warm the listing so an unreadable directory is logged at startup.
	images := imagestore.NewIndex(imagestore.NewDirLister(cfg.ImagesDir))
	if files, err := images.Files(context.Background()); err != nil {
		slog.Warn("Image directory not readable yet", "dir", cfg.ImagesDir, "error", err)
	} else {
		slog.Info("Image directory indexed", "dir", cfg.ImagesDir, "files", len(files))
	}

	selector := catalog.NewSelector(catalog.ImageFilenames, cfg.ImageRoutePrefix)
	reconciler := catalog.NewReconciler(catalog.Overrides)
	catalogService := service.NewCatalogService(selector, reconciler, products, search.NewIndex(products, selector), images)

	deps := &http.Deps{
		CatalogService:   catalogService,
		Images:           images,
		ImagesDir:        cfg.ImagesDir,
		ImageRoutePrefix: cfg.ImageRoutePrefix,
		CacheMaxAge:      cfg.CacheMaxAge,
		ProductCount:     products.Count(),
	}
	router := http.NewRouter(deps)

	// Start API server
	addr := ":" + cfg.APIPort
	slog.Info("Starting API server", "addr", addr, "image_prefix", cfg.ImageRoutePrefix)
	if err := nethttp.ListenAndServe(addr, router); err != nil {
		log.Fatalf("API server failed to start: %v", err)
	}
}
