package http

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"partscatalog/internal/handlers"
	"partscatalog/internal/imagestore"
	"partscatalog/internal/metrics"
	"partscatalog/internal/service"
)

// Deps holds dependencies for the HTTP router.
type Deps struct {
	CatalogService   service.CatalogService
	Images           *imagestore.Index
	ImagesDir        string
	ImageRoutePrefix string
	CacheMaxAge      int
	ProductCount     int
}

// NewRouter creates a new HTTP router with the provided dependencies.
func NewRouter(deps *Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(LoggerMiddleware)
	r.Use(RequestLogger)
	r.Use(middleware.Recoverer)
	r.Use(CORS)

	imageHandler := handlers.NewImageHandler(deps.Images, deps.ImagesDir, deps.CacheMaxAge)
	catalogHandler := handlers.NewCatalogHandler(deps.CatalogService)
	searchHandler := handlers.NewSearchHandler(deps.CatalogService)
	pageHandler := handlers.NewPageHandler(deps.CatalogService)
	healthHandler := handlers.NewHealthHandler(deps.Images, deps.ProductCount)
	indexHandler := handlers.NewIndexHandler(deps.Images)

	imagePattern := strings.TrimSuffix(deps.ImageRoutePrefix, "/") + "/*"
	r.Method(http.MethodGet, imagePattern, imageHandler)
	r.Method(http.MethodHead, imagePattern, imageHandler)

	r.Get("/api/products", catalogHandler.Categories)
	r.Get("/api/products/{category}/{size}", catalogHandler.Listing)
	r.Get("/api/products/{category}/{size}/{productId}", catalogHandler.Product)
	r.Method(http.MethodGet, "/api/search", searchHandler)
	r.Method(http.MethodGet, "/api/health", healthHandler)
	r.Method(http.MethodPost, "/api/images/reindex", indexHandler)

	r.Method(http.MethodGet, "/products/{category}/{size}/{productId}", pageHandler)
	r.Method(http.MethodGet, "/metrics", metrics.Handler())

	return r
}
