package service

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_catalog_service.go -package=mocks partscatalog/internal/service CatalogService

import (
	"context"
	"fmt"
	"strconv"

	"partscatalog/internal/catalog"
	"partscatalog/internal/contextutil"
	"partscatalog/internal/filename"
	"partscatalog/internal/metrics"
	"partscatalog/internal/search"
)

// CategorySummary describes a category and the sizes it is browsed by.
type CategorySummary struct {
	Key      string
	Name     string
	Sizes    []string
	Reserved bool
}

// Listing is the paired image and product view of one category and size.
type Listing struct {
	Category string
	Name     string
	Size     string
	Displays []catalog.ProductDisplay
}

// ProductDetail is a single product with its image and split feature lists.
type ProductDetail struct {
	ID       string
	Category string
	Name     string
	Size     string
	Display  catalog.ProductDisplay
	Features []string
	Specs    []string
}

// CatalogService answers catalog browsing and search queries.
type CatalogService interface {
	// Categories returns every known category in display order.
	Categories(ctx context.Context) []CategorySummary
	// Listing pairs the images of a category and size with their products.
	Listing(ctx context.Context, category, size string) (Listing, error)
	// Product returns the product identified by productID within a category and size.
	Product(ctx context.Context, category, size, productID string) (ProductDetail, error)
	// Search returns the catalog entries matching query.
	Search(ctx context.Context, query string) []search.Result
}

// ImageDirectory lists the image files on disk.
type ImageDirectory interface {
	Files(ctx context.Context) ([]string, error)
}

// catalogService implements CatalogService.
type catalogService struct {
	selector   *catalog.Selector
	reconciler *catalog.Reconciler
	products   catalog.Products
	index      *search.Index
	images     ImageDirectory
}

// NewCatalogService creates a CatalogService over the given catalog components.
// Listings are refused while images cannot list the image directory.
func NewCatalogService(selector *catalog.Selector, reconciler *catalog.Reconciler, products catalog.Products, index *search.Index, images ImageDirectory) CatalogService {
	return &catalogService{
		selector:   selector,
		reconciler: reconciler,
		products:   products,
		index:      index,
		images:     images,
	}
}

// Categories returns the category table with the size order.
func (s *catalogService) Categories(ctx context.Context) []CategorySummary {
	out := make([]CategorySummary, 0, len(catalog.Categories))
	for _, c := range catalog.Categories {
		out = append(out, CategorySummary{
			Key:      c.Key,
			Name:     c.Name,
			Sizes:    append([]string(nil), filename.Sizes...),
			Reserved: c.Reserved,
		})
	}
	return out
}

// Listing pairs images and products for category and size.
func (s *catalogService) Listing(ctx context.Context, category, size string) (Listing, error) {
	logger := contextutil.LoggerFromContext(ctx)

	cat, err := lookup(category, size)
	if err != nil {
		logger.WarnContext(ctx, "unknown listing", "category", category, "size", size)
		return Listing{}, err
	}
	if err := s.checkImages(ctx); err != nil {
		return Listing{}, err
	}

	images := s.selector.Images(category, size)
	products := s.products.For(category, size)
	displays := catalog.Pair(s.reconciler, category, size, images, products)
	for _, d := range displays {
		metrics.ProductMatches.WithLabelValues(d.MatchedBy).Inc()
	}

	logger.DebugContext(ctx, "listing built",
		"category", category,
		"size", size,
		"images", len(images),
		"products", len(products),
	)

	return Listing{
		Category: cat.Key,
		Name:     cat.Name,
		Size:     size,
		Displays: displays,
	}, nil
}

// Product resolves productID to a single display.
func (s *catalogService) Product(ctx context.Context, category, size, productID string) (ProductDetail, error) {
	logger := contextutil.LoggerFromContext(ctx)

	cat, err := lookup(category, size)
	if err != nil {
		logger.WarnContext(ctx, "unknown product listing", "category", category, "size", size)
		return ProductDetail{}, err
	}
	if err := s.checkImages(ctx); err != nil {
		return ProductDetail{}, err
	}

	index, err := catalog.ParseProductIndex(productID)
	if err != nil {
		logger.WarnContext(ctx, "invalid product id", "product_id", productID)
		return ProductDetail{}, &ValidationError{
			Field:   "productId",
			Message: "must end with a numeric index",
		}
	}

	images := s.selector.Images(category, size)
	products := s.products.For(category, size)
	displays := catalog.Pair(s.reconciler, category, size, images, products)

	d, ok := catalog.Detail(displays, images, products, index)
	if !ok {
		logger.InfoContext(ctx, "product not found", "product_id", productID)
		return ProductDetail{}, fmt.Errorf("product %s: %w", productID, ErrNotFound)
	}

	detail := ProductDetail{
		ID:       catalog.ProductID(category, size, index),
		Category: cat.Key,
		Name:     cat.Name,
		Size:     size,
		Display:  d,
	}
	if d.Product != nil {
		detail.Features = d.Product.Features()
		detail.Specs = d.Product.SpecList()
	}
	return detail, nil
}

// Search filters the flattened catalog by query.
func (s *catalogService) Search(ctx context.Context, query string) []search.Result {
	results := s.index.Search(query)

	metrics.SearchQueries.Inc()
	metrics.SearchResults.Observe(float64(len(results)))
	contextutil.LoggerFromContext(ctx).DebugContext(ctx, "search", "query", query, "results", len(results))

	return results
}

// checkImages reports ErrUnavailable when the image directory cannot be listed.
func (s *catalogService) checkImages(ctx context.Context) error {
	if _, err := s.images.Files(ctx); err != nil {
		contextutil.LoggerFromContext(ctx).ErrorContext(ctx, "image directory unavailable", "error", err)
		return WrapError(fmt.Errorf("%w: %w", ErrUnavailable, err), "list images")
	}
	return nil
}

func lookup(category, size string) (catalog.Category, error) {
	cat, ok := catalog.LookupCategory(category)
	if !ok {
		return catalog.Category{}, fmt.Errorf("category %q: %w", category, ErrNotFound)
	}
	if _, err := strconv.Atoi(size); err != nil {
		return catalog.Category{}, fmt.Errorf("size %q: %w", size, ErrInvalidInput)
	}
	if !filename.IsSize(size) {
		return catalog.Category{}, fmt.Errorf("size %q: %w", size, ErrNotFound)
	}
	return cat, nil
}
