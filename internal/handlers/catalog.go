package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"partscatalog/internal/catalog"
	"partscatalog/internal/contextutil"
	"partscatalog/internal/service"
)

// CategoryResponse describes one category.
type CategoryResponse struct {
	Key      string   `json:"key"`
	Name     string   `json:"name"`
	Sizes    []string `json:"sizes"`
	Reserved bool     `json:"reserved,omitempty"`
}

// ListingResponse is the paired image and product listing of a category size.
type ListingResponse struct {
	Category string                   `json:"category"`
	Name     string                   `json:"name"`
	Size     string                   `json:"size"`
	Products []catalog.ProductDisplay `json:"products"`
}

// ProductResponse is a single product with its image.
type ProductResponse struct {
	ID       string                 `json:"id"`
	Category string                 `json:"category"`
	Name     string                 `json:"name"`
	Size     string                 `json:"size"`
	Image    *catalog.ImageInfo     `json:"image,omitempty"`
	Product  *catalog.ProductRecord `json:"product,omitempty"`
	Features []string               `json:"features"`
	Specs    []string               `json:"specs"`
}

// CatalogHandler serves the JSON catalog endpoints.
type CatalogHandler struct {
	catalogService service.CatalogService
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(catalogService service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

// Categories lists the categories and their sizes.
func (h *CatalogHandler) Categories(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	categories := h.catalogService.Categories(ctx)
	resp := make([]CategoryResponse, 0, len(categories))
	for _, c := range categories {
		resp = append(resp, CategoryResponse{
			Key:      c.Key,
			Name:     c.Name,
			Sizes:    c.Sizes,
			Reserved: c.Reserved,
		})
	}
	writeJSON(ctx, w, http.StatusOK, resp)
}

// Listing returns the products of a category and size.
func (h *CatalogHandler) Listing(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	category := chi.URLParam(r, "category")
	size := chi.URLParam(r, "size")

	listing, err := h.catalogService.Listing(ctx, category, size)
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to load products")
		return
	}

	displays := listing.Displays
	if displays == nil {
		displays = []catalog.ProductDisplay{}
	}
	writeJSON(ctx, w, http.StatusOK, ListingResponse{
		Category: listing.Category,
		Name:     listing.Name,
		Size:     listing.Size,
		Products: displays,
	})
}

// Product returns a single product.
func (h *CatalogHandler) Product(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	detail, err := h.catalogService.Product(ctx, chi.URLParam(r, "category"), chi.URLParam(r, "size"), chi.URLParam(r, "productId"))
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to load product")
		return
	}

	logger.DebugContext(ctx, "product served", "id", detail.ID, "matched_by", detail.Display.MatchedBy)
	writeJSON(ctx, w, http.StatusOK, toProductResponse(detail))
}

func toProductResponse(d service.ProductDetail) ProductResponse {
	resp := ProductResponse{
		ID:       d.ID,
		Category: d.Category,
		Name:     d.Name,
		Size:     d.Size,
		Image:    d.Display.Image,
		Product:  d.Display.Product,
		Features: d.Features,
		Specs:    d.Specs,
	}
	if resp.Features == nil {
		resp.Features = []string{}
	}
	if resp.Specs == nil {
		resp.Specs = []string{}
	}
	return resp
}
