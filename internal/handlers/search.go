package handlers

import (
	"net/http"

	"partscatalog/internal/search"
	"partscatalog/internal/service"
)

// SearchHandler handles catalog search queries.
type SearchHandler struct {
	catalogService service.CatalogService
}

// NewSearchHandler creates a new SearchHandler.
func NewSearchHandler(catalogService service.CatalogService) *SearchHandler {
	return &SearchHandler{catalogService: catalogService}
}

// ServeHTTP returns the entries matching the q query parameter. A missing
// or blank query yields an empty list.
func (h *SearchHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if r.Method != http.MethodGet {
		writeError(ctx, w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	results := h.catalogService.Search(ctx, r.URL.Query().Get("q"))
	if results == nil {
		results = []search.Result{}
	}
	writeJSON(ctx, w, http.StatusOK, results)
}
