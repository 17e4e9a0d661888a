package handlers

import (
	"context"
	"net/http"

	"partscatalog/internal/contextutil"
)

// Reindexer is an image directory cache that can be dropped and rebuilt.
type Reindexer interface {
	Invalidate()
	Files(ctx context.Context) ([]string, error)
}

// IndexHandler handles HTTP requests for re-reading the image directory.
type IndexHandler struct {
	index Reindexer
}

// NewIndexHandler creates a new IndexHandler.
func NewIndexHandler(index Reindexer) *IndexHandler {
	return &IndexHandler{index: index}
}

// IndexResponse represents the response from the index endpoint.
type IndexResponse struct {
	Message string `json:"message"`
	Status  string `json:"status"`
	Files   int    `json:"files"`
}

// ServeHTTP drops the cached listing and reads the directory again.
func (h *IndexHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	if r.Method != http.MethodPost {
		logger.WarnContext(ctx, "method not allowed", "method", r.Method)
		writeError(ctx, w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	logger.InfoContext(ctx, "image re-indexing triggered via API")
	h.index.Invalidate()

	files, err := h.index.Files(ctx)
	if err != nil {
		logger.ErrorContext(ctx, "image re-indexing failed", "error", err)
		writeError(ctx, w, http.StatusInternalServerError, "Failed to read image directory")
		return
	}

	logger.InfoContext(ctx, "image re-indexing completed", "files", len(files))
	writeJSON(ctx, w, http.StatusOK, IndexResponse{
		Message: "Image directory re-read",
		Status:  "ok",
		Files:   len(files),
	})
}
