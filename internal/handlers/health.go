package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"partscatalog/internal/contextutil"
)

// SizeIndex groups the image directory listing by size bucket.
type SizeIndex interface {
	BySize(ctx context.Context) (map[string][]string, error)
}

// HealthHandler handles HTTP requests for health checks.
type HealthHandler struct {
	images             SizeIndex
	products           int
	healthCheckTimeout time.Duration
}

// NewHealthHandler creates a new HealthHandler. products is the number of
// loaded product rows.
func NewHealthHandler(images SizeIndex, products int) *HealthHandler {
	return &HealthHandler{
		images:             images,
		products:           products,
		healthCheckTimeout: 5 * time.Second,
	}
}

// HealthResponse represents the health check response.
type HealthResponse struct {
	// Overall health status: "healthy" or "unhealthy"
	Status string `json:"status"`

	// Timestamp of the health check
	Timestamp string `json:"timestamp"`

	// Individual check results
	Checks map[string]string `json:"checks"`

	// Image count per size bucket
	Images map[string]int `json:"images,omitempty"`

	// Number of product rows loaded
	Products int `json:"products"`

	// List of issues (only present if status is unhealthy)
	Issues []string `json:"issues,omitempty"`
}

// ServeHTTP handles HTTP requests for health checks.
//
// Returns 200 OK when the image directory can be listed, 503 Service
// Unavailable otherwise.
func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	if r.Method != http.MethodGet {
		logger.WarnContext(ctx, "method not allowed", "method", r.Method)
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	checkCtx, cancel := context.WithTimeout(ctx, h.healthCheckTimeout)
	defer cancel()

	checks := make(map[string]string)
	var issues []string

	counts, ok := h.checkImages(checkCtx, logger)
	if ok {
		checks["image_directory"] = "ok"
	} else {
		checks["image_directory"] = "error"
		issues = append(issues, "image_directory_unavailable")
	}

	status := "healthy"
	httpStatus := http.StatusOK
	if len(issues) > 0 {
		status = "unhealthy"
		httpStatus = http.StatusServiceUnavailable
	}

	writeJSON(ctx, w, httpStatus, HealthResponse{
		Status:    status,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Checks:    checks,
		Images:    counts,
		Products:  h.products,
		Issues:    issues,
	})
}

// checkImages reads the image index and counts the files per bucket.
func (h *HealthHandler) checkImages(ctx context.Context, logger *slog.Logger) (map[string]int, bool) {
	bySize, err := h.images.BySize(ctx)
	if err != nil {
		logger.WarnContext(ctx, "image directory health check failed", "error", err)
		return nil, false
	}
	counts := make(map[string]int, len(bySize))
	for size, files := range bySize {
		counts[size] = len(files)
	}
	return counts, true
}
