package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"partscatalog/internal/contextutil"
	"partscatalog/internal/imagestore"
	"partscatalog/internal/metrics"
)

// ImageFiles lists the files available in the image directory.
type ImageFiles interface {
	Files(ctx context.Context) ([]string, error)
}

// ImageHandler serves product images by name, tolerating mangled quotes,
// spacing and case in the requested name.
type ImageHandler struct {
	files  ImageFiles
	dir    string
	maxAge int
}

// NewImageHandler creates an ImageHandler serving files from dir. maxAge is
// the Cache-Control max-age in seconds.
func NewImageHandler(files ImageFiles, dir string, maxAge int) *ImageHandler {
	return &ImageHandler{
		files:  files,
		dir:    dir,
		maxAge: maxAge,
	}
}

// ServeHTTP resolves the requested name against the directory listing and
// writes the file. Only listed names are ever read from disk.
func (h *ImageHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		logger.WarnContext(ctx, "method not allowed", "method", r.Method)
		h.fail(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	requested := requestedName(r)

	files, err := h.files.Files(ctx)
	if err != nil {
		logger.ErrorContext(ctx, "failed to list images", "dir", h.dir, "error", err)
		h.fail(w, http.StatusInternalServerError, "Failed to list images")
		return
	}

	match, err := imagestore.Resolve(requested, files)
	if errors.Is(err, imagestore.ErrNotFound) {
		metrics.ImageResolutions.WithLabelValues("not_found").Inc()
		logger.InfoContext(ctx, "image not found", "requested", requested, "available", len(files))
		h.fail(w, http.StatusNotFound, fmt.Sprintf("Image not found: %s", requested))
		return
	}
	metrics.ImageResolutions.WithLabelValues(match.Stage).Inc()
	if match.Stage != imagestore.StageExact {
		logger.DebugContext(ctx, "image resolved by fallback", "requested", requested, "file", match.File, "stage", match.Stage)
	}

	data, err := os.ReadFile(filepath.Join(h.dir, match.File))
	if err != nil {
		logger.ErrorContext(ctx, "failed to read image", "file", match.File, "error", err)
		h.fail(w, http.StatusInternalServerError, "Failed to read image")
		return
	}

	w.Header().Set("Content-Type", ContentType(match.File))
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.Header().Set("Cache-Control", fmt.Sprintf("public, max-age=%d, immutable", h.maxAge))
	w.WriteHeader(http.StatusOK)
	metrics.ImageResponses.WithLabelValues(strconv.Itoa(http.StatusOK)).Inc()

	if r.Method == http.MethodHead {
		return
	}
	n, err := w.Write(data)
	metrics.ImageBytes.Add(float64(n))
	if err != nil {
		logger.WarnContext(ctx, "failed to write image", "file", match.File, "error", err)
	}
}

func (h *ImageHandler) fail(w http.ResponseWriter, statusCode int, message string) {
	metrics.ImageResponses.WithLabelValues(strconv.Itoa(statusCode)).Inc()
	http.Error(w, message, statusCode)
}

// ContentType returns the image content type for a filename. Unknown
// extensions are served as PNG.
func ContentType(name string) string {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".jpg", ".jpeg":
		return "image/jpeg"
	default:
		return "image/png"
	}
}

// requestedName returns the wildcard image name decoded exactly once. chi
// matches against RawPath when it is set, so only then is the parameter
// still escaped.
func requestedName(r *http.Request) string {
	name := chi.URLParam(r, "*")
	if r.URL.RawPath == "" {
		return name
	}
	return imagestore.DecodeName(name)
}
