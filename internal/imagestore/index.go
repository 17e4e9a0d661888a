// Package imagestore lists the product image directory and resolves
// requested image names to the files that actually exist on disk.
package imagestore

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_lister.go -package=mocks partscatalog/internal/imagestore Lister

import (
	"context"
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"
	"sync"

	"partscatalog/internal/contextutil"
	"partscatalog/internal/filename"
)

var (
	// ErrDirectoryUnavailable is returned when the image directory cannot be listed.
	ErrDirectoryUnavailable = errors.New("image directory unavailable")
	// ErrNotFound is returned when no file matches a requested name.
	ErrNotFound = errors.New("image not found")
)

// Lister returns the names of the files in an image store.
type Lister interface {
	// List returns file names in listing order.
	List(ctx context.Context) ([]string, error)
}

// DirLister lists regular files in a single directory.
type DirLister struct {
	dir string
}

// NewDirLister creates a Lister for dir.
func NewDirLister(dir string) *DirLister {
	return &DirLister{dir: dir}
}

// List reads the directory once and returns the names of regular files,
// sorted by name as returned by os.ReadDir. Hidden files are skipped.
func (l *DirLister) List(ctx context.Context) ([]string, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	entries, err := os.ReadDir(l.dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", l.dir, err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		names = append(names, entry.Name())
	}
	return names, nil
}

// Index caches the directory listing for the life of the process. The first
// successful call to Files pays for the directory read; later calls return
// the cached listing until Invalidate is called. Failed reads are not cached.
type Index struct {
	lister Lister

	mu     sync.Mutex
	files  []string
	bySize map[string][]string
	built  bool
}

// NewIndex creates an Index backed by lister.
func NewIndex(lister Lister) *Index {
	return &Index{lister: lister}
}

// Files returns the flat directory listing, building it on first use.
func (i *Index) Files(ctx context.Context) ([]string, error) {
	if err := i.build(ctx); err != nil {
		return nil, err
	}
	i.mu.Lock()
	defer i.mu.Unlock()
	return slices.Clone(i.files), nil
}

// BySize returns the listing grouped by size bucket. Every bucket is present
// in the result, possibly empty; files without a recognised size are left out.
func (i *Index) BySize(ctx context.Context) (map[string][]string, error) {
	if err := i.build(ctx); err != nil {
		return nil, err
	}
	i.mu.Lock()
	defer i.mu.Unlock()

	grouped := make(map[string][]string, len(i.bySize))
	for size, files := range i.bySize {
		grouped[size] = slices.Clone(files)
	}
	return grouped, nil
}

// Invalidate drops the cached listing so the next call reads the directory again.
func (i *Index) Invalidate() {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.files = nil
	i.bySize = nil
	i.built = false
}

func (i *Index) build(ctx context.Context) error {
	i.mu.Lock()
	defer i.mu.Unlock()

	if i.built {
		return nil
	}

	logger := contextutil.LoggerFromContext(ctx)

	files, err := i.lister.List(ctx)
	if err != nil {
		logger.ErrorContext(ctx, "failed to list image directory", "error", err)
		return fmt.Errorf("%w: %w", ErrDirectoryUnavailable, err)
	}

	bySize := make(map[string][]string, len(filename.Sizes))
	for _, size := range filename.Sizes {
		bySize[size] = nil
	}
	for _, name := range files {
		if size, ok := filename.SizeBucket(name); ok {
			bySize[size] = append(bySize[size], name)
		}
	}

	i.files = files
	i.bySize = bySize
	i.built = true

	logger.InfoContext(ctx, "image directory indexed", "files", len(files))
	return nil
}
