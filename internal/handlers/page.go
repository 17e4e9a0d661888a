package handlers

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"partscatalog/internal/contextutil"
	"partscatalog/internal/service"
)

// PageHandler serves a product as a rendered HTML page.
type PageHandler struct {
	catalogService service.CatalogService
	markdown       goldmark.Markdown
	template       *template.Template
}

// productPageData holds template data for rendered product pages.
type productPageData struct {
	Title    string
	Category string
	Size     string
	ImageSrc string
	ImageAlt string
	Content  template.HTML
}

// NewPageHandler creates a new handler for product pages.
func NewPageHandler(catalogService service.CatalogService) *PageHandler {
	tmpl := template.Must(template.New("product").Parse(`<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <title>{{.Title}} | {{.Category}} {{.Size}}mm</title>
  <style>
    body {
      font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', sans-serif;
      margin: 0 auto;
      padding: 2rem;
      max-width: 900px;
      line-height: 1.6;
      color: #1f2937;
    }
    header {
      margin-bottom: 1.5rem;
      border-bottom: 1px solid #e5e7eb;
      padding-bottom: 1rem;
    }
    h1 {
      margin: 0;
      font-size: 1.75rem;
    }
    .meta {
      color: #6b7280;
      margin-top: 0.25rem;
    }
    figure {
      margin: 0 0 1.5rem;
      text-align: center;
    }
    figure img {
      max-width: 100%;
      max-height: 420px;
    }
    table {
      border-collapse: collapse;
    }
    th, td {
      border: 1px solid #e5e7eb;
      padding: 0.4rem 0.75rem;
      text-align: left;
    }
  </style>
</head>
<body>
  <header>
    <h1>{{.Title}}</h1>
    <p class="meta">{{.Category}} &middot; {{.Size}}mm</p>
  </header>
  {{if .ImageSrc}}<figure><img src="{{.ImageSrc}}" alt="{{.ImageAlt}}"></figure>{{end}}
  <article>{{.Content}}</article>
</body>
</html>`))

	return &PageHandler{
		catalogService: catalogService,
		markdown: goldmark.New(
			goldmark.WithExtensions(
				extension.Table,
				extension.Typographer,
			),
		),
		template: tmpl,
	}
}

// ServeHTTP renders the requested product.
func (h *PageHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	detail, err := h.catalogService.Product(ctx, chi.URLParam(r, "category"), chi.URLParam(r, "size"), chi.URLParam(r, "productId"))
	if err != nil {
		var validationErr *service.ValidationError
		switch {
		case errors.As(err, &validationErr):
			http.Error(w, "invalid product id", http.StatusBadRequest)
		case errors.Is(err, service.ErrInvalidInput):
			http.Error(w, "invalid product path", http.StatusBadRequest)
		case errors.Is(err, service.ErrNotFound):
			http.Error(w, "product not found", http.StatusNotFound)
		case errors.Is(err, service.ErrUnavailable):
			logger.ErrorContext(ctx, "product unavailable", "error", err)
			http.Error(w, "product catalog unavailable", http.StatusServiceUnavailable)
		default:
			logger.ErrorContext(ctx, "failed to load product", "error", err)
			http.Error(w, "failed to load product", http.StatusInternalServerError)
		}
		return
	}

	content, err := h.render(productMarkdown(detail))
	if err != nil {
		logger.ErrorContext(ctx, "failed to render markdown", "id", detail.ID, "error", err)
		http.Error(w, "failed to render product", http.StatusInternalServerError)
		return
	}

	data := productPageData{
		Title:    pageTitle(detail),
		Category: detail.Name,
		Size:     detail.Size,
		Content:  template.HTML(content),
	}
	if img := detail.Display.Image; img != nil {
		data.ImageSrc = img.Path
		data.ImageAlt = img.Alt
	}

	var buf bytes.Buffer
	if err := h.template.Execute(&buf, data); err != nil {
		logger.ErrorContext(ctx, "failed to execute product template", "id", detail.ID, "error", err)
		http.Error(w, "failed to render product", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
}

func (h *PageHandler) render(md string) (string, error) {
	var buf bytes.Buffer
	if err := h.markdown.Convert([]byte(md), &buf); err != nil {
		return "", fmt.Errorf("convert markdown: %w", err)
	}
	return buf.String(), nil
}

var markdownEscaper = strings.NewReplacer(
	`\`, `\\`,
	"`", "\\`",
	`*`, `\*`,
	`_`, `\_`,
	`[`, `\[`,
	`]`, `\]`,
	`<`, `\<`,
	`>`, `\>`,
	`#`, `\#`,
	`|`, `\|`,
)

// productMarkdown lays out a product as a markdown document.
func productMarkdown(d service.ProductDetail) string {
	var b strings.Builder

	p := d.Display.Product
	if p == nil {
		b.WriteString("No product details are available for this image.\n")
		return b.String()
	}

	b.WriteString("| Field | Value |\n|---|---|\n")
	row := func(label, value string) {
		if value != "" {
			fmt.Fprintf(&b, "| %s | %s |\n", label, markdownEscaper.Replace(value))
		}
	}
	row("Part number", p.PartNumber)
	row("OEM cross reference", p.OEMCrossReference)
	row("Application", p.ModelApplication)

	list := func(heading string, items []string) {
		if len(items) == 0 {
			return
		}
		fmt.Fprintf(&b, "\n### %s\n\n", heading)
		for _, item := range items {
			fmt.Fprintf(&b, "- %s\n", markdownEscaper.Replace(item))
		}
	}
	list("Special features", d.Features)
	list("Specifications", d.Specs)

	return b.String()
}

func pageTitle(d service.ProductDetail) string {
	if p := d.Display.Product; p != nil && p.PartNumber != "" {
		return p.PartNumber
	}
	if img := d.Display.Image; img != nil && img.Alt != "" {
		return img.Alt
	}
	return d.Name
}
