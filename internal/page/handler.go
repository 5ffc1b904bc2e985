package page

import (
	"bytes"
	"html/template"
	"io"
	"log/slog"
	"net/http"

	"github.com/ferdiebergado/gopherkit/http/response"
	"github.com/maxburleigh/portfolio/internal/layout"
	"github.com/maxburleigh/portfolio/internal/pkg/web"
)

// Renderer wraps page content in the document shell.
type Renderer interface {
	Render(w io.Writer, children template.HTML) error
	Metadata() layout.Metadata
}

type Handler struct {
	pages   *Store
	shell   Renderer
	fontCSS string
}

func NewHandler(pages *Store, shell Renderer, fontCSS string) *Handler {
	return &Handler{
		pages:   pages,
		shell:   shell,
		fontCSS: fontCSS,
	}
}

// ServePage renders the page for the request path inside the shell. Unknown
// paths get the not-found page with a 404 status.
func (h *Handler) ServePage(w http.ResponseWriter, r *http.Request) {
	slug := SlugFromPath(r.URL.Path)
	status := http.StatusOK

	content, ok := h.pages.Lookup(slug)
	if !ok {
		slog.Debug("page not found", "slug", slug)
		status = http.StatusNotFound
		content, ok = h.pages.Lookup(NotFoundSlug)
		if !ok {
			http.NotFound(w, r)
			return
		}
	}

	var buf bytes.Buffer
	if err := h.shell.Render(&buf, content); err != nil {
		response.ServerError(w, err)
		return
	}

	web.SendHTML(w, status, buf.Bytes())
}

// ServeMetadata responds with the static page metadata as JSON.
func (h *Handler) ServeMetadata(w http.ResponseWriter, _ *http.Request) {
	response.JSON(w, http.StatusOK, h.shell.Metadata())
}

// ServeFonts responds with the stylesheet that binds font class tokens to
// their CSS variables.
func (h *Handler) ServeFonts(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set(web.HeaderCacheControl, web.CacheImmutable)
	web.Send(w, http.StatusOK, web.MimeCSS, []byte(h.fontCSS))
}
