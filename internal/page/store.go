// Package page serves the site's pages inside the root shell.
package page

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"log/slog"
	"path"
	"strings"
)

const (
	IndexSlug    = "index"
	NotFoundSlug = "not-found"

	suffix = ".html"
)

//go:embed content/*.html
var contentFS embed.FS

// DefaultContent returns the pages bundled with the binary.
func DefaultContent() fs.FS {
	sub, err := fs.Sub(contentFS, "content")
	if err != nil {
		panic(err)
	}
	return sub
}

// Store holds page fragments keyed by slug. It is read-only after Load.
type Store struct {
	pages map[string]template.HTML
}

// Load reads every .html file under fsys. The slug of a page is its path
// without the extension.
func Load(fsys fs.FS) (*Store, error) {
	pages := make(map[string]template.HTML)
	err := fs.WalkDir(fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("walk pages at path %q: %w", p, err)
		}

		if d.IsDir() || !strings.HasSuffix(p, suffix) {
			return nil
		}

		b, err := fs.ReadFile(fsys, p)
		if err != nil {
			return fmt.Errorf("read page %q: %w", p, err)
		}

		slug := strings.TrimSuffix(p, suffix)
		//nolint:gosec //Pages are trusted site content.
		pages[slug] = template.HTML(b)
		slog.Debug("loaded page", "path", p, "slug", slug)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("load pages: %w", err)
	}

	return &Store{pages: pages}, nil
}

func (s *Store) Lookup(slug string) (template.HTML, bool) {
	content, ok := s.pages[slug]
	return content, ok
}

func (s *Store) Len() int {
	return len(s.pages)
}

// SlugFromPath maps a request path to a page slug: "/" is the index, a
// trailing slash or ".html" suffix is ignored.
func SlugFromPath(urlPath string) string {
	clean := strings.Trim(path.Clean("/"+urlPath), "/")
	clean = strings.TrimSuffix(clean, suffix)
	if clean == "" {
		return IndexSlug
	}
	return clean
}
