// Package asset bundles the site's stylesheets.
package asset

import (
	"embed"
	"fmt"
	"io/fs"
	"net/http"
	"path"
	"strings"
)

const Prefix = "/static/"

//go:embed static/*.css
var staticFS embed.FS

func FS() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return sub
}

// Handler serves the bundled files under Prefix. Directories are not listed.
func Handler() http.Handler {
	fsys := FS()
	files := http.StripPrefix(Prefix, http.FileServerFS(fsys))

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		name := strings.TrimPrefix(r.URL.Path, Prefix)
		if name == "" || strings.HasSuffix(name, "/") {
			http.NotFound(w, r)
			return
		}
		if info, err := fs.Stat(fsys, name); err == nil && info.IsDir() {
			http.NotFound(w, r)
			return
		}
		files.ServeHTTP(w, r)
	})
}

// Stylesheets maps file names to their public URLs, in order. Every name must
// exist in the bundle.
func Stylesheets(names ...string) ([]string, error) {
	fsys := FS()
	urls := make([]string, 0, len(names))
	for _, name := range names {
		if _, err := fs.Stat(fsys, name); err != nil {
			return nil, fmt.Errorf("stylesheet %q: %w", name, err)
		}
		urls = append(urls, path.Join(Prefix, name))
	}
	return urls, nil
}
