// Package frontend serves the single-page application bundle.
package frontend

import (
	"errors"
	"io/fs"
	"net/http"
	"path"
	"strings"
)

// SPA serves files from fsys and answers unknown page routes with
// index.html so client-side routing can take over. Paths that look like
// assets (they have an extension) still 404.
func SPA(fsys fs.FS) http.Handler {
	files := http.FileServer(http.FS(fsys))
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		name := strings.TrimPrefix(path.Clean(r.URL.Path), "/")
		if name == "" {
			files.ServeHTTP(w, r)
			return
		}
		if _, err := fs.Stat(fsys, name); errors.Is(err, fs.ErrNotExist) && path.Ext(name) == "" {
			http.ServeFileFS(w, r, fsys, "index.html")
			return
		}
		files.ServeHTTP(w, r)
	})
}
