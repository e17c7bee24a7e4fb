package chi

import (
	"errors"
	"io/fs"
	"net/http"
	"os"
	"path"

	"go.uber.org/zap"
)

const (
	notFoundPage    = "404.html"
	notFoundMessage = "Page Not Found!"
)

// staticHandler serves files from a public directory. Anything it cannot serve gets the
// directory's 404.html, or a plain-text message when that page is missing.
type staticHandler struct {
	root   fs.FS
	files  http.Handler
	logger *zap.Logger
}

func newStaticHandler(dir string, logger *zap.Logger) *staticHandler {
	root := os.DirFS(dir)
	return &staticHandler{
		root:   root,
		files:  http.FileServerFS(root),
		logger: logger,
	}
}

func (h *staticHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if (r.Method == http.MethodGet || r.Method == http.MethodHead) && h.exists(r.URL.Path) {
		h.files.ServeHTTP(w, r)
		return
	}
	h.notFound(w)
}

// exists reports whether urlPath names a regular file, or a directory with an index.html.
func (h *staticHandler) exists(urlPath string) bool {
	name := path.Clean("/" + urlPath)[1:]
	if name == "" {
		name = "."
	}
	info, err := fs.Stat(h.root, name)
	if err != nil {
		return false
	}
	if info.IsDir() {
		idx, err := fs.Stat(h.root, path.Join(name, "index.html"))
		return err == nil && !idx.IsDir()
	}
	return info.Mode().IsRegular()
}

func (h *staticHandler) notFound(w http.ResponseWriter) {
	page, err := fs.ReadFile(h.root, notFoundPage)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			h.logger.Warn("Failed to read 404 page", zap.Error(err))
		}
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(notFoundMessage))
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusNotFound)
	_, _ = w.Write(page)
}
