// Package server serves markup documents for the host to fetch.
package server

import (
	"errors"
	"io/fs"
	"net/http"
	"path"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/jask/hypertabs/internal/document"
)

// New returns a router serving *.xml files from docs.
func New(docs fs.FS, log zerolog.Logger) http.Handler {
	r := chi.NewRouter()
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Get("/*", func(w http.ResponseWriter, req *http.Request) {
		name := strings.TrimPrefix(path.Clean("/"+chi.URLParam(req, "*")), "/")
		if !strings.HasSuffix(name, ".xml") || !fs.ValidPath(name) {
			http.NotFound(w, req)
			return
		}
		body, err := fs.ReadFile(docs, name)
		if err != nil {
			if !errors.Is(err, fs.ErrNotExist) {
				log.Error().Err(err).Str("document", name).Msg("read document")
				http.Error(w, "read document", http.StatusInternalServerError)
				return
			}
			http.NotFound(w, req)
			return
		}
		log.Debug().Str("document", name).Msg("serve")
		w.Header().Set("Content-Type", document.ContentType)
		w.Header().Set("Cache-Control", "no-store")
		_, _ = w.Write(body)
	})
	return r
}
