// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"io/fs"
	"net/http"
	"path"
	"strings"

	"github.com/MKhiriev/go-folio/internal/logger"
)

const (
	indexFile  = "index.html"
	dataPrefix = "/data/"
)

// siteHandler serves files of h.site. Unknown paths that look like client
// side routes fall back to index.html; missing images under /data/ stay 404.
func (h *Handler) siteHandler() http.Handler {
	files := http.FileServerFS(h.site)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			w.Header().Set("Allow", "GET, HEAD")
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}

		name := strings.TrimPrefix(path.Clean("/"+r.URL.Path), "/")
		if name == "" || h.siteFileExists(name) {
			if strings.HasPrefix(r.URL.Path, dataPrefix) {
				w.Header().Set("Cache-Control", "public, max-age=86400")
			}
			files.ServeHTTP(w, r)
			return
		}

		if strings.HasPrefix(r.URL.Path, dataPrefix) || path.Ext(name) != "" {
			http.NotFound(w, r)
			return
		}

		logger.FromRequest(r).Debug().Str("path", r.URL.Path).Msg("serving index for client side route")
		w.Header().Set("Cache-Control", "no-cache")
		http.ServeFileFS(w, r, h.site, indexFile)
	})
}

func (h *Handler) siteFileExists(name string) bool {
	info, err := fs.Stat(h.site, name)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			h.logger.Warn().Err(err).Str("name", name).Msg("error reading site file")
		}
		return false
	}
	return !info.IsDir() || h.siteFileExists(path.Join(name, indexFile))
}
