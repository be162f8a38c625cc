// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"slices"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-folio/internal/app"
	"github.com/MKhiriev/go-folio/internal/utils"
)

// CheckHTTPMethod returns an [http.HandlerFunc] to be registered as the
// router's MethodNotAllowed handler via [chi.Mux.MethodNotAllowed].
//
// It looks up the route whose pattern equals the request path and answers
// 405 with an Allow header listing the methods that route serves, plus the
// JSON error body every API endpoint uses. Paths without an exact route
// match answer 404.
//
// Only exact pattern matches are considered; parameterised or wildcard
// segments are not expanded during this check.
//
// Usage:
//
//	router := chi.NewRouter()
//	// ... register routes ...
//	router.MethodNotAllowed(CheckHTTPMethod(router))
func CheckHTTPMethod(router *chi.Mux) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		allowed := allowedMethods(router.Routes(), r.URL.Path)
		if len(allowed) == 0 {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		w.Header().Set("Allow", strings.Join(allowed, ", "))
		utils.WriteError(w, app.MsgMethodNotAllowed, http.StatusMethodNotAllowed)
	}
}

func allowedMethods(routes []chi.Route, path string) []string {
	for _, route := range routes {
		if route.Pattern != path {
			continue
		}

		methods := make([]string, 0, len(route.Handlers))
		for method := range route.Handlers {
			if method != "*" {
				methods = append(methods, method)
			}
		}
		slices.Sort(methods)
		return methods
	}
	return nil
}

// allowMethods answers 405 with the JSON error body for any method other
// than methods. It is used on routes registered for every method so the
// relay endpoints reply exactly like the serverless functions they replace.
func allowMethods(methods ...string) func(http.Handler) http.Handler {
	allow := strings.Join(methods, ", ")
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !slices.Contains(methods, r.Method) {
				w.Header().Set("Allow", allow)
				utils.WriteError(w, app.MsgMethodNotAllowed, http.StatusMethodNotAllowed)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
