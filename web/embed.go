// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package web embeds the built single-page site served by the server.
//
// The site build writes its output to dist/, together with the images under
// dist/data/. The committed dist/ only holds a placeholder page and the
// loading animation so the server runs without a frontend build.
package web

import (
	"embed"
	"io/fs"
)

//go:embed all:dist
var dist embed.FS

// FS returns the site rooted at dist/.
func FS() fs.FS {
	site, err := fs.Sub(dist, "dist")
	if err != nil {
		// dist is embedded at build time, so the sub tree always exists
		panic(err)
	}
	return site
}
