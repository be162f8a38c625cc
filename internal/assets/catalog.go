// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package assets holds the fixed image catalog of the site: the hero bundle,
// its fallback, and the preload sets derived from them.
//
// Every accessor returns a fresh copy, so callers may modify the result.
package assets

import (
	"errors"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-folio/models"
)

// ErrBaseURL is returned by Resolve when the base is not an absolute URL.
var ErrBaseURL = errors.New("base url must be absolute")

// Bundle returns the hero bundle rendered once loading completes.
func Bundle() models.AssetBundle {
	return models.AssetBundle{
		Foreground: heroForeground,
		Background: append([]string(nil), heroBackground...),
		Secondary:  aboutSecondary,
	}
}

// FallbackBundle returns the bundle used when the regular sequence fails. Its
// foreground is served from the public site rather than the local data dir.
func FallbackBundle() models.AssetBundle {
	return models.AssetBundle{
		Foreground: fallbackForeground,
		Background: append([]string(nil), heroBackground...),
		Secondary:  aboutSecondary,
	}
}

// CriticalSet returns the images of the first visible screen: the foreground
// followed by the slideshow in order.
func CriticalSet(b models.AssetBundle) []string {
	return dedup(nil, append([]string{b.Foreground}, b.Background...))
}

// NonCriticalSet returns every image reached only by scrolling: credential
// badges, portfolio screenshots and the secondary image. Duplicates and
// members of the critical set are removed; first occurrence order is kept.
func NonCriticalSet(b models.AssetBundle) []string {
	exclude := make(map[string]struct{})
	for _, u := range CriticalSet(b) {
		exclude[u] = struct{}{}
	}

	all := make([]string, 0, len(credentialImages)+len(portfolioImages)+1)
	all = append(all, credentialImages...)
	all = append(all, portfolioImages...)
	all = append(all, b.Secondary)

	return dedup(exclude, all)
}

// Manifest returns the bundle together with both preload sets.
func Manifest() models.AssetManifest {
	b := Bundle()
	return models.AssetManifest{
		Bundle:      b,
		Critical:    CriticalSet(b),
		NonCritical: NonCriticalSet(b),
	}
}

// Resolve turns site-relative references into absolute URLs against base.
// Absolute references are kept as they are.
func Resolve(base *url.URL, refs []string) ([]string, error) {
	if base == nil || !base.IsAbs() {
		return nil, ErrBaseURL
	}

	out := make([]string, 0, len(refs))
	for _, ref := range refs {
		u, err := url.Parse(ref)
		if err != nil {
			return nil, err
		}
		out = append(out, base.ResolveReference(u).String())
	}

	return out, nil
}

// ResolveBundle applies Resolve to every reference of b.
func ResolveBundle(base *url.URL, b models.AssetBundle) (models.AssetBundle, error) {
	refs, err := Resolve(base, append([]string{b.Foreground, b.Secondary}, b.Background...))
	if err != nil {
		return models.AssetBundle{}, err
	}

	return models.AssetBundle{
		Foreground: refs[0],
		Secondary:  refs[1],
		Background: refs[2:],
	}, nil
}

func dedup(exclude map[string]struct{}, refs []string) []string {
	seen := make(map[string]struct{}, len(refs))
	out := make([]string, 0, len(refs))
	for _, ref := range refs {
		ref = strings.TrimSpace(ref)
		if ref == "" {
			continue
		}
		if _, skip := exclude[ref]; skip {
			continue
		}
		if _, dup := seen[ref]; dup {
			continue
		}
		seen[ref] = struct{}{}
		out = append(out, ref)
	}
	return out
}
