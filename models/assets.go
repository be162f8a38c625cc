// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"time"
)

// AssetBundle is the resolved set of image references the site renders once
// the loading screen is dismissed. It is built once from fixed values and is
// never mutated afterwards.
type AssetBundle struct {
	// Foreground is the hero portrait shown above the slideshow.
	Foreground string `json:"foreground"`

	// Background is the ordered hero slideshow.
	Background []string `json:"background"`

	// Secondary is the image shown in the about section.
	Secondary string `json:"secondary"`
}

// Clone returns a deep copy of the bundle so callers cannot alias the
// Background slice of a shared value.
func (b AssetBundle) Clone() AssetBundle {
	bg := make([]string, len(b.Background))
	copy(bg, b.Background)
	return AssetBundle{
		Foreground: b.Foreground,
		Background: bg,
		Secondary:  b.Secondary,
	}
}

// IsZero reports whether the bundle carries no references at all.
func (b AssetBundle) IsZero() bool {
	return b.Foreground == "" && len(b.Background) == 0 && b.Secondary == ""
}

// AssetManifest is the payload of GET /api/assets: the bundle together with
// the two preload sets derived from it.
type AssetManifest struct {
	Bundle      AssetBundle `json:"bundle"`
	Critical    []string    `json:"critical"`
	NonCritical []string    `json:"nonCritical"`
}

// LoadProgress counts how many critical images have settled (loaded or
// failed) out of the size of the critical set.
type LoadProgress struct {
	Loaded int `json:"loaded"`
	Total  int `json:"total"`
}

// Done reports whether every critical image has settled.
func (p LoadProgress) Done() bool {
	return p.Loaded >= p.Total
}

// Ratio returns Loaded/Total in [0, 1]. An empty set counts as complete.
func (p LoadProgress) Ratio() float64 {
	if p.Total <= 0 {
		return 1
	}
	return float64(p.Loaded) / float64(p.Total)
}

// ProgressFunc receives the updated counters after every settled critical
// image. Calls are serialized and loaded increases by one on every call.
type ProgressFunc func(loaded, total int)

// AssetStatus is the normalized outcome of a single asset fetch.
type AssetStatus string

const (
	// AssetLoaded means the asset was fetched and recognized as an image.
	AssetLoaded AssetStatus = "loaded"
	// AssetFailed means the fetch failed and the failure was tolerated.
	AssetFailed AssetStatus = "failed"
)

// AssetResult describes how one asset settled.
type AssetResult struct {
	URL         string        `json:"url"`
	Status      AssetStatus   `json:"status"`
	ContentType string        `json:"content_type,omitempty"`
	Bytes       int           `json:"bytes,omitempty"`
	Duration    time.Duration `json:"duration"`
	Err         error         `json:"-"`
}

// OK reports whether the asset loaded.
func (r AssetResult) OK() bool {
	return r.Status == AssetLoaded
}

// LoaderAnimation is the header of the Lottie document that drives the
// loading indicator. Only the fields the client needs are decoded; layers are
// kept raw.
type LoaderAnimation struct {
	Version   string            `json:"v"`
	Name      string            `json:"nm"`
	FrameRate float64           `json:"fr"`
	InPoint   float64           `json:"ip"`
	OutPoint  float64           `json:"op"`
	Width     int               `json:"w"`
	Height    int               `json:"h"`
	Layers    []json.RawMessage `json:"layers"`
}

// Frames returns the number of frames between the in and out points.
func (a LoaderAnimation) Frames() int {
	if a.OutPoint <= a.InPoint {
		return 0
	}
	return int(a.OutPoint - a.InPoint)
}

// Duration returns the playback length of one loop.
func (a LoaderAnimation) Duration() time.Duration {
	if a.FrameRate <= 0 {
		return 0
	}
	return time.Duration(float64(a.Frames()) / a.FrameRate * float64(time.Second))
}

// BootstrapState is the lifecycle of one bootstrap run.
type BootstrapState int32

const (
	BootstrapIdle BootstrapState = iota
	BootstrapLoadingCritical
	BootstrapMinimumWait
	BootstrapReady
	// BootstrapHeld means loading finished but the indicator is locked open.
	BootstrapHeld
)

func (s BootstrapState) String() string {
	switch s {
	case BootstrapIdle:
		return "idle"
	case BootstrapLoadingCritical:
		return "loading-critical"
	case BootstrapMinimumWait:
		return "minimum-wait"
	case BootstrapReady:
		return "ready"
	case BootstrapHeld:
		return "held"
	default:
		return "unknown"
	}
}
