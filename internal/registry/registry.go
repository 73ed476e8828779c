// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Package registry holds the static, code-generated-in-spirit metadata
// that drives entry-point resolution: for each EntryPoint, the ordered
// list of Providers that can supply it, and for each Provider the
// canonical symbol name to look up.
//
// The real libepoxy generates this table from the Khronos XML registries
// and covers the entire GL/GLX/EGL/WGL ABI — tens of thousands of
// entries. That generator is out of scope here; this package carries a
// curated, representative subset spanning the GL 1.0-4.3 core
// progression, their pre-core extension-gated equivalents, and the
// GLX/EGL/WGL bootstrap entry points the resolver itself depends on.
// Extending it to the full registry is purely additive data entry.
package registry

// API identifies which ABI family a Provider belongs to.
type API int

const (
	GL API = iota
	GLES1
	GLES2
	GLX
	EGL
	WGL
)

func (a API) String() string {
	switch a {
	case GL:
		return "GL"
	case GLES1:
		return "GLES1"
	case GLES2:
		return "GLES2"
	case GLX:
		return "GLX"
	case EGL:
		return "EGL"
	case WGL:
		return "WGL"
	default:
		return "unknown"
	}
}

// Provider is a tuple (API family, minimum version, optional extension)
// guaranteeing an EntryPoint's presence, plus the canonical symbol name
// to resolve once the Provider is determined active.
type Provider struct {
	API       API
	Version   int // encoded as 10*major+minor; 0 means "any version of this API"
	Extension string
	Symbol    string
}

// EntryPoint is a stable, build-time-defined description of one callable
// ABI function. EntryPoints are never created or destroyed at runtime.
type EntryPoint struct {
	ID        int
	Name      string
	Providers []Provider
}

// firstActive returns the first Provider in providers for which isActive
// reports true, matching the Khronos-mandated "first-match, not
// best-match" selection rule: once a Provider is active, every other
// active Provider is behaviorally equivalent by contract.
//
// The generic signature lets internal/resolve reuse this over both
// []Provider and any future per-API provider alias without duplicating
// the scan, grounded on the generics style used for buffer helpers in
// the broader example pack (soypat-glgl's NewShaderStorageBuffer[T]).
func firstActive[T any](providers []T, isActive func(T) bool) (T, bool) {
	for _, p := range providers {
		if isActive(p) {
			return p, true
		}
	}
	var zero T
	return zero, false
}

// FirstActiveProvider walks ep's Providers in order and returns the
// first one isActive reports true for.
func FirstActiveProvider(ep *EntryPoint, isActive func(Provider) bool) (Provider, bool) {
	return firstActive(ep.Providers, isActive)
}
