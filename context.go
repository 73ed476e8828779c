// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package epoxy

import (
	"github.com/gogpu/epoxy/internal/capability"
	"github.com/gogpu/epoxy/internal/platform"
	"github.com/gogpu/epoxy/internal/registry"
	"github.com/gogpu/epoxy/internal/resolve"
)

// glQuerier answers internal/capability's Querier contract using the
// real, already-lazily-resolved GL entry points. Calling any of its
// methods may itself trigger a resolution (e.g. of glGetString), but
// never of the entry point currently being resolved: every GL entry
// point this package wires with a non-zero Version or Extension gate
// calls through here, while glGetString/glGetIntegerv themselves have
// no gate and so never consult a Querier, and glGetStringi has only a
// version gate, which is answered through glGetString, breaking the
// cycle.
type glQuerier struct{}

func (glQuerier) VersionString() string    { return GLGetString(VERSION) }
func (glQuerier) ExtensionsString() string { return GLGetString(EXTENSIONS) }

func (glQuerier) NumExtensions() (int32, bool) {
	v, err := capability.ParseVersion(GLGetString(VERSION))
	if err != nil || v < 30 {
		return 0, false
	}
	return GLGetIntegeri(NUM_EXTENSIONS), true
}

func (glQuerier) ExtensionAt(i int32) string { return GLGetStringi(EXTENSIONS, uint32(i)) }

// glContext builds the resolve.Context for whichever GL client API
// family UseAPI last selected.
func glContext() resolve.Context {
	return resolve.Context{
		API:     toRegistryAPI(CurrentAPI()),
		Caps:    capability.GLCaps{Q: glQuerier{}},
		Library: currentGLLibrary(),
	}
}

// alwaysPermissiveCaps backs GLX/EGL/WGL entry-point resolution: none
// of the curated window-system entry points in internal/registry are
// version- or extension-gated except the one (wglGetExtensionsStringARB)
// that exists specifically to let a caller discover WGL extensions —
// which therefore cannot itself be gated behind an extension check
// without a cycle. Treating every GLX/EGL/WGL Provider as
// unconditionally active mirrors spec.md §4.2's conservative-probe
// philosophy ("when fidelity is impossible, try rather than refuse"),
// applied here by policy rather than by a missing context.
type alwaysPermissiveCaps struct{}

func (alwaysPermissiveCaps) ConservativeVersion() int                  { return 100 }
func (alwaysPermissiveCaps) ConservativeHasExtension(string) bool { return true }

func glxContext() resolve.Context {
	return resolve.Context{API: registry.GLX, Caps: alwaysPermissiveCaps{}, Library: platform.LibGLX}
}

func eglContext() resolve.Context {
	return resolve.Context{API: registry.EGL, Caps: alwaysPermissiveCaps{}, Library: platform.LibEGL}
}

func wglContext() resolve.Context {
	return resolve.Context{API: registry.WGL, Caps: alwaysPermissiveCaps{}, Library: platform.Opengl32}
}
