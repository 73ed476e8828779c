// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

//go:build windows

package epoxy

import (
	"unsafe"

	"github.com/gogpu/epoxy/internal/capability"
	"github.com/gogpu/epoxy/internal/registry"
)

// WGLGetCurrentContext returns the thread's current WGL rendering
// context, or nil if none is bound.
func WGLGetCurrentContext() unsafe.Pointer {
	fn := resolveWGL(registry.EPWGLGetCurrentContext, &registry.WGLEntryPoints[registry.EPWGLGetCurrentContext])
	return unsafe.Pointer(callPtr0(fn))
}

// WGLGetCurrentDC returns the device context of the thread's current
// WGL rendering context, or nil if none is bound.
func WGLGetCurrentDC() unsafe.Pointer {
	fn := resolveWGL(registry.EPWGLGetCurrentDC, &registry.WGLEntryPoints[registry.EPWGLGetCurrentDC])
	return unsafe.Pointer(callPtr0(fn))
}

// WGLGetExtensionsStringARB returns the space-separated WGL extension
// list for device context hdc. Requires WGL_ARB_extensions_string,
// which is resolved unconditionally (see alwaysPermissiveCaps) since
// it is the function a caller would otherwise need to ask this
// function about.
func WGLGetExtensionsStringARB(hdc unsafe.Pointer) string {
	fn := resolveWGL(registry.EPWGLGetExtensionsStringARB, &registry.WGLEntryPoints[registry.EPWGLGetExtensionsStringARB])
	return goString(callPtrP(fn, hdc))
}

// HasWGLExtension reports whether the current WGL device context
// advertises ext. Returns false when no context is current (strict
// probe).
func HasWGLExtension(ext string) bool {
	hdc := WGLGetCurrentDC()
	if hdc == nil {
		return false
	}
	return capability.ExtensionInString(WGLGetExtensionsStringARB(hdc), ext)
}

// WGLVersion has no driver-reported analogue in the WGL ABI itself
// (unlike GLX/EGL, WGL carries no version query); it reports the
// desktop GL version of the current WGL context instead, which is
// what callers checking "is WGL usable at version N" actually want.
func WGLVersion() int {
	return GLVersion()
}
