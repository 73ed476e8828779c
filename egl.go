// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

//go:build linux

package epoxy

import (
	"unsafe"

	"github.com/gogpu/epoxy/internal/capability"
	"github.com/gogpu/epoxy/internal/registry"
)

// EGL_VERSION / EGL_EXTENSIONS, the eglQueryString name parameters
// this file needs.
const (
	eglVersion    int32 = 0x3054
	eglExtensions int32 = 0x3055
)

// EGLGetCurrentDisplay returns the thread's current EGL display, or
// nil if none is bound.
func EGLGetCurrentDisplay() unsafe.Pointer {
	fn := resolveEGL(registry.EPEGLGetCurrentDisplay, &registry.EGLEntryPoints[registry.EPEGLGetCurrentDisplay])
	return unsafe.Pointer(callPtr0(fn))
}

// EGLGetCurrentContext returns the thread's current EGL context, or
// nil if none is bound.
func EGLGetCurrentContext() unsafe.Pointer {
	fn := resolveEGL(registry.EPEGLGetCurrentContext, &registry.EGLEntryPoints[registry.EPEGLGetCurrentContext])
	return unsafe.Pointer(callPtr0(fn))
}

// EGLQueryString returns dpy's string value for name (one of the
// EGL_VERSION/EGL_VENDOR/EGL_EXTENSIONS/EGL_CLIENT_APIS constants).
func EGLQueryString(dpy unsafe.Pointer, name int32) string {
	fn := resolveEGL(registry.EPEGLQueryString, &registry.EGLEntryPoints[registry.EPEGLQueryString])
	return goString(callPtrPI(fn, dpy, name))
}

// EGLVersion returns the current display's EGL version, encoded as
// major*10+minor, or 0 if no EGL display is current.
func EGLVersion() int {
	dpy := EGLGetCurrentDisplay()
	if dpy == nil {
		return 0
	}
	v, err := capability.ParseVersion(EGLQueryString(dpy, eglVersion))
	if err != nil {
		return 0
	}
	return v
}

// HasEGLExtension reports whether the current EGL display advertises
// ext. Returns false when no display is current (strict probe).
func HasEGLExtension(ext string) bool {
	dpy := EGLGetCurrentDisplay()
	if dpy == nil {
		return false
	}
	return capability.ExtensionInString(EGLQueryString(dpy, eglExtensions), ext)
}

// CurrentContextIsEGL reports whether the thread's current GL context
// was created through EGL rather than GLX, per spec.md §6's
// "identify which window-system API produced the current context".
func CurrentContextIsEGL() bool {
	return EGLGetCurrentContext() != nil
}
