// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

//go:build linux

package epoxy

import (
	"unsafe"

	"github.com/gogpu/epoxy/internal/capability"
	"github.com/gogpu/epoxy/internal/registry"
)

// GLXGetCurrentDisplay returns the Display pointer of the thread's
// current GLX context, or nil if none is bound.
func GLXGetCurrentDisplay() unsafe.Pointer {
	fn := resolveGLX(registry.EPGLXGetCurrentDisplay, &registry.GLXEntryPoints[registry.EPGLXGetCurrentDisplay])
	return unsafe.Pointer(callPtr0(fn))
}

// GLXGetCurrentContext returns the thread's current GLX context, or
// nil if none is bound.
func GLXGetCurrentContext() unsafe.Pointer {
	fn := resolveGLX(registry.EPGLXGetCurrentContext, &registry.GLXEntryPoints[registry.EPGLXGetCurrentContext])
	return unsafe.Pointer(callPtr0(fn))
}

// GLXQueryExtensionsString returns the space-separated GLX extension
// list for screen on display dpy.
func GLXQueryExtensionsString(dpy unsafe.Pointer, screen int32) string {
	fn := resolveGLX(registry.EPGLXQueryExtensionsString, &registry.GLXEntryPoints[registry.EPGLXQueryExtensionsString])
	return goString(callPtrPI(fn, dpy, screen))
}

// GLXQueryVersion returns the server's GLX major/minor version for dpy.
func GLXQueryVersion(dpy unsafe.Pointer) (major, minor int32) {
	fn := resolveGLX(registry.EPGLXQueryVersion, &registry.GLXEntryPoints[registry.EPGLXQueryVersion])
	callU32PPP(fn, dpy, unsafe.Pointer(&major), unsafe.Pointer(&minor))
	return
}

// GLXVersion returns the current display's GLX version, encoded as
// major*10+minor, or 0 if no GLX display is current.
func GLXVersion() int {
	dpy := GLXGetCurrentDisplay()
	if dpy == nil {
		return 0
	}
	major, minor := GLXQueryVersion(dpy)
	return int(major)*10 + int(minor)
}

// HasGLXExtension reports whether the current GLX display advertises
// ext. Returns false (not the conservative "true") when no display is
// current: this is the strict probe, per spec.md §4.5.
func HasGLXExtension(ext string) bool {
	dpy := GLXGetCurrentDisplay()
	if dpy == nil {
		return false
	}
	list := GLXQueryExtensionsString(dpy, 0)
	return capability.ExtensionInString(list, ext)
}
