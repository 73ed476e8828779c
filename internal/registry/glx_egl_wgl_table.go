// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package registry

// GLX, EGL and WGL entry points the resolver consumes directly while
// bootstrapping (see internal/resolve's bootstrapProcAddress) or exposes
// through the query surface (GLXVersion, HasEGLExtension, etc). Unlike
// the GL table these are not gated by version Providers of their own
// API — a window-system library that loads at all exports its own core
// ABI statically, per spec.md §4.3 — so each has exactly one Provider at
// version 0. The one extension gate is wglGetExtensionsStringARB's
// (WGL_ARB_extensions_string).
const (
	EPGLXQueryExtensionsString = iota
	EPGLXGetProcAddressARB
	EPGLXQueryVersion
	EPGLXGetCurrentContext
	EPGLXGetCurrentDisplay

	glxEntryPointCount
)

var GLXEntryPoints = [glxEntryPointCount]EntryPoint{
	EPGLXQueryExtensionsString: {ID: EPGLXQueryExtensionsString, Name: "glXQueryExtensionsString", Providers: []Provider{
		{API: GLX, Symbol: "glXQueryExtensionsString"},
	}},
	EPGLXGetProcAddressARB: {ID: EPGLXGetProcAddressARB, Name: "glXGetProcAddressARB", Providers: []Provider{
		{API: GLX, Symbol: "glXGetProcAddressARB"},
	}},
	EPGLXQueryVersion: {ID: EPGLXQueryVersion, Name: "glXQueryVersion", Providers: []Provider{
		{API: GLX, Symbol: "glXQueryVersion"},
	}},
	EPGLXGetCurrentContext: {ID: EPGLXGetCurrentContext, Name: "glXGetCurrentContext", Providers: []Provider{
		{API: GLX, Symbol: "glXGetCurrentContext"},
	}},
	EPGLXGetCurrentDisplay: {ID: EPGLXGetCurrentDisplay, Name: "glXGetCurrentDisplay", Providers: []Provider{
		{API: GLX, Symbol: "glXGetCurrentDisplay"},
	}},
}

const (
	EPEGLQueryString = iota
	EPEGLGetProcAddress
	EPEGLGetCurrentDisplay
	EPEGLGetCurrentContext

	eglEntryPointCount
)

var EGLEntryPoints = [eglEntryPointCount]EntryPoint{
	EPEGLQueryString: {ID: EPEGLQueryString, Name: "eglQueryString", Providers: []Provider{
		{API: EGL, Symbol: "eglQueryString"},
	}},
	EPEGLGetProcAddress: {ID: EPEGLGetProcAddress, Name: "eglGetProcAddress", Providers: []Provider{
		{API: EGL, Symbol: "eglGetProcAddress"},
	}},
	EPEGLGetCurrentDisplay: {ID: EPEGLGetCurrentDisplay, Name: "eglGetCurrentDisplay", Providers: []Provider{
		{API: EGL, Symbol: "eglGetCurrentDisplay"},
	}},
	EPEGLGetCurrentContext: {ID: EPEGLGetCurrentContext, Name: "eglGetCurrentContext", Providers: []Provider{
		{API: EGL, Symbol: "eglGetCurrentContext"},
	}},
}

const (
	EPWGLGetExtensionsStringARB = iota
	EPWGLGetProcAddress
	EPWGLGetCurrentContext
	EPWGLGetCurrentDC

	wglEntryPointCount
)

var WGLEntryPoints = [wglEntryPointCount]EntryPoint{
	EPWGLGetExtensionsStringARB: {ID: EPWGLGetExtensionsStringARB, Name: "wglGetExtensionsStringARB", Providers: []Provider{
		{API: WGL, Extension: "WGL_ARB_extensions_string", Symbol: "wglGetExtensionsStringARB"},
	}},
	EPWGLGetProcAddress: {ID: EPWGLGetProcAddress, Name: "wglGetProcAddress", Providers: []Provider{
		{API: WGL, Symbol: "wglGetProcAddress"},
	}},
	EPWGLGetCurrentContext: {ID: EPWGLGetCurrentContext, Name: "wglGetCurrentContext", Providers: []Provider{
		{API: WGL, Symbol: "wglGetCurrentContext"},
	}},
	EPWGLGetCurrentDC: {ID: EPWGLGetCurrentDC, Name: "wglGetCurrentDC", Providers: []Provider{
		{API: WGL, Symbol: "wglGetCurrentDC"},
	}},
}
