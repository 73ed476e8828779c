// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

//go:build linux

// Package egl binds the subset of the EGL 1.4/1.5 ABI the dispatch layer
// needs to bootstrap itself: querying the current display/context and
// resolving further function pointers via eglGetProcAddress.
//
// It does not create displays, configs, surfaces or contexts — that is
// the caller's responsibility, mirroring the EGL spec's own division of
// labor between context creation and entry-point resolution.
package egl

// EGL types based on the EGL 1.4/1.5 specification.
type (
	// EGLBoolean represents a boolean value (EGL_TRUE or EGL_FALSE).
	EGLBoolean uint32
	// EGLInt represents a 32-bit signed integer.
	EGLInt int32
	// EGLEnum represents an enumeration value.
	EGLEnum uint32
	// EGLDisplay represents an EGL display connection.
	EGLDisplay uintptr
	// EGLContext represents an EGL rendering context.
	EGLContext uintptr
	// EGLNativeDisplayType represents a native platform display.
	EGLNativeDisplayType uintptr
)

// Boolean values.
const (
	False EGLBoolean = 0
	True  EGLBoolean = 1
)

// Special values.
const (
	DefaultDisplay EGLNativeDisplayType = 0
	NoContext      EGLContext           = 0
	NoDisplay      EGLDisplay           = 0
)

// eglQueryString targets.
const (
	Vendor     EGLInt = 0x3053
	Version    EGLInt = 0x3054
	Extensions EGLInt = 0x3055
	ClientAPIs EGLInt = 0x308D
)
