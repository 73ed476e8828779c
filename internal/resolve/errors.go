// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Package resolve turns a registry.EntryPoint into a callable address:
// walk its Providers in order, ask internal/capability which one (if
// any) is active in the current context, and look the winning
// Provider's symbol up through internal/platform. Every failure mode
// here is fatal by design — a lazily-resolved entry point that cannot
// be resolved has no safe stub to fall back to.
package resolve

import "errors"

// ErrLibraryNotFound indicates the platform loader could not supply the
// active Provider's symbol: either its library could not be opened or
// the library does not export the symbol. Fatal: there is no fallback
// library to try once platform.Load has already exhausted its
// candidate sonames.
var ErrLibraryNotFound = errors.New("epoxy: could not open platform library")

// ErrNoActiveProvider indicates no Provider in an EntryPoint's list is
// active in the current context. Fatal: returning a stub that would
// segfault on first call is strictly worse than failing at resolve
// time, per the caller asking for a function the driver does not
// implement.
var ErrNoActiveProvider = errors.New("epoxy: no provider found for entry point")

// ErrMalformedVersion indicates a driver-reported GL/GLX/EGL version
// string could not be parsed. Fatal: the probe cannot make further
// resolution decisions without a version, and there is no sensible
// default to assume about an unparseable driver.
var ErrMalformedVersion = errors.New("epoxy: malformed version string")
