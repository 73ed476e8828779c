// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

//go:build linux

package resolve

import (
	"fmt"
	"sync"

	"github.com/gogpu/epoxy/internal/platform/egl"
	"github.com/gogpu/epoxy/internal/platform/glx"
)

var (
	eglOnce, glxOnce sync.Once
	eglInitErr       error
	glxInitErr       error
)

// bootstrapProcAddress resolves symbol via the window-system
// GetProcAddress chain spec.md §9 leaves as an open question and
// SPEC_FULL.md §4.3 resolves explicitly: try EGL's resolver, then
// GLX's, dlopen-ing each lazily on first use.
func bootstrapProcAddress(symbol string) (uintptr, error) {
	eglOnce.Do(func() { eglInitErr = egl.Init() })
	if eglInitErr == nil {
		if addr := egl.GetProcAddress(symbol); addr != 0 {
			return addr, nil
		}
	}

	glxOnce.Do(func() { glxInitErr = glx.Init() })
	if glxInitErr == nil {
		if addr := glx.GetProcAddress(symbol); addr != 0 {
			return addr, nil
		}
	}

	return 0, fmt.Errorf("%w: %s: exhausted EGL and GLX proc-address resolvers", ErrNoActiveProvider, symbol)
}
