// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

//go:build windows

package resolve

import (
	"fmt"
	"sync"

	"github.com/gogpu/epoxy/internal/platform/wgl"
)

var (
	wglOnce    sync.Once
	wglInitErr error
)

// bootstrapProcAddress resolves symbol via wglGetProcAddress, falling
// back to opengl32.dll's static export table for GL 1.1 core entries,
// per spec.md §4.3's Windows branch.
func bootstrapProcAddress(symbol string) (uintptr, error) {
	wglOnce.Do(func() { wglInitErr = wgl.Init() })
	if wglInitErr != nil {
		return 0, fmt.Errorf("%w: %v", ErrLibraryNotFound, wglInitErr)
	}

	if addr := wgl.GetGLProcAddress(symbol); addr != 0 {
		return addr, nil
	}
	return 0, fmt.Errorf("%w: %s: wglGetProcAddress and opengl32.dll export table both missed", ErrNoActiveProvider, symbol)
}
