// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

//go:build linux

package epoxy

import "github.com/gogpu/epoxy/internal/platform"

// currentGLLibrary picks the shared library GL symbols resolve
// through, given which client API family UseAPI last selected. On
// Linux each profile ships its own soname.
func currentGLLibrary() platform.LibraryID {
	switch CurrentAPI() {
	case GLES1:
		return platform.LibGLES1
	case GLES2:
		return platform.LibGLES2
	default:
		return platform.LibGL
	}
}
