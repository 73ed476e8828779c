// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

//go:build windows

package epoxy

import "github.com/gogpu/epoxy/internal/platform"

// currentGLLibrary picks the shared library GL symbols resolve
// through. On Windows all three profiles' core entry points are
// exported from opengl32.dll; there is no separate GLES DLL the way
// Linux ships libGLESv1_CM.so.1/libGLESv2.so.2.
func currentGLLibrary() platform.LibraryID {
	return platform.Opengl32
}
