// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package epoxy

import "github.com/gogpu/epoxy/internal/capability"

// GLVersion returns the current GL context's version, encoded as
// major*10+minor, or 0 if no context is current or its version string
// is malformed. Uses the strict probe (internal/capability.GLCaps),
// which unlike the conservative probe never guesses.
func GLVersion() int {
	v, err := capability.GLCaps{Q: glQuerier{}}.Version()
	if err != nil {
		return 0
	}
	return v
}

// HasGLExtension reports whether the current GL context advertises
// ext, using the indexed query for contexts >= 3.0 and the legacy
// single-string form otherwise.
func HasGLExtension(ext string) bool {
	has, err := capability.GLCaps{Q: glQuerier{}}.HasExtension(ext)
	if err != nil {
		return false
	}
	return has
}

// IsDesktopGL reports whether the current GL context is desktop GL
// (true) or an OpenGL ES profile (false).
func IsDesktopGL() bool {
	isDesktop, err := capability.GLCaps{Q: glQuerier{}}.IsDesktop()
	if err != nil {
		return false
	}
	return isDesktop
}
