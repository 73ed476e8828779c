// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Package capability probes an already-current GL/GLX/EGL/WGL context
// for the facts entry-point resolution needs: its version, whether it
// is desktop GL or an ES profile, and which extensions it advertises.
// Nothing here resolves or calls a real entry point directly — callers
// supply the string/int values already queried through the dispatch
// layer, keeping this package free of any FFI dependency of its own
// and trivially testable.
package capability

import (
	"fmt"
	"strconv"
	"strings"
)

const esVersionPrefix = "OpenGL ES "

// ParseVersion extracts a GL_VERSION-style "major.minor[.release][ vendor info]"
// string into the encoded form major*10+minor the registry's Provider.Version
// field uses. Any leading non-digit prefix (such as "OpenGL ES ") is
// skipped first.
func ParseVersion(versionString string) (int, error) {
	s := strings.TrimLeftFunc(versionString, func(r rune) bool { return r < '0' || r > '9' })

	fields := strings.Fields(s)
	if len(fields) == 0 {
		return 0, fmt.Errorf("%w: empty version string", ErrMalformedVersion)
	}
	numeric := fields[0]

	parts := strings.SplitN(numeric, ".", 3)
	if len(parts) < 2 {
		return 0, fmt.Errorf("%w: %q has no minor component", ErrMalformedVersion, versionString)
	}

	major, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %v", ErrMalformedVersion, versionString, err)
	}
	minor, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %v", ErrMalformedVersion, versionString, err)
	}

	return major*10 + minor, nil
}

// IsDesktopGL reports whether a GL_VERSION string describes a desktop
// GL context rather than an OpenGL ES context.
func IsDesktopGL(versionString string) bool {
	return !strings.HasPrefix(versionString, esVersionPrefix)
}
