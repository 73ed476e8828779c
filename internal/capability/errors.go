// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package capability

import "errors"

// ErrMalformedVersion is returned by ParseVersion when a GL_VERSION (or
// GLX_VERSION/EGL_VERSION) string does not contain a recognizable
// "major.minor" prefix. A driver returning a string like this is not
// something a caller can recover from by retrying.
var ErrMalformedVersion = errors.New("capability: malformed version string")
