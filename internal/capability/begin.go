// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package capability

import "sync/atomic"

// BeginCount is the per-process glBegin/glEnd nesting depth. While
// non-zero on any thread, the GL spec forbids most queries, so the
// conservative probe variants below must not perform them. The root
// package's BeginGL/EndGL wrappers are the only writers.
var BeginCount atomic.Int32
