// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package resolve

import (
	"errors"
	"fmt"
	"os"
)

// Fatal writes a one-line-per-cause diagnostic to stderr and terminates
// the process with status 1, grounded on dispatch_common.c's
// epoxy_glx_autoinit (fprintf(stderr, ...); exit(1)). Called for every
// error Resolve can produce: there is no recoverable path once an
// entry point fails to resolve, per spec.md §7.
func Fatal(err error) {
	switch {
	case errors.Is(err, ErrLibraryNotFound):
		fmt.Fprintf(os.Stderr, "epoxy: could not load this entry point from its platform library: %v\n", err)
	case errors.Is(err, ErrNoActiveProvider):
		fmt.Fprintf(os.Stderr, "epoxy: no provider for this entry point is active in the current context: %v\n", err)
	case errors.Is(err, ErrMalformedVersion):
		fmt.Fprintf(os.Stderr, "epoxy: could not parse the driver's version string: %v\n", err)
	default:
		fmt.Fprintf(os.Stderr, "epoxy: %v\n", err)
	}
	os.Exit(1)
}
