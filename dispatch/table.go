// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Package dispatch holds the rewritable dispatch slots entry-point
// stubs read from and write to: one atomic.Uintptr per curated
// EntryPoint, resolved on first use (once per slot, or once per OS
// thread on Windows, unless concurrent first calls race) and read on
// every subsequent call.
package dispatch

import (
	"sync/atomic"

	"github.com/gogpu/epoxy/internal/registry"
)

// Slot is a single rewritable dispatch cell. Its zero value means
// "unresolved"; Store is unconditional (no compare-and-swap), matching
// spec.md §4.4's tolerance for two threads resolving concurrently and
// racing a benign last-write-wins.
type Slot struct {
	addr atomic.Uintptr
}

// Load returns the currently resolved address, or 0 if unresolved.
func (s *Slot) Load() uintptr { return s.addr.Load() }

// Store rewrites the slot. Safe to call from multiple goroutines
// concurrently resolving the same entry point.
func (s *Slot) Store(addr uintptr) { s.addr.Store(addr) }

// Table is one full set of dispatch slots, one per curated EntryPoint
// across all four ABI families. On POSIX there is exactly one Table
// for the whole process; on Windows there is one per OS thread, since
// WGL's implicit per-thread current-context model means two threads
// may have resolved the same entry point to two different driver
// addresses.
type Table struct {
	GL  []Slot
	GLX []Slot
	EGL []Slot
	WGL []Slot
}

// NewTable allocates a Table sized to the current registry contents.
func NewTable() *Table {
	return &Table{
		GL:  make([]Slot, len(registry.GLEntryPoints)),
		GLX: make([]Slot, len(registry.GLXEntryPoints)),
		EGL: make([]Slot, len(registry.EGLEntryPoints)),
		WGL: make([]Slot, len(registry.WGLEntryPoints)),
	}
}
