// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

//go:build windows

package dispatch

import (
	"sync"

	"golang.org/x/sys/windows"
)

// perThreadTables holds one Table per OS thread that has dispatched a
// WGL call, keyed by windows.GetCurrentThreadId(). This is the Go
// adaptation of the original's DllMain DLL_THREAD_ATTACH/DETACH +
// TlsAlloc/TlsFree discipline (see original_source/src/dispatch_wgl.c
// and dllmain.c): Go gives goroutines no portable OS-thread-detach
// hook, so entries here are populated lazily and never explicitly
// freed. They are reclaimed only at process exit. Callers who need
// WGL's per-thread semantics to track one goroutine precisely should
// pair it with runtime.LockOSThread, which this package does not do
// on a caller's behalf.
var perThreadTables sync.Map // map[uint32]*Table

// Current returns the dispatch table for the calling OS thread,
// allocating one on first use.
func Current() *Table {
	tid := windows.GetCurrentThreadId()
	if v, ok := perThreadTables.Load(tid); ok {
		return v.(*Table)
	}
	t := NewTable()
	actual, _ := perThreadTables.LoadOrStore(tid, t)
	return actual.(*Table)
}
