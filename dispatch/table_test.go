// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package dispatch

import (
	"sync"
	"testing"

	"github.com/gogpu/epoxy/internal/registry"
)

func TestSlotZeroValueIsUnresolved(t *testing.T) {
	var s Slot
	if s.Load() != 0 {
		t.Error("a fresh Slot should read as unresolved (0)")
	}
}

func TestSlotStoreThenLoad(t *testing.T) {
	var s Slot
	s.Store(0xdeadbeef)
	if got := s.Load(); got != 0xdeadbeef {
		t.Errorf("Load() = %#x, want %#x", got, 0xdeadbeef)
	}
}

func TestSlotConcurrentStoreIsLastWriteWins(t *testing.T) {
	var s Slot
	var wg sync.WaitGroup
	for i := 1; i <= 8; i++ {
		wg.Add(1)
		go func(addr uintptr) {
			defer wg.Done()
			s.Store(addr)
		}(uintptr(i))
	}
	wg.Wait()
	if got := s.Load(); got == 0 {
		t.Error("expected some non-zero address to win the race")
	}
}

func TestNewTableSizedToRegistry(t *testing.T) {
	tbl := NewTable()
	if len(tbl.GL) != len(registry.GLEntryPoints) {
		t.Errorf("len(GL) = %d, want %d", len(tbl.GL), len(registry.GLEntryPoints))
	}
	if len(tbl.GLX) != len(registry.GLXEntryPoints) {
		t.Errorf("len(GLX) = %d, want %d", len(tbl.GLX), len(registry.GLXEntryPoints))
	}
	if len(tbl.EGL) != len(registry.EGLEntryPoints) {
		t.Errorf("len(EGL) = %d, want %d", len(tbl.EGL), len(registry.EGLEntryPoints))
	}
	if len(tbl.WGL) != len(registry.WGLEntryPoints) {
		t.Errorf("len(WGL) = %d, want %d", len(tbl.WGL), len(registry.WGLEntryPoints))
	}
}

func TestCurrentReturnsAStableTable(t *testing.T) {
	a := Current()
	a.GL[registry.EPClear].Store(42)
	b := Current()
	if b.GL[registry.EPClear].Load() != 42 {
		t.Error("Current() should return the same table on repeated calls within one thread")
	}
}
