// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package epoxy

import (
	"testing"

	"github.com/gogpu/epoxy/dispatch"
	"github.com/gogpu/epoxy/internal/registry"
	"github.com/gogpu/epoxy/internal/resolve"
)

// TestResolveIntoResolvesOnceThenCaches is spec.md §8's P1/P2 "basic
// resolve" scenario: a stub's first call triggers exactly one resolution,
// and every subsequent call reads the cached dispatch slot instead of
// resolving again.
func TestResolveIntoResolvesOnceThenCaches(t *testing.T) {
	slot := &dispatch.Slot{}
	ep := &registry.GLEntryPoints[registry.EPGetError]

	calls := 0
	const fakeAddr uintptr = 0x1234

	origResolveFunc := resolveFunc
	resolveFunc = func(ep *registry.EntryPoint, ctx resolve.Context) (uintptr, error) {
		calls++
		return fakeAddr, nil
	}
	t.Cleanup(func() { resolveFunc = origResolveFunc })

	const attempts = 5
	for i := 0; i < attempts; i++ {
		addr := resolveInto(slot, ep, resolve.Context{})
		if addr != fakeAddr {
			t.Fatalf("resolveInto call %d = %#x, want %#x", i, addr, fakeAddr)
		}
	}

	if calls != 1 {
		t.Errorf("resolveFunc called %d times across %d resolveInto calls, want 1", calls, attempts)
	}
}

// TestResolveIntoDoesNotCacheBeforeSuccess checks that a fresh slot
// reads as unresolved (0) and that it holds the resolved address only
// after resolveInto's first successful resolution. A failing resolution
// is not exercised: resolve.Fatal would terminate the test process.
func TestResolveIntoDoesNotCacheBeforeSuccess(t *testing.T) {
	slot := &dispatch.Slot{}
	ep := &registry.GLEntryPoints[registry.EPClear]

	const fakeAddr uintptr = 0x5678

	origResolveFunc := resolveFunc
	resolveFunc = func(ep *registry.EntryPoint, ctx resolve.Context) (uintptr, error) {
		return fakeAddr, nil
	}
	t.Cleanup(func() { resolveFunc = origResolveFunc })

	if addr := slot.Load(); addr != 0 {
		t.Fatalf("fresh slot.Load() = %#x, want 0 (unresolved)", addr)
	}

	addr := resolveInto(slot, ep, resolve.Context{})
	if addr != fakeAddr {
		t.Fatalf("resolveInto() = %#x, want %#x", addr, fakeAddr)
	}
	if got := slot.Load(); got != fakeAddr {
		t.Errorf("slot.Load() after resolveInto = %#x, want %#x", got, fakeAddr)
	}
}
