// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package platform

import (
	"errors"
	"sync"
	"testing"
)

// fakeLoader lets this test drive Load/Lookup's memoization behavior
// without touching a real dynamic linker.
type fakeLoader struct {
	mu       sync.Mutex
	opens    int
	openErr  error
	symAddr  uintptr
	symErr   error
	symCalls int
}

func (f *fakeLoader) open(LibraryID) (handle, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.opens++
	if f.openErr != nil {
		return nil, f.openErr
	}
	return "fake-handle", nil
}

func (f *fakeLoader) symbol(handle, string) (uintptr, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.symCalls++
	return f.symAddr, f.symErr
}

func withFakeLoader(t *testing.T, l *fakeLoader) {
	t.Helper()
	prev := activeLoader
	prevOpened := opened
	prevErr := openErr
	activeLoader = l
	opened = map[LibraryID]handle{}
	openErr = map[LibraryID]error{}
	t.Cleanup(func() {
		activeLoader = prev
		opened = prevOpened
		openErr = prevErr
	})
}

func TestLoadMemoizesSuccess(t *testing.T) {
	f := &fakeLoader{symAddr: 0x1234}
	withFakeLoader(t, f)

	if _, err := Load(LibGL); err != nil {
		t.Fatalf("first Load: %v", err)
	}
	if _, err := Load(LibGL); err != nil {
		t.Fatalf("second Load: %v", err)
	}
	if f.opens != 1 {
		t.Errorf("open called %d times, want 1 (Load must memoize)", f.opens)
	}
}

func TestLoadMemoizesFailure(t *testing.T) {
	f := &fakeLoader{openErr: errors.New("no such library")}
	withFakeLoader(t, f)

	_, err1 := Load(LibEGL)
	_, err2 := Load(LibEGL)
	if err1 == nil || err2 == nil {
		t.Fatal("expected both Load calls to fail")
	}
	if f.opens != 1 {
		t.Errorf("open called %d times, want 1 (a known-bad library must not be retried)", f.opens)
	}
}

func TestLookupResolvesThroughLoad(t *testing.T) {
	f := &fakeLoader{symAddr: 0xdeadbeef}
	withFakeLoader(t, f)

	addr, err := Lookup(LibGLES2, "glClear")
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if addr != 0xdeadbeef {
		t.Errorf("Lookup returned %#x, want %#x", addr, 0xdeadbeef)
	}
	if f.symCalls != 1 {
		t.Errorf("symbol called %d times, want 1", f.symCalls)
	}
}

func TestLookupPropagatesMissingSymbol(t *testing.T) {
	f := &fakeLoader{symErr: errors.New("undefined symbol")}
	withFakeLoader(t, f)

	if _, err := Lookup(LibGL, "glDoesNotExist"); err == nil {
		t.Fatal("expected an error for a missing symbol")
	}
}
