// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

//go:build linux

package platform

import (
	"fmt"
	"unsafe"

	"github.com/go-webgpu/goffi/ffi"
)

// libraryNames lists the sonames tried for each LibraryID, in order.
// Distros package the unversioned .so only as part of -dev packages, so
// the versioned soname is tried first, matching the original's
// dlopen(..., "libGL.so.1") convention.
var libraryNames = map[LibraryID][]string{
	LibGL:    {"libGL.so.1", "libGL.so"},
	LibGLX:   {"libGL.so.1", "libGL.so"},
	LibGLES1: {"libGLESv1_CM.so.1", "libGLESv1_CM.so"},
	LibGLES2: {"libGLESv2.so.2", "libGLESv2.so"},
	LibEGL:   {"libEGL.so.1", "libEGL.so"},
}

type dlHandle unsafe.Pointer

type dlLoader struct{}

var activeLoader loader = dlLoader{}

func (dlLoader) open(id LibraryID) (handle, error) {
	names, ok := libraryNames[id]
	if !ok {
		return nil, fmt.Errorf("no known soname for library")
	}

	var lastErr error
	for _, name := range names {
		lib, err := ffi.LoadLibrary(name)
		if err == nil {
			return dlHandle(lib), nil
		}
		lastErr = err
	}
	return nil, lastErr
}

func (dlLoader) symbol(h handle, name string) (uintptr, error) {
	lib := unsafe.Pointer(h.(dlHandle))
	sym, err := ffi.GetSymbol(lib, name)
	if err != nil {
		return 0, err
	}
	return uintptr(sym), nil
}
