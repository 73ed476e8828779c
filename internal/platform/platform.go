// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Package platform is the lowest layer of the dispatch stack: it loads
// the handful of system libraries a given OS exposes GL/GLX/EGL/WGL
// through, and looks up raw symbol addresses within them. Nothing
// above this package knows or cares which dynamic-loader mechanism
// backs Lookup.
package platform

import (
	"fmt"
	"sync"
)

// LibraryID names one of the shared libraries this process may need to
// load. Not every ID is meaningful on every OS; Load reports an error
// for an ID the current platform has no library for.
type LibraryID int

const (
	LibGL LibraryID = iota
	LibGLES1
	LibGLES2
	LibEGL
	LibGLX // statically linked into LibGL on POSIX; kept distinct for symmetry
	Opengl32
)

func (id LibraryID) String() string {
	switch id {
	case LibGL:
		return "GL"
	case LibGLES1:
		return "GLES1"
	case LibGLES2:
		return "GLES2"
	case LibEGL:
		return "EGL"
	case LibGLX:
		return "GLX"
	case Opengl32:
		return "opengl32"
	default:
		return "unknown library"
	}
}

// loader is the set of OS-specific operations platform.go drives.
// Exactly one implementation exists per build: load_linux.go's dlLoader
// or load_windows.go's dllLoader.
type loader interface {
	open(id LibraryID) (handle, error)
	symbol(h handle, name string) (uintptr, error)
}

// handle is an opaque reference to an already-open library, specific to
// the active loader implementation.
type handle interface{}

var (
	mu      sync.Mutex
	opened  = map[LibraryID]handle{}
	openErr = map[LibraryID]error{}
)

// Load opens the library for id, memoizing both success and failure so
// repeated lazy-resolution attempts after a missing-library error don't
// re-attempt a dlopen that is known to fail. Safe for concurrent use.
func Load(id LibraryID) (handle, error) {
	mu.Lock()
	defer mu.Unlock()

	if h, ok := opened[id]; ok {
		return h, nil
	}
	if err, ok := openErr[id]; ok {
		return nil, err
	}

	h, err := activeLoader.open(id)
	if err != nil {
		err = fmt.Errorf("platform: load %s: %w", id, err)
		openErr[id] = err
		return nil, err
	}
	opened[id] = h
	return h, nil
}

// Lookup resolves symbol within the library identified by id, loading
// the library first if necessary.
func Lookup(id LibraryID, symbol string) (uintptr, error) {
	h, err := Load(id)
	if err != nil {
		return 0, err
	}
	addr, err := activeLoader.symbol(h, symbol)
	if err != nil {
		return 0, fmt.Errorf("platform: lookup %s in %s: %w", symbol, id, err)
	}
	return addr, nil
}
