// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

//go:build windows

package platform

import (
	"fmt"
	"syscall"
)

// libraryNames lists the DLL name for each LibraryID meaningful on
// Windows. GL/GLES/EGL are not distributed as system DLLs on Windows;
// only opengl32.dll (the WGL/desktop-GL ICD shim) is.
var libraryNames = map[LibraryID]string{
	Opengl32: "opengl32.dll",
}

type dllLoader struct{}

var activeLoader loader = dllLoader{}

func (dllLoader) open(id LibraryID) (handle, error) {
	name, ok := libraryNames[id]
	if !ok {
		return nil, fmt.Errorf("no known DLL for library")
	}
	dll, err := syscall.LoadDLL(name)
	if err != nil {
		return nil, err
	}
	return dll, nil
}

func (dllLoader) symbol(h handle, name string) (uintptr, error) {
	dll := h.(*syscall.DLL)
	proc, err := dll.FindProc(name)
	if err != nil {
		return 0, err
	}
	return proc.Addr(), nil
}
