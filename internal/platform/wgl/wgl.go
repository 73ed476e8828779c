// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

//go:build windows

// Package wgl binds the subset of the Windows WGL ABI the dispatch layer
// needs to bootstrap itself: querying the current device/rendering context
// and resolving further function pointers via wglGetProcAddress, falling
// back to opengl32.dll's static exports for GL 1.1 entry points.
//
// It does not create device contexts or rendering contexts — that is the
// caller's responsibility.
package wgl

import (
	"fmt"
	"syscall"
	"unsafe"
)

var (
	opengl32 *syscall.DLL

	procWglGetProcAddress    *syscall.Proc
	procWglGetCurrentContext *syscall.Proc
	procWglGetCurrentDC      *syscall.Proc
)

// Windows handle types.
type (
	HANDLE uintptr
	HDC    HANDLE
	HGLRC  HANDLE
)

// Init loads opengl32.dll and resolves the bootstrap procedures this package wraps.
func Init() error {
	var err error

	opengl32, err = syscall.LoadDLL("opengl32.dll")
	if err != nil {
		return fmt.Errorf("failed to load opengl32.dll: %w", err)
	}

	procWglGetProcAddress, err = opengl32.FindProc("wglGetProcAddress")
	if err != nil {
		return fmt.Errorf("wglGetProcAddress: %w", err)
	}
	procWglGetCurrentContext, err = opengl32.FindProc("wglGetCurrentContext")
	if err != nil {
		return fmt.Errorf("wglGetCurrentContext: %w", err)
	}
	procWglGetCurrentDC, err = opengl32.FindProc("wglGetCurrentDC")
	if err != nil {
		return fmt.Errorf("wglGetCurrentDC: %w", err)
	}

	return nil
}

// GetProcAddress resolves an OpenGL extension function via wglGetProcAddress.
// Returns 0 if the driver has no binding for name.
func GetProcAddress(name string) uintptr {
	cname, _ := syscall.BytePtrFromString(name)
	r, _, _ := procWglGetProcAddress.Call(uintptr(unsafe.Pointer(cname)))
	return r
}

// GetGLProcAddress resolves name the way the GL ABI on Windows requires:
// wglGetProcAddress first (GL 2.0+ and all extensions), falling back to
// opengl32.dll's static export table for GL 1.1 core entry points, which
// wglGetProcAddress is not guaranteed to return.
func GetGLProcAddress(name string) uintptr {
	if addr := GetProcAddress(name); addr != 0 {
		return addr
	}
	proc, err := opengl32.FindProc(name)
	if err != nil {
		return 0
	}
	return proc.Addr()
}

// GetCurrentContext returns the current WGL rendering context, or 0 if none is bound.
func GetCurrentContext() HGLRC {
	r, _, _ := procWglGetCurrentContext.Call()
	return HGLRC(r)
}

// GetCurrentDC returns the device context of the current WGL rendering context, or 0 if none is bound.
func GetCurrentDC() HDC {
	r, _, _ := procWglGetCurrentDC.Call()
	return HDC(r)
}
