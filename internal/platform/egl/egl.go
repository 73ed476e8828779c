// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

//go:build linux

package egl

import (
	"fmt"
	"unsafe"

	"github.com/go-webgpu/goffi/ffi"
	"github.com/go-webgpu/goffi/types"
)

var (
	// eglLib is the handle to the loaded libEGL.so library.
	eglLib unsafe.Pointer

	symEglGetError          unsafe.Pointer
	symEglGetDisplay        unsafe.Pointer
	symEglInitialize        unsafe.Pointer
	symEglTerminate         unsafe.Pointer
	symEglQueryString       unsafe.Pointer
	symEglMakeCurrent       unsafe.Pointer
	symEglGetCurrentContext unsafe.Pointer
	symEglGetCurrentDisplay unsafe.Pointer
	symEglGetProcAddress    unsafe.Pointer

	cifEglGetError          types.CallInterface
	cifEglGetDisplay        types.CallInterface
	cifEglInitialize        types.CallInterface
	cifEglTerminate         types.CallInterface
	cifEglQueryString       types.CallInterface
	cifEglGetCurrentContext types.CallInterface
	cifEglGetCurrentDisplay types.CallInterface
	cifEglGetProcAddress    types.CallInterface
)

// Init loads libEGL and resolves the bootstrap symbols this package wraps.
func Init() error {
	var err error

	eglLib, err = ffi.LoadLibrary("libEGL.so.1")
	if err != nil {
		eglLib, err = ffi.LoadLibrary("libEGL.so")
		if err != nil {
			return fmt.Errorf("failed to load libEGL.so.1: %w", err)
		}
	}

	if err := loadSymbols(); err != nil {
		return err
	}
	return prepareCallInterfaces()
}

func loadSymbols() error {
	var err error
	syms := []struct {
		name string
		dst  *unsafe.Pointer
	}{
		{"eglGetError", &symEglGetError},
		{"eglGetDisplay", &symEglGetDisplay},
		{"eglInitialize", &symEglInitialize},
		{"eglTerminate", &symEglTerminate},
		{"eglQueryString", &symEglQueryString},
		{"eglMakeCurrent", &symEglMakeCurrent},
		{"eglGetCurrentContext", &symEglGetCurrentContext},
		{"eglGetCurrentDisplay", &symEglGetCurrentDisplay},
		{"eglGetProcAddress", &symEglGetProcAddress},
	}
	for _, s := range syms {
		*s.dst, err = ffi.GetSymbol(eglLib, s.name)
		if err != nil {
			return fmt.Errorf("%s not found: %w", s.name, err)
		}
	}
	return nil
}

func prepareCallInterfaces() error {
	type prep struct {
		cif  *types.CallInterface
		ret  *types.TypeDescriptor
		args []*types.TypeDescriptor
		name string
	}
	preps := []prep{
		{&cifEglGetError, types.UInt32TypeDescriptor, nil, "eglGetError"},
		{&cifEglGetDisplay, types.PointerTypeDescriptor, []*types.TypeDescriptor{types.PointerTypeDescriptor}, "eglGetDisplay"},
		{&cifEglInitialize, types.UInt32TypeDescriptor, []*types.TypeDescriptor{types.PointerTypeDescriptor, types.PointerTypeDescriptor, types.PointerTypeDescriptor}, "eglInitialize"},
		{&cifEglTerminate, types.UInt32TypeDescriptor, []*types.TypeDescriptor{types.PointerTypeDescriptor}, "eglTerminate"},
		{&cifEglQueryString, types.PointerTypeDescriptor, []*types.TypeDescriptor{types.PointerTypeDescriptor, types.UInt32TypeDescriptor}, "eglQueryString"},
		{&cifEglGetCurrentContext, types.PointerTypeDescriptor, nil, "eglGetCurrentContext"},
		{&cifEglGetCurrentDisplay, types.PointerTypeDescriptor, nil, "eglGetCurrentDisplay"},
		{&cifEglGetProcAddress, types.PointerTypeDescriptor, []*types.TypeDescriptor{types.PointerTypeDescriptor}, "eglGetProcAddress"},
	}
	for _, p := range preps {
		if err := ffi.PrepareCallInterface(p.cif, types.DefaultCall, p.ret, p.args); err != nil {
			return fmt.Errorf("failed to prepare %s: %w", p.name, err)
		}
	}
	return nil
}

// GetError returns the last EGL error.
func GetError() EGLInt {
	var result EGLInt
	_ = ffi.CallFunction(&cifEglGetError, symEglGetError, unsafe.Pointer(&result), nil)
	return result
}

// GetDisplay returns an EGL display connection for a native display handle.
func GetDisplay(displayID EGLNativeDisplayType) EGLDisplay {
	var result EGLDisplay
	args := [1]unsafe.Pointer{unsafe.Pointer(&displayID)}
	_ = ffi.CallFunction(&cifEglGetDisplay, symEglGetDisplay, unsafe.Pointer(&result), args[:])
	return result
}

// Initialize initializes an EGL display connection.
func Initialize(dpy EGLDisplay, major, minor *EGLInt) EGLBoolean {
	var result EGLBoolean
	args := [3]unsafe.Pointer{unsafe.Pointer(&dpy), unsafe.Pointer(major), unsafe.Pointer(minor)}
	_ = ffi.CallFunction(&cifEglInitialize, symEglInitialize, unsafe.Pointer(&result), args[:])
	return result
}

// Terminate terminates an EGL display connection.
func Terminate(dpy EGLDisplay) EGLBoolean {
	var result EGLBoolean
	args := [1]unsafe.Pointer{unsafe.Pointer(&dpy)}
	_ = ffi.CallFunction(&cifEglTerminate, symEglTerminate, unsafe.Pointer(&result), args[:])
	return result
}

// QueryString returns a string describing properties of the EGL client or display.
func QueryString(dpy EGLDisplay, name EGLInt) string {
	var ptr uintptr
	args := [2]unsafe.Pointer{unsafe.Pointer(&dpy), unsafe.Pointer(&name)}
	_ = ffi.CallFunction(&cifEglQueryString, symEglQueryString, unsafe.Pointer(&ptr), args[:])
	if ptr == 0 {
		return ""
	}
	return goString(ptr)
}

// GetCurrentContext returns the current EGL rendering context, or NoContext if none is bound.
func GetCurrentContext() EGLContext {
	var result EGLContext
	_ = ffi.CallFunction(&cifEglGetCurrentContext, symEglGetCurrentContext, unsafe.Pointer(&result), nil)
	return result
}

// GetCurrentDisplay returns the current EGL display connection, or NoDisplay if none is bound.
func GetCurrentDisplay() EGLDisplay {
	var result EGLDisplay
	_ = ffi.CallFunction(&cifEglGetCurrentDisplay, symEglGetCurrentDisplay, unsafe.Pointer(&result), nil)
	return result
}

// GetProcAddress returns the address of an EGL or client API extension function.
// Per the EGL spec it may not be queried for core (non-extension) functions;
// callers that need those resolve them via direct dlsym on the client API library instead.
func GetProcAddress(procname string) uintptr {
	cname := append([]byte(procname), 0)
	var result uintptr
	args := [1]unsafe.Pointer{unsafe.Pointer(&cname[0])}
	_ = ffi.CallFunction(&cifEglGetProcAddress, symEglGetProcAddress, unsafe.Pointer(&result), args[:])
	return result
}

// goString converts a null-terminated C string pointer to a Go string.
func goString(cstr uintptr) string {
	if cstr == 0 {
		return ""
	}
	length := 0
	//nolint:govet // Converting uintptr (C string address) to unsafe.Pointer is required for FFI
	ptr := (*byte)(unsafe.Pointer(cstr))
	for *(*byte)(unsafe.Add(unsafe.Pointer(ptr), length)) != 0 {
		length++
	}
	if length == 0 {
		return ""
	}
	return string(unsafe.Slice(ptr, length))
}
