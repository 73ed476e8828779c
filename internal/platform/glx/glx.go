// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

//go:build linux

// Package glx binds the subset of the GLX ABI the dispatch layer needs
// to bootstrap itself: querying the current display/context and
// resolving further function pointers via glXGetProcAddressARB. It
// does not create X displays or GLX contexts — that is the caller's
// responsibility.
package glx

import (
	"fmt"
	"unsafe"

	"github.com/go-webgpu/goffi/ffi"
	"github.com/go-webgpu/goffi/types"
)

var (
	glLib unsafe.Pointer // GLX is statically part of libGL.so.1 on Linux

	symGlXGetProcAddressARB unsafe.Pointer
	symGlXQueryVersion      unsafe.Pointer
	symGlXQueryExtensions   unsafe.Pointer
	symGlXGetCurrentContext unsafe.Pointer
	symGlXGetCurrentDisplay unsafe.Pointer

	cifGlXQueryVersion      types.CallInterface
	cifGlXQueryExtensions   types.CallInterface
	cifGlXGetCurrentContext types.CallInterface
	cifGlXGetCurrentDisplay types.CallInterface
	cifGlXGetProcAddr       types.CallInterface
)

// Init loads libGL (GLX's host library on Linux) and resolves the
// bootstrap symbols this package wraps.
func Init() error {
	var err error

	glLib, err = ffi.LoadLibrary("libGL.so.1")
	if err != nil {
		glLib, err = ffi.LoadLibrary("libGL.so")
		if err != nil {
			return fmt.Errorf("failed to load libGL.so.1: %w", err)
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
		{"glXGetProcAddressARB", &symGlXGetProcAddressARB},
		{"glXQueryVersion", &symGlXQueryVersion},
		{"glXQueryExtensionsString", &symGlXQueryExtensions},
		{"glXGetCurrentContext", &symGlXGetCurrentContext},
		{"glXGetCurrentDisplay", &symGlXGetCurrentDisplay},
	}
	for _, s := range syms {
		*s.dst, err = ffi.GetSymbol(glLib, s.name)
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
		{&cifGlXGetProcAddr, types.PointerTypeDescriptor, []*types.TypeDescriptor{types.PointerTypeDescriptor}, "glXGetProcAddressARB"},
		{&cifGlXQueryVersion, types.UInt32TypeDescriptor, []*types.TypeDescriptor{types.PointerTypeDescriptor, types.PointerTypeDescriptor, types.PointerTypeDescriptor}, "glXQueryVersion"},
		{&cifGlXQueryExtensions, types.PointerTypeDescriptor, []*types.TypeDescriptor{types.PointerTypeDescriptor, types.UInt32TypeDescriptor}, "glXQueryExtensionsString"},
		{&cifGlXGetCurrentContext, types.PointerTypeDescriptor, nil, "glXGetCurrentContext"},
		{&cifGlXGetCurrentDisplay, types.PointerTypeDescriptor, nil, "glXGetCurrentDisplay"},
	}
	for _, p := range preps {
		if err := ffi.PrepareCallInterface(p.cif, types.DefaultCall, p.ret, p.args); err != nil {
			return fmt.Errorf("failed to prepare %s: %w", p.name, err)
		}
	}
	return nil
}

// GetProcAddress resolves an OpenGL function pointer via
// glXGetProcAddressARB. Returns 0 if the driver has no binding for name.
func GetProcAddress(name string) uintptr {
	cname := append([]byte(name), 0)
	var result uintptr
	args := [1]unsafe.Pointer{unsafe.Pointer(&cname[0])}
	_ = ffi.CallFunction(&cifGlXGetProcAddr, symGlXGetProcAddressARB, unsafe.Pointer(&result), args[:])
	return result
}

// QueryVersion returns the GLX major/minor version for the display dpy.
func QueryVersion(dpy uintptr) (major, minor int32) {
	args := [3]unsafe.Pointer{unsafe.Pointer(&dpy), unsafe.Pointer(&major), unsafe.Pointer(&minor)}
	_ = ffi.CallFunction(&cifGlXQueryVersion, symGlXQueryVersion, unsafe.Pointer(new(uint32)), args[:])
	return
}

// QueryExtensionsString returns the space-separated GLX extension list
// for screen on display dpy.
func QueryExtensionsString(dpy uintptr, screen int32) string {
	var ptr uintptr
	args := [2]unsafe.Pointer{unsafe.Pointer(&dpy), unsafe.Pointer(&screen)}
	_ = ffi.CallFunction(&cifGlXQueryExtensions, symGlXQueryExtensions, unsafe.Pointer(&ptr), args[:])
	if ptr == 0 {
		return ""
	}
	return goString(ptr)
}

// GetCurrentContext returns the current GLX rendering context, or 0 if none is bound.
func GetCurrentContext() uintptr {
	var result uintptr
	_ = ffi.CallFunction(&cifGlXGetCurrentContext, symGlXGetCurrentContext, unsafe.Pointer(&result), nil)
	return result
}

// GetCurrentDisplay returns the current GLX display connection, or 0 if none is bound.
func GetCurrentDisplay() uintptr {
	var result uintptr
	_ = ffi.CallFunction(&cifGlXGetCurrentDisplay, symGlXGetCurrentDisplay, unsafe.Pointer(&result), nil)
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
