// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

//go:build linux

package epoxy

import (
	"sync"
	"unsafe"

	"github.com/go-webgpu/goffi/ffi"
	"github.com/go-webgpu/goffi/types"
)

// Call shapes for the curated GL/GLX/EGL entry points, grounded on the
// same goffi CallInterface machinery hal/gles/gl/context_linux.go used
// for its (now superseded) eager bindings: one prepared CallInterface
// per distinct (return type, argument types) tuple, reused across every
// entry point sharing that tuple.
var (
	cifVoid0  types.CallInterface // void fn()
	cifU320   types.CallInterface // uint32 fn()
	cifPtr0   types.CallInterface // void* fn()
	cifVoidU  types.CallInterface // void fn(uint32)
	cifU32U   types.CallInterface // uint32 fn(uint32)
	cifPtrU   types.CallInterface // void* fn(uint32)
	cifPtrUU  types.CallInterface // void* fn(uint32, uint32)
	cifVoidUP types.CallInterface // void fn(uint32, void*)
	cifVoidUII types.CallInterface // void fn(uint32, int32, int32)
	cifVoidUIUP types.CallInterface // void fn(uint32, int32, uint32, void*)
	cifVoidUPPU types.CallInterface // void fn(uint32, void*, void*, uint32)
	cifVoidUUU  types.CallInterface // void fn(uint32, uint32, uint32)
	cifVoidPP   types.CallInterface // void fn(void*, void*)
	cifPtrP     types.CallInterface // void* fn(void*)
	cifPtrPI    types.CallInterface // void* fn(void*, int32)
	cifU32PPP   types.CallInterface // uint32 fn(void*, void*, void*)
)

var callInterfacesOnce sync.Once
var callInterfacesErr error

func ensureCallInterfaces() error {
	callInterfacesOnce.Do(func() {
		type prep struct {
			cif  *types.CallInterface
			ret  *types.TypeDescriptor
			args []*types.TypeDescriptor
		}
		u, p := types.UInt32TypeDescriptor, types.PointerTypeDescriptor
		s := types.SInt32TypeDescriptor
		preps := []prep{
			{&cifVoid0, types.VoidTypeDescriptor, nil},
			{&cifU320, u, nil},
			{&cifPtr0, p, nil},
			{&cifVoidU, types.VoidTypeDescriptor, []*types.TypeDescriptor{u}},
			{&cifU32U, u, []*types.TypeDescriptor{u}},
			{&cifPtrU, p, []*types.TypeDescriptor{u}},
			{&cifPtrUU, p, []*types.TypeDescriptor{u, u}},
			{&cifVoidUP, types.VoidTypeDescriptor, []*types.TypeDescriptor{u, p}},
			{&cifVoidUII, types.VoidTypeDescriptor, []*types.TypeDescriptor{u, s, s}},
			{&cifVoidUIUP, types.VoidTypeDescriptor, []*types.TypeDescriptor{u, s, u, p}},
			{&cifVoidUPPU, types.VoidTypeDescriptor, []*types.TypeDescriptor{u, p, p, u}},
			{&cifVoidUUU, types.VoidTypeDescriptor, []*types.TypeDescriptor{u, u, u}},
			{&cifVoidPP, types.VoidTypeDescriptor, []*types.TypeDescriptor{p, p}},
			{&cifPtrP, p, []*types.TypeDescriptor{p}},
			{&cifPtrPI, p, []*types.TypeDescriptor{p, s}},
			{&cifU32PPP, u, []*types.TypeDescriptor{p, p, p}},
		}
		for _, pr := range preps {
			if err := ffi.PrepareCallInterface(pr.cif, types.DefaultCall, pr.ret, pr.args); err != nil {
				callInterfacesErr = err
				return
			}
		}
	})
	return callInterfacesErr
}

func mustCallInterfaces() {
	if err := ensureCallInterfaces(); err != nil {
		panic("epoxy: failed to prepare FFI call interfaces: " + err.Error())
	}
}

func callVoid0(fn uintptr) {
	mustCallInterfaces()
	_ = ffi.CallFunction(&cifVoid0, unsafe.Pointer(fn), nil, nil)
}

func callU32_0(fn uintptr) uint32 {
	mustCallInterfaces()
	var r uint32
	_ = ffi.CallFunction(&cifU320, unsafe.Pointer(fn), unsafe.Pointer(&r), nil)
	return r
}

func callPtr0(fn uintptr) uintptr {
	mustCallInterfaces()
	var r uintptr
	_ = ffi.CallFunction(&cifPtr0, unsafe.Pointer(fn), unsafe.Pointer(&r), nil)
	return r
}

func callVoidU(fn uintptr, a uint32) {
	mustCallInterfaces()
	args := [1]unsafe.Pointer{unsafe.Pointer(&a)}
	_ = ffi.CallFunction(&cifVoidU, unsafe.Pointer(fn), nil, args[:])
}

func callU32U(fn uintptr, a uint32) uint32 {
	mustCallInterfaces()
	var r uint32
	args := [1]unsafe.Pointer{unsafe.Pointer(&a)}
	_ = ffi.CallFunction(&cifU32U, unsafe.Pointer(fn), unsafe.Pointer(&r), args[:])
	return r
}

func callPtrU(fn uintptr, a uint32) uintptr {
	mustCallInterfaces()
	var r uintptr
	args := [1]unsafe.Pointer{unsafe.Pointer(&a)}
	_ = ffi.CallFunction(&cifPtrU, unsafe.Pointer(fn), unsafe.Pointer(&r), args[:])
	return r
}

func callPtrUU(fn uintptr, a, b uint32) uintptr {
	mustCallInterfaces()
	var r uintptr
	args := [2]unsafe.Pointer{unsafe.Pointer(&a), unsafe.Pointer(&b)}
	_ = ffi.CallFunction(&cifPtrUU, unsafe.Pointer(fn), unsafe.Pointer(&r), args[:])
	return r
}

func callVoidUP(fn uintptr, a uint32, p unsafe.Pointer) {
	mustCallInterfaces()
	args := [2]unsafe.Pointer{unsafe.Pointer(&a), p}
	_ = ffi.CallFunction(&cifVoidUP, unsafe.Pointer(fn), nil, args[:])
}

func callVoidUII(fn uintptr, a uint32, b, c int32) {
	mustCallInterfaces()
	args := [3]unsafe.Pointer{unsafe.Pointer(&a), unsafe.Pointer(&b), unsafe.Pointer(&c)}
	_ = ffi.CallFunction(&cifVoidUII, unsafe.Pointer(fn), nil, args[:])
}

func callVoidUIUP(fn uintptr, a uint32, b int32, c uint32, p unsafe.Pointer) {
	mustCallInterfaces()
	args := [4]unsafe.Pointer{unsafe.Pointer(&a), unsafe.Pointer(&b), unsafe.Pointer(&c), p}
	_ = ffi.CallFunction(&cifVoidUIUP, unsafe.Pointer(fn), nil, args[:])
}

func callVoidUPPU(fn uintptr, a uint32, p1, p2 unsafe.Pointer, b uint32) {
	mustCallInterfaces()
	args := [4]unsafe.Pointer{unsafe.Pointer(&a), p1, p2, unsafe.Pointer(&b)}
	_ = ffi.CallFunction(&cifVoidUPPU, unsafe.Pointer(fn), nil, args[:])
}

func callVoidUUU(fn uintptr, a, b, c uint32) {
	mustCallInterfaces()
	args := [3]unsafe.Pointer{unsafe.Pointer(&a), unsafe.Pointer(&b), unsafe.Pointer(&c)}
	_ = ffi.CallFunction(&cifVoidUUU, unsafe.Pointer(fn), nil, args[:])
}

func callVoidPP(fn uintptr, p1, p2 unsafe.Pointer) {
	mustCallInterfaces()
	args := [2]unsafe.Pointer{p1, p2}
	_ = ffi.CallFunction(&cifVoidPP, unsafe.Pointer(fn), nil, args[:])
}

func callPtrP(fn uintptr, p unsafe.Pointer) uintptr {
	mustCallInterfaces()
	var r uintptr
	args := [1]unsafe.Pointer{p}
	_ = ffi.CallFunction(&cifPtrP, unsafe.Pointer(fn), unsafe.Pointer(&r), args[:])
	return r
}

func callPtrPI(fn uintptr, p unsafe.Pointer, i int32) uintptr {
	mustCallInterfaces()
	var r uintptr
	args := [2]unsafe.Pointer{p, unsafe.Pointer(&i)}
	_ = ffi.CallFunction(&cifPtrPI, unsafe.Pointer(fn), unsafe.Pointer(&r), args[:])
	return r
}

func callU32PPP(fn uintptr, p1, p2, p3 unsafe.Pointer) uint32 {
	mustCallInterfaces()
	var r uint32
	args := [3]unsafe.Pointer{p1, p2, p3}
	_ = ffi.CallFunction(&cifU32PPP, unsafe.Pointer(fn), unsafe.Pointer(&r), args[:])
	return r
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
