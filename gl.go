// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package epoxy

import (
	"unsafe"

	"github.com/gogpu/epoxy/internal/capability"
	"github.com/gogpu/epoxy/internal/registry"
)

// GLGetError returns the current GL error code.
func GLGetError() uint32 {
	fn := resolveGL(registry.EPGetError, &registry.GLEntryPoints[registry.EPGetError])
	return callU32_0(fn)
}

// GLGetString returns the driver's string value for name
// (VERSION, VENDOR, RENDERER, EXTENSIONS, SHADING_LANGUAGE_VERSION).
func GLGetString(name uint32) string {
	fn := resolveGL(registry.EPGetString, &registry.GLEntryPoints[registry.EPGetString])
	return goString(callPtrU(fn, name))
}

// GLGetStringi returns the index'th entry of an indexed string
// property (GL 3.0+; name is normally EXTENSIONS).
func GLGetStringi(name uint32, index uint32) string {
	fn := resolveGL(registry.EPGetStringi, &registry.GLEntryPoints[registry.EPGetStringi])
	return goString(callPtrUU(fn, name, index))
}

// GLGetIntegerv reads one or more integer state values into dst.
func GLGetIntegerv(name uint32, dst []int32) {
	if len(dst) == 0 {
		return
	}
	fn := resolveGL(registry.EPGetIntegerv, &registry.GLEntryPoints[registry.EPGetIntegerv])
	callVoidUP(fn, name, unsafe.Pointer(&dst[0]))
}

// GLGetIntegeri is a convenience wrapper over GLGetIntegerv for the
// common case of reading a single integer value.
func GLGetIntegeri(name uint32) int32 {
	var v [1]int32
	GLGetIntegerv(name, v[:])
	return v[0]
}

// GLClear clears the buffers named by mask.
func GLClear(mask uint32) {
	fn := resolveGL(registry.EPClear, &registry.GLEntryPoints[registry.EPClear])
	callVoidU(fn, mask)
}

// GLDrawArrays renders count primitives of mode starting at vertex first.
func GLDrawArrays(mode uint32, first, count int32) {
	fn := resolveGL(registry.EPDrawArrays, &registry.GLEntryPoints[registry.EPDrawArrays])
	callVoidUII(fn, mode, first, count)
}

// GLDrawElements renders count indexed primitives of mode, with
// indices of GL type indexType (UNSIGNED_BYTE/SHORT/INT), read from
// indices (a byte offset into the bound element array buffer, or a CPU
// pointer with no buffer bound).
func GLDrawElements(mode uint32, count int32, indexType uint32, indices unsafe.Pointer) {
	fn := resolveGL(registry.EPDrawElements, &registry.GLEntryPoints[registry.EPDrawElements])
	callVoidUIUP(fn, mode, count, indexType, indices)
}

// GLCreateShader allocates a new, empty shader object of the given type.
func GLCreateShader(shaderType uint32) uint32 {
	fn := resolveGL(registry.EPCreateShader, &registry.GLEntryPoints[registry.EPCreateShader])
	return callU32U(fn, shaderType)
}

// GLCreateProgram allocates a new, empty program object.
func GLCreateProgram() uint32 {
	fn := resolveGL(registry.EPCreateProgram, &registry.GLEntryPoints[registry.EPCreateProgram])
	return callU32_0(fn)
}

// GLGenBuffers allocates n buffer object names into out.
func GLGenBuffers(out []uint32) {
	if len(out) == 0 {
		return
	}
	fn := resolveGL(registry.EPGenBuffers, &registry.GLEntryPoints[registry.EPGenBuffers])
	callVoidUP(fn, uint32(len(out)), unsafe.Pointer(&out[0]))
}

// GLBufferData uploads size bytes from data (nil to merely reserve
// storage) into the buffer bound to target, with the given usage hint.
func GLBufferData(target uint32, size uintptr, data unsafe.Pointer, usage uint32) {
	fn := resolveGL(registry.EPBufferData, &registry.GLEntryPoints[registry.EPBufferData])
	callVoidUPPU(fn, target, unsafe.Pointer(size), data, usage)
}

// GLGenFramebuffers allocates framebuffer object names into out.
func GLGenFramebuffers(out []uint32) {
	if len(out) == 0 {
		return
	}
	fn := resolveGL(registry.EPGenFramebuffers, &registry.GLEntryPoints[registry.EPGenFramebuffers])
	callVoidUP(fn, uint32(len(out)), unsafe.Pointer(&out[0]))
}

// GLGenVertexArrays allocates vertex array object names into out.
func GLGenVertexArrays(out []uint32) {
	if len(out) == 0 {
		return
	}
	fn := resolveGL(registry.EPGenVertexArrays, &registry.GLEntryPoints[registry.EPGenVertexArrays])
	callVoidUP(fn, uint32(len(out)), unsafe.Pointer(&out[0]))
}

// GLDispatchCompute launches a compute-shader workgroup grid.
func GLDispatchCompute(numGroupsX, numGroupsY, numGroupsZ uint32) {
	fn := resolveGL(registry.EPDispatchCompute, &registry.GLEntryPoints[registry.EPDispatchCompute])
	callVoidUUU(fn, numGroupsX, numGroupsY, numGroupsZ)
}

// GLDebugMessageCallback installs callback to receive driver debug
// messages; userParam is passed back to it unmodified. Passing a
// non-nil Go function pointer across this boundary is the caller's
// responsibility (a cgo- or goffi-compatible trampoline is required);
// this wrapper only forwards the raw pointers.
func GLDebugMessageCallback(callback, userParam unsafe.Pointer) {
	fn := resolveGL(registry.EPDebugMessageCallback, &registry.GLEntryPoints[registry.EPDebugMessageCallback])
	callVoidPP(fn, callback, userParam)
}

// BeginGL opens a glBegin/glEnd region. While open, most GL queries are
// undefined by the GL spec, so internal/capability's conservative
// probes must be used instead of the strict ones.
func BeginGL(mode uint32) {
	fn := resolveGL(registry.EPBegin, &registry.GLEntryPoints[registry.EPBegin])
	capability.BeginCount.Add(1)
	callVoidU(fn, mode)
}

// EndGL closes the glBegin/glEnd region opened by BeginGL.
func EndGL() {
	fn := resolveGL(registry.EPEnd, &registry.GLEntryPoints[registry.EPEnd])
	callVoid0(fn)
	capability.BeginCount.Add(-1)
}
