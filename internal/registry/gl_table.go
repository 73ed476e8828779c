// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package registry

// GL entry-point IDs. Stable for the lifetime of a process; never
// renumbered once assigned, since dispatch slots are indexed by these
// values.
const (
	EPGetError = iota
	EPGetString
	EPGetStringi
	EPGetIntegerv
	EPClear
	EPDrawArrays
	EPDrawElements
	EPCreateShader
	EPCreateProgram
	EPGenBuffers
	EPBufferData
	EPGenFramebuffers
	EPGenVertexArrays
	EPDispatchCompute
	EPDebugMessageCallback
	EPBegin
	EPEnd

	glEntryPointCount
)

// GLEntryPoints is indexed by the EP* constants above. Providers within
// each entry are ordered core-ascending-then-extension, per the Khronos
// registry convention: a version-0 Provider has no version gate, and one
// with no Extension either means "present in GL 1.0", i.e. always
// active once any GL context is current.
var GLEntryPoints = [glEntryPointCount]EntryPoint{
	EPGetError: {ID: EPGetError, Name: "glGetError", Providers: []Provider{
		{API: GL, Version: 0, Symbol: "glGetError"},
	}},
	EPGetString: {ID: EPGetString, Name: "glGetString", Providers: []Provider{
		{API: GL, Version: 0, Symbol: "glGetString"},
	}},
	EPGetStringi: {ID: EPGetStringi, Name: "glGetStringi", Providers: []Provider{
		{API: GL, Version: 30, Symbol: "glGetStringi"},
	}},
	EPGetIntegerv: {ID: EPGetIntegerv, Name: "glGetIntegerv", Providers: []Provider{
		{API: GL, Version: 0, Symbol: "glGetIntegerv"},
	}},
	EPClear: {ID: EPClear, Name: "glClear", Providers: []Provider{
		{API: GL, Version: 0, Symbol: "glClear"},
	}},
	EPDrawArrays: {ID: EPDrawArrays, Name: "glDrawArrays", Providers: []Provider{
		{API: GL, Version: 0, Symbol: "glDrawArrays"},
	}},
	EPDrawElements: {ID: EPDrawElements, Name: "glDrawElements", Providers: []Provider{
		{API: GL, Version: 0, Symbol: "glDrawElements"},
	}},
	EPCreateShader: {ID: EPCreateShader, Name: "glCreateShader", Providers: []Provider{
		{API: GL, Version: 20, Symbol: "glCreateShader"},
	}},
	EPCreateProgram: {ID: EPCreateProgram, Name: "glCreateProgram", Providers: []Provider{
		{API: GL, Version: 20, Symbol: "glCreateProgram"},
	}},
	EPGenBuffers: {ID: EPGenBuffers, Name: "glGenBuffers", Providers: []Provider{
		{API: GL, Version: 15, Symbol: "glGenBuffers"},
		{API: GL, Extension: "GL_ARB_vertex_buffer_object", Symbol: "glGenBuffersARB"},
	}},
	EPBufferData: {ID: EPBufferData, Name: "glBufferData", Providers: []Provider{
		{API: GL, Version: 15, Symbol: "glBufferData"},
		{API: GL, Extension: "GL_ARB_vertex_buffer_object", Symbol: "glBufferDataARB"},
	}},
	EPGenFramebuffers: {ID: EPGenFramebuffers, Name: "glGenFramebuffers", Providers: []Provider{
		{API: GL, Version: 30, Symbol: "glGenFramebuffers"},
		{API: GL, Extension: "GL_ARB_framebuffer_object", Symbol: "glGenFramebuffers"},
		{API: GL, Extension: "GL_EXT_framebuffer_object", Symbol: "glGenFramebuffersEXT"},
	}},
	EPGenVertexArrays: {ID: EPGenVertexArrays, Name: "glGenVertexArrays", Providers: []Provider{
		{API: GL, Version: 30, Symbol: "glGenVertexArrays"},
		{API: GL, Extension: "GL_ARB_vertex_array_object", Symbol: "glGenVertexArrays"},
		{API: GL, Extension: "GL_APPLE_vertex_array_object", Symbol: "glGenVertexArraysAPPLE"},
	}},
	EPDispatchCompute: {ID: EPDispatchCompute, Name: "glDispatchCompute", Providers: []Provider{
		{API: GL, Version: 43, Symbol: "glDispatchCompute"},
		{API: GL, Extension: "GL_ARB_compute_shader", Symbol: "glDispatchCompute"},
		{API: GLES2, Version: 31, Symbol: "glDispatchCompute"},
	}},
	EPDebugMessageCallback: {ID: EPDebugMessageCallback, Name: "glDebugMessageCallback", Providers: []Provider{
		{API: GL, Version: 43, Symbol: "glDebugMessageCallback"},
		{API: GL, Extension: "GL_KHR_debug", Symbol: "glDebugMessageCallback"},
		{API: GL, Extension: "GL_ARB_debug_output", Symbol: "glDebugMessageCallbackARB"},
	}},
	EPBegin: {ID: EPBegin, Name: "glBegin", Providers: []Provider{
		{API: GL, Version: 0, Symbol: "glBegin"},
	}},
	EPEnd: {ID: EPEnd, Name: "glEnd", Providers: []Provider{
		{API: GL, Version: 0, Symbol: "glEnd"},
	}},
}
