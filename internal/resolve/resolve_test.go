// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package resolve

import (
	"errors"
	"testing"

	"github.com/gogpu/epoxy/internal/registry"
)

type fakeCaps struct {
	version    int
	extensions map[string]bool
}

func (c fakeCaps) ConservativeVersion() int { return c.version }
func (c fakeCaps) ConservativeHasExtension(ext string) bool {
	return c.extensions[ext]
}

func TestIsActiveVersionGate(t *testing.T) {
	ctx := Context{API: registry.GL, Caps: fakeCaps{version: 20}}

	p := registry.Provider{API: registry.GL, Version: 30, Symbol: "glGenFramebuffers"}
	if isActive(ctx, p) {
		t.Error("a GL 3.0 Provider must not be active under a GL 2.0 conservative version")
	}

	ctx.Caps = fakeCaps{version: 31}
	if !isActive(ctx, p) {
		t.Error("a GL 3.0 Provider should be active under a GL 3.1 conservative version")
	}
}

func TestIsActiveAPIMismatch(t *testing.T) {
	ctx := Context{API: registry.GLES2, Caps: fakeCaps{version: 100}}
	p := registry.Provider{API: registry.GL, Version: 20, Symbol: "glCreateShader"}
	if isActive(ctx, p) {
		t.Error("a version-gated GL Provider must not be active in a GLES2 context")
	}
}

func TestIsActiveExtensionGate(t *testing.T) {
	ctx := Context{API: registry.GL, Caps: fakeCaps{version: 20, extensions: map[string]bool{"GL_ARB_framebuffer_object": true}}}

	p := registry.Provider{API: registry.GL, Extension: "GL_ARB_framebuffer_object", Symbol: "glGenFramebuffers"}
	if !isActive(ctx, p) {
		t.Error("expected the extension-gated Provider to be active")
	}

	p2 := registry.Provider{API: registry.GL, Extension: "GL_EXT_framebuffer_object", Symbol: "glGenFramebuffersEXT"}
	if isActive(ctx, p2) {
		t.Error("an unadvertised extension must not gate a Provider active")
	}
}

func TestIsActiveGLBootstrapAppliesToGLES(t *testing.T) {
	ctx := Context{API: registry.GLES2, Caps: fakeCaps{version: 20}}
	p := registry.Provider{API: registry.GL, Version: 0, Symbol: "glGetError"}
	if !isActive(ctx, p) {
		t.Error("a bare GL 1.0 Provider should apply to a GLES2 context")
	}

	versioned := registry.Provider{API: registry.GL, Version: 30, Symbol: "glGetStringi"}
	if isActive(ctx, versioned) {
		t.Error("a version-gated GL Provider must not apply to a GLES2 context")
	}
}

func TestResolveNoActiveProvider(t *testing.T) {
	ep := registry.EntryPoint{Name: "glDispatchCompute", Providers: []registry.Provider{
		{API: registry.GL, Version: 43, Symbol: "glDispatchCompute"},
	}}
	ctx := Context{API: registry.GL, Caps: fakeCaps{version: 30}}

	_, err := Resolve(&ep, ctx)
	if !errors.Is(err, ErrNoActiveProvider) {
		t.Fatalf("Resolve error = %v, want ErrNoActiveProvider", err)
	}
}

func TestDiagnosticListsEveryProvider(t *testing.T) {
	ep := registry.EntryPoint{Name: "glGenFramebuffers", Providers: []registry.Provider{
		{API: registry.GL, Version: 30, Symbol: "glGenFramebuffers"},
		{API: registry.GL, Extension: "GL_EXT_framebuffer_object", Symbol: "glGenFramebuffersEXT"},
	}}
	msg := diagnostic(&ep)
	if want := "No provider of glGenFramebuffers found. Requires one of:"; msg[:len(want)] != want {
		t.Errorf("diagnostic header = %q", msg)
	}
	for _, want := range []string{"glGenFramebuffers", "glGenFramebuffersEXT", "GL_EXT_framebuffer_object"} {
		if !contains(msg, want) {
			t.Errorf("diagnostic missing %q: %s", want, msg)
		}
	}
}

// TestResolveSwitchesPointerWithAPI is SPEC_FULL.md §8's P7 scenario,
// modeled on original_source/test/egl_and_glx_different_pointers.c:
// construct two fake resolvers that hand back different addresses for
// the same symbol name, and assert that which one Resolve consults
// depends entirely on which Context (i.e. which "current API") is
// passed in — nothing about the EntryPoint itself changes between
// calls.
func TestResolveSwitchesPointerWithAPI(t *testing.T) {
	ep := registry.EntryPoint{Name: "glGetString", Providers: []registry.Provider{
		{API: registry.GL, Symbol: "glGetString"},
	}}

	eglCtx := Context{
		API:  registry.GL,
		Caps: fakeCaps{version: 100},
		Bootstrap: func(symbol string) (uintptr, error) {
			return 0xE61, nil
		},
	}
	glxCtx := Context{
		API:  registry.GL,
		Caps: fakeCaps{version: 100},
		Bootstrap: func(symbol string) (uintptr, error) {
			return 0x61B, nil
		},
	}

	eglAddr, err := Resolve(&ep, eglCtx)
	if err != nil {
		t.Fatalf("Resolve(eglCtx) error = %v", err)
	}
	glxAddr, err := Resolve(&ep, glxCtx)
	if err != nil {
		t.Fatalf("Resolve(glxCtx) error = %v", err)
	}

	if eglAddr == glxAddr {
		t.Fatalf("expected distinct addresses per context, got %#x for both", eglAddr)
	}
	if eglAddr != 0xE61 {
		t.Errorf("Resolve(eglCtx) = %#x, want 0xE61", eglAddr)
	}
	if glxAddr != 0x61B {
		t.Errorf("Resolve(glxCtx) = %#x, want 0x61B", glxAddr)
	}
}

func contains(s, sub string) bool {
	for i := 0; i+len(sub) <= len(s); i++ {
		if s[i:i+len(sub)] == sub {
			return true
		}
	}
	return false
}
