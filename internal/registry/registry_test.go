// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package registry

import "testing"

// TestFirstActiveProviderSelection verifies P8: given an EntryPoint with
// Providers [(GL core 3.0), (GL_EXT_X)], in a 3.1 context that also
// advertises the extension, the core-3.0 symbol name is the one chosen.
func TestFirstActiveProviderSelection(t *testing.T) {
	ep := EntryPoint{
		Name: "glGenFramebuffers",
		Providers: []Provider{
			{API: GL, Version: 30, Symbol: "glGenFramebuffers"},
			{API: GL, Extension: "GL_EXT_framebuffer_object", Symbol: "glGenFramebuffersEXT"},
		},
	}

	const contextVersion = 31
	extensions := map[string]bool{"GL_EXT_framebuffer_object": true}

	isActive := func(p Provider) bool {
		if p.Version > 0 && contextVersion < p.Version {
			return false
		}
		if p.Extension != "" && !extensions[p.Extension] {
			return false
		}
		return true
	}

	got, ok := FirstActiveProvider(&ep, isActive)
	if !ok {
		t.Fatal("expected a Provider to be active")
	}
	if got.Symbol != "glGenFramebuffers" {
		t.Errorf("selected Provider = %q, want the core-3.0 Provider %q (first match, not best match)", got.Symbol, "glGenFramebuffers")
	}
}

func TestFirstActiveProviderNoMatch(t *testing.T) {
	ep := EntryPoint{
		Name: "glDispatchCompute",
		Providers: []Provider{
			{API: GL, Version: 43, Symbol: "glDispatchCompute"},
			{API: GL, Extension: "GL_ARB_compute_shader", Symbol: "glDispatchCompute"},
		},
	}

	isActive := func(Provider) bool { return false }

	if _, ok := FirstActiveProvider(&ep, isActive); ok {
		t.Fatal("expected no Provider to be active")
	}
}

func TestGLEntryPointTableIDsMatchIndex(t *testing.T) {
	for i, ep := range GLEntryPoints {
		if ep.ID != i {
			t.Errorf("GLEntryPoints[%d].ID = %d, want %d (slot index must match EntryPoint.ID for dispatch table addressing)", i, ep.ID, i)
		}
		if len(ep.Providers) == 0 {
			t.Errorf("GLEntryPoints[%d] (%s) has no Providers", i, ep.Name)
		}
	}
}
