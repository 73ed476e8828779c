// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package epoxy

import (
	"testing"

	"github.com/gogpu/epoxy/internal/registry"
)

func TestAPIString(t *testing.T) {
	cases := map[API]string{GL: "GL", GLES1: "GLES1", GLES2: "GLES2", API(99): "unknown API"}
	for api, want := range cases {
		if got := api.String(); got != want {
			t.Errorf("API(%d).String() = %q, want %q", api, got, want)
		}
	}
}

func TestUseAPIRoundTrip(t *testing.T) {
	t.Cleanup(func() { UseAPI(GL) })

	for _, api := range []API{GL, GLES1, GLES2} {
		UseAPI(api)
		if got := CurrentAPI(); got != api {
			t.Errorf("CurrentAPI() after UseAPI(%v) = %v, want %v", api, got, api)
		}
	}
}

func TestUseAPIDefaultsToGL(t *testing.T) {
	// currentAPI's zero value is GL (iota 0); a fresh process that never
	// calls UseAPI should resolve GL entry points.
	if GL != 0 {
		t.Fatalf("GL must be the zero value of API, got %d", GL)
	}
}

func TestToRegistryAPI(t *testing.T) {
	cases := map[API]registry.API{
		GL:    registry.GL,
		GLES1: registry.GLES1,
		GLES2: registry.GLES2,
	}
	for api, want := range cases {
		if got := toRegistryAPI(api); got != want {
			t.Errorf("toRegistryAPI(%v) = %v, want %v", api, got, want)
		}
	}
}

func TestAlwaysPermissiveCaps(t *testing.T) {
	var c alwaysPermissiveCaps
	if v := c.ConservativeVersion(); v != 100 {
		t.Errorf("ConservativeVersion() = %d, want 100", v)
	}
	if !c.ConservativeHasExtension("GL_ARB_anything") {
		t.Error("ConservativeHasExtension() = false, want true for any extension name")
	}
}
