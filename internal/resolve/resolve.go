// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package resolve

import (
	"fmt"
	"strings"

	"github.com/gogpu/epoxy/internal/platform"
	"github.com/gogpu/epoxy/internal/registry"
)

// Caps is the subset of capability.GLCaps/GLXCaps/EGLCaps/WGLCaps the
// resolver consults: only the conservative variants, per spec.md §4.3
// ("using the conservative variants").
type Caps interface {
	ConservativeVersion() int
	ConservativeHasExtension(ext string) bool
}

// Context is everything Resolve needs to know about what's currently
// bound: which API family is active, that family's capability probe,
// and which platform library its symbols live in.
//
// Bootstrap and Lookup are the two symbol-address sources Resolve tries,
// in that order for GL-family contexts; both default to the real
// platform-specific resolvers (bootstrapProcAddress, platform.Lookup)
// when left nil. Tests and SPEC_FULL.md §8's P7 scenario (two resolvers
// returning different pointers for the same symbol name, depending on
// which API is "current") set these explicitly instead.
type Context struct {
	API       registry.API
	Caps      Caps
	Library   platform.LibraryID
	Bootstrap func(symbol string) (uintptr, error)
	Lookup    func(library platform.LibraryID, symbol string) (uintptr, error)
}

func (ctx Context) bootstrap(symbol string) (uintptr, error) {
	if ctx.Bootstrap != nil {
		return ctx.Bootstrap(symbol)
	}
	return bootstrapProcAddress(symbol)
}

func (ctx Context) lookup(symbol string) (uintptr, error) {
	if ctx.Lookup != nil {
		return ctx.Lookup(ctx.Library, symbol)
	}
	return platform.Lookup(ctx.Library, symbol)
}

// familyMatches reports whether a Provider for providerAPI applies to a
// context bound to ctxAPI. An exact match always applies. A bare GL 1.0
// Provider (no version gate, no extension gate) also applies to a
// GLES1/GLES2 context: those entry points (glGetString, glGetError,
// glGetIntegerv, ...) are part of the ES ABI verbatim, and the curated
// table does not duplicate them per ES profile.
func familyMatches(ctxAPI, providerAPI registry.API, version int, extension string) bool {
	if providerAPI == ctxAPI {
		return true
	}
	if providerAPI == registry.GL && version == 0 && extension == "" {
		return ctxAPI == registry.GLES1 || ctxAPI == registry.GLES2
	}
	return false
}

func isActive(ctx Context, p registry.Provider) bool {
	if !familyMatches(ctx.API, p.API, p.Version, p.Extension) {
		return false
	}
	if p.Version > 0 && ctx.Caps.ConservativeVersion() < p.Version {
		return false
	}
	if p.Extension != "" && !ctx.Caps.ConservativeHasExtension(p.Extension) {
		return false
	}
	return true
}

// Resolve finds the address of one of ep's Providers that is active in
// ctx. For GL-family entry points it prefers the window system's
// context-independent GetProcAddress (eglGetProcAddress, falling back to
// glXGetProcAddressARB) over dlsym, per original_source's
// epoxy_get_proc_address: the GetProcAddress chain is correct for core
// entry points and extensions alike, while dlsym only ever reliably
// finds the core entry points a library directly exports. dlsym is the
// fallback, tried only if GetProcAddress comes up empty (or for
// non-GL-family contexts, where there is no GetProcAddress chain at all
// and the platform loader's exported-symbol table is the only source).
func Resolve(ep *registry.EntryPoint, ctx Context) (uintptr, error) {
	provider, ok := registry.FirstActiveProvider(ep, func(p registry.Provider) bool {
		return isActive(ctx, p)
	})
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrNoActiveProvider, diagnostic(ep))
	}

	if isGLFamily(ctx.API) {
		if addr, bootErr := ctx.bootstrap(provider.Symbol); bootErr == nil {
			return addr, nil
		}
	}

	addr, err := ctx.lookup(provider.Symbol)
	if err == nil {
		return addr, nil
	}

	return 0, fmt.Errorf("%w: %s", ErrLibraryNotFound, err)
}

func isGLFamily(api registry.API) bool {
	switch api {
	case registry.GL, registry.GLES1, registry.GLES2:
		return true
	default:
		return false
	}
}

// diagnostic renders the "Requires one of: ..." provider listing used
// both in the error chain here and by Fatal's terminal output.
func diagnostic(ep *registry.EntryPoint) string {
	var b strings.Builder
	fmt.Fprintf(&b, "No provider of %s found. Requires one of:", ep.Name)
	for _, p := range ep.Providers {
		b.WriteString("\n  ")
		switch {
		case p.Extension != "":
			fmt.Fprintf(&b, "%s %s (%s)", p.API, p.Extension, p.Symbol)
		case p.Version > 0:
			fmt.Fprintf(&b, "%s %d.%d (%s)", p.API, p.Version/10, p.Version%10, p.Symbol)
		default:
			fmt.Fprintf(&b, "%s (%s)", p.API, p.Symbol)
		}
	}
	return b.String()
}
