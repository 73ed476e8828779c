// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package epoxy

import (
	"sync/atomic"

	"github.com/gogpu/epoxy/internal/registry"
)

// API names which client API family the calling thread's current GL
// context belongs to. Unlike GLX/EGL/WGL (one ABI each, statically
// determined by the platform), GL itself forks into desktop GL and two
// ES profiles that share most entry points but diverge on which
// versions/extensions gate the rest — so the caller must say which one
// it bound, once, after creating its context.
type API int

const (
	GL API = iota
	GLES1
	GLES2
)

func (a API) String() string {
	switch a {
	case GL:
		return "GL"
	case GLES1:
		return "GLES1"
	case GLES2:
		return "GLES2"
	default:
		return "unknown API"
	}
}

var currentAPI atomic.Int32

// UseAPI tells epoxy which GL client API family is bound to the
// current context. Call it once after creating a context, before any
// GL* function. Defaults to GL (desktop) when never called.
func UseAPI(api API) {
	currentAPI.Store(int32(api))
}

// CurrentAPI returns the API family last set by UseAPI.
func CurrentAPI() API {
	return API(currentAPI.Load())
}

func toRegistryAPI(a API) registry.API {
	switch a {
	case GLES1:
		return registry.GLES1
	case GLES2:
		return registry.GLES2
	default:
		return registry.GL
	}
}
