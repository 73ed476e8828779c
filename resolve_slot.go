// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package epoxy

import (
	"github.com/gogpu/epoxy/dispatch"
	"github.com/gogpu/epoxy/internal/registry"
	"github.com/gogpu/epoxy/internal/resolve"
)

// resolveGL returns the address bound to the GL-family entry point ep
// (index id into dispatch.Table.GL), resolving and caching it in the
// table dispatch.Current returns (process-wide on POSIX, per OS thread
// on Windows) on first use. Terminates the process
// via resolve.Fatal on any resolution failure, per spec.md §7.
func resolveGL(id int, ep *registry.EntryPoint) uintptr {
	return resolveInto(&dispatch.Current().GL[id], ep, glContext())
}

func resolveGLX(id int, ep *registry.EntryPoint) uintptr {
	return resolveInto(&dispatch.Current().GLX[id], ep, glxContext())
}

func resolveEGL(id int, ep *registry.EntryPoint) uintptr {
	return resolveInto(&dispatch.Current().EGL[id], ep, eglContext())
}

func resolveWGL(id int, ep *registry.EntryPoint) uintptr {
	return resolveInto(&dispatch.Current().WGL[id], ep, wglContext())
}

// resolveFunc indirects through resolve.Resolve so tests can substitute
// a call-counting fake without a real driver present; resolveInto is its
// only caller, so replacing this variable is enough for that
// substitution to take effect.
var resolveFunc = resolve.Resolve

func resolveInto(slot *dispatch.Slot, ep *registry.EntryPoint, ctx resolve.Context) uintptr {
	if addr := slot.Load(); addr != 0 {
		return addr
	}
	addr, err := resolveFunc(ep, ctx)
	if err != nil {
		resolve.Fatal(err)
	}
	slot.Store(addr)
	return addr
}
