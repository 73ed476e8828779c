// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

//go:build linux

package main

import (
	"fmt"

	"github.com/gogpu/epoxy"
)

func printWindowSystemInfo() {
	fmt.Println()
	if epoxy.CurrentContextIsEGL() {
		fmt.Println("=== EGL ===")
		fmt.Printf("Version: %d\n", epoxy.EGLVersion())
		return
	}
	fmt.Println("=== GLX ===")
	fmt.Printf("Version: %d\n", epoxy.GLXVersion())
	fmt.Printf("GLX_ARB_create_context present: %v\n", epoxy.HasGLXExtension("GLX_ARB_create_context"))
}
