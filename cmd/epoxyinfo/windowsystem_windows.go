// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

//go:build windows

package main

import (
	"fmt"

	"github.com/gogpu/epoxy"
)

func printWindowSystemInfo() {
	fmt.Println()
	fmt.Println("=== WGL ===")
	fmt.Printf("Version: %d\n", epoxy.WGLVersion())
	hdc := epoxy.WGLGetCurrentDC()
	if hdc == nil {
		fmt.Println("no current device context")
		return
	}
	fmt.Printf("Extensions: %s\n", epoxy.WGLGetExtensionsStringARB(hdc))
}
