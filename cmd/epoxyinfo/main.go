// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Command epoxyinfo opens a hidden GLFW window, binds a desktop GL
// context to it, and prints what epoxy resolves against the driver:
// version, vendor/renderer strings, and window-system details for
// whichever of GLX/EGL/WGL backs the current platform: the version in
// each case, plus one GLX extension check under GLX and the full
// extension list under WGL.
package main

import (
	"fmt"
	"os"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/gogpu/epoxy"
)

func main() {
	fmt.Println("=== epoxyinfo ===")

	fmt.Print("1. Initializing GLFW... ")
	if err := glfw.Init(); err != nil {
		fmt.Printf("FAILED: %v\n", err)
		os.Exit(1)
	}
	defer glfw.Terminate()
	fmt.Println("OK")

	glfw.WindowHint(glfw.Visible, glfw.False)
	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	fmt.Print("2. Creating offscreen window... ")
	win, err := glfw.CreateWindow(1, 1, "epoxyinfo", nil, nil)
	if err != nil {
		fmt.Printf("FAILED: %v\n", err)
		os.Exit(1)
	}
	defer win.Destroy()
	fmt.Println("OK")

	fmt.Print("3. Making context current... ")
	win.MakeContextCurrent()
	epoxy.UseAPI(epoxy.GL)
	fmt.Println("OK")

	fmt.Println()
	fmt.Println("=== OpenGL ===")
	fmt.Printf("Version:  %s (parsed %d)\n", epoxy.GLGetString(epoxy.VERSION), epoxy.GLVersion())
	fmt.Printf("Vendor:   %s\n", epoxy.GLGetString(epoxy.VENDOR))
	fmt.Printf("Renderer: %s\n", epoxy.GLGetString(epoxy.RENDERER))
	fmt.Printf("Desktop GL: %v\n", epoxy.IsDesktopGL())
	fmt.Printf("GL_ARB_debug_output present: %v\n", epoxy.HasGLExtension("GL_ARB_debug_output"))

	printWindowSystemInfo()
}
