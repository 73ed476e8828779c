// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package capability

import "testing"

func TestParseVersion(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"4.6.0 NVIDIA 550.100", 46},
		{"3.3 (Core Profile) Mesa 23.2.1", 33},
		{"OpenGL ES 3.1 Mesa 23.2.1", 31},
		{"OpenGL ES 2.0", 20},
		{"1.5", 15},
	}
	for _, tt := range tests {
		got, err := ParseVersion(tt.in)
		if err != nil {
			t.Errorf("ParseVersion(%q) error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseVersion(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestParseVersionMalformed(t *testing.T) {
	for _, in := range []string{"", "garbage", "OpenGL ES "} {
		if _, err := ParseVersion(in); err == nil {
			t.Errorf("ParseVersion(%q) expected an error", in)
		}
	}
}

func TestIsDesktopGL(t *testing.T) {
	if !IsDesktopGL("4.6.0 NVIDIA 550.100") {
		t.Error("expected desktop GL version string to report desktop")
	}
	if IsDesktopGL("OpenGL ES 3.1 Mesa 23.2.1") {
		t.Error("expected ES version string to not report desktop")
	}
}

func TestExtensionInStringRejectsPrefixMatch(t *testing.T) {
	list := "GL_EXT_foobar GL_ARB_shader_objects GL_EXT_texture_compression_s3tc"
	if ExtensionInString(list, "GL_EXT_foo") {
		t.Error("GL_EXT_foo must not match inside GL_EXT_foobar")
	}
	if !ExtensionInString(list, "GL_EXT_foobar") {
		t.Error("GL_EXT_foobar should match itself")
	}
	if !ExtensionInString(list, "GL_ARB_shader_objects") {
		t.Error("expected exact match to succeed")
	}
	if !ExtensionInString(list, "GL_EXT_texture_compression_s3tc") {
		t.Error("expected trailing exact match (end of string) to succeed")
	}
}

type fakeQuerier struct {
	version    string
	extensions []string
	indexed    bool
}

func (f fakeQuerier) VersionString() string { return f.version }
func (f fakeQuerier) ExtensionsString() string {
	s := ""
	for i, e := range f.extensions {
		if i > 0 {
			s += " "
		}
		s += e
	}
	return s
}
func (f fakeQuerier) NumExtensions() (int32, bool) {
	if !f.indexed {
		return 0, false
	}
	return int32(len(f.extensions)), true
}
func (f fakeQuerier) ExtensionAt(i int32) string { return f.extensions[i] }

func TestGLCapsStrict(t *testing.T) {
	caps := GLCaps{Q: fakeQuerier{version: "4.6.0", extensions: []string{"GL_ARB_debug_output"}, indexed: true}}

	v, err := caps.Version()
	if err != nil || v != 46 {
		t.Errorf("Version() = (%d, %v), want (46, nil)", v, err)
	}
	if has, err := caps.HasExtension("GL_ARB_debug_output"); err != nil || !has {
		t.Errorf("HasExtension = (%v, %v), want (true, nil)", has, err)
	}
	if has, _ := caps.HasExtension("GL_ARB_missing"); has {
		t.Error("HasExtension reported an extension that was not advertised")
	}
}

func TestGLCapsStrictNoContext(t *testing.T) {
	var caps GLCaps
	if _, err := caps.Version(); err == nil {
		t.Error("expected an error with no context current")
	}
}

func TestGLCapsConservativeNoContext(t *testing.T) {
	var caps GLCaps
	if v := caps.ConservativeVersion(); v != conservativeVersionFloor {
		t.Errorf("ConservativeVersion() = %d, want %d", v, conservativeVersionFloor)
	}
	if !caps.ConservativeHasExtension("GL_ARB_anything") {
		t.Error("ConservativeHasExtension should default to true with no context")
	}
}

func TestGLCapsConservativeDuringBeginEnd(t *testing.T) {
	caps := GLCaps{Q: fakeQuerier{version: "4.6.0"}}
	BeginCount.Add(1)
	defer BeginCount.Add(-1)

	if v := caps.ConservativeVersion(); v != conservativeVersionFloor {
		t.Errorf("ConservativeVersion() during Begin/End = %d, want %d", v, conservativeVersionFloor)
	}
	if !caps.ConservativeHasExtension("GL_ANY") {
		t.Error("ConservativeHasExtension during Begin/End should return true without querying")
	}
}
