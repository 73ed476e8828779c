// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package capability

import "fmt"

// Querier is however the root package's wrappers around glGetString /
// glGetIntegerv / glGetStringi look to this package: a source of
// version and extension strings for whichever context is current. A
// nil Querier models "no context is current" — every strict query on
// it fails, and every conservative query falls back to its permissive
// answer, matching P3.
type Querier interface {
	VersionString() string
	// ExtensionsString returns the legacy single-string GL_EXTENSIONS
	// (or EGL/GLX equivalent) value. Used only when NumExtensions
	// reports ok=false.
	ExtensionsString() string
	// NumExtensions reports the indexed-extensions count (GL >= 3.0's
	// GL_NUM_EXTENSIONS) and whether that indexed form is available at
	// all in this context.
	NumExtensions() (n int32, ok bool)
	ExtensionAt(i int32) string
}

// GLCaps answers version and extension questions about the currently
// current GL context, per spec.md §4.2.
type GLCaps struct {
	Q Querier
}

// Version is the strict probe: the accurate answer, or an error when
// no context is current or the driver's version string is malformed.
func (c GLCaps) Version() (int, error) {
	if c.Q == nil {
		return 0, fmt.Errorf("capability: no GL context is current")
	}
	return ParseVersion(c.Q.VersionString())
}

// IsDesktop is the strict probe for desktop-GL-vs-ES.
func (c GLCaps) IsDesktop() (bool, error) {
	if c.Q == nil {
		return false, fmt.Errorf("capability: no GL context is current")
	}
	return IsDesktopGL(c.Q.VersionString()), nil
}

// HasExtension is the strict probe for extension presence, using the
// indexed glGetStringi form when the context is 3.0+ and the legacy
// single-string form otherwise.
func (c GLCaps) HasExtension(ext string) (bool, error) {
	if c.Q == nil {
		return false, fmt.Errorf("capability: no GL context is current")
	}
	if n, ok := c.Q.NumExtensions(); ok {
		for i := int32(0); i < n; i++ {
			if c.Q.ExtensionAt(i) == ext {
				return true, nil
			}
		}
		return false, nil
	}
	return ExtensionInString(c.Q.ExtensionsString(), ext), nil
}

// conservativeVersionFloor is returned by ConservativeVersion whenever
// the true version cannot safely be determined: high enough that a
// resolver comparing against any curated Provider.Version will treat
// every core version as present, per spec.md §4.2's "try, don't
// refuse" rationale.
const conservativeVersionFloor = 100

// ConservativeVersion never queries the driver while a Begin/End
// region is open on any thread, and never fails: it returns a
// permissive high version number instead, matching P6.
func (c GLCaps) ConservativeVersion() int {
	if BeginCount.Load() > 0 {
		return conservativeVersionFloor
	}
	v, err := c.Version()
	if err != nil {
		return conservativeVersionFloor
	}
	return v
}

// ConservativeHasExtension never queries the driver while a Begin/End
// region is open, and defaults to true (rather than false) whenever
// the true answer is unavailable, so the resolver attempts the
// extension symbol instead of refusing outright.
func (c GLCaps) ConservativeHasExtension(ext string) bool {
	if BeginCount.Load() > 0 {
		return true
	}
	ok, err := c.HasExtension(ext)
	if err != nil {
		return true
	}
	return ok
}

// GLXCaps, EGLCaps and WGLCaps answer the same questions for their
// respective window-system APIs. They share GLCaps's Querier shape and
// delegate to GLCaps's methods, so their conservative variants answer
// permissively both when no context is current and while a GL
// Begin/End region is open.
type (
	GLXCaps struct{ Q Querier }
	EGLCaps struct{ Q Querier }
	WGLCaps struct{ Q Querier }
)

func (c GLXCaps) Version() (int, error)           { return GLCaps(c).Version() }
func (c GLXCaps) HasExtension(e string) (bool, error) { return GLCaps(c).HasExtension(e) }
func (c GLXCaps) ConservativeVersion() int        { return GLCaps(c).ConservativeVersion() }
func (c GLXCaps) ConservativeHasExtension(e string) bool { return GLCaps(c).ConservativeHasExtension(e) }

func (c EGLCaps) Version() (int, error)           { return GLCaps(c).Version() }
func (c EGLCaps) HasExtension(e string) (bool, error) { return GLCaps(c).HasExtension(e) }
func (c EGLCaps) ConservativeVersion() int        { return GLCaps(c).ConservativeVersion() }
func (c EGLCaps) ConservativeHasExtension(e string) bool { return GLCaps(c).ConservativeHasExtension(e) }

func (c WGLCaps) Version() (int, error)           { return GLCaps(c).Version() }
func (c WGLCaps) HasExtension(e string) (bool, error) { return GLCaps(c).HasExtension(e) }
func (c WGLCaps) ConservativeVersion() int        { return GLCaps(c).ConservativeVersion() }
func (c WGLCaps) ConservativeHasExtension(e string) bool { return GLCaps(c).ConservativeHasExtension(e) }
