// Package ax wraps the macOS accessibility API with ownership-checked
// references, typed attribute values and tagged geometry boxes. The native
// calls themselves go through a Native implementation.
package ax

import "unsafe"

// Handle is an opaque reference to a native object (a CFTypeRef on macOS).
// The zero Handle is null.
type Handle uintptr

// Native is the raw accessibility surface a platform backend provides.
//
// Query calls follow the native convention: the result is written into an
// output parameter and a status code is returned. Methods named Copy* and
// Create* hand the caller a +1 retained reference; ArrayAt follows the Get
// rule and does not. Nothing outside this package should call Copy* methods
// directly; use Element, which routes them through the ownership bridge.
type Native interface {
	// IsProcessTrusted reports whether accessibility access has been granted.
	IsProcessTrusted() bool
	// RequestTrust is IsProcessTrusted, but asks the host to prompt the user
	// when access has not been granted yet.
	RequestTrust() bool
	// CurrentPID returns the id of the calling process.
	CurrentPID() int

	// CreateSystemWide returns a +1 reference to the system-wide element.
	CreateSystemWide() Handle
	Retain(h Handle)
	Release(h Handle)

	ElementPID(h Handle, out *int32) Error
	CopyAttributeNames(h Handle, out *Handle) Error
	CopyAttributeValue(h Handle, attribute string, out *Handle) Error
	CopyParameterizedAttributeNames(h Handle, out *Handle) Error
	CopyParameterizedAttributeValue(h Handle, attribute string, parameter Handle, out *Handle) Error

	// KindOf classifies an object by its native type id.
	KindOf(h Handle) Kind
	StringOf(h Handle) string
	NumberOf(h Handle) float64
	BoolOf(h Handle) bool
	ArrayLen(h Handle) int
	ArrayAt(h Handle, i int) Handle

	// BoxType returns the tag of a boxed scalar.
	BoxType(h Handle) ValueType
	// BoxValue copies the payload of a boxed scalar tagged t into out, which
	// points at storage of the matching Go type. It reports false when the
	// tag does not match or the copy fails.
	BoxValue(h Handle, t ValueType, out unsafe.Pointer) bool
	// CreateBox boxes the payload at in under tag t and returns a +1
	// reference, or the null Handle on failure.
	CreateBox(t ValueType, in unsafe.Pointer) Handle
}
