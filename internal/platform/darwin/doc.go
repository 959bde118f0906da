//go:build darwin

// Package darwin provides the macOS accessibility backend over the
// ApplicationServices and CoreFoundation C APIs.
// All functionality requires CGo.
// When CGo is disabled, the package compiles as a no-op stub.
package darwin
