package platform

import (
	"fmt"
	"runtime"

	"github.com/mj1618/selection-lens/internal/ax"
)

// Provider bundles the platform backends for the current OS.
type Provider struct {
	// Native is the raw accessibility API.
	Native ax.Native
}

// ErrUnsupported is returned on unsupported platforms.
var ErrUnsupported = fmt.Errorf("selection-lens is not supported on %s/%s; supported: darwin/amd64, darwin/arm64 (cgo)", runtime.GOOS, runtime.GOARCH)

// NewProviderFunc is set by platform-specific packages via init().
// See internal/platform/darwin/init.go for the macOS registration.
var NewProviderFunc func() (*Provider, error)

// NewProvider returns a Provider for the current OS.
func NewProvider() (*Provider, error) {
	if NewProviderFunc == nil {
		return nil, ErrUnsupported
	}
	return NewProviderFunc()
}
