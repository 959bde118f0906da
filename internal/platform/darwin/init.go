//go:build darwin && cgo

package darwin

import "github.com/mj1618/selection-lens/internal/platform"

func init() {
	platform.NewProviderFunc = func() (*platform.Provider, error) {
		return &platform.Provider{
			Native: NewNative(),
		}, nil
	}
}
