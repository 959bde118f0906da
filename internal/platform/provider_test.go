package platform

import (
	"errors"
	"runtime"
	"testing"

	"github.com/mj1618/selection-lens/internal/ax/axtest"
)

func TestNewProvider_ReturnsProvider(t *testing.T) {
	if runtime.GOOS != "darwin" {
		t.Skip("skipping on non-darwin")
	}
	// The darwin package is only registered when a binary imports it for side
	// effects; just verify the call doesn't panic.
	_, _ = NewProvider()
}

func TestNewProvider_UnsupportedPlatform(t *testing.T) {
	orig := NewProviderFunc
	NewProviderFunc = nil
	defer func() { NewProviderFunc = orig }()

	_, err := NewProvider()
	if err == nil {
		t.Fatal("expected error on unsupported platform")
	}
	if !errors.Is(err, ErrUnsupported) {
		t.Errorf("expected ErrUnsupported, got: %v", err)
	}
}

func TestNewProvider_UsesRegisteredBackend(t *testing.T) {
	orig := NewProviderFunc
	defer func() { NewProviderFunc = orig }()

	fake := axtest.New()
	NewProviderFunc = func() (*Provider, error) {
		return &Provider{Native: fake}, nil
	}

	p, err := NewProvider()
	if err != nil {
		t.Fatalf("NewProvider: %v", err)
	}
	if p.Native != fake {
		t.Error("provider should carry the registered backend")
	}
}
