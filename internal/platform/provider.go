package platform

import (
	"fmt"
	"log/slog"
	"runtime"

	"github.com/mj1618/winzorder/internal/model"
)

// Provider bundles the platform backends for the current OS.
type Provider struct {
	Windows WindowSource
}

// ErrUnsupported is returned by every query on platforms without a backend.
var ErrUnsupported = fmt.Errorf("winzorder is not supported on %s/%s; supported: windows", runtime.GOOS, runtime.GOARCH)

// NewSourceFunc is set by platform-specific packages via init().
// See internal/platform/win32/init_windows.go for the Windows registration.
var NewSourceFunc func(logger *slog.Logger) (WindowSource, error)

// NewProvider returns a Provider for the current OS. Without a registered
// backend the provider is still usable, but every query fails with
// ErrUnsupported.
func NewProvider(logger *slog.Logger) (*Provider, error) {
	if NewSourceFunc == nil {
		return &Provider{Windows: Unsupported{}}, nil
	}
	src, err := NewSourceFunc(logger)
	if err != nil {
		return nil, err
	}
	return &Provider{Windows: src}, nil
}

// Unsupported is the WindowSource for platforms without a native backend.
type Unsupported struct{}

var _ WindowSource = Unsupported{}

func (Unsupported) ListWindows(QueryOptions) ([]model.Window, error) {
	return nil, ErrUnsupported
}

func (Unsupported) GetWindow(string, QueryOptions) (*model.Window, error) {
	return nil, ErrUnsupported
}

func (Unsupported) GetWindowsAbove(string, QueryOptions) ([]model.Window, error) {
	return nil, ErrUnsupported
}

func (Unsupported) GetForegroundWindow(QueryOptions) (*model.Window, error) {
	return nil, ErrUnsupported
}
