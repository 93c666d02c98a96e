package platform

import "github.com/mj1618/winzorder/internal/model"

// WindowSource answers window enumeration and z-order queries against the
// live desktop. Every call re-reads the native window set; nothing is cached.
type WindowSource interface {
	// ListWindows returns all qualifying top-level windows, topmost first.
	ListWindows(opts QueryOptions) ([]model.Window, error)

	// GetWindow returns the window for id, or nil if id does not decode or
	// no longer names a qualifying window.
	GetWindow(id string, opts QueryOptions) (*model.Window, error)

	// GetWindowsAbove returns the qualifying windows stacked above id,
	// topmost first. An unknown id yields an empty result.
	// The chain walk collects windows closest to id first and reverses them,
	// so both strategies return the same order as ListWindows.
	GetWindowsAbove(id string, opts QueryOptions) ([]model.Window, error)

	// GetForegroundWindow returns the window that currently has focus, or
	// nil when there is none or it does not qualify.
	GetForegroundWindow(opts QueryOptions) (*model.Window, error)
}
