// Package zorder enumerates top-level windows and answers stacking queries.
//
// Every query re-reads the live window set. Handles come from a primary
// Strategy (the z-order chain); if it fails hard the whole query is re-derived
// from the fallback Strategy (a single enumeration pass). Candidates from
// either path go through the same Classifier and are deduplicated by ID.
package zorder

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/pkg/errors"

	"github.com/mj1618/winzorder/internal/model"
	"github.com/mj1618/winzorder/internal/platform"
	"github.com/mj1618/winzorder/internal/winid"
)

// Engine implements platform.WindowSource on top of a Native backend. It
// holds no state between calls and does no locking of its own.
type Engine struct {
	native     Native
	classifier Classifier
	primary    Strategy
	fallback   Strategy
	logger     *slog.Logger
}

var _ platform.WindowSource = (*Engine)(nil)

// New creates an engine using the chain walker with enumeration fallback.
// A nil logger discards output.
func New(native Native, logger *slog.Logger) *Engine {
	return NewWithStrategies(native, ChainWalker{Native: native}, EnumFallback{Native: native}, logger)
}

// NewWithStrategies creates an engine with an explicit strategy pair.
func NewWithStrategies(native Native, primary, fallback Strategy, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Engine{
		native:     native,
		classifier: Classifier{Native: native},
		primary:    primary,
		fallback:   fallback,
		logger:     logger,
	}
}

// StrategyError is returned when both strategies failed hard.
type StrategyError struct {
	Query    string
	Primary  error
	Fallback error
}

func (e *StrategyError) Error() string {
	return fmt.Sprintf("%s: primary enumeration failed: %v; fallback enumeration failed: %v", e.Query, e.Primary, e.Fallback)
}

func (e *StrategyError) Unwrap() []error {
	return []error{e.Primary, e.Fallback}
}

// collect runs query against the primary strategy and, on a hard failure,
// discards any partial result and runs it against the fallback.
func (e *Engine) collect(name string, query func(Strategy) ([]winid.Handle, error)) ([]winid.Handle, Strategy, error) {
	handles, err := query(e.primary)
	if err == nil {
		return handles, e.primary, nil
	}

	e.logger.Warn("primary window enumeration failed, using fallback",
		"query", name,
		"strategy", e.primary.Name(),
		"fallback", e.fallback.Name(),
		"error", err)

	handles, ferr := query(e.fallback)
	if ferr != nil {
		return nil, nil, &StrategyError{Query: name, Primary: err, Fallback: ferr}
	}
	return handles, e.fallback, nil
}

// snapshot classifies handles in order, keeping the first record per ID.
func (e *Engine) snapshot(handles []winid.Handle, opts platform.ResolvedOptions) []model.Window {
	windows := make([]model.Window, 0, len(handles))
	seen := make(map[string]struct{}, len(handles))
	for _, h := range handles {
		w, ok := e.classifier.Classify(h, opts)
		if !ok {
			continue
		}
		if _, dup := seen[w.ID]; dup {
			continue
		}
		seen[w.ID] = struct{}{}
		windows = append(windows, w)
	}
	return windows
}

// ListWindows returns every qualifying top-level window, topmost first.
func (e *Engine) ListWindows(opts platform.QueryOptions) ([]model.Window, error) {
	resolved := opts.Resolve()

	handles, used, err := e.collect("list windows", func(s Strategy) ([]winid.Handle, error) {
		return s.All()
	})
	if err != nil {
		return nil, err
	}

	windows := e.snapshot(handles, resolved)
	e.logger.Debug("listed windows",
		"strategy", used.Name(),
		"candidates", len(handles),
		"windows", len(windows))
	return windows, nil
}

// GetWindow classifies the single window named by id.
func (e *Engine) GetWindow(id string, opts platform.QueryOptions) (*model.Window, error) {
	resolved := opts.Resolve()

	h, ok := winid.Decode(id)
	if !ok {
		return nil, nil
	}
	w, ok := e.classifier.Classify(h, resolved)
	if !ok {
		return nil, nil
	}
	return &w, nil
}

// GetWindowsAbove returns the qualifying windows stacked above id, topmost
// first, so the result keeps the relative order of ListWindows.
func (e *Engine) GetWindowsAbove(id string, opts platform.QueryOptions) ([]model.Window, error) {
	resolved := opts.Resolve()

	target, ok := winid.Decode(id)
	if !ok || target.IsNull() {
		return []model.Window{}, nil
	}

	handles, used, err := e.collect("windows above", func(s Strategy) ([]winid.Handle, error) {
		return s.Above(target)
	})
	if err != nil {
		return nil, err
	}

	windows := e.snapshot(handles, resolved)
	e.logger.Debug("listed windows above",
		"target", id,
		"strategy", used.Name(),
		"windows", len(windows))
	return windows, nil
}

// GetForegroundWindow classifies the currently focused top-level window.
func (e *Engine) GetForegroundWindow(opts platform.QueryOptions) (*model.Window, error) {
	resolved := opts.Resolve()

	h := e.native.ForegroundWindow()
	if h.IsNull() {
		return nil, nil
	}
	w, ok := e.classifier.Classify(h, resolved)
	if !ok {
		return nil, nil
	}
	return &w, nil
}

// IsStrategyFailure reports whether err came from both strategies failing.
func IsStrategyFailure(err error) bool {
	var se *StrategyError
	return errors.As(err, &se)
}
