package zorder

import (
	"slices"

	"github.com/pkg/errors"

	"github.com/mj1618/winzorder/internal/winid"
)

// Strategy produces candidate handles, topmost first. Handles are not yet
// classified and may repeat.
type Strategy interface {
	Name() string

	// All returns every top-level window.
	All() ([]winid.Handle, error)

	// Above returns the windows stacked above target. A target the strategy
	// cannot place yields an empty result.
	Above(target winid.Handle) ([]winid.Handle, error)
}

// ChainWalker follows the host's next/previous window links. It reproduces
// rendering order exactly but the link primitives can fail mid-walk.
type ChainWalker struct {
	Native Native
}

var _ Strategy = ChainWalker{}

func (ChainWalker) Name() string { return "chain" }

func (c ChainWalker) All() ([]winid.Handle, error) {
	h, err := c.Native.TopWindow()
	if h, err = advance("GetTopWindow", h, err); err != nil {
		return nil, err
	}
	return c.walk(h, c.Native.NextWindow, "GetWindow(GW_HWNDNEXT)")
}

func (c ChainWalker) Above(target winid.Handle) ([]winid.Handle, error) {
	if target.IsNull() {
		return nil, nil
	}
	h, err := c.Native.PrevWindow(target)
	if h, err = advance("GetWindow(GW_HWNDPREV)", h, err); err != nil {
		return nil, err
	}
	handles, err := c.walk(h, c.Native.PrevWindow, "GetWindow(GW_HWNDPREV)")
	if err != nil {
		return nil, err
	}
	// Collected closest first; callers get topmost first.
	slices.Reverse(handles)
	return handles, nil
}

// walk follows step from start until the Null sentinel. Revisiting a handle
// means the stack changed under the walk, which is reported as a failure so
// the query is re-derived from a single enumeration pass.
func (c ChainWalker) walk(start winid.Handle, step func(winid.Handle) (winid.Handle, error), op string) ([]winid.Handle, error) {
	var handles []winid.Handle
	seen := make(map[winid.Handle]struct{})
	for h := start; !h.IsNull(); {
		if _, dup := seen[h]; dup {
			return nil, errors.Errorf("%s revisited %s", op, h)
		}
		seen[h] = struct{}{}
		handles = append(handles, h)

		next, err := step(h)
		if next, err = advance(op, next, err); err != nil {
			return nil, err
		}
		h = next
	}
	return handles, nil
}

// advance translates the result of one chain primitive: benign end-of-chain
// statuses become the Null sentinel, anything else is a hard failure.
func advance(op string, h winid.Handle, err error) (winid.Handle, error) {
	if err == nil {
		return h, nil
	}
	if IsEndOfChain(err) {
		return winid.Null, nil
	}
	return winid.Null, errors.Wrapf(err, "%s failed", op)
}

// EnumFallback collects every top-level window in one enumeration pass.
// The host is assumed, not guaranteed, to enumerate topmost first.
type EnumFallback struct {
	Native Native
}

var _ Strategy = EnumFallback{}

func (EnumFallback) Name() string { return "enum" }

func (e EnumFallback) All() ([]winid.Handle, error) {
	var handles []winid.Handle
	if err := e.Native.EnumWindows(func(h winid.Handle) {
		handles = append(handles, h)
	}); err != nil {
		return nil, errors.Wrap(err, "EnumWindows failed")
	}
	return handles, nil
}

func (e EnumFallback) Above(target winid.Handle) ([]winid.Handle, error) {
	if target.IsNull() {
		return nil, nil
	}
	handles, err := e.All()
	if err != nil {
		return nil, err
	}
	pos := slices.Index(handles, target)
	if pos < 0 {
		return nil, nil
	}
	return handles[:pos], nil
}
