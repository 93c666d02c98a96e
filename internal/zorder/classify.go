package zorder

import (
	"github.com/mj1618/winzorder/internal/model"
	"github.com/mj1618/winzorder/internal/platform"
	"github.com/mj1618/winzorder/internal/winid"
)

// Extended style bits that disqualify a window.
const (
	ExToolWindow uint32 = 0x00000080 // WS_EX_TOOLWINDOW
	ExNoActivate uint32 = 0x08000000 // WS_EX_NOACTIVATE
)

// Excluded reports whether exStyle marks a palette/tooltip or a window that
// never takes activation.
func Excluded(exStyle uint32) bool {
	return exStyle&(ExToolWindow|ExNoActivate) != 0
}

// Classifier applies the inclusion test and snapshots qualifying windows.
// Both enumeration strategies feed handles through the same Classifier.
type Classifier struct {
	Native Native
}

// Classify returns a snapshot of h, or false if h does not qualify. Windows
// that are closing or offscreen routinely fail here; that is not an error.
func (c Classifier) Classify(h winid.Handle, opts platform.ResolvedOptions) (model.Window, bool) {
	if h.IsNull() {
		return model.Window{}, false
	}

	rect, err := c.Native.WindowRect(h)
	if err != nil || rect.Empty() {
		return model.Window{}, false
	}

	exStyle := c.Native.ExStyle(h)
	if Excluded(exStyle) {
		return model.Window{}, false
	}

	w := model.Window{
		ID:          winid.Encode(h),
		Rect:        rect,
		IsVisible:   c.Native.IsVisible(h),
		IsMinimized: c.Native.IsMinimized(h),
		IsCloaked:   c.Native.IsCloaked(h),
		ExStyle:     exStyle,
	}

	if opts.IncludeTitle {
		if title, err := c.Native.Title(h); err == nil && title != "" {
			w.Title = &title
		}
	}

	if opts.IncludeOwnerPID {
		pid := c.Native.OwnerPID(h)
		w.OwnerPID = &pid
	}

	return w, true
}
