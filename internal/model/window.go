package model

// Rect is a window rectangle in physical screen coordinates. Right and
// Bottom are exclusive.
type Rect struct {
	Left   int32 `yaml:"left"   json:"left"`
	Top    int32 `yaml:"top"    json:"top"`
	Right  int32 `yaml:"right"  json:"right"`
	Bottom int32 `yaml:"bottom" json:"bottom"`
}

// Width returns Right-Left, which is not positive for a degenerate rect.
func (r Rect) Width() int32 {
	return r.Right - r.Left
}

// Height returns Bottom-Top, which is not positive for a degenerate rect.
func (r Rect) Height() int32 {
	return r.Bottom - r.Top
}

// Empty reports whether r has no area.
func (r Rect) Empty() bool {
	return r.Width() <= 0 || r.Height() <= 0
}

// Intersects reports whether r and o share any area.
func (r Rect) Intersects(o Rect) bool {
	if r.Empty() || o.Empty() {
		return false
	}
	return r.Left < o.Right && o.Left < r.Right && r.Top < o.Bottom && o.Top < r.Bottom
}

// Union returns the smallest rect containing both r and o. An empty operand
// is ignored.
func (r Rect) Union(o Rect) Rect {
	if r.Empty() {
		return o
	}
	if o.Empty() {
		return r
	}
	return Rect{
		Left:   min(r.Left, o.Left),
		Top:    min(r.Top, o.Top),
		Right:  max(r.Right, o.Right),
		Bottom: max(r.Bottom, o.Bottom),
	}
}

// Window is a snapshot of one top-level window taken during a single query.
// Two snapshots of the same window are related only by ID.
type Window struct {
	ID          string  `yaml:"id"                 json:"id"`
	Rect        Rect    `yaml:"rect"               json:"rect"`
	IsVisible   bool    `yaml:"isVisible"          json:"isVisible"`
	IsMinimized bool    `yaml:"isMinimized"        json:"isMinimized"`
	IsCloaked   bool    `yaml:"isCloaked"          json:"isCloaked"`
	ExStyle     uint32  `yaml:"exStyle"            json:"exStyle"`
	Title       *string `yaml:"title,omitempty"    json:"title,omitempty"`
	OwnerPID    *uint32 `yaml:"ownerPid,omitempty" json:"ownerPid,omitempty"`
}

// OnScreen reports whether the window is actually composited: shown by its
// own flags, not minimized and not cloaked.
func (w Window) OnScreen() bool {
	return w.IsVisible && !w.IsMinimized && !w.IsCloaked
}
