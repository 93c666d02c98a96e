package model

import "fmt"

// ChangeType represents the kind of window change detected.
type ChangeType string

const (
	ChangeAdded   ChangeType = "added"
	ChangeRemoved ChangeType = "removed"
	ChangeChanged ChangeType = "changed"
)

// Changed field keys.
const (
	FieldRect      = "rect"
	FieldZ         = "z"
	FieldVisible   = "visible"
	FieldMinimized = "minimized"
	FieldCloaked   = "cloaked"
	FieldExStyle   = "exStyle"
	FieldTitle     = "title"
	FieldOwnerPID  = "ownerPid"
)

// WindowChange represents a single change between two listings.
type WindowChange struct {
	Type    ChangeType           `json:"type"`
	TS      int64                `json:"ts"`
	ID      string               `json:"id"`
	Window  *Window              `json:"window,omitempty"`  // For added: the full window
	Title   *string              `json:"title,omitempty"`   // For removed: last known title
	Changes map[string][2]string `json:"changes,omitempty"` // For changed: field diffs
}

// DiffWindows compares two listings, each topmost first, and returns the
// changes stamped with ts. Windows are matched by ID. A z change means the
// window moved relative to the windows present in both listings, so windows
// appearing or disappearing do not shift everyone else.
func DiffWindows(prev, curr []Window, ts int64) []WindowChange {
	prevMap := make(map[string]Window, len(prev))
	for _, w := range prev {
		prevMap[w.ID] = w
	}
	currMap := make(map[string]Window, len(curr))
	for _, w := range curr {
		currMap[w.ID] = w
	}
	prevRank := commonRanks(prev, currMap)
	currRank := commonRanks(curr, prevMap)

	var changes []WindowChange

	// Check for added and changed windows
	for _, w := range curr {
		prevW, existed := prevMap[w.ID]
		if !existed {
			wCopy := w
			changes = append(changes, WindowChange{
				Type:   ChangeAdded,
				TS:     ts,
				ID:     w.ID,
				Window: &wCopy,
			})
			continue
		}
		diffs := diffProperties(prevW, w)
		if prevRank[w.ID] != currRank[w.ID] {
			if diffs == nil {
				diffs = make(map[string][2]string)
			}
			diffs[FieldZ] = [2]string{
				fmt.Sprintf("%d", prevRank[w.ID]),
				fmt.Sprintf("%d", currRank[w.ID]),
			}
		}
		if len(diffs) > 0 {
			changes = append(changes, WindowChange{
				Type:    ChangeChanged,
				TS:      ts,
				ID:      w.ID,
				Changes: diffs,
			})
		}
	}

	// Check for removed windows
	for _, w := range prev {
		if _, exists := currMap[w.ID]; !exists {
			changes = append(changes, WindowChange{
				Type:  ChangeRemoved,
				TS:    ts,
				ID:    w.ID,
				Title: w.Title,
			})
		}
	}

	return changes
}

// commonRanks numbers the windows of list that also appear in other, in
// list order.
func commonRanks(list []Window, other map[string]Window) map[string]int {
	ranks := make(map[string]int, len(list))
	for _, w := range list {
		if _, ok := other[w.ID]; ok {
			ranks[w.ID] = len(ranks)
		}
	}
	return ranks
}

// diffProperties compares two snapshots of a window and returns changed fields.
func diffProperties(prev, curr Window) map[string][2]string {
	diffs := make(map[string][2]string)

	if prev.Rect != curr.Rect {
		diffs[FieldRect] = [2]string{formatRect(prev.Rect), formatRect(curr.Rect)}
	}
	if prev.IsVisible != curr.IsVisible {
		diffs[FieldVisible] = [2]string{
			fmt.Sprintf("%v", prev.IsVisible),
			fmt.Sprintf("%v", curr.IsVisible),
		}
	}
	if prev.IsMinimized != curr.IsMinimized {
		diffs[FieldMinimized] = [2]string{
			fmt.Sprintf("%v", prev.IsMinimized),
			fmt.Sprintf("%v", curr.IsMinimized),
		}
	}
	if prev.IsCloaked != curr.IsCloaked {
		diffs[FieldCloaked] = [2]string{
			fmt.Sprintf("%v", prev.IsCloaked),
			fmt.Sprintf("%v", curr.IsCloaked),
		}
	}
	if prev.ExStyle != curr.ExStyle {
		diffs[FieldExStyle] = [2]string{
			fmt.Sprintf("%#x", prev.ExStyle),
			fmt.Sprintf("%#x", curr.ExStyle),
		}
	}
	if p, c := derefString(prev.Title), derefString(curr.Title); p != c {
		diffs[FieldTitle] = [2]string{p, c}
	}
	if p, c := derefPID(prev.OwnerPID), derefPID(curr.OwnerPID); p != c {
		diffs[FieldOwnerPID] = [2]string{p, c}
	}

	if len(diffs) == 0 {
		return nil
	}
	return diffs
}

func formatRect(r Rect) string {
	return fmt.Sprintf("[%d,%d,%d,%d]", r.Left, r.Top, r.Right, r.Bottom)
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func derefPID(p *uint32) string {
	if p == nil {
		return ""
	}
	return fmt.Sprintf("%d", *p)
}
