package model

import "strings"

// FilterWindows applies the optional list filters, keeping stacking order.
// A nil bbox disables the region filter.
func FilterWindows(windows []Window, onScreen bool, bbox *Rect) []Window {
	if !onScreen && bbox == nil {
		return windows
	}
	result := make([]Window, 0, len(windows))
	for _, w := range windows {
		if onScreen && !w.OnScreen() {
			continue
		}
		if bbox != nil && !w.Rect.Intersects(*bbox) {
			continue
		}
		result = append(result, w)
	}
	return result
}

// Occluders returns the windows in above that are on screen and overlap
// target's rectangle.
func Occluders(above []Window, target Window) []Window {
	return FilterWindows(above, true, &target.Rect)
}

// FilterByTitle keeps windows whose title contains text (case-insensitive).
// Windows without a title never match a non-empty text.
func FilterByTitle(windows []Window, text string) []Window {
	if text == "" {
		return windows
	}
	textLower := strings.ToLower(text)
	result := make([]Window, 0, len(windows))
	for _, w := range windows {
		if w.Title != nil && strings.Contains(strings.ToLower(*w.Title), textLower) {
			result = append(result, w)
		}
	}
	return result
}

// FindByID returns the window with the given id, or nil.
func FindByID(windows []Window, id string) *Window {
	for i := range windows {
		if windows[i].ID == id {
			return &windows[i]
		}
	}
	return nil
}
