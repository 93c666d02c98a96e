package platform

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mj1618/winzorder/internal/model"
)

// QueryOptions is the caller-facing option set. A nil field takes its
// default, which is true for both.
type QueryOptions struct {
	IncludeTitle    *bool `yaml:"include_title,omitempty"     json:"includeTitle,omitempty"`
	IncludeOwnerPID *bool `yaml:"include_owner_pid,omitempty" json:"includeOwnerPid,omitempty"`
}

// ResolvedOptions is QueryOptions with defaults applied.
type ResolvedOptions struct {
	IncludeTitle    bool
	IncludeOwnerPID bool
}

// Resolve applies defaults to o.
func (o QueryOptions) Resolve() ResolvedOptions {
	return ResolvedOptions{
		IncludeTitle:    boolOr(o.IncludeTitle, true),
		IncludeOwnerPID: boolOr(o.IncludeOwnerPID, true),
	}
}

// Light returns options that skip title and owner lookups, for callers that
// only need geometry and stacking.
func Light() QueryOptions {
	return QueryOptions{IncludeTitle: Bool(false), IncludeOwnerPID: Bool(false)}
}

// Bool returns a pointer to v.
func Bool(v bool) *bool {
	return &v
}

func boolOr(p *bool, def bool) bool {
	if p == nil {
		return def
	}
	return *p
}

// ParseBBox parses a "x,y,w,h" string into a screen rectangle.
func ParseBBox(s string) (model.Rect, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return model.Rect{}, fmt.Errorf("invalid bbox %q: expected x,y,w,h", s)
	}
	vals := make([]int32, 4)
	for i, p := range parts {
		v, err := strconv.ParseInt(strings.TrimSpace(p), 10, 32)
		if err != nil {
			return model.Rect{}, fmt.Errorf("invalid bbox %q: %w", s, err)
		}
		vals[i] = int32(v)
	}
	if vals[2] <= 0 || vals[3] <= 0 {
		return model.Rect{}, fmt.Errorf("invalid bbox %q: width and height must be positive", s)
	}
	return model.Rect{
		Left:   vals[0],
		Top:    vals[1],
		Right:  vals[0] + vals[2],
		Bottom: vals[1] + vals[3],
	}, nil
}
