package server

import (
	"fmt"

	"github.com/mj1618/winzorder/internal/platform"
)

func stringParam(params map[string]interface{}, key, defaultVal string) string {
	if v, ok := params[key]; ok {
		if s, ok := v.(string); ok {
			return s
		}
		return fmt.Sprintf("%v", v)
	}
	return defaultVal
}

func boolParam(params map[string]interface{}, key string, defaultVal bool) bool {
	if v, ok := params[key]; ok {
		if b, ok := v.(bool); ok {
			return b
		}
	}
	return defaultVal
}

// queryOptions resolves include_title and include_owner_pid against the
// server defaults.
func (s *Server) queryOptions(params map[string]interface{}) platform.QueryOptions {
	return platform.QueryOptions{
		IncludeTitle:    platform.Bool(boolParam(params, "include_title", s.defaults.IncludeTitle)),
		IncludeOwnerPID: platform.Bool(boolParam(params, "include_owner_pid", s.defaults.IncludeOwnerPID)),
	}
}
