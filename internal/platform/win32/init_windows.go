//go:build windows

package win32

import (
	"fmt"
	"log/slog"

	"github.com/mj1618/winzorder/internal/platform"
	"github.com/mj1618/winzorder/internal/zorder"
)

func init() {
	platform.NewSourceFunc = func(logger *slog.Logger) (platform.WindowSource, error) {
		if err := loadProcs(); err != nil {
			return nil, fmt.Errorf("failed to load window APIs: %w", err)
		}
		return zorder.New(Native{}, logger), nil
	}
}
