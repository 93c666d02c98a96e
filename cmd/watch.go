package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/mj1618/winzorder/internal/model"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch the window stack and stream changes as JSONL",
	Long: `Poll the window list and emit changes (added, removed, changed windows) as
JSONL to stdout. A changed window reports the fields that differ; "z" means it
moved relative to the windows present in both listings.

Output is always JSONL regardless of the --format flag. A failed poll emits an
error event and watching continues.

Use Ctrl+C, --duration or --count to stop watching.`,
	Args: cobra.NoArgs,
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
	watchCmd.Flags().Int("interval", 1000, "Polling interval in milliseconds")
	watchCmd.Flags().Int("duration", 0, "Max seconds to watch (0 = until Ctrl+C)")
	watchCmd.Flags().Int("count", 0, "Stop after this many polls (0 = unlimited)")
	watchCmd.Flags().Bool("on-screen", false, "Only track windows that are on screen")
	watchCmd.Flags().Bool("ignore-rect", false, "Ignore window position and size changes")
	watchCmd.Flags().Bool("ignore-z", false, "Ignore stacking order changes")
}

func runWatch(cmd *cobra.Command, args []string) error {
	intervalMs, _ := cmd.Flags().GetInt("interval")
	durationSec, _ := cmd.Flags().GetInt("duration")
	maxPolls, _ := cmd.Flags().GetInt("count")
	onScreen, _ := cmd.Flags().GetBool("on-screen")
	ignoreRect, _ := cmd.Flags().GetBool("ignore-rect")
	ignoreZ, _ := cmd.Flags().GetBool("ignore-z")

	if intervalMs <= 0 {
		return fmt.Errorf("--interval must be positive")
	}

	source, err := windowSource()
	if err != nil {
		return err
	}
	opts := queryOptions()
	list := func() ([]model.Window, error) {
		windows, err := source.ListWindows(opts)
		if err != nil {
			return nil, err
		}
		return model.FilterWindows(windows, onScreen, nil), nil
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()
	if durationSec > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, time.Duration(durationSec)*time.Second)
		defer cancel()
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetEscapeHTML(false)
	start := time.Now()

	// Initial read to establish baseline
	prev, err := list()
	if err != nil {
		return fmt.Errorf("initial list failed: %w", err)
	}
	enc.Encode(map[string]interface{}{
		"type":  "snapshot",
		"ts":    time.Now().Unix(),
		"count": len(prev),
	})

	ticker := time.NewTicker(time.Duration(intervalMs) * time.Millisecond)
	defer ticker.Stop()

	eventCount := 0
poll:
	for polls := 0; maxPolls == 0 || polls < maxPolls; polls++ {
		select {
		case <-ctx.Done():
			break poll
		case <-ticker.C:
		}

		curr, err := list()
		if err != nil {
			logger.Warn("watch poll failed", "error", err)
			enc.Encode(map[string]interface{}{
				"type":  "error",
				"ts":    time.Now().Unix(),
				"error": err.Error(),
			})
			continue
		}

		for _, change := range model.DiffWindows(prev, curr, time.Now().Unix()) {
			if change.Type == model.ChangeChanged {
				if ignoreRect {
					delete(change.Changes, model.FieldRect)
				}
				if ignoreZ {
					delete(change.Changes, model.FieldZ)
				}
				if len(change.Changes) == 0 {
					continue
				}
			}
			enc.Encode(change)
			eventCount++
		}
		prev = curr
	}

	// Emit done event
	elapsed := time.Since(start)
	enc.Encode(map[string]interface{}{
		"type":    "done",
		"ts":      time.Now().Unix(),
		"elapsed": fmt.Sprintf("%.1fs", elapsed.Seconds()),
		"events":  eventCount,
	})
	return nil
}
