package cmd

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/mj1618/winzorder/internal/model"
	"github.com/mj1618/winzorder/internal/output"
	"github.com/mj1618/winzorder/internal/platform"
)

var aboveCmd = &cobra.Command{
	Use:   "above <id>",
	Short: "List the windows stacked above a window",
	Long: `List the windows stacked above the given window, topmost first. An ID that
does not decode or names no current window gives an empty list.

With --overlapping, only on-screen windows whose rectangles intersect the
target are kept: the windows that can actually cover it.`,
	Args: cobra.ExactArgs(1),
	RunE: runAbove,
}

func init() {
	rootCmd.AddCommand(aboveCmd)
	aboveCmd.Flags().Bool("overlapping", false, "Only on-screen windows overlapping the target")
}

func runAbove(cmd *cobra.Command, args []string) error {
	id := args[0]
	overlapping, _ := cmd.Flags().GetBool("overlapping")

	source, err := windowSource()
	if err != nil {
		return err
	}
	above, err := source.GetWindowsAbove(id, queryOptions())
	if err != nil {
		return err
	}

	if overlapping {
		target, err := source.GetWindow(id, platform.Light())
		if err != nil {
			return err
		}
		if target == nil {
			above = []model.Window{}
		} else {
			above = model.Occluders(above, *target)
		}
	}

	return output.Fprint(cmd.OutOrStdout(), output.AboveResult{
		Target:  id,
		TS:      time.Now().Unix(),
		Count:   len(above),
		Windows: above,
	})
}
