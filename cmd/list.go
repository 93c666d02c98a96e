package cmd

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/mj1618/winzorder/internal/model"
	"github.com/mj1618/winzorder/internal/output"
	"github.com/mj1618/winzorder/internal/platform"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List top-level windows in z-order",
	Long: `List top-level windows topmost first, with their ID, rectangle, visibility,
minimized and cloaked state, extended style, title and owning process ID.
Tool windows and windows that never activate are excluded.`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().Bool("on-screen", false, "Only windows that are visible, not minimized and not cloaked")
	listCmd.Flags().String("bbox", "", "Only windows intersecting this region: x,y,width,height")
	listCmd.Flags().String("title", "", "Only windows whose title contains this text (case-insensitive)")
}

func runList(cmd *cobra.Command, args []string) error {
	onScreen, _ := cmd.Flags().GetBool("on-screen")
	bboxStr, _ := cmd.Flags().GetString("bbox")
	title, _ := cmd.Flags().GetString("title")

	var bbox *model.Rect
	if bboxStr != "" {
		r, err := platform.ParseBBox(bboxStr)
		if err != nil {
			return err
		}
		bbox = &r
	}

	source, err := windowSource()
	if err != nil {
		return err
	}
	opts := queryOptions()
	if title != "" {
		// Filtering by title needs the titles, whatever --no-title says.
		opts.IncludeTitle = platform.Bool(true)
	}
	windows, err := source.ListWindows(opts)
	if err != nil {
		return err
	}
	windows = model.FilterWindows(windows, onScreen, bbox)
	windows = model.FilterByTitle(windows, title)

	return output.Fprint(cmd.OutOrStdout(), output.NewListResult(time.Now().Unix(), windows))
}
