package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mj1618/winzorder/internal/output"
)

var getCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Get one window by ID",
	Long: `Look up a window by its win32:<hex> ID. Prints found: false when the ID does
not decode, the window is gone, or it is excluded from listings.`,
	Args: cobra.ExactArgs(1),
	RunE: runGet,
}

func init() {
	rootCmd.AddCommand(getCmd)
}

func runGet(cmd *cobra.Command, args []string) error {
	source, err := windowSource()
	if err != nil {
		return err
	}
	w, err := source.GetWindow(args[0], queryOptions())
	if err != nil {
		return err
	}
	return output.Fprint(cmd.OutOrStdout(), output.NewWindowResult(w))
}
