package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mj1618/winzorder/internal/output"
)

var foregroundCmd = &cobra.Command{
	Use:   "foreground",
	Short: "Get the foreground window",
	Long:  "Print the window that currently has focus, or found: false when there is none or it is excluded.",
	Args:  cobra.NoArgs,
	RunE:  runForeground,
}

func init() {
	rootCmd.AddCommand(foregroundCmd)
}

func runForeground(cmd *cobra.Command, args []string) error {
	source, err := windowSource()
	if err != nil {
		return err
	}
	w, err := source.GetForegroundWindow(queryOptions())
	if err != nil {
		return err
	}
	return output.Fprint(cmd.OutOrStdout(), output.NewWindowResult(w))
}
