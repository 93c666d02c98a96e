package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mj1618/winzorder/internal/model"
	"github.com/mj1618/winzorder/internal/output"
	"github.com/mj1618/winzorder/internal/platform"
	"github.com/mj1618/winzorder/internal/render"
)

var zmapCmd = &cobra.Command{
	Use:   "zmap",
	Short: "Render the window stack as a PNG",
	Long: `Draw every listed window's rectangle onto one image, lower windows first,
labelled #0 for the topmost window, #1 for the next, and so on. Windows that
are hidden, minimized or cloaked are drawn in grey.

Examples:
  winzorder zmap --out stack.png
  winzorder zmap --out stack.png --scale 0.25 --on-screen`,
	Args: cobra.NoArgs,
	RunE: runZMap,
}

func init() {
	rootCmd.AddCommand(zmapCmd)
	zmapCmd.Flags().String("out", "", "Output PNG path (required)")
	zmapCmd.Flags().Float64("scale", 0.5, "Image pixels per screen pixel")
	zmapCmd.Flags().Bool("on-screen", false, "Only draw windows that are on screen")
	zmapCmd.MarkFlagRequired("out")
}

// zmapResult is the output of the `zmap` command.
type zmapResult struct {
	Path    string `yaml:"path"    json:"path"`
	Width   int    `yaml:"width"   json:"width"`
	Height  int    `yaml:"height"  json:"height"`
	Windows int    `yaml:"windows" json:"windows"`
}

func runZMap(cmd *cobra.Command, args []string) error {
	outPath, _ := cmd.Flags().GetString("out")
	scale, _ := cmd.Flags().GetFloat64("scale")
	onScreen, _ := cmd.Flags().GetBool("on-screen")

	source, err := windowSource()
	if err != nil {
		return err
	}
	windows, err := source.ListWindows(platform.Light())
	if err != nil {
		return err
	}
	windows = model.FilterWindows(windows, onScreen, nil)

	img, err := render.ZMap(windows, render.Options{Scale: scale})
	if err != nil {
		return err
	}

	f, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", outPath, err)
	}
	if err := render.WritePNG(f, img); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to write %s: %w", outPath, err)
	}

	size := img.Bounds().Size()
	return output.Fprint(cmd.OutOrStdout(), zmapResult{
		Path:    outPath,
		Width:   size.X,
		Height:  size.Y,
		Windows: len(windows),
	})
}
