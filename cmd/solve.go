package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/xq773939719/gitbutler/internal/config"
	"github.com/xq773939719/gitbutler/internal/layout"
	"github.com/xq773939719/gitbutler/internal/store"
	"github.com/xq773939719/gitbutler/internal/unit"
	"github.com/xq773939719/gitbutler/internal/viewport"
)

var (
	solveWidth   float64
	solveZoom    float64
	solveFolded  bool
	solvePreview bool
	solveRight   bool
)

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Solve pane widths for a container width and print them",
	Long: `Solve runs the layout engine headlessly against the current
configuration and remembered pane widths, printing the width each pane
would get at the given container width.`,
	RunE: runSolve,
}

func init() {
	solveCmd.Flags().Float64Var(&solveWidth, "width", config.DefaultFallbackWidth, "Container width in device pixels")
	solveCmd.Flags().Float64Var(&solveZoom, "zoom", 0, "Zoom factor (0 uses the configured zoom)")
	solveCmd.Flags().BoolVar(&solveFolded, "folded", false, "Fold the left panel")
	solveCmd.Flags().BoolVar(&solvePreview, "preview", false, "Show the preview panel")
	solveCmd.Flags().BoolVar(&solveRight, "right", false, "Show the right panel")
}

func runSolve(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	storePath, err := config.WidthStorePath()
	if err != nil {
		return fmt.Errorf("error resolving width store path: %w", err)
	}
	widths, err := store.OpenFileStore(storePath)
	if err != nil {
		return fmt.Errorf("error opening width store: %w", err)
	}

	zoom := solveZoom
	if zoom == 0 {
		zoom = cfg.GetZoom()
	}

	vp := viewport.New(layout.DefaultEngine(), viewport.Config{
		LayoutName:  cfg.GetLayoutName(),
		FrameChrome: cfg.FrameChrome,
		Left:        toPaneConfig(cfg.GetPane("left")),
		Preview:     toPaneConfig(cfg.GetPane("preview")),
		Right:       toPaneConfig(cfg.GetPane("right")),
	}, widths)
	vp.SetZoom(unit.Zoom(zoom))
	vp.SetFolded(solveFolded)
	vp.SetPreviewVisible(solvePreview)
	vp.SetRightVisible(solveRight)
	vp.SetContainerWidth(solveWidth)

	res := vp.Widths()
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "container %.0fpx  zoom %.2g  layout %s\n", solveWidth, zoom, cfg.GetLayoutName())
	fmt.Fprintf(out, "  left     %6.0fpx\n", res.Left.Pixels(unit.Zoom(zoom)))
	if solvePreview {
		fmt.Fprintf(out, "  preview  %6.0fpx\n", res.Preview.Pixels(unit.Zoom(zoom)))
	}
	fmt.Fprintf(out, "  middle  >=%5.0fpx\n", res.MiddleMin.Pixels(unit.Zoom(zoom)))
	if solveRight {
		fmt.Fprintf(out, "  right    %6.0fpx\n", res.Right.Pixels(unit.Zoom(zoom)))
	}
	return nil
}

func toPaneConfig(w config.PaneWidths) viewport.PaneConfig {
	return viewport.PaneConfig{Default: w.Default, Min: w.Min}
}
