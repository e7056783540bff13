// Package cmd wires the workspace TUI and its helper commands into cobra.
package cmd

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"github.com/spf13/cobra"

	"github.com/xq773939719/gitbutler/internal/app"
	"github.com/xq773939719/gitbutler/internal/config"
	"github.com/xq773939719/gitbutler/internal/logger"
	"github.com/xq773939719/gitbutler/internal/store"
)

var (
	debugMode             bool
	quietMode             bool
	version, commit, date string
)

// SetVersionInfo sets version information from ldflags
func SetVersionInfo(v, c, d string) {
	version, commit, date = v, c, d
}

var rootCmd = &cobra.Command{
	Use:   "gitbutler-tui",
	Short: "Workspace TUI with constraint-solved pane layout",
	Long: `A workspace shell whose pane widths are computed by a cascading
constraint solver: each pane declares a preferred and minimum width, the
middle pane's floor is reserved up front, and panes give up space in a fixed
order as the window shrinks. Committed widths persist across restarts and
sync between windows.`,
	RunE:          runTUI,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	cobra.OnInitialize(initLogging)
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVarP(&quietMode, "quiet", "q", false, "Reduce logging to info level only")
	rootCmd.AddCommand(solveCmd)
}

func initLogging() {
	if quietMode {
		logger.SetDebug(false)
	} else if debugMode || config.DebugFromEnv() {
		logger.SetDebug(true)
	}
}

// Execute runs the root command
func Execute() error {
	// Set version dynamically
	rootCmd.Version = version
	rootCmd.SetVersionTemplate(versionTemplate())
	return rootCmd.Execute()
}

func versionTemplate() string {
	if commit != "none" && commit != "" {
		return fmt.Sprintf("gitbutler-tui %s\n  commit: %s\n  built:  %s\n", version, commit, date)
	}
	return fmt.Sprintf("gitbutler-tui %s\n", version)
}

func runTUI(cmd *cobra.Command, args []string) error {
	// Load configuration
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

	// Ensure logger is closed on exit
	defer logger.Close()

	// Create and run the app
	m := app.New(cfg, widths)
	p := tea.NewProgram(m)

	// Pick up widths committed by another window
	watcher, err := store.Watch(widths, func() {
		p.Send(app.WidthsReloadedMsg{})
	})
	if err != nil {
		logger.WithComponent("cmd").Warn("width store watcher unavailable", "error", err)
	} else {
		defer watcher.Close()
	}

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running app: %w", err)
	}
	return nil
}
