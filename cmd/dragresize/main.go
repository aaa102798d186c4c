// Package main implements dragresize, a terminal editor for resizing the
// images of a document layout by dragging their handles.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
)

// Version information (set by goreleaser)
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
	builtBy = "unknown"
)

// Global flags
var (
	asciiOnly   bool
	themeName   string
	borderStyle string
	minSize     float64
	snapTo      float64 = -1 // negative means unset
	noSnap      bool
	logLevel    string
	logFile     string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "dragresize [file]",
		Short: "Resize document images by dragging",
		Long: `dragresize - drag-resize images in a document layout

Opens a TOML document layout in the terminal. Click an image to show its
eight resize handles, drag a handle to resize. Corners keep the aspect
ratio unless shift is held; sizes snap to other images when close.`,
		Example: `  # Open the built-in sample document
  dragresize

  # Edit a layout file
  dragresize edit article.toml

  # Disable snapping and use a theme
  dragresize edit article.toml --no-snap --theme dracula

  # Compute a resize without the UI
  dragresize calc --size 240x160 --handle br --delta 80,0

  # Replay a resize script
  dragresize tape play widen.tape article.toml --write`,
		Version: version,
		Args:    cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runEdit(firstArg(args))
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().BoolVar(&asciiOnly, "ascii-only", false, "Use ASCII glyphs instead of box drawing characters")
	rootCmd.PersistentFlags().StringVar(&themeName, "theme", "", "Color theme to use (e.g., dracula, nord). Leave empty for the built-in palette")
	rootCmd.PersistentFlags().StringVar(&borderStyle, "border-style", "", "Image border style: rounded, normal, thick, double, hidden, block, ascii (default: from config or rounded)")
	rootCmd.PersistentFlags().Float64Var(&minSize, "min-size", 0, "Smallest width or height a drag can produce (default: from config or 32)")
	rootCmd.PersistentFlags().Float64Var(&snapTo, "snap", -1, "Snap threshold in pixels, 0 disables (default: from config or 7)")
	rootCmd.PersistentFlags().BoolVar(&noSnap, "no-snap", false, "Disable snapping to other image sizes")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error, off (default: from config or off)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Write logs to this file")

	editCmd := &cobra.Command{
		Use:   "edit [file]",
		Short: "Open a document layout for editing",
		Long: `Open a TOML document layout for editing.

Without a file the built-in sample document is opened; it cannot be saved.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runEdit(firstArg(args))
		},
	}

	rootCmd.AddCommand(editCmd, newCalcCmd(), newTapeCmd(), newConfigCmd(), newThemesCmd(), newSampleCmd())

	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(fmt.Sprintf("%s\nCommit: %s\nBuilt: %s\nBy: %s", version, commit, date, builtBy)),
	); err != nil {
		os.Exit(1)
	}
}

func firstArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}
