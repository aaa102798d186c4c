package main

import (
	"fmt"
	"os"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/colorprofile"
	"github.com/spf13/cobra"

	"github.com/Gaurav-Gosain/dragresize/internal/theme"
)

func newThemesCmd() *cobra.Command {
	var preview string
	cmd := &cobra.Command{
		Use:   "themes",
		Short: "List available color themes",
		Example: `  # List all themes
  dragresize themes

  # Show the editor colors of a theme
  dragresize themes --preview dracula`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if preview != "" {
				return previewTheme(cmd, preview)
			}
			for _, id := range theme.Available() {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), id); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&preview, "preview", "", "Preview the editor colors of a theme")
	return cmd
}

func previewTheme(cmd *cobra.Command, name string) error {
	if err := theme.Initialize(name); err != nil {
		return fmt.Errorf("failed to load theme %s: %w", name, err)
	}

	swatch := func(label string, style lipgloss.Style) string {
		return style.Padding(0, 1).Render(label)
	}
	statusBg, statusFg := theme.StatusBar()
	rows := []string{
		swatch("page", lipgloss.NewStyle().Background(theme.DocumentBg()).Foreground(theme.DocumentFg())),
		swatch("image", lipgloss.NewStyle().Background(theme.ImageFill()).Foreground(theme.DocumentFg())),
		swatch("border", lipgloss.NewStyle().Foreground(theme.ImageBorder(false))),
		swatch("selected", lipgloss.NewStyle().Foreground(theme.ImageBorder(true))),
		swatch("resizing", lipgloss.NewStyle().Foreground(theme.ImageResizing())),
		swatch("handle", lipgloss.NewStyle().Foreground(theme.Handle())),
		swatch("active", lipgloss.NewStyle().Foreground(theme.HandleActive())),
		swatch("preview", lipgloss.NewStyle().Background(theme.Preview(0.65))),
		swatch("status", lipgloss.NewStyle().Background(statusBg).Foreground(statusFg)),
	}
	// Swatches are downsampled to what the terminal can show.
	w := &colorprofile.Writer{
		Forward: cmd.OutOrStdout(),
		Profile: colorprofile.Detect(os.Stdout, os.Environ()),
	}
	if _, err := fmt.Fprintf(w, "%s (%s)\n", name, w.Profile); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w, strings.Join(rows, " "))
	return err
}

func newSampleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sample",
		Short: "Print the sample document layout",
		Example: `  # Start a new layout from the sample
  dragresize sample > article.toml
  dragresize edit article.toml`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			data, err := sampleLayout()
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}
