package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/Gaurav-Gosain/dragresize/internal/app"
	"github.com/Gaurav-Gosain/dragresize/internal/config"
	"github.com/Gaurav-Gosain/dragresize/internal/logging"
	"github.com/Gaurav-Gosain/dragresize/internal/tape"
)

func newTapeCmd() *cobra.Command {
	tapeCmd := &cobra.Command{
		Use:   "tape",
		Short: "Run and check .tape resize scripts",
		Long: `Run and check .tape resize scripts

A tape is a list of editor commands, one per line:

  Select <index|name>      select an image by position (1-based) or alt text
  Next / Prev              cycle the selection
  Drag <handle> <dx> <dy> [shift]
                           drag a handle (tl tm tr lm rm bl bm br) by pixels
  Undo / Redo              step through the resize history
  Snap on|off              toggle snapping to other image sizes
  Save [path]              write the document

Lines starting with # are comments.`,
		Example: `  # Print the layout a tape produces
  dragresize tape play widen.tape article.toml

  # Apply a tape to a file in place
  dragresize tape play widen.tape article.toml --write

  # Check a tape file
  dragresize tape validate widen.tape`,
	}

	var write bool
	playCmd := &cobra.Command{
		Use:   "play <file.tape> [document]",
		Short: "Run a tape against a document without the UI",
		Long: `Run a tape against a document without the UI.

The resulting layout is printed to stdout unless --write is given. Without a
document the built-in sample is used.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			docPath := ""
			if len(args) > 1 {
				docPath = args[1]
			}
			return runTape(cmd.OutOrStdout(), args[0], docPath, write)
		},
	}
	playCmd.Flags().BoolVarP(&write, "write", "w", false, "Save the result back to the document file")

	validateCmd := &cobra.Command{
		Use:   "validate <file.tape>",
		Short: "Validate a tape file without running it",
		Long:  `Check if a tape file is syntactically correct`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return validateTapeFile(cmd.OutOrStdout(), args[0])
		},
	}

	tapeCmd.AddCommand(playCmd, validateCmd)
	return tapeCmd
}

func parseTapeFile(path string) ([]tape.Command, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open tape: %w", err)
	}
	defer func() { _ = f.Close() }()

	cmds, err := tape.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cmds, nil
}

func validateTapeFile(w io.Writer, path string) error {
	cmds, err := parseTapeFile(path)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "%s: %d commands OK\n", path, len(cmds))
	return err
}

func runTape(w io.Writer, tapePath, docPath string, write bool) error {
	if write && docPath == "" {
		return errors.New("--write needs a document file")
	}

	cmds, err := parseTapeFile(tapePath)
	if err != nil {
		return err
	}

	userConfig := loadConfig()
	if v := config.ValidateConfig(userConfig); v.HasErrors() {
		return fmt.Errorf("invalid configuration: %s - %s", v.Errors[0].Key, v.Errors[0].Message)
	}
	logger, closer, err := logging.New(userConfig.Log.Level, userConfig.Log.File)
	if err != nil {
		return err
	}
	defer func() { _ = closer.Close() }()

	doc, err := loadDocument(docPath)
	if err != nil {
		return err
	}

	editor := app.New(doc, docPath, userConfig, logger)
	if err := editor.RunTape(cmds); err != nil {
		return fmt.Errorf("%s: %w", tapePath, err)
	}
	editor.Shutdown()

	if write {
		return editor.Save()
	}
	data, err := doc.Marshal()
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}
