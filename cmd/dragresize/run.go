package main

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "charm.land/bubbletea/v2"
	"charm.land/log/v2"
	"golang.org/x/term"

	"github.com/Gaurav-Gosain/dragresize/internal/app"
	"github.com/Gaurav-Gosain/dragresize/internal/config"
	"github.com/Gaurav-Gosain/dragresize/internal/document"
	"github.com/Gaurav-Gosain/dragresize/internal/input"
	"github.com/Gaurav-Gosain/dragresize/internal/logging"
	"github.com/Gaurav-Gosain/dragresize/internal/resizer"
)

// filterMouseMotion drops pointer motion unless a drag is running. Hover
// has no effect in the editor and would only cause redraws.
func filterMouseMotion(model tea.Model, msg tea.Msg) tea.Msg {
	if _, ok := msg.(tea.MouseMotionMsg); !ok {
		return msg
	}
	e, ok := model.(*app.Editor)
	if !ok {
		return msg
	}
	if e.Resizer.State() == resizer.StateDragging {
		return msg
	}
	return nil
}

// cliOverrides collects the persistent flags.
func cliOverrides() config.Overrides {
	o := config.Overrides{
		ASCIIOnly:   asciiOnly,
		BorderStyle: borderStyle,
		ThemeName:   themeName,
		MinSize:     minSize,
		NoSnap:      noSnap,
		LogLevel:    logLevel,
		LogFile:     logFile,
	}
	if snapTo >= 0 {
		v := snapTo
		o.SnapToSize = &v
	}
	return o
}

// loadConfig reads the user config and applies the CLI flags on top.
func loadConfig() *config.UserConfig {
	userConfig, err := config.LoadUserConfig()
	if err != nil {
		log.Warn("failed to load config, using defaults", "err", err)
		userConfig = config.DefaultConfig()
	}
	return config.ApplyOverrides(cliOverrides(), userConfig)
}

func loadDocument(path string) (*document.Document, error) {
	if path == "" {
		return document.Sample(), nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("document %s does not exist, create one with: dragresize sample > %s", path, path)
	}
	return document.Load(path)
}

// errNoTerminal is returned when the editor is started without a terminal.
var errNoTerminal = errors.New("dragresize edit needs an interactive terminal; use 'dragresize tape play' for scripted resizes")

func runEdit(path string) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return errNoTerminal
	}

	userConfig := loadConfig()
	if v := config.ValidateConfig(userConfig); v.HasErrors() {
		for _, issue := range v.Errors {
			fmt.Fprintf(os.Stderr, "Config error in [%s]: %s - %s\n", issue.Field, issue.Key, issue.Message)
		}
		return errors.New("invalid flags or configuration")
	}

	logger, closer, err := logging.New(userConfig.Log.Level, userConfig.Log.File)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := closer.Close(); closeErr != nil {
			log.Warn("failed to close log file", "err", closeErr)
		}
	}()

	doc, err := loadDocument(path)
	if err != nil {
		return err
	}
	logger.Info("editing", "path", path, "images", len(doc.ImageList()))

	app.SetInputHandler(input.HandleInput)
	editor := app.New(doc, path, userConfig, logger)

	p := tea.NewProgram(
		editor,
		tea.WithFPS(config.NormalFPS),
		tea.WithoutSignalHandler(),
		tea.WithFilter(filterMouseMotion),
	)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		p.Send(tea.QuitMsg{})
	}()

	finalModel, err := p.Run()
	if err != nil {
		return fmt.Errorf("program error: %w", err)
	}

	if final, ok := finalModel.(*app.Editor); ok {
		final.Shutdown()
		if final.Doc.Modified() && path != "" {
			fmt.Fprintf(os.Stderr, "Warning: unsaved changes to %s were discarded\n", path)
		}
	}
	return nil
}
