package tape

import (
	"fmt"
	"strconv"
	"strings"
)

// Executor executes tape commands by directly manipulating the editor state.
type Executor interface {
	// Selection
	SelectByIndex(index int) error // 1-based, document order
	SelectByName(name string) error
	NextImage() error
	PrevImage() error

	// Drag performs a complete drag of handle by (dx, dy) pixels.
	Drag(handle string, dx, dy float64, shift bool) error

	Undo() error
	Redo() error
	SetSnap(on bool) error
	// SaveTo writes the document; an empty path means its own file.
	SaveTo(path string) error
}

// CommandExecutor provides a default implementation
type CommandExecutor struct {
	executor Executor
}

// NewCommandExecutor creates a new command executor
func NewCommandExecutor(executor Executor) *CommandExecutor {
	return &CommandExecutor{executor: executor}
}

// Run executes cmds in order and stops at the first error.
func (ce *CommandExecutor) Run(cmds []Command) error {
	for i := range cmds {
		if err := ce.Execute(&cmds[i]); err != nil {
			return fmt.Errorf("line %d (%s): %w", cmds[i].Line, cmds[i].String(), err)
		}
	}
	return nil
}

// Execute executes a command
func (ce *CommandExecutor) Execute(cmd *Command) error {
	if ce.executor == nil {
		return nil
	}

	switch cmd.Type {
	case CommandTypeSelect:
		// A number selects by position, anything else by name.
		if n, err := strconv.Atoi(cmd.Args[0]); err == nil {
			return ce.executor.SelectByIndex(n)
		}
		return ce.executor.SelectByName(cmd.Args[0])

	case CommandTypeNext:
		return ce.executor.NextImage()

	case CommandTypePrev:
		return ce.executor.PrevImage()

	case CommandTypeDrag:
		dx, err := strconv.ParseFloat(cmd.Args[1], 64)
		if err != nil {
			return fmt.Errorf("bad dx %q", cmd.Args[1])
		}
		dy, err := strconv.ParseFloat(cmd.Args[2], 64)
		if err != nil {
			return fmt.Errorf("bad dy %q", cmd.Args[2])
		}
		shift := false
		if len(cmd.Args) == 4 {
			if !strings.EqualFold(cmd.Args[3], "shift") {
				return fmt.Errorf("unknown drag modifier %q", cmd.Args[3])
			}
			shift = true
		}
		return ce.executor.Drag(strings.ToLower(cmd.Args[0]), dx, dy, shift)

	case CommandTypeUndo:
		return ce.executor.Undo()

	case CommandTypeRedo:
		return ce.executor.Redo()

	case CommandTypeSnap:
		switch strings.ToLower(cmd.Args[0]) {
		case "on", "true":
			return ce.executor.SetSnap(true)
		case "off", "false":
			return ce.executor.SetSnap(false)
		}
		return fmt.Errorf("snap expects on or off, got %q", cmd.Args[0])

	case CommandTypeSave:
		path := ""
		if len(cmd.Args) > 0 {
			path = cmd.Args[0]
		}
		return ce.executor.SaveTo(path)
	}

	return fmt.Errorf("unsupported command %s", cmd.Type)
}
