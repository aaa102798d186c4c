// Package tape implements dragresize scripts: line-oriented command files
// that replay selections and drags against a document without a terminal.
package tape

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// CommandType identifies a tape command.
type CommandType string

// Tape commands.
const (
	CommandTypeSelect CommandType = "Select"
	CommandTypeNext   CommandType = "Next"
	CommandTypePrev   CommandType = "Prev"
	CommandTypeDrag   CommandType = "Drag"
	CommandTypeUndo   CommandType = "Undo"
	CommandTypeRedo   CommandType = "Redo"
	CommandTypeSnap   CommandType = "Snap"
	CommandTypeSave   CommandType = "Save"
)

// arity holds the minimum and maximum argument count per command.
var arity = map[CommandType][2]int{
	CommandTypeSelect: {1, 1},
	CommandTypeNext:   {0, 0},
	CommandTypePrev:   {0, 0},
	CommandTypeDrag:   {3, 4},
	CommandTypeUndo:   {0, 0},
	CommandTypeRedo:   {0, 0},
	CommandTypeSnap:   {1, 1},
	CommandTypeSave:   {0, 1},
}

// Command is one parsed tape line.
type Command struct {
	Type CommandType
	Args []string
	Line int
}

func (c *Command) String() string {
	if len(c.Args) == 0 {
		return string(c.Type)
	}
	return string(c.Type) + " " + strings.Join(c.Args, " ")
}

// ParseError reports a malformed tape line.
type ParseError struct {
	Line int
	Msg  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Msg)
}

// Parse reads a tape script. Blank lines and lines starting with # are
// skipped; command names are case-insensitive; arguments may be double
// quoted.
func Parse(r io.Reader) ([]Command, error) {
	var cmds []Command
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		fields, err := splitFields(text)
		if err != nil {
			return nil, &ParseError{Line: line, Msg: err.Error()}
		}
		cmd, err := newCommand(fields, line)
		if err != nil {
			return nil, err
		}
		cmds = append(cmds, cmd)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to read tape: %w", err)
	}
	return cmds, nil
}

func newCommand(fields []string, line int) (Command, error) {
	var typ CommandType
	for t := range arity {
		if strings.EqualFold(string(t), fields[0]) {
			typ = t
			break
		}
	}
	if typ == "" {
		return Command{}, &ParseError{Line: line, Msg: fmt.Sprintf("unknown command %q", fields[0])}
	}
	args := fields[1:]
	bounds := arity[typ]
	if len(args) < bounds[0] || len(args) > bounds[1] {
		return Command{}, &ParseError{Line: line, Msg: fmt.Sprintf("%s takes %d to %d arguments, got %d", typ, bounds[0], bounds[1], len(args))}
	}
	return Command{Type: typ, Args: args, Line: line}, nil
}

// splitFields splits on whitespace, keeping double-quoted runs together.
func splitFields(s string) ([]string, error) {
	var (
		fields []string
		cur    strings.Builder
		quoted bool
		inWord bool
	)
	for _, r := range s {
		switch {
		case r == '"':
			quoted = !quoted
			inWord = true
		case !quoted && (r == ' ' || r == '\t'):
			if inWord {
				fields = append(fields, cur.String())
				cur.Reset()
				inWord = false
			}
		default:
			cur.WriteRune(r)
			inWord = true
		}
	}
	if quoted {
		return nil, fmt.Errorf("unterminated quote")
	}
	if inWord {
		fields = append(fields, cur.String())
	}
	return fields, nil
}
