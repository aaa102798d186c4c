package theme

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"charm.land/log/v2"
	"github.com/adrg/xdg"
	tint "github.com/lrstanley/bubbletint/v2"
)

// themeExt is the extension of user theme files.
const themeExt = ".json"

// ThemesDir returns the directory holding user themes, creating it when
// missing.
func ThemesDir() (string, error) {
	marker, err := xdg.ConfigFile(filepath.Join("dragresize", "themes", ".keep"))
	if err != nil {
		return "", fmt.Errorf("failed to resolve themes directory: %w", err)
	}
	return filepath.Dir(marker), nil
}

// registerUserThemes registers the user theme directory, if any. Failures
// only cost the user their custom themes.
func registerUserThemes() {
	dir, err := ThemesDir()
	if err != nil {
		log.Warn("custom themes unavailable", "err", err)
		return
	}
	if _, err := RegisterDir(dir); err != nil {
		log.Warn("custom themes unavailable", "dir", dir, "err", err)
	}
}

// RegisterDir registers every theme file in dir with bubbletint and
// returns the IDs it registered, sorted. Unreadable themes are logged and
// skipped.
func RegisterDir(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list themes: %w", err)
	}

	var ids []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), themeExt) {
			continue
		}
		t, err := ReadThemeFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			log.Warn("ignoring theme", "file", entry.Name(), "err", err)
			continue
		}
		tint.Register(t)
		ids = append(ids, t.ID)
	}
	slices.Sort(ids)
	return ids, nil
}

// ReadThemeFile decodes a bubbletint theme. The ID defaults to the lower
// cased file name and the display name to the ID. Colours the file leaves
// out are filled in.
func ReadThemeFile(path string) (*tint.Tint, error) {
	f, err := os.Open(path) // #nosec G304 -- user theme directory
	if err != nil {
		return nil, fmt.Errorf("failed to open theme: %w", err)
	}
	defer func() { _ = f.Close() }()

	t := new(tint.Tint)
	if err := json.NewDecoder(f).Decode(t); err != nil {
		return nil, fmt.Errorf("invalid theme %s: %w", filepath.Base(path), err)
	}

	if t.ID == "" {
		t.ID = idFromPath(path)
	}
	if t.ID == "" {
		return nil, errors.New("theme has no id")
	}
	if t.DisplayName == "" {
		t.DisplayName = t.ID
	}
	completePalette(t)
	return t, nil
}

func idFromPath(path string) string {
	name := filepath.Base(path)
	return strings.ToLower(strings.TrimSuffix(name, filepath.Ext(name)))
}

// completePalette gives every nil colour a value: xterm defaults for the
// base colours, the base colour for each bright variant, fg for the cursor.
func completePalette(t *tint.Tint) {
	base := []struct {
		c   **tint.Color
		hex string
	}{
		{&t.Fg, "#e5e5e5"},
		{&t.Bg, "#000000"},
	}
	for _, b := range base {
		if *b.c == nil {
			*b.c = tint.FromHex(b.hex)
		}
	}
	if t.Cursor == nil {
		t.Cursor = cloneColor(t.Fg)
	}

	pairs := []struct {
		normal, bright **tint.Color
		hex            string
	}{
		{&t.Black, &t.BrightBlack, "#000000"},
		{&t.Red, &t.BrightRed, "#cd0000"},
		{&t.Green, &t.BrightGreen, "#00cd00"},
		{&t.Yellow, &t.BrightYellow, "#cdcd00"},
		{&t.Blue, &t.BrightBlue, "#0000ee"},
		{&t.Purple, &t.BrightPurple, "#cd00cd"},
		{&t.Cyan, &t.BrightCyan, "#00cdcd"},
		{&t.White, &t.BrightWhite, "#e5e5e5"},
	}
	for _, p := range pairs {
		if *p.normal == nil {
			*p.normal = tint.FromHex(p.hex)
		}
		if *p.bright == nil {
			*p.bright = cloneColor(*p.normal)
		}
	}
}

func cloneColor(c *tint.Color) *tint.Color {
	if c == nil {
		return nil
	}
	dup := *c
	return &dup
}
