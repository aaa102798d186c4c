package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/adrg/xdg"

	"github.com/Gaurav-Gosain/dragresize/internal/resizer"
)

func useTempXDG(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	xdg.Reload()
	t.Cleanup(xdg.Reload)
	return dir
}

func TestDefaultConfigIsValid(t *testing.T) {
	v := ValidateConfig(DefaultConfig())
	if v.HasErrors() || v.HasWarnings() {
		t.Fatalf("default config: errors=%v warnings=%v", v.Errors, v.Warnings)
	}
	cfg := DefaultConfig()
	if cfg.SnapThreshold() != 7 {
		t.Errorf("SnapThreshold = %g, want 7", cfg.SnapThreshold())
	}
	if cfg.ResizeDebounce() != resizer.DefaultResizeDebounce {
		t.Errorf("ResizeDebounce = %v", cfg.ResizeDebounce())
	}
}

func TestLoadUserConfigCreatesDefault(t *testing.T) {
	dir := useTempXDG(t)

	cfg, err := LoadUserConfig()
	if err != nil {
		t.Fatalf("LoadUserConfig: %v", err)
	}
	if cfg.Resize.MinSize != 32 {
		t.Errorf("MinSize = %g", cfg.Resize.MinSize)
	}

	data, err := os.ReadFile(filepath.Join(dir, "dragresize", "config.toml"))
	if err != nil {
		t.Fatalf("default config not written: %v", err)
	}
	if !strings.HasPrefix(string(data), "# dragresize configuration file") {
		t.Error("missing header")
	}

	// The written file must load back to the same settings.
	again, err := LoadUserConfig()
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if again.SnapThreshold() != cfg.SnapThreshold() || again.Display.CellWidth != cfg.Display.CellWidth {
		t.Errorf("reloaded config differs: %+v", again)
	}
}

func TestLoadConfigFileFillsMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	body := `
[resize]
min_size = 48.0
snap_to_size = 0.0

[keybindings.editor]
undo = ["z"]
`
	if err := os.WriteFile(path, []byte(body), 0600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfigFile(path)
	if err != nil {
		t.Fatalf("LoadConfigFile: %v", err)
	}

	tests := []struct {
		name string
		got  any
		want any
	}{
		{"min_size kept", cfg.Resize.MinSize, 48.0},
		{"explicit zero snap kept", cfg.SnapThreshold(), 0.0},
		{"handle_size filled", cfg.Resize.HandleSize, 6.0},
		{"preview_opacity filled", cfg.Resize.PreviewOpacity, 0.65},
		{"debounce filled", cfg.Resize.ResizeDebounceMs, 50},
		{"cell_height filled", cfg.Display.CellHeight, float64(DefaultCellHeight)},
		{"history filled", cfg.Document.HistoryLimit, 100},
		{"log level filled", cfg.Log.Level, "off"},
		{"undo override kept", strings.Join(cfg.Keybindings.Editor[ActionUndo], ","), "z"},
		{"save default filled", strings.Join(cfg.Keybindings.Editor[ActionSave], ","), "ctrl+s"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %v, want %v", tt.got, tt.want)
			}
		})
	}
}

func TestLoadConfigFileErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"bad toml", "[resize\nmin_size = "},
		{"invalid opacity", "[resize]\npreview_opacity = 1.5\n"},
		{"unknown log level", "[log]\nlevel = \"loud\"\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.toml")
			if err := os.WriteFile(path, []byte(tt.body), 0600); err != nil {
				t.Fatal(err)
			}
			if _, err := LoadConfigFile(path); err == nil {
				t.Fatal("expected error")
			}
		})
	}

	if _, err := LoadConfigFile(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestValidateConfig(t *testing.T) {
	neg := -1.0
	big := 40.0

	tests := []struct {
		name        string
		mutate      func(*UserConfig)
		wantErrKey  string
		wantWarnKey string
	}{
		{"min size", func(c *UserConfig) { c.Resize.MinSize = 0.5 }, "min_size", ""},
		{"negative snap", func(c *UserConfig) { c.Resize.SnapToSize = &neg }, "snap_to_size", ""},
		{"snap above min", func(c *UserConfig) { c.Resize.SnapToSize = &big }, "", "snap_to_size"},
		{"handle size", func(c *UserConfig) { c.Resize.HandleSize = 0 }, "handle_size", ""},
		{"handle inset", func(c *UserConfig) { c.Resize.HandleInset = -2 }, "handle_inset", ""},
		{"opacity zero", func(c *UserConfig) { c.Resize.PreviewOpacity = 0 }, "preview_opacity", ""},
		{"debounce negative", func(c *UserConfig) { c.Resize.ResizeDebounceMs = -1 }, "resize_debounce_ms", ""},
		{"debounce long", func(c *UserConfig) { c.Resize.ResizeDebounceMs = 5000 }, "", "resize_debounce_ms"},
		{"cell width", func(c *UserConfig) { c.Display.CellWidth = 0 }, "cell_width", ""},
		{"border style", func(c *UserConfig) { c.Display.BorderStyle = "wavy" }, "", "border_style"},
		{"history", func(c *UserConfig) { c.Document.HistoryLimit = 0 }, "history_limit", ""},
		{"log level", func(c *UserConfig) { c.Log.Level = "trace" }, "level", ""},
		{"unknown action", func(c *UserConfig) { c.Keybindings.Editor["fly"] = []string{"f"} }, "", "fly"},
		{"empty key", func(c *UserConfig) { c.Keybindings.Editor[ActionQuit] = []string{" "} }, ActionQuit, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			v := ValidateConfig(cfg)

			if tt.wantErrKey != "" && !hasIssue(v.Errors, tt.wantErrKey) {
				t.Errorf("expected error on %q, got %v", tt.wantErrKey, v.Errors)
			}
			if tt.wantErrKey == "" && v.HasErrors() {
				t.Errorf("unexpected errors %v", v.Errors)
			}
			if tt.wantWarnKey != "" && !hasIssue(v.Warnings, tt.wantWarnKey) {
				t.Errorf("expected warning on %q, got %v", tt.wantWarnKey, v.Warnings)
			}
		})
	}
}

func hasIssue(issues []ValidationIssue, key string) bool {
	for _, i := range issues {
		if i.Key == key {
			return true
		}
	}
	return false
}

func TestApplyOverrides(t *testing.T) {
	t.Cleanup(func() {
		UseASCIIOnly = false
		BorderStyle = "rounded"
	})

	snap := 12.0
	tests := []struct {
		name      string
		overrides Overrides
		user      func(*UserConfig)
		check     func(*testing.T, *UserConfig)
	}{
		{
			name:      "flag beats config",
			overrides: Overrides{MinSize: 64, BorderStyle: "thick", SnapToSize: &snap},
			user:      func(c *UserConfig) { c.Resize.MinSize = 40; c.Display.BorderStyle = "double" },
			check: func(t *testing.T, c *UserConfig) {
				if c.Resize.MinSize != 64 || c.SnapThreshold() != 12 || BorderStyle != "thick" {
					t.Errorf("got min=%g snap=%g border=%s", c.Resize.MinSize, c.SnapThreshold(), BorderStyle)
				}
			},
		},
		{
			name: "config used when flag unset",
			user: func(c *UserConfig) { c.Resize.MinSize = 40; c.Display.BorderStyle = "double" },
			check: func(t *testing.T, c *UserConfig) {
				if c.Resize.MinSize != 40 || BorderStyle != "double" {
					t.Errorf("got min=%g border=%s", c.Resize.MinSize, BorderStyle)
				}
			},
		},
		{
			name:      "no snap wins over snap value",
			overrides: Overrides{NoSnap: true, SnapToSize: &snap},
			check: func(t *testing.T, c *UserConfig) {
				if c.SnapThreshold() != 0 {
					t.Errorf("SnapThreshold = %g", c.SnapThreshold())
				}
			},
		},
		{
			name: "ascii from config",
			user: func(c *UserConfig) { c.Display.ASCIIOnly = true },
			check: func(t *testing.T, c *UserConfig) {
				if !UseASCIIOnly || GetHandleGlyph(false) != HandleGlyphASCII {
					t.Error("ASCII mode not applied")
				}
			},
		},
		{
			name:      "log flags",
			overrides: Overrides{LogLevel: "debug", LogFile: "/tmp/x.log"},
			check: func(t *testing.T, c *UserConfig) {
				if c.Log.Level != "debug" || c.Log.File != "/tmp/x.log" {
					t.Errorf("log = %+v", c.Log)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			UseASCIIOnly = false
			BorderStyle = "rounded"
			cfg := DefaultConfig()
			if tt.user != nil {
				tt.user(cfg)
			}
			tt.check(t, ApplyOverrides(tt.overrides, cfg))
		})
	}
}

func TestApplyOverridesNilConfig(t *testing.T) {
	cfg := ApplyOverrides(Overrides{}, nil)
	if cfg == nil || cfg.Resize.MinSize != 32 {
		t.Fatalf("expected defaults, got %+v", cfg)
	}
}
