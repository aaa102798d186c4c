package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"charm.land/log/v2"
	"github.com/adrg/xdg"
	"github.com/pelletier/go-toml/v2"

	"github.com/Gaurav-Gosain/dragresize/internal/document"
	"github.com/Gaurav-Gosain/dragresize/internal/resize"
	"github.com/Gaurav-Gosain/dragresize/internal/resizer"
)

// configRelPath is the config file location relative to the XDG config home.
const configRelPath = "dragresize/config.toml"

// UserConfig represents the user's custom configuration
type UserConfig struct {
	Resize      ResizeConfig      `toml:"resize"`
	Display     DisplayConfig     `toml:"display"`
	Document    DocumentConfig    `toml:"document"`
	Log         LogConfig         `toml:"log"`
	Keybindings KeybindingsConfig `toml:"keybindings"`
}

// ResizeConfig holds the drag-resize behaviour
type ResizeConfig struct {
	MinSize          float64  `toml:"min_size"`           // Smallest width/height a drag may produce, in pixels (default: 32)
	SnapToSize       *float64 `toml:"snap_to_size"`       // Snap threshold in pixels; 0 disables snapping (default: 7)
	HandleSize       float64  `toml:"handle_size"`        // Side length of a resize handle in pixels (default: 6)
	HandleInset      float64  `toml:"handle_inset"`       // How far handles sit outside the image edge; 0 means default (default: 3)
	PreviewOpacity   float64  `toml:"preview_opacity"`    // Opacity of the resize preview, 0 < x <= 1 (default: 0.65)
	ResizeDebounceMs int      `toml:"resize_debounce_ms"` // Viewport resize settle time before re-showing handles (default: 50)
}

// DisplayConfig holds settings for the terminal editor
type DisplayConfig struct {
	CellWidth   float64 `toml:"cell_width"`   // Document pixels per terminal column (default: 8)
	CellHeight  float64 `toml:"cell_height"`  // Document pixels per terminal row (default: 16)
	BorderStyle string  `toml:"border_style"` // Image border: rounded, normal, thick, double, hidden, block, ascii
	Theme       string  `toml:"theme"`        // Color theme name (e.g., dracula, nord, my-custom-theme)
	ASCIIOnly   bool    `toml:"ascii_only"`   // Use ASCII glyphs only
}

// DocumentConfig holds document model settings
type DocumentConfig struct {
	HistoryLimit int `toml:"history_limit"` // Undo steps kept per document (default: 100)
}

// LogConfig holds logging settings
type LogConfig struct {
	Level string `toml:"level"` // debug, info, warn, error, off (default: off)
	File  string `toml:"file"`  // Log file path; empty logs to stderr when enabled
}

// KeybindingsConfig holds all keybinding configurations
type KeybindingsConfig struct {
	Editor map[string][]string `toml:"editor"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *UserConfig {
	snap := float64(resize.DefaultSnapThreshold)
	metrics := resize.DefaultMetrics()
	return &UserConfig{
		Resize: ResizeConfig{
			MinSize:          resize.DefaultMinSize,
			SnapToSize:       &snap,
			HandleSize:       metrics.Size,
			HandleInset:      metrics.Inset,
			PreviewOpacity:   resizer.DefaultPreviewOpacity,
			ResizeDebounceMs: int(resizer.DefaultResizeDebounce / time.Millisecond),
		},
		Display: DisplayConfig{
			CellWidth:   DefaultCellWidth,
			CellHeight:  DefaultCellHeight,
			BorderStyle: "rounded",
			Theme:       "",
			ASCIIOnly:   false,
		},
		Document: DocumentConfig{
			HistoryLimit: document.DefaultHistoryLimit,
		},
		Log: LogConfig{
			Level: "off",
		},
		Keybindings: KeybindingsConfig{
			Editor: getDefaultEditorKeybinds(),
		},
	}
}

// SnapThreshold returns the configured snap threshold, 0 when disabled.
func (c *UserConfig) SnapThreshold() float64 {
	if c.Resize.SnapToSize == nil {
		return 0
	}
	return *c.Resize.SnapToSize
}

// ResizeDebounce returns the viewport resize debounce interval.
func (c *UserConfig) ResizeDebounce() time.Duration {
	return time.Duration(c.Resize.ResizeDebounceMs) * time.Millisecond
}

// LoadUserConfig loads the user configuration from the XDG config
// directory, creating a default file when none exists.
func LoadUserConfig() (*UserConfig, error) {
	configPath, err := xdg.SearchConfigFile(configRelPath)
	if err != nil {
		// Config doesn't exist, create default
		return createDefaultConfig()
	}
	return LoadConfigFile(configPath)
}

// LoadConfigFile reads, fills and validates the config at path.
func LoadConfigFile(configPath string) (*UserConfig, error) {
	// #nosec G304 - reading the user's own config is intentional
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg UserConfig
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	defaultCfg := DefaultConfig()
	fillMissingResize(&cfg, defaultCfg)
	fillMissingDisplay(&cfg, defaultCfg)
	fillMissingDocument(&cfg, defaultCfg)
	fillMissingLog(&cfg, defaultCfg)
	fillMissingKeybinds(&cfg, defaultCfg)

	validation := ValidateConfig(&cfg)
	if validation.HasErrors() {
		for _, err := range validation.Errors {
			fmt.Fprintf(os.Stderr, "Config error in [%s]: %s - %s\n", err.Field, err.Key, err.Message)
		}
		return nil, fmt.Errorf("configuration has %d error(s), please fix and restart", len(validation.Errors))
	}
	for _, warn := range validation.Warnings {
		log.Warn("config warning", "section", warn.Field, "key", warn.Key, "msg", warn.Message)
	}

	return &cfg, nil
}

func createDefaultConfig() (*UserConfig, error) {
	configPath, err := xdg.ConfigFile(configRelPath)
	if err != nil {
		return nil, fmt.Errorf("failed to get config path: %w", err)
	}
	cfg := DefaultConfig()
	if err := WriteConfig(cfg, configPath); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ResetConfig overwrites the config file with the defaults and returns its path.
func ResetConfig() (string, error) {
	configPath, err := xdg.ConfigFile(configRelPath)
	if err != nil {
		return "", fmt.Errorf("failed to get config path: %w", err)
	}
	return configPath, WriteConfig(DefaultConfig(), configPath)
}

// WriteConfig writes cfg to path behind the commented header.
func WriteConfig(cfg *UserConfig, configPath string) error {
	if err := os.MkdirAll(filepath.Dir(configPath), 0750); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	var sb strings.Builder
	sb.WriteString("# dragresize configuration file\n")
	sb.WriteString("#\n")
	sb.WriteString("# Configuration location: " + configPath + "\n")
	sb.WriteString("# For keybindings, run: dragresize edit and press ?\n\n")

	sb.WriteString("# ============================================================================\n")
	sb.WriteString("# RESIZE SETTINGS\n")
	sb.WriteString("# ============================================================================\n")
	sb.WriteString("# min_size: Smallest width or height a drag can produce (pixels)\n")
	sb.WriteString("#   Default: 32\n")
	sb.WriteString("#\n")
	sb.WriteString("# snap_to_size: Snap to another image's size when within this many pixels\n")
	sb.WriteString("#   Set to 0 to disable snapping. Default: 7\n")
	sb.WriteString("#\n")
	sb.WriteString("# preview_opacity: Opacity of the preview drawn while dragging\n")
	sb.WriteString("#   Range: greater than 0, at most 1. Default: 0.65\n")
	sb.WriteString("#\n")
	sb.WriteString("# resize_debounce_ms: Delay before handles are re-placed after the\n")
	sb.WriteString("#   terminal is resized. Default: 50\n")
	sb.WriteString("#\n")
	sb.WriteString("# ============================================================================\n")
	sb.WriteString("# DISPLAY SETTINGS\n")
	sb.WriteString("# ============================================================================\n")
	sb.WriteString("# cell_width, cell_height: Document pixels covered by one terminal cell\n")
	sb.WriteString("#\n")
	sb.WriteString("# border_style: Image border style\n")
	sb.WriteString("#   Options: rounded, normal, thick, double, hidden, block, ascii\n")
	sb.WriteString("#\n")
	sb.WriteString("# theme: Color theme name (e.g., dracula, nord, my-custom-theme)\n")
	sb.WriteString("#   CLI flag --theme overrides this. Custom themes: ~/.config/dragresize/themes/*.json\n")
	sb.WriteString("#\n")
	sb.WriteString("# ============================================================================\n")
	sb.WriteString("# LOG SETTINGS\n")
	sb.WriteString("# ============================================================================\n")
	sb.WriteString("# level: debug, info, warn, error, off. Default: off\n")
	sb.WriteString("# file: Write logs to this file instead of stderr\n")
	sb.WriteString("# ============================================================================\n\n")

	if _, err := sb.Write(data); err != nil {
		return fmt.Errorf("failed to write config data: %w", err)
	}

	if err := os.WriteFile(configPath, []byte(sb.String()), 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

func fillMissingResize(cfg, defaultCfg *UserConfig) {
	if cfg.Resize.MinSize == 0 {
		cfg.Resize.MinSize = defaultCfg.Resize.MinSize
	}
	if cfg.Resize.SnapToSize == nil {
		v := *defaultCfg.Resize.SnapToSize
		cfg.Resize.SnapToSize = &v
	}
	if cfg.Resize.HandleSize == 0 {
		cfg.Resize.HandleSize = defaultCfg.Resize.HandleSize
	}
	if cfg.Resize.HandleInset == 0 {
		cfg.Resize.HandleInset = defaultCfg.Resize.HandleInset
	}
	if cfg.Resize.PreviewOpacity == 0 {
		cfg.Resize.PreviewOpacity = defaultCfg.Resize.PreviewOpacity
	}
	if cfg.Resize.ResizeDebounceMs == 0 {
		cfg.Resize.ResizeDebounceMs = defaultCfg.Resize.ResizeDebounceMs
	}
}

func fillMissingDisplay(cfg, defaultCfg *UserConfig) {
	if cfg.Display.CellWidth == 0 {
		cfg.Display.CellWidth = defaultCfg.Display.CellWidth
	}
	if cfg.Display.CellHeight == 0 {
		cfg.Display.CellHeight = defaultCfg.Display.CellHeight
	}
	if cfg.Display.BorderStyle == "" {
		cfg.Display.BorderStyle = defaultCfg.Display.BorderStyle
	}
}

func fillMissingDocument(cfg, defaultCfg *UserConfig) {
	if cfg.Document.HistoryLimit == 0 {
		cfg.Document.HistoryLimit = defaultCfg.Document.HistoryLimit
	}
}

func fillMissingLog(cfg, defaultCfg *UserConfig) {
	if cfg.Log.Level == "" {
		cfg.Log.Level = defaultCfg.Log.Level
	}
}

func fillMissingKeybinds(cfg, defaultCfg *UserConfig) {
	if cfg.Keybindings.Editor == nil {
		cfg.Keybindings.Editor = make(map[string][]string)
	}
	fillMapDefaults(cfg.Keybindings.Editor, defaultCfg.Keybindings.Editor)
}

func fillMapDefaults(target, defaults map[string][]string) {
	for action, keys := range defaults {
		if _, exists := target[action]; !exists {
			target[action] = keys
		}
	}
}

// GetConfigPath returns the path to the user config file
func GetConfigPath() (string, error) {
	return xdg.ConfigFile(configRelPath)
}
