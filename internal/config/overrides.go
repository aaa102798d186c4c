package config

import (
	"charm.land/log/v2"

	"github.com/Gaurav-Gosain/dragresize/internal/theme"
)

// Overrides contains CLI flag values that can override user config.
// Zero values indicate the flag was not set and should use the user config default.
type Overrides struct {
	// ASCIIOnly uses ASCII glyphs instead of box drawing characters
	ASCIIOnly bool

	// BorderStyle overrides the image border style
	BorderStyle string

	// ThemeName is the theme to load
	ThemeName string

	// MinSize overrides resize.min_size (0 means use config)
	MinSize float64

	// SnapToSize overrides resize.snap_to_size when non-nil
	SnapToSize *float64

	// NoSnap disables snapping regardless of config
	NoSnap bool

	// LogLevel overrides log.level
	LogLevel string

	// LogFile overrides log.file
	LogFile string
}

// ApplyOverrides applies CLI flag overrides onto userConfig and the
// display globals. A nil userConfig starts from the defaults. The
// resulting config is returned.
func ApplyOverrides(overrides Overrides, userConfig *UserConfig) *UserConfig {
	if userConfig == nil {
		userConfig = DefaultConfig()
	}

	// ASCII Only - OR of CLI flag and user config
	UseASCIIOnly = overrides.ASCIIOnly || userConfig.Display.ASCIIOnly

	// Border Style - CLI flag takes precedence, otherwise use user config
	if overrides.BorderStyle != "" {
		userConfig.Display.BorderStyle = overrides.BorderStyle
	}
	if userConfig.Display.BorderStyle != "" {
		BorderStyle = userConfig.Display.BorderStyle
	}

	if overrides.MinSize > 0 {
		userConfig.Resize.MinSize = overrides.MinSize
	}
	if overrides.SnapToSize != nil {
		v := *overrides.SnapToSize
		userConfig.Resize.SnapToSize = &v
	}
	if overrides.NoSnap {
		zero := 0.0
		userConfig.Resize.SnapToSize = &zero
	}

	if overrides.LogLevel != "" {
		userConfig.Log.Level = overrides.LogLevel
	}
	if overrides.LogFile != "" {
		userConfig.Log.File = overrides.LogFile
	}

	// Theme - CLI flag takes precedence, otherwise use user config
	if overrides.ThemeName != "" {
		userConfig.Display.Theme = overrides.ThemeName
	}
	if name := userConfig.Display.Theme; name != "" {
		if err := theme.Initialize(name); err != nil {
			log.Warn("failed to load theme", "theme", name, "err", err)
		}
	}

	return userConfig
}
