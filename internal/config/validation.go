package config

import (
	"fmt"
	"slices"
)

// ValidationIssue is a single problem found in a config.
type ValidationIssue struct {
	Field   string // section, e.g. "resize"
	Key     string
	Message string
}

// ValidationResult collects errors, which stop startup, and warnings, which don't.
type ValidationResult struct {
	Errors   []ValidationIssue
	Warnings []ValidationIssue
}

// HasErrors reports whether any errors were found.
func (v *ValidationResult) HasErrors() bool { return len(v.Errors) > 0 }

// HasWarnings reports whether any warnings were found.
func (v *ValidationResult) HasWarnings() bool { return len(v.Warnings) > 0 }

func (v *ValidationResult) addError(field, key, format string, args ...any) {
	v.Errors = append(v.Errors, ValidationIssue{Field: field, Key: key, Message: fmt.Sprintf(format, args...)})
}

func (v *ValidationResult) addWarning(field, key, format string, args ...any) {
	v.Warnings = append(v.Warnings, ValidationIssue{Field: field, Key: key, Message: fmt.Sprintf(format, args...)})
}

// ValidLogLevels lists the accepted [log] level values.
var ValidLogLevels = []string{"debug", "info", "warn", "error", "off"}

// ValidateConfig checks a filled config.
func ValidateConfig(cfg *UserConfig) *ValidationResult {
	v := &ValidationResult{}

	r := cfg.Resize
	if r.MinSize < 1 {
		v.addError("resize", "min_size", "must be at least 1, got %g", r.MinSize)
	}
	if r.SnapToSize != nil && *r.SnapToSize < 0 {
		v.addError("resize", "snap_to_size", "must not be negative, got %g", *r.SnapToSize)
	}
	if r.SnapToSize != nil && *r.SnapToSize > r.MinSize && r.MinSize >= 1 {
		v.addWarning("resize", "snap_to_size", "threshold %g is larger than min_size %g", *r.SnapToSize, r.MinSize)
	}
	if r.HandleSize <= 0 {
		v.addError("resize", "handle_size", "must be positive, got %g", r.HandleSize)
	}
	if r.HandleInset < 0 {
		v.addError("resize", "handle_inset", "must not be negative, got %g", r.HandleInset)
	}
	if r.PreviewOpacity <= 0 || r.PreviewOpacity > 1 {
		v.addError("resize", "preview_opacity", "must be in (0, 1], got %g", r.PreviewOpacity)
	}
	if r.ResizeDebounceMs < 0 {
		v.addError("resize", "resize_debounce_ms", "must not be negative, got %d", r.ResizeDebounceMs)
	} else if r.ResizeDebounceMs > 1000 {
		v.addWarning("resize", "resize_debounce_ms", "%dms is unusually long", r.ResizeDebounceMs)
	}

	d := cfg.Display
	if d.CellWidth <= 0 {
		v.addError("display", "cell_width", "must be positive, got %g", d.CellWidth)
	}
	if d.CellHeight <= 0 {
		v.addError("display", "cell_height", "must be positive, got %g", d.CellHeight)
	}
	if d.BorderStyle != "" && !slices.Contains(ValidBorderStyles, d.BorderStyle) {
		v.addWarning("display", "border_style", "unknown style %q, using rounded", d.BorderStyle)
	}

	if cfg.Document.HistoryLimit < 1 {
		v.addError("document", "history_limit", "must be at least 1, got %d", cfg.Document.HistoryLimit)
	}

	if !slices.Contains(ValidLogLevels, cfg.Log.Level) {
		v.addError("log", "level", "unknown level %q (valid: %v)", cfg.Log.Level, ValidLogLevels)
	}

	for action, keys := range cfg.Keybindings.Editor {
		if !IsKnownAction(action) {
			v.addWarning("keybindings.editor", action, "unknown action, ignored")
			continue
		}
		for _, k := range keys {
			if normalizeKey(k) == "" {
				v.addError("keybindings.editor", action, "empty key")
			}
		}
	}

	return v
}
