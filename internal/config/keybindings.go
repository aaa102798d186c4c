package config

import (
	"sort"
	"strings"
)

// Editor actions that can be bound to keys.
const (
	ActionQuit       = "quit"
	ActionCancel     = "cancel"
	ActionUndo       = "undo"
	ActionRedo       = "redo"
	ActionSave       = "save"
	ActionToggleSnap = "toggle_snap"
	ActionNextImage  = "next_image"
	ActionPrevImage  = "prev_image"
	ActionHelp       = "toggle_help"
)

// actionDescriptions is also the set of known actions.
var actionDescriptions = map[string]string{
	ActionQuit:       "Quit",
	ActionCancel:     "Cancel drag / clear selection",
	ActionUndo:       "Undo resize",
	ActionRedo:       "Redo resize",
	ActionSave:       "Save document",
	ActionToggleSnap: "Toggle snapping to other images",
	ActionNextImage:  "Select next image",
	ActionPrevImage:  "Select previous image",
	ActionHelp:       "Toggle help",
}

// Keybinding represents a single keybinding entry
type Keybinding struct {
	Key         string
	Description string
}

func getDefaultEditorKeybinds() map[string][]string {
	return map[string][]string{
		ActionQuit:       {"q", "ctrl+c"},
		ActionCancel:     {"esc"},
		ActionUndo:       {"u", "ctrl+z"},
		ActionRedo:       {"ctrl+r", "ctrl+y"},
		ActionSave:       {"ctrl+s"},
		ActionToggleSnap: {"s"},
		ActionNextImage:  {"tab"},
		ActionPrevImage:  {"shift+tab"},
		ActionHelp:       {"?"},
	}
}

// IsKnownAction reports whether name is a bindable action.
func IsKnownAction(name string) bool {
	_, ok := actionDescriptions[name]
	return ok
}

// KeybindRegistry resolves key strings to actions.
type KeybindRegistry struct {
	byKey    map[string]string
	byAction map[string][]string
}

// NewKeybindRegistry builds a registry from the user config. Unknown
// actions are ignored; a key bound twice goes to the action that sorts
// first.
func NewKeybindRegistry(cfg *UserConfig) *KeybindRegistry {
	bindings := getDefaultEditorKeybinds()
	if cfg != nil {
		for action, keys := range cfg.Keybindings.Editor {
			if IsKnownAction(action) {
				bindings[action] = keys
			}
		}
	}

	r := &KeybindRegistry{
		byKey:    make(map[string]string),
		byAction: make(map[string][]string),
	}
	actions := make([]string, 0, len(bindings))
	for action := range bindings {
		actions = append(actions, action)
	}
	sort.Strings(actions)
	for _, action := range actions {
		for _, key := range bindings[action] {
			key = normalizeKey(key)
			if key == "" {
				continue
			}
			if _, taken := r.byKey[key]; taken {
				continue
			}
			r.byKey[key] = action
			r.byAction[action] = append(r.byAction[action], key)
		}
	}
	return r
}

// Action returns the action bound to key.
func (r *KeybindRegistry) Action(key string) (string, bool) {
	a, ok := r.byKey[normalizeKey(key)]
	return a, ok
}

// Keys returns the keys bound to action.
func (r *KeybindRegistry) Keys(action string) []string {
	return r.byAction[action]
}

// Help returns one entry per bound action, sorted by description.
func (r *KeybindRegistry) Help() []Keybinding {
	var out []Keybinding
	for action, keys := range r.byAction {
		out = append(out, Keybinding{
			Key:         strings.Join(keys, "/"),
			Description: actionDescriptions[action],
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Description < out[j].Description })
	return out
}

func normalizeKey(key string) string {
	return strings.ToLower(strings.TrimSpace(key))
}
