package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
)

// KeybindingsVersion is the keybindings.toml schema this build reads.
const KeybindingsVersion = 1

type keybindingsFile struct {
	Version  int                 `toml:"version"`
	Bindings map[string][]string `toml:"bindings"`
}

// LoadKeybindings reads per-action key overrides from path. A missing file
// yields no overrides. Actions outside known are rejected.
func LoadKeybindings(path string, known []string) (map[string][]string, error) {
	if strings.TrimSpace(path) == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read keybindings: %w", err)
	}
	return ParseKeybindings(data, known)
}

// ParseKeybindings decodes keybindings.toml content.
func ParseKeybindings(data []byte, known []string) (map[string][]string, error) {
	var kf keybindingsFile
	if err := toml.Unmarshal(data, &kf); err != nil {
		return nil, fmt.Errorf("parse keybindings.toml: %w", err)
	}
	if kf.Version != KeybindingsVersion {
		return nil, fmt.Errorf("keybindings.toml: unsupported version %d (want %d)", kf.Version, KeybindingsVersion)
	}
	allowed := make(map[string]bool, len(known))
	for _, a := range known {
		allowed[a] = true
	}
	actions := make([]string, 0, len(kf.Bindings))
	for action := range kf.Bindings {
		actions = append(actions, action)
	}
	sort.Strings(actions)

	out := make(map[string][]string, len(kf.Bindings))
	for _, action := range actions {
		if !allowed[action] {
			return nil, fmt.Errorf("keybindings.toml: unknown action %q", action)
		}
		keys := make([]string, 0, len(kf.Bindings[action]))
		for _, k := range kf.Bindings[action] {
			k = strings.ToLower(strings.TrimSpace(k))
			if k != "" {
				keys = append(keys, k)
			}
		}
		if len(keys) == 0 {
			return nil, fmt.Errorf("keybindings.toml: action %q has no keys", action)
		}
		out[action] = keys
	}
	return out, nil
}
