// Package settings provides utilities for parsing and updating Claude Code
// settings files (hook registration).
package settings

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
)

var (
	// ErrSettingsNotFound is returned when the settings file does not exist.
	ErrSettingsNotFound = errors.New("settings file not found")

	// ErrInvalidJSON is returned when the settings file is not valid JSON.
	ErrInvalidJSON = errors.New("invalid JSON syntax")

	// ErrNotRegistered is returned when klatka is not registered in the settings.
	ErrNotRegistered = errors.New("klatka not registered in settings")
)

const (
	// PreToolUseEvent is the hook event klatka registers for.
	PreToolUseEvent = "PreToolUse"

	// BashMatcher limits the hook to Bash tool invocations.
	BashMatcher = "Bash"

	// DefaultHookTimeout is the per-invocation timeout written to settings.
	DefaultHookTimeout = 30
)

// Parser parses Claude Code settings.json files.
type Parser struct {
	settingsPath string
}

// ClaudeSettings represents the structure of a Claude Code settings file.
type ClaudeSettings struct {
	Hooks map[string][]HookConfig `json:"hooks"`
}

// HookConfig represents a hook configuration block.
type HookConfig struct {
	Matcher string              `json:"matcher"`
	Hooks   []HookCommandConfig `json:"hooks"`
}

// HookCommandConfig represents an individual hook command configuration.
type HookCommandConfig struct {
	Type    string `json:"type"`
	Command string `json:"command"`
	Timeout int    `json:"timeout,omitempty"`
}

// NewParser creates a new settings parser for the given file path.
func NewParser(path string) *Parser {
	return &Parser{
		settingsPath: path,
	}
}

// Path returns the settings file path.
func (p *Parser) Path() string {
	return p.settingsPath
}

// Parse reads and parses the Claude settings file.
func (p *Parser) Parse() (*ClaudeSettings, error) {
	data, err := os.ReadFile(p.settingsPath) //nolint:gosec // path from settings helpers
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.WithMessage(ErrSettingsNotFound, p.settingsPath)
		}

		return nil, errors.Wrap(err, "failed to read settings file")
	}

	if len(data) == 0 {
		return &ClaudeSettings{Hooks: make(map[string][]HookConfig)}, nil
	}

	var settings ClaudeSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, errors.WithSecondaryError(
			errors.WithMessage(ErrInvalidJSON, "in "+p.settingsPath),
			err,
		)
	}

	if settings.Hooks == nil {
		settings.Hooks = make(map[string][]HookConfig)
	}

	return &settings, nil
}

// IsRegistered checks if the given binary is registered as a hook command.
// It matches on either the full path or the bare binary name.
func (p *Parser) IsRegistered(binaryPath string) (bool, error) {
	settings, err := p.Parse()
	if err != nil {
		if errors.Is(err, ErrSettingsNotFound) {
			return false, nil
		}

		return false, err
	}

	binaryName := filepath.Base(binaryPath)

	for _, hookConfigs := range settings.Hooks {
		for _, hookConfig := range hookConfigs {
			for _, hookCmd := range hookConfig.Hooks {
				if hookCmd.Type == "command" &&
					(strings.Contains(hookCmd.Command, binaryPath) ||
						strings.Contains(hookCmd.Command, binaryName)) {
					return true, nil
				}
			}
		}
	}

	return false, nil
}

// UserSettingsPath returns the path to the user's global settings file.
func UserSettingsPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}

	return filepath.Join(homeDir, ".claude", "settings.json")
}

// ProjectSettingsPath returns the path to the project settings file.
func ProjectSettingsPath() string {
	return filepath.Join(".claude", "settings.json")
}
