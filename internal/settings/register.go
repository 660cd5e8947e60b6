package settings

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
)

const (
	dirPermissions  = 0o750
	filePermissions = 0o600
)

// Register adds a PreToolUse hook entry for the given binary to the settings
// file, preserving any fields klatka does not understand. The file is left
// untouched when the binary is already registered.
func Register(settingsPath, binaryPath string) error {
	parser := NewParser(settingsPath)

	registered, err := parser.IsRegistered(binaryPath)
	if err != nil {
		return errors.Wrap(err, "failed to check settings")
	}

	if registered {
		return nil
	}

	// Load existing settings as raw map to preserve unknown fields
	raw, err := loadRawSettings(settingsPath)
	if err != nil {
		return err
	}

	addHookEntry(raw, binaryPath)

	return writeRawSettings(settingsPath, raw)
}

// Unregister removes every hook command referencing the given binary from the
// settings file. Returns ErrNotRegistered when nothing referenced it.
func Unregister(settingsPath, binaryPath string) error {
	raw, err := loadRawSettings(settingsPath)
	if err != nil {
		return err
	}

	if !removeHookEntries(raw, binaryPath) {
		return ErrNotRegistered
	}

	return writeRawSettings(settingsPath, raw)
}

// AtomicWriteFile writes data to a file atomically using a temp file and
// rename, creating a timestamped backup of any existing file first.
func AtomicWriteFile(path string, data []byte, createBackup bool) error {
	if err := os.MkdirAll(filepath.Dir(path), dirPermissions); err != nil {
		return errors.Wrap(err, "failed to create directory")
	}

	perm := os.FileMode(filePermissions)
	if info, err := os.Stat(path); err == nil {
		perm = info.Mode().Perm()
	}

	if createBackup {
		if orig, err := os.ReadFile(path); err == nil { //nolint:gosec // path from settings helpers
			backupPath := fmt.Sprintf("%s.backup.%d", path, time.Now().Unix())
			if err := os.WriteFile(backupPath, orig, perm); err != nil {
				return errors.Wrap(err, "failed to create backup")
			}
		}
	}

	tmpFile := path + ".tmp"
	if err := os.WriteFile(tmpFile, data, perm); err != nil {
		return errors.Wrap(err, "failed to write temp file")
	}

	if err := os.Rename(tmpFile, path); err != nil {
		_ = os.Remove(tmpFile)
		return errors.Wrap(err, "failed to rename temp file")
	}

	return nil
}

func loadRawSettings(path string) (map[string]any, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path from settings helpers
	if err != nil {
		if os.IsNotExist(err) {
			return make(map[string]any), nil
		}

		return nil, errors.Wrap(err, "failed to read settings")
	}

	if len(data) == 0 {
		return make(map[string]any), nil
	}

	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, errors.WithSecondaryError(
			errors.WithMessage(ErrInvalidJSON, "in "+path),
			err,
		)
	}

	return raw, nil
}

func writeRawSettings(path string, raw map[string]any) error {
	data, err := json.MarshalIndent(raw, "", "  ")
	if err != nil {
		return errors.Wrap(err, "failed to marshal settings")
	}

	data = append(data, '\n')

	if err := AtomicWriteFile(path, data, true); err != nil {
		return errors.Wrap(err, "failed to write settings")
	}

	return nil
}

func addHookEntry(raw map[string]any, binaryPath string) {
	hooks, ok := raw["hooks"].(map[string]any)
	if !ok {
		hooks = make(map[string]any)
		raw["hooks"] = hooks
	}

	entry := map[string]any{
		"matcher": BashMatcher,
		"hooks": []any{
			map[string]any{
				"type":    "command",
				"command": binaryPath + " --hook-type " + PreToolUseEvent,
				"timeout": DefaultHookTimeout,
			},
		},
	}

	existing, ok := hooks[PreToolUseEvent].([]any)
	if !ok {
		existing = nil
	}

	hooks[PreToolUseEvent] = append(existing, entry)
}

// removeHookEntries drops hook commands referencing the binary. Entries left
// without commands are removed entirely. Reports whether anything changed.
func removeHookEntries(raw map[string]any, binaryPath string) bool {
	hooks, ok := raw["hooks"].(map[string]any)
	if !ok {
		return false
	}

	binaryName := filepath.Base(binaryPath)
	changed := false

	for event, entriesAny := range hooks {
		entries, ok := entriesAny.([]any)
		if !ok {
			continue
		}

		kept := make([]any, 0, len(entries))

		for _, entryAny := range entries {
			entry, ok := entryAny.(map[string]any)
			if !ok {
				kept = append(kept, entryAny)
				continue
			}

			if filterHookCommands(entry, binaryName) {
				changed = true
			}

			if cmds, ok := entry["hooks"].([]any); !ok || len(cmds) > 0 {
				kept = append(kept, entry)
			}
		}

		hooks[event] = kept
	}

	return changed
}

// filterHookCommands removes matching commands from one entry in place.
func filterHookCommands(entry map[string]any, binaryName string) bool {
	cmds, ok := entry["hooks"].([]any)
	if !ok {
		return false
	}

	kept := make([]any, 0, len(cmds))
	changed := false

	for _, cmdAny := range cmds {
		cmd, ok := cmdAny.(map[string]any)
		if ok {
			if command, ok := cmd["command"].(string); ok &&
				strings.Contains(command, binaryName) {
				changed = true
				continue
			}
		}

		kept = append(kept, cmdAny)
	}

	entry["hooks"] = kept

	return changed
}
