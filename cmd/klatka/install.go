package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/smykla-skalski/klatka/internal/settings"
)

var (
	installGlobal  bool
	installProject bool
)

var installCmd = &cobra.Command{
	Use:   "install",
	Short: "Register klatka as a Claude Code PreToolUse hook",
	Long: `Adds a PreToolUse hook entry for the Bash tool to Claude Code's
settings.json. By default the user-level settings file is used
(~/.claude/settings.json); pass --project to register in the current
project's .claude/settings.json instead.

Existing settings are preserved and a timestamped backup is written
before any modification. Installing twice is a no-op.`,
	RunE: runInstall,
}

var uninstallCmd = &cobra.Command{
	Use:   "uninstall",
	Short: "Remove the klatka hook entry from Claude Code settings",
	RunE:  runUninstall,
}

func init() {
	installCmd.Flags().BoolVar(&installGlobal, "global", false, "Register in user-level settings (default)")
	installCmd.Flags().BoolVar(&installProject, "project", false, "Register in project-level settings")
	uninstallCmd.Flags().BoolVar(&installGlobal, "global", false, "Unregister from user-level settings (default)")
	uninstallCmd.Flags().BoolVar(&installProject, "project", false, "Unregister from project-level settings")

	rootCmd.AddCommand(installCmd)
	rootCmd.AddCommand(uninstallCmd)
}

func runInstall(cmd *cobra.Command, _ []string) error {
	settingsPath, err := targetSettingsPath()
	if err != nil {
		return err
	}

	binaryPath, err := resolveBinaryPath()
	if err != nil {
		return err
	}

	if err := settings.Register(settingsPath, binaryPath); err != nil {
		return errors.Wrap(err, "failed to register hook")
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Registered %s in %s\n", binaryPath, settingsPath)
	fmt.Fprintln(cmd.OutOrStdout(), "Run 'klatka doctor' to verify the setup.")

	return nil
}

func runUninstall(cmd *cobra.Command, _ []string) error {
	settingsPath, err := targetSettingsPath()
	if err != nil {
		return err
	}

	binaryPath, err := resolveBinaryPath()
	if err != nil {
		return err
	}

	err = settings.Unregister(settingsPath, binaryPath)

	switch {
	case errors.Is(err, settings.ErrNotRegistered):
		fmt.Fprintf(cmd.OutOrStdout(), "No klatka hook found in %s\n", settingsPath)

		return nil
	case err != nil:
		return errors.Wrap(err, "failed to unregister hook")
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Removed klatka hook from %s\n", settingsPath)

	return nil
}

func targetSettingsPath() (string, error) {
	if installProject && installGlobal {
		return "", errors.New("--global and --project are mutually exclusive")
	}

	if installProject {
		return settings.ProjectSettingsPath(), nil
	}

	path := settings.UserSettingsPath()
	if path == "" {
		return "", errors.New("cannot determine home directory")
	}

	return path, nil
}

// resolveBinaryPath prefers the klatka binary on PATH so the registered
// command survives moving the build tree. Falls back to the running
// executable.
func resolveBinaryPath() (string, error) {
	if path, err := exec.LookPath("klatka"); err == nil {
		if abs, absErr := filepath.Abs(path); absErr == nil {
			return abs, nil
		}

		return path, nil
	}

	self, err := os.Executable()
	if err != nil {
		return "", errors.Wrap(err, "cannot locate klatka binary")
	}

	return self, nil
}
