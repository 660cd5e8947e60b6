package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"

	internalconfig "github.com/smykla-skalski/klatka/internal/config"
	"github.com/smykla-skalski/klatka/internal/settings"
)

var (
	initProject bool
	initForce   bool
)

const configHeader = `# klatka configuration.
# Precedence: defaults < this file < project config.toml < KLATKA_* env vars.

`

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a config file populated with the defaults",
	Long: `Creates a config.toml seeded with the built-in defaults, ready to edit.
Writes the global file under ~/.klatka by default; pass --project to create
a klatka.toml in the current directory instead.`,
	RunE: runInit,
}

func init() {
	initCmd.Flags().BoolVar(&initProject, "project", false, "Write klatka.toml in the current directory")
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "Overwrite an existing config file")

	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, _ []string) error {
	path, err := initTargetPath()
	if err != nil {
		return err
	}

	if !initForce {
		if _, statErr := os.Stat(path); statErr == nil {
			return errors.Newf("%s already exists (use --force to overwrite)", path)
		}
	}

	body, err := toml.Marshal(internalconfig.Defaults())
	if err != nil {
		return errors.Wrap(err, "failed to encode default config")
	}

	data := append([]byte(configHeader), body...)

	if err := settings.AtomicWriteFile(path, data, initForce); err != nil {
		return errors.Wrap(err, "failed to write config file")
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)

	return nil
}

func initTargetPath() (string, error) {
	if initProject {
		workDir, err := os.Getwd()
		if err != nil {
			return "", errors.Wrap(err, "cannot determine working directory")
		}

		return filepath.Join(workDir, internalconfig.ProjectConfigFileAlt), nil
	}

	loader, err := internalconfig.NewKoanfLoader()
	if err != nil {
		return "", errors.Wrap(err, "cannot determine home directory")
	}

	return loader.GlobalConfigPath(), nil
}
