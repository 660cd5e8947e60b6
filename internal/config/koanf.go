// Package config provides internal configuration loading and processing.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	tomlparser "github.com/knadh/koanf/parsers/toml/v2"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/smykla-skalski/klatka/pkg/config"
)

var (
	// ErrConfigNotFound is returned when no configuration file is found.
	ErrConfigNotFound = errors.New("configuration file not found")

	// ErrInvalidTOML is returned when the TOML file cannot be parsed.
	ErrInvalidTOML = errors.New("invalid TOML")
)

const (
	// GlobalConfigDir is the directory name for global configuration.
	GlobalConfigDir = ".klatka"

	// GlobalConfigFile is the name of the global configuration file.
	GlobalConfigFile = "config.toml"

	// ProjectConfigDir is the directory name for project configuration.
	ProjectConfigDir = ".klatka"

	// ProjectConfigFile is the primary project configuration file name.
	ProjectConfigFile = "config.toml"

	// ProjectConfigFileAlt is the alternative project configuration file name.
	ProjectConfigFileAlt = "klatka.toml"

	// EnvPrefix is the prefix for environment variable overrides.
	EnvPrefix = "KLATKA_"
)

// KoanfLoader handles configuration loading from multiple sources using koanf.
// Precedence order (highest to lowest):
// 1. Environment Variables (KLATKA_*)
// 2. Project Config (.klatka/config.toml or klatka.toml)
// 3. Global Config (~/.klatka/config.toml)
// 4. Defaults
type KoanfLoader struct {
	k       *koanf.Koanf
	homeDir string
	workDir string
}

// NewKoanfLoader creates a new KoanfLoader with default directories.
func NewKoanfLoader() (*KoanfLoader, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get home directory")
	}

	workDir, err := os.Getwd()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get working directory")
	}

	return NewKoanfLoaderWithDirs(homeDir, workDir), nil
}

// NewKoanfLoaderWithDirs creates a new KoanfLoader with custom directories (for testing).
func NewKoanfLoaderWithDirs(homeDir, workDir string) *KoanfLoader {
	return &KoanfLoader{
		k:       koanf.New("."),
		homeDir: homeDir,
		workDir: workDir,
	}
}

// Load loads configuration from all sources with precedence and validates it.
func (l *KoanfLoader) Load() (*config.Config, error) {
	cfg, err := l.LoadWithoutValidation()
	if err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return cfg, nil
}

// LoadWithoutValidation loads configuration without running validation.
// Useful for diagnostics that need to inspect an invalid configuration.
func (l *KoanfLoader) LoadWithoutValidation() (*config.Config, error) {
	// Reset koanf instance for fresh load
	l.k = koanf.New(".")

	// 1. Defaults (lowest priority)
	if err := l.k.Load(confmap.Provider(defaultsToMap(), "."), nil); err != nil {
		return nil, errors.Wrap(err, "failed to load defaults")
	}

	// 2. Global config: ~/.klatka/config.toml
	if globalPath := l.GlobalConfigPath(); fileExists(globalPath) {
		if err := l.loadTOMLFile(globalPath); err != nil {
			return nil, errors.Wrap(err, "failed to load global config")
		}
	}

	// 3. Project config: .klatka/config.toml or klatka.toml
	if projectPath := l.findProjectConfig(); projectPath != "" {
		if err := l.loadTOMLFile(projectPath); err != nil {
			return nil, errors.Wrap(err, "failed to load project config")
		}
	}

	// 4. Environment variables: KLATKA_*
	envOpt := env.Opt{
		Prefix:        EnvPrefix,
		TransformFunc: envTransform,
	}

	if err := l.k.Load(env.Provider(".", envOpt), nil); err != nil {
		return nil, errors.Wrap(err, "failed to load env vars")
	}

	var cfg config.Config

	unmarshalConf := koanf.UnmarshalConf{
		Tag:       "koanf",
		FlatPaths: false,
	}

	if err := l.k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}

	return &cfg, nil
}

// loadTOMLFile loads a TOML file into the koanf state.
func (l *KoanfLoader) loadTOMLFile(path string) error {
	if err := l.k.Load(file.Provider(path), tomlparser.Parser()); err != nil {
		return errors.CombineErrors(ErrInvalidTOML, err)
	}

	return nil
}

// envTransform transforms environment variable names to config paths.
// KLATKA_DOCKER_IMAGE → docker.image
func envTransform(key, value string) (string, any) {
	key = strings.TrimPrefix(key, EnvPrefix)
	key = strings.ToLower(key)
	key = strings.ReplaceAll(key, "_", ".")

	return key, value
}

// GlobalConfigPath returns the path to the global configuration file.
func (l *KoanfLoader) GlobalConfigPath() string {
	return filepath.Join(l.homeDir, GlobalConfigDir, GlobalConfigFile)
}

// ProjectConfigPaths returns the paths to check for project configuration.
func (l *KoanfLoader) ProjectConfigPaths() []string {
	return []string{
		filepath.Join(l.workDir, ProjectConfigDir, ProjectConfigFile),
		filepath.Join(l.workDir, ProjectConfigFileAlt),
	}
}

// HasGlobalConfig checks if a global configuration file exists.
func (l *KoanfLoader) HasGlobalConfig() bool {
	return fileExists(l.GlobalConfigPath())
}

// findProjectConfig checks for project config files and returns the first found.
func (l *KoanfLoader) findProjectConfig() string {
	for _, path := range l.ProjectConfigPaths() {
		if fileExists(path) {
			return path
		}
	}

	return ""
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
