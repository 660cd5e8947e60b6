// Package config provides the configuration schema for klatka.
package config

import (
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/cockroachdb/errors"
)

var (
	// ErrEmptyImage is returned when the docker image is empty.
	ErrEmptyImage = errors.New("docker image must not be empty")

	// ErrRelativeWorkdir is returned when the in-container workdir is not absolute.
	ErrRelativeWorkdir = errors.New("docker workdir must be an absolute path")

	// ErrInvalidGlob is returned when a path glob pattern is malformed.
	ErrInvalidGlob = errors.New("invalid path glob")
)

// Config is the root configuration for klatka.
type Config struct {
	// Docker describes the container template used for rewritten commands.
	Docker DockerConfig `json:"docker" koanf:"docker" toml:"docker"`

	// Rewriters configures the individual command rewriters.
	Rewriters RewritersConfig `json:"rewriters" koanf:"rewriters" toml:"rewriters"`

	// Log configures file logging.
	Log LogConfig `json:"log" koanf:"log" toml:"log"`
}

// DockerConfig describes the docker run template.
type DockerConfig struct {
	// Image is the container image tag to run commands in.
	Image string `json:"image" koanf:"image" toml:"image" jsonschema:"default=golang:1.25"`

	// Workdir is the in-container mount point and working directory.
	Workdir string `json:"workdir" koanf:"workdir" toml:"workdir" jsonschema:"default=/app"`

	// Flags are extra docker run flags inserted before the image tag.
	Flags []string `json:"flags,omitempty" koanf:"flags" toml:"flags"`
}

// RewritersConfig configures the command rewriters.
type RewritersConfig struct {
	// Go configures the Go toolchain rewriter.
	Go GoRewriterConfig `json:"go" koanf:"go" toml:"go"`
}

// GoRewriterConfig configures the Go toolchain rewriter.
type GoRewriterConfig struct {
	// Enabled toggles the rewriter. When false every command passes through.
	Enabled bool `json:"enabled" koanf:"enabled" toml:"enabled" jsonschema:"default=true"`

	// Paths holds doublestar globs. When non-empty, commands are only
	// rewritten when the session working directory matches one of them.
	Paths []string `json:"paths,omitempty" koanf:"paths" toml:"paths"`
}

// LogConfig configures file logging.
type LogConfig struct {
	// File is the log file path. Empty means ~/.klatka/klatka.log.
	File string `json:"file,omitempty" koanf:"file" toml:"file"`

	// Debug enables info-level logging.
	Debug bool `json:"debug" koanf:"debug" toml:"debug"`

	// Trace enables debug-level logging.
	Trace bool `json:"trace" koanf:"trace" toml:"trace"`
}

// Validate checks the configuration for values the rewriter cannot work with.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Docker.Image) == "" {
		return ErrEmptyImage
	}

	if !strings.HasPrefix(c.Docker.Workdir, "/") {
		return errors.Wrapf(ErrRelativeWorkdir, "got %q", c.Docker.Workdir)
	}

	for _, pattern := range c.Rewriters.Go.Paths {
		if !doublestar.ValidatePattern(pattern) {
			return errors.Wrapf(ErrInvalidGlob, "%q", pattern)
		}
	}

	return nil
}
