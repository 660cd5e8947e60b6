package config

import "github.com/smykla-skalski/klatka/pkg/config"

// Default configuration values. The docker defaults reproduce the hook's
// canonical container template and must stay in sync with the documented
// rewrite output.
const (
	// DefaultImage is the container image used when none is configured.
	DefaultImage = "golang:1.25"

	// DefaultWorkdir is the in-container mount point and working directory.
	DefaultWorkdir = "/app"
)

// Defaults returns the default configuration.
func Defaults() *config.Config {
	return &config.Config{
		Docker: config.DockerConfig{
			Image:   DefaultImage,
			Workdir: DefaultWorkdir,
		},
		Rewriters: config.RewritersConfig{
			Go: config.GoRewriterConfig{
				Enabled: true,
			},
		},
	}
}

// defaultsToMap returns the defaults as a flat koanf confmap.
func defaultsToMap() map[string]any {
	return map[string]any{
		"docker.image":         DefaultImage,
		"docker.workdir":       DefaultWorkdir,
		"docker.flags":         []string{},
		"rewriters.go.enabled": true,
		"rewriters.go.paths":   []string{},
		"log.file":             "",
		"log.debug":            false,
		"log.trace":            false,
	}
}
