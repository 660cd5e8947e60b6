package doctor

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/dustin/go-humanize"

	internalconfig "github.com/smykla-skalski/klatka/internal/config"
	"github.com/smykla-skalski/klatka/internal/exec"
	"github.com/smykla-skalski/klatka/internal/settings"
	"github.com/smykla-skalski/klatka/pkg/logger"
)

const (
	dockerBinary = "docker"

	// MinDockerVersion is the oldest docker engine known to handle the
	// generated run template (long-form mount syntax, --rm semantics).
	MinDockerVersion = "20.10.0"

	// logSizeWarnBytes is the log size above which the log check warns.
	logSizeWarnBytes = 50 * 1024 * 1024
)

// DockerBinaryChecker checks that the docker client is installed.
type DockerBinaryChecker struct {
	runner exec.CommandRunner
}

// NewDockerBinaryChecker creates a new DockerBinaryChecker.
func NewDockerBinaryChecker(runner exec.CommandRunner) *DockerBinaryChecker {
	return &DockerBinaryChecker{runner: runner}
}

// Name returns the name of the check
func (*DockerBinaryChecker) Name() string {
	return "Docker client available"
}

// Category returns the category of the check
func (*DockerBinaryChecker) Category() Category {
	return CategoryDocker
}

// Check performs the docker binary check
func (c *DockerBinaryChecker) Check(_ context.Context) CheckResult {
	if !c.runner.IsAvailable(dockerBinary) {
		return FailError(c.Name(), "docker not found in PATH").
			WithDetails(
				"Rewritten Go commands run via docker run and will fail without it",
				"Install Docker or disable the rewriter (rewriters.go.enabled = false)",
			)
	}

	return Pass(c.Name(), "docker found in PATH")
}

// DockerVersionChecker checks the docker server version against the minimum.
type DockerVersionChecker struct {
	runner exec.CommandRunner
}

// NewDockerVersionChecker creates a new DockerVersionChecker.
func NewDockerVersionChecker(runner exec.CommandRunner) *DockerVersionChecker {
	return &DockerVersionChecker{runner: runner}
}

// Name returns the name of the check
func (*DockerVersionChecker) Name() string {
	return "Docker server version"
}

// Category returns the category of the check
func (*DockerVersionChecker) Category() Category {
	return CategoryDocker
}

// Check queries the docker server version. An unreachable daemon is a
// warning, not an error: the hook itself never talks to docker.
func (c *DockerVersionChecker) Check(ctx context.Context) CheckResult {
	if !c.runner.IsAvailable(dockerBinary) {
		return Skip(c.Name(), "docker not found")
	}

	result, err := c.runner.Run(ctx, dockerBinary, "version", "--format", "{{.Server.Version}}")
	if err != nil {
		return FailWarning(c.Name(), "could not query docker server").
			WithDetails(strings.TrimSpace(result.Stderr))
	}

	raw := strings.TrimSpace(result.Stdout)

	version, err := semver.NewVersion(raw)
	if err != nil {
		return FailWarning(c.Name(), fmt.Sprintf("unparseable server version %q", raw))
	}

	minimum := semver.MustParse(MinDockerVersion)
	if version.LessThan(minimum) {
		return FailWarning(
			c.Name(),
			fmt.Sprintf("server version %s is older than %s", version, minimum),
		)
	}

	return Pass(c.Name(), "server version "+version.String())
}

// HookChecker checks that klatka is registered in Claude Code settings.
type HookChecker struct {
	binaryPath string
}

// NewHookChecker creates a new HookChecker for the given binary path.
func NewHookChecker(binaryPath string) *HookChecker {
	return &HookChecker{binaryPath: binaryPath}
}

// Name returns the name of the check
func (*HookChecker) Name() string {
	return "Hook registered in Claude settings"
}

// Category returns the category of the check
func (*HookChecker) Category() Category {
	return CategoryHook
}

// Check performs the hook registration check
func (c *HookChecker) Check(_ context.Context) CheckResult {
	paths := []string{
		settings.UserSettingsPath(),
		settings.ProjectSettingsPath(),
	}

	for _, path := range paths {
		if path == "" {
			continue
		}

		registered, err := settings.NewParser(path).IsRegistered(c.binaryPath)
		if err != nil {
			return FailWarning(c.Name(), "could not parse "+path).
				WithDetails(err.Error())
		}

		if registered {
			return Pass(c.Name(), "registered in "+path)
		}
	}

	return FailError(c.Name(), "klatka is not registered as a PreToolUse hook").
		WithDetails("Run: klatka install")
}

// ConfigChecker checks that the configuration loads and validates.
type ConfigChecker struct {
	loader *internalconfig.KoanfLoader
}

// NewConfigChecker creates a new ConfigChecker.
func NewConfigChecker(loader *internalconfig.KoanfLoader) *ConfigChecker {
	return &ConfigChecker{loader: loader}
}

// Name returns the name of the check
func (*ConfigChecker) Name() string {
	return "Configuration valid"
}

// Category returns the category of the check
func (*ConfigChecker) Category() Category {
	return CategoryConfig
}

// Check performs the configuration check
func (c *ConfigChecker) Check(_ context.Context) CheckResult {
	cfg, err := c.loader.Load()
	if err != nil {
		return FailError(c.Name(), "configuration failed to load").
			WithDetails(err.Error())
	}

	if !c.loader.HasGlobalConfig() {
		return Pass(c.Name(), "no config file, using defaults").
			WithDetails("Run: klatka init")
	}

	return Pass(c.Name(), fmt.Sprintf("image %s, workdir %s", cfg.Docker.Image, cfg.Docker.Workdir))
}

// LogChecker checks the log file size.
type LogChecker struct{}

// NewLogChecker creates a new LogChecker.
func NewLogChecker() *LogChecker {
	return &LogChecker{}
}

// Name returns the name of the check
func (*LogChecker) Name() string {
	return "Log file size"
}

// Category returns the category of the check
func (*LogChecker) Category() Category {
	return CategoryLog
}

// Check performs the log file check
func (c *LogChecker) Check(_ context.Context) CheckResult {
	path, err := logger.DefaultLogPath()
	if err != nil {
		return Skip(c.Name(), "could not resolve log path")
	}

	info, err := os.Stat(path)
	if err != nil {
		return Pass(c.Name(), "no log file yet")
	}

	size := uint64(info.Size())

	if info.Size() > logSizeWarnBytes {
		return FailWarning(c.Name(), humanize.Bytes(size)+" at "+path).
			WithDetails("The log is append-only; truncate it when it gets this large")
	}

	return Pass(c.Name(), humanize.Bytes(size))
}
