// Package golang provides the Go toolchain containerizing rewriter.
package golang

import (
	"context"
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/smykla-skalski/klatka/internal/rewriter"
	"github.com/smykla-skalski/klatka/pkg/config"
	"github.com/smykla-skalski/klatka/pkg/hook"
	"github.com/smykla-skalski/klatka/pkg/logger"
)

// goCommandPattern matches commands that invoke the go tool: optional leading
// whitespace, the literal token "go", then at least one whitespace character.
// Deliberately literal: "gofmt" does not match, a command literally named
// "go" with arguments does. Kept this loose on purpose.
var goCommandPattern = regexp.MustCompile(`^\s*go\s+`)

// ContainerRewriter rewrites Go toolchain commands to run inside an ephemeral
// Docker container with the working directory mounted read-write.
type ContainerRewriter struct {
	*rewriter.BaseRewriter
	cfg *config.Config
}

// NewContainerRewriter creates a new ContainerRewriter instance.
func NewContainerRewriter(log logger.Logger, cfg *config.Config) *ContainerRewriter {
	return &ContainerRewriter{
		BaseRewriter: rewriter.NewBaseRewriter("rewrite-go-container", log),
		cfg:          cfg,
	}
}

// Rewrite wraps a matching Go command in the docker run template. The original
// command string is appended verbatim, leading whitespace included, so the
// container runs exactly what Claude asked for.
func (r *ContainerRewriter) Rewrite(_ context.Context, hookCtx *hook.Context) *rewriter.Decision {
	log := r.Logger()

	command := hookCtx.GetCommand()
	if !goCommandPattern.MatchString(command) {
		log.Debug("command does not invoke go, passing through")
		return nil
	}

	if !r.cfg.Rewriters.Go.Enabled {
		log.Info("go rewriter disabled, passing through")
		return nil
	}

	if !r.cwdAllowed(hookCtx) {
		log.Info("cwd not covered by configured paths, passing through",
			"cwd", hookCtx.Cwd,
		)

		return nil
	}

	image := r.cfg.Docker.Image
	rewritten := r.containerPrefix() + " " + command

	log.Info("rewriting go command",
		"image", image,
		"command", command,
	)

	return r.Decide(
		rewritten,
		fmt.Sprintf("Running Go command in %s container", image),
	)
}

// containerPrefix builds the docker run template up to and including the
// image tag. The session directory is mounted read-write at the configured
// workdir, which is also the container's working directory.
func (r *ContainerRewriter) containerPrefix() string {
	workdir := r.cfg.Docker.Workdir

	parts := []string{"docker", "run", "--rm"}
	parts = append(parts, r.cfg.Docker.Flags...)
	parts = append(parts,
		fmt.Sprintf(`-v "$(pwd):%s"`, workdir),
		"-w", workdir,
		r.cfg.Docker.Image,
	)

	return strings.Join(parts, " ")
}

// cwdAllowed reports whether the session working directory is covered by the
// configured path globs. An empty glob list allows everywhere. Glob errors
// and an unresolvable cwd fall back to allowing the rewrite.
func (r *ContainerRewriter) cwdAllowed(hookCtx *hook.Context) bool {
	patterns := r.cfg.Rewriters.Go.Paths
	if len(patterns) == 0 {
		return true
	}

	cwd := hookCtx.Cwd
	if cwd == "" {
		wd, err := os.Getwd()
		if err != nil {
			return true
		}

		cwd = wd
	}

	for _, pattern := range patterns {
		matched, err := doublestar.Match(pattern, cwd)
		if err != nil {
			continue
		}

		if matched {
			return true
		}
	}

	return false
}
