// Package main provides the CLI entry point for klatka.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	internalconfig "github.com/smykla-skalski/klatka/internal/config"
	"github.com/smykla-skalski/klatka/internal/dispatcher"
	"github.com/smykla-skalski/klatka/internal/hookresponse"
	"github.com/smykla-skalski/klatka/internal/parser"
	"github.com/smykla-skalski/klatka/internal/rewriter"
	"github.com/smykla-skalski/klatka/internal/rewriters/golang"
	"github.com/smykla-skalski/klatka/pkg/config"
	"github.com/smykla-skalski/klatka/pkg/hook"
	"github.com/smykla-skalski/klatka/pkg/logger"
)

const (
	// ExitCodeOK is the only exit code the hook path ever uses. The hook is
	// fail-open: whatever goes wrong, Claude Code must keep running.
	ExitCodeOK = 0

	// CommandDisplayLength is the maximum length of command to display in logs.
	CommandDisplayLength = 50
)

var (
	hookType    string
	debugMode   bool
	traceMode   bool
	noColorFlag bool
)

var rootCmd = &cobra.Command{
	Use:   "klatka",
	Short: "Containerize Go commands issued by Claude Code",
	Long: `klatka is a Claude Code PreToolUse hook that intercepts Bash invocations
of the Go toolchain and rewrites them to run inside an ephemeral Docker
container, with the working directory mounted at the container workdir.

Invoked without a subcommand it runs the hook: reads one JSON envelope from
stdin, writes at most one JSON decision to stdout, and always exits 0.`,
	RunE:          runHook,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.Flags().
		StringVar(&hookType, "hook-type", "", "Hook event type (PreToolUse, PostToolUse, Notification)")
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&traceMode, "trace", false, "Enable trace logging")
	rootCmd.PersistentFlags().BoolVar(&noColorFlag, "no-color", false, "Disable colored output")
}

func main() {
	os.Exit(mainWithExitCode())
}

func mainWithExitCode() (exitCode int) {
	// The hook path swallows panics: a crashing filter must never block the
	// host tool. Subcommands report errors normally.
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "panic: %v\n", r)

			exitCode = ExitCodeOK
		}
	}()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)

		return 1
	}

	return ExitCodeOK
}

// runHook executes one hook invocation. Every failure degrades to "no
// output, exit 0": the error return is always nil.
func runHook(cmd *cobra.Command, _ []string) error {
	cfg := loadConfigOrDefaults()
	log := newLogger(cfg)

	eventType := resolveEventType()

	log.Info("hook invoked",
		"eventType", eventType,
		"debug", debugMode,
		"trace", traceMode,
	)

	// Notification events only ring the terminal bell
	if eventType == hook.EventTypeNotification {
		fmt.Fprint(cmd.OutOrStdout(), "\a")
		log.Info("notification bell sent")

		return nil
	}

	jsonParser := parser.NewJSONParser(cmd.InOrStdin())

	hookCtx, err := jsonParser.Parse(eventType)
	if err != nil {
		if errors.Is(err, parser.ErrEmptyInput) {
			log.Info("no input provided, passing through")
		} else {
			log.Info("unparseable input, passing through", "error", err)
		}

		return nil
	}

	log.Info("context parsed",
		"tool", hookCtx.ToolName,
		"command", truncate(hookCtx.GetCommand(), CommandDisplayLength),
	)

	disp := dispatcher.NewDispatcher(buildRegistry(log, cfg), log)

	decision := disp.Dispatch(cmd.Context(), hookCtx)

	response := hookresponse.Build(hookCtx.EventType, decision)
	if response == nil {
		log.Info("pass-through, no output")

		return nil
	}

	data, err := json.Marshal(response)
	if err != nil {
		log.Error("failed to marshal response", "error", err)

		return nil
	}

	fmt.Fprintln(cmd.OutOrStdout(), string(data))

	return nil
}

// buildRegistry wires up all rewriters. Currently a single one: the Go
// toolchain containerizer, limited to Bash PreToolUse invocations.
func buildRegistry(log logger.Logger, cfg *config.Config) *rewriter.Registry {
	registry := rewriter.NewRegistry()

	registry.Register(
		golang.NewContainerRewriter(log, cfg),
		rewriter.And(
			rewriter.EventTypeIs(hook.EventTypePreToolUse),
			rewriter.ToolTypeIs(hook.ToolTypeBash),
		),
	)

	return registry
}

// loadConfigOrDefaults loads the layered configuration, falling back to
// built-in defaults when loading fails. The hook path never errors out over
// a broken config file.
func loadConfigOrDefaults() *config.Config {
	loader, err := internalconfig.NewKoanfLoader()
	if err != nil {
		return internalconfig.Defaults()
	}

	cfg, err := loader.Load()
	if err != nil {
		return internalconfig.Defaults()
	}

	return cfg
}

// newLogger builds the file logger from config and flags. Logging failures
// degrade to a no-op logger.
//
//nolint:ireturn // callers only need the Logger interface
func newLogger(cfg *config.Config) logger.Logger {
	logPath := cfg.Log.File
	if logPath == "" {
		defaultPath, err := logger.DefaultLogPath()
		if err != nil {
			return logger.NewNoOpLogger()
		}

		logPath = defaultPath
	}

	log, err := logger.NewFileLogger(
		logPath,
		debugMode || cfg.Log.Debug,
		traceMode || cfg.Log.Trace,
	)
	if err != nil {
		return logger.NewNoOpLogger()
	}

	return log
}

// resolveEventType maps the --hook-type flag to an event type, defaulting to
// PreToolUse for unknown or missing values.
func resolveEventType() hook.EventType {
	if hookType == "" {
		return hook.EventTypePreToolUse
	}

	eventType, err := hook.EventTypeString(hookType)
	if err != nil || eventType == hook.EventTypeUnknown {
		return hook.EventTypePreToolUse
	}

	return eventType
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}

	return s[:maxLen] + "..."
}
