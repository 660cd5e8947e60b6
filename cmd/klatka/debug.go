package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/smykla-skalski/klatka/internal/dispatcher"
	"github.com/smykla-skalski/klatka/internal/hookresponse"
	"github.com/smykla-skalski/klatka/pkg/hook"
	"github.com/smykla-skalski/klatka/pkg/logger"
	"github.com/smykla-skalski/klatka/pkg/parser"
)

var debugCmd = &cobra.Command{
	Use:   "debug <command>",
	Short: "Show how a Bash command would be handled",
	Long: `Runs the rewriter pipeline against a command as if Claude Code had sent it
in a PreToolUse envelope, and prints the parsed shell structure along with
the resulting decision. Useful for checking path filters and custom images
without wiring up a real hook invocation.

Example:

  klatka debug 'go test ./...'`,
	Args: cobra.ExactArgs(1),
	RunE: runDebug,
}

func init() {
	rootCmd.AddCommand(debugCmd)
}

func runDebug(cmd *cobra.Command, args []string) error {
	command := args[0]
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "Command: %s\n\n", command)

	printShellStructure(out, command)

	cfg := loadConfigOrDefaults()
	log := logger.NewNoOpLogger()

	hookCtx := &hook.Context{
		EventType: hook.EventTypePreToolUse,
		ToolName:  hook.ToolTypeBash,
		ToolInput: hook.ToolInput{Command: command},
	}

	disp := dispatcher.NewDispatcher(buildRegistry(log, cfg), log)

	decision := disp.Dispatch(cmd.Context(), hookCtx)
	if decision == nil {
		fmt.Fprintln(out, "Decision: pass through (no rewriter matched)")

		return nil
	}

	fmt.Fprintf(out, "Decision: rewrite by %s\n", decision.Rewriter)
	fmt.Fprintf(out, "Reason:   %s\n", decision.Reason)
	fmt.Fprintf(out, "Rewritten:\n  %s\n\n", decision.Command)

	response := hookresponse.Build(hookCtx.EventType, decision)

	data, err := json.MarshalIndent(response, "", "  ")
	if err != nil {
		return errors.Wrap(err, "failed to marshal response")
	}

	fmt.Fprintf(out, "Hook output:\n%s\n", data)

	return nil
}

func printShellStructure(out io.Writer, command string) {
	result, err := parser.NewBashParser().Parse(command)
	if err != nil {
		fmt.Fprintf(out, "Shell parse: failed (%v)\n\n", err)

		return
	}

	fmt.Fprintf(out, "Shell parse: %d simple command(s)\n", len(result.Commands))

	for _, c := range result.Commands {
		line := c.Name
		if len(c.Args) > 0 {
			line += " " + strings.Join(c.Args, " ")
		}

		fmt.Fprintf(out, "  [%d:%d] %s\n", c.Location.Line, c.Location.Column, line)
	}

	fmt.Fprintln(out)
}
