// Package dispatcher orchestrates command rewriting for hook contexts.
package dispatcher

import (
	"context"

	"github.com/smykla-skalski/klatka/internal/rewriter"
	"github.com/smykla-skalski/klatka/pkg/hook"
	"github.com/smykla-skalski/klatka/pkg/logger"
	bashparser "github.com/smykla-skalski/klatka/pkg/parser"
)

// Dispatcher selects matching rewriters and produces at most one decision
// per invocation.
type Dispatcher struct {
	registry *rewriter.Registry
	logger   logger.Logger
}

// NewDispatcher creates a new Dispatcher.
func NewDispatcher(registry *rewriter.Registry, logger logger.Logger) *Dispatcher {
	return &Dispatcher{
		registry: registry,
		logger:   logger,
	}
}

// Dispatch runs matching rewriters in registration order and returns the
// first decision, or nil when every rewriter passes the command through.
// A panicking rewriter is treated as pass-through: the hook must never take
// down the host tool's execution path.
func (d *Dispatcher) Dispatch(ctx context.Context, hookCtx *hook.Context) *rewriter.Decision {
	d.logger.Info("dispatching",
		"event", hookCtx.EventType,
		"tool", hookCtx.ToolName,
	)

	if hookCtx.IsBashTool() {
		d.logDiagnostics(hookCtx)
	}

	rewriters := d.registry.FindRewriters(hookCtx)
	if len(rewriters) == 0 {
		d.logger.Info("no rewriters matched",
			"event", hookCtx.EventType,
			"tool", hookCtx.ToolName,
		)

		return nil
	}

	for _, rw := range rewriters {
		decision := d.run(ctx, rw, hookCtx)
		if decision != nil {
			d.logger.Info("rewriter decided",
				"rewriter", decision.Rewriter,
				"reason", decision.Reason,
			)

			return decision
		}
	}

	return nil
}

// run invokes a single rewriter, converting panics to pass-through.
func (d *Dispatcher) run(
	ctx context.Context,
	rw rewriter.Rewriter,
	hookCtx *hook.Context,
) (decision *rewriter.Decision) {
	defer func() {
		if r := recover(); r != nil {
			d.logger.Error("rewriter panicked",
				"rewriter", rw.Name(),
				"panic", r,
			)

			decision = nil
		}
	}()

	return rw.Rewrite(ctx, hookCtx)
}

// logDiagnostics records the parsed shape of a Bash command for debugging.
// Parse failures are expected for exotic shell syntax and stay silent.
func (d *Dispatcher) logDiagnostics(hookCtx *hook.Context) {
	command := hookCtx.GetCommand()
	if command == "" {
		return
	}

	result, err := bashparser.NewBashParser().Parse(command)
	if err != nil {
		d.logger.Debug("bash parse failed", "error", err)
		return
	}

	d.logger.Debug("bash command parsed",
		"leading", result.LeadingName(),
		"commands", len(result.Commands),
	)
}
