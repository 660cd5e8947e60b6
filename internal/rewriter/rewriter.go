// Package rewriter provides the command rewriter framework and registry.
package rewriter

import (
	"context"

	"github.com/smykla-skalski/klatka/pkg/hook"
	"github.com/smykla-skalski/klatka/pkg/logger"
)

// Rewriter inspects a hook context and may propose a replacement command.
type Rewriter interface {
	// Name returns the rewriter name.
	Name() string

	// Rewrite returns a Decision when the command should be replaced,
	// or nil to let the invocation pass through unchanged.
	Rewrite(ctx context.Context, hookCtx *hook.Context) *Decision
}

// Decision describes a single command substitution.
type Decision struct {
	// Rewriter is the name of the rewriter that produced the decision.
	Rewriter string

	// Command is the replacement command string.
	Command string

	// Reason is the human-readable explanation shown to Claude.
	Reason string
}

// BaseRewriter provides common rewriter functionality.
type BaseRewriter struct {
	name   string
	logger logger.Logger
}

// NewBaseRewriter creates a new BaseRewriter.
func NewBaseRewriter(name string, logger logger.Logger) *BaseRewriter {
	return &BaseRewriter{
		name:   name,
		logger: logger,
	}
}

// Name returns the rewriter name.
func (r *BaseRewriter) Name() string {
	return r.name
}

// Logger returns the logger.
//
//nolint:ireturn // interface for polymorphism
func (r *BaseRewriter) Logger() logger.Logger {
	return r.logger
}

// Decide builds a Decision attributed to this rewriter.
func (r *BaseRewriter) Decide(command, reason string) *Decision {
	return &Decision{
		Rewriter: r.name,
		Command:  command,
		Reason:   reason,
	}
}
