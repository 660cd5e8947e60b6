package rewriter

import (
	"regexp"
	"strings"

	"github.com/smykla-skalski/klatka/pkg/hook"
	"github.com/smykla-skalski/klatka/pkg/parser"
)

// Predicate determines if a rewriter should be applied to a context.
type Predicate func(*hook.Context) bool

// Registration represents a rewriter registration with its predicate.
type Registration struct {
	Rewriter  Rewriter
	Predicate Predicate
}

// Registry manages rewriter registrations and selection.
type Registry struct {
	registrations []Registration
}

// NewRegistry creates a new empty rewriter registry.
func NewRegistry() *Registry {
	return &Registry{
		registrations: make([]Registration, 0),
	}
}

// Register adds a rewriter with a predicate to the registry.
func (r *Registry) Register(rewriter Rewriter, predicate Predicate) {
	r.registrations = append(r.registrations, Registration{
		Rewriter:  rewriter,
		Predicate: predicate,
	})
}

// FindRewriters returns all rewriters whose predicates match the context,
// in registration order.
func (r *Registry) FindRewriters(ctx *hook.Context) []Rewriter {
	rewriters := make([]Rewriter, 0)

	for _, reg := range r.registrations {
		if reg.Predicate(ctx) {
			rewriters = append(rewriters, reg.Rewriter)
		}
	}

	return rewriters
}

// Count returns the number of registered rewriters.
func (r *Registry) Count() int {
	return len(r.registrations)
}

// Common Predicates

// EventTypeIs returns a predicate that matches the given event type.
func EventTypeIs(eventType hook.EventType) Predicate {
	return func(ctx *hook.Context) bool {
		return ctx.EventType == eventType
	}
}

// ToolTypeIs returns a predicate that matches the given tool type.
func ToolTypeIs(toolType hook.ToolType) Predicate {
	return func(ctx *hook.Context) bool {
		return ctx.ToolName == toolType
	}
}

// CommandMatches returns a predicate that matches if the command matches the pattern.
func CommandMatches(pattern string) Predicate {
	re := regexp.MustCompile(pattern)

	return func(ctx *hook.Context) bool {
		return re.MatchString(ctx.GetCommand())
	}
}

// CommandContains returns a predicate that matches if the command contains the substring.
func CommandContains(substring string) Predicate {
	return func(ctx *hook.Context) bool {
		return strings.Contains(ctx.GetCommand(), substring)
	}
}

// CommandInvokes returns a predicate that matches if the parsed command line
// invokes the given executable anywhere in a chain, pipe, or subshell.
// Commands that fail to parse never match.
func CommandInvokes(name string) Predicate {
	return func(ctx *hook.Context) bool {
		bashParser := parser.NewBashParser()

		result, err := bashParser.Parse(ctx.GetCommand())
		if err != nil {
			return false
		}

		return result.HasCommand(name)
	}
}

// Predicate Combinators

// And returns a predicate that matches if all predicates match.
func And(predicates ...Predicate) Predicate {
	return func(ctx *hook.Context) bool {
		for _, p := range predicates {
			if !p(ctx) {
				return false
			}
		}

		return true
	}
}

// Or returns a predicate that matches if any predicate matches.
func Or(predicates ...Predicate) Predicate {
	return func(ctx *hook.Context) bool {
		for _, p := range predicates {
			if p(ctx) {
				return true
			}
		}

		return false
	}
}

// Not returns a predicate that inverts the given predicate.
func Not(predicate Predicate) Predicate {
	return func(ctx *hook.Context) bool {
		return !predicate(ctx)
	}
}

// Always returns a predicate that always matches.
func Always() Predicate {
	return func(*hook.Context) bool {
		return true
	}
}

// Never returns a predicate that never matches.
func Never() Predicate {
	return func(*hook.Context) bool {
		return false
	}
}
