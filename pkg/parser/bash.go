package parser

import (
	"strings"

	"github.com/cockroachdb/errors"
	"mvdan.cc/sh/v3/syntax"
)

var (
	// ErrEmptyCommand is returned when trying to parse an empty command.
	ErrEmptyCommand = errors.New("empty command")
	// ErrParseFailed is returned when parsing fails.
	ErrParseFailed = errors.New("failed to parse command")
)

// ParseResult contains the results of parsing a Bash command line.
type ParseResult struct {
	Commands []Command // All commands found, in source order
}

// BashParser parses Bash commands using mvdan.cc/sh.
type BashParser struct {
	parser *syntax.Parser
}

// NewBashParser creates a new BashParser instance.
func NewBashParser() *BashParser {
	return &BashParser{
		parser: syntax.NewParser(),
	}
}

// Parse parses a Bash command string and extracts all simple commands,
// including those inside chains, pipelines, subshells, and substitutions.
func (p *BashParser) Parse(command string) (*ParseResult, error) {
	if strings.TrimSpace(command) == "" {
		return nil, ErrEmptyCommand
	}

	file, err := p.parser.Parse(strings.NewReader(command), "")
	if err != nil {
		return nil, errors.Wrap(ErrParseFailed, err.Error())
	}

	walker := &astWalker{
		commands: make([]Command, 0),
	}

	syntax.Walk(file, walker.visit)

	return &ParseResult{
		Commands: walker.commands,
	}, nil
}

// HasCommand checks if the parse result contains a command with the given name.
func (r *ParseResult) HasCommand(name string) bool {
	for _, cmd := range r.Commands {
		if cmd.Name == name {
			return true
		}
	}

	return false
}

// GetCommands returns all commands with the given name.
func (r *ParseResult) GetCommands(name string) []Command {
	result := make([]Command, 0)

	for _, cmd := range r.Commands {
		if cmd.Name == name {
			result = append(result, cmd)
		}
	}

	return result
}

// LeadingName returns the name of the first command in source order,
// or an empty string when nothing was parsed.
func (r *ParseResult) LeadingName() string {
	if len(r.Commands) == 0 {
		return ""
	}

	return r.Commands[0].Name
}

// astWalker walks the AST and collects simple commands.
type astWalker struct {
	commands []Command
}

// visit is called for each node in the AST. Compound nodes (subshells,
// command substitutions) are descended into by syntax.Walk.
func (w *astWalker) visit(node syntax.Node) bool {
	if call, ok := node.(*syntax.CallExpr); ok {
		w.extractCommand(call)
	}

	return true
}

// extractCommand extracts a command from a CallExpr node.
func (w *astWalker) extractCommand(call *syntax.CallExpr) {
	if len(call.Args) == 0 {
		return
	}

	name := wordToString(call.Args[0])
	if name == "" {
		return
	}

	w.commands = append(w.commands, Command{
		Name: name,
		Args: wordsToStrings(call.Args[1:]),
		Location: Location{
			Line:   call.Pos().Line(),
			Column: call.Pos().Col(),
		},
	})
}
