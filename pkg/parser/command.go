// Package parser provides Bash command parsing capabilities using mvdan.cc/sh
package parser

import (
	"fmt"
	"strings"

	"mvdan.cc/sh/v3/syntax"
)

// Location represents position in source code.
type Location struct {
	Line   uint
	Column uint
}

// Command represents a parsed command with metadata.
type Command struct {
	Name     string   // Command name (e.g., "go")
	Args     []string // Command arguments
	Location Location // Position in source
}

// String returns a string representation of the command.
func (c *Command) String() string {
	if len(c.Args) == 0 {
		return c.Name
	}

	return fmt.Sprintf("%s %s", c.Name, strings.Join(c.Args, " "))
}

// HasArg returns true if any argument equals the given value.
func (c *Command) HasArg(arg string) bool {
	for _, a := range c.Args {
		if a == arg {
			return true
		}
	}

	return false
}

// wordToString converts syntax.Word to string, flattening literal and
// quoted parts. Expansions that cannot be resolved statically are skipped.
func wordToString(word *syntax.Word) string {
	if word == nil {
		return ""
	}

	var result strings.Builder

	for _, part := range word.Parts {
		switch p := part.(type) {
		case *syntax.Lit:
			result.WriteString(p.Value)
		case *syntax.SglQuoted:
			result.WriteString(p.Value)
		case *syntax.DblQuoted:
			for _, dqPart := range p.Parts {
				if lit, ok := dqPart.(*syntax.Lit); ok {
					result.WriteString(lit.Value)
				}
			}
		}
	}

	return result.String()
}

// wordsToStrings converts a slice of syntax.Word to strings.
func wordsToStrings(words []*syntax.Word) []string {
	result := make([]string, 0, len(words))

	for _, word := range words {
		result = append(result, wordToString(word))
	}

	return result
}
