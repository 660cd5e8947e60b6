// Package parser provides JSON input parsing for Claude Code hooks.
package parser

import (
	"encoding/json"
	"io"
	"os"

	"github.com/cockroachdb/errors"

	"github.com/smykla-skalski/klatka/pkg/hook"
)

var (
	// ErrEmptyInput is returned when the input is empty.
	ErrEmptyInput = errors.New("empty input")

	// ErrInvalidJSON is returned when the input is not valid JSON.
	ErrInvalidJSON = errors.New("invalid JSON")
)

// JSONInput represents the raw JSON envelope Claude Code sends on stdin.
type JSONInput struct {
	ToolName         string          `json:"tool_name,omitempty"`
	Tool             string          `json:"tool,omitempty"`
	ToolInput        json.RawMessage `json:"tool_input,omitempty"`
	Command          string          `json:"command,omitempty"`
	Cwd              string          `json:"cwd,omitempty"`
	HookEventName    string          `json:"hook_event_name,omitempty"`
	NotificationType string          `json:"notification_type,omitempty"`
	SessionID        string          `json:"session_id,omitempty"`
}

// JSONParser parses JSON input from stdin or environment variable.
type JSONParser struct {
	reader io.Reader
}

// NewJSONParser creates a new JSONParser that reads from the given reader.
func NewJSONParser(reader io.Reader) *JSONParser {
	return &JSONParser{
		reader: reader,
	}
}

// Parse parses the JSON input and extracts the hook context.
func (p *JSONParser) Parse(eventType hook.EventType) (*hook.Context, error) {
	jsonBytes, err := io.ReadAll(p.reader)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read input")
	}

	// If stdin is empty, try environment variable
	if len(jsonBytes) == 0 {
		envInput := os.Getenv("CLAUDE_TOOL_INPUT")
		if envInput == "" {
			return nil, ErrEmptyInput
		}

		jsonBytes = []byte(envInput)
	}

	var input JSONInput

	if unmarshalErr := json.Unmarshal(jsonBytes, &input); unmarshalErr != nil {
		return nil, errors.CombineErrors(ErrInvalidJSON, unmarshalErr)
	}

	// Older Claude Code versions used "tool" instead of "tool_name"
	toolName := input.ToolName
	if toolName == "" {
		toolName = input.Tool
	}

	var toolInput hook.ToolInput

	if len(input.ToolInput) > 0 {
		if unmarshalErr := json.Unmarshal(input.ToolInput, &toolInput); unmarshalErr != nil {
			// If tool_input fails to parse, try extracting command directly
			toolInput.Command = input.Command
		}
	} else {
		// No tool_input, use top-level command
		toolInput.Command = input.Command
	}

	// Unknown tool names map to ToolTypeUnknown so the hook passes through
	parsedToolType, parseErr := hook.ToolTypeString(toolName)
	if parseErr != nil {
		parsedToolType = hook.ToolTypeUnknown
	}

	// The envelope's own event name wins over the flag-provided default
	if input.HookEventName != "" {
		if parsed, evErr := hook.EventTypeString(input.HookEventName); evErr == nil {
			eventType = parsed
		}
	}

	return &hook.Context{
		EventType: eventType,
		ToolName:  parsedToolType,
		ToolInput: toolInput,
		Cwd:       input.Cwd,
		SessionID: input.SessionID,
		RawJSON:   string(jsonBytes),
	}, nil
}
