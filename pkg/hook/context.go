// Package hook provides core types for Claude Code hook context.
package hook

//go:generate enumer -type=EventType -trimprefix=EventType -json -text
//go:generate enumer -type=ToolType -trimprefix=ToolType -json -text

// EventType represents the type of hook event.
type EventType int

const (
	// EventTypeUnknown represents an unknown event type.
	EventTypeUnknown EventType = iota

	// EventTypePreToolUse is triggered before a tool is executed.
	EventTypePreToolUse

	// EventTypePostToolUse is triggered after a tool is executed.
	EventTypePostToolUse

	// EventTypeNotification is triggered for user notifications.
	EventTypeNotification
)

// ToolType represents the type of tool being used.
type ToolType int

const (
	// ToolTypeUnknown represents an unknown tool type.
	ToolTypeUnknown ToolType = iota

	// ToolTypeBash represents the Bash tool for executing shell commands.
	ToolTypeBash

	// ToolTypeWrite represents the Write tool for creating files.
	ToolTypeWrite

	// ToolTypeEdit represents the Edit tool for modifying files.
	ToolTypeEdit

	// ToolTypeRead represents the Read tool for reading files.
	ToolTypeRead

	// ToolTypeGrep represents the Grep tool for searching files.
	ToolTypeGrep

	// ToolTypeGlob represents the Glob tool for finding files by pattern.
	ToolTypeGlob
)

// ToolInput contains the raw tool input data.
type ToolInput struct {
	// Command is the shell command for Bash tool.
	Command string `json:"command,omitempty"`

	// Description is the human-readable command description Claude sends
	// alongside Bash commands.
	Description string `json:"description,omitempty"`

	// FilePath is the file path for file operations.
	FilePath string `json:"file_path,omitempty"`
}

// Context represents the complete hook invocation context.
type Context struct {
	// EventType is the type of hook event (PreToolUse, PostToolUse, Notification).
	EventType EventType

	// ToolName is the name of the tool being invoked.
	ToolName ToolType

	// ToolInput contains the tool-specific input parameters.
	ToolInput ToolInput

	// Cwd is the working directory of the Claude Code session.
	Cwd string

	// SessionID is the unique identifier for the Claude Code session.
	SessionID string

	// RawJSON contains the original JSON input for advanced parsing.
	RawJSON string
}

// GetCommand returns the command from ToolInput.
func (c *Context) GetCommand() string {
	return c.ToolInput.Command
}

// IsBashTool returns true if the tool is Bash.
func (c *Context) IsBashTool() bool {
	return c.ToolName == ToolTypeBash
}

// HasSessionID returns true if a session ID is present.
func (c *Context) HasSessionID() bool {
	return c.SessionID != ""
}
