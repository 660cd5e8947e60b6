// Package hookresponse builds structured JSON responses for Claude Code hooks.
package hookresponse

// HookResponse is the top-level JSON structure written to stdout.
type HookResponse struct {
	HookSpecificOutput *HookSpecificOutput `json:"hookSpecificOutput,omitempty"`
}

// HookSpecificOutput carries the permission decision and the replacement
// input for Claude.
type HookSpecificOutput struct {
	HookEventName            string        `json:"hookEventName"`
	PermissionDecision       string        `json:"permissionDecision"`
	UpdatedInput             *UpdatedInput `json:"updatedInput,omitempty"`
	PermissionDecisionReason string        `json:"permissionDecisionReason,omitempty"` // shown to Claude
}

// UpdatedInput is the tool input substituted for the original one.
type UpdatedInput struct {
	Command string `json:"command"`
}
