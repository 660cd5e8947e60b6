package hookresponse

import (
	"github.com/smykla-skalski/klatka/internal/rewriter"
	"github.com/smykla-skalski/klatka/pkg/hook"
)

// PermissionAllow is the permission decision for accepted (possibly
// rewritten) tool invocations.
const PermissionAllow = "allow"

// Build constructs a HookResponse from a rewrite decision.
// Returns nil when there is no decision (clean pass-through, no output).
func Build(eventType hook.EventType, decision *rewriter.Decision) *HookResponse {
	if decision == nil {
		return nil
	}

	return &HookResponse{
		HookSpecificOutput: &HookSpecificOutput{
			HookEventName:      eventType.String(),
			PermissionDecision: PermissionAllow,
			UpdatedInput: &UpdatedInput{
				Command: decision.Command,
			},
			PermissionDecisionReason: decision.Reason,
		},
	}
}
