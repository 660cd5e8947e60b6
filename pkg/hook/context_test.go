package hook_test

import (
	"encoding/json"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/smykla-skalski/klatka/pkg/hook"
)

var _ = Describe("EventType", func() {
	It("round-trips through its string form", func() {
		Expect(hook.EventTypePreToolUse.String()).To(Equal("PreToolUse"))

		parsed, err := hook.EventTypeString("PreToolUse")
		Expect(err).NotTo(HaveOccurred())
		Expect(parsed).To(Equal(hook.EventTypePreToolUse))
	})

	It("rejects unknown names", func() {
		_, err := hook.EventTypeString("MidToolUse")
		Expect(err).To(HaveOccurred())
	})

	It("marshals to a JSON string", func() {
		data, err := json.Marshal(hook.EventTypePostToolUse)
		Expect(err).NotTo(HaveOccurred())
		Expect(string(data)).To(Equal(`"PostToolUse"`))
	})
})

var _ = Describe("ToolType", func() {
	It("parses known tool names", func() {
		parsed, err := hook.ToolTypeString("Bash")
		Expect(err).NotTo(HaveOccurred())
		Expect(parsed).To(Equal(hook.ToolTypeBash))
	})

	It("rejects unknown tool names", func() {
		_, err := hook.ToolTypeString("WebFetch")
		Expect(err).To(HaveOccurred())
	})

	It("lists every value", func() {
		Expect(hook.ToolTypeValues()).To(ContainElements(
			hook.ToolTypeBash,
			hook.ToolTypeWrite,
			hook.ToolTypeEdit,
		))
	})
})

var _ = Describe("Context", func() {
	It("exposes the Bash command", func() {
		ctx := &hook.Context{
			ToolName:  hook.ToolTypeBash,
			ToolInput: hook.ToolInput{Command: "go test ./..."},
		}

		Expect(ctx.IsBashTool()).To(BeTrue())
		Expect(ctx.GetCommand()).To(Equal("go test ./..."))
	})

	It("reports a missing session id", func() {
		Expect((&hook.Context{}).HasSessionID()).To(BeFalse())
		Expect((&hook.Context{SessionID: "s"}).HasSessionID()).To(BeTrue())
	})
})
