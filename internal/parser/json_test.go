package parser_test

import (
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/smykla-skalski/klatka/internal/parser"
	"github.com/smykla-skalski/klatka/pkg/hook"
)

func parse(input string) (*hook.Context, error) {
	return parser.NewJSONParser(strings.NewReader(input)).Parse(hook.EventTypePreToolUse)
}

var _ = Describe("JSONParser", func() {
	Describe("Parse", func() {
		Context("with the standard envelope", func() {
			It("extracts tool and command", func() {
				ctx, err := parse(`{"tool_name":"Bash","tool_input":{"command":"go test ./..."}}`)

				Expect(err).NotTo(HaveOccurred())
				Expect(ctx.ToolName).To(Equal(hook.ToolTypeBash))
				Expect(ctx.GetCommand()).To(Equal("go test ./..."))
				Expect(ctx.EventType).To(Equal(hook.EventTypePreToolUse))
			})

			It("carries cwd and session id", func() {
				ctx, err := parse(`{
					"tool_name": "Bash",
					"tool_input": {"command": "go build"},
					"cwd": "/home/user/proj",
					"session_id": "abc-123"
				}`)

				Expect(err).NotTo(HaveOccurred())
				Expect(ctx.Cwd).To(Equal("/home/user/proj"))
				Expect(ctx.SessionID).To(Equal("abc-123"))
				Expect(ctx.HasSessionID()).To(BeTrue())
			})

			It("keeps the raw JSON", func() {
				input := `{"tool_name":"Bash","tool_input":{"command":"go build"}}`

				ctx, err := parse(input)

				Expect(err).NotTo(HaveOccurred())
				Expect(ctx.RawJSON).To(Equal(input))
			})

			It("extracts the description alongside the command", func() {
				ctx, err := parse(`{
					"tool_name": "Bash",
					"tool_input": {"command": "go test ./...", "description": "Run tests"}
				}`)

				Expect(err).NotTo(HaveOccurred())
				Expect(ctx.ToolInput.Description).To(Equal("Run tests"))
			})
		})

		Context("with envelope variants", func() {
			It("accepts the legacy tool field", func() {
				ctx, err := parse(`{"tool":"Bash","tool_input":{"command":"go vet ./..."}}`)

				Expect(err).NotTo(HaveOccurred())
				Expect(ctx.ToolName).To(Equal(hook.ToolTypeBash))
				Expect(ctx.GetCommand()).To(Equal("go vet ./..."))
			})

			It("falls back to the top-level command field", func() {
				ctx, err := parse(`{"tool_name":"Bash","command":"go build"}`)

				Expect(err).NotTo(HaveOccurred())
				Expect(ctx.GetCommand()).To(Equal("go build"))
			})

			It("maps unknown tool names to ToolTypeUnknown", func() {
				ctx, err := parse(`{"tool_name":"WebFetch","tool_input":{"url":"https://example.com"}}`)

				Expect(err).NotTo(HaveOccurred())
				Expect(ctx.ToolName).To(Equal(hook.ToolTypeUnknown))
				Expect(ctx.IsBashTool()).To(BeFalse())
			})

			It("maps a missing tool name to ToolTypeUnknown", func() {
				ctx, err := parse(`{"tool_input":{"command":"go test"}}`)

				Expect(err).NotTo(HaveOccurred())
				Expect(ctx.ToolName).To(Equal(hook.ToolTypeUnknown))
			})

			It("lets the envelope's event name override the default", func() {
				ctx, err := parse(`{
					"tool_name": "Bash",
					"tool_input": {"command": "go test"},
					"hook_event_name": "PostToolUse"
				}`)

				Expect(err).NotTo(HaveOccurred())
				Expect(ctx.EventType).To(Equal(hook.EventTypePostToolUse))
			})

			It("keeps the default for unrecognized event names", func() {
				ctx, err := parse(`{
					"tool_name": "Bash",
					"tool_input": {"command": "go test"},
					"hook_event_name": "SomethingNew"
				}`)

				Expect(err).NotTo(HaveOccurred())
				Expect(ctx.EventType).To(Equal(hook.EventTypePreToolUse))
			})
		})

		Context("with bad input", func() {
			It("returns ErrEmptyInput for no input", func() {
				GinkgoT().Setenv("CLAUDE_TOOL_INPUT", "")

				_, err := parse("")

				Expect(err).To(MatchError(parser.ErrEmptyInput))
			})

			It("returns ErrInvalidJSON for malformed input", func() {
				_, err := parse("not json at all")

				Expect(err).To(MatchError(parser.ErrInvalidJSON))
			})

			It("returns ErrInvalidJSON for truncated input", func() {
				_, err := parse(`{"tool_name":"Bash",`)

				Expect(err).To(MatchError(parser.ErrInvalidJSON))
			})
		})

		Context("with the environment fallback", func() {
			It("reads CLAUDE_TOOL_INPUT when stdin is empty", func() {
				GinkgoT().Setenv("CLAUDE_TOOL_INPUT",
					`{"tool_name":"Bash","tool_input":{"command":"go test"}}`)

				ctx, err := parse("")

				Expect(err).NotTo(HaveOccurred())
				Expect(ctx.GetCommand()).To(Equal("go test"))
			})
		})
	})
})
