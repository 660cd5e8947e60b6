package rewriter_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/smykla-skalski/klatka/internal/rewriter"
	"github.com/smykla-skalski/klatka/pkg/hook"
)

type stubRewriter struct {
	name string
}

func (s *stubRewriter) Name() string { return s.name }

func (s *stubRewriter) Rewrite(_ context.Context, _ *hook.Context) *rewriter.Decision {
	return nil
}

func bashContext(command string) *hook.Context {
	return &hook.Context{
		EventType: hook.EventTypePreToolUse,
		ToolName:  hook.ToolTypeBash,
		ToolInput: hook.ToolInput{Command: command},
	}
}

var _ = Describe("Registry", func() {
	var registry *rewriter.Registry

	BeforeEach(func() {
		registry = rewriter.NewRegistry()
	})

	It("starts empty", func() {
		Expect(registry.Count()).To(BeZero())
		Expect(registry.FindRewriters(bashContext("go test"))).To(BeEmpty())
	})

	It("returns matching rewriters in registration order", func() {
		first := &stubRewriter{name: "first"}
		second := &stubRewriter{name: "second"}
		never := &stubRewriter{name: "never"}

		registry.Register(first, rewriter.Always())
		registry.Register(never, rewriter.Never())
		registry.Register(second, rewriter.Always())

		matched := registry.FindRewriters(bashContext("go test"))

		Expect(matched).To(HaveLen(2))
		Expect(matched[0].Name()).To(Equal("first"))
		Expect(matched[1].Name()).To(Equal("second"))
	})
})

var _ = Describe("Predicates", func() {
	Describe("EventTypeIs", func() {
		It("matches the configured event type", func() {
			p := rewriter.EventTypeIs(hook.EventTypePreToolUse)

			Expect(p(bashContext("go test"))).To(BeTrue())

			postCtx := bashContext("go test")
			postCtx.EventType = hook.EventTypePostToolUse
			Expect(p(postCtx)).To(BeFalse())
		})
	})

	Describe("ToolTypeIs", func() {
		It("matches the configured tool", func() {
			p := rewriter.ToolTypeIs(hook.ToolTypeBash)

			Expect(p(bashContext("go test"))).To(BeTrue())

			writeCtx := bashContext("")
			writeCtx.ToolName = hook.ToolTypeWrite
			Expect(p(writeCtx)).To(BeFalse())
		})
	})

	Describe("CommandMatches", func() {
		It("applies the regular expression to the command", func() {
			p := rewriter.CommandMatches(`^\s*go\s+`)

			Expect(p(bashContext("go test ./..."))).To(BeTrue())
			Expect(p(bashContext("  go build"))).To(BeTrue())
			Expect(p(bashContext("gofmt -l ."))).To(BeFalse())
		})
	})

	Describe("CommandContains", func() {
		It("matches substrings", func() {
			p := rewriter.CommandContains("--force")

			Expect(p(bashContext("git push --force"))).To(BeTrue())
			Expect(p(bashContext("git push"))).To(BeFalse())
		})
	})

	Describe("CommandInvokes", func() {
		It("finds the executable anywhere in a chain", func() {
			p := rewriter.CommandInvokes("go")

			Expect(p(bashContext("go test ./..."))).To(BeTrue())
			Expect(p(bashContext("cd /tmp && go build"))).To(BeTrue())
			Expect(p(bashContext("echo go"))).To(BeFalse())
		})

		It("never matches unparseable commands", func() {
			p := rewriter.CommandInvokes("go")

			Expect(p(bashContext("go test ((("))).To(BeFalse())
		})
	})

	Describe("combinators", func() {
		It("And requires every predicate", func() {
			p := rewriter.And(rewriter.Always(), rewriter.CommandContains("go"))

			Expect(p(bashContext("go test"))).To(BeTrue())
			Expect(p(bashContext("make build"))).To(BeFalse())
		})

		It("Or requires any predicate", func() {
			p := rewriter.Or(rewriter.Never(), rewriter.CommandContains("go"))

			Expect(p(bashContext("go test"))).To(BeTrue())
			Expect(p(bashContext("make build"))).To(BeFalse())
		})

		It("Not inverts", func() {
			Expect(rewriter.Not(rewriter.Never())(bashContext(""))).To(BeTrue())
			Expect(rewriter.Not(rewriter.Always())(bashContext(""))).To(BeFalse())
		})
	})
})
