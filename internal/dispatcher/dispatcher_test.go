package dispatcher_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/smykla-skalski/klatka/internal/dispatcher"
	"github.com/smykla-skalski/klatka/internal/rewriter"
	"github.com/smykla-skalski/klatka/pkg/hook"
	"github.com/smykla-skalski/klatka/pkg/logger"
)

type fakeRewriter struct {
	name     string
	decision *rewriter.Decision
	calls    int
}

func (f *fakeRewriter) Name() string { return f.name }

func (f *fakeRewriter) Rewrite(_ context.Context, _ *hook.Context) *rewriter.Decision {
	f.calls++

	return f.decision
}

type panickingRewriter struct{}

func (*panickingRewriter) Name() string { return "panics" }

func (*panickingRewriter) Rewrite(_ context.Context, _ *hook.Context) *rewriter.Decision {
	panic("boom")
}

func bashContext(command string) *hook.Context {
	return &hook.Context{
		EventType: hook.EventTypePreToolUse,
		ToolName:  hook.ToolTypeBash,
		ToolInput: hook.ToolInput{Command: command},
	}
}

var _ = Describe("Dispatcher", func() {
	var (
		registry *rewriter.Registry
		ctx      context.Context
	)

	BeforeEach(func() {
		registry = rewriter.NewRegistry()
		ctx = context.Background()
	})

	newDispatcher := func() *dispatcher.Dispatcher {
		return dispatcher.NewDispatcher(registry, logger.NewNoOpLogger())
	}

	It("returns nil when no rewriter matches", func() {
		rw := &fakeRewriter{name: "go", decision: &rewriter.Decision{Rewriter: "go"}}
		registry.Register(rw, rewriter.Never())

		Expect(newDispatcher().Dispatch(ctx, bashContext("go test"))).To(BeNil())
		Expect(rw.calls).To(BeZero())
	})

	It("returns the first decision and stops", func() {
		declines := &fakeRewriter{name: "declines"}
		wins := &fakeRewriter{
			name:     "wins",
			decision: &rewriter.Decision{Rewriter: "wins", Command: "rewritten"},
		}
		unreached := &fakeRewriter{
			name:     "unreached",
			decision: &rewriter.Decision{Rewriter: "unreached"},
		}

		registry.Register(declines, rewriter.Always())
		registry.Register(wins, rewriter.Always())
		registry.Register(unreached, rewriter.Always())

		decision := newDispatcher().Dispatch(ctx, bashContext("go test"))

		Expect(decision).NotTo(BeNil())
		Expect(decision.Rewriter).To(Equal("wins"))
		Expect(declines.calls).To(Equal(1))
		Expect(wins.calls).To(Equal(1))
		Expect(unreached.calls).To(BeZero())
	})

	It("treats a panicking rewriter as pass-through", func() {
		registry.Register(&panickingRewriter{}, rewriter.Always())

		Expect(func() {
			newDispatcher().Dispatch(ctx, bashContext("go test"))
		}).NotTo(Panic())
	})

	It("continues past a panicking rewriter", func() {
		next := &fakeRewriter{
			name:     "next",
			decision: &rewriter.Decision{Rewriter: "next"},
		}

		registry.Register(&panickingRewriter{}, rewriter.Always())
		registry.Register(next, rewriter.Always())

		decision := newDispatcher().Dispatch(ctx, bashContext("go test"))

		Expect(decision).NotTo(BeNil())
		Expect(decision.Rewriter).To(Equal("next"))
	})
})
