package reporters_test

import (
	"bytes"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/smykla-skalski/klatka/internal/color"
	"github.com/smykla-skalski/klatka/internal/doctor"
	"github.com/smykla-skalski/klatka/internal/doctor/reporters"
)

func sampleResults() []doctor.CheckResult {
	pass := doctor.Pass("Docker client available", "docker found in PATH")
	pass.Category = doctor.CategoryDocker

	fail := doctor.FailError("Hook registered in Claude settings", "not registered").
		WithDetails("Run: klatka install")
	fail.Category = doctor.CategoryHook

	return []doctor.CheckResult{pass, fail}
}

var _ = Describe("StatusIcon", func() {
	It("distinguishes pass, warning, error, and skip", func() {
		Expect(reporters.StatusIcon(doctor.Pass("a", ""))).To(Equal("✓"))
		Expect(reporters.StatusIcon(doctor.FailError("a", ""))).To(Equal("✗"))
		Expect(reporters.StatusIcon(doctor.FailWarning("a", ""))).To(Equal("!"))
		Expect(reporters.StatusIcon(doctor.Skip("s", ""))).To(Equal("-"))
	})
})

var _ = Describe("SimpleReporter", func() {
	var (
		buf   *bytes.Buffer
		theme color.Theme
	)

	BeforeEach(func() {
		buf = &bytes.Buffer{}
		theme = color.NewTheme(false)
	})

	It("prints category headings and one line per check", func() {
		reporters.NewSimpleReporter(buf, theme).Report(sampleResults(), false)

		out := buf.String()
		Expect(out).To(ContainSubstring("Docker"))
		Expect(out).To(ContainSubstring("✓ Docker client available: docker found in PATH"))
		Expect(out).To(ContainSubstring("Hook"))
		Expect(out).To(ContainSubstring("✗ Hook registered in Claude settings: not registered"))
		Expect(out).NotTo(ContainSubstring("klatka install"))
	})

	It("includes details when verbose", func() {
		reporters.NewSimpleReporter(buf, theme).Report(sampleResults(), true)

		Expect(buf.String()).To(ContainSubstring("Run: klatka install"))
	})
})

var _ = Describe("RenderTable", func() {
	It("renders every check into the table", func() {
		out := reporters.RenderTable(sampleResults(), false, color.NewTheme(false))

		Expect(out).To(ContainSubstring("Docker client available"))
		Expect(out).To(ContainSubstring("Hook registered in Claude settings"))
	})
})
