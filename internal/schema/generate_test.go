package schema_test

import (
	"encoding/json"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/smykla-skalski/klatka/internal/schema"
)

var _ = Describe("Generate", func() {
	It("describes the top-level config sections", func() {
		s := schema.Generate()

		Expect(s.Title).To(Equal("klatka configuration"))

		for _, key := range []string{"docker", "rewriters", "log"} {
			_, ok := s.Properties.Get(key)
			Expect(ok).To(BeTrue(), "missing property %q", key)
		}
	})
})

var _ = Describe("GenerateJSON", func() {
	It("produces valid JSON with the docker defaults", func() {
		data, err := schema.GenerateJSON(true)
		Expect(err).NotTo(HaveOccurred())

		var decoded map[string]any
		Expect(json.Unmarshal(data, &decoded)).To(Succeed())

		Expect(string(data)).To(ContainSubstring(`"golang:1.25"`))
		Expect(string(data)).To(ContainSubstring(`"/app"`))
	})
})
