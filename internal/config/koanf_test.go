package config_test

import (
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	internalconfig "github.com/smykla-skalski/klatka/internal/config"
	"github.com/smykla-skalski/klatka/pkg/config"
)

func writeFile(path, content string) {
	Expect(os.MkdirAll(filepath.Dir(path), 0o750)).To(Succeed())
	Expect(os.WriteFile(path, []byte(content), 0o600)).To(Succeed())
}

var _ = Describe("KoanfLoader", func() {
	var (
		homeDir string
		workDir string
		loader  *internalconfig.KoanfLoader
	)

	BeforeEach(func() {
		homeDir = GinkgoT().TempDir()
		workDir = GinkgoT().TempDir()
		loader = internalconfig.NewKoanfLoaderWithDirs(homeDir, workDir)
	})

	globalPath := func() string {
		return filepath.Join(homeDir, internalconfig.GlobalConfigDir, internalconfig.GlobalConfigFile)
	}

	Describe("Load", func() {
		Context("with no config files", func() {
			It("returns the defaults", func() {
				cfg, err := loader.Load()

				Expect(err).NotTo(HaveOccurred())
				Expect(cfg.Docker.Image).To(Equal(internalconfig.DefaultImage))
				Expect(cfg.Docker.Workdir).To(Equal(internalconfig.DefaultWorkdir))
				Expect(cfg.Rewriters.Go.Enabled).To(BeTrue())
			})
		})

		Context("with a global config file", func() {
			It("overlays the defaults", func() {
				writeFile(globalPath(), `
[docker]
image = "golang:1.24"
`)

				cfg, err := loader.Load()

				Expect(err).NotTo(HaveOccurred())
				Expect(cfg.Docker.Image).To(Equal("golang:1.24"))
				Expect(cfg.Docker.Workdir).To(Equal(internalconfig.DefaultWorkdir))
			})

			It("reads rewriter paths", func() {
				writeFile(globalPath(), `
[rewriters.go]
enabled = true
paths = ["/home/user/projects/**"]
`)

				cfg, err := loader.Load()

				Expect(err).NotTo(HaveOccurred())
				Expect(cfg.Rewriters.Go.Paths).To(Equal([]string{"/home/user/projects/**"}))
			})
		})

		Context("with a project config file", func() {
			It("wins over the global file", func() {
				writeFile(globalPath(), `
[docker]
image = "golang:1.24"
`)
				writeFile(
					filepath.Join(workDir, internalconfig.ProjectConfigDir, internalconfig.ProjectConfigFile),
					`
[docker]
image = "golang:1.25-alpine"
`)

				cfg, err := loader.Load()

				Expect(err).NotTo(HaveOccurred())
				Expect(cfg.Docker.Image).To(Equal("golang:1.25-alpine"))
			})

			It("falls back to klatka.toml in the project root", func() {
				writeFile(filepath.Join(workDir, internalconfig.ProjectConfigFileAlt), `
[docker]
workdir = "/src"
`)

				cfg, err := loader.Load()

				Expect(err).NotTo(HaveOccurred())
				Expect(cfg.Docker.Workdir).To(Equal("/src"))
			})
		})

		Context("with environment overrides", func() {
			It("wins over every file layer", func() {
				writeFile(globalPath(), `
[docker]
image = "golang:1.24"
`)
				GinkgoT().Setenv("KLATKA_DOCKER_IMAGE", "golang:tip")

				cfg, err := loader.Load()

				Expect(err).NotTo(HaveOccurred())
				Expect(cfg.Docker.Image).To(Equal("golang:tip"))
			})

			It("toggles the rewriter", func() {
				GinkgoT().Setenv("KLATKA_REWRITERS_GO_ENABLED", "false")

				cfg, err := loader.Load()

				Expect(err).NotTo(HaveOccurred())
				Expect(cfg.Rewriters.Go.Enabled).To(BeFalse())
			})
		})

		Context("with broken files", func() {
			It("reports invalid TOML", func() {
				writeFile(globalPath(), `[docker`)

				_, err := loader.Load()

				Expect(err).To(MatchError(internalconfig.ErrInvalidTOML))
			})

			It("rejects configs that fail validation", func() {
				writeFile(globalPath(), `
[docker]
image = ""
`)

				_, err := loader.Load()

				Expect(err).To(MatchError(config.ErrEmptyImage))
			})
		})
	})

	Describe("LoadWithoutValidation", func() {
		It("returns invalid values untouched", func() {
			writeFile(globalPath(), `
[docker]
image = ""
`)

			cfg, err := loader.LoadWithoutValidation()

			Expect(err).NotTo(HaveOccurred())
			Expect(cfg.Docker.Image).To(BeEmpty())
		})
	})

	Describe("HasGlobalConfig", func() {
		It("reflects the global file's existence", func() {
			Expect(loader.HasGlobalConfig()).To(BeFalse())

			writeFile(globalPath(), "")

			Expect(loader.HasGlobalConfig()).To(BeTrue())
		})
	})
})
