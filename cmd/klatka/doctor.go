package main

import (
	"os"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/smykla-skalski/klatka/internal/color"
	internalconfig "github.com/smykla-skalski/klatka/internal/config"
	"github.com/smykla-skalski/klatka/internal/doctor"
	"github.com/smykla-skalski/klatka/internal/doctor/reporters"
	"github.com/smykla-skalski/klatka/internal/exec"
)

var doctorVerbose bool

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check that klatka is ready to rewrite Go commands",
	Long: `Runs health checks against the local environment: Docker availability and
version, hook registration in Claude Code settings, configuration validity,
and log file state. Exits non-zero when any check reports an error.`,
	RunE: runDoctor,
}

func init() {
	doctorCmd.Flags().BoolVarP(&doctorVerbose, "verbose", "v", false, "Show check details")

	rootCmd.AddCommand(doctorCmd)
}

func runDoctor(cmd *cobra.Command, _ []string) error {
	runner := exec.NewCommandRunner(exec.DefaultTimeout)

	binaryPath, err := resolveBinaryPath()
	if err != nil {
		binaryPath = "klatka"
	}

	checkers := []doctor.HealthChecker{
		doctor.NewDockerBinaryChecker(runner),
		doctor.NewDockerVersionChecker(runner),
		doctor.NewHookChecker(binaryPath),
		doctor.NewLogChecker(),
	}

	if loader, loaderErr := internalconfig.NewKoanfLoader(); loaderErr == nil {
		checkers = append(checkers, doctor.NewConfigChecker(loader))
	}

	results := doctor.NewRunner(checkers...).Run(cmd.Context())

	newReporter(cmd).Report(results, doctorVerbose)

	if doctor.HasErrors(results) {
		return errors.New("one or more checks failed")
	}

	return nil
}

//nolint:ireturn // reporter selection is the point
func newReporter(cmd *cobra.Command) doctor.Reporter {
	theme := color.NewTheme(color.Profile(noColorFlag))

	if color.IsTerminal(os.Stdout) {
		return reporters.NewTableReporter(cmd.OutOrStdout(), theme)
	}

	return reporters.NewSimpleReporter(cmd.OutOrStdout(), theme)
}
