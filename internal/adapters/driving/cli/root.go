// Package cli implements the coursegen command-line interface using cobra.
// Commands are thin: they parse flags, call the pipeline service and
// format results. All orchestration lives in the core services.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/edukit-labs/coursegen-cli/internal/core/ports/driven"
	"github.com/edukit-labs/coursegen-cli/internal/core/ports/driving"
	"github.com/edukit-labs/coursegen-cli/internal/logger"
)

// version is set by Execute before the command tree runs.
var version = "dev"

// Services holds the service implementations the commands call.
type Services struct {
	Pipeline driving.PipelineService
	Reports  driven.ReportStore
	Outlines driven.OutlineStore
}

var services *Services

// SetServices injects the service implementations. Must be called
// before Execute.
func SetServices(s *Services) {
	services = s
}

var verboseFlag bool

var rootCmd = &cobra.Command{
	Use:   "coursegen",
	Short: "Research quality and terminology pipeline for course generation",
	Long: `Coursegen turns collected research material into a quality-checked,
terminology-aware generation prompt for e-learning courses.

It reads the JSON artifacts produced by the research fetchers, scores the
material's evidentiary quality, extracts the vocabulary a course should
define, and assembles a single prompt document around a course plan.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verboseFlag)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "enable verbose output")
}

// Execute runs the root command with the given version string.
func Execute(v string) error {
	version = v
	return rootCmd.Execute()
}
