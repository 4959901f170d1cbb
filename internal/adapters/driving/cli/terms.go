package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/edukit-labs/coursegen-cli/internal/core/domain"
	"github.com/edukit-labs/coursegen-cli/internal/core/ports/driving"
	"github.com/edukit-labs/coursegen-cli/internal/logger"
)

var (
	termsWebRef   string
	termsVideoRef string
	termsTheme    string
	termsJSON     bool
)

var termsCmd = &cobra.Command{
	Use:   "terms",
	Short: "Extract key terminology from collected research material",
	Long: `Extracts the recurring vocabulary of the research material, classifies
each term by subject category and learning phase, and reports distribution
imbalances a course author should address.`,
	RunE: runTerms,
}

func init() {
	termsCmd.Flags().StringVar(&termsWebRef, "web", "", "path to the web research JSON artifact")
	termsCmd.Flags().StringVar(&termsVideoRef, "video", "", "path to the video transcript JSON artifact")
	termsCmd.Flags().StringVar(&termsTheme, "theme", "", "course theme to echo into the report")
	termsCmd.Flags().BoolVar(&termsJSON, "json", false, "output the report as JSON")
	rootCmd.AddCommand(termsCmd)
}

func runTerms(cmd *cobra.Command, _ []string) error {
	if services == nil || services.Pipeline == nil {
		return errors.New("pipeline service not configured")
	}
	if termsWebRef == "" && termsVideoRef == "" {
		return errors.New("at least one of --web or --video is required")
	}

	logger.Section("Terminology Analysis")

	result, err := services.Pipeline.AnalyzeTerminology(context.Background(), driving.AnalysisRequest{
		WebRef:   termsWebRef,
		VideoRef: termsVideoRef,
		Theme:    termsTheme,
	})
	if err != nil {
		return fmt.Errorf("terminology analysis failed: %w", err)
	}

	printWarnings(cmd, result.Warnings)

	if termsJSON {
		return printJSON(cmd, result.Report)
	}

	printTerminologyReport(cmd, result.Report)
	return nil
}

func printTerminologyReport(cmd *cobra.Command, report domain.TerminologyReport) {
	if report.CourseTheme != "" {
		cmd.Printf("Theme: %s\n", report.CourseTheme)
	}
	cmd.Printf("Recurring terms: %d\n\n", report.TotalUniqueTerms)

	if len(report.TopTerms) == 0 {
		cmd.Println("No recurring terms found.")
	} else {
		rows := make([][]string, 0, len(report.TopTerms))
		for _, term := range report.TopTerms {
			phase := string(term.Phase)
			if term.Phase == domain.PhaseNone {
				phase = "-"
			}
			rows = append(rows, []string{
				term.Surface,
				strconv.Itoa(term.Frequency),
				string(term.Category),
				phase,
			})
		}
		cmd.Println(renderTable(
			[]string{"Term", "Freq", "Category", "Phase"},
			rows,
			[]columnAlignment{alignLeft, alignRight, alignLeft, alignLeft},
		))
	}

	if len(report.Recommendations) > 0 {
		cmd.Println("\nRecommendations:")
		for _, rec := range report.Recommendations {
			cmd.Printf("  - %s\n", rec)
		}
	}
}
