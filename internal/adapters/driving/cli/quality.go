package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/edukit-labs/coursegen-cli/internal/core/domain"
	"github.com/edukit-labs/coursegen-cli/internal/core/ports/driving"
	"github.com/edukit-labs/coursegen-cli/internal/logger"
)

var (
	qualityWebRef   string
	qualityVideoRef string
	qualityJSON     bool
)

var qualityCmd = &cobra.Command{
	Use:   "quality",
	Short: "Score the quality of collected research material",
	Long: `Scores research material across four dimensions: source count,
numeric data points, source credibility and content volume. Each dimension
contributes 0-2 points to a 0-8 composite, which maps to a quality tier.`,
	RunE: runQuality,
}

func init() {
	qualityCmd.Flags().StringVar(&qualityWebRef, "web", "", "path to the web research JSON artifact")
	qualityCmd.Flags().StringVar(&qualityVideoRef, "video", "", "path to the video transcript JSON artifact")
	qualityCmd.Flags().BoolVar(&qualityJSON, "json", false, "output the report as JSON")
	rootCmd.AddCommand(qualityCmd)
}

func runQuality(cmd *cobra.Command, _ []string) error {
	if services == nil || services.Pipeline == nil {
		return errors.New("pipeline service not configured")
	}
	if qualityWebRef == "" && qualityVideoRef == "" {
		return errors.New("at least one of --web or --video is required")
	}

	logger.Section("Quality Analysis")
	logger.Debug("web ref: %q, video ref: %q", qualityWebRef, qualityVideoRef)

	result, err := services.Pipeline.AnalyzeQuality(context.Background(), driving.AnalysisRequest{
		WebRef:   qualityWebRef,
		VideoRef: qualityVideoRef,
	})
	if err != nil {
		return fmt.Errorf("quality analysis failed: %w", err)
	}

	printWarnings(cmd, result.Warnings)

	if qualityJSON {
		return printJSON(cmd, result.Report)
	}

	printQualityReport(cmd, result.Report)
	return nil
}

func printQualityReport(cmd *cobra.Command, report domain.QualityReport) {
	cmd.Printf("Overall quality: %s (%d/8)\n\n", report.Tier, report.TotalScore)

	rows := make([][]string, 0, len(domain.Dimensions))
	for _, dim := range domain.Dimensions {
		rows = append(rows, []string{string(dim), strconv.Itoa(report.DimensionScores[dim])})
	}
	cmd.Println(renderTable(
		[]string{"Dimension", "Score"},
		rows,
		[]columnAlignment{alignLeft, alignRight},
	))

	cmd.Println()
	cmd.Printf("Sources: %d (%d web, %d video)\n",
		report.Summary.TotalSources, report.Summary.WebSources, report.Summary.VideoSources)
	cmd.Printf("Data points: %d\n", report.Summary.TotalDataPoints)
	cmd.Printf("Credible sources: %d\n", report.Summary.CredibleSources)
	cmd.Printf("Total words: %d\n", report.Summary.TotalWords)

	if len(report.Recommendations) > 0 {
		cmd.Println("\nRecommendations:")
		for _, rec := range report.Recommendations {
			cmd.Printf("  - %s\n", rec)
		}
	}
}

// printWarnings reports skipped records on stderr-style output.
func printWarnings(cmd *cobra.Command, warnings []string) {
	for _, w := range warnings {
		cmd.PrintErrf("warning: %s\n", w)
	}
}

func printJSON(cmd *cobra.Command, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	cmd.Println(string(data))
	return nil
}
