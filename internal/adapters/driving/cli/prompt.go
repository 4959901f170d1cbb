package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/edukit-labs/coursegen-cli/internal/core/domain"
	"github.com/edukit-labs/coursegen-cli/internal/core/ports/driving"
	"github.com/edukit-labs/coursegen-cli/internal/logger"
)

var (
	promptOutlineRef      string
	promptCourse          string
	promptUnits           []int
	promptLearnerProfile  string
	promptTargetBehavior  string
	promptDuration        string
	promptTone            string
	promptWebRef          string
	promptVideoRef        string
	promptTheme           string
	promptSkipQuality     bool
	promptSkipTerminology bool
	promptUnabridged      bool
	promptProjectName     string
	promptOutputPath      string
)

var promptCmd = &cobra.Command{
	Use:   "prompt",
	Short: "Assemble the course generation prompt document",
	Long: `Runs the full pipeline: loads the research artifacts, scores quality
and extracts terminology, loads the course plan and assembles everything into
a single generation prompt document.

Research artifacts are optional; without them the document contains only the
course structure and task instructions. With --project the run's reports are
persisted for later inspection via the project commands.`,
	RunE: runPrompt,
}

func init() {
	promptCmd.Flags().StringVar(&promptOutlineRef, "outline", "", "path to the course plan CSV (required)")
	promptCmd.Flags().StringVar(&promptCourse, "course", "", "course name within the plan (required)")
	promptCmd.Flags().IntSliceVar(&promptUnits, "units", nil, "restrict to specific unit numbers (e.g. 1,2)")
	promptCmd.Flags().StringVar(&promptLearnerProfile, "learner-profile", "", "who the learners are")
	promptCmd.Flags().StringVar(&promptTargetBehavior, "target-behavior", "", "what learners should be able to do")
	promptCmd.Flags().StringVar(&promptDuration, "duration", "", "estimated course length")
	promptCmd.Flags().StringVar(&promptTone, "tone", "", "desired tone and manner")
	promptCmd.Flags().StringVar(&promptWebRef, "web", "", "path to the web research JSON artifact")
	promptCmd.Flags().StringVar(&promptVideoRef, "video", "", "path to the video transcript JSON artifact")
	promptCmd.Flags().StringVar(&promptTheme, "theme", "", "course theme for terminology extraction")
	promptCmd.Flags().BoolVar(&promptSkipQuality, "skip-quality", false, "omit the quality section")
	promptCmd.Flags().BoolVar(&promptSkipTerminology, "skip-terminology", false, "omit the terminology section")
	promptCmd.Flags().BoolVar(&promptUnabridged, "unabridged", false, "include full research texts without truncation")
	promptCmd.Flags().StringVar(&promptProjectName, "project", "", "persist the run's reports under this project name")
	promptCmd.Flags().StringVarP(&promptOutputPath, "output", "o", "", "write the document to a file instead of stdout")

	_ = promptCmd.MarkFlagRequired("outline")
	_ = promptCmd.MarkFlagRequired("course")

	rootCmd.AddCommand(promptCmd)
}

func runPrompt(cmd *cobra.Command, _ []string) error {
	if services == nil || services.Pipeline == nil {
		return errors.New("pipeline service not configured")
	}

	logger.Section("Prompt Assembly")
	logger.Debug("outline: %q, course: %q, units: %v", promptOutlineRef, promptCourse, promptUnits)

	result, err := services.Pipeline.Generate(context.Background(), driving.GenerateRequest{
		AnalysisRequest: driving.AnalysisRequest{
			WebRef:   promptWebRef,
			VideoRef: promptVideoRef,
			Theme:    promptTheme,
		},
		OutlineRef: promptOutlineRef,
		Units:      promptUnits,
		Spec: domain.CourseSpec{
			Course:         promptCourse,
			LearnerProfile: promptLearnerProfile,
			TargetBehavior: promptTargetBehavior,
			Duration:       promptDuration,
			Tone:           promptTone,
		},
		SkipQuality:     promptSkipQuality,
		SkipTerminology: promptSkipTerminology,
		Unabridged:      promptUnabridged,
		ProjectName:     promptProjectName,
	})
	if err != nil {
		return fmt.Errorf("prompt generation failed: %w", err)
	}

	printWarnings(cmd, result.Warnings)

	if promptOutputPath != "" {
		if err := os.WriteFile(promptOutputPath, []byte(result.Prompt.Text), 0600); err != nil {
			return fmt.Errorf("write prompt file: %w", err)
		}
		cmd.Printf("Prompt written to %s\n", promptOutputPath)
	} else {
		cmd.Println(result.Prompt.Text)
	}

	cmd.PrintErrf("Estimated tokens: %d (%s)\n", result.Prompt.EstimatedTokens, result.Prompt.UsageLevel)
	if result.Prompt.UsageLevel == domain.UsageOverLimit {
		cmd.PrintErrln("warning: the document exceeds the model token budget; consider --units or dropping sources")
	}
	if result.ProjectID != "" {
		cmd.PrintErrf("Saved as project %s\n", result.ProjectID)
	}
	return nil
}
