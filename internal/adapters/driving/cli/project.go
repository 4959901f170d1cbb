package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/edukit-labs/coursegen-cli/internal/core/domain"
)

var projectShowKind string

var projectCmd = &cobra.Command{
	Use:   "project",
	Short: "Manage persisted generation projects",
	Long: `Inspect and manage the projects saved by "prompt --project".
Each project carries the prompt document plus the quality and terminology
reports of its run.`,
	RunE: runProjectList,
}

var projectListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved projects",
	RunE:  runProjectList,
}

var projectShowCmd = &cobra.Command{
	Use:   "show [project-id]",
	Short: "Show a saved report",
	Long:  `Prints one stored report of a project. Use --kind to pick which.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runProjectShow,
}

var projectDeleteCmd = &cobra.Command{
	Use:   "delete [project-id]",
	Short: "Delete a project and its reports",
	Args:  cobra.ExactArgs(1),
	RunE:  runProjectDelete,
}

func init() {
	projectShowCmd.Flags().StringVar(&projectShowKind, "kind", string(domain.ReportPrompt),
		"report kind to show: quality, terminology or prompt")

	projectCmd.AddCommand(projectListCmd)
	projectCmd.AddCommand(projectShowCmd)
	projectCmd.AddCommand(projectDeleteCmd)
	rootCmd.AddCommand(projectCmd)
}

func runProjectList(cmd *cobra.Command, _ []string) error {
	if services == nil || services.Reports == nil {
		return errors.New("report store not configured")
	}

	projects, err := services.Reports.ListProjects(context.Background())
	if err != nil {
		return fmt.Errorf("list projects: %w", err)
	}

	if len(projects) == 0 {
		cmd.Println("No saved projects.")
		return nil
	}

	rows := make([][]string, 0, len(projects))
	for _, p := range projects {
		rows = append(rows, []string{
			p.ID,
			p.Name,
			p.Course,
			p.CreatedAt.Format("2006-01-02 15:04"),
		})
	}
	cmd.Println(renderTable(
		[]string{"ID", "Name", "Course", "Created"},
		rows,
		[]columnAlignment{alignLeft, alignLeft, alignLeft, alignLeft},
	))
	return nil
}

func runProjectShow(cmd *cobra.Command, args []string) error {
	if services == nil || services.Reports == nil {
		return errors.New("report store not configured")
	}

	kind := domain.ReportKind(projectShowKind)
	switch kind {
	case domain.ReportQuality, domain.ReportTerminology, domain.ReportPrompt:
	default:
		return fmt.Errorf("unknown report kind %q", projectShowKind)
	}

	payload, err := services.Reports.GetReport(context.Background(), args[0], kind)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("no %s report for project %s", kind, args[0])
		}
		return fmt.Errorf("get report: %w", err)
	}

	// Prompt payloads carry the document text; print it directly.
	// Analysis reports print as indented JSON.
	if kind == domain.ReportPrompt {
		var prompt domain.PromptDocument
		if err := json.Unmarshal(payload, &prompt); err == nil {
			cmd.Println(prompt.Text)
			cmd.PrintErrf("Estimated tokens: %d (%s)\n", prompt.EstimatedTokens, prompt.UsageLevel)
			return nil
		}
	}

	var pretty json.RawMessage = payload
	data, err := json.MarshalIndent(pretty, "", "  ")
	if err != nil {
		return fmt.Errorf("format report: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func runProjectDelete(cmd *cobra.Command, args []string) error {
	if services == nil || services.Reports == nil {
		return errors.New("report store not configured")
	}

	if err := services.Reports.DeleteProject(context.Background(), args[0]); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("project %s not found", args[0])
		}
		return fmt.Errorf("delete project: %w", err)
	}

	cmd.Printf("Deleted project %s\n", args[0])
	return nil
}
