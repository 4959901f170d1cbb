package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var coursesOutlineRef string

var coursesCmd = &cobra.Command{
	Use:   "courses",
	Short: "List the courses available in a plan file",
	RunE:  runCourses,
}

func init() {
	coursesCmd.Flags().StringVar(&coursesOutlineRef, "outline", "", "path to the course plan CSV (required)")
	_ = coursesCmd.MarkFlagRequired("outline")
	rootCmd.AddCommand(coursesCmd)
}

func runCourses(cmd *cobra.Command, _ []string) error {
	if services == nil || services.Outlines == nil {
		return errors.New("outline store not configured")
	}

	courses, err := services.Outlines.Courses(context.Background(), coursesOutlineRef)
	if err != nil {
		return fmt.Errorf("list courses: %w", err)
	}

	if len(courses) == 0 {
		cmd.Println("No courses found in the plan file.")
		return nil
	}
	for _, course := range courses {
		cmd.Println(course)
	}
	return nil
}
