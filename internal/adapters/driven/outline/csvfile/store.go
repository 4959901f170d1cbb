// Package csvfile loads course plans from CSV spreadsheet exports.
//
// The expected layout is six columns: category, course, unit number,
// unit name, slide number, slide title. Exports often repeat the header
// row partway through the sheet; such rows and rows missing a course or
// slide title are skipped.
package csvfile

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/edukit-labs/coursegen-cli/internal/core/domain"
	"github.com/edukit-labs/coursegen-cli/internal/core/ports/driven"
)

// Ensure Store implements the interface.
var _ driven.OutlineStore = (*Store)(nil)

// minColumns is the number of leading columns a row must carry.
const minColumns = 6

// headerCourseCell marks a repeated header row inside the sheet.
const headerCourseCell = "講座名"

// Store reads course outlines from CSV files. Refs are file paths.
type Store struct{}

// NewStore creates a CSV-based outline store.
func NewStore() *Store {
	return &Store{}
}

// planRow is one parsed slide row.
type planRow struct {
	course     string
	unitNo     int
	unitName   string
	slideNo    int
	slideTitle string
}

// Load returns the outline for one course, optionally filtered to
// specific units. Units and slides come back sorted by number.
func (s *Store) Load(ctx context.Context, ref, course string, units []int) (*domain.CourseOutline, error) {
	rows, err := s.readRows(ctx, ref)
	if err != nil {
		return nil, err
	}

	var courseRows []planRow
	courses := make(map[string]bool)
	for _, row := range rows {
		courses[row.course] = true
		if row.course == course {
			courseRows = append(courseRows, row)
		}
	}

	if len(courseRows) == 0 {
		if similar := similarCourses(courses, course); len(similar) > 0 {
			return nil, fmt.Errorf("course %q: %w (did you mean: %s)",
				course, domain.ErrCourseNotFound, strings.Join(similar, ", "))
		}
		return nil, fmt.Errorf("course %q: %w", course, domain.ErrCourseNotFound)
	}

	if len(units) > 0 {
		wanted := make(map[int]bool, len(units))
		for _, u := range units {
			wanted[u] = true
		}

		var available []int
		seen := make(map[int]bool)
		filtered := courseRows[:0]
		for _, row := range courseRows {
			if !seen[row.unitNo] {
				seen[row.unitNo] = true
				available = append(available, row.unitNo)
			}
			if wanted[row.unitNo] {
				filtered = append(filtered, row)
			}
		}
		if len(filtered) == 0 {
			sort.Ints(available)
			return nil, fmt.Errorf("course %q: %w (available units: %s)",
				course, domain.ErrUnitNotFound, joinInts(available))
		}
		courseRows = filtered
	}

	sort.SliceStable(courseRows, func(i, j int) bool {
		if courseRows[i].unitNo != courseRows[j].unitNo {
			return courseRows[i].unitNo < courseRows[j].unitNo
		}
		return courseRows[i].slideNo < courseRows[j].slideNo
	})

	outline := &domain.CourseOutline{Course: course}
	for _, row := range courseRows {
		n := len(outline.Units)
		if n == 0 || outline.Units[n-1].Number != row.unitNo {
			outline.Units = append(outline.Units, domain.OutlineUnit{
				Number: row.unitNo,
				Name:   row.unitName,
			})
			n++
		}
		outline.Units[n-1].Slides = append(outline.Units[n-1].Slides, domain.OutlineSlide{
			Number: row.slideNo,
			Title:  row.slideTitle,
		})
	}
	return outline, nil
}

// Courses lists the distinct course names in the plan file, sorted.
func (s *Store) Courses(ctx context.Context, ref string) ([]string, error) {
	rows, err := s.readRows(ctx, ref)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	var courses []string
	for _, row := range rows {
		if !seen[row.course] {
			seen[row.course] = true
			courses = append(courses, row.course)
		}
	}
	sort.Strings(courses)
	return courses, nil
}

// readRows parses the CSV file into slide rows, dropping the header,
// repeated header rows and rows that cannot form a slide.
func (s *Store) readRows(ctx context.Context, ref string) ([]planRow, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(ref)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%s: %w", ref, domain.ErrOutlineUnavailable)
		}
		return nil, err
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	var rows []planRow
	first := true
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", ref, err)
		}

		if first {
			first = false
			continue
		}
		if len(record) < minColumns {
			continue
		}

		course := strings.TrimSpace(record[1])
		slideTitle := strings.TrimSpace(record[5])
		if course == "" || slideTitle == "" || course == headerCourseCell {
			continue
		}

		unitNo, err := strconv.Atoi(strings.TrimSpace(record[2]))
		if err != nil {
			continue
		}
		slideNo, err := strconv.Atoi(strings.TrimSpace(record[4]))
		if err != nil {
			continue
		}

		rows = append(rows, planRow{
			course:     course,
			unitNo:     unitNo,
			unitName:   strings.TrimSpace(record[3]),
			slideNo:    slideNo,
			slideTitle: slideTitle,
		})
	}
	return rows, nil
}

// similarCourses returns course names containing the requested name,
// case-insensitively. Used for error suggestions.
func similarCourses(courses map[string]bool, course string) []string {
	needle := strings.ToLower(course)
	var similar []string
	for name := range courses {
		if strings.Contains(strings.ToLower(name), needle) {
			similar = append(similar, name)
		}
	}
	sort.Strings(similar)
	return similar
}

func joinInts(values []int) string {
	parts := make([]string, 0, len(values))
	for _, v := range values {
		parts = append(parts, strconv.Itoa(v))
	}
	return strings.Join(parts, ", ")
}
