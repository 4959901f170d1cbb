package domain

// OutlineSlide is one slide row of a course plan.
type OutlineSlide struct {
	// Number is the slide position within its unit.
	Number int `json:"slide_no"`

	// Title is the slide title.
	Title string `json:"slide_title"`
}

// OutlineUnit groups the slides of one course unit.
type OutlineUnit struct {
	// Number is the unit position within the course.
	Number int `json:"unit_no"`

	// Name is the unit name.
	Name string `json:"unit_name"`

	// Slides holds the unit's slides sorted by number.
	Slides []OutlineSlide `json:"slides"`
}

// CourseOutline is the externally supplied course structure, loaded
// from tabular storage by a collaborator and consumed read-only here.
type CourseOutline struct {
	// Course is the course name the outline belongs to.
	Course string `json:"course"`

	// Units holds the course units sorted by number.
	Units []OutlineUnit `json:"units"`
}

// SlideCount returns the total number of slides across all units.
func (o CourseOutline) SlideCount() int {
	n := 0
	for _, u := range o.Units {
		n += len(u.Slides)
	}
	return n
}

// CourseSpec carries the instructional parameters for one generation
// request. These come from the caller, not from the outline file.
type CourseSpec struct {
	// Course is the course name, matching the outline.
	Course string `json:"course"`

	// LearnerProfile describes who the learners are.
	LearnerProfile string `json:"learner_profile"`

	// TargetBehavior describes what learners should be able to do.
	TargetBehavior string `json:"target_behavior"`

	// Duration is the estimated course length (free text).
	Duration string `json:"duration"`

	// Tone is the desired tone and manner.
	Tone string `json:"tone"`
}
