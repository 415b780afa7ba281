package contract

import "github.com/alexanderramin/regwise/internal/domain"

// OptionsRequest asks for alternative section combinations of a fixed course
// list. MaxOptions <= 0 uses the configured limit.
type OptionsRequest struct {
	Courses     []string
	Constraints domain.Constraints
	MaxOptions  int
}

func NewOptionsRequest(courses ...string) OptionsRequest {
	return OptionsRequest{
		Courses:     courses,
		Constraints: domain.DefaultConstraints(),
	}
}

type OptionsStatus string

const (
	OptionsSuccess       OptionsStatus = "success"
	OptionsRelaxed       OptionsStatus = "relaxed"
	OptionsUnsatisfiable OptionsStatus = "unsatisfiable"
)

type ScheduleOption struct {
	Number              int
	TotalCredits        float64
	Courses             []CourseView
	RegistrationIndexes []string
}

type OptionsResponse struct {
	Status       OptionsStatus
	SnapshotID   string
	Relaxation   domain.Relaxation
	Truncated    bool
	Courses      []string
	Options      []ScheduleOption
	Rejected     []UnmetCourse
	PrereqIssues []PrereqIssue
}

// Relaxed reports whether day and time preferences were dropped to find options.
func (r OptionsResponse) Relaxed() bool {
	return r.Relaxation != "" && r.Relaxation != domain.RelaxNone
}
