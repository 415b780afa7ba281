package contract

import (
	"github.com/alexanderramin/regwise/internal/domain"
)

// PlanRequest asks for one best-effort schedule. Courses, CoreCodes and Subject
// are merged in that order into the requested course list.
type PlanRequest struct {
	Courses     []string
	CoreCodes   []string
	Subject     string
	Constraints domain.Constraints
	Completed   []string
	AutoFill    bool
}

func NewPlanRequest(courses ...string) PlanRequest {
	return PlanRequest{
		Courses:     courses,
		Constraints: domain.DefaultConstraints(),
		AutoFill:    true,
	}
}

type PlanStatus string

const (
	PlanSuccess PlanStatus = "success"
	PlanPartial PlanStatus = "partial"
	PlanFailure PlanStatus = "failure"
)

type MeetingView struct {
	Day      string
	Start    string
	End      string
	Campus   string
	Building string
	Room     string
	Mode     string
}

// CourseView is one placed course with its chosen section.
type CourseView struct {
	Key              string
	Title            string
	Credits          float64
	Section          string
	Index            string
	Open             bool
	Meetings         []MeetingView
	CoreCodes        []string
	HasPrerequisites bool
	Origin           domain.Origin
}

// UnmetCourse is a requested course that could not be placed.
type UnmetCourse struct {
	Key    string
	Code   domain.BlockerCode
	Reason string
}

type PrereqIssue struct {
	CourseKey string
	Reason    string
}

type PlanResponse struct {
	Status              PlanStatus
	SnapshotID          string
	TotalCredits        float64
	MinCredits          float64
	TargetCredits       float64
	MaxCredits          float64
	Requested           []CourseView
	AutoAdded           []CourseView
	Unmet               []UnmetCourse
	PrereqIssues        []PrereqIssue
	Warnings            []string
	RegistrationIndexes []string
}
