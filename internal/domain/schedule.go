package domain

import "github.com/alexanderramin/regwise/internal/timeslot"

// Default credit policy for a full-time term.
const (
	DefaultMinCredits    = 12.0
	DefaultTargetCredits = 15.0
	DefaultMaxCredits    = 18.0
)

// Constraints carries the student's scheduling preferences.
// StartAfter and EndBefore are minutes since midnight when set.
type Constraints struct {
	ExcludedDays  timeslot.DaySet
	StartAfter    *int
	EndBefore     *int
	FreshmanSafe  bool
	IncludeClosed bool
	TargetCredits float64
	MaxCredits    float64
	MinCredits    float64
}

// DefaultConstraints returns the full-time credit policy with no day or time
// exclusions and freshman-safe auto-fill.
func DefaultConstraints() Constraints {
	return Constraints{
		FreshmanSafe:  true,
		TargetCredits: DefaultTargetCredits,
		MaxCredits:    DefaultMaxCredits,
		MinCredits:    DefaultMinCredits,
	}
}

// HasDayTimeExclusions reports whether any day or time bound is set.
func (c Constraints) HasDayTimeExclusions() bool {
	return !c.ExcludedDays.Empty() || c.StartAfter != nil || c.EndBefore != nil
}

// WithoutDayTimeExclusions drops day and time bounds, keeping everything else.
func (c Constraints) WithoutDayTimeExclusions() Constraints {
	c.ExcludedDays = 0
	c.StartAfter = nil
	c.EndBefore = nil
	return c
}

type Origin string

const (
	OriginRequested Origin = "requested"
	OriginAutoAdded Origin = "auto_added"
)

// ScheduledSection is a section placed in a schedule for one course.
type ScheduledSection struct {
	CourseKey string
	Title     string
	Credits   float64
	Section   Section
	Origin    Origin
}

type BlockerCode string

const (
	BlockerUnknownCourse     BlockerCode = "UNKNOWN_COURSE"
	BlockerPrereqConcurrent  BlockerCode = "PREREQ_CONCURRENT"
	BlockerNoFeasibleSection BlockerCode = "NO_FEASIBLE_SECTION"
)

// Blocker explains why a requested course was not placed.
type Blocker struct {
	CourseKey string
	Code      BlockerCode
	Message   string
}

// PrereqIssue records a course rejected on prerequisite grounds.
type PrereqIssue struct {
	CourseKey string
	Reason    string
}

// ScheduleResult is the outcome of one single-schedule assembly.
type ScheduleResult struct {
	Sections     []ScheduledSection
	TotalCredits float64
	Failed       []string
	PrereqIssues []PrereqIssue
	AutoAdded    []string
	Blockers     []Blocker
	Warnings     []string
}

// Placed reports whether a course already has a section in the schedule.
func (r *ScheduleResult) Placed(key string) bool {
	key = NormalizeKey(key)
	for _, s := range r.Sections {
		if s.CourseKey == key {
			return true
		}
	}
	return false
}

// PlacedKeys returns the course keys in placement order.
func (r *ScheduleResult) PlacedKeys() []string {
	keys := make([]string, 0, len(r.Sections))
	for _, s := range r.Sections {
		keys = append(keys, s.CourseKey)
	}
	return keys
}

// Relaxation names the constraint relaxation applied by a multi-schedule search.
type Relaxation string

const (
	RelaxNone    Relaxation = "none"
	RelaxDayTime Relaxation = "day_time"
)

// Combination is one conflict-free choice of a section per course.
type Combination struct {
	Sections     []ScheduledSection
	TotalCredits float64
}

// Options is the outcome of a multi-schedule enumeration.
type Options struct {
	Combinations []Combination
	Relaxation   Relaxation
	Satisfiable  bool
	Truncated    bool
	Courses      []string
	PrereqIssues []PrereqIssue
	Blockers     []Blocker
}
