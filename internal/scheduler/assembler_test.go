package scheduler

import (
	"testing"
	"time"

	"github.com/alexanderramin/regwise/internal/catalog"
	"github.com/alexanderramin/regwise/internal/domain"
	"github.com/alexanderramin/regwise/internal/testutil"
	"github.com/alexanderramin/regwise/internal/timeslot"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAssembler(limits Limits, courses ...domain.Course) *Assembler {
	snap := catalog.NewSnapshot(testutil.NewCatalogData(courses...), catalog.DefaultOptions())
	return NewAssembler(snap, nil, limits)
}

func sectionIndexes(res domain.ScheduleResult) []string {
	var out []string
	for _, s := range res.Sections {
		out = append(out, s.Section.Index)
	}
	return out
}

func TestBuild_ConcurrentPrerequisiteFails(t *testing.T) {
	a := newAssembler(DefaultLimits(),
		testutil.NewCourse("198:111", 4, testutil.WithSection("1001", testutil.Meet(time.Monday, "10:00", "11:20"))),
		testutil.NewCourse("198:112", 4, testutil.WithPrereq("01:198:111"),
			testutil.WithSection("2001", testutil.Meet(time.Tuesday, "10:00", "11:20"))),
	)

	for _, order := range [][]string{{"198:111", "198:112"}, {"198:112", "198:111"}} {
		res := a.Build(Request{Courses: order, Constraints: domain.DefaultConstraints()})

		assert.Equal(t, []string{"198:111"}, res.PlacedKeys(), "order %v", order)
		assert.Equal(t, []string{"198:112"}, res.Failed)
		require.Len(t, res.PrereqIssues, 1)
		assert.Equal(t, "198:112", res.PrereqIssues[0].CourseKey)
		assert.Contains(t, res.PrereqIssues[0].Reason, "198:111")
		require.Len(t, res.Blockers, 1)
		assert.Equal(t, domain.BlockerPrereqConcurrent, res.Blockers[0].Code)
	}
}

func TestBuild_AutoFillFreshmanSafe(t *testing.T) {
	a := newAssembler(DefaultLimits(),
		testutil.NewCourse("640:151", 4, testutil.WithSection("1001", testutil.Meet(time.Monday, "10:00", "11:20"))),
		testutil.NewCourse("355:101", 4, testutil.WithSection("3001", testutil.Meet(time.Wednesday, "14:00", "15:20"))),
		testutil.NewCourse("198:205", 4, testutil.WithPrereq("01:198:112"),
			testutil.WithSection("4001", testutil.Meet(time.Thursday, "14:00", "15:20"))),
	)

	c := domain.DefaultConstraints()
	c.TargetCredits = 15
	res := a.Build(Request{Courses: []string{"640:151"}, Constraints: c, AutoFill: true})

	assert.InDelta(t, 8.0, res.TotalCredits, 0.001)
	assert.Equal(t, []string{"355:101"}, res.AutoAdded)
	assert.Equal(t, []string{"640:151", "355:101"}, res.PlacedKeys())
	assert.Equal(t, domain.OriginRequested, res.Sections[0].Origin)
	assert.Equal(t, domain.OriginAutoAdded, res.Sections[1].Origin)
	assert.Empty(t, res.Failed)
}

func TestBuild_FirstFitSkipsConflictingSection(t *testing.T) {
	a := newAssembler(DefaultLimits(),
		testutil.NewCourse("198:111", 4, testutil.WithSection("1001", testutil.Meet(time.Monday, "10:00", "11:20"))),
		testutil.NewCourse("640:151", 4,
			testutil.WithSection("2001", testutil.Meet(time.Monday, "11:00", "12:20")),
			testutil.WithSection("2002", testutil.Meet(time.Monday, "12:00", "13:20")),
			testutil.WithSection("2003", testutil.Meet(time.Tuesday, "12:00", "13:20")),
		),
	)

	res := a.Build(Request{Courses: []string{"198:111", "640:151"}, Constraints: domain.DefaultConstraints()})
	assert.Equal(t, []string{"1001", "2002"}, sectionIndexes(res))
	assert.InDelta(t, 8.0, res.TotalCredits, 0.001)
}

func TestBuild_FailureReasons(t *testing.T) {
	a := newAssembler(DefaultLimits(),
		testutil.NewCourse("198:111", 4, testutil.WithSection("1001", testutil.Meet(time.Monday, "10:00", "11:20"))),
		testutil.NewCourse("640:151", 4, testutil.WithSection("2001", testutil.Meet(time.Monday, "10:30", "11:50"))),
		testutil.NewCourse("355:101", 3, testutil.WithClosedSection("3001", testutil.Meet(time.Friday, "10:00", "11:20"))),
	)

	res := a.Build(Request{
		Courses:     []string{"198:111", "640:151", "355:101", "999:1"},
		Constraints: domain.DefaultConstraints(),
	})

	assert.Equal(t, []string{"198:111"}, res.PlacedKeys())
	assert.Equal(t, []string{"640:151", "355:101", "999:001"}, res.Failed)
	require.Len(t, res.Blockers, 3)
	assert.Equal(t, domain.BlockerNoFeasibleSection, res.Blockers[0].Code)
	assert.Contains(t, res.Blockers[0].Message, "conflicts")
	assert.Equal(t, domain.BlockerNoFeasibleSection, res.Blockers[1].Code)
	assert.Equal(t, domain.BlockerUnknownCourse, res.Blockers[2].Code)
	assert.Empty(t, res.PrereqIssues)
}

func TestBuild_IncludeClosed(t *testing.T) {
	a := newAssembler(DefaultLimits(),
		testutil.NewCourse("355:101", 3, testutil.WithClosedSection("3001", testutil.Meet(time.Friday, "10:00", "11:20"))),
	)
	c := domain.DefaultConstraints()
	c.IncludeClosed = true

	res := a.Build(Request{Courses: []string{"355:101"}, Constraints: c})
	assert.Equal(t, []string{"3001"}, sectionIndexes(res))
}

func TestBuild_RespectsDayAndTimePreferences(t *testing.T) {
	a := newAssembler(DefaultLimits(),
		testutil.NewCourse("640:151", 4,
			testutil.WithSection("F", testutil.Meet(time.Monday, "10:00", "11:20"), testutil.Meet(time.Friday, "10:00", "11:20")),
			testutil.WithSection("E", testutil.Meet(time.Tuesday, "08:10", "09:30")),
			testutil.WithSection("OK", testutil.Meet(time.Tuesday, "10:00", "11:20")),
		),
	)
	c := domain.DefaultConstraints()
	c.ExcludedDays = timeslot.NewDaySet(time.Friday)
	after := 9 * 60
	c.StartAfter = &after

	res := a.Build(Request{Courses: []string{"640:151"}, Constraints: c})
	assert.Equal(t, []string{"OK"}, sectionIndexes(res))
}

func TestBuild_IdempotentPlacement(t *testing.T) {
	a := newAssembler(DefaultLimits(),
		testutil.NewCourse("220:003", 3, testutil.WithSection("1001", testutil.Meet(time.Monday, "10:00", "11:20"))),
	)

	once := a.Build(Request{Courses: []string{"220:003"}, Constraints: domain.DefaultConstraints()})
	twice := a.Build(Request{Courses: []string{"220:003", "220:3", "220:003"}, Constraints: domain.DefaultConstraints()})

	assert.Equal(t, once, twice)
	assert.Len(t, twice.Sections, 1)
	assert.Empty(t, twice.Failed)
	assert.InDelta(t, 3.0, twice.TotalCredits, 0.001)
}

func TestBuild_AutoFillRespectsMaxCredits(t *testing.T) {
	a := newAssembler(DefaultLimits(),
		testutil.NewCourse("640:151", 4, testutil.WithSection("1", testutil.Meet(time.Monday, "08:00", "09:00"))),
		testutil.NewCourse("640:152", 4, testutil.WithSection("2", testutil.Meet(time.Monday, "09:00", "10:00"))),
		testutil.NewCourse("640:153", 4, testutil.WithSection("3", testutil.Meet(time.Monday, "10:00", "11:00"))),
		testutil.NewCourse("640:154", 4, testutil.WithSection("4", testutil.Meet(time.Monday, "11:00", "12:00"))),
		testutil.NewCourse("101:101", 4, testutil.WithSection("5", testutil.Meet(time.Tuesday, "08:00", "09:00"))),
		testutil.NewCourse("102:101", 2, testutil.WithSection("6", testutil.Meet(time.Tuesday, "09:00", "10:00"))),
	)
	c := domain.DefaultConstraints()
	c.TargetCredits = 18
	c.MaxCredits = 18

	res := a.Build(Request{
		Courses:     []string{"640:151", "640:152", "640:153", "640:154"},
		Constraints: c,
		AutoFill:    true,
	})

	assert.Equal(t, []string{"102:101"}, res.AutoAdded)
	assert.InDelta(t, 18.0, res.TotalCredits, 0.001)
}

func TestBuild_AutoFillTerminatesWhenNothingFits(t *testing.T) {
	a := newAssembler(DefaultLimits(),
		testutil.NewCourse("640:151", 4, testutil.WithSection("1", testutil.Meet(time.Monday, "08:00", "09:00"))),
		testutil.NewCourse("101:101", 3, testutil.WithSection("2", testutil.Meet(time.Monday, "08:30", "09:30"))),
	)
	c := domain.DefaultConstraints()

	res := a.Build(Request{Courses: []string{"640:151"}, Constraints: c, AutoFill: true})

	assert.Empty(t, res.AutoAdded)
	assert.InDelta(t, 4.0, res.TotalCredits, 0.001)
	assert.Empty(t, res.Warnings, "a fixed point is not a budget stop")
}

func TestBuild_AutoFillBudgetWarning(t *testing.T) {
	limits := DefaultLimits()
	limits.MaxFillAttempts = 2
	a := newAssembler(limits,
		testutil.NewCourse("101:101", 1, testutil.WithSection("1")),
		testutil.NewCourse("102:101", 1, testutil.WithSection("2")),
		testutil.NewCourse("103:101", 1, testutil.WithSection("3")),
	)

	res := a.Build(Request{Constraints: domain.DefaultConstraints(), AutoFill: true})

	assert.Len(t, res.AutoAdded, 2)
	require.Len(t, res.Warnings, 1)
	assert.Contains(t, res.Warnings[0], "2 attempts")
}

func TestBuild_AutoFillSkipsPrerequisiteOfPlacedCourse(t *testing.T) {
	a := newAssembler(DefaultLimits(),
		testutil.NewCourse("198:111", 4, testutil.WithSection("1001", testutil.Meet(time.Monday, "10:00", "11:20"))),
		testutil.NewCourse("198:112", 4, testutil.WithPrereq("01:198:111"),
			testutil.WithSection("2001", testutil.Meet(time.Tuesday, "10:00", "11:20"))),
		testutil.NewCourse("355:101", 3, testutil.WithSection("3001", testutil.Meet(time.Wednesday, "14:00", "15:20"))),
	)
	c := domain.DefaultConstraints()
	c.TargetCredits = 15

	res := a.Build(Request{Courses: []string{"198:112"}, Constraints: c, AutoFill: true})

	assert.Equal(t, []string{"355:101"}, res.AutoAdded)
	assert.NotContains(t, res.PlacedKeys(), "198:111")
	assert.Empty(t, res.Failed)
}

func TestBuild_NonFreshmanFillUsesHistory(t *testing.T) {
	courses := []domain.Course{
		testutil.NewCourse("198:112", 4, testutil.WithPrereq("01:198:111"),
			testutil.WithSection("1", testutil.Meet(time.Tuesday, "10:00", "11:20"))),
	}
	a := newAssembler(DefaultLimits(), courses...)
	c := domain.DefaultConstraints()
	c.FreshmanSafe = false

	without := a.Build(Request{Constraints: c, AutoFill: true})
	assert.Empty(t, without.AutoAdded)

	with := a.Build(Request{Constraints: c, AutoFill: true, Completed: []string{"198:111"}})
	assert.Equal(t, []string{"198:112"}, with.AutoAdded)

	c.FreshmanSafe = true
	safe := a.Build(Request{Constraints: c, AutoFill: true, Completed: []string{"198:111"}})
	assert.Empty(t, safe.AutoAdded, "freshman-safe fill never adds prerequisite courses")
}

func TestBuild_WarnsOnUnmetRequestedPrerequisite(t *testing.T) {
	a := newAssembler(DefaultLimits(),
		testutil.NewCourse("198:112", 4, testutil.WithPrereq("01:198:111"),
			testutil.WithSection("1", testutil.Meet(time.Tuesday, "10:00", "11:20"))),
	)

	res := a.Build(Request{Courses: []string{"198:112"}, Constraints: domain.DefaultConstraints()})
	assert.Equal(t, []string{"198:112"}, res.PlacedKeys())
	require.Len(t, res.Warnings, 1)
	assert.Contains(t, res.Warnings[0], "198:112")

	res = a.Build(Request{Courses: []string{"198:112"}, Constraints: domain.DefaultConstraints(), Completed: []string{"198:111"}})
	assert.Empty(t, res.Warnings)
}

func TestBuild_EmptyRequestWithoutFill(t *testing.T) {
	a := newAssembler(DefaultLimits())
	res := a.Build(Request{Constraints: domain.DefaultConstraints()})
	assert.Empty(t, res.Sections)
	assert.Zero(t, res.TotalCredits)
}

func TestBuild_Deterministic(t *testing.T) {
	a := newAssembler(DefaultLimits(),
		testutil.NewCourse("198:111", 4, testutil.WithSection("1", testutil.Meet(time.Monday, "10:00", "11:20"))),
		testutil.NewCourse("101:101", 3, testutil.WithSection("2", testutil.Meet(time.Tuesday, "10:00", "11:20"))),
		testutil.NewCourse("102:101", 3, testutil.WithSection("3", testutil.Meet(time.Tuesday, "10:00", "11:20"))),
		testutil.NewCourse("103:101", 3, testutil.WithSection("4", testutil.Meet(time.Wednesday, "10:00", "11:20"))),
	)
	req := Request{Courses: []string{"198:111"}, Constraints: domain.DefaultConstraints(), AutoFill: true}

	first := a.Build(req)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, a.Build(req))
	}
	// Equal scores tie-break on key: 101:101 wins the Tuesday slot.
	assert.Equal(t, []string{"101:101", "103:101"}, first.AutoAdded)
}
