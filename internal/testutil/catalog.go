package testutil

import (
	"fmt"
	"time"

	"github.com/alexanderramin/regwise/internal/domain"
	"github.com/alexanderramin/regwise/internal/timeslot"
)

// Course options
type CourseOption func(*domain.Course)

func WithTitle(title string) CourseOption {
	return func(c *domain.Course) {
		c.Title = title
	}
}

func WithPrereq(text string) CourseOption {
	return func(c *domain.Course) {
		c.Prerequisites = text
	}
}

func WithCore(tags ...string) CourseOption {
	return func(c *domain.Course) {
		c.CoreCodes = append(c.CoreCodes, tags...)
	}
}

// WithSection appends an open section with the given registration index.
func WithSection(index string, meetings ...domain.Meeting) CourseOption {
	return withSection(index, true, meetings)
}

// WithClosedSection appends a section with no remaining capacity.
func WithClosedSection(index string, meetings ...domain.Meeting) CourseOption {
	return withSection(index, false, meetings)
}

func withSection(index string, open bool, meetings []domain.Meeting) CourseOption {
	return func(c *domain.Course) {
		c.Sections = append(c.Sections, domain.Section{
			CourseKey: c.Key,
			Number:    fmt.Sprintf("%02d", len(c.Sections)+1),
			Index:     index,
			Open:      open,
			Meetings:  meetings,
		})
	}
}

// NewCourse builds a catalog course. Without a WithTitle option the title is
// derived from the key.
func NewCourse(key string, credits float64, opts ...CourseOption) domain.Course {
	c := domain.Course{
		Key:     domain.NormalizeKey(key),
		Title:   "Course " + key,
		Credits: credits,
	}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// Meet builds a meeting from 24-hour "HH:MM" times. It panics on bad input.
func Meet(day time.Weekday, start, end string) domain.Meeting {
	s, ok := timeslot.ParseMinutes24(start)
	if !ok {
		panic(fmt.Sprintf("testutil.Meet: bad start %q", start))
	}
	e, ok := timeslot.ParseMinutes24(end)
	if !ok {
		panic(fmt.Sprintf("testutil.Meet: bad end %q", end))
	}
	return domain.Meeting{Day: day, Start: s, End: e, Campus: "BUS"}
}

// NewCatalogData bundles courses into catalog data with a fixed ID.
func NewCatalogData(courses ...domain.Course) domain.CatalogData {
	return domain.CatalogData{
		ID:         "test-snapshot",
		Source:     "test",
		ImportedAt: time.Date(2025, 8, 1, 12, 0, 0, 0, time.UTC),
		Courses:    courses,
	}
}
