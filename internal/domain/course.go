package domain

import "time"

// Meeting is one weekly block of a section. Start and End are minutes since
// midnight with Start < End.
type Meeting struct {
	Day      time.Weekday
	Start    int
	End      int
	Campus   string
	Building string
	Room     string
	Mode     string
}

// Overlaps reports whether two meetings share a day and their half-open
// intervals intersect.
func (m Meeting) Overlaps(o Meeting) bool {
	return m.Day == o.Day && m.Start < o.End && o.Start < m.End
}

// Section is one offered instance of a course. A section with no meetings is
// asynchronous and never occupies time.
type Section struct {
	CourseKey string
	Number    string
	Index     string
	Open      bool
	Notes     string
	Meetings  []Meeting
}

type Course struct {
	Key           string
	Title         string
	Credits       float64
	Prerequisites string
	Description   string
	CoreCodes     []string
	Sections      []Section
}

// Subject returns the subject half of the course key.
func (c *Course) Subject() string {
	subject, _, _ := SplitKey(c.Key)
	return subject
}

// HasPrerequisites reports whether the catalog lists any prerequisite text.
func (c *Course) HasPrerequisites() bool {
	return !isBlank(c.Prerequisites)
}

// OpenSectionCount counts sections with remaining capacity.
func (c *Course) OpenSectionCount() int {
	n := 0
	for _, s := range c.Sections {
		if s.Open {
			n++
		}
	}
	return n
}

// CatalogData is the raw material of a catalog snapshot: every course plus the
// core requirement index as published by the source.
type CatalogData struct {
	ID         string
	Source     string
	ImportedAt time.Time
	Courses    []Course
	CoreIndex  map[string][]string
}

// SnapshotInfo summarizes a stored catalog snapshot.
type SnapshotInfo struct {
	ID          string
	Source      string
	ImportedAt  time.Time
	CourseCount int
}
