package scheduler

import (
	"strings"

	"github.com/alexanderramin/regwise/internal/domain"
)

// DefaultLongPrefix is the campus prefix some catalogs put in front of course
// keys inside prerequisite text ("01:198:111").
const DefaultLongPrefix = "01:"

// PrereqGate decides prerequisite questions for the assembler.
type PrereqGate interface {
	// HasUnmetPrerequisite reports whether key lists prerequisites that the
	// completed history does not evidence.
	HasUnmetPrerequisite(key string, completed domain.KeySet) bool
	// ConflictsWithConcurrent reports whether key requires one of the courses
	// scheduled in the same term.
	ConflictsWithConcurrent(key string, scheduled domain.KeySet) bool
}

// CourseLookup resolves course keys.
type CourseLookup interface {
	Course(key string) (*domain.Course, bool)
}

// TextGate matches course keys inside free-text prerequisite expressions.
// It does not evaluate AND/OR clauses or grades: a reference anywhere in the
// text counts.
type TextGate struct {
	courses    CourseLookup
	longPrefix string
}

// NewTextGate builds a gate that resolves prerequisite keys against courses.
// longPrefix is the school code stripped from long-form keys such as 01:198:111.
func NewTextGate(courses CourseLookup, longPrefix string) *TextGate {
	return &TextGate{courses: courses, longPrefix: longPrefix}
}

func (g *TextGate) prereqText(key string) (string, string) {
	c, ok := g.courses.Course(key)
	if !ok {
		return domain.NormalizeKey(key), ""
	}
	return c.Key, strings.TrimSpace(c.Prerequisites)
}

// HasUnmetPrerequisite is true when the text is non-empty and none of its
// referenced keys are in completed. Text without any recognizable key is
// treated as unmet.
func (g *TextGate) HasUnmetPrerequisite(key string, completed domain.KeySet) bool {
	_, text := g.prereqText(key)
	if text == "" {
		return false
	}
	for _, ref := range domain.PrereqRefs(text) {
		if completed.Has(ref) {
			return false
		}
	}
	return true
}

// ConflictsWithConcurrent checks the text for the short and long form of every
// other scheduled key.
func (g *TextGate) ConflictsWithConcurrent(key string, scheduled domain.KeySet) bool {
	self, text := g.prereqText(key)
	if text == "" {
		return false
	}
	for other := range scheduled {
		if other == self || other == "" {
			continue
		}
		if strings.Contains(text, other) || strings.Contains(text, g.longPrefix+other) {
			return true
		}
	}
	return false
}
