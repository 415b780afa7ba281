package scheduler

import (
	"testing"

	"github.com/alexanderramin/regwise/internal/catalog"
	"github.com/alexanderramin/regwise/internal/domain"
	"github.com/alexanderramin/regwise/internal/testutil"
	"github.com/stretchr/testify/assert"
)

func newGate(courses ...domain.Course) *TextGate {
	snap := catalog.NewSnapshot(testutil.NewCatalogData(courses...), catalog.DefaultOptions())
	return NewTextGate(snap, DefaultLongPrefix)
}

func TestTextGate_HasUnmetPrerequisite(t *testing.T) {
	gate := newGate(
		testutil.NewCourse("198:111", 4),
		testutil.NewCourse("198:112", 4, testutil.WithPrereq("01:198:111")),
		testutil.NewCourse("198:205", 4, testutil.WithPrereq("01:198:111 and 01:640:152")),
		testutil.NewCourse("198:211", 4, testutil.WithPrereq("Permission of instructor")),
	)

	assert.False(t, gate.HasUnmetPrerequisite("198:111", domain.NewKeySet()), "no text")
	assert.True(t, gate.HasUnmetPrerequisite("198:112", domain.NewKeySet()))
	assert.False(t, gate.HasUnmetPrerequisite("198:112", domain.NewKeySet("198:111")))
	assert.False(t, gate.HasUnmetPrerequisite("198:112", domain.NewKeySet("198:111", "640:151")))

	// Any one reference counts; AND is not evaluated.
	assert.False(t, gate.HasUnmetPrerequisite("198:205", domain.NewKeySet("640:152")))

	assert.True(t, gate.HasUnmetPrerequisite("198:211", domain.NewKeySet("198:111")),
		"text without a key is unmet")
	assert.False(t, gate.HasUnmetPrerequisite("999:999", domain.NewKeySet()), "unknown course")
}

func TestTextGate_ConflictsWithConcurrent(t *testing.T) {
	gate := newGate(
		testutil.NewCourse("198:111", 4),
		testutil.NewCourse("198:112", 4, testutil.WithPrereq("01:198:111")),
		testutil.NewCourse("640:152", 4, testutil.WithPrereq("640:151 or placement")),
	)

	assert.True(t, gate.ConflictsWithConcurrent("198:112", domain.NewKeySet("198:111")), "long form")
	assert.True(t, gate.ConflictsWithConcurrent("640:152", domain.NewKeySet("640:151", "355:101")), "short form")
	assert.False(t, gate.ConflictsWithConcurrent("198:111", domain.NewKeySet("198:112")), "no text")
	assert.False(t, gate.ConflictsWithConcurrent("198:112", domain.NewKeySet("198:112")), "self")
	assert.False(t, gate.ConflictsWithConcurrent("640:152", domain.NewKeySet()))
}

func TestTextGate_CustomLongPrefix(t *testing.T) {
	snap := catalog.NewSnapshot(testutil.NewCatalogData(
		testutil.NewCourse("198:112", 4, testutil.WithPrereq("NB-198:111")),
	), catalog.DefaultOptions())

	// The short form is contained in any long form.
	assert.True(t, NewTextGate(snap, "NB-").ConflictsWithConcurrent("198:112", domain.NewKeySet("198:111")))
	assert.True(t, NewTextGate(snap, DefaultLongPrefix).ConflictsWithConcurrent("198:112", domain.NewKeySet("198:111")))
}
