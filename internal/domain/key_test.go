package domain

import (
	"testing"
	"time"

	"github.com/alexanderramin/regwise/internal/timeslot"
	"github.com/stretchr/testify/assert"
)

func TestNormalizeKey_PadsBothHalves(t *testing.T) {
	assert.Equal(t, "220:003", NormalizeKey("220:3"))
	assert.Equal(t, "014:101", NormalizeKey(" 14:101 "))
	assert.Equal(t, "198:111", NormalizeKey("198:111"))
	assert.Equal(t, "01:198:111", NormalizeKey("01:198:111"), "three-part keys pass through")
	assert.Equal(t, "calc", NormalizeKey("calc"))
}

func TestValidKey(t *testing.T) {
	assert.True(t, ValidKey("198:111"))
	assert.True(t, ValidKey("355:101H"))
	assert.False(t, ValidKey("98:111"))
	assert.False(t, ValidKey("abc:111"))
	assert.False(t, ValidKey("198"))
	assert.False(t, ValidKey("198:1x1"))
}

func TestKeySet_NormalizesMembers(t *testing.T) {
	s := NewKeySet("220:3", "198:111")
	assert.True(t, s.Has("220:003"))
	assert.True(t, s.Has("198:111"))
	assert.False(t, s.Has("198:112"))
}

func TestMeeting_Overlaps(t *testing.T) {
	a := Meeting{Day: time.Monday, Start: 600, End: 680}
	b := Meeting{Day: time.Monday, Start: 650, End: 730}
	c := Meeting{Day: time.Monday, Start: 680, End: 760}
	d := Meeting{Day: time.Tuesday, Start: 600, End: 680}

	assert.True(t, a.Overlaps(b))
	assert.True(t, b.Overlaps(a))
	assert.False(t, a.Overlaps(c), "touching intervals do not overlap")
	assert.False(t, a.Overlaps(d))
}

func TestConstraints_WithoutDayTimeExclusions(t *testing.T) {
	after := 540
	c := DefaultConstraints()
	c.ExcludedDays = timeslot.NewDaySet(time.Friday)
	c.StartAfter = &after
	assert.True(t, c.HasDayTimeExclusions())

	relaxed := c.WithoutDayTimeExclusions()
	assert.False(t, relaxed.HasDayTimeExclusions())
	assert.Equal(t, c.FreshmanSafe, relaxed.FreshmanSafe)
	assert.Equal(t, c.MaxCredits, relaxed.MaxCredits)
	assert.True(t, c.ExcludedDays.Has(time.Friday), "original constraints untouched")
}

func TestCourse_Helpers(t *testing.T) {
	c := Course{
		Key:           "640:151",
		Prerequisites: "  ",
		Sections:      []Section{{Open: true}, {Open: false}, {Open: true}},
	}
	assert.Equal(t, "640", c.Subject())
	assert.False(t, c.HasPrerequisites())
	assert.Equal(t, 2, c.OpenSectionCount())
}
