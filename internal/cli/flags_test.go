package cli

import (
	"testing"
	"time"

	"github.com/alexanderramin/regwise/internal/contract"
	"github.com/alexanderramin/regwise/internal/timeslot"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDayFlag_Accumulates(t *testing.T) {
	var set timeslot.DaySet
	f := dayFlag{set: &set}

	require.NoError(t, f.Set("M,W"))
	require.NoError(t, f.Set("friday"))
	assert.Equal(t, timeslot.NewDaySet(time.Monday, time.Wednesday, time.Friday), set)
	assert.Equal(t, "Monday,Wednesday,Friday", f.String())
	assert.Error(t, f.Set("Sunday"))
	assert.Equal(t, "days", f.Type())
}

func TestClockFlag(t *testing.T) {
	var mins *int
	f := clockFlag{mins: &mins}
	assert.Empty(t, f.String())

	require.NoError(t, f.Set("9:30 AM"))
	require.NotNil(t, mins)
	assert.Equal(t, 9*60+30, *mins)

	require.NoError(t, f.Set("5:00"))
	assert.Equal(t, 17*60, *mins, "unmarked early hours are afternoon")
	assert.Equal(t, "5:00 PM", f.String())

	assert.Error(t, f.Set("noon"))
}

func TestCourseArgs(t *testing.T) {
	assert.Equal(t, []string{"198:111", "640:151", "355:101"},
		courseArgs([]string{"198:111, 640:151", " ", "355:101,"}))
	assert.Nil(t, courseArgs(nil))
}

func TestPlanFormValues_Apply(t *testing.T) {
	req := contract.NewPlanRequest()
	v := newPlanFormValues(req)
	assert.Equal(t, "15", v.Credits)
	assert.True(t, v.AutoFill)

	v.Courses = "198:111, 640:151"
	v.CoreCodes = "QR"
	v.Subject = " 198 "
	v.Days = []string{"Friday"}
	v.StartAfter = "9:00 AM"
	v.Credits = "16"
	v.AutoFill = false
	require.NoError(t, v.apply(&req))

	assert.Equal(t, []string{"198:111", "640:151"}, req.Courses)
	assert.Equal(t, []string{"QR"}, req.CoreCodes)
	assert.Equal(t, "198", req.Subject)
	assert.True(t, req.Constraints.ExcludedDays.Has(time.Friday))
	require.NotNil(t, req.Constraints.StartAfter)
	assert.Equal(t, 540, *req.Constraints.StartAfter)
	assert.Nil(t, req.Constraints.EndBefore)
	assert.Equal(t, 16.0, req.Constraints.TargetCredits)
	assert.False(t, req.AutoFill)

	v.Credits = "lots"
	assert.Error(t, v.apply(&req))
}

func TestFormValidators(t *testing.T) {
	assert.NoError(t, validateOptionalClock(""))
	assert.NoError(t, validateOptionalClock("17:00"))
	assert.Error(t, validateOptionalClock("later"))

	assert.NoError(t, validatePositiveFloat("12.5"))
	assert.Error(t, validatePositiveFloat("0"))
	assert.Error(t, validatePositiveFloat("x"))
}
