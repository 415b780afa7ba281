package contract

import (
	"testing"

	"github.com/alexanderramin/regwise/internal/domain"
	"github.com/stretchr/testify/assert"
)

// --- PlanRequest constructor defaults ---

func TestNewPlanRequest_SetsDefaults(t *testing.T) {
	req := NewPlanRequest("198:111", "640:151")

	assert.Equal(t, []string{"198:111", "640:151"}, req.Courses)
	assert.True(t, req.AutoFill)
	assert.True(t, req.Constraints.FreshmanSafe)
	assert.Equal(t, domain.DefaultTargetCredits, req.Constraints.TargetCredits)
	assert.Equal(t, domain.DefaultMaxCredits, req.Constraints.MaxCredits)
	assert.Equal(t, domain.DefaultMinCredits, req.Constraints.MinCredits)
	assert.Nil(t, req.CoreCodes)
	assert.Empty(t, req.Subject)
	assert.Nil(t, req.Completed)
}

func TestNewPlanRequest_NoCourses(t *testing.T) {
	// An empty list is valid in the DTO; the service decides whether anything
	// can be planned.
	req := NewPlanRequest()
	assert.Empty(t, req.Courses)
}

// --- OptionsRequest constructor defaults ---

func TestNewOptionsRequest_SetsDefaults(t *testing.T) {
	req := NewOptionsRequest("198:111")

	assert.Equal(t, []string{"198:111"}, req.Courses)
	assert.Zero(t, req.MaxOptions)
	assert.False(t, req.Constraints.HasDayTimeExclusions())
}

func TestOptionsResponse_Relaxed(t *testing.T) {
	assert.False(t, OptionsResponse{}.Relaxed())
	assert.False(t, OptionsResponse{Relaxation: domain.RelaxNone}.Relaxed())
	assert.True(t, OptionsResponse{Relaxation: domain.RelaxDayTime}.Relaxed())
}

func TestPlanError_Error(t *testing.T) {
	err := &PlanError{Code: ErrNoCatalog, Message: "import a catalog first"}
	assert.Equal(t, "NO_CATALOG: import a catalog first", err.Error())
}
