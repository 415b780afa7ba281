package service

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/alexanderramin/regwise/internal/contract"
	"github.com/stretchr/testify/assert"
)

func TestLogUseCaseObserver_WritesFields(t *testing.T) {
	var buf bytes.Buffer
	obs := NewLogUseCaseObserver(&buf, slog.LevelInfo)

	obs.ObserveUseCase(context.Background(), UseCaseEvent{
		Name:    "plan",
		Success: true,
		Fields:  map[string]any{"placed": 4},
	})
	out := buf.String()
	assert.Contains(t, out, "use_case=plan")
	assert.Contains(t, out, "success=true")
	assert.Contains(t, out, "placed=4")

	buf.Reset()
	obs.ObserveUseCase(context.Background(), UseCaseEvent{Name: "options", Err: errors.New("boom")})
	assert.Contains(t, buf.String(), "level=ERROR")
	assert.Contains(t, buf.String(), "error=boom")
}

func TestLogUseCaseObserver_LevelFilters(t *testing.T) {
	var buf bytes.Buffer
	obs := NewLogUseCaseObserver(&buf, slog.LevelError)

	obs.ObserveUseCase(context.Background(), UseCaseEvent{Name: "plan", Success: true})
	assert.Empty(t, buf.String())

	assert.IsType(t, NoopUseCaseObserver{}, NewLogUseCaseObserver(nil, slog.LevelInfo))
}

func TestObserve_ReportsNamedError(t *testing.T) {
	rec := &recordingObserver{}
	run := func() (err error) {
		defer observe(context.Background(), rec, "plan", map[string]any{"requested": 2}, &err)()
		return &contract.PlanError{Code: contract.ErrEmptyRequest, Message: "nothing"}
	}

	err := run()
	assert.Error(t, err)
	if assert.Len(t, rec.events, 1) {
		ev := rec.events[0]
		assert.Equal(t, "plan", ev.Name)
		assert.False(t, ev.Success)
		assert.Equal(t, err, ev.Err)
		assert.Equal(t, 2, ev.Fields["requested"])
		assert.False(t, ev.StartedAt.IsZero())
	}
}

func TestUseCaseObserverOrNoop(t *testing.T) {
	rec := &recordingObserver{}
	assert.Same(t, rec, useCaseObserverOrNoop([]UseCaseObserver{nil, rec}))
	assert.IsType(t, NoopUseCaseObserver{}, useCaseObserverOrNoop(nil))
}
