package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/regwise/internal/catalog"
	"github.com/alexanderramin/regwise/internal/contract"
	"github.com/alexanderramin/regwise/internal/domain"
	"github.com/alexanderramin/regwise/internal/report"
	"github.com/alexanderramin/regwise/internal/scheduler"
)

// subjectPicks is how many ranked subject courses a subject request adds.
const subjectPicks = 2

type planService struct {
	catalogs   SnapshotSource
	limits     scheduler.Limits
	longPrefix string
	observer   UseCaseObserver
}

func NewPlanService(
	catalogs SnapshotSource,
	limits scheduler.Limits,
	longPrefix string,
	observers ...UseCaseObserver,
) PlanService {
	if longPrefix == "" {
		longPrefix = scheduler.DefaultLongPrefix
	}
	return &planService{
		catalogs:   catalogs,
		limits:     limits,
		longPrefix: longPrefix,
		observer:   useCaseObserverOrNoop(observers),
	}
}

func (s *planService) assembler(snap *catalog.Snapshot, limits scheduler.Limits) *scheduler.Assembler {
	return scheduler.NewAssembler(snap, scheduler.NewTextGate(snap, s.longPrefix), limits)
}

func (s *planService) Plan(ctx context.Context, req contract.PlanRequest) (resp *contract.PlanResponse, err error) {
	fields := map[string]any{"requested": len(req.Courses)}
	defer observe(ctx, s.observer, "plan", fields, &err)()

	snap, err := s.catalogs.Current(ctx)
	if err != nil {
		return nil, err
	}
	if err = validateConstraints(req.Constraints); err != nil {
		return nil, err
	}

	courses, warnings := resolveCourses(snap, req)
	if len(courses) == 0 && !req.AutoFill {
		err = &contract.PlanError{
			Code:    contract.ErrEmptyRequest,
			Message: "no courses to schedule and auto-fill is off",
		}
		return nil, err
	}

	res := s.assembler(snap, s.limits).Build(scheduler.Request{
		Courses:     courses,
		Constraints: req.Constraints,
		Completed:   req.Completed,
		AutoFill:    req.AutoFill,
	})

	out := report.Plan(res, req.Constraints, snap)
	out.SnapshotID = snap.ID()
	out.Warnings = append(warnings, out.Warnings...)

	fields["resolved"] = len(courses)
	fields["placed"] = len(res.Sections)
	fields["failed"] = len(res.Failed)
	fields["credits"] = res.TotalCredits
	fields["status"] = string(out.Status)
	return &out, nil
}

func (s *planService) Options(ctx context.Context, req contract.OptionsRequest) (resp *contract.OptionsResponse, err error) {
	fields := map[string]any{"requested": len(req.Courses)}
	defer observe(ctx, s.observer, "options", fields, &err)()

	snap, err := s.catalogs.Current(ctx)
	if err != nil {
		return nil, err
	}
	if err = validateConstraints(req.Constraints); err != nil {
		return nil, err
	}
	if len(nonBlank(req.Courses)) == 0 {
		err = &contract.PlanError{
			Code:    contract.ErrEmptyRequest,
			Message: "list at least one course to compare options",
		}
		return nil, err
	}

	limits := s.limits
	if req.MaxOptions > 0 {
		limits.MaxCombinations = req.MaxOptions
	}
	opts := s.assembler(snap, limits).Enumerate(scheduler.Request{
		Courses:     req.Courses,
		Constraints: req.Constraints,
	})

	out := report.Options(opts, snap)
	out.SnapshotID = snap.ID()

	fields["options"] = len(out.Options)
	fields["rejected"] = len(out.Rejected)
	fields["relaxation"] = string(out.Relaxation)
	fields["truncated"] = out.Truncated
	return &out, nil
}

// resolveCourses merges explicit keys, the best course per core tag and the
// top subject picks into one requested list, in that order.
func resolveCourses(snap *catalog.Snapshot, req contract.PlanRequest) ([]string, []string) {
	var courses, warnings []string
	seen := domain.NewKeySet()
	add := func(key string) {
		if seen.Has(key) {
			return
		}
		seen.Add(key)
		courses = append(courses, domain.NormalizeKey(key))
	}

	for _, key := range nonBlank(req.Courses) {
		add(key)
	}

	for _, tag := range nonBlank(req.CoreCodes) {
		tag = strings.ToUpper(tag)
		picked := false
		for _, key := range snap.CoursesByCore(tag) {
			if !seen.Has(key) {
				add(key)
				picked = true
				break
			}
		}
		if !picked {
			warnings = append(warnings, fmt.Sprintf("No open course found for core requirement %s", tag))
		}
	}

	if subject := strings.TrimSpace(req.Subject); subject != "" {
		picks := 0
		for _, key := range snap.CoursesBySubject(subject, req.Constraints.FreshmanSafe) {
			if picks == subjectPicks {
				break
			}
			if !seen.Has(key) {
				add(key)
				picks++
			}
		}
		if picks == 0 {
			warnings = append(warnings, fmt.Sprintf("No open intro course found for subject %s", subject))
		}
	}
	return courses, warnings
}

func validateConstraints(c domain.Constraints) error {
	invalid := func(format string, args ...any) error {
		return &contract.PlanError{Code: contract.ErrInvalidRequest, Message: fmt.Sprintf(format, args...)}
	}
	if c.MinCredits < 0 || c.TargetCredits < 0 || c.MaxCredits < 0 {
		return invalid("credit limits must not be negative")
	}
	if c.MaxCredits > 0 && c.TargetCredits > c.MaxCredits {
		return invalid("target credits %g exceed max credits %g", c.TargetCredits, c.MaxCredits)
	}
	if c.MaxCredits > 0 && c.MinCredits > c.MaxCredits {
		return invalid("min credits %g exceed max credits %g", c.MinCredits, c.MaxCredits)
	}
	if c.StartAfter != nil && c.EndBefore != nil && *c.StartAfter >= *c.EndBefore {
		return invalid("start-after must be earlier than end-before")
	}
	return nil
}

func nonBlank(values []string) []string {
	var out []string
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
