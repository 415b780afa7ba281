package scheduler

import (
	"fmt"

	"github.com/alexanderramin/regwise/internal/catalog"
	"github.com/alexanderramin/regwise/internal/domain"
)

// Catalog is the read-only course view the assembler works against.
// *catalog.Snapshot satisfies it.
type Catalog interface {
	CourseLookup
	Sections(key string, f catalog.SectionFilter) []domain.Section
	Fillers() []catalog.Candidate
	NoPrereqFillers() []catalog.Candidate
}

// Limits bound the work of one assembly call.
type Limits struct {
	MaxFillAttempts int
	MaxCombinations int
	MaxSearchNodes  int
}

// DefaultLimits returns the fill, enumeration and search budgets used when
// configuration leaves them unset.
func DefaultLimits() Limits {
	return Limits{
		MaxFillAttempts: 80,
		MaxCombinations: 50,
		MaxSearchNodes:  100000,
	}
}

// Request describes one assembly call. Course order is the priority order.
type Request struct {
	Courses     []string
	Constraints domain.Constraints
	Completed   []string
	AutoFill    bool
}

// Assembler turns requested courses into conflict-free schedules. It holds no
// mutable state; one Assembler may serve concurrent calls.
type Assembler struct {
	catalog Catalog
	gate    PrereqGate
	limits  Limits
}

// NewAssembler wires an assembler. A nil gate falls back to a TextGate over
// the catalog with the default long prefix.
func NewAssembler(cat Catalog, gate PrereqGate, limits Limits) *Assembler {
	if gate == nil {
		gate = NewTextGate(cat, DefaultLongPrefix)
	}
	return &Assembler{catalog: cat, gate: gate, limits: limits}
}

// schedule is the in-progress result of a Build call.
type schedule struct {
	result *domain.ScheduleResult
	placed domain.KeySet
}

func (s *schedule) place(c *domain.Course, sec domain.Section, origin domain.Origin) {
	s.result.Sections = append(s.result.Sections, domain.ScheduledSection{
		CourseKey: c.Key,
		Title:     c.Title,
		Credits:   c.Credits,
		Section:   sec,
		Origin:    origin,
	})
	s.placed.Add(c.Key)
	s.result.TotalCredits += c.Credits
	if origin == domain.OriginAutoAdded {
		s.result.AutoAdded = append(s.result.AutoAdded, c.Key)
	}
}

func (s *schedule) fail(key string, code domain.BlockerCode, msg string) {
	s.result.Failed = append(s.result.Failed, key)
	s.result.Blockers = append(s.result.Blockers, domain.Blocker{
		CourseKey: key,
		Code:      code,
		Message:   msg,
	})
}

// Build places the requested courses first-fit in request order, then
// optionally tops the schedule up with ranked filler courses.
func (a *Assembler) Build(req Request) domain.ScheduleResult {
	var res domain.ScheduleResult
	st := &schedule{result: &res, placed: domain.NewKeySet()}

	requested := normalizeKeys(req.Courses)
	requestedSet := domain.NewKeySet(requested...)
	completed := domain.NewKeySet(req.Completed...)
	filter := sectionFilter(req.Constraints, !req.Constraints.IncludeClosed)

	for _, key := range requested {
		if st.placed.Has(key) {
			continue
		}
		c, ok := a.catalog.Course(key)
		if !ok {
			st.fail(key, domain.BlockerUnknownCourse, "Course not found in catalog")
			continue
		}
		if issue, blocked := a.concurrentIssue(c.Key, requestedSet, requested); blocked {
			res.PrereqIssues = append(res.PrereqIssues, issue)
			st.fail(c.Key, domain.BlockerPrereqConcurrent, issue.Reason)
			continue
		}

		sections := a.catalog.Sections(c.Key, filter)
		placed := false
		for _, sec := range sections {
			if Fits(sec, res.Sections) {
				st.place(c, sec, domain.OriginRequested)
				placed = true
				break
			}
		}
		if !placed {
			st.fail(c.Key, domain.BlockerNoFeasibleSection, noSectionMessage(len(sections)))
			continue
		}
		if a.gate.HasUnmetPrerequisite(c.Key, completed) {
			res.Warnings = append(res.Warnings,
				fmt.Sprintf("%s lists prerequisites not found in your completed courses", c.Key))
		}
	}

	if req.AutoFill {
		a.fill(st, req.Constraints, requestedSet, completed)
	}
	return res
}

func noSectionMessage(candidates int) string {
	if candidates == 0 {
		return "No section matches the day, time and availability preferences"
	}
	return "Every matching section conflicts with the schedule"
}

// concurrentIssue checks key against the other requested keys. order fixes
// which culprit is named when several match.
func (a *Assembler) concurrentIssue(key string, requested domain.KeySet, order []string) (domain.PrereqIssue, bool) {
	if !a.gate.ConflictsWithConcurrent(key, requested) {
		return domain.PrereqIssue{}, false
	}
	culprit := ""
	for _, other := range order {
		if other == key {
			continue
		}
		if a.gate.ConflictsWithConcurrent(key, domain.NewKeySet(other)) {
			culprit = other
			break
		}
	}
	reason := fmt.Sprintf("Cannot take %s - requires a course you're scheduling simultaneously", key)
	if culprit != "" {
		reason = fmt.Sprintf("Cannot take %s - requires %s, which is in the same schedule", key, culprit)
	}
	return domain.PrereqIssue{CourseKey: key, Reason: reason}, true
}

// fill adds at most one filler per attempt until the credit target is reached,
// a scan adds nothing, or the attempt budget runs out.
func (a *Assembler) fill(st *schedule, c domain.Constraints, requested, completed domain.KeySet) {
	fillers := a.catalog.Fillers()
	if c.FreshmanSafe {
		fillers = a.catalog.NoPrereqFillers()
	}
	filter := sectionFilter(c, true)

	for attempts := 0; st.result.TotalCredits < c.TargetCredits; attempts++ {
		if attempts >= a.limits.MaxFillAttempts {
			st.result.Warnings = append(st.result.Warnings, fmt.Sprintf(
				"Auto-fill stopped after %d attempts at %g of %g target credits",
				attempts, st.result.TotalCredits, c.TargetCredits))
			return
		}
		if !a.fillOnce(st, fillers, c, filter, requested, completed) {
			return
		}
	}
}

func (a *Assembler) fillOnce(
	st *schedule,
	fillers []catalog.Candidate,
	c domain.Constraints,
	filter catalog.SectionFilter,
	requested, completed domain.KeySet,
) bool {
	for _, cand := range fillers {
		if st.placed.Has(cand.Key) || requested.Has(cand.Key) {
			continue
		}
		if exceedsMax(st.result.TotalCredits+cand.Credits, c.MaxCredits) {
			continue
		}
		if c.FreshmanSafe && cand.HasPrereq {
			continue
		}
		if a.gate.ConflictsWithConcurrent(cand.Key, st.placed) || a.requiredByPlaced(st, cand.Key) {
			continue
		}
		if !c.FreshmanSafe && a.gate.HasUnmetPrerequisite(cand.Key, completed) {
			continue
		}
		course, ok := a.catalog.Course(cand.Key)
		if !ok {
			continue
		}
		for _, sec := range a.catalog.Sections(course.Key, filter) {
			if Fits(sec, st.result.Sections) {
				st.place(course, sec, domain.OriginAutoAdded)
				return true
			}
		}
	}
	return false
}

// requiredByPlaced reports whether key is a prerequisite of a course already
// on the schedule.
func (a *Assembler) requiredByPlaced(st *schedule, key string) bool {
	cand := domain.NewKeySet(key)
	for placed := range st.placed {
		if a.gate.ConflictsWithConcurrent(placed, cand) {
			return true
		}
	}
	return false
}

// exceedsMax treats a non-positive maximum as no limit.
func exceedsMax(total, max float64) bool {
	return max > 0 && total > max
}

func sectionFilter(c domain.Constraints, openOnly bool) catalog.SectionFilter {
	return catalog.SectionFilter{
		OpenOnly:    openOnly,
		ExcludeDays: c.ExcludedDays,
		StartAfter:  c.StartAfter,
		EndBefore:   c.EndBefore,
	}
}

// normalizeKeys re-pads keys and drops blanks and repeats, keeping order.
func normalizeKeys(keys []string) []string {
	seen := domain.NewKeySet()
	out := make([]string, 0, len(keys))
	for _, k := range keys {
		k = domain.NormalizeKey(k)
		if k == "" || seen.Has(k) {
			continue
		}
		seen.Add(k)
		out = append(out, k)
	}
	return out
}
