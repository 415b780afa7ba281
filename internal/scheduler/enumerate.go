package scheduler

import (
	"slices"

	"github.com/alexanderramin/regwise/internal/domain"
)

// Enumerate lists conflict-free combinations of one section per requested
// course. When the strict pass finds nothing and the constraints exclude days
// or times, one more pass runs without those exclusions.
func (a *Assembler) Enumerate(req Request) domain.Options {
	opts := domain.Options{Relaxation: domain.RelaxNone}

	requested := normalizeKeys(req.Courses)
	requestedSet := domain.NewKeySet(requested...)

	var courses []*domain.Course
	for _, key := range requested {
		c, ok := a.catalog.Course(key)
		if !ok {
			opts.Blockers = append(opts.Blockers, domain.Blocker{
				CourseKey: key,
				Code:      domain.BlockerUnknownCourse,
				Message:   "Course not found in catalog",
			})
			continue
		}
		if issue, blocked := a.concurrentIssue(c.Key, requestedSet, requested); blocked {
			opts.PrereqIssues = append(opts.PrereqIssues, issue)
			opts.Blockers = append(opts.Blockers, domain.Blocker{
				CourseKey: c.Key,
				Code:      domain.BlockerPrereqConcurrent,
				Message:   issue.Reason,
			})
			continue
		}
		courses = append(courses, c)
		opts.Courses = append(opts.Courses, c.Key)
	}
	if len(courses) == 0 {
		return opts
	}

	combos, truncated := a.search(courses, req.Constraints)
	if len(combos) == 0 && req.Constraints.HasDayTimeExclusions() {
		relaxed, relaxedTruncated := a.search(courses, req.Constraints.WithoutDayTimeExclusions())
		if len(relaxed) > 0 {
			combos, truncated = relaxed, relaxedTruncated
			opts.Relaxation = domain.RelaxDayTime
		} else {
			truncated = truncated || relaxedTruncated
		}
	}

	opts.Combinations = combos
	opts.Truncated = truncated
	opts.Satisfiable = len(combos) > 0
	return opts
}

type searcher struct {
	courses   []*domain.Course
	sections  [][]domain.Section
	chosen    []domain.ScheduledSection
	out       []domain.Combination
	nodes     int
	maxNodes  int
	maxCombos int
	truncated bool
}

func (a *Assembler) search(courses []*domain.Course, c domain.Constraints) ([]domain.Combination, bool) {
	filter := sectionFilter(c, !c.IncludeClosed)
	s := &searcher{
		courses:   courses,
		sections:  make([][]domain.Section, len(courses)),
		maxNodes:  a.limits.MaxSearchNodes,
		maxCombos: a.limits.MaxCombinations,
	}
	for i, course := range courses {
		s.sections[i] = a.catalog.Sections(course.Key, filter)
		if len(s.sections[i]) == 0 {
			return nil, false
		}
	}
	s.walk(0)
	return s.out, s.truncated
}

func (s *searcher) done() bool {
	return s.truncated || (s.maxCombos > 0 && len(s.out) >= s.maxCombos)
}

// walk picks a section for courses[depth] and recurses, pruning any branch as
// soon as the new section conflicts with an earlier choice.
func (s *searcher) walk(depth int) {
	if depth == len(s.courses) {
		s.record()
		return
	}
	course := s.courses[depth]
	for _, sec := range s.sections[depth] {
		if s.done() {
			return
		}
		if s.maxNodes > 0 && s.nodes >= s.maxNodes {
			s.truncated = true
			return
		}
		s.nodes++
		if !Fits(sec, s.chosen) {
			continue
		}
		s.chosen = append(s.chosen, domain.ScheduledSection{
			CourseKey: course.Key,
			Title:     course.Title,
			Credits:   course.Credits,
			Section:   sec,
			Origin:    domain.OriginRequested,
		})
		s.walk(depth + 1)
		s.chosen = s.chosen[:len(s.chosen)-1]
	}
}

func (s *searcher) record() {
	combo := domain.Combination{Sections: slices.Clone(s.chosen)}
	for _, sec := range combo.Sections {
		combo.TotalCredits += sec.Credits
	}
	s.out = append(s.out, combo)
}
