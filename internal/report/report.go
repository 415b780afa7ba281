// Package report turns assembler output into the neutral contract views that
// formatters and other collaborators consume.
package report

import (
	"github.com/alexanderramin/regwise/internal/catalog"
	"github.com/alexanderramin/regwise/internal/contract"
	"github.com/alexanderramin/regwise/internal/domain"
	"github.com/alexanderramin/regwise/internal/timeslot"
)

// CourseLookup resolves keys for core codes and prerequisite flags.
type CourseLookup interface {
	Course(key string) (*domain.Course, bool)
}

// Plan packages a single-mode result. Status is success when nothing failed and
// the minimum load is met, failure when nothing was placed, partial otherwise.
func Plan(res domain.ScheduleResult, c domain.Constraints, lookup CourseLookup) contract.PlanResponse {
	out := contract.PlanResponse{
		TotalCredits:  res.TotalCredits,
		MinCredits:    c.MinCredits,
		TargetCredits: c.TargetCredits,
		MaxCredits:    c.MaxCredits,
		Warnings:      append([]string(nil), res.Warnings...),
	}

	for _, s := range res.Sections {
		view := CourseView(s, lookup)
		if s.Origin == domain.OriginAutoAdded {
			out.AutoAdded = append(out.AutoAdded, view)
		} else {
			out.Requested = append(out.Requested, view)
		}
		if s.Section.Index != "" {
			out.RegistrationIndexes = append(out.RegistrationIndexes, s.Section.Index)
		}
	}
	out.Unmet = unmetCourses(res.Blockers)
	out.PrereqIssues = prereqIssues(res.PrereqIssues)

	switch {
	case len(res.Sections) == 0:
		out.Status = contract.PlanFailure
	case len(res.Failed) == 0 && res.TotalCredits >= c.MinCredits:
		out.Status = contract.PlanSuccess
	default:
		out.Status = contract.PlanPartial
	}
	return out
}

// Options packages a multi-mode result with options numbered from 1.
func Options(opts domain.Options, lookup CourseLookup) contract.OptionsResponse {
	out := contract.OptionsResponse{
		Relaxation:   opts.Relaxation,
		Truncated:    opts.Truncated,
		Courses:      append([]string(nil), opts.Courses...),
		Rejected:     unmetCourses(opts.Blockers),
		PrereqIssues: prereqIssues(opts.PrereqIssues),
	}
	if out.Relaxation == "" {
		out.Relaxation = domain.RelaxNone
	}

	for i, combo := range opts.Combinations {
		option := contract.ScheduleOption{
			Number:       i + 1,
			TotalCredits: combo.TotalCredits,
		}
		for _, s := range combo.Sections {
			option.Courses = append(option.Courses, CourseView(s, lookup))
			if s.Section.Index != "" {
				option.RegistrationIndexes = append(option.RegistrationIndexes, s.Section.Index)
			}
		}
		out.Options = append(out.Options, option)
	}

	switch {
	case !opts.Satisfiable || len(opts.Combinations) == 0:
		out.Status = contract.OptionsUnsatisfiable
	case out.Relaxed():
		out.Status = contract.OptionsRelaxed
	default:
		out.Status = contract.OptionsSuccess
	}
	return out
}

// CourseView renders one scheduled section.
func CourseView(s domain.ScheduledSection, lookup CourseLookup) contract.CourseView {
	view := contract.CourseView{
		Key:      s.CourseKey,
		Title:    s.Title,
		Credits:  s.Credits,
		Section:  s.Section.Number,
		Index:    s.Section.Index,
		Open:     s.Section.Open,
		Meetings: MeetingViews(s.Section.Meetings),
		Origin:   s.Origin,
	}
	if lookup != nil {
		if c, ok := lookup.Course(s.CourseKey); ok {
			view.CoreCodes = append([]string(nil), c.CoreCodes...)
			view.HasPrerequisites = c.HasPrerequisites()
		}
	}
	return view
}

func MeetingViews(meetings []domain.Meeting) []contract.MeetingView {
	if len(meetings) == 0 {
		return nil
	}
	out := make([]contract.MeetingView, 0, len(meetings))
	for _, m := range meetings {
		out = append(out, contract.MeetingView{
			Day:      m.Day.String(),
			Start:    timeslot.FormatMinutes(m.Start),
			End:      timeslot.FormatMinutes(m.End),
			Campus:   m.Campus,
			Building: m.Building,
			Room:     m.Room,
			Mode:     m.Mode,
		})
	}
	return out
}

// CourseInfo renders a full catalog entry.
func CourseInfo(c *domain.Course) contract.CourseInfo {
	info := contract.CourseInfo{
		Key:           c.Key,
		Title:         c.Title,
		Credits:       c.Credits,
		Prerequisites: c.Prerequisites,
		Description:   c.Description,
		OpenSections:  c.OpenSectionCount(),
	}
	for _, code := range c.CoreCodes {
		info.CoreCodes = append(info.CoreCodes, contract.CoreCodeView{
			Code: code,
			Name: catalog.CoreCodeName(code),
		})
	}
	for _, s := range c.Sections {
		info.Sections = append(info.Sections, contract.SectionView{
			Number:   s.Number,
			Index:    s.Index,
			Open:     s.Open,
			Notes:    s.Notes,
			Meetings: MeetingViews(s.Meetings),
		})
	}
	return info
}

func unmetCourses(blockers []domain.Blocker) []contract.UnmetCourse {
	var out []contract.UnmetCourse
	for _, b := range blockers {
		out = append(out, contract.UnmetCourse{Key: b.CourseKey, Code: b.Code, Reason: b.Message})
	}
	return out
}

func prereqIssues(issues []domain.PrereqIssue) []contract.PrereqIssue {
	var out []contract.PrereqIssue
	for _, p := range issues {
		out = append(out, contract.PrereqIssue{CourseKey: p.CourseKey, Reason: p.Reason})
	}
	return out
}
