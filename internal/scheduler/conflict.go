package scheduler

import "github.com/alexanderramin/regwise/internal/domain"

// Conflicts reports whether any meeting of a overlaps any meeting of b on the
// same weekday. Sections without meetings never conflict.
func Conflicts(a, b domain.Section) bool {
	for _, ma := range a.Meetings {
		for _, mb := range b.Meetings {
			if ma.Overlaps(mb) {
				return true
			}
		}
	}
	return false
}

// Fits reports whether sec can join the placed sections without a conflict.
func Fits(sec domain.Section, placed []domain.ScheduledSection) bool {
	for _, p := range placed {
		if Conflicts(sec, p.Section) {
			return false
		}
	}
	return true
}
