package catalog

import (
	"strings"

	"github.com/alexanderramin/regwise/internal/domain"
)

// mathSubject is the subject whose prerequisites freshmen usually take
// alongside the course itself.
const mathSubject = "640"

// freshmanIntroCourses are intro courses open to first-year students even when
// the catalog lists a prerequisite (usually a math co-requisite).
var freshmanIntroCourses = map[string][]string{
	"198": {"198:111", "198:110"},
	"640": {"640:103", "640:111", "640:112", "640:115", "640:151"},
	"750": {"750:101", "750:103", "750:115", "750:116"},
	"160": {"160:101", "160:103", "160:161"},
	"119": {"119:101", "119:102", "119:115", "119:116"},
	"220": {"220:102", "220:103"},
	"830": {"830:101"},
	"920": {"920:101"},
	"790": {"790:101", "790:104"},
	"202": {"202:201"},
}

// IsKnownIntro reports whether key is a listed freshman intro course.
func IsKnownIntro(key string) bool {
	key = domain.NormalizeKey(key)
	subject, _, ok := domain.SplitKey(key)
	if !ok {
		return false
	}
	for _, k := range freshmanIntroCourses[subject] {
		if k == key {
			return true
		}
	}
	return false
}

// IsMathOnlyPrereq reports whether every course referenced by the
// prerequisite text is a math course.
func IsMathOnlyPrereq(prereq string) bool {
	refs := domain.PrereqRefs(prereq)
	if len(refs) == 0 {
		return false
	}
	for _, ref := range refs {
		if !strings.HasPrefix(ref, mathSubject+":") {
			return false
		}
	}
	return true
}

// CoursesBySubject returns ranked courses of one subject that have an open
// section. In freshman-safe mode, courses with prerequisites are kept only when
// they are known intro courses or depend on math alone.
func (s *Snapshot) CoursesBySubject(subject string, freshmanSafe bool) []string {
	subject = strings.TrimSuffix(strings.TrimSpace(subject), ":")
	if subject == "" {
		return nil
	}
	prefix := domain.PadSubject(subject) + ":"

	var ranked []Candidate
	for _, key := range s.keys {
		if !strings.HasPrefix(key, prefix) {
			continue
		}
		c := s.courses[key]
		if c.OpenSectionCount() == 0 {
			continue
		}
		knownIntro := IsKnownIntro(key)
		mathOnly := c.HasPrerequisites() && IsMathOnlyPrereq(c.Prerequisites)
		if freshmanSafe && c.HasPrerequisites() && !knownIntro && !mathOnly {
			continue
		}

		cand := ScoreCourse(c, s.opts.Weights)
		if knownIntro {
			cand.add(s.opts.Weights.KnownIntro, ReasonKnownIntro)
		}
		if mathOnly {
			cand.add(s.opts.Weights.MathOnly, ReasonMathOnly)
		}
		ranked = append(ranked, cand)
	}
	CanonicalSort(ranked)
	return candidateKeys(capList(ranked, s.opts.SubjectLimit))
}
