package catalog

import (
	"slices"
	"sort"
	"strings"
	"time"

	"github.com/alexanderramin/regwise/internal/domain"
	"github.com/alexanderramin/regwise/internal/timeslot"
)

// Options controls how a snapshot precomputes its ranked lists.
type Options struct {
	FillerLimit   int
	NoPrereqLimit int
	SubjectLimit  int
	Weights       RankWeights
}

// DefaultOptions returns the candidate list sizes and ranking weights used
// when a snapshot is built without explicit options.
func DefaultOptions() Options {
	return Options{
		FillerLimit:   600,
		NoPrereqLimit: 400,
		SubjectLimit:  10,
		Weights:       DefaultWeights(),
	}
}

// Filler credit bounds: anything lighter or heavier is never auto-added.
const (
	minFillerCredits = 1.0
	maxFillerCredits = 4.0
)

// Snapshot is an immutable, read-only view of one catalog load. All lookups
// are safe for concurrent use without locking.
type Snapshot struct {
	id         string
	source     string
	importedAt time.Time
	courses    map[string]*domain.Course
	keys       []string
	coreIndex  map[string][]string
	fillers    []Candidate
	noPrereq   []Candidate
	opts       Options
}

// NewSnapshot copies the catalog data and precomputes the core index and the
// ranked filler lists.
func NewSnapshot(data domain.CatalogData, opts Options) *Snapshot {
	s := &Snapshot{
		id:         data.ID,
		source:     data.Source,
		importedAt: data.ImportedAt,
		courses:    make(map[string]*domain.Course, len(data.Courses)),
		coreIndex:  make(map[string][]string),
		opts:       opts,
	}

	for i := range data.Courses {
		c := cloneCourse(data.Courses[i])
		s.courses[c.Key] = c
	}
	s.keys = make([]string, 0, len(s.courses))
	for k := range s.courses {
		s.keys = append(s.keys, k)
	}
	sort.Strings(s.keys)

	s.buildCoreIndex(data.CoreIndex)
	s.buildFillers()
	return s
}

func cloneCourse(src domain.Course) *domain.Course {
	c := src
	c.Key = domain.NormalizeKey(src.Key)
	c.CoreCodes = make([]string, 0, len(src.CoreCodes))
	for _, code := range src.CoreCodes {
		c.CoreCodes = append(c.CoreCodes, normalizeTag(code))
	}
	c.Sections = make([]domain.Section, len(src.Sections))
	for i, sec := range src.Sections {
		sec.CourseKey = c.Key
		sec.Meetings = slices.Clone(sec.Meetings)
		c.Sections[i] = sec
	}
	return &c
}

func normalizeTag(tag string) string {
	return strings.ToUpper(strings.TrimSpace(tag))
}

// buildCoreIndex merges the published index with each course's own tags.
// Published order wins; course-derived keys follow in key order.
func (s *Snapshot) buildCoreIndex(published map[string][]string) {
	seen := make(map[string]map[string]bool)
	add := func(tag, key string) {
		tag = normalizeTag(tag)
		key = domain.NormalizeKey(key)
		if tag == "" {
			return
		}
		if seen[tag] == nil {
			seen[tag] = make(map[string]bool)
		}
		if seen[tag][key] {
			return
		}
		seen[tag][key] = true
		s.coreIndex[tag] = append(s.coreIndex[tag], key)
	}

	tags := make([]string, 0, len(published))
	for tag := range published {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	for _, tag := range tags {
		for _, key := range published[tag] {
			add(tag, key)
		}
	}
	for _, key := range s.keys {
		for _, tag := range s.courses[key].CoreCodes {
			add(tag, key)
		}
	}
}

func (s *Snapshot) buildFillers() {
	var all, noPrereq []Candidate
	for _, key := range s.keys {
		c := s.courses[key]
		if c.OpenSectionCount() < 1 || c.Credits < minFillerCredits || c.Credits > maxFillerCredits {
			continue
		}
		cand := ScoreCourse(c, s.opts.Weights)
		all = append(all, cand)
		if !cand.HasPrereq {
			noPrereq = append(noPrereq, cand)
		}
	}
	CanonicalSort(all)
	CanonicalSort(noPrereq)
	s.fillers = capList(all, s.opts.FillerLimit)
	s.noPrereq = capList(noPrereq, s.opts.NoPrereqLimit)
}

func capList(c []Candidate, limit int) []Candidate {
	if limit > 0 && len(c) > limit {
		return c[:limit]
	}
	return c
}

func (s *Snapshot) ID() string            { return s.id }
func (s *Snapshot) Source() string        { return s.source }
func (s *Snapshot) ImportedAt() time.Time { return s.importedAt }
func (s *Snapshot) Len() int              { return len(s.courses) }

// Keys returns every course key in ascending order.
func (s *Snapshot) Keys() []string {
	return slices.Clone(s.keys)
}

// Course looks a key up as given, then with both halves re-padded.
// The returned course is shared and must not be modified.
func (s *Snapshot) Course(key string) (*domain.Course, bool) {
	key = strings.TrimSpace(key)
	if key == "" {
		return nil, false
	}
	if c, ok := s.courses[key]; ok {
		return c, true
	}
	c, ok := s.courses[domain.NormalizeKey(key)]
	return c, ok
}

// SectionFilter narrows the sections of a course. A section is dropped when any
// of its meetings falls on an excluded day, starts before StartAfter, or ends
// after EndBefore.
type SectionFilter struct {
	OpenOnly    bool
	ExcludeDays timeslot.DaySet
	StartAfter  *int
	EndBefore   *int
}

// Sections returns the course's sections that pass the filter, in catalog order.
func (s *Snapshot) Sections(key string, f SectionFilter) []domain.Section {
	c, ok := s.Course(key)
	if !ok {
		return nil
	}
	var out []domain.Section
	for _, sec := range c.Sections {
		if f.OpenOnly && !sec.Open {
			continue
		}
		if !f.admits(sec) {
			continue
		}
		out = append(out, sec)
	}
	return out
}

func (f SectionFilter) admits(sec domain.Section) bool {
	for _, m := range sec.Meetings {
		if f.ExcludeDays.Has(m.Day) {
			return false
		}
		if f.StartAfter != nil && m.Start < *f.StartAfter {
			return false
		}
		if f.EndBefore != nil && m.End > *f.EndBefore {
			return false
		}
	}
	return true
}

// CoursesByCore returns the courses tagged with a core requirement that have an
// open section, best ranked first.
func (s *Snapshot) CoursesByCore(tag string) []string {
	var ranked []Candidate
	for _, key := range s.coreIndex[normalizeTag(tag)] {
		c, ok := s.Course(key)
		if !ok || c.OpenSectionCount() == 0 {
			continue
		}
		ranked = append(ranked, ScoreCourse(c, s.opts.Weights))
	}
	CanonicalSort(ranked)
	return candidateKeys(ranked)
}

// CoreTags lists the core requirement tags present in the snapshot.
func (s *Snapshot) CoreTags() []string {
	tags := make([]string, 0, len(s.coreIndex))
	for tag := range s.coreIndex {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}

// Fillers returns the ranked auto-fill candidates.
func (s *Snapshot) Fillers() []Candidate {
	return slices.Clone(s.fillers)
}

// NoPrereqFillers returns the ranked auto-fill candidates without prerequisites.
func (s *Snapshot) NoPrereqFillers() []Candidate {
	return slices.Clone(s.noPrereq)
}
