package importer

import (
	"sort"
	"strings"
	"time"

	"github.com/alexanderramin/regwise/internal/domain"
	"github.com/alexanderramin/regwise/internal/timeslot"
	"github.com/google/uuid"
)

// Conversion is a converted catalog plus counts for the import summary.
type Conversion struct {
	Data            domain.CatalogData
	Sections        int
	Meetings        int
	DroppedMeetings int
}

// Convert transforms a validated CatalogFile into catalog data ready for
// persistence. Call ValidateCatalogFile first; Convert assumes the file is valid.
func Convert(file *CatalogFile, source string) *Conversion {
	conv := &Conversion{
		Data: domain.CatalogData{
			ID:         uuid.New().String(),
			Source:     source,
			ImportedAt: time.Now().UTC(),
			CoreIndex:  make(map[string][]string),
		},
	}

	keys := make([]string, 0, len(file.Courses))
	for k := range file.Courses {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, raw := range keys {
		c := file.Courses[raw]
		key := domain.NormalizeKey(raw)
		course := domain.Course{
			Key:           key,
			Title:         strings.TrimSpace(c.Title),
			Credits:       float64(c.Credits),
			Prerequisites: strings.TrimSpace(c.Prerequisites),
			Description:   strings.TrimSpace(c.Description),
		}
		for _, code := range c.CoreCodes {
			if code = strings.ToUpper(strings.TrimSpace(code)); code != "" {
				course.CoreCodes = append(course.CoreCodes, code)
			}
		}
		for _, s := range c.Sections {
			sec := domain.Section{
				CourseKey: key,
				Number:    s.SectionNumber.String(),
				Index:     s.Index.String(),
				Open:      s.IsOpen,
				Notes:     strings.TrimSpace(s.Notes),
			}
			for _, m := range s.Meetings {
				meeting, ok := convertMeeting(m)
				if !ok {
					conv.DroppedMeetings++
					continue
				}
				sec.Meetings = append(sec.Meetings, meeting)
				conv.Meetings++
			}
			course.Sections = append(course.Sections, sec)
			conv.Sections++
		}
		conv.Data.Courses = append(conv.Data.Courses, course)
	}

	for tag, courseKeys := range file.Indexes.ByCoreCode {
		tag = strings.ToUpper(strings.TrimSpace(tag))
		if tag == "" {
			continue
		}
		for _, k := range courseKeys {
			conv.Data.CoreIndex[tag] = append(conv.Data.CoreIndex[tag], domain.NormalizeKey(k))
		}
	}

	return conv
}

// convertMeeting drops meetings whose day or times cannot be read, or whose
// interval is empty.
func convertMeeting(m MeetingImport) (domain.Meeting, bool) {
	day, ok := timeslot.NormalizeDay(m.Day)
	if !ok {
		return domain.Meeting{}, false
	}
	start, ok := meetingMinutes(m.StartTime24h, m.StartTime)
	if !ok {
		return domain.Meeting{}, false
	}
	end, ok := meetingMinutes(m.EndTime24h, m.EndTime)
	if !ok || start >= end {
		return domain.Meeting{}, false
	}
	return domain.Meeting{
		Day:      day,
		Start:    start,
		End:      end,
		Campus:   NormalizeCampus(domain.CoalesceStr(m.CampusAbbrev, m.Campus)),
		Building: strings.TrimSpace(m.Building),
		Room:     strings.TrimSpace(m.Room),
		Mode:     strings.TrimSpace(m.Mode),
	}, true
}

// meetingMinutes prefers the strict 24-hour field and falls back to the
// display time, which may rely on the afternoon heuristic.
func meetingMinutes(h24, display string) (int, bool) {
	if strings.TrimSpace(h24) != "" {
		if mins, ok := timeslot.ParseMinutes24(h24); ok {
			return mins, true
		}
	}
	return timeslot.ParseMinutes(display)
}
