package importer

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/alexanderramin/regwise/internal/domain"
	"github.com/alexanderramin/regwise/internal/timeslot"
)

// SISCourse is one course from a student information system course-list dump.
type SISCourse struct {
	Subject           FlexString    `json:"subject"`
	CourseNumber      FlexString    `json:"courseNumber"`
	Title             string        `json:"title"`
	ExpandedTitle     string        `json:"expandedTitle"`
	Credits           Credits       `json:"credits"`
	PreReqNotes       string        `json:"preReqNotes"`
	CourseDescription string        `json:"courseDescription"`
	CoreCodes         []SISCoreCode `json:"coreCodes"`
	Sections          []SISSection  `json:"sections"`
}

// SISCoreCode accepts either {"code": "QQ", ...} or a bare "QQ".
type SISCoreCode struct {
	Code string `json:"code"`
}

func (c *SISCoreCode) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '"' {
		return json.Unmarshal(b, &c.Code)
	}
	type plain SISCoreCode
	var p plain
	if err := json.Unmarshal(b, &p); err != nil {
		return fmt.Errorf("core code: %w", err)
	}
	*c = SISCoreCode(p)
	return nil
}

type SISSection struct {
	Number       FlexString   `json:"number"`
	Index        FlexString   `json:"index"`
	OpenStatus   OpenStatus   `json:"openStatus"`
	SectionNotes string       `json:"sectionNotes"`
	MeetingTimes []SISMeeting `json:"meetingTimes"`
}

// OpenStatus accepts a boolean or the "O"/"C" status letters.
type OpenStatus bool

func (o *OpenStatus) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch {
	case len(b) == 0 || string(b) == "null":
		*o = false
	case b[0] == '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*o = OpenStatus(strings.EqualFold(strings.TrimSpace(s), "O"))
	case string(b) == "true" || string(b) == "false":
		*o = string(b) == "true"
	default:
		*o = string(b) != "0"
	}
	return nil
}

type SISMeeting struct {
	MeetingDay      string `json:"meetingDay"`
	StartTime       string `json:"startTime"`
	EndTime         string `json:"endTime"`
	CampusName      string `json:"campusName"`
	CampusCode      string `json:"campusCode"`
	BuildingCode    string `json:"buildingCode"`
	RoomNumber      string `json:"roomNumber"`
	MeetingModeDesc string `json:"meetingModeDesc"`
}

// FromSIS maps a SIS dump onto the catalog layout. Courses without a subject
// or number are skipped. Sections with no usable meeting are kept only when
// none of the course's sections has one.
func FromSIS(courses []SISCourse) *CatalogFile {
	file := &CatalogFile{
		Courses: make(map[string]CourseImport, len(courses)),
		Indexes: IndexesImport{ByCoreCode: make(map[string][]string)},
	}
	for _, sc := range courses {
		subject := strings.TrimSpace(sc.Subject.String())
		number := strings.TrimSpace(sc.CourseNumber.String())
		if subject == "" || number == "" {
			continue
		}
		key := domain.NormalizeKey(subject + ":" + number)

		ci := CourseImport{
			Title:         domain.CoalesceStr(sc.Title, sc.ExpandedTitle),
			Credits:       sc.Credits,
			Prerequisites: strings.TrimSpace(sc.PreReqNotes),
			Description:   strings.TrimSpace(sc.CourseDescription),
		}
		for _, cc := range sc.CoreCodes {
			code := strings.ToUpper(strings.TrimSpace(cc.Code))
			if code == "" {
				continue
			}
			ci.CoreCodes = append(ci.CoreCodes, code)
			file.Indexes.ByCoreCode[code] = append(file.Indexes.ByCoreCode[code], key)
		}

		var withMeetings, all []SectionImport
		for _, ss := range sc.Sections {
			sec := sisSection(ss)
			all = append(all, sec)
			if len(sec.Meetings) > 0 {
				withMeetings = append(withMeetings, sec)
			}
		}
		ci.Sections = withMeetings
		if len(withMeetings) == 0 {
			ci.Sections = all
		}
		file.Courses[key] = ci
	}
	return file
}

func sisSection(ss SISSection) SectionImport {
	sec := SectionImport{
		SectionNumber: ss.Number,
		Index:         ss.Index,
		IsOpen:        bool(ss.OpenStatus),
		Notes:         strings.TrimSpace(ss.SectionNotes),
	}
	for _, mt := range ss.MeetingTimes {
		day, ok := timeslot.NormalizeDay(mt.MeetingDay)
		if !ok {
			continue
		}
		start, okStart := sisMinutes(mt.StartTime)
		end, okEnd := sisMinutes(mt.EndTime)
		if !okStart || !okEnd {
			continue
		}
		sec.Meetings = append(sec.Meetings, MeetingImport{
			Day:          day.String(),
			StartTime:    timeslot.FormatMinutes(start),
			EndTime:      timeslot.FormatMinutes(end),
			StartTime24h: format24(start),
			EndTime24h:   format24(end),
			Campus:       NormalizeCampus(domain.CoalesceStr(mt.CampusName, mt.CampusCode)),
			Building:     strings.TrimSpace(mt.BuildingCode),
			Room:         strings.TrimSpace(mt.RoomNumber),
			Mode:         strings.TrimSpace(mt.MeetingModeDesc),
		})
	}
	return sec
}

// sisMinutes reads SIS times literally: a marker means 12-hour, no marker
// means 24-hour. The afternoon heuristic is not applied here.
func sisMinutes(raw string) (int, bool) {
	upper := strings.ToUpper(raw)
	if strings.Contains(upper, "AM") || strings.Contains(upper, "PM") {
		return timeslot.ParseMinutes(raw)
	}
	return timeslot.ParseMinutes24(raw)
}

func format24(mins int) string {
	return fmt.Sprintf("%02d:%02d", mins/60, mins%60)
}

// NormalizeCampus maps campus names to their short codes.
func NormalizeCampus(campus string) string {
	c := strings.ToUpper(strings.TrimSpace(campus))
	switch {
	case c == "":
		return ""
	case strings.Contains(c, "BUSCH") || c == "BUS":
		return "BUS"
	case strings.Contains(c, "LIVINGSTON") || c == "LIV":
		return "LIV"
	case strings.Contains(c, "COLLEGE") || c == "CAC":
		return "CAC"
	case strings.Contains(c, "DOUGLASS") || strings.Contains(c, "COOK") || c == "D/C":
		return "D/C"
	case strings.Contains(c, "ONLINE"):
		return "ONLINE"
	case len(c) > 3:
		return c[:3]
	}
	return c
}
