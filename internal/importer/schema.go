package importer

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Format names a supported catalog file layout.
type Format string

const (
	FormatCatalog Format = "catalog"
	FormatSIS     Format = "sis"
)

// ParseFormat accepts "catalog", "sis" or "" (detect from content).
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case "":
		return "", nil
	case FormatCatalog:
		return FormatCatalog, nil
	case FormatSIS:
		return FormatSIS, nil
	}
	return "", fmt.Errorf("unknown catalog format %q (expected catalog or sis)", s)
}

// CatalogFile is the scheduler catalog layout: courses keyed by "SSS:NNN" plus
// a published core requirement index.
type CatalogFile struct {
	Courses map[string]CourseImport `json:"courses"`
	Indexes IndexesImport           `json:"indexes"`
}

type IndexesImport struct {
	ByCoreCode map[string][]string `json:"by_core_code,omitempty"`
}

// CourseImport defines one course in the catalog file.
type CourseImport struct {
	Title         string          `json:"title"`
	Credits       Credits         `json:"credits"`
	Prerequisites string          `json:"prerequisites,omitempty"`
	CoreCodes     []string        `json:"core_codes,omitempty"`
	Description   string          `json:"description,omitempty"`
	Sections      []SectionImport `json:"sections"`
}

// SectionImport defines one section in the catalog file.
type SectionImport struct {
	SectionNumber FlexString      `json:"section_number"`
	Index         FlexString      `json:"index"`
	IsOpen        bool            `json:"is_open"`
	Notes         string          `json:"notes,omitempty"`
	Meetings      []MeetingImport `json:"meetings"`
}

// MeetingImport defines one weekly meeting. The *_24h fields win over the
// display times when both are present.
type MeetingImport struct {
	Day          string `json:"day"`
	StartTime    string `json:"start_time"`
	EndTime      string `json:"end_time"`
	StartTime24h string `json:"start_time_24h,omitempty"`
	EndTime24h   string `json:"end_time_24h,omitempty"`
	Campus       string `json:"campus,omitempty"`
	CampusAbbrev string `json:"campus_abbrev,omitempty"`
	Building     string `json:"building,omitempty"`
	Room         string `json:"room,omitempty"`
	Mode         string `json:"mode,omitempty"`
}

// Credits accepts a JSON number, a numeric string, or null.
type Credits float64

func (c *Credits) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || string(b) == "null" {
		*c = 0
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		s = strings.TrimSpace(s)
		if s == "" {
			*c = 0
			return nil
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return fmt.Errorf("credits: %q is not a number", s)
		}
		*c = Credits(v)
		return nil
	}
	var v float64
	if err := json.Unmarshal(b, &v); err != nil {
		return fmt.Errorf("credits: %w", err)
	}
	*c = Credits(v)
	return nil
}

// FlexString accepts a JSON string or number; registration indexes and course
// numbers appear as both.
type FlexString string

func (f *FlexString) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || string(b) == "null" {
		*f = ""
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = FlexString(strings.TrimSpace(s))
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("expected string or number: %w", err)
	}
	*f = FlexString(n.String())
	return nil
}

func (f FlexString) String() string { return string(f) }

// LoadCatalogFile reads and parses a catalog file, converting a SIS dump when
// format is FormatSIS or when an empty format detects a top-level array.
func LoadCatalogFile(path string, format Format) (*CatalogFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseCatalog(data, format)
}

// ParseCatalog parses catalog bytes in the given format.
func ParseCatalog(data []byte, format Format) (*CatalogFile, error) {
	if format == "" {
		format = DetectFormat(data)
	}
	switch format {
	case FormatSIS:
		var courses []SISCourse
		if err := json.Unmarshal(data, &courses); err != nil {
			return nil, fmt.Errorf("parsing SIS course list: %w", err)
		}
		return FromSIS(courses), nil
	default:
		var file CatalogFile
		if err := json.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("parsing catalog file: %w", err)
		}
		return &file, nil
	}
}

// DetectFormat treats a top-level JSON array as a SIS dump.
func DetectFormat(data []byte) Format {
	trimmed := bytes.TrimLeft(data, " \t\r\n\ufeff")
	if len(trimmed) > 0 && trimmed[0] == '[' {
		return FormatSIS
	}
	return FormatCatalog
}
