package contract

type CoreCodeView struct {
	Code string
	Name string
}

type SectionView struct {
	Number   string
	Index    string
	Open     bool
	Notes    string
	Meetings []MeetingView
}

// CourseInfo is the full catalog entry of one course.
type CourseInfo struct {
	Key           string
	Title         string
	Credits       float64
	Prerequisites string
	Description   string
	CoreCodes     []CoreCodeView
	OpenSections  int
	Sections      []SectionView
}

// ImportResult summarizes a catalog import.
type ImportResult struct {
	SnapshotID      string
	Source          string
	Courses         int
	Sections        int
	Meetings        int
	DroppedMeetings int
	CoreTags        int
}

// CoreListing lists the courses that satisfy one core requirement, best first.
type CoreListing struct {
	Core    CoreCodeView
	Courses []CourseInfo
}
