package importer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validMinimalCatalog() *CatalogFile {
	return &CatalogFile{
		Courses: map[string]CourseImport{
			"198:111": {
				Title:   "Intro to Computer Science",
				Credits: 4,
				Sections: []SectionImport{
					{SectionNumber: "01", Index: "09214", IsOpen: true, Meetings: []MeetingImport{
						{Day: "Monday", StartTime: "10:20 AM", EndTime: "11:40 AM"},
					}},
				},
			},
		},
	}
}

func errStrings(errs []error) string {
	var parts []string
	for _, e := range errs {
		parts = append(parts, e.Error())
	}
	return strings.Join(parts, "\n")
}

func TestValidateCatalogFile_ValidMinimal(t *testing.T) {
	assert.Empty(t, ValidateCatalogFile(validMinimalCatalog()))
}

func TestValidateCatalogFile_Empty(t *testing.T) {
	errs := ValidateCatalogFile(&CatalogFile{})
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), "at least one course")
}

func TestValidateCatalogFile_InvalidKey(t *testing.T) {
	file := validMinimalCatalog()
	file.Courses["calculus"] = CourseImport{Title: "Bad"}
	file.Courses["ab:101"] = CourseImport{Title: "Bad"}

	errs := ValidateCatalogFile(file)
	require.Len(t, errs, 2)
	assert.Contains(t, errStrings(errs), `courses["calculus"]: invalid course key`)
	assert.Contains(t, errStrings(errs), `courses["ab:101"]: invalid course key`)
}

func TestValidateCatalogFile_DuplicateAfterPadding(t *testing.T) {
	file := validMinimalCatalog()
	file.Courses["220:3"] = CourseImport{Title: "Econ"}
	file.Courses["220:003"] = CourseImport{Title: "Econ"}

	errs := ValidateCatalogFile(file)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), "duplicate")
}

func TestValidateCatalogFile_NegativeCredits(t *testing.T) {
	file := validMinimalCatalog()
	c := file.Courses["198:111"]
	c.Credits = -1
	file.Courses["198:111"] = c

	errs := ValidateCatalogFile(file)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), "credits")
}

func TestValidateCatalogFile_SectionIndexes(t *testing.T) {
	file := validMinimalCatalog()
	file.Courses["640:151"] = CourseImport{
		Title:   "Calculus I",
		Credits: 4,
		Sections: []SectionImport{
			{SectionNumber: "01", Index: "09214"},
			{SectionNumber: "02"},
		},
	}

	errs := ValidateCatalogFile(file)
	require.Len(t, errs, 2)
	msg := errStrings(errs)
	assert.Contains(t, msg, `index "09214" is already used by 198:111`)
	assert.Contains(t, msg, "sections[1].index is required")
}

func TestValidateCatalogFile_BadMeetingsAreNotErrors(t *testing.T) {
	file := validMinimalCatalog()
	c := file.Courses["198:111"]
	c.Sections[0].Meetings = append(c.Sections[0].Meetings, MeetingImport{Day: "Saturday", StartTime: "TBA"})
	file.Courses["198:111"] = c

	assert.Empty(t, ValidateCatalogFile(file))
}
