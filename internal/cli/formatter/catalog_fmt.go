package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/regwise/internal/contract"
	"github.com/alexanderramin/regwise/internal/domain"
)

// FormatCourse renders one catalog entry with all of its sections.
func FormatCourse(info *contract.CourseInfo) string {
	var b strings.Builder

	b.WriteString(Bold(info.Title) + "\n")
	b.WriteString(fmt.Sprintf("%s credits  %d of %d sections open\n",
		Credits(info.Credits), info.OpenSections, len(info.Sections)))
	if info.Prerequisites != "" {
		b.WriteString(Dim("Prerequisites: ") + info.Prerequisites + "\n")
	}
	if len(info.CoreCodes) > 0 {
		b.WriteString("\n" + Header("Core") + "\n")
		for _, c := range info.CoreCodes {
			name := c.Name
			if name == "" {
				name = Dim("unknown requirement")
			}
			b.WriteString(fmt.Sprintf("  %s %s\n", StylePurple.Render(c.Code), name))
		}
	}
	if info.Description != "" {
		b.WriteString("\n" + info.Description + "\n")
	}

	if len(info.Sections) > 0 {
		b.WriteString("\n")
		rows := make([][]string, 0, len(info.Sections))
		for _, s := range info.Sections {
			rows = append(rows, []string{
				s.Number,
				s.Index,
				OpenBadge(s.Open),
				strings.Join(MeetingLines(s.Meetings), "; "),
				Dim(s.Notes),
			})
		}
		b.WriteString(RenderTable([]string{"SEC", "INDEX", "STATUS", "MEETINGS", "NOTES"}, rows))
	}

	return RenderBox(info.Key, b.String())
}

// FormatCoreListing renders the ranked courses for one core requirement.
func FormatCoreListing(listing *contract.CoreListing) string {
	title := listing.Core.Code
	if listing.Core.Name != "" {
		title += " " + listing.Core.Name
	}
	if len(listing.Courses) == 0 {
		return RenderBox(title, Dim("No open courses satisfy this requirement."))
	}
	rows := make([][]string, 0, len(listing.Courses))
	for _, c := range listing.Courses {
		prereq := StyleGreen.Render("none")
		if c.Prerequisites != "" {
			prereq = StyleYellow.Render("yes")
		}
		rows = append(rows, []string{
			Bold(c.Key),
			c.Title,
			Credits(c.Credits),
			fmt.Sprintf("%d/%d", c.OpenSections, len(c.Sections)),
			prereq,
		})
	}
	return RenderBox(title, RenderTable([]string{"COURSE", "TITLE", "CR", "OPEN", "PREREQ"}, rows))
}

// FormatSnapshots renders stored catalog snapshots, newest first. The first
// row is the one plans are built from.
func FormatSnapshots(list []domain.SnapshotInfo) string {
	if len(list) == 0 {
		return RenderBox("Catalogs", Dim("No catalogs imported yet. Run 'regwise catalog import <file>'."))
	}
	rows := make([][]string, 0, len(list))
	for i, s := range list {
		marker := " "
		if i == 0 {
			marker = StyleGreen.Render("●")
		}
		rows = append(rows, []string{
			marker,
			TruncID(s.ID),
			Bold(s.Source),
			fmt.Sprintf("%d", s.CourseCount),
			HumanTimestamp(s.ImportedAt),
		})
	}
	return RenderBox("Catalogs", RenderTable([]string{"", "ID", "SOURCE", "COURSES", "IMPORTED"}, rows))
}

func FormatImport(res *contract.ImportResult) string {
	var b strings.Builder
	b.WriteString(StyleGreen.Render("Imported ") + Bold(res.Source) + " " + TruncID(res.SnapshotID) + "\n\n")
	b.WriteString(fmt.Sprintf("  %-10s %d\n", "Courses", res.Courses))
	b.WriteString(fmt.Sprintf("  %-10s %d\n", "Sections", res.Sections))
	b.WriteString(fmt.Sprintf("  %-10s %d\n", "Meetings", res.Meetings))
	b.WriteString(fmt.Sprintf("  %-10s %d\n", "Core tags", res.CoreTags))
	if res.DroppedMeetings > 0 {
		b.WriteString(StyleYellow.Render(fmt.Sprintf("\n  %d meeting(s) with unreadable day or time were skipped.", res.DroppedMeetings)) + "\n")
	}
	return RenderBox("Catalog import", b.String())
}
