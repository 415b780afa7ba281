package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/regwise/internal/contract"
	"github.com/alexanderramin/regwise/internal/domain"
)

var courseHeaders = []string{"COURSE", "TITLE", "CR", "SEC", "INDEX", "MEETINGS", "CORE"}

func courseRow(c contract.CourseView) []string {
	key := Bold(c.Key)
	if c.Origin == domain.OriginAutoAdded {
		key = StyleBlue.Render(c.Key + "*")
	}
	index := c.Index
	if !c.Open {
		index += " " + StyleRed.Render("(closed)")
	}
	return []string{
		key,
		c.Title,
		Credits(c.Credits),
		c.Section,
		index,
		strings.Join(MeetingLines(c.Meetings), "; "),
		CoreBadges(c.CoreCodes),
	}
}

// FormatPlan renders a planned schedule with its credit summary, the courses
// that could not be placed and the registration index list.
func FormatPlan(resp *contract.PlanResponse) string {
	var b strings.Builder

	credits := fmt.Sprintf("%s credits (target %s, min %s",
		Credits(resp.TotalCredits), Credits(resp.TargetCredits), Credits(resp.MinCredits))
	if resp.MaxCredits > 0 {
		credits += ", max " + Credits(resp.MaxCredits)
	}
	credits += ")"
	b.WriteString(PlanStatusIndicator(resp.Status) + "  " + credits + "\n\n")

	rows := make([][]string, 0, len(resp.Requested)+len(resp.AutoAdded))
	for _, c := range resp.Requested {
		rows = append(rows, courseRow(c))
	}
	for _, c := range resp.AutoAdded {
		rows = append(rows, courseRow(c))
	}
	if len(rows) == 0 {
		b.WriteString(Dim("No courses could be placed.") + "\n")
	} else {
		b.WriteString(RenderTable(courseHeaders, rows))
		if len(resp.AutoAdded) > 0 {
			b.WriteString(Dim("* added automatically to reach the credit target") + "\n")
		}
	}

	if len(resp.Unmet) > 0 {
		b.WriteString("\n" + Header("Not scheduled") + "\n")
		for _, u := range resp.Unmet {
			b.WriteString(fmt.Sprintf("  %s %s %s\n", StyleRed.Render("✖"), Bold(u.Key), Dim(u.Reason)))
		}
	}

	writePrereqIssues(&b, resp.PrereqIssues)
	writeWarnings(&b, resp.Warnings)

	if len(resp.RegistrationIndexes) > 0 {
		b.WriteString("\n" + StyleHeader.Render("Register: ") + strings.Join(resp.RegistrationIndexes, ", ") + "\n")
	}

	return RenderBox("Schedule", b.String())
}

func writePrereqIssues(b *strings.Builder, issues []contract.PrereqIssue) {
	if len(issues) == 0 {
		return
	}
	b.WriteString("\n" + Header("Prerequisites") + "\n")
	for _, p := range issues {
		b.WriteString(fmt.Sprintf("  %s %s %s\n", StyleYellow.Render("!"), Bold(p.CourseKey), Dim(p.Reason)))
	}
}
