package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/regwise/internal/contract"
)

// FormatOptions renders every alternative schedule, numbered, in one box.
func FormatOptions(resp *contract.OptionsResponse) string {
	var b strings.Builder

	summary := fmt.Sprintf("%d option(s) for %s", len(resp.Options), strings.Join(resp.Courses, ", "))
	b.WriteString(OptionsStatusIndicator(resp.Status) + "  " + summary + "\n")
	if resp.Relaxed() {
		b.WriteString(StyleYellow.Render("  Day and time preferences were dropped to find these options.") + "\n")
	}
	if resp.Truncated {
		b.WriteString(Dim("  Search stopped early; more combinations may exist.") + "\n")
	}

	for _, opt := range resp.Options {
		b.WriteString("\n" + Header(fmt.Sprintf("Option %d  (%s credits)", opt.Number, Credits(opt.TotalCredits))) + "\n")
		rows := make([][]string, 0, len(opt.Courses))
		for _, c := range opt.Courses {
			rows = append(rows, courseRow(c))
		}
		b.WriteString(RenderTable(courseHeaders, rows))
		b.WriteString(Dim("Register: "+strings.Join(opt.RegistrationIndexes, ", ")) + "\n")
	}

	if len(resp.Rejected) > 0 {
		b.WriteString("\n" + Header("Rejected") + "\n")
		for _, u := range resp.Rejected {
			b.WriteString(fmt.Sprintf("  %s %s %s\n", StyleRed.Render("✖"), Bold(u.Key), Dim(u.Reason)))
		}
	}
	writePrereqIssues(&b, resp.PrereqIssues)

	return RenderBox("Options", b.String())
}
