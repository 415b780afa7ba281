package formatter

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/regwise/internal/contract"
	"github.com/charmbracelet/lipgloss"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		titleRendered := StyleHeader.Render(strings.ToUpper(title))
		return boxStyle.Render(titleRendered + "\n\n" + content)
	}
	return boxStyle.Render(content)
}

// HumanTimestamp returns a relative timestamp for recent times and a date
// otherwise.
func HumanTimestamp(t time.Time) string {
	return HumanTimestampFrom(t, time.Now())
}

func HumanTimestampFrom(t, now time.Time) string {
	diff := now.Sub(t)
	switch {
	case diff < 0:
		return t.Format("Jan 2, 2006")
	case diff < time.Minute:
		return "Just now"
	case diff < time.Hour:
		return fmt.Sprintf("%dm ago", int(diff.Minutes()))
	case diff < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(diff.Hours()))
	case diff < 7*24*time.Hour:
		return fmt.Sprintf("%dd ago", int(diff.Hours()/24))
	default:
		return t.Format("Jan 2, 2006")
	}
}

// Credits renders a credit value without trailing zeros: 3, 1.5.
func Credits(c float64) string {
	return strconv.FormatFloat(c, 'f', -1, 64)
}

// OpenBadge marks a section open or closed.
func OpenBadge(open bool) string {
	if open {
		return StyleGreen.Render("open")
	}
	return StyleRed.Render("closed")
}

// CoreBadges renders core tags in purple, or a dim placeholder.
func CoreBadges(codes []string) string {
	if len(codes) == 0 {
		return StyleDim.Render("--")
	}
	return StylePurple.Render(strings.Join(codes, " "))
}

// TruncID returns the first 8 characters of an ID, dimmed.
func TruncID(id string) string {
	if len(id) > 8 {
		id = id[:8]
	}
	return StyleDim.Render(id)
}

// MeetingLines renders one line per meeting: "Mon 10:20 AM - 11:40 AM  LIV ARC 103".
func MeetingLines(meetings []contract.MeetingView) []string {
	if len(meetings) == 0 {
		return []string{Dim("no scheduled meetings")}
	}
	lines := make([]string, 0, len(meetings))
	for _, m := range meetings {
		day := m.Day
		if len(day) > 3 {
			day = day[:3]
		}
		line := fmt.Sprintf("%s %s - %s", day, m.Start, m.End)
		if place := strings.TrimSpace(strings.Join([]string{m.Campus, m.Building, m.Room}, " ")); place != "" {
			line += "  " + Dim(place)
		}
		if m.Mode != "" {
			line += " " + Dim("("+m.Mode+")")
		}
		lines = append(lines, line)
	}
	return lines
}

func writeWarnings(b *strings.Builder, warnings []string) {
	if len(warnings) == 0 {
		return
	}
	b.WriteString("\n")
	for _, w := range warnings {
		b.WriteString(StyleYellow.Render(fmt.Sprintf("  WARNING: %s", w)) + "\n")
	}
}
