package timeslot

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// MinutesPerDay bounds every parsed time of day.
const MinutesPerDay = 24 * 60

// afternoonCutoff is the hour below which an unmarked time is read as PM.
// Catalogs print "2:00" for a 2 PM class; nothing is scheduled before 8 AM.
const afternoonCutoff = 8

var clockPattern = regexp.MustCompile(`^(\d{1,2}):(\d{2})(?::\d{2})?\s*(AM|PM)?`)

// ParseMinutes parses "10:20 AM", "1:40PM", "14:00" or "2:00" into minutes
// since midnight. An hour below 8 with no AM/PM marker is taken as PM.
func ParseMinutes(raw string) (int, bool) {
	t := strings.ToUpper(strings.TrimSpace(raw))
	if t == "" {
		return 0, false
	}
	m := clockPattern.FindStringSubmatch(t)
	if m == nil {
		return 0, false
	}
	h, _ := strconv.Atoi(m[1])
	min, _ := strconv.Atoi(m[2])
	switch period := m[3]; {
	case period == "PM" && h != 12:
		h += 12
	case period == "AM" && h == 12:
		h = 0
	case period == "" && h < afternoonCutoff:
		h += 12
	}
	return toMinutes(h, min)
}

// ParseMinutes24 parses a strict 24-hour "HH:MM" value with no afternoon
// heuristic. Used for catalog fields that are already 24-hour.
func ParseMinutes24(raw string) (int, bool) {
	t := strings.TrimSpace(raw)
	m := clockPattern.FindStringSubmatch(strings.ToUpper(t))
	if m == nil || m[3] != "" {
		return 0, false
	}
	h, _ := strconv.Atoi(m[1])
	min, _ := strconv.Atoi(m[2])
	return toMinutes(h, min)
}

func toMinutes(h, m int) (int, bool) {
	if h < 0 || h >= 24 || m < 0 || m >= 60 {
		return 0, false
	}
	return h*60 + m, true
}

// FormatMinutes renders minutes since midnight as "h:mm AM".
func FormatMinutes(mins int) string {
	h, m := mins/60, mins%60
	period := "AM"
	if h >= 12 {
		period = "PM"
	}
	switch {
	case h > 12:
		h -= 12
	case h == 0:
		h = 12
	}
	return fmt.Sprintf("%d:%02d %s", h, m, period)
}

// FormatRange renders a meeting interval such as "10:20 AM - 11:40 AM".
func FormatRange(start, end int) string {
	return FormatMinutes(start) + " - " + FormatMinutes(end)
}
