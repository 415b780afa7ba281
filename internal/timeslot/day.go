package timeslot

import (
	"fmt"
	"strings"
	"time"
)

// dayAliases maps the spellings catalogs use for class days.
// "R" and "TH" are both Thursday; a bare "T" is always Tuesday.
var dayAliases = map[string]time.Weekday{
	"M": time.Monday, "MO": time.Monday, "MON": time.Monday,
	"T": time.Tuesday, "TU": time.Tuesday, "TUE": time.Tuesday, "TUES": time.Tuesday,
	"W": time.Wednesday, "WE": time.Wednesday, "WED": time.Wednesday,
	"R": time.Thursday, "TH": time.Thursday, "THU": time.Thursday,
	"THUR": time.Thursday, "THURS": time.Thursday,
	"F": time.Friday, "FR": time.Friday, "FRI": time.Friday,
}

var weekdayNames = []struct {
	name string
	day  time.Weekday
}{
	{"MONDAY", time.Monday},
	{"TUESDAY", time.Tuesday},
	{"WEDNESDAY", time.Wednesday},
	{"THURSDAY", time.Thursday},
	{"FRIDAY", time.Friday},
}

// Weekdays lists the five class days in calendar order.
var Weekdays = []time.Weekday{time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday}

// NormalizeDay converts a catalog day spelling into a weekday.
// Weekend days and anything unrecognized report false.
func NormalizeDay(raw string) (time.Weekday, bool) {
	d := strings.ToUpper(strings.TrimSpace(raw))
	d = strings.TrimSuffix(d, ".")
	if d == "" {
		return 0, false
	}
	if day, ok := dayAliases[d]; ok {
		return day, true
	}
	if len(d) < 2 {
		return 0, false
	}
	for _, wd := range weekdayNames {
		if strings.HasPrefix(wd.name, d) {
			return wd.day, true
		}
	}
	return 0, false
}

// DaySet is a set of class days.
type DaySet uint8

// NewDaySet builds a set from the given days.
func NewDaySet(days ...time.Weekday) DaySet {
	var s DaySet
	for _, d := range days {
		s = s.Add(d)
	}
	return s
}

// ParseDaySet parses a comma or space separated list such as "M,F" or "friday".
func ParseDaySet(raw string) (DaySet, error) {
	var s DaySet
	fields := strings.FieldsFunc(raw, func(r rune) bool {
		return r == ',' || r == ' ' || r == ';'
	})
	for _, f := range fields {
		day, ok := NormalizeDay(f)
		if !ok {
			return 0, fmt.Errorf("unrecognized day %q", f)
		}
		s = s.Add(day)
	}
	return s, nil
}

func (s DaySet) Add(d time.Weekday) DaySet {
	return s | 1<<uint(d)
}

func (s DaySet) Has(d time.Weekday) bool {
	return s&(1<<uint(d)) != 0
}

func (s DaySet) Empty() bool {
	return s == 0
}

// Days returns the members in calendar order.
func (s DaySet) Days() []time.Weekday {
	var out []time.Weekday
	for _, d := range Weekdays {
		if s.Has(d) {
			out = append(out, d)
		}
	}
	return out
}

func (s DaySet) String() string {
	days := s.Days()
	names := make([]string, len(days))
	for i, d := range days {
		names[i] = d.String()
	}
	return strings.Join(names, ",")
}
