package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/regwise/internal/domain"
	"github.com/alexanderramin/regwise/internal/timeslot"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// dayFlag collects excluded days; repeated flags accumulate.
type dayFlag struct {
	set *timeslot.DaySet
}

var _ pflag.Value = dayFlag{}

func (f dayFlag) String() string {
	if f.set == nil {
		return ""
	}
	return f.set.String()
}

func (f dayFlag) Set(raw string) error {
	days, err := timeslot.ParseDaySet(raw)
	if err != nil {
		return err
	}
	for _, d := range days.Days() {
		*f.set = f.set.Add(d)
	}
	return nil
}

func (dayFlag) Type() string { return "days" }

// clockFlag stores a time of day as minutes since midnight. An unmarked hour
// below 8 reads as PM, so "--end-before 5:00" means 5 PM.
type clockFlag struct {
	mins **int
}

var _ pflag.Value = clockFlag{}

func (f clockFlag) String() string {
	if f.mins == nil || *f.mins == nil {
		return ""
	}
	return timeslot.FormatMinutes(**f.mins)
}

func (f clockFlag) Set(raw string) error {
	m, ok := timeslot.ParseMinutes(raw)
	if !ok {
		return fmt.Errorf("unrecognized time %q (try 9:00 AM or 17:00)", raw)
	}
	*f.mins = &m
	return nil
}

func (clockFlag) Type() string { return "time" }

// constraintFlags binds the day, time and credit options shared by plan and
// options onto one Constraints value.
type constraintFlags struct {
	c domain.Constraints
}

func newConstraintFlags(defaults domain.Constraints) *constraintFlags {
	return &constraintFlags{c: defaults}
}

func (f *constraintFlags) bind(fs *pflag.FlagSet) {
	fs.Var(dayFlag{set: &f.c.ExcludedDays}, "exclude-days", "Days with no classes, e.g. F or M,W")
	fs.Var(clockFlag{mins: &f.c.StartAfter}, "start-after", "Earliest class start, e.g. 9:00 AM")
	fs.Var(clockFlag{mins: &f.c.EndBefore}, "end-before", "Latest class end, e.g. 17:00")
	fs.BoolVar(&f.c.IncludeClosed, "include-closed", f.c.IncludeClosed, "Allow closed sections for requested courses")
}

func (f *constraintFlags) bindCredits(fs *pflag.FlagSet) {
	fs.Float64Var(&f.c.TargetCredits, "credits", f.c.TargetCredits, "Target credits")
	fs.Float64Var(&f.c.MinCredits, "min-credits", f.c.MinCredits, "Minimum credits for a complete schedule")
	fs.Float64Var(&f.c.MaxCredits, "max-credits", f.c.MaxCredits, "Maximum credits (0 for no limit)")
	fs.BoolVar(&f.c.FreshmanSafe, "freshman-safe", f.c.FreshmanSafe, "Auto-fill only with courses that have no prerequisites")
}

// courseArgs splits positional arguments on commas so "198:111,640:151" and
// "198:111 640:151" are the same request.
func courseArgs(args []string) []string {
	var out []string
	for _, a := range args {
		for _, k := range strings.Split(a, ",") {
			if k = strings.TrimSpace(k); k != "" {
				out = append(out, k)
			}
		}
	}
	return out
}

func changed(cmd *cobra.Command, names ...string) bool {
	for _, n := range names {
		if cmd.Flags().Changed(n) {
			return true
		}
	}
	return false
}
