package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/regwise/internal/cli/formatter"
	"github.com/alexanderramin/regwise/internal/contract"
	"github.com/alexanderramin/regwise/internal/timeslot"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// regwiseHuhTheme returns a huh theme using the formatter palette.
func regwiseHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// planFormValues holds the raw form answers before they are applied to a request.
type planFormValues struct {
	Courses    string
	CoreCodes  string
	Subject    string
	Days       []string
	StartAfter string
	EndBefore  string
	Credits    string
	AutoFill   bool
}

func newPlanFormValues(req contract.PlanRequest) *planFormValues {
	v := &planFormValues{
		Credits:  strconv.FormatFloat(req.Constraints.TargetCredits, 'f', -1, 64),
		AutoFill: req.AutoFill,
	}
	for _, d := range req.Constraints.ExcludedDays.Days() {
		v.Days = append(v.Days, d.String())
	}
	return v
}

// planForm asks for courses and preferences when plan runs without arguments.
func planForm(v *planFormValues) *huh.Form {
	dayOptions := make([]huh.Option[string], 0, len(timeslot.Weekdays))
	for _, d := range timeslot.Weekdays {
		dayOptions = append(dayOptions, huh.NewOption(d.String(), d.String()))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Courses").
				Description("Course keys in priority order, e.g. 198:111, 640:151").
				Value(&v.Courses),
			huh.NewInput().
				Title("Core codes").
				Description("Optional, e.g. QR, WCD").
				Value(&v.CoreCodes),
			huh.NewInput().
				Title("Subject").
				Description("Optional subject code for intro courses, e.g. 198").
				Value(&v.Subject),
		),
		huh.NewGroup(
			huh.NewMultiSelect[string]().
				Title("Days off").
				Options(dayOptions...).
				Value(&v.Days),
			huh.NewInput().
				Title("Start after").
				Placeholder("9:00 AM").
				Value(&v.StartAfter).
				Validate(validateOptionalClock),
			huh.NewInput().
				Title("End before").
				Placeholder("5:00 PM").
				Value(&v.EndBefore).
				Validate(validateOptionalClock),
			huh.NewInput().
				Title("Target credits").
				Value(&v.Credits).
				Validate(validatePositiveFloat),
			huh.NewConfirm().
				Title("Fill toward the credit target?").
				Value(&v.AutoFill),
		),
	).WithTheme(regwiseHuhTheme()).WithShowHelp(false)
}

func runPlanForm(req *contract.PlanRequest) error {
	v := newPlanFormValues(*req)
	if err := planForm(v).Run(); err != nil {
		return fmt.Errorf("plan form: %w", err)
	}
	return v.apply(req)
}

// apply copies validated form answers onto req.
func (v *planFormValues) apply(req *contract.PlanRequest) error {
	req.Courses = courseArgs([]string{v.Courses})
	req.CoreCodes = courseArgs([]string{v.CoreCodes})
	req.Subject = strings.TrimSpace(v.Subject)
	req.AutoFill = v.AutoFill

	days, err := timeslot.ParseDaySet(strings.Join(v.Days, ","))
	if err != nil {
		return err
	}
	req.Constraints.ExcludedDays = days

	for _, t := range []struct {
		raw string
		dst **int
	}{
		{v.StartAfter, &req.Constraints.StartAfter},
		{v.EndBefore, &req.Constraints.EndBefore},
	} {
		if strings.TrimSpace(t.raw) == "" {
			continue
		}
		if err := (clockFlag{mins: t.dst}).Set(t.raw); err != nil {
			return err
		}
	}

	if strings.TrimSpace(v.Credits) != "" {
		credits, err := strconv.ParseFloat(strings.TrimSpace(v.Credits), 64)
		if err != nil {
			return fmt.Errorf("target credits: %w", err)
		}
		req.Constraints.TargetCredits = credits
	}
	return nil
}

func validateOptionalClock(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	if _, ok := timeslot.ParseMinutes(s); !ok {
		return fmt.Errorf("use a time like 9:00 AM or 17:00")
	}
	return nil
}

func validatePositiveFloat(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || f <= 0 {
		return fmt.Errorf("must be a positive number")
	}
	return nil
}
