package cli

import (
	"fmt"

	"github.com/alexanderramin/regwise/internal/cli/formatter"
	"github.com/alexanderramin/regwise/internal/contract"
	"github.com/spf13/cobra"
)

func newPlanCmd(app *App) *cobra.Command {
	flags := newConstraintFlags(app.Defaults)
	var core, completed []string
	var subject string
	var noFill bool

	cmd := &cobra.Command{
		Use:   "plan [course...]",
		Short: "Build one schedule from requested courses, core codes or a subject",
		Long: `Build one conflict-free schedule. Requested courses are placed in the
order given, then core codes and subject picks, then the schedule is filled
toward the credit target unless --no-fill is set.

With no courses on an interactive terminal, a form asks for them.`,
		Example: `  regwise plan 198:111 640:151 --exclude-days F
  regwise plan --core QR,WCD --credits 16
  regwise plan --subject 198 --end-before 17:00`,
		RunE: func(cmd *cobra.Command, args []string) error {
			req := contract.NewPlanRequest(courseArgs(args)...)
			req.CoreCodes = courseArgs(core)
			req.Subject = subject
			req.Completed = courseArgs(completed)
			req.Constraints = flags.c
			req.AutoFill = !noFill

			if len(req.Courses) == 0 && !changed(cmd, "core", "subject") && app.interactive() {
				if err := runPlanForm(&req); err != nil {
					return err
				}
			}

			resp, err := app.Planner.Plan(cmd.Context(), req)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatPlan(resp))
			return nil
		},
	}

	flags.bind(cmd.Flags())
	flags.bindCredits(cmd.Flags())
	cmd.Flags().StringSliceVar(&core, "core", nil, "Core codes to satisfy, e.g. QR,WCD")
	cmd.Flags().StringVar(&subject, "subject", "", "Subject code whose intro courses to add, e.g. 198")
	cmd.Flags().StringSliceVar(&completed, "completed", nil, "Courses already taken, e.g. 640:151,198:111")
	cmd.Flags().BoolVar(&noFill, "no-fill", false, "Do not add courses toward the credit target")

	return cmd
}

func newOptionsCmd(app *App) *cobra.Command {
	flags := newConstraintFlags(app.Defaults)
	var maxOptions int

	cmd := &cobra.Command{
		Use:   "options <course>...",
		Short: "List alternative section combinations for a fixed set of courses",
		Example: `  regwise options 198:111 640:151 355:101
  regwise options 198:111,640:151 --exclude-days F --max 5`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := contract.NewOptionsRequest(courseArgs(args)...)
			req.Constraints = flags.c
			req.MaxOptions = maxOptions

			resp, err := app.Planner.Options(cmd.Context(), req)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatOptions(resp))
			return nil
		},
	}

	flags.bind(cmd.Flags())
	cmd.Flags().IntVar(&maxOptions, "max", 0, "Maximum number of options (0 uses the configured limit)")

	return cmd
}
