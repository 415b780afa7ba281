package cli

import (
	"fmt"

	"github.com/alexanderramin/regwise/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newCourseCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "course <key>",
		Short: "Show a course with its sections and core codes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			info, err := app.Catalog.Course(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatCourse(info))
			return nil
		},
	}
}

func newCoreCmd(app *App) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "core <code>",
		Short: "List the best open courses for a core requirement",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			listing, err := app.Catalog.CoreCourses(cmd.Context(), args[0], limit)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatCoreListing(listing))
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 15, "Maximum number of courses to show")

	return cmd
}
