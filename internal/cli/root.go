package cli

import (
	"github.com/alexanderramin/regwise/internal/domain"
	"github.com/alexanderramin/regwise/internal/service"
	"github.com/spf13/cobra"
)

// App holds the services and defaults used by CLI commands.
type App struct {
	Catalog service.CatalogService
	Planner service.PlanService

	// Defaults seeds the constraints of every plan and options request.
	Defaults domain.Constraints

	// IsInteractive reports whether stdin is a terminal. Nil means never.
	IsInteractive func() bool
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// NewRootCmd creates the top-level "regwise" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "regwise",
		Short:         "Build conflict-free course schedules from a class catalog",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newCatalogCmd(app),
		newCourseCmd(app),
		newCoreCmd(app),
		newPlanCmd(app),
		newOptionsCmd(app),
	)

	return root
}
