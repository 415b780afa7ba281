package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/alexanderramin/regwise/internal/catalog"
	"github.com/alexanderramin/regwise/internal/cli"
	"github.com/alexanderramin/regwise/internal/config"
	"github.com/alexanderramin/regwise/internal/db"
	"github.com/alexanderramin/regwise/internal/repository"
	"github.com/alexanderramin/regwise/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// configPath finds --config before cobra parses anything, since the services
// the command tree needs are built from it. REGWISE_CONFIG is the fallback.
func configPath(args []string) (string, []string) {
	path := os.Getenv("REGWISE_CONFIG")
	rest := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		switch a := args[i]; {
		case a == "--config" && i+1 < len(args):
			path = args[i+1]
			i++
		case strings.HasPrefix(a, "--config="):
			path = strings.TrimPrefix(a, "--config=")
		default:
			rest = append(rest, a)
		}
	}
	return path, rest
}

func run(args []string) error {
	path, args := configPath(args)
	cfg, err := config.Load(path)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	database, err := db.OpenDB(cfg.DB.Path)
	if err != nil {
		return fmt.Errorf("open snapshot cache: %w", err)
	}
	defer database.Close()

	var observers []service.UseCaseObserver
	if cfg.Log.Enabled {
		level, err := cfg.Log.SlogLevel()
		if err != nil {
			return err
		}
		observers = append(observers, service.NewLogUseCaseObserver(os.Stderr, level))
	}

	// Wire repository and unit of work
	catalogRepo := repository.NewSQLiteCatalogRepo(database)
	uow := db.NewSQLiteUnitOfWork(database)

	// Wire services
	catalogSvc := service.NewCatalogService(catalogRepo, uow, catalog.NewHolder(nil), cfg.CatalogOptions(), observers...)
	planSvc := service.NewPlanService(catalogSvc, cfg.Limits(), cfg.Catalog.LongKeyPrefix, observers...)

	app := &cli.App{
		Catalog:  catalogSvc,
		Planner:  planSvc,
		Defaults: cfg.Constraints(),
	}

	// Detect interactive terminal for the plan form.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	rootCmd.PersistentFlags().String("config", path, "Config file (YAML or JSON)")
	rootCmd.SetArgs(args)
	return rootCmd.Execute()
}
