package cli

import (
	"fmt"

	"github.com/alexanderramin/regwise/internal/cli/formatter"
	"github.com/alexanderramin/regwise/internal/importer"
	"github.com/spf13/cobra"
)

func newCatalogCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Import and manage course catalogs",
	}

	cmd.AddCommand(
		newCatalogImportCmd(app),
		newCatalogListCmd(app),
		newCatalogRemoveCmd(app),
	)

	return cmd
}

func newCatalogImportCmd(app *App) *cobra.Command {
	var formatStr, source string

	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Import a catalog JSON file and make it current",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := importer.ParseFormat(formatStr)
			if err != nil {
				return err
			}
			res, err := app.Catalog.Import(cmd.Context(), args[0], format, source)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatImport(res))
			return nil
		},
	}

	cmd.Flags().StringVar(&formatStr, "format", "", "File layout: catalog or sis (detected when omitted)")
	cmd.Flags().StringVar(&source, "source", "", "Label for this catalog (defaults to the file name)")

	return cmd
}

func newCatalogListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List imported catalogs, newest first",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := app.Catalog.ListSnapshots(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatSnapshots(list))
			return nil
		},
	}
}

func newCatalogRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "remove <id>",
		Aliases: []string{"rm"},
		Short:   "Delete an imported catalog",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := resolveSnapshotID(cmd, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Catalog.DeleteSnapshot(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed catalog %s\n", id)
			return nil
		},
	}
}
