package cli

import (
	"context"
	"fmt"

	"github.com/adelaplace/maitre/internal/cli/formatter"
	"github.com/adelaplace/maitre/internal/repository"
	"github.com/spf13/cobra"
)

func newCatalogCmd(app *App) *cobra.Command {
	var all bool
	var urgent bool

	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Afficher les prestations et leurs tarifs",
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := app.Catalog.Catalog(context.Background())
			if err != nil {
				return err
			}

			if urgent {
				fmt.Println(formatter.UrgencyBanner())
				fmt.Println()
			}

			if all {
				fmt.Print(formatter.CatalogListing(cat, urgent, app.Catalog.UrgencyFactor()))
				return nil
			}

			fmt.Println(formatter.PopularPrestations(cat, repository.PopularPrestations()))
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "Afficher le catalogue complet")
	cmd.Flags().BoolVar(&urgent, "urgent", false, "Afficher les tarifs majorés pour urgence")

	return cmd
}
