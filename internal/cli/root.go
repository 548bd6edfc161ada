package cli

import (
	"github.com/adelaplace/maitre/internal/repository"
	"github.com/adelaplace/maitre/internal/service"
	"github.com/spf13/cobra"
)

// App holds the services used by CLI commands.
type App struct {
	Catalog repository.CatalogProvider
	Intake  *service.Intake

	// IsInteractive reports whether stdin is an interactive terminal.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "maitre" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "maitre",
		Short: "Assistant juridique : identification de prestations et tarifs",
	}

	root.AddCommand(
		newChatCmd(app),
		newAskCmd(app),
		newCatalogCmd(app),
	)

	return root
}
