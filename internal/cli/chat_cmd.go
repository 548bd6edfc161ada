package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newChatCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "chat",
		Short: "Conversation interactive avec l'assistant",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && !app.IsInteractive() {
				return fmt.Errorf("la conversation interactive nécessite un terminal ; utilisez « maitre ask »")
			}
			p := tea.NewProgram(newChatModel(app))
			_, err := p.Run()
			return err
		},
	}
}
