package cli

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"github.com/spf13/cobra"

	"github.com/FenadoAI/fv2-realty-chat-3swcmc/internal/ui"
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Open the landing page",
	Long: `Open the public landing page in the terminal.

Shows the featured properties and services, and hosts the chat widget
(press c to talk to the agent). Press 2 to jump to the admin panel.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runUI(ui.RouteLanding)
	},
}

var adminCmd = &cobra.Command{
	Use:   "admin",
	Short: "Open the admin panel",
	Long: `Open the property management panel in the terminal.

Lists every property with add, edit and delete dialogs. Press 1 to jump
to the landing page.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runUI(ui.RouteAdmin)
	},
}

// runUI starts the terminal UI at the given route and blocks until quit.
func runUI(route ui.Route) error {
	app := ui.NewApp(apiClient, logger, route)
	p := tea.NewProgram(app)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}
