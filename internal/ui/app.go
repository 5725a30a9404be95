// Package ui implements the interactive terminal views: the public
// landing page with its chat widget, and the admin panel for managing
// property listings.
package ui

import (
	"log/slog"

	tea "charm.land/bubbletea/v2"

	"github.com/FenadoAI/fv2-realty-chat-3swcmc/internal/api"
)

// Route identifies a top-level view.
type Route string

const (
	RouteLanding Route = "/"
	RouteAdmin   Route = "/admin"
)

// App is the root model dispatching between the landing page and the
// admin panel. Unknown routes render only the navigation chrome.
type App struct {
	route   Route
	landing landingModel
	admin   adminModel
	theme   Theme
	width   int
	height  int
	initCmd tea.Cmd
}

// NewApp creates the root model starting at the given route.
func NewApp(client *api.Client, logger *slog.Logger, route Route) App {
	app := App{
		route:   route,
		landing: newLandingModel(client, logger, defaultTheme),
		admin:   newAdminModel(client, logger, defaultTheme),
		theme:   defaultTheme,
	}
	if route == RouteAdmin {
		app.admin, app.initCmd = app.admin.enter()
	}
	return app
}

// Init starts the initial view.
func (a App) Init() tea.Cmd {
	return a.initCmd
}

// Update handles messages and returns the updated model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.landing = a.landing.resize(msg.Width, msg.Height)
		a.admin = a.admin.resize(msg.Width, msg.Height)
		return a, nil

	case tea.KeyPressMsg:
		if a.capturingInput() {
			// A focused text input owns the keyboard; only ctrl+c breaks out.
			if msg.String() == "ctrl+c" {
				return a, tea.Quit
			}
			return a.routeMsg(msg)
		}

		switch msg.String() {
		case "ctrl+c", "q":
			return a, tea.Quit
		case "1", "h":
			a.route = RouteLanding
			return a, nil
		case "2", "m":
			a.route = RouteAdmin
			var cmd tea.Cmd
			a.admin, cmd = a.admin.enter()
			return a, cmd
		}
		return a.routeMsg(msg)
	}

	// Async results are delivered to both views so that a response
	// arriving after the user navigated away never updates the wrong
	// view; each model guards against stale data itself.
	var cmds []tea.Cmd
	var cmd tea.Cmd
	a.landing, cmd = a.landing.update(msg)
	cmds = append(cmds, cmd)
	a.admin, cmd = a.admin.update(msg)
	cmds = append(cmds, cmd)
	return a, tea.Batch(cmds...)
}

// routeMsg forwards a key press to the active view only.
func (a App) routeMsg(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch a.route {
	case RouteLanding:
		a.landing, cmd = a.landing.update(msg)
	case RouteAdmin:
		a.admin, cmd = a.admin.update(msg)
	}
	return a, cmd
}

// capturingInput reports whether the active view has a focused text
// input that should receive printable keys before global shortcuts.
func (a App) capturingInput() bool {
	switch a.route {
	case RouteLanding:
		return a.landing.capturingInput()
	case RouteAdmin:
		return a.admin.capturingInput()
	}
	return false
}

// View renders the navigation bar and the active view.
func (a App) View() tea.View {
	nav := a.theme.titleStyle().Render("Sunset Realty") + "  " +
		a.navItem(RouteLanding, "[1] Home") + "  " +
		a.navItem(RouteAdmin, "[2] Admin") + "  " +
		a.theme.hintStyle().Render("q quit")

	var body string
	switch a.route {
	case RouteLanding:
		body = a.landing.view()
	case RouteAdmin:
		body = a.admin.view()
	}

	return tea.NewView(nav + "\n\n" + body)
}

func (a App) navItem(r Route, label string) string {
	if a.route == r {
		return a.theme.selectedStyle().Render(label)
	}
	return a.theme.hintStyle().Render(label)
}
