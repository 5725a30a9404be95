package ui

import (
	"log/slog"
	"strconv"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/FenadoAI/fv2-realty-chat-3swcmc/internal/api"
	"github.com/FenadoAI/fv2-realty-chat-3swcmc/internal/models"
)

// featuredProperty is a hardcoded showcase listing for the landing page.
// Live inventory is browsed through the admin panel or the CLI.
type featuredProperty struct {
	Title    string
	Location string
	Price    int
	Bedrooms int
	Baths    int
	Sqft     int
}

var featuredProperties = []featuredProperty{
	{Title: "Modern Luxury Villa", Location: "Beverly Hills, CA", Price: 2850000, Bedrooms: 5, Baths: 4, Sqft: 4200},
	{Title: "Downtown Penthouse", Location: "Manhattan, NY", Price: 1200000, Bedrooms: 3, Baths: 2, Sqft: 2100},
	{Title: "Seaside Retreat", Location: "Malibu, CA", Price: 950000, Bedrooms: 4, Baths: 3, Sqft: 3200},
}

// service is a marketing blurb shown under the featured listings.
type service struct {
	Name  string
	Blurb string
}

var services = []service{
	{Name: "Buying", Blurb: "Find the right home with a dedicated local agent."},
	{Name: "Selling", Blurb: "Price, stage and market your property for top dollar."},
	{Name: "Property Management", Blurb: "Full-service care for owners and tenants."},
}

// landingModel renders the public landing page and hosts the chat widget.
type landingModel struct {
	theme  Theme
	chat   chatModel
	width  int
	height int
}

func newLandingModel(client *api.Client, logger *slog.Logger, theme Theme) landingModel {
	return landingModel{
		theme: theme,
		chat:  newChatModel(client, logger, theme),
	}
}

func (m landingModel) update(msg tea.Msg) (landingModel, tea.Cmd) {
	if key, ok := msg.(tea.KeyPressMsg); ok {
		if !m.chat.open && key.String() == "c" {
			var cmd tea.Cmd
			m.chat, cmd = m.chat.toggle()
			return m, cmd
		}
	}

	var cmd tea.Cmd
	m.chat, cmd = m.chat.update(msg)
	return m, cmd
}

func (m landingModel) capturingInput() bool {
	return m.chat.capturingInput()
}

func (m landingModel) resize(width, height int) landingModel {
	m.width = width
	m.height = height
	m.chat = m.chat.resize(width)
	return m
}

func (m landingModel) view() string {
	var b strings.Builder

	b.WriteString(m.theme.titleStyle().Render("Find your place in the sun") + "\n")
	b.WriteString(m.theme.hintStyle().Render("Hand-picked homes across the country") + "\n\n")

	b.WriteString(m.theme.accentStyle().Render("Featured Properties") + "\n")
	for _, p := range featuredProperties {
		b.WriteString("  " + p.Title + " — " + p.Location + "\n")
		b.WriteString("    " + m.theme.successStyle().Render(models.FormatPrice(p.Price)))
		b.WriteString(m.theme.hintStyle().Render(
			"  " + strconv.Itoa(p.Bedrooms) + " bd · " + strconv.Itoa(p.Baths) + " ba · " + models.FormatSqft(p.Sqft)))
		b.WriteString("\n")
	}

	b.WriteString("\n" + m.theme.accentStyle().Render("Our Services") + "\n")
	for _, s := range services {
		b.WriteString("  " + s.Name + " — " + m.theme.hintStyle().Render(s.Blurb) + "\n")
	}

	b.WriteString("\n" + m.chat.view() + "\n")
	return b.String()
}
