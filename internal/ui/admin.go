package ui

import (
	"context"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"

	"github.com/FenadoAI/fv2-realty-chat-3swcmc/internal/api"
	"github.com/FenadoAI/fv2-realty-chat-3swcmc/internal/models"
)

const adminRequestTimeout = 30 * time.Second

// dialogState tracks which modal owns the admin panel, if any.
type dialogState int

const (
	dialogNone dialogState = iota
	dialogForm
	dialogConfirmDelete
	dialogAlert
)

// propertiesMsg carries a completed list fetch. seq identifies the fetch
// so stale responses (from before a navigation or refresh) are dropped.
type propertiesMsg struct {
	seq   int
	props []models.Property
	err   error
}

// mutationMsg carries the result of a create, update or delete call.
type mutationMsg struct {
	op  string
	err error
}

// adminModel is the property management panel.
type adminModel struct {
	client *api.Client
	logger *slog.Logger
	theme  Theme
	spin   spinner.Model

	props    []models.Property
	loading  bool
	loadErr  error
	fetchSeq int
	cursor   int

	dialog        dialogState
	form          formModel
	deleteTarget  *models.Property
	alertText     string
	alertReturnTo dialogState
	busy          bool

	width  int
	height int
}

func newAdminModel(client *api.Client, logger *slog.Logger, theme Theme) adminModel {
	s := spinner.New()
	s.Spinner = spinner.Dot

	return adminModel{
		client: client,
		logger: logger,
		theme:  theme,
		spin:   s,
	}
}

// enter starts (or restarts) the property fetch for the panel.
func (m adminModel) enter() (adminModel, tea.Cmd) {
	m.loading = true
	m.loadErr = nil
	m.fetchSeq++
	return m, tea.Batch(m.fetch(m.fetchSeq), m.spin.Tick)
}

// fetch loads the property list in a command so Update never blocks.
func (m adminModel) fetch(seq int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), adminRequestTimeout)
		defer cancel()

		props, err := m.client.ListProperties(ctx, api.ListOptions{})
		return propertiesMsg{seq: seq, props: props, err: err}
	}
}

func (m adminModel) update(msg tea.Msg) (adminModel, tea.Cmd) {
	switch msg := msg.(type) {
	case propertiesMsg:
		if msg.seq != m.fetchSeq {
			// Response from a superseded fetch; ignore it.
			return m, nil
		}
		m.loading = false
		m.loadErr = msg.err
		if msg.err != nil {
			m.logger.Error("loading properties failed", "error", msg.err)
			return m, nil
		}
		m.props = msg.props
		if m.cursor >= len(m.props) {
			m.cursor = 0
		}
		return m, nil

	case mutationMsg:
		return m.handleMutation(msg)

	case spinner.TickMsg:
		if m.loading || m.busy {
			var cmd tea.Cmd
			m.spin, cmd = m.spin.Update(msg)
			return m, cmd
		}
		return m, nil

	case tea.KeyPressMsg:
		return m.handleKey(msg)
	}

	if m.dialog == dialogForm {
		var cmd tea.Cmd
		m.form, _, cmd = m.form.update(msg)
		return m, cmd
	}
	return m, nil
}

func (m adminModel) handleKey(msg tea.KeyPressMsg) (adminModel, tea.Cmd) {
	switch m.dialog {
	case dialogAlert:
		// Blocking notice: any key dismisses it and returns to the
		// dialog underneath, so a failed submit keeps its draft.
		m.dialog = m.alertReturnTo
		m.alertText = ""
		return m, nil

	case dialogConfirmDelete:
		return m.handleConfirmKey(msg)

	case dialogForm:
		return m.handleFormKey(msg)
	}

	switch msg.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.props)-1 {
			m.cursor++
		}
	case "r":
		return m.enter()
	case "a":
		m.form = newFormModel(m.theme)
		m.dialog = dialogForm
		return m, m.form.focusCmd()
	case "e":
		if p := m.selected(); p != nil {
			m.form = editFormModel(m.theme, *p)
			m.dialog = dialogForm
			return m, m.form.focusCmd()
		}
	case "d":
		if p := m.selected(); p != nil {
			target := *p
			m.deleteTarget = &target
			m.dialog = dialogConfirmDelete
		}
	}
	return m, nil
}

func (m adminModel) handleConfirmKey(msg tea.KeyPressMsg) (adminModel, tea.Cmd) {
	if m.busy {
		return m, nil
	}
	switch msg.String() {
	case "y", "Y":
		id := m.deleteTarget.ID
		m.busy = true
		return m, tea.Batch(m.deleteCmd(id), m.spin.Tick)
	default:
		// Declining is a no-op: no request is issued.
		m.deleteTarget = nil
		m.dialog = dialogNone
		return m, nil
	}
}

func (m adminModel) handleFormKey(msg tea.KeyPressMsg) (adminModel, tea.Cmd) {
	if m.busy {
		return m, nil
	}

	var action formAction
	var cmd tea.Cmd
	m.form, action, cmd = m.form.update(msg)

	switch action {
	case formCancel:
		// Draft is discarded on cancel.
		m.dialog = dialogNone
		m.form = formModel{}
		return m, nil
	case formSubmit:
		m.busy = true
		payload := m.form.draft.ToPayload()
		if m.form.draft.Editing() {
			return m, tea.Batch(m.updateCmd(m.form.draft.EditingID, payload), m.spin.Tick)
		}
		return m, tea.Batch(m.createCmd(payload), m.spin.Tick)
	}
	return m, cmd
}

// handleMutation closes the dialog and refreshes the list on success.
// On failure the dialog stays open (so the draft is not lost) behind a
// blocking alert.
func (m adminModel) handleMutation(msg mutationMsg) (adminModel, tea.Cmd) {
	m.busy = false
	if msg.err != nil {
		m.logger.Error("property mutation failed", "op", msg.op, "error", msg.err)
		m.alertText = "Could not " + msg.op + " the property. " + failureHint(msg.err)
		m.alertReturnTo = m.dialog
		m.dialog = dialogAlert
		return m, nil
	}

	m.logger.Info("property mutation succeeded", "op", msg.op)
	m.dialog = dialogNone
	m.form = formModel{}
	m.deleteTarget = nil
	return m.enter()
}

// failureHint distinguishes the two failure classes for the notice text.
func failureHint(err error) string {
	if api.IsNetworkError(err) {
		return "The server could not be reached."
	}
	return "The server rejected the request."
}

func (m adminModel) createCmd(payload models.PropertyPayload) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), adminRequestTimeout)
		defer cancel()

		_, err := m.client.CreateProperty(ctx, payload)
		return mutationMsg{op: "create", err: err}
	}
}

func (m adminModel) updateCmd(id string, payload models.PropertyPayload) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), adminRequestTimeout)
		defer cancel()

		_, err := m.client.UpdateProperty(ctx, id, payload)
		return mutationMsg{op: "update", err: err}
	}
}

func (m adminModel) deleteCmd(id string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), adminRequestTimeout)
		defer cancel()

		_, err := m.client.DeleteProperty(ctx, id)
		return mutationMsg{op: "delete", err: err}
	}
}

func (m adminModel) selected() *models.Property {
	if m.cursor < 0 || m.cursor >= len(m.props) {
		return nil
	}
	return &m.props[m.cursor]
}

func (m adminModel) capturingInput() bool {
	return m.dialog == dialogForm
}

func (m adminModel) resize(width, height int) adminModel {
	m.width = width
	m.height = height
	return m
}

func (m adminModel) view() string {
	switch m.dialog {
	case dialogAlert:
		return m.alertView()
	case dialogConfirmDelete:
		return m.confirmView()
	case dialogForm:
		return m.form.view()
	}
	return m.listView()
}

func (m adminModel) listView() string {
	var b strings.Builder
	b.WriteString(m.theme.titleStyle().Render("Property Manager") + "\n\n")

	if m.loading {
		b.WriteString(m.spin.View() + " Loading properties...\n")
		return b.String()
	}

	if m.loadErr != nil {
		b.WriteString(m.theme.errorStyle().Render("Could not load properties.") + "\n")
		b.WriteString(m.theme.hintStyle().Render("Press r to retry.") + "\n")
		return b.String()
	}

	if len(m.props) == 0 {
		b.WriteString("No properties yet.\n")
		b.WriteString(m.theme.accentStyle().Render("Press a to add your first listing.") + "\n")
		return b.String()
	}

	// One card per record, in the order the API returned them.
	for i, p := range m.props {
		marker := "  "
		titleStyle := m.theme.accentStyle()
		if i == m.cursor {
			marker = "> "
			titleStyle = m.theme.selectedStyle()
		}
		b.WriteString(marker + titleStyle.Render(p.Title) + " " +
			m.theme.badgeStyle(string(p.Status)).Render("["+string(p.Status)+"]") + "\n")
		b.WriteString("    " + m.theme.successStyle().Render(models.FormatPrice(p.Price)) +
			m.theme.hintStyle().Render("  "+p.Location+" · "+
				strconv.Itoa(p.Bedrooms)+" bd · "+strconv.Itoa(p.Bathrooms)+" ba · "+
				models.FormatSqft(p.Sqft)+" · "+string(p.PropertyType)) + "\n")
	}

	b.WriteString("\n" + m.theme.hintStyle().Render("a add · e edit · d delete · r refresh · ↑/↓ select"))
	return b.String()
}

func (m adminModel) confirmView() string {
	var b strings.Builder
	b.WriteString(m.theme.titleStyle().Render("Delete property") + "\n\n")
	b.WriteString("About to delete: " + m.deleteTarget.Title + "\n\n")
	if m.busy {
		b.WriteString(m.spin.View() + " Deleting...\n")
		return b.String()
	}
	b.WriteString("Continue? [y/N]\n")
	return b.String()
}

func (m adminModel) alertView() string {
	var b strings.Builder
	b.WriteString(m.theme.errorStyle().Render("✗ "+m.alertText) + "\n\n")
	b.WriteString(m.theme.hintStyle().Render("Press any key to continue."))
	return b.String()
}
