package ui

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"charm.land/bubbles/v2/spinner"
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"

	"github.com/FenadoAI/fv2-realty-chat-3swcmc/internal/api"
	"github.com/FenadoAI/fv2-realty-chat-3swcmc/internal/models"
)

// chatGreeting opens every session's transcript.
const chatGreeting = "Hi! I'm your AI real estate assistant. Ask me about our " +
	"listings, neighborhoods, or the buying process."

// chatFallback is appended when the send fails or the agent reports
// failure. Both cases look identical in the transcript.
const chatFallback = "Sorry, I'm having trouble answering right now. Please try again in a moment."

// chatVisibleTurns caps how many turns are rendered; the transcript
// itself is unbounded and only the view follows the newest turn.
const chatVisibleTurns = 8

const chatSendTimeout = 30 * time.Second

// chatReplyMsg carries the agent's reply (or the failure to get one).
type chatReplyMsg struct {
	resp *api.ChatResponse
	err  error
}

// chatModel is the chat widget hosted by the landing page.
type chatModel struct {
	client *api.Client
	logger *slog.Logger
	theme  Theme

	input      textinput.Model
	spin       spinner.Model
	transcript []models.ChatTurn
	open       bool
	waiting    bool
	width      int
}

func newChatModel(client *api.Client, logger *slog.Logger, theme Theme) chatModel {
	in := textinput.New()
	in.Placeholder = "Ask about a property..."

	s := spinner.New()
	s.Spinner = spinner.Dot

	return chatModel{
		client: client,
		logger: logger,
		theme:  theme,
		input:  in,
		spin:   s,
	}
}

// toggle opens or closes the widget. The first open seeds the greeting.
func (m chatModel) toggle() (chatModel, tea.Cmd) {
	m.open = !m.open
	if !m.open {
		m.input.Blur()
		return m, nil
	}
	if len(m.transcript) == 0 {
		m.transcript = append(m.transcript, models.NewChatTurn(models.ChatRoleAgent, chatGreeting))
	}
	return m, m.input.Focus()
}

func (m chatModel) update(msg tea.Msg) (chatModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		if !m.open {
			return m, nil
		}
		switch msg.String() {
		case "esc":
			return m.toggle()
		case "enter":
			return m.submit()
		}

	case chatReplyMsg:
		return m.handleReply(msg), nil

	case spinner.TickMsg:
		if m.waiting {
			var cmd tea.Cmd
			m.spin, cmd = m.spin.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	if !m.open {
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submit sends the current input as a user turn. Blank input is ignored,
// and at most one request may be outstanding, so pressing enter while a
// reply is pending is a no-op.
func (m chatModel) submit() (chatModel, tea.Cmd) {
	text := strings.TrimSpace(m.input.Value())
	if text == "" || m.waiting {
		return m, nil
	}

	m.transcript = append(m.transcript, models.NewChatTurn(models.ChatRoleUser, text))
	m.input.SetValue("")
	m.waiting = true

	return m, tea.Batch(m.send(text), m.spin.Tick)
}

// handleReply appends exactly one agent turn. The user turn that
// triggered the send always stays in the transcript.
func (m chatModel) handleReply(msg chatReplyMsg) chatModel {
	m.waiting = false
	m.transcript = append(m.transcript, models.NewChatTurn(models.ChatRoleAgent, m.replyText(msg)))
	return m
}

func (m chatModel) replyText(msg chatReplyMsg) string {
	if msg.err != nil {
		m.logger.Error("chat send failed", "error", msg.err)
		return chatFallback
	}
	if !msg.resp.Success {
		m.logger.Warn("agent reported failure", "agent_error", errText(msg.resp.Error))
		return chatFallback
	}
	return msg.resp.Response
}

func errText(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// send performs the chat request in a command so Update never blocks.
func (m chatModel) send(text string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), chatSendTimeout)
		defer cancel()

		resp, err := m.client.SendChatMessage(ctx, text)
		return chatReplyMsg{resp: resp, err: err}
	}
}

func (m chatModel) capturingInput() bool {
	return m.open
}

func (m chatModel) resize(width int) chatModel {
	m.width = width
	return m
}

func (m chatModel) view() string {
	if !m.open {
		return m.theme.hintStyle().Render("Press c to chat with our agent")
	}

	var b strings.Builder
	b.WriteString(m.theme.agentStyle().Render("Chat with us") + "\n\n")

	for _, turn := range tailTurns(m.transcript, chatVisibleTurns) {
		switch turn.Role {
		case models.ChatRoleUser:
			b.WriteString(m.theme.accentStyle().Render("You:") + " " + turn.Content + "\n")
		case models.ChatRoleAgent:
			b.WriteString(m.theme.agentStyle().Render("Agent:") + " " + turn.Content + "\n")
		}
	}

	if m.waiting {
		b.WriteString(fmt.Sprintf("%s %sthinking...\n", m.theme.agentStyle().Render("Agent:"), m.spin.View()))
	}

	b.WriteString("\n" + m.input.View() + "\n")
	b.WriteString(m.theme.hintStyle().Render("enter send · esc close"))
	return b.String()
}

// tailTurns returns the newest n turns.
func tailTurns(turns []models.ChatTurn, n int) []models.ChatTurn {
	if len(turns) <= n {
		return turns
	}
	return turns[len(turns)-n:]
}
