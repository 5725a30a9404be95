package ui

import (
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FenadoAI/fv2-realty-chat-3swcmc/internal/api"
	"github.com/FenadoAI/fv2-realty-chat-3swcmc/internal/models"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestChat(t *testing.T) chatModel {
	t.Helper()
	return newChatModel(api.New(""), testLogger(), defaultTheme)
}

func TestChatToggleSeedsGreetingOnce(t *testing.T) {
	m := newTestChat(t)

	m, _ = m.toggle()
	assert.True(t, m.open)
	require.Len(t, m.transcript, 1)
	assert.Equal(t, models.ChatRoleAgent, m.transcript[0].Role)
	assert.Equal(t, chatGreeting, m.transcript[0].Content)

	// Closing and reopening does not seed another greeting.
	m, _ = m.toggle()
	assert.False(t, m.open)
	m, _ = m.toggle()
	assert.Len(t, m.transcript, 1)
}

func TestChatSubmitIgnoresBlankInput(t *testing.T) {
	m := newTestChat(t)
	m, _ = m.toggle()

	m.input.SetValue("   ")
	m, cmd := m.submit()
	assert.Nil(t, cmd)
	assert.False(t, m.waiting)
	assert.Len(t, m.transcript, 1) // just the greeting
}

func TestChatSubmitAppendsUserTurn(t *testing.T) {
	m := newTestChat(t)
	m, _ = m.toggle()

	m.input.SetValue("Do you have condos?")
	m, cmd := m.submit()
	require.NotNil(t, cmd)
	assert.True(t, m.waiting)
	assert.Empty(t, m.input.Value())

	require.Len(t, m.transcript, 2)
	assert.Equal(t, models.ChatRoleUser, m.transcript[1].Role)
	assert.Equal(t, "Do you have condos?", m.transcript[1].Content)
}

func TestChatSubmitWhileWaitingIsNoOp(t *testing.T) {
	m := newTestChat(t)
	m, _ = m.toggle()

	m.input.SetValue("first")
	m, _ = m.submit()
	require.True(t, m.waiting)

	m.input.SetValue("second")
	m, cmd := m.submit()
	assert.Nil(t, cmd)
	assert.Len(t, m.transcript, 2) // greeting + first user turn only
}

func TestChatReplySuccess(t *testing.T) {
	m := newTestChat(t)
	m, _ = m.toggle()
	m.input.SetValue("hi")
	m, _ = m.submit()

	m = m.handleReply(chatReplyMsg{resp: &api.ChatResponse{Success: true, Response: "Hello!"}})
	assert.False(t, m.waiting)
	require.Len(t, m.transcript, 3)
	assert.Equal(t, models.ChatRoleAgent, m.transcript[2].Role)
	assert.Equal(t, "Hello!", m.transcript[2].Content)
}

func TestChatReplyErrorUsesFallback(t *testing.T) {
	m := newTestChat(t)
	m, _ = m.toggle()
	m.input.SetValue("hi")
	m, _ = m.submit()

	m = m.handleReply(chatReplyMsg{err: errors.New("connection refused")})
	require.Len(t, m.transcript, 3)
	assert.Equal(t, chatFallback, m.transcript[2].Content)
	// The user turn stays in the transcript even though the send failed.
	assert.Equal(t, models.ChatRoleUser, m.transcript[1].Role)
}

func TestChatReplyAgentFailureUsesSameFallback(t *testing.T) {
	m := newTestChat(t)
	m, _ = m.toggle()
	m.input.SetValue("hi")
	m, _ = m.submit()

	agentErr := "llm unavailable"
	m = m.handleReply(chatReplyMsg{resp: &api.ChatResponse{Success: false, Error: &agentErr}})
	require.Len(t, m.transcript, 3)
	assert.Equal(t, chatFallback, m.transcript[2].Content)
}

func TestTailTurns(t *testing.T) {
	turns := make([]models.ChatTurn, 12)
	for i := range turns {
		turns[i] = models.NewChatTurn(models.ChatRoleUser, string(rune('a'+i)))
	}

	tail := tailTurns(turns, 8)
	require.Len(t, tail, 8)
	assert.Equal(t, turns[4].ID, tail[0].ID)
	assert.Equal(t, turns[11].ID, tail[7].ID)

	short := tailTurns(turns[:3], 8)
	assert.Len(t, short, 3)
}
