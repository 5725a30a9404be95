package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FenadoAI/fv2-realty-chat-3swcmc/internal/api"
)

func TestNewAppAdminRouteStartsFetch(t *testing.T) {
	app := NewApp(api.New(""), testLogger(), RouteAdmin)
	assert.Equal(t, RouteAdmin, app.route)
	assert.True(t, app.admin.loading)
	assert.NotNil(t, app.Init())
}

func TestNewAppLandingRouteIsIdle(t *testing.T) {
	app := NewApp(api.New(""), testLogger(), RouteLanding)
	assert.Equal(t, RouteLanding, app.route)
	assert.False(t, app.admin.loading)
	assert.Nil(t, app.Init())
}

func TestAppForwardsAsyncResultsWhileOnOtherRoute(t *testing.T) {
	app := NewApp(api.New(""), testLogger(), RouteAdmin)
	app.route = RouteLanding // user navigated away mid-fetch

	model, _ := app.Update(propertiesMsg{seq: app.admin.fetchSeq, props: sampleProps()})
	updated, ok := model.(App)
	require.True(t, ok)
	assert.Len(t, updated.admin.props, 2, "admin keeps the result even when not active")
}

func TestLandingViewShowsFeaturedContent(t *testing.T) {
	m := newLandingModel(api.New(""), testLogger(), defaultTheme)
	view := m.view()

	assert.Contains(t, view, "Featured Properties")
	assert.Contains(t, view, "Modern Luxury Villa")
	assert.Contains(t, view, "$2,850,000")
	assert.Contains(t, view, "Seaside Retreat")
	assert.Contains(t, view, "$950,000")
	assert.Contains(t, view, "Our Services")
	assert.Contains(t, view, "Property Management")
	assert.Contains(t, view, "Press c to chat with our agent")
}

func TestLandingChatOpenChangesView(t *testing.T) {
	m := newLandingModel(api.New(""), testLogger(), defaultTheme)
	m.chat, _ = m.chat.toggle()

	view := m.view()
	assert.Contains(t, view, "Chat with us")
	assert.Contains(t, view, chatGreeting)
	assert.NotContains(t, view, "Press c to chat")
}
