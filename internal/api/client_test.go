package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FenadoAI/fv2-realty-chat-3swcmc/internal/models"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(srv.URL)
}

func TestHealth(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/", r.URL.Path)
		json.NewEncoder(w).Encode(HealthResponse{Message: "Hello World"})
	})

	resp, err := c.Health(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Hello World", resp.Message)
}

func TestListProperties_QueryParams(t *testing.T) {
	minPrice, bedrooms := 500000, 3
	var gotQuery string

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/properties", r.URL.Path)
		gotQuery = r.URL.RawQuery
		json.NewEncoder(w).Encode([]models.Property{{ID: "p1", Title: "Villa", Price: 950000}})
	})

	props, err := c.ListProperties(context.Background(), ListOptions{
		Status:       "active",
		PropertyType: "house",
		MinPrice:     &minPrice,
		Bedrooms:     &bedrooms,
		Limit:        10,
	})
	require.NoError(t, err)
	require.Len(t, props, 1)
	assert.Equal(t, "Villa", props[0].Title)

	assert.Contains(t, gotQuery, "status=active")
	assert.Contains(t, gotQuery, "property_type=house")
	assert.Contains(t, gotQuery, "min_price=500000")
	assert.Contains(t, gotQuery, "bedrooms=3")
	assert.Contains(t, gotQuery, "limit=10")
	assert.NotContains(t, gotQuery, "max_price")
}

func TestListProperties_NoFilters(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.URL.RawQuery)
		json.NewEncoder(w).Encode([]models.Property{})
	})

	props, err := c.ListProperties(context.Background(), ListOptions{})
	require.NoError(t, err)
	assert.Empty(t, props)
}

func TestGetProperty(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/properties/abc123", r.URL.Path)
		json.NewEncoder(w).Encode(models.Property{ID: "abc123", Title: "Penthouse"})
	})

	p, err := c.GetProperty(context.Background(), "abc123")
	require.NoError(t, err)
	assert.Equal(t, "Penthouse", p.Title)
}

func TestCreateProperty(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/properties", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var payload models.PropertyPayload
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "New Home", payload.Title)
		assert.Equal(t, 450000, payload.Price)

		json.NewEncoder(w).Encode(models.Property{ID: "new1", Title: payload.Title, Status: models.StatusActive})
	})

	p, err := c.CreateProperty(context.Background(), models.PropertyPayload{Title: "New Home", Price: 450000})
	require.NoError(t, err)
	assert.Equal(t, "new1", p.ID)
	assert.Equal(t, models.StatusActive, p.Status)
}

func TestUpdateProperty(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/properties/p9", r.URL.Path)
		json.NewEncoder(w).Encode(models.Property{ID: "p9", Title: "Renamed"})
	})

	p, err := c.UpdateProperty(context.Background(), "p9", models.PropertyPayload{Title: "Renamed"})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", p.Title)
}

func TestDeleteProperty(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/properties/p9", r.URL.Path)
		json.NewEncoder(w).Encode(DeleteResponse{Message: "Property deleted successfully"})
	})

	resp, err := c.DeleteProperty(context.Background(), "p9")
	require.NoError(t, err)
	assert.Equal(t, "Property deleted successfully", resp.Message)
}

func TestSendChatMessage(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/chat", r.URL.Path)

		var req map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "What homes are available?", req["message"])
		assert.Equal(t, "real_estate", req["agent_type"])

		json.NewEncoder(w).Encode(ChatResponse{
			Success:      true,
			Response:     "We have 12 active listings.",
			AgentType:    "real_estate",
			Capabilities: []string{"general_chat", "web_search"},
		})
	})

	resp, err := c.SendChatMessage(context.Background(), "What homes are available?")
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, "We have 12 active listings.", resp.Response)
}

func TestSeedProperties(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/seed-properties", r.URL.Path)
		json.NewEncoder(w).Encode(SeedResponse{Message: "Successfully seeded 6 properties"})
	})

	resp, err := c.SeedProperties(context.Background())
	require.NoError(t, err)
	assert.Contains(t, resp.Message, "seeded")
}

func TestServerErrorWithDetail(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"detail": "Property not found"})
	})

	_, err := c.GetProperty(context.Background(), "missing")
	require.Error(t, err)
	assert.True(t, IsServerError(err))
	assert.False(t, IsNetworkError(err))

	var se *ServerError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, http.StatusNotFound, se.StatusCode)
	assert.Equal(t, "Property not found", se.Message)
}

func TestServerErrorWithoutDetail(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("not json"))
	})

	_, err := c.Health(context.Background())
	require.Error(t, err)

	var se *ServerError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, http.StatusText(http.StatusInternalServerError), se.Message)
}

func TestNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	c := New(srv.URL)
	srv.Close()

	_, err := c.Health(context.Background())
	require.Error(t, err)
	assert.True(t, IsNetworkError(err))
	assert.False(t, IsServerError(err))
}

func TestNewTrimsTrailingSlash(t *testing.T) {
	c := New("http://example.com/")
	assert.Equal(t, "http://example.com", c.baseURL)

	c = New("")
	assert.Equal(t, DefaultBaseURL, c.baseURL)
}
