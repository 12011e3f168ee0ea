package remote

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const samplePayload = `{
  "tickets": [
    {"id": "CAM-1", "title": "Update user profile page UI", "tag": ["Feature request"], "userId": "usr-1", "status": "Todo", "priority": 4},
    {"id": "CAM-2", "title": "Add multi-language support", "tag": ["Feature Request"], "userId": "usr-2", "status": "In progress"}
  ],
  "users": [
    {"id": "usr-1", "name": "Anoop Sharma", "available": false},
    {"id": "usr-2", "name": "Yogesh", "available": true}
  ]
}`

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
}

func newTestServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("expected GET, got %s", r.Method)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestSource_Fetch(t *testing.T) {
	srv := newTestServer(t, http.StatusOK, samplePayload)
	source := NewSource(srv.URL, time.Second, testLogger())

	tickets, users, err := source.Fetch(context.Background())
	require.NoError(t, err)

	require.Len(t, tickets, 2)
	assert.Equal(t, "CAM-1", tickets[0].ID)
	assert.Equal(t, "Todo", tickets[0].Status)
	assert.Equal(t, "usr-1", tickets[0].UserID)
	assert.Equal(t, []string{"Feature request"}, tickets[0].Tags)
	require.NotNil(t, tickets[0].Priority)
	assert.Equal(t, 4, *tickets[0].Priority)
	assert.Nil(t, tickets[1].Priority)

	require.Len(t, users, 2)
	assert.Equal(t, "Anoop Sharma", users[0].Name)
	assert.True(t, users[1].Available)
}

func TestSource_FetchErrors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{name: "ошибка сервера", status: http.StatusInternalServerError, body: `{"error":"boom"}`},
		{name: "не найдено", status: http.StatusNotFound, body: ``},
		{name: "битый JSON", status: http.StatusOK, body: `{"tickets": [`},
		{name: "нет пользователей", status: http.StatusOK, body: `{"tickets": []}`},
		{name: "нет тикетов", status: http.StatusOK, body: `{"users": []}`},
		{name: "null вместо массива", status: http.StatusOK, body: `{"tickets": null, "users": []}`},
		{name: "не объект", status: http.StatusOK, body: `[1, 2, 3]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newTestServer(t, tt.status, tt.body)
			source := NewSource(srv.URL, time.Second, testLogger())

			tickets, users, err := source.Fetch(context.Background())
			require.Error(t, err)
			assert.Nil(t, tickets)
			assert.Nil(t, users)
		})
	}
}

func TestSource_FetchMissingShape(t *testing.T) {
	srv := newTestServer(t, http.StatusOK, `{"users": []}`)
	source := NewSource(srv.URL, time.Second, testLogger())

	_, _, err := source.Fetch(context.Background())
	assert.ErrorIs(t, err, ErrUnexpectedStructure)
}

func TestSource_FetchEmptyLists(t *testing.T) {
	srv := newTestServer(t, http.StatusOK, `{"tickets": [], "users": []}`)
	source := NewSource(srv.URL, time.Second, testLogger())

	tickets, users, err := source.Fetch(context.Background())
	require.NoError(t, err)
	assert.Empty(t, tickets)
	assert.Empty(t, users)
}

func TestSource_FetchNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	source := NewSource(url, time.Second, testLogger())
	_, _, err := source.Fetch(context.Background())
	assert.Error(t, err)
}

func TestSource_FetchHonoursContext(t *testing.T) {
	srv := newTestServer(t, http.StatusOK, samplePayload)
	source := NewSource(srv.URL, time.Second, testLogger())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := source.Fetch(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
