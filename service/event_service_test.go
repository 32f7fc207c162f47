package service

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tieubaoca/memobox-be/types"
)

func TestEventService_Broadcast(t *testing.T) {
	events := NewEventService()
	server := httptest.NewServer(http.HandlerFunc(events.HandleEvents))
	defer server.Close()

	wsURL := "ws" + strings.TrimPrefix(server.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	defer conn.Close()

	// Registration happens in the server goroutine; wait for it.
	require.Eventually(t, func() bool {
		return events.ClientCount() == 1
	}, time.Second, 10*time.Millisecond)

	events.Publish(types.EventDocumentCreated, "doc-1")

	conn.SetReadDeadline(time.Now().Add(time.Second))
	var event types.DocumentEvent
	require.NoError(t, conn.ReadJSON(&event))
	assert.Equal(t, types.EventDocumentCreated, event.Type)
	assert.Equal(t, "doc-1", event.DocumentID)
	assert.NotEmpty(t, event.Timestamp)
}

func TestEventService_ClientGone(t *testing.T) {
	events := NewEventService()
	server := httptest.NewServer(http.HandlerFunc(events.HandleEvents))
	defer server.Close()

	wsURL := "ws" + strings.TrimPrefix(server.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		return events.ClientCount() == 1
	}, time.Second, 10*time.Millisecond)

	conn.Close()
	require.Eventually(t, func() bool {
		return events.ClientCount() == 0
	}, time.Second, 10*time.Millisecond)

	// Publishing with no clients is a no-op.
	events.Publish(types.EventDocumentDeleted, "doc-1")
}
