package handler

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/logscope/backend/internal/model"
	"github.com/logscope/backend/internal/notify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dialDashboard(t *testing.T, hub *notify.Hub) *websocket.Conn {
	t.Helper()
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.GET("/ws/dashboard", DashboardWS(hub))

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	url := "ws" + strings.TrimPrefix(server.URL, "http") + "/ws/dashboard"
	conn, resp, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	if resp != nil && resp.Body != nil {
		resp.Body.Close()
	}
	t.Cleanup(func() { conn.Close() })

	// 핸들러가 허브에 구독을 마칠 때까지 대기
	require.Eventually(t, func() bool {
		return hub.SubscriberCount() == 1
	}, time.Second, 10*time.Millisecond)

	return conn
}

func TestDashboardWSStreamsEvents(t *testing.T) {
	hub := notify.NewHub()
	conn := dialDashboard(t, hub)

	hub.Publish(notify.Event{
		Service:   "payments",
		Status:    model.StatusError,
		Severity:  model.SeverityMedium,
		Total:     2,
		Errors:    1,
		Warnings:  1,
		Source:    model.SourcePattern,
		Timestamp: time.Now(),
	})

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))

	var event notify.Event
	require.NoError(t, conn.ReadJSON(&event))

	assert.Equal(t, "payments", event.Service)
	assert.Equal(t, model.StatusError, event.Status)
	assert.Equal(t, model.SeverityMedium, event.Severity)
	assert.Equal(t, 2, event.Total)
	assert.Equal(t, model.SourcePattern, event.Source)
}

func TestDashboardWSUnsubscribesOnDisconnect(t *testing.T) {
	hub := notify.NewHub()
	conn := dialDashboard(t, hub)

	require.NoError(t, conn.Close())

	require.Eventually(t, func() bool {
		return hub.SubscriberCount() == 0
	}, time.Second, 10*time.Millisecond)
}
