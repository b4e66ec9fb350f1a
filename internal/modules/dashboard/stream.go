package dashboard

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

const streamInterval = 30 * time.Second

// Stream pushes the alert feed over a websocket so the dashboard refreshes
// without polling. One connection serves one tenant.
type Stream struct {
	service  *Service
	interval time.Duration
	upgrader websocket.Upgrader
}

func NewStream(service *Service) *Stream {
	return &Stream{
		service:  service,
		interval: streamInterval,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(*http.Request) bool { return true },
		},
	}
}

func (s *Stream) Serve(c *gin.Context, tenantID int64) {
	conn, err := s.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logrus.WithError(err).Warn("dashboard: websocket upgrade failed")
		return
	}
	defer conn.Close()

	ctx, cancel := context.WithCancel(c.Request.Context())
	defer cancel()

	// drain incoming frames so close messages are noticed
	go func() {
		defer cancel()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	filter := c.DefaultQuery("filtro", "semana")

	push := func() bool {
		alerts, err := s.service.Alerts(ctx, tenantID, filter)
		if err != nil {
			logrus.WithError(err).Warn("dashboard: alert refresh failed")
			return true
		}
		return conn.WriteJSON(alerts) == nil
	}

	if !push() {
		return
	}

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if !push() {
				return
			}
		}
	}
}
