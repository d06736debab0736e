package handler

import (
	"context"
	"net/http"
	"time"

	"bitinglip/pkg/events"
	"bitinglip/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = pongWait * 9 / 10
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // dev front-ends run on other ports
	},
}

// EventsHandler streams resource events over WebSocket
type EventsHandler struct {
	bus events.Bus
}

// NewEventsHandler creates events handler
func NewEventsHandler(bus events.Bus) *EventsHandler {
	return &EventsHandler{bus: bus}
}

// Stream upgrades the connection and forwards every bus event as JSON
// @Router /ws [get]
func (h *EventsHandler) Stream(c *gin.Context) {
	ws, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logger.ErrorCtx(c.Request.Context(), "Failed to upgrade to websocket: %v", err)
		return
	}
	defer ws.Close()

	ctx, cancel := context.WithCancel(c.Request.Context())
	defer cancel()

	ch, unsubscribe, err := h.bus.Subscribe(ctx)
	if err != nil {
		logger.ErrorCtx(ctx, "Failed to subscribe to events: %v", err)
		ws.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseInternalServerErr, "event stream unavailable"),
			time.Now().Add(writeWait))
		return
	}
	defer unsubscribe()

	logger.InfoCtx(ctx, "websocket client connected: %s", c.ClientIP())

	// Reader: handles pongs and notices client disconnects
	go func() {
		defer cancel()
		ws.SetReadDeadline(time.Now().Add(pongWait))
		ws.SetPongHandler(func(string) error {
			return ws.SetReadDeadline(time.Now().Add(pongWait))
		})
		for {
			if _, _, err := ws.ReadMessage(); err != nil {
				return
			}
		}
	}()

	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.InfoCtx(ctx, "websocket client disconnected: %s", c.ClientIP())
			return
		case e, ok := <-ch:
			if !ok {
				return
			}
			ws.SetWriteDeadline(time.Now().Add(writeWait))
			if err := ws.WriteJSON(e); err != nil {
				logger.WarnCtx(ctx, "websocket write failed: %v", err)
				return
			}
		case <-ticker.C:
			ws.SetWriteDeadline(time.Now().Add(writeWait))
			if err := ws.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
