package handler

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// RealtimeHandler accepts websocket connections from the frontend. The
// channel carries no messages yet; the frontend only opens it and listens.
type RealtimeHandler struct {
	upgrader websocket.Upgrader
	logger   *slog.Logger
}

// NewRealtimeHandler is the constructor for RealtimeHandler, injected by Fx.
func NewRealtimeHandler(logger *slog.Logger) *RealtimeHandler {
	return &RealtimeHandler{
		upgrader: websocket.Upgrader{
			// The frontend is served from this same process; cross-origin
			// pages get the same answer the original server gave.
			CheckOrigin: func(*http.Request) bool { return true },
		},
		logger: logger,
	}
}

// Connect upgrades the request and holds the connection until the client
// goes away.
func (h *RealtimeHandler) Connect(c echo.Context) error {
	conn, err := h.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return errors.Wrap(err, "websocket upgrade failed")
	}
	defer conn.Close()

	remote := conn.RemoteAddr().String()
	h.logger.Info("Realtime client connected", slog.String("remote", remote))

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}

	h.logger.Info("Realtime client disconnected", slog.String("remote", remote))

	return nil
}
