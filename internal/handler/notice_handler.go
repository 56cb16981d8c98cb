package handler

import (
	"github.com/abhi-r/verdant/internal/pkg/logger"
	internalWS "github.com/abhi-r/verdant/internal/websocket"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
)

// NoticeHandler exposes the per-session websocket used for transient
// UI notices. The session id is the credential: it is unguessable and
// short lived, so the handshake carries no token.
type NoticeHandler struct {
	hub    *internalWS.Hub
	logger logger.ILogger
}

func NewNoticeHandler(hub *internalWS.Hub, log logger.ILogger) *NoticeHandler {
	return &NoticeHandler{
		hub:    hub,
		logger: log,
	}
}

func (h *NoticeHandler) RegisterRoutes(app *fiber.App) {
	app.Get("/ws/notices/:sessionId", h.ServeWs)
}

func (h *NoticeHandler) ServeWs(c *fiber.Ctx) error {
	sessionID := c.Params("sessionId")
	if sessionID == "" {
		return fiber.ErrBadRequest
	}

	if websocket.IsWebSocketUpgrade(c) {
		return websocket.New(func(conn *websocket.Conn) {
			h.logger.Info("NoticeHandler", "Starting notice session", map[string]interface{}{"session_id": sessionID})
			internalWS.ServeWs(h.hub, conn, sessionID)
			h.logger.Info("NoticeHandler", "Notice session ended", map[string]interface{}{"session_id": sessionID})
		})(c)
	}
	return fiber.ErrUpgradeRequired
}
