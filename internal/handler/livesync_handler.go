package handler

import (
	"petmedia-be/internal/pkg/logger"
	"petmedia-be/internal/pkg/serverutils"
	"petmedia-be/internal/service"
	internalWS "petmedia-be/internal/websocket"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"
)

// LiveSyncHandler upgrades authenticated clients onto the websocket hub,
// where they can open thread and map subscriptions.
type LiveSyncHandler struct {
	hub       *internalWS.Hub
	liveSync  service.ILiveSyncService
	messaging service.IMessagingService
	logger    logger.ILogger
}

func NewLiveSyncHandler(hub *internalWS.Hub, liveSync service.ILiveSyncService, messaging service.IMessagingService, log logger.ILogger) *LiveSyncHandler {
	return &LiveSyncHandler{
		hub:       hub,
		liveSync:  liveSync,
		messaging: messaging,
		logger:    log,
	}
}

// ServeWs handles websocket requests from the peer. Browsers cannot send
// an Authorization header on the upgrade request, so the token also comes
// in as a query parameter.
func (h *LiveSyncHandler) ServeWs(c *fiber.Ctx) error {
	tokenStr := c.Query("token")
	if tokenStr == "" {
		authHeader := c.Get("Authorization")
		if len(authHeader) > 7 && authHeader[:7] == "Bearer " {
			tokenStr = authHeader[7:]
		}
	}
	if tokenStr == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Missing token (query 'token' or header 'Authorization')"})
	}

	userIDStr, err := serverutils.ParseBearerToken(tokenStr)
	if err != nil {
		h.logger.Warn("LiveSyncHandler", "Invalid token in WS handshake", map[string]interface{}{"error": err.Error()})
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid user ID format in token"})
	}

	if websocket.IsWebSocketUpgrade(c) {
		return websocket.New(func(conn *websocket.Conn) {
			h.logger.Info("LiveSyncHandler", "Starting WebSocket session", map[string]interface{}{"user_id": userID})
			internalWS.ServeWs(h.hub, conn, userID, h.liveSync, h.messaging)
			h.logger.Info("LiveSyncHandler", "WebSocket session ended", map[string]interface{}{"user_id": userID})
		})(c)
	}
	return fiber.ErrUpgradeRequired
}

// RegisterRoutes registers the livesync websocket endpoint.
func (h *LiveSyncHandler) RegisterRoutes(router fiber.Router) {
	group := router.Group("/livesync/v1")
	group.Get("/ws", h.ServeWs)
}
