package websocket

import (
	"petmedia-be/internal/service"

	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"
)

// ServeWs wires one websocket connection into the hub, giving it access to
// the livesync and messaging services for subscription commands.
func ServeWs(hub *Hub, c *websocket.Conn, userID uuid.UUID, liveSync service.ILiveSyncService, messaging service.IMessagingService) {
	client := &Client{
		Hub:       hub,
		Conn:      c,
		UserID:    userID,
		Send:      make(chan []byte, 256),
		liveSync:  liveSync,
		messaging: messaging,
		subs:      make(map[string]func()),
	}
	client.Hub.register <- client

	go client.writePump()
	client.readPump()
}
