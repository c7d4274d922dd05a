package websocket

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"petmedia-be/internal/dto"
	"petmedia-be/internal/service"

	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"
)

const (
	writeWait    = 10 * time.Second
	pongWait     = 60 * time.Second
	pingPeriod   = (pongWait * 9) / 10
	maxFrameSize = 4096
	mapSubKey    = "map"
	threadSubKey = "thread:"
)

// clientCommand is what the peer sends over the socket.
type clientCommand struct {
	Action   string `json:"action"`
	ThreadId string `json:"thread_id,omitempty"`
}

// Client is a middleman between one websocket connection and the hub. It
// also owns the live subscriptions opened on behalf of this connection;
// they are torn down when the connection goes away.
type Client struct {
	Hub *Hub

	Conn *websocket.Conn

	UserID uuid.UUID

	// Buffered channel of outbound messages.
	Send chan []byte

	liveSync  service.ILiveSyncService
	messaging service.IMessagingService

	subsMu sync.Mutex
	subs   map[string]func()
}

func (c *Client) push(payload map[string]interface{}) {
	data, err := json.Marshal(payload)
	if err != nil {
		return
	}
	select {
	case c.Send <- data:
	default:
		// Buffer full; the hub will reap this connection on the next push.
	}
}

func (c *Client) pushError(message string) {
	c.push(map[string]interface{}{"type": "error", "message": message})
}

func (c *Client) addSubscription(key string, stop func()) {
	c.subsMu.Lock()
	if prev, ok := c.subs[key]; ok {
		prev()
	}
	c.subs[key] = stop
	c.subsMu.Unlock()
}

func (c *Client) removeSubscription(key string) {
	c.subsMu.Lock()
	stop, ok := c.subs[key]
	if ok {
		delete(c.subs, key)
	}
	c.subsMu.Unlock()
	if ok {
		stop()
	}
}

// dropSubscriptions stops every live subscription. Called by the hub on
// unregister; each stop func is idempotent so racing with removeSubscription
// is fine.
func (c *Client) dropSubscriptions() {
	c.subsMu.Lock()
	subs := c.subs
	c.subs = map[string]func(){}
	c.subsMu.Unlock()
	for _, stop := range subs {
		stop()
	}
}

func (c *Client) handleCommand(ctx context.Context, cmd clientCommand) {
	switch cmd.Action {
	case "subscribe_thread":
		if cmd.ThreadId == "" {
			c.pushError("thread_id is required")
			return
		}
		threadId := cmd.ThreadId
		stop, err := c.liveSync.SubscribeThreadMessages(ctx, threadId,
			func(messages []*dto.MessageResponse) {
				c.push(map[string]interface{}{
					"type":      "thread_snapshot",
					"thread_id": threadId,
					"data":      messages,
				})
			},
			func(err error) {
				c.pushError("thread subscription failed: " + err.Error())
			},
		)
		if err != nil {
			c.pushError("could not subscribe: " + err.Error())
			return
		}
		c.addSubscription(threadSubKey+threadId, stop)

	case "subscribe_map":
		stop, err := c.liveSync.SubscribeMapSpots(ctx,
			func(spots []*dto.MapSpotResponse) {
				c.push(map[string]interface{}{
					"type": "map_snapshot",
					"data": spots,
				})
			},
			func(err error) {
				c.pushError("map subscription failed: " + err.Error())
			},
		)
		if err != nil {
			c.pushError("could not subscribe: " + err.Error())
			return
		}
		c.addSubscription(mapSubKey, stop)

	case "mark_read":
		if cmd.ThreadId == "" {
			c.pushError("thread_id is required")
			return
		}
		if _, err := c.messaging.MarkRead(ctx, c.UserID, cmd.ThreadId); err != nil {
			c.pushError("mark read failed: " + err.Error())
		}

	case "unsubscribe":
		if cmd.ThreadId != "" {
			c.removeSubscription(threadSubKey + cmd.ThreadId)
		} else {
			c.removeSubscription(mapSubKey)
		}

	default:
		c.pushError("unknown action: " + cmd.Action)
	}
}

// readPump pumps commands from the websocket connection into the services.
func (c *Client) readPump() {
	ctx, cancel := context.WithCancel(context.Background())
	defer func() {
		cancel()
		c.Hub.unregister <- c
		c.Conn.Close()
	}()
	c.Conn.SetReadLimit(maxFrameSize)
	c.Conn.SetReadDeadline(time.Now().Add(pongWait))
	c.Conn.SetPongHandler(func(string) error {
		c.Conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, raw, err := c.Conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.Hub.logger.Warn("Hub", "Unexpected close", map[string]interface{}{
					"user_id": c.UserID,
					"error":   err.Error(),
				})
			}
			break
		}

		var cmd clientCommand
		if err := json.Unmarshal(raw, &cmd); err != nil {
			c.pushError("invalid command payload")
			continue
		}
		c.handleCommand(ctx, cmd)
	}
}

// writePump pumps messages from the hub to the websocket connection.
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.Conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.Send:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			w, err := c.Conn.NextWriter(websocket.TextMessage)
			if err != nil {
				return
			}
			w.Write(message)

			// Flush anything queued behind this frame.
			n := len(c.Send)
			for i := 0; i < n; i++ {
				w.Write(<-c.Send)
			}

			if err := w.Close(); err != nil {
				return
			}
		case <-ticker.C:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
