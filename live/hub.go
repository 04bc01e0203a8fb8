// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package live

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/danielhkuo/rapid-raffle/session"
)

const (
	writeWait = 10 * time.Second
	// Snapshots queued per subscriber before it counts as stalled.
	sendBufferSize = 16
)

// Hub fans session snapshots out to WebSocket subscribers. The feed is
// purely advisory: clients render from it, but every state change happens
// over the plain HTTP endpoints.
type Hub struct {
	upgrader websocket.Upgrader

	mu   sync.Mutex
	subs map[string]map[*client]struct{}
}

type client struct {
	conn *websocket.Conn
	out  chan []byte
}

// NewHub creates an empty hub. checkOrigin decides which WebSocket origins
// may subscribe; nil allows all, matching the CORS default.
func NewHub(checkOrigin func(r *http.Request) bool) *Hub {
	if checkOrigin == nil {
		checkOrigin = func(*http.Request) bool { return true }
	}
	return &Hub{
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
			CheckOrigin:     checkOrigin,
		},
		subs: make(map[string]map[*client]struct{}),
	}
}

// Serve upgrades the request and subscribes it to sessionID until the peer
// disconnects. The initial snapshot is pushed immediately so a fresh tab
// renders without waiting for the next mutation.
func (h *Hub) Serve(w http.ResponseWriter, r *http.Request, sess *session.Session) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.Error("websocket upgrade failed", "error", err)
		return
	}

	c := &client{
		conn: conn,
		out:  make(chan []byte, sendBufferSize),
	}

	h.mu.Lock()
	if h.subs[sess.ID] == nil {
		h.subs[sess.ID] = make(map[*client]struct{})
	}
	h.subs[sess.ID][c] = struct{}{}
	h.mu.Unlock()

	slog.Info("live subscriber connected", "session_id", sess.ID, "remote", r.RemoteAddr)

	go c.writePump()
	h.push(c, sess.Snapshot())

	// Reader loop exists only to notice disconnects; subscribers send nothing.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}

	h.unsubscribe(sess.ID, c)
	slog.Info("live subscriber disconnected", "session_id", sess.ID)
}

// Broadcast pushes a snapshot to every subscriber of the session. Slow
// subscribers whose buffers are full are dropped rather than allowed to
// stall the rest.
func (h *Hub) Broadcast(sessionID string, snap session.Snapshot) {
	if h == nil {
		return
	}

	payload, err := json.Marshal(snap)
	if err != nil {
		slog.Error("failed to marshal snapshot", "error", err)
		return
	}

	h.mu.Lock()
	var stalled []*client
	for c := range h.subs[sessionID] {
		select {
		case c.out <- payload:
		default:
			stalled = append(stalled, c)
		}
	}
	for _, c := range stalled {
		delete(h.subs[sessionID], c)
		close(c.out)
	}
	h.mu.Unlock()
}

func (h *Hub) push(c *client, snap session.Snapshot) {
	payload, err := json.Marshal(snap)
	if err != nil {
		slog.Error("failed to marshal snapshot", "error", err)
		return
	}
	select {
	case c.out <- payload:
	default:
	}
}

func (h *Hub) unsubscribe(sessionID string, c *client) {
	h.mu.Lock()
	if clients, ok := h.subs[sessionID]; ok {
		if _, subscribed := clients[c]; subscribed {
			delete(clients, c)
			close(c.out)
		}
		if len(clients) == 0 {
			delete(h.subs, sessionID)
		}
	}
	h.mu.Unlock()
}

func (c *client) writePump() {
	defer c.conn.Close()

	for msg := range c.out {
		c.conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			return
		}
	}

	c.conn.SetWriteDeadline(time.Now().Add(writeWait))
	c.conn.WriteMessage(websocket.CloseMessage, nil)
}
