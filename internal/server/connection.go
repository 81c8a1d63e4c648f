package server

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/gorilla/websocket"
)

const (
	// Time allowed to write a message to the peer
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer
	pongWait = 60 * time.Second

	// Send pings to peer with this period. Must be less than pongWait
	pingPeriod = (pongWait * 9) / 10

	// Maximum message size allowed from peer
	maxMessageSize = 8192
)

// Connection represents a WebSocket connection to a client
type Connection struct {
	conn        *websocket.Conn
	send        chan *Message
	sessionID   string
	logger      *log.Logger
	clock       quartz.Clock
	idleTimeout time.Duration
	ctx         context.Context
	cancel      context.CancelFunc
	closeOnce   sync.Once
}

// NewConnection creates a new connection wrapper. The clock is injected so
// idle timeouts can be driven by a mock in tests.
func NewConnection(conn *websocket.Conn, sessionID string, logger *log.Logger, clock quartz.Clock, idleTimeout time.Duration) *Connection {
	ctx, cancel := context.WithCancel(context.Background())

	return &Connection{
		conn:        conn,
		send:        make(chan *Message, 64),
		sessionID:   sessionID,
		logger:      logger.WithPrefix("conn").With("session", sessionID),
		clock:       clock,
		idleTimeout: idleTimeout,
		ctx:         ctx,
		cancel:      cancel,
	}
}

// Start begins handling the connection
func (c *Connection) Start() {
	go c.writePump()
	go c.readPump()
}

// Close closes the connection
func (c *Connection) Close() error {
	var err error
	c.closeOnce.Do(func() {
		c.cancel()
		close(c.send)
		err = c.conn.Close()
	})
	return err
}

// Done is closed when the connection has shut down.
func (c *Connection) Done() <-chan struct{} {
	return c.ctx.Done()
}

// SendMessage queues a message for delivery to the client
func (c *Connection) SendMessage(msg *Message) error {
	defer func() {
		if r := recover(); r != nil {
			// Channel was closed during shutdown; nothing to deliver to.
			c.logger.Debug("Attempted to send message on closed connection", "error", r)
		}
	}()

	select {
	case c.send <- msg:
		return nil
	case <-c.ctx.Done():
		return c.ctx.Err()
	default:
		c.logger.Warn("Connection send buffer full, closing connection")
		_ = c.Close()
		return ErrConnectionClosed
	}
}

// readPump reads messages from the client, resetting the idle timer on each
// one, and dispatches classification requests.
func (c *Connection) readPump() {
	defer c.Close()

	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	idle := c.clock.AfterFunc(c.idleTimeout, func() {
		c.logger.Info("Closing idle connection", "timeout", c.idleTimeout)
		_ = c.Close()
	})
	defer idle.Stop()

	for {
		_, raw, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				c.logger.Debug("Unexpected close", "error", err)
			}
			return
		}
		idle.Reset(c.idleTimeout)

		var msg Message
		if err := json.Unmarshal(raw, &msg); err != nil {
			c.sendError("", ErrorCodeBadMessage, "malformed message: "+err.Error())
			continue
		}

		c.handleMessage(&msg)
	}
}

// handleMessage resolves one request and queues the response.
func (c *Connection) handleMessage(msg *Message) {
	var (
		result *ResultData
		err    error
	)

	switch msg.Type {
	case MessageTypeClassifyPoker:
		var req ClassifyPokerData
		if err = json.Unmarshal(msg.Data, &req); err == nil {
			result, err = classifyPoker(req)
		}
	case MessageTypeClassifyYahtzee:
		var req ClassifyYahtzeeData
		if err = json.Unmarshal(msg.Data, &req); err == nil {
			result, err = classifyYahtzee(req)
		}
	default:
		c.sendError(msg.RequestID, ErrorCodeUnknownType, "unknown message type: "+string(msg.Type))
		return
	}

	if err != nil {
		c.sendError(msg.RequestID, ErrorCodeBadRequest, err.Error())
		return
	}

	response, err := NewMessage(MessageTypeResult, result)
	if err != nil {
		c.logger.Error("Failed to build response", "error", err)
		return
	}
	response.RequestID = msg.RequestID

	c.logger.Debug("Classified hand", "game", result.Game, "category", result.Category)
	_ = c.SendMessage(response)
}

func (c *Connection) sendError(requestID, code, message string) {
	msg, err := NewMessage(MessageTypeError, &ErrorData{Code: code, Message: message})
	if err != nil {
		return
	}
	msg.RequestID = requestID
	_ = c.SendMessage(msg)
}

// writePump writes queued messages and keeps the connection alive with pings.
func (c *Connection) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.Close()
	}()

	for {
		select {
		case msg, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			if err := c.conn.WriteJSON(msg); err != nil {
				c.logger.Debug("Write failed", "error", err)
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case <-c.ctx.Done():
			return
		}
	}
}
