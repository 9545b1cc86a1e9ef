package arena

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"
)

const (
	// Time allowed to write a message to the peer
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer
	pongWait = 60 * time.Second

	// Send pings to peer with this period, must be less than pongWait
	pingPeriod = (pongWait * 9) / 10

	// Maximum message size allowed from peer
	maxMessageSize = 8192
)

// Connection wraps one websocket client. Requests on a connection are
// answered in arrival order; responses and errors carry the request_id of
// the message that caused them.
type Connection struct {
	conn      *websocket.Conn
	svc       *Service
	send      chan *Message
	logger    *log.Logger
	ctx       context.Context
	cancel    context.CancelFunc
	closeOnce sync.Once
}

// NewConnection creates a connection around an upgraded websocket.
func NewConnection(conn *websocket.Conn, svc *Service, logger *log.Logger) *Connection {
	ctx, cancel := context.WithCancel(context.Background())
	return &Connection{
		conn:   conn,
		svc:    svc,
		send:   make(chan *Message, 256),
		logger: logger,
		ctx:    ctx,
		cancel: cancel,
	}
}

// Start launches the read and write pumps.
func (c *Connection) Start() {
	go c.writePump()
	go c.readPump()
}

// Close tears the connection down. Safe to call more than once.
func (c *Connection) Close() error {
	c.closeOnce.Do(func() {
		c.cancel()
		close(c.send)
		if err := c.conn.Close(); err != nil {
			c.logger.Debug("Error closing websocket", "error", err)
		}
	})
	return nil
}

// SendMessage queues a message for the write pump. A full buffer closes the
// connection rather than blocking the caller.
func (c *Connection) SendMessage(msg *Message) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("connection closed")
		}
	}()

	select {
	case c.send <- msg:
		return nil
	default:
		c.Close()
		return fmt.Errorf("send buffer full")
	}
}

// writePump pushes queued messages to the peer and keeps the connection
// alive with periodic pings.
func (c *Connection) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-c.ctx.Done():
			return

		case msg, ok := <-c.send:
			if err := c.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				return
			}
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteJSON(msg); err != nil {
				c.logger.Debug("Write failed", "error", err)
				return
			}

		case <-ticker.C:
			if err := c.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				return
			}
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// readPump pulls messages from the peer and dispatches them.
func (c *Connection) readPump() {
	defer c.Close()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		var msg Message
		if err := c.conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure, websocket.CloseNormalClosure) {
				c.logger.Debug("Unexpected close", "error", err)
			}
			return
		}
		c.handleMessage(&msg)
	}
}

// handleMessage dispatches one request. Handlers run inline, so a slow
// request holds up later ones on the same connection; the service timeout
// bounds how long that can last.
func (c *Connection) handleMessage(msg *Message) {
	switch msg.Type {
	case MessageTypeDecisionRequest:
		var req DecisionRequestData
		if err := json.Unmarshal(msg.Data, &req); err != nil {
			c.sendError(msg.RequestID, "invalid_message", "Failed to parse decision request")
			return
		}
		resp, err := c.svc.Decide(req)
		if err != nil {
			c.sendError(msg.RequestID, "decision_failed", err.Error())
			return
		}
		c.respond(MessageTypeDecisionResponse, msg.RequestID, resp)

	case MessageTypeBattleRequest:
		var req BattleRequestData
		if err := json.Unmarshal(msg.Data, &req); err != nil {
			c.sendError(msg.RequestID, "invalid_message", "Failed to parse battle request")
			return
		}
		resp, err := c.svc.Battle(req)
		if err != nil {
			c.sendError(msg.RequestID, "battle_failed", err.Error())
			return
		}
		c.respond(MessageTypeBattleResponse, msg.RequestID, resp)

	case MessageTypePresetList:
		c.respond(MessageTypePresets, msg.RequestID, c.svc.Presets())

	case MessageTypeBestiaryList:
		data, err := c.svc.Bestiary()
		if err != nil {
			c.sendError(msg.RequestID, "bestiary_failed", err.Error())
			return
		}
		c.respond(MessageTypeBestiary, msg.RequestID, data)

	default:
		c.sendError(msg.RequestID, "unknown_message_type", "Unknown message type: "+msg.Type.String())
	}
}

// respond wraps a payload in an envelope carrying the request id and queues
// it for the client.
func (c *Connection) respond(msgType MessageType, requestID string, data interface{}) {
	msg, err := NewMessage(msgType, data)
	if err != nil {
		c.logger.Error("Failed to build response", "type", msgType, "error", err)
		return
	}
	msg.RequestID = requestID

	if err := c.SendMessage(msg); err != nil {
		c.logger.Debug("Failed to send response", "type", msgType, "error", err)
	}
}

func (c *Connection) sendError(requestID, code, message string) {
	c.respond(MessageTypeError, requestID, ErrorData{Code: code, Message: message})
}
