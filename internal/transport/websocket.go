package transport

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const (
	defaultHandshakeTimeout = 3 * time.Second
	defaultWriteDeadline    = 5 * time.Second

	subscriptionBufferSize = 42
)

var (
	ErrNotConnected = errors.New("not connected")
)

// Connection is the websocket implementation of Service. It is built
// once per process and injected into everything that needs the wire.
// Initialize is idempotent: the first call dials, later calls are no-ops
// while the connection is open.
type Connection struct {
	ctx    context.Context
	logger *zap.Logger
	url    string
	dialer *websocket.Dialer

	mutex             sync.Mutex
	conn              *websocket.Conn
	status            ConnectionStatus
	subscribers       []*messageSubscription
	statusSubscribers []ConnectionStatusSubscription
}

// messageSubscription pairs the delivery channel with a done signal.
// Only the read loop ever closes the channel; Unsubscribe closes done,
// which aborts any in-flight blocked send without racing it.
type messageSubscription struct {
	ch   chan []byte
	done chan struct{}
}

func NewConnection(ctx context.Context, endpoint string, logger *zap.Logger) *Connection {
	return &Connection{
		ctx:    ctx,
		logger: logger.Named("transport").With(zap.String("connectionID", uuid.NewString())),
		url:    endpoint,
		dialer: &websocket.Dialer{
			HandshakeTimeout: defaultHandshakeTimeout,
		},
	}
}

func (c *Connection) Initialize() error {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	if c.conn != nil {
		return nil
	}

	conn, _, err := c.dialer.DialContext(c.ctx, c.url, nil)
	if err != nil {
		return errors.Wrap(err, "failed to dial game server")
	}

	// The server drives the heartbeat. Gorilla's default ping handler
	// answers with a pong, nothing to do on our side.
	c.conn = conn
	c.setStatus(ConnectionStatus{IsOnline: true})
	c.logger.Info("connection open", zap.String("url", c.url))

	go c.readLoop(conn)

	return nil
}

func (c *Connection) Send(payload []byte) error {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	if c.conn == nil {
		return ErrNotConnected
	}

	c.logger.Debug("sending frame", zap.ByteString("payload", payload))

	err := c.conn.SetWriteDeadline(time.Now().Add(defaultWriteDeadline))
	if err != nil {
		return errors.Wrap(err, "failed to set write deadline")
	}

	err = c.conn.WriteMessage(websocket.TextMessage, payload)
	return errors.Wrap(err, "failed to write frame")
}

func (c *Connection) SubscribeToMessages() *MessagesSubscription {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	sub := &messageSubscription{
		ch:   make(chan []byte, subscriptionBufferSize),
		done: make(chan struct{}),
	}
	c.subscribers = append(c.subscribers, sub)
	return &MessagesSubscription{
		Ch: sub.ch,
		Unsubscribe: func() {
			c.unsubscribe(sub)
		},
	}
}

func (c *Connection) Status() ConnectionStatus {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	return c.status
}

func (c *Connection) SubscribeToConnectionStatus() ConnectionStatusSubscription {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	sub := make(ConnectionStatusSubscription, 2)
	c.statusSubscribers = append(c.statusSubscribers, sub)
	return sub
}

// Stop closes the socket. Subscriber channels are closed by the read
// loop once it observes the closed connection, so an in-flight fan-out
// never races a channel close.
func (c *Connection) Stop() {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	if c.conn != nil {
		_ = c.conn.Close()
	}
}

func (c *Connection) readLoop(conn *websocket.Conn) {
	for {
		messageType, payload, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				c.logger.Info("connection closed", zap.Error(err))
			} else {
				c.logger.Error("read failed", zap.Error(err))
			}
			c.mutex.Lock()
			c.teardown()
			c.mutex.Unlock()
			return
		}

		if messageType != websocket.TextMessage {
			c.logger.Warn("ignoring non-text frame", zap.Int("messageType", messageType))
			continue
		}

		c.logger.Debug("frame received", zap.ByteString("payload", payload))
		c.fanOut(payload)
	}
}

func (c *Connection) fanOut(payload []byte) {
	c.mutex.Lock()
	subscribers := make([]*messageSubscription, len(c.subscribers))
	copy(subscribers, c.subscribers)
	c.mutex.Unlock()

	for _, sub := range subscribers {
		select {
		case sub.ch <- payload:
		case <-sub.done:
		case <-c.ctx.Done():
			return
		}
	}
}

// teardown closes the connection and all subscriber channels.
// Callers must hold the mutex.
func (c *Connection) teardown() {
	if c.conn == nil {
		return
	}

	_ = c.conn.Close()
	c.conn = nil
	c.setStatus(ConnectionStatus{IsOnline: false})

	for _, sub := range c.subscribers {
		close(sub.ch)
	}
	c.subscribers = nil
}

func (c *Connection) setStatus(status ConnectionStatus) {
	if c.status == status {
		return
	}
	c.status = status
	for _, sub := range c.statusSubscribers {
		select {
		case sub <- status:
		default:
			// Slow subscribers only miss intermediate statuses.
		}
	}
}

// unsubscribe drops the subscription from the fan-out list and signals
// done. The delivery channel is left open: closing it here would race a
// fan-out that already snapshotted the list, and after removal nothing
// sends on it anyway.
func (c *Connection) unsubscribe(sub *messageSubscription) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	for i, s := range c.subscribers {
		if s == sub {
			c.subscribers = append(c.subscribers[:i], c.subscribers[i+1:]...)
			close(s.done)
			return
		}
	}
}
