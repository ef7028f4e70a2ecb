package client

import (
	"context"
	"reflect"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/fullmoon-games/werewolf-cli/internal/transport"
	"github.com/fullmoon-games/werewolf-cli/pkg/game"
	"github.com/fullmoon-games/werewolf-cli/pkg/protocol"
	"github.com/fullmoon-games/werewolf-cli/pkg/session"
	"github.com/fullmoon-games/werewolf-cli/pkg/storage"
)

// Client glues the transport to the session state machine and the game
// state projector. Inbound frames are handled serially on a single
// goroutine: the session always sees an envelope before the projector
// does, and error envelopes never reach the projector at all.
type Client struct {
	logger *zap.Logger
	ctx    context.Context
	quit   context.CancelFunc

	transport transport.Service
	storage   storage.Service
	session   *session.Session
	projector *game.Projector
}

func NewClient(opts ...Option) *Client {
	c := &Client{}

	for _, opt := range opts {
		opt(c)
	}

	if c.logger == nil {
		c.logger = zap.NewNop()
	}

	if c.ctx == nil {
		c.ctx = context.Background()
	}

	if c.transport == nil || c.session == nil || c.projector == nil {
		c.logger.Error("transport, session and projector are required")
		return nil
	}

	c.ctx, c.quit = context.WithCancel(c.ctx)
	return c
}

func (c *Client) Session() *session.Session {
	return c.session
}

func (c *Client) Projector() *game.Projector {
	return c.projector
}

// Start initializes storage and the connection, spawns the frame loop
// and opens the session. The subscription is taken before the dial so
// no inbound frame can slip past the loop.
func (c *Client) Start() error {
	if c.hasStorage() {
		if err := c.storage.Initialize(); err != nil {
			return errors.Wrap(err, "failed to initialize storage")
		}
	}

	sub := c.transport.SubscribeToMessages()
	go c.processIncomingMessages(sub)

	if err := c.transport.Initialize(); err != nil {
		return errors.Wrap(err, "failed to initialize transport")
	}

	if err := c.session.HandleOpen(); err != nil {
		return errors.Wrap(err, "failed to open session")
	}

	return nil
}

func (c *Client) Stop() {
	c.quit()
	c.session.Stop()
	c.projector.Stop()
	c.transport.Stop()
}

func (c *Client) processIncomingMessages(sub *transport.MessagesSubscription) {
	if sub.Unsubscribe != nil {
		defer sub.Unsubscribe()
	}
	for {
		select {
		case payload, more := <-sub.Ch:
			if !more {
				return
			}
			c.handleMessage(payload)
		case <-c.ctx.Done():
			return
		}
	}
}

func (c *Client) handleMessage(payload []byte) {
	c.projector.MarkLoaded()

	envelope, err := protocol.ParseEnvelope(payload)
	if err != nil {
		c.logger.Warn("discarding malformed frame",
			zap.Error(err),
			zap.ByteString("payload", payload),
		)
		return
	}

	if c.session.HandleEnvelope(envelope) {
		return
	}

	c.projector.Apply(envelope.Success)
}

func (c *Client) hasStorage() bool {
	return c.storage != nil && !reflect.ValueOf(c.storage).IsNil()
}
