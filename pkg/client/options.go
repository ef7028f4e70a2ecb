package client

import (
	"context"

	"go.uber.org/zap"

	"github.com/fullmoon-games/werewolf-cli/internal/transport"
	"github.com/fullmoon-games/werewolf-cli/pkg/game"
	"github.com/fullmoon-games/werewolf-cli/pkg/session"
	"github.com/fullmoon-games/werewolf-cli/pkg/storage"
)

type Option func(*Client)

func WithContext(ctx context.Context) Option {
	return func(c *Client) {
		c.ctx = ctx
	}
}

func WithLogger(logger *zap.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

func WithTransport(t transport.Service) Option {
	return func(c *Client) {
		c.transport = t
	}
}

func WithStorage(s storage.Service) Option {
	return func(c *Client) {
		c.storage = s
	}
}

func WithSession(s *session.Session) Option {
	return func(c *Client) {
		c.session = s
	}
}

func WithProjector(p *game.Projector) Option {
	return func(c *Client) {
		c.projector = p
	}
}
