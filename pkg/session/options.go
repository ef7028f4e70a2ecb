package session

import (
	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"

	"github.com/fullmoon-games/werewolf-cli/internal/transport"
	"github.com/fullmoon-games/werewolf-cli/pkg/storage"
)

type Option func(*Session)

func WithLogger(l *zap.Logger) Option {
	return func(s *Session) {
		s.logger = l
	}
}

func WithTransport(t transport.Service) Option {
	return func(s *Session) {
		s.transport = t
	}
}

func WithStorage(st storage.Service) Option {
	return func(s *Session) {
		s.storage = st
	}
}

func WithClock(c clockwork.Clock) Option {
	return func(s *Session) {
		s.clock = c
	}
}
