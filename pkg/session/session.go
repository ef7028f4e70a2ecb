package session

import (
	"reflect"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/fullmoon-games/werewolf-cli/internal/transport"
	"github.com/fullmoon-games/werewolf-cli/pkg/protocol"
	"github.com/fullmoon-games/werewolf-cli/pkg/storage"
)

var (
	ErrAlreadyAuthenticated     = errors.New("already authenticated")
	ErrAuthenticationInProgress = errors.New("authentication in progress")
)

type ErrorSubscription chan protocol.ErrorEvent
type StatusSubscription chan Status

// Session drives the authentication state machine and owns the
// authenticated identity. All Handle* methods are called from the
// client event loop, one at a time; the accessors are safe to call
// from any goroutine.
type Session struct {
	logger    *zap.Logger
	clock     clockwork.Clock
	transport transport.Service
	storage   storage.Service

	mutex           sync.RWMutex
	status          Status
	identity        *Identity
	authenticatedAt time.Time

	errorSubscribers  []ErrorSubscription
	statusSubscribers []StatusSubscription
}

func NewSession(opts ...Option) *Session {
	s := &Session{
		status:   Connecting,
		identity: nil,
	}

	for _, opt := range opts {
		opt(s)
	}

	if s.logger == nil {
		s.logger = zap.NewNop()
	}

	if s.clock == nil {
		s.clock = clockwork.NewRealClock()
	}

	if s.transport == nil {
		s.logger.Error("transport is required")
		return nil
	}

	return s
}

func (s *Session) Status() Status {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.status
}

// Identity returns the authenticated player. It is non-nil if and only
// if the session is Authenticated.
func (s *Session) Identity() *Identity {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	if s.identity == nil {
		return nil
	}
	identity := *s.identity
	return &identity
}

func (s *Session) AuthenticatedAt() time.Time {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.authenticatedAt
}

// HandleOpen reacts to the connection becoming open. With a stored
// token the session resumes immediately, otherwise it waits for an
// explicit Signup call.
func (s *Session) HandleOpen() error {
	token := s.storedToken()
	if token.Empty() {
		s.logger.Info("no stored token, waiting for signup")
		s.setStatus(Unauthenticated)
		return nil
	}

	s.logger.Info("resuming session with stored token")
	if err := s.send(protocol.NewResumeRequest(token)); err != nil {
		return err
	}

	s.setStatus(Authenticating)
	return nil
}

// Signup sends a signup request for the given display name and room.
func (s *Session) Signup(name string, master string) error {
	switch s.Status() {
	case Authenticated:
		return ErrAlreadyAuthenticated
	case Authenticating:
		return ErrAuthenticationInProgress
	}

	request := protocol.NewSignupRequest(name, master)
	if err := request.Connect.Signup.Validate(); err != nil {
		return err
	}

	if err := s.send(request); err != nil {
		return err
	}

	s.setStatus(Authenticating)
	return nil
}

// SignOut drops the persisted token and the identity without waiting
// for a server round trip.
func (s *Session) SignOut() error {
	s.clearCredentials()
	s.setStatus(Unauthenticated)
	return nil
}

// HandleEnvelope consumes the envelopes this state machine cares
// about: authentication successes and all error envelopes. It reports
// whether the envelope was consumed.
func (s *Session) HandleEnvelope(envelope *protocol.Envelope) bool {
	if envelope.Error != nil {
		s.handleError(*envelope.Error)
		return true
	}

	if envelope.Success.Kind() == protocol.KindAuthenticationSuccess {
		s.handleAuthenticationSuccess(envelope.Success.AuthenticationSuccess)
		return true
	}

	return false
}

func (s *Session) SubscribeToErrors() ErrorSubscription {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	channel := make(ErrorSubscription, 10)
	s.errorSubscribers = append(s.errorSubscribers, channel)
	return channel
}

func (s *Session) SubscribeToStatus() StatusSubscription {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	channel := make(StatusSubscription, 10)
	s.statusSubscribers = append(s.statusSubscribers, channel)
	return channel
}

func (s *Session) Stop() {
	s.mutex.Lock()
	errorSubscribers := s.errorSubscribers
	statusSubscribers := s.statusSubscribers
	s.errorSubscribers = nil
	s.statusSubscribers = nil
	s.mutex.Unlock()

	for _, subscriber := range errorSubscribers {
		close(subscriber)
	}
	for _, subscriber := range statusSubscribers {
		close(subscriber)
	}
}

func (s *Session) handleAuthenticationSuccess(info *protocol.AuthInfo) {
	s.logger.Info("authenticated",
		zap.String("name", info.Name),
		zap.String("master", info.Master),
	)

	if s.hasStorage() {
		if err := s.storage.SetToken(info.Token); err != nil {
			s.logger.Error("failed to persist token", zap.Error(err))
		}
		if err := s.storage.SetPlayerName(info.Name); err != nil {
			s.logger.Error("failed to persist player name", zap.Error(err))
		}
	}

	s.mutex.Lock()
	s.identity = &Identity{
		Name:   info.Name,
		Master: info.Master,
	}
	s.authenticatedAt = s.clock.Now()
	s.mutex.Unlock()

	s.setStatus(Authenticated)
}

// handleError applies authentication side effects first, then notifies
// error subscribers. A subscriber reacting to an authentication
// failure always observes the identity already cleared.
func (s *Session) handleError(event protocol.ErrorEvent) {
	if event.IsAuthenticationFailed() {
		s.logger.Warn("authentication failed, clearing credentials")
		s.clearCredentials()
		s.setStatus(Unauthenticated)
	} else {
		s.logger.Debug("server error", zap.String("error", event.String()))
	}

	s.mutex.RLock()
	subscribers := append([]ErrorSubscription(nil), s.errorSubscribers...)
	s.mutex.RUnlock()

	for _, subscriber := range subscribers {
		subscriber <- event
	}
}

func (s *Session) clearCredentials() {
	if s.hasStorage() {
		if err := s.storage.ClearToken(); err != nil {
			s.logger.Error("failed to clear token", zap.Error(err))
		}
	}
	s.mutex.Lock()
	s.identity = nil
	s.authenticatedAt = time.Time{}
	s.mutex.Unlock()
}

func (s *Session) setStatus(status Status) {
	s.mutex.Lock()
	if s.status == status {
		s.mutex.Unlock()
		return
	}

	s.logger.Debug("session status changed",
		zap.Stringer("from", s.status),
		zap.Stringer("to", status),
	)
	s.status = status
	subscribers := append([]StatusSubscription(nil), s.statusSubscribers...)
	s.mutex.Unlock()

	for _, subscriber := range subscribers {
		subscriber <- status
	}
}

func (s *Session) send(request *protocol.Request) error {
	payload, err := request.Marshal()
	if err != nil {
		return err
	}
	return s.transport.Send(payload)
}

func (s *Session) storedToken() protocol.AuthToken {
	if !s.hasStorage() {
		return ""
	}
	return s.storage.Token()
}

func (s *Session) hasStorage() bool {
	return s.storage != nil && !reflect.ValueOf(s.storage).IsNil()
}
