package game

import (
	"sync"

	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"

	"github.com/fullmoon-games/werewolf-cli/pkg/protocol"
)

type StateSubscription chan Snapshot

// Projector folds roster, presence and game state pushes into the
// latest snapshot. Every payload replaces its slice of the snapshot
// wholesale; nothing is merged across updates. Apply and MarkLoaded
// run on the client event loop, Snapshot is safe from any goroutine.
type Projector struct {
	logger *zap.Logger
	clock  clockwork.Clock

	mutex       sync.RWMutex
	snapshot    Snapshot
	subscribers []StateSubscription
}

func NewProjector(logger *zap.Logger, clock clockwork.Clock) *Projector {
	if logger == nil {
		logger = zap.NewNop()
	}
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Projector{
		logger: logger,
		clock:  clock,
	}
}

func (p *Projector) Snapshot() Snapshot {
	p.mutex.RLock()
	defer p.mutex.RUnlock()
	return p.snapshot
}

func (p *Projector) SubscribeToSnapshots() StateSubscription {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	channel := make(StateSubscription, 10)
	p.subscribers = append(p.subscribers, channel)
	return channel
}

func (p *Projector) Stop() {
	p.mutex.Lock()
	subscribers := p.subscribers
	p.subscribers = nil
	p.mutex.Unlock()

	for _, subscriber := range subscribers {
		close(subscriber)
	}
}

// Apply folds one success envelope into the snapshot. Authentication
// envelopes do not belong here and are rejected.
func (p *Projector) Apply(success *protocol.Success) {
	kind := success.Kind()
	if kind == protocol.KindAuthenticationSuccess || kind == protocol.KindUnknown {
		p.logger.Warn("unexpected envelope kind", zap.Stringer("kind", kind))
		return
	}

	p.mutex.Lock()
	switch kind {
	case protocol.KindMembers:
		p.logger.Debug("roster replaced", zap.Int("count", len(success.Members)))
		p.snapshot.Roster = success.Members
		p.snapshot.rosterSeen = true

	case protocol.KindOnline:
		p.logger.Debug("presence replaced", zap.Int("count", len(success.Online)))
		p.snapshot.Presence = success.Online

	case protocol.KindState:
		p.logger.Debug("game state replaced", zap.String("phase", string(success.State.Phase())))
		p.snapshot.State = success.State
		p.snapshot.stateSeen = true
	}
	p.snapshot.UpdatedAt = p.clock.Now()
	p.mutex.Unlock()

	p.notify()
}

// MarkLoaded records that the first server push arrived.
func (p *Projector) MarkLoaded() {
	p.mutex.Lock()
	if p.snapshot.Loaded {
		p.mutex.Unlock()
		return
	}
	p.snapshot.Loaded = true
	p.mutex.Unlock()

	p.notify()
}

func (p *Projector) notify() {
	p.mutex.RLock()
	snapshot := p.snapshot
	subscribers := append([]StateSubscription(nil), p.subscribers...)
	p.mutex.RUnlock()

	for _, subscriber := range subscribers {
		subscriber <- snapshot
	}
}
