package messages

import (
	"github.com/fullmoon-games/werewolf-cli/internal/transport"
	"github.com/fullmoon-games/werewolf-cli/internal/view/states"
	"github.com/fullmoon-games/werewolf-cli/pkg/game"
	"github.com/fullmoon-games/werewolf-cli/pkg/protocol"
	"github.com/fullmoon-games/werewolf-cli/pkg/session"
)

type FatalErrorMessage struct {
	Err error
}

type AppStateFinishedMessage struct {
	State states.AppState
}

type AppStateMessage struct {
	State states.AppState
}

type ErrorMessage struct {
	Err error
}

func NewErrorMessage(err error) ErrorMessage {
	return ErrorMessage{Err: err}
}

type SnapshotMessage struct {
	Snapshot game.Snapshot
}

type SessionStatusMessage struct {
	Status session.Status
}

type SessionErrorMessage struct {
	Event protocol.ErrorEvent
}

type IdentityMessage struct {
	Identity *session.Identity
}

type ConnectionStatusMessage struct {
	Status transport.ConnectionStatus
}
