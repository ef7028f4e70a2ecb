package storage

import (
	"github.com/fullmoon-games/werewolf-cli/pkg/protocol"
)

//go:generate mockgen -source=service.go -destination=mock/service.go

type Service interface {
	Initialize() error
	Token() protocol.AuthToken
	SetToken(token protocol.AuthToken) error
	ClearToken() error
	PlayerName() string
	SetPlayerName(name string) error
}
