package testcommon

import (
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"

	"github.com/fullmoon-games/werewolf-cli/internal/config"
)

type Suite struct {
	suite.Suite
	Logger *zap.Logger
}

func (s *Suite) SetupSuite() {
	s.Logger = SetupConfigLogger(s.T())
}

func (s *Suite) TearDownSuite() {
	_ = config.Logger.Sync()
}
