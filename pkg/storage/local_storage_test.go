package storage

import (
	"testing"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/suite"

	"github.com/fullmoon-games/werewolf-cli/internal/testcommon"
	"github.com/fullmoon-games/werewolf-cli/pkg/protocol"
)

func TestLocalStorage(t *testing.T) {
	suite.Run(t, &Suite{})
}

type Suite struct {
	testcommon.Suite
	storage  *LocalStorage
	tempPath string
}

func (s *Suite) SetupTest() {
	s.tempPath = s.T().TempDir()
	s.storage = NewLocalStorage(s.tempPath)
	s.Require().NotNil(s.storage)
	err := s.storage.Initialize()
	s.Require().NoError(err)
}

func (s *Suite) TestLocalPath() {
	localPath := s.T().TempDir()

	storage := NewLocalStorage(localPath)
	s.Require().NotNil(storage)

	err := storage.Initialize()
	s.Require().NoError(err)
	s.Require().Equal(localPath, storage.folder.Path)
}

func (s *Suite) TestTokenRoundtrip() {
	s.Require().True(s.storage.Token().Empty())

	token := protocol.AuthToken(gofakeit.LetterN(32))
	err := s.storage.SetToken(token)
	s.Require().NoError(err)
	s.Require().Equal(token, s.storage.Token())

	// A fresh storage over the same path must see the token.
	reopened := NewLocalStorage(s.tempPath)
	err = reopened.Initialize()
	s.Require().NoError(err)
	s.Require().Equal(token, reopened.Token())
}

func (s *Suite) TestClearToken() {
	token := protocol.AuthToken(gofakeit.LetterN(32))
	err := s.storage.SetToken(token)
	s.Require().NoError(err)

	err = s.storage.ClearToken()
	s.Require().NoError(err)
	s.Require().True(s.storage.Token().Empty())

	reopened := NewLocalStorage(s.tempPath)
	err = reopened.Initialize()
	s.Require().NoError(err)
	s.Require().True(reopened.Token().Empty())
}

func (s *Suite) TestPlayerName() {
	s.Require().Empty(s.storage.PlayerName())

	name := gofakeit.LetterN(5)
	err := s.storage.SetPlayerName(name)
	s.Require().NoError(err)
	s.Require().Equal(name, s.storage.PlayerName())

	// Clearing the token keeps the name.
	err = s.storage.ClearToken()
	s.Require().NoError(err)
	s.Require().Equal(name, s.storage.PlayerName())
}

func (s *Suite) TestResetOnUnmarshalFailure() {
	token := protocol.AuthToken(gofakeit.LetterN(32))
	err := s.storage.SetToken(token)
	s.Require().NoError(err)

	err = s.storage.folder.WriteFile(credentialsFileName, []byte("{invalid json"))
	s.Require().NoError(err)

	reopened := NewLocalStorage(s.tempPath)
	err = reopened.Initialize()
	s.Require().NoError(err)
	s.Require().True(reopened.Token().Empty())
	s.Require().Empty(reopened.PlayerName())
}
