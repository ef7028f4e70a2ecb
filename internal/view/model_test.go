package view

import (
	"testing"

	"github.com/brianvoe/gofakeit/v6"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/fullmoon-games/werewolf-cli/internal/testcommon"
	mocktransport "github.com/fullmoon-games/werewolf-cli/internal/transport/mock"
	"github.com/fullmoon-games/werewolf-cli/internal/view/messages"
	"github.com/fullmoon-games/werewolf-cli/internal/view/states"
	"github.com/fullmoon-games/werewolf-cli/pkg/client"
	"github.com/fullmoon-games/werewolf-cli/pkg/game"
	"github.com/fullmoon-games/werewolf-cli/pkg/protocol"
	"github.com/fullmoon-games/werewolf-cli/pkg/session"
	mockstorage "github.com/fullmoon-games/werewolf-cli/pkg/storage/mock"
)

func TestModel(t *testing.T) {
	suite.Run(t, new(ModelSuite))
}

type ModelSuite struct {
	testcommon.Suite
	transport *mocktransport.MockService
	storage   *mockstorage.MockService
	client    *client.Client
}

func (s *ModelSuite) SetupTest() {
	ctrl := gomock.NewController(s.T())
	s.transport = mocktransport.NewMockService(ctrl)
	s.storage = mockstorage.NewMockService(ctrl)

	sess := session.NewSession(
		session.WithLogger(s.Logger),
		session.WithTransport(s.transport),
		session.WithStorage(s.storage),
	)
	s.Require().NotNil(sess)

	s.client = client.NewClient(
		client.WithLogger(s.Logger),
		client.WithTransport(s.transport),
		client.WithStorage(s.storage),
		client.WithSession(sess),
		client.WithProjector(game.NewProjector(s.Logger, nil)),
	)
	s.Require().NotNil(s.client)
}

func (s *ModelSuite) TestInitialModel() {
	m := initialModel(s.client, s.transport)

	s.Require().Equal(s.client, m.client)
	s.Require().Equal(states.Initializing, m.state)
	s.Require().Equal(session.Connecting, m.sessionStatus)
	s.Require().Nil(m.identity)
	s.Require().Nil(m.fatalError)
	s.Require().NotNil(m.spinner)
	s.Require().NotNil(m.errorView)
	s.Require().NotNil(m.signupView)
	s.Require().NotNil(m.rosterView)
	s.Require().NotNil(m.phaseView)
	s.Require().NotNil(m.connectionView)
}

func (s *ModelSuite) TestUpdateFatalErrorMessage() {
	m := initialModel(s.client, s.transport)

	err := gofakeit.Error()
	m2, _ := m.Update(messages.FatalErrorMessage{Err: err})
	s.Require().Equal(err, m2.(model).fatalError)
}

func (s *ModelSuite) TestSessionStatusDrivesAppState() {
	m := initialModel(s.client, s.transport)

	m2, _ := m.Update(messages.SessionStatusMessage{Status: session.Unauthenticated})
	s.Require().Equal(states.InputCredentials, m2.(model).state)

	m3, _ := m2.Update(messages.SessionStatusMessage{Status: session.Authenticating})
	s.Require().Equal(states.Authenticating, m3.(model).state)

	m4, _ := m3.Update(messages.SessionStatusMessage{Status: session.Authenticated})
	s.Require().Equal(states.InGame, m4.(model).state)
}

func (s *ModelSuite) TestSnapshotMessage() {
	m := initialModel(s.client, s.transport)

	snapshot := game.Snapshot{Roster: []protocol.PlayerName{"Alice", "Bob"}}
	m2, _ := m.Update(messages.SnapshotMessage{Snapshot: snapshot})
	s.Require().Len(m2.(model).snapshot.Roster, 2)
}

func (s *ModelSuite) TestQuitKey() {
	m := initialModel(s.client, s.transport)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	s.Require().NotNil(cmd)
}
