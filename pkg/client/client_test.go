package client

import (
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/goccy/go-json"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/fullmoon-games/werewolf-cli/internal/testcommon"
	"github.com/fullmoon-games/werewolf-cli/internal/transport"
	mocktransport "github.com/fullmoon-games/werewolf-cli/internal/transport/mock"
	"github.com/fullmoon-games/werewolf-cli/pkg/game"
	"github.com/fullmoon-games/werewolf-cli/pkg/protocol"
	"github.com/fullmoon-games/werewolf-cli/pkg/session"
	mockstorage "github.com/fullmoon-games/werewolf-cli/pkg/storage/mock"
)

func TestClient(t *testing.T) {
	suite.Run(t, new(Suite))
}

type Suite struct {
	testcommon.Suite

	transport *mocktransport.MockService
	storage   *mockstorage.MockService
	clock     clockwork.FakeClock

	session   *session.Session
	projector *game.Projector
	client    *Client
}

func (s *Suite) SetupTest() {
	ctrl := gomock.NewController(s.T())
	s.transport = mocktransport.NewMockService(ctrl)
	s.storage = mockstorage.NewMockService(ctrl)
	s.clock = clockwork.NewFakeClock()

	s.session = session.NewSession(
		session.WithLogger(s.Logger),
		session.WithTransport(s.transport),
		session.WithStorage(s.storage),
		session.WithClock(s.clock),
	)
	s.Require().NotNil(s.session)

	s.projector = game.NewProjector(s.Logger, s.clock)

	s.client = NewClient(
		WithLogger(s.Logger),
		WithTransport(s.transport),
		WithStorage(s.storage),
		WithSession(s.session),
		WithProjector(s.projector),
	)
	s.Require().NotNil(s.client)
}

func (s *Suite) authFrame(token string) []byte {
	info := protocol.AuthInfo{
		Token:  protocol.AuthToken(token),
		Name:   gofakeit.LetterN(5),
		Master: gofakeit.LetterN(5),
	}
	payload, err := json.Marshal(&protocol.Envelope{
		Success: &protocol.Success{AuthenticationSuccess: &info},
	})
	s.Require().NoError(err)
	return payload
}

func (s *Suite) TestStartProcessesFrames() {
	sub := &transport.MessagesSubscription{
		Ch: make(chan []byte, 10),
	}

	s.storage.EXPECT().Initialize().Return(nil).Times(1)
	s.transport.EXPECT().SubscribeToMessages().Return(sub).Times(1)
	s.transport.EXPECT().Initialize().Return(nil).Times(1)
	s.storage.EXPECT().Token().Return(protocol.AuthToken("")).Times(1)

	err := s.client.Start()
	s.Require().NoError(err)
	s.Require().Equal(session.Unauthenticated, s.session.Status())

	sub.Ch <- []byte(`{"success":{"members":["Alice","Bob"]}}`)

	s.Require().Eventually(func() bool {
		snapshot := s.projector.Snapshot()
		return len(snapshot.Roster) == 2 && snapshot.Loaded
	}, time.Second, 10*time.Millisecond)

	close(sub.Ch)
}

func (s *Suite) TestMalformedFrameChangesNothing() {
	s.client.handleMessage([]byte(`{"success":{}}`))
	s.client.handleMessage([]byte(`not json at all`))

	snapshot := s.projector.Snapshot()
	s.Require().Empty(snapshot.Roster)
	s.Require().Empty(snapshot.Presence)
	s.Require().Nil(snapshot.State)
	s.Require().Equal(session.Connecting, s.session.Status())

	// The loaded signal fires on the first inbound frame of any kind.
	s.Require().True(snapshot.Loaded)
}

func (s *Suite) TestGameFramesReachProjector() {
	s.client.handleMessage([]byte(`{"success":{"members":["Alice","Bob","Carol"]}}`))
	s.client.handleMessage([]byte(`{"success":{"online":["Alice"]}}`))
	s.client.handleMessage([]byte(`{"success":{"state":{"night":{"role":{"Alice":"wolf"}}}}}`))

	snapshot := s.projector.Snapshot()
	s.Require().Len(snapshot.Roster, 3)
	s.Require().Equal([]protocol.PlayerName{"Alice"}, snapshot.Presence)
	s.Require().Equal(protocol.PhaseNight, snapshot.State.Phase())
	s.Require().True(snapshot.Ready())
}

func (s *Suite) TestAuthenticationSuccessIsConsumedBySession() {
	s.storage.EXPECT().SetToken(protocol.AuthToken("T1")).Return(nil).Times(1)
	s.storage.EXPECT().SetPlayerName(gomock.Any()).Return(nil).Times(1)

	s.client.handleMessage(s.authFrame("T1"))

	s.Require().Equal(session.Authenticated, s.session.Status())
	s.Require().NotNil(s.session.Identity())

	// The projector never sees the authentication envelope.
	snapshot := s.projector.Snapshot()
	s.Require().True(snapshot.UpdatedAt.IsZero())
}

func (s *Suite) TestErrorEnvelopesNeverReachProjector() {
	s.client.handleMessage([]byte(`{"success":{"members":["Alice"]}}`))
	before := s.projector.Snapshot()

	errorSub := s.session.SubscribeToErrors()
	s.client.handleMessage([]byte(`{"error":{"session":"gameAlreadyStarted"}}`))

	event := <-errorSub
	s.Require().False(event.IsAuthenticationFailed())

	after := s.projector.Snapshot()
	s.Require().Equal(before.Roster, after.Roster)
	s.Require().Equal(before.UpdatedAt, after.UpdatedAt)
}

func (s *Suite) TestAuthenticationFailureAppliedBeforeDelivery() {
	s.storage.EXPECT().SetToken(gomock.Any()).Return(nil).Times(1)
	s.storage.EXPECT().SetPlayerName(gomock.Any()).Return(nil).Times(1)
	s.client.handleMessage(s.authFrame(gofakeit.LetterN(32)))
	s.Require().Equal(session.Authenticated, s.session.Status())

	errorSub := s.session.SubscribeToErrors()
	s.storage.EXPECT().ClearToken().Return(nil).Times(1)

	s.client.handleMessage([]byte(`{"error":{"session":"authenticationFailed"}}`))

	event := <-errorSub
	s.Require().True(event.IsAuthenticationFailed())
	s.Require().Nil(s.session.Identity())
	s.Require().Equal(session.Unauthenticated, s.session.Status())
}

func (s *Suite) TestStop() {
	s.transport.EXPECT().Stop().Times(1)

	errorSub := s.session.SubscribeToErrors()
	s.client.Stop()

	_, more := <-errorSub
	s.Require().False(more)
}
