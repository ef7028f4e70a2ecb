package view

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/fullmoon-games/werewolf-cli/internal/transport"
	"github.com/fullmoon-games/werewolf-cli/internal/view/commands"
	"github.com/fullmoon-games/werewolf-cli/internal/view/components/connectionview"
	"github.com/fullmoon-games/werewolf-cli/internal/view/components/errorview"
	"github.com/fullmoon-games/werewolf-cli/internal/view/components/eventhandler"
	"github.com/fullmoon-games/werewolf-cli/internal/view/components/phaseview"
	"github.com/fullmoon-games/werewolf-cli/internal/view/components/rosterview"
	"github.com/fullmoon-games/werewolf-cli/internal/view/components/signupview"
	"github.com/fullmoon-games/werewolf-cli/internal/view/messages"
	"github.com/fullmoon-games/werewolf-cli/internal/view/states"
	"github.com/fullmoon-games/werewolf-cli/internal/view/update"
	"github.com/fullmoon-games/werewolf-cli/pkg/client"
	"github.com/fullmoon-games/werewolf-cli/pkg/game"
	"github.com/fullmoon-games/werewolf-cli/pkg/protocol"
	"github.com/fullmoon-games/werewolf-cli/pkg/session"
)

type model struct {
	client    *client.Client
	transport transport.Service

	// Filled from events during the Update stage, rendered by the
	// components during the View stage.
	state            states.AppState
	fatalError       error
	snapshot         game.Snapshot
	sessionStatus    session.Status
	identity         *session.Identity
	connectionStatus transport.ConnectionStatus

	// UI components state
	signupView     signupview.Model
	errorView      errorview.Model
	rosterView     rosterview.Model
	phaseView      phaseview.Model
	connectionView connectionview.Model

	snapshotHandler   eventhandler.Model[game.Snapshot, messages.SnapshotMessage]
	statusHandler     eventhandler.Model[session.Status, messages.SessionStatusMessage]
	errorHandler      eventhandler.Model[protocol.ErrorEvent, messages.SessionErrorMessage]
	connectionHandler eventhandler.Model[transport.ConnectionStatus, messages.ConnectionStatusMessage]

	spinner spinner.Model
}

func initialModel(c *client.Client, t transport.Service) model {
	return model{
		client:    c,
		transport: t,
		// Initial model values
		state:         states.Initializing,
		sessionStatus: session.Connecting,
		// View components
		signupView:     signupview.New(),
		errorView:      errorview.New(),
		rosterView:     rosterview.New(),
		phaseView:      phaseview.New(),
		connectionView: connectionview.New(),
		spinner:        createSpinner(),
	}
}

func createSpinner() spinner.Model {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	return s
}

func (m model) Init() tea.Cmd {
	return tea.Batch(
		m.signupView.Init(),
		m.spinner.Tick,
		m.errorView.Init(),
		m.rosterView.Init(),
		m.phaseView.Init(),
		m.connectionView.Init(),
		commands.InitializeApp(m.client),
	)
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := update.NewUpdateCommands()

	switchToState := func(state states.AppState) {
		m.state = state
		cmds.AppendMessage(messages.AppStateMessage{State: state})
	}

	switch msg := msg.(type) {
	case messages.FatalErrorMessage:
		m.fatalError = msg.Err

	case messages.AppStateFinishedMessage:
		if msg.State != states.Initializing {
			break
		}

		// Subscribe to core events once the client is running. The
		// session status pushed below decides the next app state.
		m.snapshotHandler = eventhandler.New[game.Snapshot, messages.SnapshotMessage](
			func(snapshot game.Snapshot) messages.SnapshotMessage {
				return messages.SnapshotMessage{Snapshot: snapshot}
			})
		cmds.AppendCommand(m.snapshotHandler.InitWithCurrent(
			m.client.Projector().SubscribeToSnapshots(),
			m.client.Projector().Snapshot(),
		))

		m.statusHandler = eventhandler.New[session.Status, messages.SessionStatusMessage](
			func(status session.Status) messages.SessionStatusMessage {
				return messages.SessionStatusMessage{Status: status}
			})
		cmds.AppendCommand(m.statusHandler.InitWithCurrent(
			m.client.Session().SubscribeToStatus(),
			m.client.Session().Status(),
		))

		m.errorHandler = eventhandler.New[protocol.ErrorEvent, messages.SessionErrorMessage](
			func(event protocol.ErrorEvent) messages.SessionErrorMessage {
				return messages.SessionErrorMessage{Event: event}
			})
		cmds.AppendCommand(m.errorHandler.Init(
			m.client.Session().SubscribeToErrors(),
		))

		m.connectionHandler = eventhandler.New[transport.ConnectionStatus, messages.ConnectionStatusMessage](
			func(status transport.ConnectionStatus) messages.ConnectionStatusMessage {
				return messages.ConnectionStatusMessage{Status: status}
			})
		cmds.AppendCommand(m.connectionHandler.InitWithCurrent(
			m.transport.SubscribeToConnectionStatus(),
			m.transport.Status(),
		))

	case messages.SessionStatusMessage:
		m.sessionStatus = msg.Status
		switch msg.Status {
		case session.Unauthenticated:
			m.identity = nil
			cmds.AppendMessage(messages.IdentityMessage{Identity: nil})
			switchToState(states.InputCredentials)
		case session.Authenticating:
			switchToState(states.Authenticating)
		case session.Authenticated:
			m.identity = m.client.Session().Identity()
			cmds.AppendMessage(messages.IdentityMessage{Identity: m.identity})
			cmds.AppendMessage(messages.NewErrorMessage(nil))
			switchToState(states.InGame)
		}

	case messages.SnapshotMessage:
		m.snapshot = msg.Snapshot

	case messages.ConnectionStatusMessage:
		m.connectionStatus = msg.Status

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC:
			cmds.AppendCommand(commands.QuitApp(m.client))
		case tea.KeyEnter:
			if m.state == states.InputCredentials {
				cmds.AppendCommand(commands.Signup(
					m.client.Session(),
					m.signupView.Name(),
					m.signupView.Master(),
				))
			}
		case tea.KeyCtrlD:
			if m.state == states.InGame {
				cmds.AppendCommand(commands.SignOut(m.client.Session()))
			}
		default:
		}
	}

	m.signupView, cmds.SignupCommand = m.signupView.Update(msg)
	m.spinner, cmds.SpinnerCommand = m.spinner.Update(msg)
	m.errorView = m.errorView.Update(msg)
	m.rosterView = m.rosterView.Update(msg)
	m.phaseView = m.phaseView.Update(msg)
	m.connectionView = m.connectionView.Update(msg)
	m.snapshotHandler, cmds.SnapshotHandlerCommand = m.snapshotHandler.Update(msg)
	m.statusHandler, cmds.StatusHandlerCommand = m.statusHandler.Update(msg)
	m.errorHandler, cmds.ErrorHandlerCommand = m.errorHandler.Update(msg)
	m.connectionHandler, cmds.ConnectionHandlerCommand = m.connectionHandler.Update(msg)

	return m, cmds.Batch()
}

// Ensure that model fulfils the tea.Model interface at compile time.
var _ tea.Model = (*model)(nil)
