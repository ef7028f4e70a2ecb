package errorview

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/fullmoon-games/werewolf-cli/internal/view/messages"
	"github.com/fullmoon-games/werewolf-cli/pkg/protocol"
)

const color = lipgloss.Color("#d78700")

type Model struct {
	errorMessage string
	style        lipgloss.Style
}

func New() Model {
	return Model{
		errorMessage: "",
		style:        lipgloss.NewStyle().Foreground(color),
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) Model {
	switch msg := msg.(type) {
	case messages.ErrorMessage:
		if msg.Err == nil {
			m.errorMessage = ""
		} else {
			m.errorMessage = msg.Err.Error()
		}
	case messages.SessionErrorMessage:
		m.errorMessage = describe(msg.Event)
	}
	return m
}

func (m Model) View() string {
	return m.style.Render(m.errorMessage)
}

func describe(event protocol.ErrorEvent) string {
	switch event.Session {
	case protocol.SessionAuthenticationFailed:
		return "authentication failed, please sign up again"
	case protocol.SessionInvalidToken:
		return "stored credentials were rejected"
	case protocol.SessionNameAlreadyRegistered:
		return "that name is already taken in this room"
	case protocol.SessionGameAlreadyStarted:
		return "the game in this room has already started"
	case protocol.SessionAlreadyLoggedIn:
		return "this player is already logged in"
	}
	return "server error: " + event.String()
}
