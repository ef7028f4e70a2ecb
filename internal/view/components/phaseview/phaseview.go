package phaseview

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/fullmoon-games/werewolf-cli/internal/view/messages"
	"github.com/fullmoon-games/werewolf-cli/pkg/game"
	"github.com/fullmoon-games/werewolf-cli/pkg/protocol"
)

var (
	dayStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFEA00"))
	nightStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#7D56F4"))
	roleStyle  = lipgloss.NewStyle().Bold(true)
)

// Model renders the current phase line and, at night, the viewer's own
// role when the server made it visible.
type Model struct {
	snapshot game.Snapshot
	myName   protocol.PlayerName
}

func New() Model {
	return Model{}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) Model {
	switch msg := msg.(type) {
	case messages.SnapshotMessage:
		m.snapshot = msg.Snapshot
	case messages.IdentityMessage:
		if msg.Identity != nil {
			m.myName = protocol.PlayerName(msg.Identity.Name)
		} else {
			m.myName = ""
		}
	}
	return m
}

func (m Model) View() string {
	switch m.snapshot.State.Phase() {
	case protocol.PhaseWaiting:
		return fmt.Sprintf("  Waiting for the game to start, %d player(s) registered ...",
			len(m.snapshot.Roster))
	case protocol.PhaseDay:
		return "  " + dayStyle.Render("☀ Day") + m.renderOwnRole()
	case protocol.PhaseNight:
		return "  " + nightStyle.Render("☾ Night") + m.renderOwnRole()
	}
	return ""
}

func (m Model) renderOwnRole() string {
	job, ok := m.snapshot.Role(m.myName)
	if !ok {
		return ""
	}
	return " (you are the " + roleStyle.Render(string(job)) + ")"
}
