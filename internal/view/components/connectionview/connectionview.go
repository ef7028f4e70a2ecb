package connectionview

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/fullmoon-games/werewolf-cli/internal/transport"
	"github.com/fullmoon-games/werewolf-cli/internal/view/messages"
)

var (
	okStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#00E676"))
	dangerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF5722"))
)

type Model struct {
	status transport.ConnectionStatus
}

func New() Model {
	return Model{}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) Model {
	switch msg := msg.(type) {
	case messages.ConnectionStatusMessage:
		m.status = msg.Status
	}
	return m
}

func (m Model) View() string {
	marker := dangerStyle.Render("●")
	text := " Server: disconnected"
	if m.status.IsOnline {
		marker = okStyle.Render("●")
		text = " Server: connected"
	}
	return lipgloss.JoinHorizontal(lipgloss.Left, marker, text)
}
