package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/fullmoon-games/werewolf-cli/internal/config"
	"github.com/fullmoon-games/werewolf-cli/internal/view/states"
)

var foregroundShadeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#555555"))

func (m model) View() string {
	if m.fatalError != nil {
		return fmt.Sprintf(" ☠️ fatal error: %s\n%s", m.fatalError, renderLogPath())
	}

	view := "\n"
	if config.Debug() {
		view += fmt.Sprintf("%s\n\n", renderLogPath())
	}
	view += m.renderAppState()

	return lipgloss.JoinHorizontal(lipgloss.Left, "  ", view)
}

func (m model) renderAppState() string {
	switch m.state {
	case states.Idle:
		return "nothing is happening yet"
	case states.Initializing:
		return m.spinner.View() + " Connecting to the game server..."
	case states.InputCredentials:
		return m.renderSignup()
	case states.Authenticating:
		return m.spinner.View() + " Signing in..."
	case states.InGame:
		return m.renderGame()
	}

	return "unknown app state"
}

func (m model) renderSignup() string {
	return lipgloss.JoinVertical(
		lipgloss.Top,
		m.signupView.View(),
		foregroundShadeStyle.Render("  Enter to sign up, Tab to switch fields"),
		m.errorView.View(),
	)
}

func (m model) renderGame() string {
	return lipgloss.JoinVertical(lipgloss.Top,
		m.connectionView.View(),
		m.renderIdentity(),
		"",
		m.renderRoom(),
		m.errorView.View(),
		foregroundShadeStyle.Render("  Ctrl+D to sign out, Ctrl+C to quit"),
	)
}

func (m model) renderIdentity() string {
	if m.identity == nil {
		return ""
	}
	return fmt.Sprintf("  Playing as %s in room %s", m.identity.Name, m.identity.Master)
}

func (m model) renderRoom() string {
	if !m.snapshot.Ready() {
		return fmt.Sprintf("\n%s Waiting for initial room state ...\n", m.spinner.View())
	}

	return lipgloss.JoinVertical(lipgloss.Top,
		m.phaseView.View(),
		m.rosterView.View(),
	)
}

func renderLogPath() string {
	path := strings.Replace(config.LogFilePath, " ", "%20", -1)
	return fmt.Sprintf("Log: file:///%s", path)
}
