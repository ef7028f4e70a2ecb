package view

import (
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/fullmoon-games/werewolf-cli/internal/config"
	"github.com/fullmoon-games/werewolf-cli/internal/transport"
	"github.com/fullmoon-games/werewolf-cli/pkg/client"
)

func Run(c *client.Client, t transport.Service) int {
	m := initialModel(c, t)
	p := tea.NewProgram(m)
	if _, err := p.Run(); err != nil {
		config.Logger.Error("error running program", zap.Error(err))
		return 1
	}
	return 0
}
