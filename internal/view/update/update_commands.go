package update

import (
	tea "github.com/charmbracelet/bubbletea"
)

type Commands struct {
	commands []tea.Cmd

	SignupCommand            tea.Cmd
	SpinnerCommand           tea.Cmd
	SnapshotHandlerCommand   tea.Cmd
	StatusHandlerCommand     tea.Cmd
	ErrorHandlerCommand      tea.Cmd
	ConnectionHandlerCommand tea.Cmd
}

func NewUpdateCommands() *Commands {
	return &Commands{
		commands: make([]tea.Cmd, 0, 8),
	}
}

func (u *Commands) AppendCommand(command tea.Cmd) {
	u.commands = append(u.commands, command)
}

func (u *Commands) AppendMessage(message tea.Msg) {
	u.commands = append(u.commands, func() tea.Msg {
		return message
	})
}

func (u *Commands) Batch() tea.Cmd {
	u.commands = append(u.commands,
		u.SignupCommand,
		u.SpinnerCommand,
		u.SnapshotHandlerCommand,
		u.StatusHandlerCommand,
		u.ErrorHandlerCommand,
		u.ConnectionHandlerCommand,
	)
	return tea.Batch(u.commands...)
}
