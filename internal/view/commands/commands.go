package commands

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/errors"

	"github.com/fullmoon-games/werewolf-cli/internal/view/messages"
	"github.com/fullmoon-games/werewolf-cli/internal/view/states"
	"github.com/fullmoon-games/werewolf-cli/pkg/client"
	"github.com/fullmoon-games/werewolf-cli/pkg/session"
)

func InitializeApp(client *client.Client) tea.Cmd {
	return func() tea.Msg {
		err := client.Start()
		if err != nil {
			return messages.FatalErrorMessage{
				Err: errors.Wrap(err, "failed to start client"),
			}
		}

		return messages.AppStateFinishedMessage{State: states.Initializing}
	}
}

func Signup(session *session.Session, name string, master string) tea.Cmd {
	return func() tea.Msg {
		err := session.Signup(name, master)
		// A nil error clears the error line.
		return messages.NewErrorMessage(err)
	}
}

func SignOut(session *session.Session) tea.Cmd {
	return func() tea.Msg {
		err := session.SignOut()
		return messages.NewErrorMessage(err)
	}
}

func QuitApp(client *client.Client) tea.Cmd {
	return func() tea.Msg {
		if client != nil {
			client.Stop()
		}
		return tea.Quit()
	}
}
