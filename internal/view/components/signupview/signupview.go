package signupview

import (
	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/fullmoon-games/werewolf-cli/internal/config"
	"github.com/fullmoon-games/werewolf-cli/internal/view/messages"
	"github.com/fullmoon-games/werewolf-cli/internal/view/states"
	"github.com/fullmoon-games/werewolf-cli/pkg/protocol"
)

var cursorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#7D56F4"))

// Model is the signup form: a name field and a room field, Tab
// switches between them.
type Model struct {
	name      textinput.Model
	room      textinput.Model
	roomFocus bool
}

func New() Model {
	name := textinput.New()
	name.Placeholder = "Your name..."
	name.Prompt = "┃ Name: "
	name.CharLimit = protocol.MaxNameLength
	name.Cursor.SetMode(cursor.CursorBlink)
	name.Cursor.Style = cursorStyle
	name.Focus()

	room := textinput.New()
	room.Placeholder = "Room code..."
	room.Prompt = "┃ Room: "
	room.CharLimit = protocol.MaxMasterLength
	room.Cursor.SetMode(cursor.CursorBlink)
	room.Cursor.Style = cursorStyle

	// Pre-fill from command line arguments.
	name.SetValue(config.PlayerName())
	room.SetValue(config.Master())

	return Model{
		name:      name,
		room:      room,
		roomFocus: false,
	}
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case messages.AppStateMessage:
		switch msg.State {
		case states.InputCredentials:
			cmds = append(cmds, m.name.Focus())
			m.room.Blur()
			m.roomFocus = false
		default:
			m.name.Blur()
			m.room.Blur()
		}
	case tea.KeyMsg:
		if msg.Type == tea.KeyTab && m.Focused() {
			m.roomFocus = !m.roomFocus
			if m.roomFocus {
				m.name.Blur()
				cmds = append(cmds, m.room.Focus())
			} else {
				m.room.Blur()
				cmds = append(cmds, m.name.Focus())
			}
		}
	}

	var cmd tea.Cmd
	m.name, cmd = m.name.Update(msg)
	cmds = append(cmds, cmd)
	m.room, cmd = m.room.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

func (m Model) View() string {
	return lipgloss.JoinVertical(lipgloss.Top,
		m.name.View(),
		m.room.View(),
	)
}

func (m *Model) Focused() bool {
	return m.name.Focused() || m.room.Focused()
}

func (m *Model) Name() string {
	return m.name.Value()
}

func (m *Model) Master() string {
	return m.room.Value()
}

func (m *Model) Reset() {
	m.name.Reset()
	m.room.Reset()
}
