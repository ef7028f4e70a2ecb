package rosterview

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"golang.org/x/exp/slices"

	"github.com/fullmoon-games/werewolf-cli/internal/view/messages"
	"github.com/fullmoon-games/werewolf-cli/pkg/game"
	"github.com/fullmoon-games/werewolf-cli/pkg/protocol"
)

const textColor = lipgloss.Color("#FAFAFA")
const borderColor = lipgloss.Color("#555555")

var (
	cellStyle = lipgloss.NewStyle().
			Foreground(textColor).
			PaddingLeft(1).
			PaddingRight(1)
	myNameStyle  = cellStyle.Copy().Bold(true)
	borderStyle  = lipgloss.NewStyle().Foreground(borderColor)
	onlineStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#00E676"))
	offlineStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#555555"))
)

// Model renders the room roster: one row per registered player with a
// presence marker and, when visible, the player's role.
type Model struct {
	snapshot game.Snapshot
	myName   protocol.PlayerName
	myRow    int
}

func New() Model {
	return Model{myRow: -1}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) Model {
	switch msg := msg.(type) {
	case messages.SnapshotMessage:
		m.snapshot = msg.Snapshot
		m.myRow = m.findMyRow()
	case messages.IdentityMessage:
		if msg.Identity != nil {
			m.myName = protocol.PlayerName(msg.Identity.Name)
		} else {
			m.myName = ""
		}
		m.myRow = m.findMyRow()
	}
	return m
}

func (m Model) View() string {
	if len(m.snapshot.Roster) == 0 {
		return "  Nobody in the room yet."
	}

	rows := make([][]string, 0, len(m.snapshot.Roster))
	for _, name := range m.snapshot.Roster {
		marker := offlineStyle.Render("●")
		if m.snapshot.Online(name) {
			marker = onlineStyle.Render("●")
		}
		role := ""
		if job, ok := m.snapshot.Role(name); ok {
			role = string(job)
		}
		rows = append(rows, []string{string(name), marker, role})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(borderStyle).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row-1 == m.myRow {
				return myNameStyle
			}
			return cellStyle
		}).
		Headers("Player", "", "Role").
		Rows(rows...)

	return t.String()
}

func (m *Model) findMyRow() int {
	if m.myName == "" {
		return -1
	}
	return slices.Index(m.snapshot.Roster, m.myName)
}
