package game

import (
	"time"

	"golang.org/x/exp/slices"

	"github.com/fullmoon-games/werewolf-cli/pkg/protocol"
)

// Snapshot is the latest-known room state, assembled from server
// pushes. It is what the UI renders.
type Snapshot struct {
	// Roster is every player registered to the room.
	Roster []protocol.PlayerName
	// Presence is the subset of the roster currently online.
	Presence []protocol.PlayerName
	// State is the current game phase, nil until the first update.
	State *protocol.GameState

	// Loaded is set once any server push arrived.
	Loaded    bool
	UpdatedAt time.Time

	rosterSeen bool
	stateSeen  bool
}

// Ready reports whether the snapshot is complete enough to render:
// either the loaded signal fired, or at least one roster and one game
// state update arrived.
func (s Snapshot) Ready() bool {
	return s.Loaded || (s.rosterSeen && s.stateSeen)
}

// Online reports whether the given player is currently present.
func (s Snapshot) Online(name protocol.PlayerName) bool {
	return slices.Contains(s.Presence, name)
}

// Role returns the player's visible role in the current phase.
func (s Snapshot) Role(name protocol.PlayerName) (protocol.Job, bool) {
	roles := s.State.Roles()
	if roles == nil {
		return "", false
	}
	job, ok := roles[name]
	return job, ok
}
