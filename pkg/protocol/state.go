package protocol

import (
	"github.com/goccy/go-json"
)

// Job is a player's in-game role as visible to this client.
// The server decides visibility, unknown values are passed through.
type Job string

const (
	JobCitizen Job = "citizen"
	JobWolf    Job = "wolf"
	JobSeer    Job = "seer"
	JobHunter  Job = "hunter"
)

func (j Job) Known() bool {
	switch j {
	case JobCitizen, JobWolf, JobSeer, JobHunter:
		return true
	}
	return false
}

type Phase string

const (
	PhaseUnknown Phase = ""
	PhaseWaiting Phase = "waiting"
	PhaseDay     Phase = "day"
	PhaseNight   Phase = "night"
)

// RoleMap gives each known player's role as visible to the viewer.
type RoleMap map[PlayerName]Job

type WaitingPhase struct {
	// Config is opaque to the client, it is never read here.
	Config json.RawMessage `json:"config,omitempty"`
}

type DayPhase struct {
	Role RoleMap `json:"role"`
}

type NightPhase struct {
	Role RoleMap `json:"role"`
}

// GameState is a tagged variant over game phases. Exactly one of the
// fields is set in a well-formed state.
type GameState struct {
	Waiting *WaitingPhase `json:"waiting,omitempty"`
	Day     *DayPhase     `json:"day,omitempty"`
	Night   *NightPhase   `json:"night,omitempty"`
}

func NewWaitingState() *GameState {
	return &GameState{
		Waiting: &WaitingPhase{},
	}
}

func (s *GameState) Phase() Phase {
	switch {
	case s == nil:
		return PhaseUnknown
	case s.Waiting != nil:
		return PhaseWaiting
	case s.Day != nil:
		return PhaseDay
	case s.Night != nil:
		return PhaseNight
	}
	return PhaseUnknown
}

// Roles returns the visible role mapping of the active phase.
// It is nil while waiting.
func (s *GameState) Roles() RoleMap {
	switch s.Phase() {
	case PhaseDay:
		return s.Day.Role
	case PhaseNight:
		return s.Night.Role
	}
	return nil
}
