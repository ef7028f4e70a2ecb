package states

type AppState int

const (
	Idle AppState = iota
	Initializing
	InputCredentials
	Authenticating
	InGame
)
