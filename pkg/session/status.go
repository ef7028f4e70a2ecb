package session

// Status tracks authentication progress of the single connection.
//
// Connecting → Unauthenticated ⇄ Authenticating → Authenticated,
// with Authenticated → Unauthenticated on authentication failure.
// There is no terminal state.
type Status int

const (
	Connecting Status = iota
	Unauthenticated
	Authenticating
	Authenticated
)

func (s Status) String() string {
	switch s {
	case Connecting:
		return "connecting"
	case Unauthenticated:
		return "unauthenticated"
	case Authenticating:
		return "authenticating"
	case Authenticated:
		return "authenticated"
	}
	return "unknown"
}

// Identity is the authenticated player. It is immutable for the
// lifetime of the authenticated session and nil in any other state.
type Identity struct {
	Name   string
	Master string
}
