package protocol

import (
	"fmt"

	"github.com/goccy/go-json"
)

// SessionAuthenticationFailed is the only error kind the client reacts
// to by itself. Everything else is forwarded to subscribers verbatim.
const SessionAuthenticationFailed = "authenticationFailed"

// Error kinds the server is known to report. They are listed for
// display purposes only, the core never branches on them.
const (
	SessionJSONParse             = "jsonParse"
	SessionInvalidToken          = "invalidToken"
	SessionNameAlreadyRegistered = "nameAlreadyRegistered"
	SessionGameAlreadyStarted    = "gameAlreadyStarted"
	SessionAlreadyLoggedIn       = "alreadyLoggedIn"
)

// ErrorEvent is a server-reported error. Session holds the session
// error kind if present, Raw keeps the whole payload so that unknown
// kinds pass through uninterpreted.
type ErrorEvent struct {
	Session string
	Raw     json.RawMessage
}

func (e *ErrorEvent) UnmarshalJSON(data []byte) error {
	e.Raw = append(e.Raw[:0], data...)

	var probe struct {
		Session string `json:"session"`
	}
	// Non-string session kinds stay opaque in Raw.
	if err := json.Unmarshal(data, &probe); err == nil {
		e.Session = probe.Session
	}
	return nil
}

func (e ErrorEvent) MarshalJSON() ([]byte, error) {
	if len(e.Raw) > 0 {
		return e.Raw, nil
	}
	return json.Marshal(struct {
		Session string `json:"session,omitempty"`
	}{Session: e.Session})
}

func (e *ErrorEvent) IsAuthenticationFailed() bool {
	return e.Session == SessionAuthenticationFailed
}

func (e ErrorEvent) String() string {
	if e.Session != "" {
		return fmt.Sprintf("session error: %s", e.Session)
	}
	return string(e.Raw)
}
