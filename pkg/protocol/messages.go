package protocol

import (
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"
)

// AuthToken is an opaque credential issued by the server on signup.
// The client never inspects it, it is only stored and presented back.
type AuthToken string

func (t AuthToken) Empty() bool {
	return t == ""
}

type PlayerName string

// Limits enforced by the server on signup fields.
const (
	MaxNameLength   = 5
	MaxMasterLength = 5
)

type Signup struct {
	Name   string `json:"name"`
	Master string `json:"master"`
}

func (s *Signup) Validate() error {
	if s.Name == "" {
		return errors.New("name must not be empty")
	}
	if utf8.RuneCountInString(s.Name) > MaxNameLength {
		return errors.Errorf("name must be at most %d characters", MaxNameLength)
	}
	if s.Master == "" {
		return errors.New("room must not be empty")
	}
	if utf8.RuneCountInString(s.Master) > MaxMasterLength {
		return errors.Errorf("room must be at most %d characters", MaxMasterLength)
	}
	if strings.ContainsAny(s.Master, " \t\n\r") {
		return errors.New("room must not contain whitespace")
	}
	return nil
}

// ConnectRequest carries either a resume token or a signup form,
// never both.
type ConnectRequest struct {
	Token  AuthToken `json:"token,omitempty"`
	Signup *Signup   `json:"signup,omitempty"`
}

// Request is the only outgoing message shape of the protocol.
type Request struct {
	Connect *ConnectRequest `json:"connect,omitempty"`
}

func NewResumeRequest(token AuthToken) *Request {
	return &Request{
		Connect: &ConnectRequest{
			Token: token,
		},
	}
}

func NewSignupRequest(name string, master string) *Request {
	return &Request{
		Connect: &ConnectRequest{
			Signup: &Signup{
				Name:   name,
				Master: master,
			},
		},
	}
}

// AuthInfo is the payload of an authenticationSuccess envelope.
type AuthInfo struct {
	Token  AuthToken `json:"token"`
	Name   string    `json:"name"`
	Master string    `json:"master"`
}

// Success is an inbound success envelope. The server sets exactly one
// field per envelope.
type Success struct {
	Members               []PlayerName `json:"members,omitempty"`
	Online                []PlayerName `json:"online,omitempty"`
	State                 *GameState   `json:"state,omitempty"`
	AuthenticationSuccess *AuthInfo    `json:"authenticationSuccess,omitempty"`
}

type SuccessKind int

const (
	KindUnknown SuccessKind = iota
	KindMembers
	KindOnline
	KindState
	KindAuthenticationSuccess
)

func (k SuccessKind) String() string {
	switch k {
	case KindMembers:
		return "members"
	case KindOnline:
		return "online"
	case KindState:
		return "state"
	case KindAuthenticationSuccess:
		return "authenticationSuccess"
	}
	return "unknown"
}

// Kind returns the single variant carried by this envelope,
// or KindUnknown if zero or more than one field is set.
func (s *Success) Kind() SuccessKind {
	kind := KindUnknown
	count := 0
	if s.Members != nil {
		kind = KindMembers
		count++
	}
	if s.Online != nil {
		kind = KindOnline
		count++
	}
	if s.State != nil {
		kind = KindState
		count++
	}
	if s.AuthenticationSuccess != nil {
		kind = KindAuthenticationSuccess
		count++
	}
	if count != 1 {
		return KindUnknown
	}
	return kind
}

// Envelope is a parsed inbound frame, tagged as success or error.
type Envelope struct {
	Success *Success    `json:"success,omitempty"`
	Error   *ErrorEvent `json:"error,omitempty"`
}
