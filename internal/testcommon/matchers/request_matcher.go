package matchers

import (
	"testing"

	"github.com/goccy/go-json"

	"github.com/fullmoon-games/werewolf-cli/pkg/protocol"
)

// RequestMatcher matches a raw outgoing frame that parses as a
// protocol request.
type RequestMatcher struct {
	Matcher
	payload []byte
	request *protocol.Request
}

func NewRequestMatcher(t *testing.T) *RequestMatcher {
	return &RequestMatcher{
		Matcher: *NewMatcher(t),
	}
}

func (m *RequestMatcher) Matches(x interface{}) bool {
	m.request = nil

	payload, ok := x.([]byte)
	if !ok || payload == nil {
		return false
	}
	m.payload = payload

	request := &protocol.Request{}
	if err := json.Unmarshal(payload, request); err != nil {
		return false
	}
	if request.Connect == nil {
		return false
	}

	m.request = request
	return true
}

func (m *RequestMatcher) String() string {
	return "is protocol request"
}
