package matchers

import (
	"testing"

	"github.com/fullmoon-games/werewolf-cli/pkg/protocol"
)

// ResumeMatcher matches a connect request carrying the given token.
type ResumeMatcher struct {
	RequestMatcher
	token protocol.AuthToken
}

func NewResumeMatcher(t *testing.T, token protocol.AuthToken) *ResumeMatcher {
	return &ResumeMatcher{
		RequestMatcher: *NewRequestMatcher(t),
		token:          token,
	}
}

func (m *ResumeMatcher) Matches(x interface{}) bool {
	if !m.RequestMatcher.Matches(x) {
		return false
	}

	if m.request.Connect.Signup != nil {
		return false
	}
	if m.request.Connect.Token != m.token {
		return false
	}

	m.triggered <- *m.request
	return true
}

func (m *ResumeMatcher) String() string {
	return "is resume request with token " + string(m.token)
}
