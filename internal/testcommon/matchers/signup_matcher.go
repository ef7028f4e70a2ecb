package matchers

import (
	"fmt"
	"testing"
)

// SignupMatcher matches a connect request carrying a signup form.
type SignupMatcher struct {
	RequestMatcher
	name   string
	master string
}

func NewSignupMatcher(t *testing.T, name string, master string) *SignupMatcher {
	return &SignupMatcher{
		RequestMatcher: *NewRequestMatcher(t),
		name:           name,
		master:         master,
	}
}

func (m *SignupMatcher) Matches(x interface{}) bool {
	if !m.RequestMatcher.Matches(x) {
		return false
	}

	signup := m.request.Connect.Signup
	if signup == nil {
		return false
	}
	if !m.request.Connect.Token.Empty() {
		return false
	}
	if signup.Name != m.name || signup.Master != m.master {
		return false
	}

	m.triggered <- *m.request
	return true
}

func (m *SignupMatcher) String() string {
	return fmt.Sprintf("is signup request for %q in room %q", m.name, m.master)
}
