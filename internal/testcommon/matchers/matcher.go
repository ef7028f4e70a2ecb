package matchers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/fullmoon-games/werewolf-cli/pkg/protocol"
)

const waitTimeout = 1 * time.Second

// Matcher is the base for the request matchers below. Matches pushes
// the parsed request to triggered; Wait blocks until one arrived.
type Matcher struct {
	t         *testing.T
	triggered chan protocol.Request
}

func NewMatcher(t *testing.T) *Matcher {
	return &Matcher{
		t:         t,
		triggered: make(chan protocol.Request, 42),
	}
}

func (m *Matcher) Wait() protocol.Request {
	select {
	case <-time.After(waitTimeout):
		require.Fail(m.t, "timeout waiting for matched request")
		return protocol.Request{}
	case request := <-m.triggered:
		return request
	}
}
