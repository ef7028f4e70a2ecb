package transport

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWebsocketURL(t *testing.T) {
	testCases := []struct {
		name     string
		origin   string
		expected string
		ok       bool
	}{
		{"plain http", "http://localhost:3232", "ws://localhost:3232/ws", true},
		{"secure origin", "https://wolf.example.com", "wss://wolf.example.com/ws", true},
		{"explicit ws", "ws://localhost:3232/ws", "ws://localhost:3232/ws", true},
		{"explicit wss", "wss://wolf.example.com/ws", "wss://wolf.example.com/ws", true},
		{"custom path kept", "https://wolf.example.com/game", "wss://wolf.example.com/game", true},
		{"trailing slash", "http://localhost:3232/", "ws://localhost:3232/ws", true},
		{"unsupported scheme", "ftp://example.com", "", false},
		{"no host", "http://", "", false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			endpoint, err := WebsocketURL(tc.origin)
			if !tc.ok {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.expected, endpoint)
		})
	}
}
