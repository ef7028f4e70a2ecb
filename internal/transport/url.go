package transport

import (
	"net/url"

	"github.com/pkg/errors"
)

const websocketPath = "/ws"

// WebsocketURL converts a server origin into the websocket endpoint.
// A secure origin (https) maps to wss, anything else maps to ws.
func WebsocketURL(origin string) (string, error) {
	u, err := url.Parse(origin)
	if err != nil {
		return "", errors.Wrap(err, "failed to parse server url")
	}

	switch u.Scheme {
	case "https", "wss":
		u.Scheme = "wss"
	case "http", "ws":
		u.Scheme = "ws"
	default:
		return "", errors.Errorf("unsupported url scheme %q", u.Scheme)
	}

	if u.Host == "" {
		return "", errors.New("server url has no host")
	}

	if u.Path == "" || u.Path == "/" {
		u.Path = websocketPath
	}

	return u.String(), nil
}
