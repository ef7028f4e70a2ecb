package protocol

import (
	"github.com/goccy/go-json"
	"github.com/pkg/errors"
)

// ErrMalformedFrame marks a protocol violation: a frame that is not
// valid JSON or matches neither envelope shape. Such frames are meant
// to be logged and discarded, never to kill the connection.
var ErrMalformedFrame = errors.New("malformed frame")

func (r *Request) Marshal() ([]byte, error) {
	payload, err := json.Marshal(r)
	return payload, errors.Wrap(err, "failed to marshal request")
}

// ParseEnvelope classifies an inbound frame as exactly one of a
// success or an error envelope.
func ParseEnvelope(payload []byte) (*Envelope, error) {
	envelope := &Envelope{}
	if err := json.Unmarshal(payload, envelope); err != nil {
		return nil, errors.Wrapf(ErrMalformedFrame, "invalid json: %s", err)
	}

	if (envelope.Success == nil) == (envelope.Error == nil) {
		return nil, errors.Wrap(ErrMalformedFrame, "expected exactly one of success or error")
	}

	if envelope.Success != nil && envelope.Success.Kind() == KindUnknown {
		return nil, errors.Wrap(ErrMalformedFrame, "unrecognized success payload")
	}

	return envelope, nil
}
