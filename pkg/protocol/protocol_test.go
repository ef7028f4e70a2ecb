package protocol

import (
	"testing"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestResumeRequestWireFormat(t *testing.T) {
	token := AuthToken(gofakeit.LetterN(32))

	payload, err := NewResumeRequest(token).Marshal()
	require.NoError(t, err)
	require.JSONEq(t, `{"connect":{"token":"`+string(token)+`"}}`, string(payload))
}

func TestSignupRequestWireFormat(t *testing.T) {
	payload, err := NewSignupRequest("Alice", "room1").Marshal()
	require.NoError(t, err)
	require.JSONEq(t, `{"connect":{"signup":{"name":"Alice","master":"room1"}}}`, string(payload))
}

func TestSignupValidation(t *testing.T) {
	testCases := []struct {
		name   string
		signup Signup
		ok     bool
	}{
		{"valid", Signup{Name: "Alice", Master: "room1"}, true},
		{"empty name", Signup{Name: "", Master: "room1"}, false},
		{"empty master", Signup{Name: "Alice", Master: ""}, false},
		{"name too long", Signup{Name: "Wolfgang", Master: "room1"}, false},
		{"master too long", Signup{Name: "Alice", Master: "chamber"}, false},
		{"master with space", Signup{Name: "Alice", Master: "a b"}, false},
		{"master with tab", Signup{Name: "Alice", Master: "a\tb"}, false},
		{"multibyte name within limit", Signup{Name: "ワトソン", Master: "room1"}, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.signup.Validate()
			if tc.ok {
				require.NoError(t, err)
			} else {
				require.Error(t, err)
			}
		})
	}
}

func TestParseSuccessEnvelopes(t *testing.T) {
	testCases := []struct {
		name    string
		payload string
		kind    SuccessKind
	}{
		{"members", `{"success":{"members":["Alice","Bob"]}}`, KindMembers},
		{"empty members", `{"success":{"members":[]}}`, KindMembers},
		{"online", `{"success":{"online":["Alice"]}}`, KindOnline},
		{"state", `{"success":{"state":{"waiting":{}}}}`, KindState},
		{"auth", `{"success":{"authenticationSuccess":{"token":"T1","name":"Alice","master":"room1"}}}`, KindAuthenticationSuccess},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			envelope, err := ParseEnvelope([]byte(tc.payload))
			require.NoError(t, err)
			require.Nil(t, envelope.Error)
			require.NotNil(t, envelope.Success)
			require.Equal(t, tc.kind, envelope.Success.Kind())
		})
	}
}

func TestParseErrorEnvelope(t *testing.T) {
	envelope, err := ParseEnvelope([]byte(`{"error":{"session":"authenticationFailed"}}`))
	require.NoError(t, err)
	require.Nil(t, envelope.Success)
	require.NotNil(t, envelope.Error)
	require.True(t, envelope.Error.IsAuthenticationFailed())
}

func TestParseOpaqueErrorEnvelope(t *testing.T) {
	payload := `{"error":{"jsonParse":"{bad frame"}}`

	envelope, err := ParseEnvelope([]byte(payload))
	require.NoError(t, err)
	require.NotNil(t, envelope.Error)
	require.False(t, envelope.Error.IsAuthenticationFailed())
	require.JSONEq(t, `{"jsonParse":"{bad frame"}`, string(envelope.Error.Raw))
}

func TestParseMalformedFrames(t *testing.T) {
	testCases := []struct {
		name    string
		payload string
	}{
		{"invalid json", `{"success":`},
		{"not an object", `42`},
		{"empty object", `{}`},
		{"both envelopes", `{"success":{"members":[]},"error":{"session":"x"}}`},
		{"empty success", `{"success":{}}`},
		{"two success fields", `{"success":{"members":[],"online":[]}}`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			envelope, err := ParseEnvelope([]byte(tc.payload))
			require.Error(t, err)
			require.True(t, errors.Is(err, ErrMalformedFrame))
			require.Nil(t, envelope)
		})
	}
}

func TestGameStatePhases(t *testing.T) {
	var nilState *GameState
	require.Equal(t, PhaseUnknown, nilState.Phase())

	waiting := NewWaitingState()
	require.Equal(t, PhaseWaiting, waiting.Phase())
	require.Nil(t, waiting.Roles())

	envelope, err := ParseEnvelope([]byte(`{"success":{"state":{"night":{"role":{"Alice":"wolf","Bob":"citizen"}}}}}`))
	require.NoError(t, err)

	state := envelope.Success.State
	require.Equal(t, PhaseNight, state.Phase())
	require.Equal(t, JobWolf, state.Roles()["Alice"])
	require.Equal(t, JobCitizen, state.Roles()["Bob"])
}

func TestUnknownJobPassesThrough(t *testing.T) {
	envelope, err := ParseEnvelope([]byte(`{"success":{"state":{"day":{"role":{"Alice":"jester"}}}}}`))
	require.NoError(t, err)

	job := envelope.Success.State.Roles()["Alice"]
	require.Equal(t, Job("jester"), job)
	require.False(t, job.Known())
	require.True(t, JobSeer.Known())
}
