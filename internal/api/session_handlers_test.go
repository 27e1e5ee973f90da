package api

import (
	"net/http"
	"testing"

	"assessment-portal/internal/models"

	"github.com/stretchr/testify/require"
)

const iphoneSafari = "Mozilla/5.0 (iPhone; CPU iPhone OS 17_0 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.0 Mobile/15E148 Safari/604.1"

func startSession(t *testing.T, childID string, opts ...requestOption) int64 {
	t.Helper()
	rr := doRequest(t, testHandler, http.MethodPost, "/api/sessions/start", StartSessionRequest{ChildID: childID}, opts...)
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	return decodeBody[StartSessionResponse](t, rr).SessionID
}

func TestAPI_SessionLifecycle(t *testing.T) {
	resetLedgers(t)
	registerAsha(t)

	sessionID := startSession(t, "ch001",
		withHeader("User-Agent", iphoneSafari),
		withHeader("X-Forwarded-For", "203.0.113.5, 10.0.0.1"),
	)

	session, err := testStore.GetSession(t.Context(), models.PrincipalChild, sessionID)
	require.NoError(t, err)
	require.Equal(t, "CH001", *session.ChildID)
	require.Equal(t, models.SessionSuccess, session.Status)
	require.Equal(t, "203.0.113.5", session.IPAddress)
	require.Equal(t, "mobile", session.DeviceType)
	require.Equal(t, "Safari", session.Browser)
	require.Equal(t, testLocation, session.Location)
	require.True(t, session.IsOpen())

	path := "/api/sessions/end/" + itoa(sessionID)
	rr := doRequest(t, testHandler, http.MethodPost, path, nil)
	require.Equal(t, http.StatusOK, rr.Code)
	require.Equal(t, "Session ended successfully", decodeBody[MessageResponse](t, rr).Message)

	rr = doRequest(t, testHandler, http.MethodPost, path, nil)
	require.Equal(t, http.StatusNotFound, rr.Code)
	require.Equal(t, "Active session not found or already ended.", decodeBody[ErrorResponse](t, rr).Message)

	closed, err := testStore.GetSession(t.Context(), models.PrincipalChild, sessionID)
	require.NoError(t, err)
	require.NotNil(t, closed.LogoutTime)
	require.NotNil(t, closed.Duration)
	require.GreaterOrEqual(t, *closed.Duration, int64(0))
}

func TestAPI_StartSessionLoopback(t *testing.T) {
	resetLedgers(t)

	sessionID := startSession(t, "CH001", withHeader("X-Real-IP", "127.0.0.1"))

	session, err := testStore.GetSession(t.Context(), models.PrincipalChild, sessionID)
	require.NoError(t, err)
	require.Equal(t, "Localhost", session.Location)
}

func TestAPI_StartSessionRequiresChildID(t *testing.T) {
	resetLedgers(t)

	rr := doRequest(t, testHandler, http.MethodPost, "/api/sessions/start", StartSessionRequest{})
	require.Equal(t, http.StatusBadRequest, rr.Code)
	require.Equal(t, "Child ID is required", decodeBody[ErrorResponse](t, rr).Message)
}

func TestAPI_EndSessionBadID(t *testing.T) {
	rr := doRequest(t, testHandler, http.MethodPost, "/api/sessions/end/abc", nil)
	require.Equal(t, http.StatusBadRequest, rr.Code)

	rr = doRequest(t, testHandler, http.MethodPost, "/api/sessions/end/0", nil)
	require.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestAPI_FailSession(t *testing.T) {
	resetLedgers(t)

	rr := doRequest(t, testHandler, http.MethodPost, "/api/sessions/fail", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	require.Equal(t, "Failed attempt logged", decodeBody[MessageResponse](t, rr).Message)

	rr = doRequest(t, testHandler, http.MethodPost, "/api/sessions/fail", FailSessionRequest{AttemptedChildID: "ch999"})
	require.Equal(t, http.StatusOK, rr.Code)

	sessions, err := testStore.ListSessionsSince(t.Context(), models.PrincipalChild, 0, 10)
	require.NoError(t, err)
	require.Len(t, sessions, 2)
	require.Equal(t, models.UnknownPrincipal, *sessions[0].ChildID)
	require.Equal(t, "ch999", *sessions[1].ChildID)
	for _, s := range sessions {
		require.Equal(t, models.SessionFailed, s.Status)
		require.Nil(t, s.LogoutTime)
	}

	// A failed attempt can never be ended.
	rr = doRequest(t, testHandler, http.MethodPost, "/api/sessions/end/"+itoa(sessions[0].ID), nil)
	require.Equal(t, http.StatusNotFound, rr.Code)
}
