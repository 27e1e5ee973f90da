package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func registerAsha(t *testing.T) string {
	t.Helper()
	rr := doRequest(t, testHandler, http.MethodPost, "/api/children/register", RegisterChildRequest{
		Name:   "Asha",
		DOB:    "2016-05-10",
		Gender: "female",
		Mobile: "9876543210",
	})
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	return decodeBody[RegisterChildResponse](t, rr).ChildID
}

func TestAPI_RegisterAndLookup(t *testing.T) {
	resetLedgers(t)

	childID := registerAsha(t)
	require.Equal(t, "CH001", childID)

	rr := doRequest(t, testHandler, http.MethodGet, "/api/children/lookup/ch001", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	body := decodeBody[map[string]any](t, rr)
	require.Equal(t, "CH001", body["child_id"])
	require.Equal(t, "Asha", body["name"])
	require.Equal(t, "2016-05-10", body["dob"])
	require.Equal(t, "female", body["gender"])
	require.Equal(t, "9876543210", body["mobile"])
	require.NotContains(t, body, "status")
	require.NotContains(t, body, "created_at")
}

func TestAPI_RegisterSequentialIDs(t *testing.T) {
	resetLedgers(t)

	require.Equal(t, "CH001", registerAsha(t))
	require.Equal(t, "CH002", registerAsha(t))
}

func TestAPI_RegisterValidation(t *testing.T) {
	resetLedgers(t)

	rr := doRequest(t, testHandler, http.MethodPost, "/api/children/register", RegisterChildRequest{
		Name:   "Asha",
		DOB:    "2016-05-10",
		Gender: "female",
		Mobile: "98765",
	})
	require.Equal(t, http.StatusBadRequest, rr.Code)

	body := decodeBody[ErrorResponse](t, rr)
	require.Len(t, body.Fields, 1)
	require.Equal(t, "mobile", body.Fields[0].Field)

	rr = doRequest(t, testHandler, http.MethodPost, "/api/children/register", RegisterChildRequest{})
	require.Equal(t, http.StatusBadRequest, rr.Code)
	require.Len(t, decodeBody[ErrorResponse](t, rr).Fields, 4)

	children, err := testStore.ListChildren(t.Context())
	require.NoError(t, err)
	require.Empty(t, children)
}

func TestAPI_RegisterInvalidBody(t *testing.T) {
	rr := doRequest(t, testHandler, http.MethodPost, "/api/children/register", "not an object")
	require.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestAPI_LookupUnknown(t *testing.T) {
	resetLedgers(t)

	rr := doRequest(t, testHandler, http.MethodGet, "/api/children/lookup/CH404", nil)
	require.Equal(t, http.StatusNotFound, rr.Code)
	require.Equal(t, "Child ID not found.", decodeBody[ErrorResponse](t, rr).Message)
}
