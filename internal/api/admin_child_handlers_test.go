package api

import (
	"net/http"
	"testing"

	"assessment-portal/internal/database"
	"assessment-portal/internal/models"

	"github.com/stretchr/testify/require"
)

func TestAPI_AdminChildrenFlow(t *testing.T) {
	resetLedgers(t)
	token := loginAdmin(t).Token

	registerAsha(t)

	rr := doRequest(t, testHandler, http.MethodPost, "/api/admin/children", RegisterChildRequest{
		Name:   "Ravi",
		DOB:    "2015-01-20",
		Gender: "male",
		Mobile: "9123456780",
	}, withToken(token))
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	created := decodeBody[AdminCreateChildResponse](t, rr)
	require.Equal(t, "CH002", created.ChildID)

	rr = doRequest(t, testHandler, http.MethodPut, "/api/admin/children/ch001/status",
		SetChildStatusRequest{Status: "inactive"}, withToken(token))
	require.Equal(t, http.StatusOK, rr.Code)
	require.Equal(t, "Child status updated to inactive.", decodeBody[MessageResponse](t, rr).Message)

	rr = doRequest(t, testHandler, http.MethodGet, "/api/admin/children/CH001", nil, withToken(token))
	require.Equal(t, http.StatusOK, rr.Code)
	child := decodeBody[models.Child](t, rr)
	require.Equal(t, models.ChildStatusInactive, child.Status)

	rr = doRequest(t, testHandler, http.MethodGet, "/api/admin/children", nil, withToken(token))
	require.Equal(t, http.StatusOK, rr.Code)
	list := decodeBody[[]models.Child](t, rr)
	require.Len(t, list, 2)
	require.Equal(t, "CH002", list[0].ChildID)
	require.Equal(t, "CH001", list[1].ChildID)
	require.Equal(t, models.ChildStatusInactive, list[1].Status)
}

func TestAPI_AdminUpdateChild(t *testing.T) {
	resetLedgers(t)
	token := loginAdmin(t).Token
	registerAsha(t)

	mobile := "9000000001"
	rr := doRequest(t, testHandler, http.MethodPut, "/api/admin/children/CH001",
		UpdateChildRequest{Mobile: &mobile}, withToken(token))
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	child, err := testStore.GetChildByChildID(t.Context(), "CH001")
	require.NoError(t, err)
	require.Equal(t, mobile, child.Mobile)
	require.Equal(t, "Asha", child.Name)
	require.Equal(t, "2016-05-10", child.DOB)

	bad := "123"
	rr = doRequest(t, testHandler, http.MethodPut, "/api/admin/children/CH001",
		UpdateChildRequest{Mobile: &bad}, withToken(token))
	require.Equal(t, http.StatusBadRequest, rr.Code)

	name := "Nobody"
	rr = doRequest(t, testHandler, http.MethodPut, "/api/admin/children/CH404",
		UpdateChildRequest{Name: &name}, withToken(token))
	require.Equal(t, http.StatusNotFound, rr.Code)
}

func TestAPI_AdminSetStatusValidation(t *testing.T) {
	resetLedgers(t)
	token := loginAdmin(t).Token
	registerAsha(t)

	rr := doRequest(t, testHandler, http.MethodPut, "/api/admin/children/CH001/status",
		SetChildStatusRequest{Status: "archived"}, withToken(token))
	require.Equal(t, http.StatusBadRequest, rr.Code)

	rr = doRequest(t, testHandler, http.MethodPut, "/api/admin/children/CH404/status",
		SetChildStatusRequest{Status: "active"}, withToken(token))
	require.Equal(t, http.StatusNotFound, rr.Code)
}

func TestAPI_DashboardAndSessions(t *testing.T) {
	resetLedgers(t)
	token := loginAdmin(t).Token
	registerAsha(t)

	startSession(t, "CH001")
	rr := doRequest(t, testHandler, http.MethodPost, "/api/sessions/fail", FailSessionRequest{AttemptedChildID: "CH404"})
	require.Equal(t, http.StatusOK, rr.Code)

	rr = doRequest(t, testHandler, http.MethodGet, "/api/admin/dashboard", nil, withToken(token))
	require.Equal(t, http.StatusOK, rr.Code)
	stats := decodeBody[database.DashboardStats](t, rr)
	require.Equal(t, int64(1), stats.TotalChildren)
	require.Equal(t, int64(1), stats.OpenChildSessions)
	require.Equal(t, int64(1), stats.FailedChildAttemptsToday)
	require.Equal(t, int64(1), stats.AdminLoginsToday)

	rr = doRequest(t, testHandler, http.MethodGet, "/api/admin/sessions?since=1", nil, withToken(token))
	require.Equal(t, http.StatusOK, rr.Code)
	sessions := decodeBody[[]models.Session](t, rr)
	require.Len(t, sessions, 1)
	require.Equal(t, models.SessionFailed, sessions[0].Status)

	rr = doRequest(t, testHandler, http.MethodGet, "/api/admin/sessions?kind=admin", nil, withToken(token))
	require.Equal(t, http.StatusOK, rr.Code)
	require.Len(t, decodeBody[[]models.Session](t, rr), 1)

	rr = doRequest(t, testHandler, http.MethodGet, "/api/admin/sessions?kind=guardian", nil, withToken(token))
	require.Equal(t, http.StatusBadRequest, rr.Code)

	rr = doRequest(t, testHandler, http.MethodGet, "/api/admin/sessions?since=abc", nil, withToken(token))
	require.Equal(t, http.StatusBadRequest, rr.Code)
}
