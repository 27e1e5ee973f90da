package database

import (
	"context"
	"testing"

	"assessment-portal/internal/models"

	"github.com/stretchr/testify/require"
)

func TestGetDashboardStats(t *testing.T) {
	resetTables(t)
	ctx := context.Background()

	first := createTestChild(t, "Asha")
	createTestChild(t, "Ravi")
	_, err := testStore.SetChildStatus(ctx, first.ChildID, models.ChildStatusInactive)
	require.NoError(t, err)

	open := openTestChildSession(t, "CH002", models.SessionSuccess)
	closed := openTestChildSession(t, "CH002", models.SessionSuccess)
	_, err = testStore.CloseSession(ctx, models.PrincipalChild, closed.ID)
	require.NoError(t, err)
	openTestChildSession(t, "CH404", models.SessionFailed)
	require.True(t, open.IsOpen())

	stats, err := testStore.GetDashboardStats(ctx)
	require.NoError(t, err)
	require.Equal(t, int64(2), stats.TotalChildren)
	require.Equal(t, int64(1), stats.ActiveChildren)
	require.Equal(t, int64(1), stats.InactiveChildren)
	require.Equal(t, int64(1), stats.OpenChildSessions)
	require.Equal(t, int64(2), stats.ChildSessionsToday)
	require.Equal(t, int64(1), stats.FailedChildAttemptsToday)
	require.Equal(t, int64(0), stats.AdminLoginsToday)
}
