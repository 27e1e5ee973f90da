package database

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCreateAndGetAdmin(t *testing.T) {
	resetTables(t)
	ctx := context.Background()

	admin, err := testStore.CreateAdmin(ctx, CreateAdminParams{
		Email:        "admin@example.com",
		PasswordHash: "hash",
		Name:         "Site Admin",
	})
	require.NoError(t, err)
	require.NotZero(t, admin.ID)

	byEmail, err := testStore.GetAdminByEmail(ctx, "admin@example.com")
	require.NoError(t, err)
	require.Equal(t, admin.ID, byEmail.ID)
	require.Equal(t, "hash", byEmail.PasswordHash)

	byID, err := testStore.GetAdminByID(ctx, admin.ID)
	require.NoError(t, err)
	require.Equal(t, "Site Admin", byID.Name)

	missing, err := testStore.GetAdminByEmail(ctx, "nobody@example.com")
	require.NoError(t, err)
	require.Nil(t, missing)

	_, err = testStore.CreateAdmin(ctx, CreateAdminParams{Email: "admin@example.com", PasswordHash: "x", Name: "Dup"})
	require.ErrorIs(t, err, ErrDuplicate)
}
