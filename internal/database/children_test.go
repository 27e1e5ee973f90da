package database

import (
	"context"
	"fmt"
	"testing"
	"time"

	"assessment-portal/internal/models"

	"github.com/stretchr/testify/require"
)

func createTestChild(t *testing.T, name string) *models.Child {
	t.Helper()
	ctx := context.Background()

	var childID string
	err := testStore.ExecTx(ctx, func(q *Queries) error {
		id, err := q.CreateChild(ctx, CreateChildParams{
			Name:   name,
			DOB:    time.Date(2016, 5, 10, 0, 0, 0, 0, time.UTC),
			Gender: models.GenderFemale,
			Mobile: "9876543210",
		})
		if err != nil {
			return err
		}
		childID = fmt.Sprintf("CH%03d", id)
		return q.AssignChildID(ctx, id, childID)
	})
	require.NoError(t, err)

	child, err := testStore.GetChildByChildID(ctx, childID)
	require.NoError(t, err)
	require.NotNil(t, child)
	return child
}

func TestCreateAndGetChild(t *testing.T) {
	resetTables(t)

	child := createTestChild(t, "Asha")

	require.Equal(t, "CH001", child.ChildID)
	require.Equal(t, "Asha", child.Name)
	require.Equal(t, "2016-05-10", child.DOB)
	require.Equal(t, models.GenderFemale, child.Gender)
	require.Equal(t, models.ChildStatusActive, child.Status)
	require.WithinDuration(t, time.Now(), child.CreatedAt, time.Minute)

	missing, err := testStore.GetChildByChildID(context.Background(), "CH999")
	require.NoError(t, err)
	require.Nil(t, missing)
}

func TestAssignChildIDOnlyOnce(t *testing.T) {
	resetTables(t)
	child := createTestChild(t, "Asha")

	err := testStore.AssignChildID(context.Background(), child.ID, "CH777")
	require.ErrorIs(t, err, ErrChildNotFound)
}

func TestAssignChildIDDuplicate(t *testing.T) {
	resetTables(t)
	createTestChild(t, "Asha")
	ctx := context.Background()

	id, err := testStore.CreateChild(ctx, CreateChildParams{
		Name:   "Ravi",
		DOB:    time.Date(2015, 1, 20, 0, 0, 0, 0, time.UTC),
		Gender: models.GenderMale,
		Mobile: "9123456780",
	})
	require.NoError(t, err)

	err = testStore.AssignChildID(ctx, id, "CH001")
	require.ErrorIs(t, err, ErrDuplicate)
}

func TestRegistrationRollsBack(t *testing.T) {
	resetTables(t)
	ctx := context.Background()

	err := testStore.ExecTx(ctx, func(q *Queries) error {
		_, err := q.CreateChild(ctx, CreateChildParams{
			Name:   "Ghost",
			DOB:    time.Date(2016, 5, 10, 0, 0, 0, 0, time.UTC),
			Gender: models.GenderOther,
			Mobile: "9000000000",
		})
		if err != nil {
			return err
		}
		return fmt.Errorf("abort")
	})
	require.Error(t, err)

	children, err := testStore.ListChildren(ctx)
	require.NoError(t, err)
	require.Empty(t, children)
}

func TestListChildrenNewestFirst(t *testing.T) {
	resetTables(t)
	createTestChild(t, "First")
	createTestChild(t, "Second")

	children, err := testStore.ListChildren(context.Background())
	require.NoError(t, err)
	require.Len(t, children, 2)
	require.Equal(t, "CH002", children[0].ChildID)
	require.Equal(t, "CH001", children[1].ChildID)
}

func TestUpdateChildAndStatus(t *testing.T) {
	resetTables(t)
	child := createTestChild(t, "Asha")
	ctx := context.Background()

	ok, err := testStore.UpdateChild(ctx, UpdateChildParams{
		ChildID: child.ChildID,
		Name:    "Asha K",
		DOB:     time.Date(2016, 6, 1, 0, 0, 0, 0, time.UTC),
		Gender:  models.GenderFemale,
		Mobile:  "9000000001",
		Status:  models.ChildStatusActive,
	})
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = testStore.SetChildStatus(ctx, child.ChildID, models.ChildStatusInactive)
	require.NoError(t, err)
	require.True(t, ok)

	updated, err := testStore.GetChildByChildID(ctx, child.ChildID)
	require.NoError(t, err)
	require.Equal(t, "Asha K", updated.Name)
	require.Equal(t, "2016-06-01", updated.DOB)
	require.Equal(t, "9000000001", updated.Mobile)
	require.Equal(t, models.ChildStatusInactive, updated.Status)

	ok, err = testStore.SetChildStatus(ctx, "CH404", models.ChildStatusActive)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestChildStatusConstraint(t *testing.T) {
	resetTables(t)
	child := createTestChild(t, "Asha")

	_, err := testStore.SetChildStatus(context.Background(), child.ChildID, "archived")
	require.Error(t, err)
}
