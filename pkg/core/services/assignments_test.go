package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/soundministry/escala/pkg/db"
)

type mockAssignmentStore struct {
	existing *db.Assignment

	inserted  *db.Assignment
	deletedID string
}

func (m *mockAssignmentStore) GetAssignmentByEventOperator(_ context.Context, _, _ string) (*db.Assignment, error) {
	return m.existing, nil
}

func (m *mockAssignmentStore) InsertAssignment(_ context.Context, a *db.Assignment) error {
	m.inserted = a
	return nil
}

func (m *mockAssignmentStore) DeleteAssignment(_ context.Context, id string) error {
	m.deletedID = id
	return nil
}

func TestAddAssignment(t *testing.T) {
	store := &mockAssignmentStore{}

	assignment, err := AddAssignment(context.Background(), store, zap.NewNop(), "evt-1", "op-1")
	require.NoError(t, err)
	require.NotNil(t, assignment)

	assert.Equal(t, "evt-1", assignment.EventID)
	assert.Equal(t, "op-1", assignment.OperatorID)
	assert.True(t, assignment.IsManual)
	assert.NotEmpty(t, assignment.ID)
	assert.Equal(t, assignment, store.inserted)
}

func TestAddAssignment_DuplicateOperator(t *testing.T) {
	store := &mockAssignmentStore{
		existing: &db.Assignment{ID: "asg-1", EventID: "evt-1", OperatorID: "op-1"},
	}

	assignment, err := AddAssignment(context.Background(), store, zap.NewNop(), "evt-1", "op-1")
	require.Error(t, err)
	assert.Nil(t, assignment)
	assert.Contains(t, err.Error(), "already assigned")
	assert.Nil(t, store.inserted)
}

func TestAddAssignment_MissingIDs(t *testing.T) {
	store := &mockAssignmentStore{}

	_, err := AddAssignment(context.Background(), store, zap.NewNop(), "", "op-1")
	require.Error(t, err)

	_, err = AddAssignment(context.Background(), store, zap.NewNop(), "evt-1", "")
	require.Error(t, err)

	assert.Nil(t, store.inserted)
}

func TestRemoveAssignment(t *testing.T) {
	store := &mockAssignmentStore{}

	err := RemoveAssignment(context.Background(), store, zap.NewNop(), "asg-1")
	require.NoError(t, err)
	assert.Equal(t, "asg-1", store.deletedID)
}

func TestRemoveAssignment_MissingID(t *testing.T) {
	store := &mockAssignmentStore{}

	err := RemoveAssignment(context.Background(), store, zap.NewNop(), "")
	require.Error(t, err)
	assert.Empty(t, store.deletedID)
}
