package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/soundministry/escala/pkg/db"
)

type mockScheduleStore struct {
	schedule *db.Schedule
	getErr   error

	updatedStatus string
	deletedID     string
}

func (m *mockScheduleStore) GetSchedule(_ context.Context, _ string) (*db.Schedule, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	return m.schedule, nil
}

func (m *mockScheduleStore) UpdateScheduleStatus(_ context.Context, _, status string) error {
	m.updatedStatus = status
	return nil
}

func (m *mockScheduleStore) DeleteSchedule(_ context.Context, id string) error {
	m.deletedID = id
	return nil
}

func TestPublishSchedule(t *testing.T) {
	store := &mockScheduleStore{
		schedule: &db.Schedule{ID: "sch-1", Month: 2, Year: 2026, Status: "DRAFT"},
	}

	err := PublishSchedule(context.Background(), store, zap.NewNop(), "sch-1")
	require.NoError(t, err)
	assert.Equal(t, "PUBLISHED", store.updatedStatus)
}

func TestPublishSchedule_NotFound(t *testing.T) {
	store := &mockScheduleStore{}

	err := PublishSchedule(context.Background(), store, zap.NewNop(), "missing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
	assert.Empty(t, store.updatedStatus)
}

func TestPublishSchedule_AlreadyPublished(t *testing.T) {
	store := &mockScheduleStore{
		schedule: &db.Schedule{ID: "sch-1", Month: 2, Year: 2026, Status: "PUBLISHED"},
	}

	err := PublishSchedule(context.Background(), store, zap.NewNop(), "sch-1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already published")
	assert.Empty(t, store.updatedStatus)
}

func TestPublishSchedule_FetchError(t *testing.T) {
	store := &mockScheduleStore{getErr: errors.New("connection refused")}

	err := PublishSchedule(context.Background(), store, zap.NewNop(), "sch-1")
	require.Error(t, err)
	assert.Empty(t, store.updatedStatus)
}

func TestDeleteSchedule(t *testing.T) {
	store := &mockScheduleStore{
		schedule: &db.Schedule{ID: "sch-1", Month: 2, Year: 2026, Status: "DRAFT"},
	}

	err := DeleteSchedule(context.Background(), store, zap.NewNop(), "sch-1")
	require.NoError(t, err)
	assert.Equal(t, "sch-1", store.deletedID)
}

func TestDeleteSchedule_NotFound(t *testing.T) {
	store := &mockScheduleStore{}

	err := DeleteSchedule(context.Background(), store, zap.NewNop(), "missing")
	require.Error(t, err)
	assert.Empty(t, store.deletedID)
}
