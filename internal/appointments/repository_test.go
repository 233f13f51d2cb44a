package appointments

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepository(t *testing.T) *FileRepository {
	t.Helper()
	repo, err := NewFileRepository(filepath.Join(t.TempDir(), "appointments.json"))
	require.NoError(t, err)
	repo.now = func() time.Time { return time.Date(2025, 6, 11, 10, 0, 0, 0, time.UTC) }
	return repo
}

func validCreateRequest() *CreateRequest {
	return &CreateRequest{
		Name:        "Mehmet Demir",
		Phone:       "05321234567",
		VehicleType: "otomobil",
		Date:        "2025-06-16",
		Time:        "14:00",
	}
}

func TestAppendAssignsSequentialIDs(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	first, err := repo.Append(ctx, validCreateRequest())
	require.NoError(t, err)
	second, err := repo.Append(ctx, validCreateRequest())
	require.NoError(t, err)

	assert.Equal(t, 1, first.ID)
	assert.Equal(t, 2, second.ID)
	assert.Equal(t, "active", first.Status)
	assert.Equal(t, time.Date(2025, 6, 11, 10, 0, 0, 0, time.UTC), first.CreatedAt)
}

func TestAppendRejectsIncompleteRequest(t *testing.T) {
	repo := newTestRepository(t)

	req := validCreateRequest()
	req.Time = ""

	_, err := repo.Append(context.Background(), req)
	assert.ErrorIs(t, err, ErrMissingFields)

	all, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestIDsDoNotRepeatAfterDelete(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	first, err := repo.Append(ctx, validCreateRequest())
	require.NoError(t, err)
	second, err := repo.Append(ctx, validCreateRequest())
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, first.ID))

	third, err := repo.Append(ctx, validCreateRequest())
	require.NoError(t, err)
	assert.Greater(t, third.ID, second.ID)
}

func TestStoreSurvivesReopen(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "appointments.json")

	repo, err := NewFileRepository(path)
	require.NoError(t, err)
	created, err := repo.Append(context.Background(), validCreateRequest())
	require.NoError(t, err)

	reopened, err := NewFileRepository(path)
	require.NoError(t, err)
	got, err := reopened.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Mehmet Demir", got.Name)
}

func TestGetByIDNotFound(t *testing.T) {
	repo := newTestRepository(t)

	_, err := repo.GetByID(context.Background(), 99)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateAppliesOnlyProvidedFields(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	created, err := repo.Append(ctx, validCreateRequest())
	require.NoError(t, err)

	newTime := "15:30"
	newStatus := "cancelled"
	updated, err := repo.Update(ctx, created.ID, &UpdateRequest{Time: &newTime, Status: &newStatus})
	require.NoError(t, err)

	assert.Equal(t, "15:30", updated.Time)
	assert.Equal(t, "cancelled", updated.Status)
	assert.Equal(t, "Mehmet Demir", updated.Name)
	assert.Equal(t, "2025-06-16", updated.Date)
}

func TestUpdateNotFound(t *testing.T) {
	repo := newTestRepository(t)

	name := "Yeni İsim"
	_, err := repo.Update(context.Background(), 42, &UpdateRequest{Name: &name})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteRemovesRecord(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	created, err := repo.Append(ctx, validCreateRequest())
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, created.ID))
	_, err = repo.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, created.ID), ErrNotFound)
}

func TestNewFileRepositoryCreatesMissingDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "data", "appointments.json")

	_, err := NewFileRepository(path)
	require.NoError(t, err)

	_, err = os.Stat(path)
	assert.NoError(t, err)
}
