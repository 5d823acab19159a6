package service

import (
	"testing"

	"railcollect_backend/internal/util"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func insertWantedWithScale(t *testing.T, env *testEnv, projectID, name string, scale interface{}) {
	t.Helper()

	err := env.db.Exec(
		`INSERT INTO wanted (id, project_id, name, scale, quantity, created_at, updated_at)
		 VALUES (?, ?, ?, ?, 1, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)`,
		uuid.New().String(), projectID, name, scale,
	).Error
	require.NoError(t, err)
}

func TestBackfillWantedScale(t *testing.T) {
	env := newTestEnv(t)
	projectID := env.createProject(t, "u1", "Legacy")

	insertWantedWithScale(t, env, projectID, "Old Row A", nil)
	insertWantedWithScale(t, env, projectID, "Old Row B", nil)
	insertWantedWithScale(t, env, projectID, "Good Row", "HO")

	maintenance := NewMaintenanceService(env.db)
	count, err := maintenance.BackfillWantedScale()
	require.NoError(t, err)
	assert.EqualValues(t, 2, count)

	var nullCount int64
	require.NoError(t, env.db.Table("wanted").Where("scale IS NULL").Count(&nullCount).Error)
	assert.EqualValues(t, 0, nullCount)

	var nCount int64
	require.NoError(t, env.db.Table("wanted").Where("scale = ?", "N").Count(&nCount).Error)
	assert.EqualValues(t, 2, nCount)
}

func TestBackfillAbortsOnInvalidScale(t *testing.T) {
	env := newTestEnv(t)
	projectID := env.createProject(t, "u1", "Corrupt")

	insertWantedWithScale(t, env, projectID, "Bad Row", "XX")
	insertWantedWithScale(t, env, projectID, "Null Row", nil)

	maintenance := NewMaintenanceService(env.db)
	_, err := maintenance.BackfillWantedScale()
	assert.ErrorIs(t, err, util.ErrInvalidScaleData)

	// Nothing was written: the NULL row is still NULL.
	var nullCount int64
	require.NoError(t, env.db.Table("wanted").Where("scale IS NULL").Count(&nullCount).Error)
	assert.EqualValues(t, 1, nullCount)
}

func TestBackfillNothingToDo(t *testing.T) {
	env := newTestEnv(t)
	projectID := env.createProject(t, "u1", "Clean")

	require.NoError(t, env.wanted.AddWanted(projectID, "u1", AddWantedInput{
		Scale: "N", Name: "Fine As Is",
	}))

	maintenance := NewMaintenanceService(env.db)
	count, err := maintenance.BackfillWantedScale()
	require.NoError(t, err)
	assert.EqualValues(t, 0, count)
}
