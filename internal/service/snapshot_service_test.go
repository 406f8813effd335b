package service

import (
	"testing"

	"hospital-bed-backend/internal/models"
	"hospital-bed-backend/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newSnapshotService(db *gorm.DB) *SnapshotService {
	return NewSnapshotService(
		repository.NewHospitalRepository(db),
		repository.NewHistoryRepository(db),
		repository.NewAuditRepository(db),
		"0 23 * * *",
	)
}

func TestRunSnapshotsEveryHospital(t *testing.T) {
	db := openTestDB(t)
	hospitals := newHospitalService(db)
	snapshots := newSnapshotService(db)

	_, _, err := hospitals.Submit(submission("Tamale Teaching Hospital", 4, 16), nil)
	require.NoError(t, err)
	_, _, err = hospitals.Submit(submission("Cape Coast Teaching Hospital", 2, 8), nil)
	require.NoError(t, err)

	recorded, err := snapshots.Run()
	require.NoError(t, err)
	assert.Equal(t, 2, recorded)

	// One snapshot from each submission plus one from the run.
	var count int64
	require.NoError(t, db.Model(&models.HospitalHistory{}).Count(&count).Error)
	assert.Equal(t, int64(4), count)
}

func TestRunWithNoHospitals(t *testing.T) {
	db := openTestDB(t)
	snapshots := newSnapshotService(db)

	recorded, err := snapshots.Run()
	require.NoError(t, err)
	assert.Equal(t, 0, recorded)
}

func TestRepeatedRunsAverageWithinTheDay(t *testing.T) {
	db := openTestDB(t)
	hospitals := newHospitalService(db)
	snapshots := newSnapshotService(db)

	hospital, _, err := hospitals.Submit(submission("Ho Teaching Hospital", 6, 12), nil)
	require.NoError(t, err)

	_, err = snapshots.Run()
	require.NoError(t, err)
	_, err = snapshots.Run()
	require.NoError(t, err)

	daily, err := hospitals.History(hospital.ID, 7)
	require.NoError(t, err)

	// All three snapshots carry the same counts, so the daily mean is flat.
	require.Len(t, daily, 1)
	assert.InDelta(t, 6.0, daily[0].AvgICUBeds, 0.001)
	assert.InDelta(t, 12.0, daily[0].AvgRegularBeds, 0.001)
}

func TestRunManualWritesAudit(t *testing.T) {
	db := openTestDB(t)
	hospitals := newHospitalService(db)
	snapshots := newSnapshotService(db)

	_, _, err := hospitals.Submit(submission("Wa Regional Hospital", 1, 2), nil)
	require.NoError(t, err)

	recorded, err := snapshots.RunManual(nil)
	require.NoError(t, err)
	assert.Equal(t, 1, recorded)

	var logs []models.AuditLog
	require.NoError(t, db.Where("action = ?", "snapshot_run").Find(&logs).Error)
	assert.Len(t, logs, 1)
}
