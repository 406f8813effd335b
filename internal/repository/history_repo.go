package repository

import (
	"time"

	"hospital-bed-backend/internal/models"

	"gorm.io/gorm"
)

type HistoryRepository struct {
	db *gorm.DB
}

func NewHistoryRepository(db *gorm.DB) *HistoryRepository {
	return &HistoryRepository{db: db}
}

// CreateSnapshot appends one availability snapshot for a hospital,
// stamped with the current UTC time.
func (r *HistoryRepository) CreateSnapshot(hospitalID uint, icuBeds, regularBeds int) error {
	snapshot := models.HospitalHistory{
		HospitalID:  hospitalID,
		ICUBeds:     icuBeds,
		RegularBeds: regularBeds,
		RecordedAt:  time.Now().UTC(),
	}
	return r.db.Create(&snapshot).Error
}

// ListSince returns all snapshots for a hospital recorded at or after the
// given time, oldest first. Ascending order lets callers aggregate by day
// while keeping chronological output.
func (r *HistoryRepository) ListSince(hospitalID uint, since time.Time) ([]models.HospitalHistory, error) {
	var snapshots []models.HospitalHistory
	err := r.db.
		Where("hospital_id = ? AND recorded_at >= ?", hospitalID, since).
		Order("recorded_at ASC").
		Find(&snapshots).Error
	if err != nil {
		return nil, err
	}
	return snapshots, nil
}
