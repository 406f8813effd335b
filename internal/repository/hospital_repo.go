package repository

import (
	"errors"
	"strings"

	"hospital-bed-backend/internal/models"

	"gorm.io/gorm"
)

// ErrHospitalNotFound is returned when a lookup or delete matches no row.
var ErrHospitalNotFound = errors.New("hospital not found")

type HospitalRepository struct {
	db *gorm.DB
}

func NewHospitalRepository(db *gorm.DB) *HospitalRepository {
	return &HospitalRepository{db: db}
}

// List returns hospitals matching the optional search and region filters,
// newest submission first. Search matches the name case-insensitively.
func (r *HospitalRepository) List(search, region string) ([]models.Hospital, error) {
	var hospitals []models.Hospital

	query := r.db.Model(&models.Hospital{})
	if search != "" {
		query = query.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(search)+"%")
	}
	if region != "" {
		query = query.Where("region = ?", region)
	}

	err := query.Order("timestamp DESC").Find(&hospitals).Error
	if err != nil {
		return nil, err
	}
	return hospitals, nil
}

// GetByID fetches a single hospital by primary key.
func (r *HospitalRepository) GetByID(id uint) (*models.Hospital, error) {
	var hospital models.Hospital
	err := r.db.First(&hospital, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrHospitalNotFound
		}
		return nil, err
	}
	return &hospital, nil
}

// FindByName resolves a hospital by case-insensitive exact name match.
// This is the lookup the upsert path uses to decide create versus update.
func (r *HospitalRepository) FindByName(name string) (*models.Hospital, error) {
	var hospital models.Hospital
	err := r.db.Where("LOWER(name) = LOWER(?)", name).First(&hospital).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrHospitalNotFound
		}
		return nil, err
	}
	return &hospital, nil
}

// Create inserts a new hospital row.
func (r *HospitalRepository) Create(hospital *models.Hospital) error {
	return r.db.Create(hospital).Error
}

// Update persists all fields of an existing hospital.
func (r *HospitalRepository) Update(hospital *models.Hospital) error {
	return r.db.Save(hospital).Error
}

// Delete removes a hospital and all of its history snapshots in one
// transaction. Returns ErrHospitalNotFound when the id matches no row.
func (r *HospitalRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("hospital_id = ?", id).Delete(&models.HospitalHistory{}).Error; err != nil {
			return err
		}

		result := tx.Delete(&models.Hospital{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrHospitalNotFound
		}
		return nil
	})
}

// Stats aggregates the dashboard totals across all hospitals.
func (r *HospitalRepository) Stats() (*models.BedStats, error) {
	var stats models.BedStats
	err := r.db.Model(&models.Hospital{}).
		Select("COUNT(*) AS total_hospitals, COALESCE(SUM(icu_beds), 0) AS total_icu_beds, COALESCE(SUM(regular_beds), 0) AS total_regular_beds").
		Scan(&stats).Error
	if err != nil {
		return nil, err
	}
	return &stats, nil
}
