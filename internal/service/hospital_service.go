package service

import (
	"errors"
	"fmt"
	"time"

	"hospital-bed-backend/internal/models"
	"hospital-bed-backend/internal/repository"

	"gorm.io/gorm"
)

type HospitalService struct {
	db           *gorm.DB
	hospitalRepo *repository.HospitalRepository
	historyRepo  *repository.HistoryRepository
	auditRepo    *repository.AuditRepository
}

func NewHospitalService(db *gorm.DB, hospitalRepo *repository.HospitalRepository, historyRepo *repository.HistoryRepository, auditRepo *repository.AuditRepository) *HospitalService {
	return &HospitalService{
		db:           db,
		hospitalRepo: hospitalRepo,
		historyRepo:  historyRepo,
		auditRepo:    auditRepo,
	}
}

// List returns hospitals matching the optional search and region filters.
func (s *HospitalService) List(search, region string) ([]models.Hospital, error) {
	return s.hospitalRepo.List(search, region)
}

// Get fetches a single hospital by id.
func (s *HospitalService) Get(id uint) (*models.Hospital, error) {
	return s.hospitalRepo.GetByID(id)
}

// Submit applies one availability submission. A hospital whose name matches
// case-insensitively is updated, any other name creates a new row. The
// returned bool is true on create. The submitted counts are snapshotted into
// history on both paths, and the snapshot and row write happen in one
// transaction so a failed write never leaves a stray snapshot.
func (s *HospitalService) Submit(input *models.HospitalInput, userID *uint) (*models.Hospital, bool, error) {
	var saved *models.Hospital
	var created bool

	err := s.db.Transaction(func(tx *gorm.DB) error {
		hospitals := repository.NewHospitalRepository(tx)
		history := repository.NewHistoryRepository(tx)

		existing, err := hospitals.FindByName(input.Name)
		if err != nil && !errors.Is(err, repository.ErrHospitalNotFound) {
			return err
		}

		now := time.Now().UTC()

		if existing != nil {
			if err := history.CreateSnapshot(existing.ID, input.ICUBeds, input.RegularBeds); err != nil {
				return err
			}

			existing.ICUBeds = input.ICUBeds
			existing.RegularBeds = input.RegularBeds
			existing.ContactInfo = input.ContactInfo
			existing.Location = input.Location
			existing.Region = input.Region
			existing.Timestamp = now

			if err := hospitals.Update(existing); err != nil {
				return err
			}

			saved, err = hospitals.GetByID(existing.ID)
			return err
		}

		hospital := &models.Hospital{
			Name:        input.Name,
			ICUBeds:     input.ICUBeds,
			RegularBeds: input.RegularBeds,
			ContactInfo: input.ContactInfo,
			Location:    input.Location,
			Region:      input.Region,
			Timestamp:   now,
		}
		if err := hospitals.Create(hospital); err != nil {
			return err
		}

		if err := history.CreateSnapshot(hospital.ID, hospital.ICUBeds, hospital.RegularBeds); err != nil {
			return err
		}

		saved, err = hospitals.GetByID(hospital.ID)
		created = true
		return err
	})
	if err != nil {
		return nil, false, err
	}

	action := "hospital_update"
	if created {
		action = "hospital_create"
	}
	_ = s.auditRepo.CreateAuditLog(userID, action, fmt.Sprintf("Hospital %q: icu=%d regular=%d", saved.Name, saved.ICUBeds, saved.RegularBeds))

	return saved, created, nil
}

// History returns the daily average bed availability for a hospital over the
// last days days, oldest date first. Days with no snapshots are omitted; ids
// with no history at all, deleted ones included, yield an empty result.
func (s *HospitalService) History(hospitalID uint, days int) ([]models.DailyAvailability, error) {
	since := time.Now().UTC().AddDate(0, 0, -days)
	snapshots, err := s.historyRepo.ListSince(hospitalID, since)
	if err != nil {
		return nil, err
	}

	type bucket struct {
		icuSum     int
		regularSum int
		count      int
	}

	// Snapshots arrive in ascending order, so tracking first-seen dates
	// keeps the output chronological without re-sorting.
	buckets := make(map[string]*bucket)
	var order []string

	for _, snapshot := range snapshots {
		date := snapshot.RecordedAt.UTC().Format("2006-01-02")
		b, ok := buckets[date]
		if !ok {
			b = &bucket{}
			buckets[date] = b
			order = append(order, date)
		}
		b.icuSum += snapshot.ICUBeds
		b.regularSum += snapshot.RegularBeds
		b.count++
	}

	daily := make([]models.DailyAvailability, 0, len(order))
	for _, date := range order {
		b := buckets[date]
		daily = append(daily, models.DailyAvailability{
			Date:           date,
			AvgICUBeds:     float64(b.icuSum) / float64(b.count),
			AvgRegularBeds: float64(b.regularSum) / float64(b.count),
		})
	}
	return daily, nil
}

// Stats returns the dashboard totals across all hospitals.
func (s *HospitalService) Stats() (*models.BedStats, error) {
	return s.hospitalRepo.Stats()
}

// Delete removes a hospital and its full history.
func (s *HospitalService) Delete(id uint, userID *uint) error {
	hospital, err := s.hospitalRepo.GetByID(id)
	if err != nil {
		return err
	}

	if err := s.hospitalRepo.Delete(id); err != nil {
		return err
	}

	_ = s.auditRepo.CreateAuditLog(userID, "hospital_delete", fmt.Sprintf("Hospital %q (id=%d) deleted", hospital.Name, hospital.ID))
	return nil
}
