package service

import (
	"context"
	"fmt"
	"log"

	"hospital-bed-backend/internal/repository"

	"github.com/robfig/cron/v3"
)

// SnapshotService records a daily availability snapshot for every hospital,
// so history charts have at least one point per day even when no submissions
// arrive.
type SnapshotService struct {
	hospitalRepo *repository.HospitalRepository
	historyRepo  *repository.HistoryRepository
	auditRepo    *repository.AuditRepository
	schedule     string
}

func NewSnapshotService(hospitalRepo *repository.HospitalRepository, historyRepo *repository.HistoryRepository, auditRepo *repository.AuditRepository, schedule string) *SnapshotService {
	return &SnapshotService{
		hospitalRepo: hospitalRepo,
		historyRepo:  historyRepo,
		auditRepo:    auditRepo,
		schedule:     schedule,
	}
}

// Run snapshots the current bed counts of every hospital. A failure on one
// hospital is logged and does not stop the rest. Returns the number of
// snapshots recorded.
func (s *SnapshotService) Run() (int, error) {
	hospitals, err := s.hospitalRepo.List("", "")
	if err != nil {
		return 0, fmt.Errorf("failed to list hospitals for snapshot: %w", err)
	}

	recorded := 0
	for _, hospital := range hospitals {
		if err := s.historyRepo.CreateSnapshot(hospital.ID, hospital.ICUBeds, hospital.RegularBeds); err != nil {
			log.Printf("Snapshot failed for hospital %d (%s): %v", hospital.ID, hospital.Name, err)
			continue
		}
		recorded++
	}

	log.Printf("Daily snapshot recorded for %d/%d hospitals", recorded, len(hospitals))
	return recorded, nil
}

// RunManual runs a snapshot on demand and audits who triggered it.
func (s *SnapshotService) RunManual(userID *uint) (int, error) {
	recorded, err := s.Run()
	if err != nil {
		return 0, err
	}
	_ = s.auditRepo.CreateAuditLog(userID, "snapshot_run", fmt.Sprintf("Manual snapshot recorded %d hospitals", recorded))
	return recorded, nil
}

// Start runs the snapshot job on the configured cron schedule until the
// context is cancelled. Blocks; run it in a goroutine.
func (s *SnapshotService) Start(ctx context.Context) {
	c := cron.New()
	_, err := c.AddFunc(s.schedule, func() {
		if _, err := s.Run(); err != nil {
			log.Printf("Scheduled snapshot failed: %v", err)
		}
	})
	if err != nil {
		log.Printf("Invalid snapshot schedule %q, snapshot job disabled: %v", s.schedule, err)
		return
	}

	c.Start()
	log.Printf("Snapshot job started with schedule %q", s.schedule)

	<-ctx.Done()
	<-c.Stop().Done()
	log.Println("Snapshot job stopped")
}
