package models

import "time"

// HospitalHistory represents the hospital_history table: append-only
// snapshots of bed counts forming the audit trail for a hospital. Rows are
// never updated; they are removed only when the owning hospital is deleted.
type HospitalHistory struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	HospitalID  uint      `gorm:"not null;index" json:"hospital_id"`
	ICUBeds     int       `gorm:"column:icu_beds;not null" json:"icu_beds"`
	RegularBeds int       `gorm:"column:regular_beds;not null" json:"regular_beds"`
	RecordedAt  time.Time `gorm:"not null;index" json:"recorded_at"`

	// Relationships
	Hospital Hospital `gorm:"foreignKey:HospitalID;constraint:OnDelete:CASCADE" json:"hospital,omitempty"`
}

// TableName specifies the table name for HospitalHistory model
func (HospitalHistory) TableName() string {
	return "hospital_history"
}
