package models

import "time"

// Hospital represents the current bed availability for a single facility.
// Name acts as a soft natural key: submissions resolve to an existing row by
// case-insensitive name match, but no unique constraint is enforced beyond id.
type Hospital struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"size:255;not null" json:"name"`
	ICUBeds     int       `gorm:"column:icu_beds;not null;default:0" json:"icu_beds"`
	RegularBeds int       `gorm:"column:regular_beds;not null;default:0" json:"regular_beds"`
	ContactInfo string    `gorm:"size:50" json:"contact_info"`
	Location    string    `gorm:"size:100" json:"location"`
	Region      string    `gorm:"size:50;not null" json:"region"`
	Timestamp   time.Time `gorm:"column:timestamp" json:"timestamp"`
}

// TableName specifies the table name for Hospital model
func (Hospital) TableName() string {
	return "hospitals"
}

// HospitalInput is the submission body for POST /api/hospitals. Field names
// follow the public API contract (camelCase); unknown fields are rejected at
// the boundary before this struct is validated.
type HospitalInput struct {
	Name        string `json:"name" validate:"required,min=3"`
	Region      string `json:"region" validate:"required,region"`
	ICUBeds     int    `json:"icuBeds" validate:"min=0"`
	RegularBeds int    `json:"regularBeds" validate:"min=0"`
	ContactInfo string `json:"contactInfo" validate:"omitempty,contact"`
	Location    string `json:"location" validate:"omitempty,max=100"`
}

// DailyAvailability is one aggregated point of the per-hospital history
// query: the mean bed counts across all snapshots of one calendar date.
type DailyAvailability struct {
	Date           string  `json:"date"`
	AvgICUBeds     float64 `json:"avg_icu_beds"`
	AvgRegularBeds float64 `json:"avg_regular_beds"`
}

// BedStats holds the dashboard totals across all hospitals.
type BedStats struct {
	TotalHospitals   int64 `json:"total_hospitals"`
	TotalICUBeds     int64 `json:"total_icu_beds"`
	TotalRegularBeds int64 `json:"total_regular_beds"`
}
