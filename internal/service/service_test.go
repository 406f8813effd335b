package service

import (
	"testing"
	"time"

	"hospital-bed-backend/internal/database"
	"hospital-bed-backend/internal/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// openTestDB gives each test an isolated in-memory database. The pool is
// pinned to one connection because every sqlite :memory: connection is its
// own database.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.Migrate(db))
	return db
}

func submission(name string, icu, regular int) *models.HospitalInput {
	return &models.HospitalInput{
		Name:        name,
		Region:      "Ashanti",
		ICUBeds:     icu,
		RegularBeds: regular,
		ContactInfo: "+233 32 202 0000",
		Location:    "Kumasi",
	}
}
