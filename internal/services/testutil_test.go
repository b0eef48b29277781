package services

import (
	"sync"
	"testing"

	"github.com/courtlab/backend/internal/database"
	"github.com/courtlab/backend/pkg/logger"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

var loggerOnce sync.Once

func setupServiceDB(t *testing.T) *gorm.DB {
	t.Helper()

	loggerOnce.Do(logger.Init)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed opening in-memory sqlite database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed getting sql.DB from gorm: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	if err := database.Migrate(db); err != nil {
		t.Fatalf("failed migrating schema: %v", err)
	}

	return db
}

func stringPtr(value string) *string {
	return &value
}
