package database

import (
	"fmt"

	"github.com/courtlab/backend/internal/config"
	"github.com/courtlab/backend/internal/models"
	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func Connect(cfg config.DBConfig) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.Driver {
	case "postgres":
		dsn := fmt.Sprintf(
			"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
			cfg.Host,
			cfg.Port,
			cfg.User,
			cfg.Password,
			cfg.Name,
			cfg.SSLMode,
		)
		dialector = postgres.Open(dsn)
	case "sqlite", "":
		dialector = sqlite.Open(cfg.Path)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return nil, err
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}

	return db, nil
}

type migration struct {
	name string
	run  func(*gorm.DB) error
}

// migrations is the ordered, idempotent list applied once at startup. New
// schema changes are appended here, never checked ad hoc at call sites.
var migrations = []migration{
	{
		name: "create_user_profiles",
		run: func(db *gorm.DB) error {
			return db.AutoMigrate(&models.UserProfile{})
		},
	},
	{
		name: "create_user_favorites",
		run: func(db *gorm.DB) error {
			return db.AutoMigrate(&models.Favorite{})
		},
	},
}

func Migrate(db *gorm.DB) error {
	for _, m := range migrations {
		if err := m.run(db); err != nil {
			return fmt.Errorf("migration %s failed: %w", m.name, err)
		}
	}
	return nil
}
