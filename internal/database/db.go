package database

import (
	"github.com/cockroachdb/errors"
	"github.com/justsurfingit/applytrack/internal/models"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Connect opens the Postgres connection and runs migrations. The returned
// handle is passed explicitly into each service — no package-level singleton.
func Connect(databaseURL string, log *zap.SugaredLogger) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return nil, errors.Wrap(err, "connect to database")
	}

	log.Infow("database connection established")

	if err := migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

func migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.User{},
		&models.Session{},
		&models.Section{},
		&models.Application{},
	); err != nil {
		return errors.Wrap(err, "run migrations")
	}

	// Section names are unique per owner, case-insensitively. AutoMigrate
	// cannot express a functional index, so it is created here directly.
	if err := db.Exec(
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_sections_user_lower_name
		 ON sections (user_id, lower(name))`,
	).Error; err != nil {
		return errors.Wrap(err, "create section name index")
	}
	return nil
}
