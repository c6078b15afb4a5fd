package psqlutil

import (
	"context"
	"fmt"
	"time"

	"github.com/avast/retry-go"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"moul.io/zapgorm2"
)

// GormOpen opens a new postgres connection described by cfg
// and returns a *gorm.DB with the errors plugin registered.
func GormOpen(
	ctx context.Context,
	zapLogger *zap.Logger,
	cfg ConnectionConfig,
) (*gorm.DB, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return Open(ctx, zapLogger, postgres.New(postgres.Config{
		DSN: cfg.DSN(),
	}))
}

// Open opens a *gorm.DB on the given dialector, retrying failed
// connection attempts until ctx is done.
func Open(
	ctx context.Context,
	zapLogger *zap.Logger,
	dialector gorm.Dialector,
) (*gorm.DB, error) {
	const (
		connectionAttempts = 5
		delaySeconds       = 2
	)

	gormLogger := zapgorm2.New(zapLogger)
	gormLogger.IgnoreRecordNotFoundError = true

	var db *gorm.DB

	err := retry.Do(func() error {
		var err error

		db, err = gorm.Open(dialector, &gorm.Config{
			SkipDefaultTransaction: true,
			Logger:                 gormLogger,
		})

		return err
	},
		retry.Attempts(connectionAttempts),
		retry.Delay(delaySeconds*time.Second),
		retry.Context(ctx),
		retry.LastErrorOnly(true),
	)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	if err := db.Use(GORMErrorsPlugin{}); err != nil {
		return nil, fmt.Errorf("use errors plugin: %w", err)
	}

	return db, nil
}

// MustOpen returns db if err is nil and panics otherwise.
func MustOpen(db *gorm.DB, err error) *gorm.DB {
	if err != nil {
		panic(err)
	}

	return db
}
